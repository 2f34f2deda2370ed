// Package display holds the results the CLI renders, independent of the
// output format.
package display

import (
	"github.com/arthur-debert/pathte/pkg/feed"
	"github.com/arthur-debert/pathte/pkg/paths"
	"github.com/arthur-debert/pathte/pkg/selection"
)

// Classification is the outcome for one classified input.
type Classification struct {
	Input  string       `json:"input" yaml:"input"`
	IsPath bool         `json:"isPath" yaml:"isPath"`
	Format paths.Format `json:"format,omitempty" yaml:"format,omitempty"`
}

// ClassifyResult is the output of the classify command.
type ClassifyResult struct {
	Results []Classification `json:"results" yaml:"results"`
}

// ConvertResult is the output of the convert command.
type ConvertResult struct {
	Input  string       `json:"input" yaml:"input"`
	From   paths.Format `json:"from" yaml:"from"`
	To     paths.Format `json:"to" yaml:"to"`
	Output string       `json:"output" yaml:"output"`
}

// VariantsResult lists every format a path can be written in.
type VariantsResult struct {
	Input    string             `json:"input" yaml:"input"`
	Original paths.Format       `json:"original" yaml:"original"`
	Variants []selection.Option `json:"variants" yaml:"variants"`
}

// OriginalIndex returns the row of the detected format, or -1.
func (v *VariantsResult) OriginalIndex() int {
	for i, o := range v.Variants {
		if o.Format == v.Original {
			return i
		}
	}
	return -1
}

// CycleResult is a selection after a number of steps.
type CycleResult struct {
	Steps    int                `json:"steps" yaml:"steps"`
	Snapshot selection.Snapshot `json:"snapshot" yaml:"snapshot"`
}

// EventRecord is a feed event flattened for output.
type EventRecord struct {
	Type     feed.EventType `json:"type" yaml:"type"`
	ID       string         `json:"id,omitempty" yaml:"id,omitempty"`
	Selected *int           `json:"selected,omitempty" yaml:"selected,omitempty"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty"`
	Level    feed.Level     `json:"level,omitempty" yaml:"level,omitempty"`
	Message  string         `json:"message,omitempty" yaml:"message,omitempty"`
}

// ReplayResult is the output of the replay command.
type ReplayResult struct {
	Events    []EventRecord `json:"events" yaml:"events"`
	Pasted    []string      `json:"pasted" yaml:"pasted"`
	Clipboard string        `json:"clipboard" yaml:"clipboard"`
}

// RecordEvent flattens ev.
func RecordEvent(ev feed.Event) EventRecord {
	rec := EventRecord{Type: ev.Type()}
	switch e := ev.(type) {
	case feed.SelectionShownEvent:
		fillFromSnapshot(&rec, e.Snapshot)
	case feed.SelectionChangedEvent:
		fillFromSnapshot(&rec, e.Snapshot)
	case feed.SelectionClosedEvent:
		rec.ID = e.ID
		rec.Text = e.Text
		if e.Cancelled {
			rec.Message = "cancelled"
		}
	case feed.PasteCompletedEvent:
		rec.ID = e.ID
		rec.Text = e.Text
	case feed.NoticeEvent:
		rec.Level = e.Level
		rec.Message = e.String()
	}
	return rec
}

func fillFromSnapshot(rec *EventRecord, snap selection.Snapshot) {
	selected := snap.Selected
	rec.ID = snap.ID
	rec.Selected = &selected
	rec.Text = snap.SelectedOption().Text
}
