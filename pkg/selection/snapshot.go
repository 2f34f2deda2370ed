package selection

import "github.com/arthur-debert/pathte/pkg/paths"

// Option is one row of a snapshot.
type Option struct {
	Label  string       `json:"label" yaml:"label"`
	Text   string       `json:"text" yaml:"text"`
	Format paths.Format `json:"format" yaml:"format"`
}

// Snapshot is a point-in-time copy of a selection. Display code only ever
// sees snapshots, never the live selection.
type Snapshot struct {
	ID       string       `json:"id" yaml:"id"`
	Options  []Option     `json:"options" yaml:"options"`
	Selected int          `json:"selected" yaml:"selected"`
	Original paths.Format `json:"original" yaml:"original"`
}

// SelectedOption returns the highlighted row.
func (s Snapshot) SelectedOption() Option {
	return s.Options[s.Selected]
}

// OriginalIndex returns the row of the originally detected format, or -1.
func (s Snapshot) OriginalIndex() int {
	for i, o := range s.Options {
		if o.Format == s.Original {
			return i
		}
	}
	return -1
}
