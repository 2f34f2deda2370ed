// Package feed carries selection transitions from the input actor to the
// display actor.
package feed

import "github.com/arthur-debert/pathte/pkg/selection"

// EventType identifies a feed event.
type EventType string

const (
	EventSelectionShown   EventType = "SelectionShown"
	EventSelectionChanged EventType = "SelectionChanged"
	EventSelectionClosed  EventType = "SelectionClosed"
	EventPasteCompleted   EventType = "PasteCompleted"
	EventNotice           EventType = "Notice"
)

// Event is anything the display actor can receive.
type Event interface {
	Type() EventType
}

// SelectionShownEvent is published when a selection becomes active.
type SelectionShownEvent struct {
	Snapshot selection.Snapshot
}

func (e SelectionShownEvent) Type() EventType { return EventSelectionShown }

// SelectionChangedEvent is published after every advance or retreat.
type SelectionChangedEvent struct {
	Snapshot selection.Snapshot
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClosedEvent tells the display to hide the overlay. Text is the
// option that was selected when the selection ended; it is empty on cancel.
type SelectionClosedEvent struct {
	ID        string
	Text      string
	Cancelled bool
}

func (e SelectionClosedEvent) Type() EventType { return EventSelectionClosed }

// PasteCompletedEvent is published once the chosen text was written and the
// paste keystroke injected.
type PasteCompletedEvent struct {
	ID   string
	Text string
}

func (e PasteCompletedEvent) Type() EventType { return EventPasteCompleted }

// Level grades a notice.
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// NoticeEvent reports a non-fatal problem the user should see.
type NoticeEvent struct {
	Level   Level
	Message string
	Err     error
}

func (e NoticeEvent) Type() EventType { return EventNotice }

// String renders the notice as one line.
func (e NoticeEvent) String() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}
