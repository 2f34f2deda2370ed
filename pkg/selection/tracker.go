package selection

import (
	"sync"

	"github.com/arthur-debert/pathte/pkg/errors"
)

// ErrNoSelection is returned when an operation needs an active selection
// and the tracker is empty.
var ErrNoSelection = errors.New(errors.ErrNoSelection, "no active selection")

// Tracker is the Empty/Active state machine around a Selection. Each
// transition replaces the state under the lock, so concurrent readers of
// Snapshot never see a half-applied change.
type Tracker struct {
	mu  sync.RWMutex
	sel *Selection
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Create replaces any current state with a selection built from raw.
// It reports whether the tracker is now active.
func (t *Tracker) Create(raw string) bool {
	sel, ok := New(raw)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.sel = sel
	return ok
}

// Active reports whether a selection is held.
func (t *Tracker) Active() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sel != nil
}

// Advance moves the active selection forward.
func (t *Tracker) Advance() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sel == nil {
		return ErrNoSelection
	}
	t.sel.Advance()
	return nil
}

// Retreat moves the active selection backward.
func (t *Tracker) Retreat() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sel == nil {
		return ErrNoSelection
	}
	t.sel.Retreat()
	return nil
}

// CurrentText returns the selected text of the active selection.
func (t *Tracker) CurrentText() (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.sel == nil {
		return "", ErrNoSelection
	}
	return t.sel.CurrentText(), nil
}

// Snapshot returns a copy of the active selection, or nil when empty.
func (t *Tracker) Snapshot() *Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.sel == nil {
		return nil
	}
	snap := t.sel.Snapshot()
	return &snap
}

// Dismiss drops the active selection and returns the text that was
// selected. It reports false when there was nothing to dismiss.
func (t *Tracker) Dismiss() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sel == nil {
		return "", false
	}
	text := t.sel.CurrentText()
	t.sel = nil
	return text, true
}
