// Package hotkey turns the paste gesture into selection transitions.
//
// Holding the trigger modifier and pressing the paste key opens a selection
// built from the clipboard text. Further presses cycle through the variants
// (the reverse modifier cycles backwards) and releasing the trigger modifier
// pastes the selected variant. Escape closes the selection without pasting.
//
// The Controller is the only writer of its Tracker. Feed it from a single
// goroutine, normally through Run.
package hotkey

import (
	"context"

	"github.com/arthur-debert/pathte/pkg/clipboard"
	"github.com/arthur-debert/pathte/pkg/feed"
	"github.com/arthur-debert/pathte/pkg/keyboard"
	"github.com/arthur-debert/pathte/pkg/logging"
	"github.com/arthur-debert/pathte/pkg/selection"
	"github.com/rs/zerolog"
)

// Options selects the keys of the gesture.
type Options struct {
	PasteKey keyboard.Key
	Trigger  keyboard.Modifier
	Reverse  keyboard.Modifier
}

// DefaultOptions is Ctrl+V, with Shift cycling backwards.
func DefaultOptions() Options {
	return Options{
		PasteKey: keyboard.KeyV,
		Trigger:  keyboard.ModCtrl,
		Reverse:  keyboard.ModShift,
	}
}

// Paster delivers the chosen text. *clipboard.Paster implements it.
type Paster interface {
	Paste(text string) error
}

// Controller runs the paste gesture protocol.
type Controller struct {
	tracker *selection.Tracker
	clip    clipboard.Clipboard
	paster  Paster
	events  *feed.Queue[feed.Event]
	opts    Options
	logger  zerolog.Logger
}

// New creates a Controller. events may be nil when nobody is watching.
func New(clip clipboard.Clipboard, paster Paster, events *feed.Queue[feed.Event], opts Options) *Controller {
	return &Controller{
		tracker: selection.NewTracker(),
		clip:    clip,
		paster:  paster,
		events:  events,
		opts:    opts,
		logger:  logging.GetLogger("hotkey"),
	}
}

// Tracker exposes the selection state for inspection.
func (c *Controller) Tracker() *selection.Tracker { return c.tracker }

// Run handles events from src until ctx is done or src is exhausted.
func (c *Controller) Run(ctx context.Context, src keyboard.Source) error {
	events := src.Events()
	for {
		select {
		case <-ctx.Done():
			c.logger.Debug().Msg("controller stopped")
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				c.logger.Debug().Msg("event source closed")
				return nil
			}
			c.HandleEvent(ev)
		}
	}
}

// HandleEvent processes one key event and reports whether it was consumed.
// Events that are not consumed should reach the focused application.
func (c *Controller) HandleEvent(ev keyboard.Event) bool {
	c.logger.Trace().Stringer("event", ev).Bool("active", c.tracker.Active()).Msg("key event")

	switch ev.Kind {
	case keyboard.KeyDown:
		switch {
		case ev.Key == c.opts.PasteKey && ev.Modifiers.Has(c.opts.Trigger):
			if c.tracker.Active() {
				return c.step(ev.Modifiers.Has(c.opts.Reverse))
			}
			return c.open()
		case ev.Key == keyboard.KeyEscape && c.tracker.Active():
			c.Cancel()
			return true
		}
	case keyboard.KeyUp:
		if ev.Key.Modifier() == c.opts.Trigger && c.tracker.Active() {
			c.commit()
			return true
		}
	}
	return false
}

// Cancel closes an active selection without pasting. It reports whether a
// selection was open.
func (c *Controller) Cancel() bool {
	snap := c.tracker.Snapshot()
	if _, ok := c.tracker.Dismiss(); !ok {
		return false
	}
	c.logger.Info().Str("selection", snap.ID).Msg("selection cancelled")
	c.publish(feed.SelectionClosedEvent{ID: snap.ID, Cancelled: true})
	return true
}

func (c *Controller) open() bool {
	text, err := c.clip.ReadText()
	if err != nil {
		c.logger.Warn().Err(err).Msg("could not read clipboard, passing paste through")
		c.notice(feed.LevelWarn, "Could not read the clipboard", err)
		return false
	}

	if !c.tracker.Create(text) {
		c.logger.Debug().Msg("clipboard text has no path variants, passing paste through")
		return false
	}

	snap := c.tracker.Snapshot()
	c.logger.Info().
		Str("selection", snap.ID).
		Int("options", len(snap.Options)).
		Str("original", snap.Original.String()).
		Msg("selection opened")
	c.publish(feed.SelectionShownEvent{Snapshot: *snap})
	return true
}

func (c *Controller) step(reverse bool) bool {
	var err error
	if reverse {
		err = c.tracker.Retreat()
	} else {
		err = c.tracker.Advance()
	}
	if err != nil {
		// Active was checked by the caller and nothing else writes the tracker.
		c.logger.Error().Err(err).Msg("selection vanished while stepping")
		return false
	}

	snap := c.tracker.Snapshot()
	c.logger.Debug().Str("selection", snap.ID).Int("selected", snap.Selected).Bool("reverse", reverse).Msg("selection moved")
	c.publish(feed.SelectionChangedEvent{Snapshot: *snap})
	return true
}

func (c *Controller) commit() {
	snap := c.tracker.Snapshot()
	text, ok := c.tracker.Dismiss()
	if !ok {
		return
	}
	c.publish(feed.SelectionClosedEvent{ID: snap.ID, Text: text})

	if err := c.paster.Paste(text); err != nil {
		c.logger.Warn().Err(err).Str("selection", snap.ID).Msg("paste failed")
		c.notice(feed.LevelError, "Paste failed", err)
		return
	}
	c.logger.Info().Str("selection", snap.ID).Str("text", text).Msg("pasted selection")
	c.publish(feed.PasteCompletedEvent{ID: snap.ID, Text: text})
}

func (c *Controller) notice(level feed.Level, msg string, err error) {
	c.publish(feed.NoticeEvent{Level: level, Message: msg, Err: err})
}

func (c *Controller) publish(ev feed.Event) {
	if c.events == nil {
		return
	}
	c.events.Publish(ev)
}
