package clipboard

import (
	"sync"
	"time"

	"github.com/arthur-debert/pathte/pkg/errors"
	"github.com/arthur-debert/pathte/pkg/logging"
)

// DefaultRestoreDelay is how long the pasted text stays on the clipboard
// before the previous contents are put back.
const DefaultRestoreDelay = 100 * time.Millisecond

// Injector sends the platform paste keystroke to the focused window.
type Injector interface {
	InjectPaste() error
}

// InjectorFunc adapts a function to Injector.
type InjectorFunc func() error

// InjectPaste implements Injector.
func (f InjectorFunc) InjectPaste() error { return f() }

// PasterOptions configures a Paster.
type PasterOptions struct {
	// Restore puts the previous clipboard text back after RestoreDelay.
	Restore      bool
	RestoreDelay time.Duration
}

// Paster pastes text through the clipboard: it saves what is there,
// writes the text, injects the paste keystroke and optionally restores the
// saved text later.
type Paster struct {
	clip     Clipboard
	injector Injector
	opts     PasterOptions

	mu      sync.Mutex
	pending *time.Timer
	closed  bool
	// restoring is the saved text of the pending restore. A paste that starts
	// while a restore is pending keeps it, not the transient pasted text.
	restoring *string
}

// NewPaster creates a Paster.
func NewPaster(clip Clipboard, injector Injector, opts PasterOptions) *Paster {
	if opts.RestoreDelay < 0 {
		opts.RestoreDelay = 0
	}
	return &Paster{clip: clip, injector: injector, opts: opts}
}

// Paste delivers text to the focused window.
func (p *Paster) Paste(text string) error {
	logger := logging.GetLogger("clipboard.paster")

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return errors.New(errors.ErrPasteInject, "paster is closed")
	}

	var original string
	if p.pending != nil && p.restoring != nil {
		p.pending.Stop()
		original = *p.restoring
		p.pending, p.restoring = nil, nil
		logger.Debug().Msg("cancelled pending clipboard restore")
	} else {
		saved, err := p.clip.ReadText()
		if err != nil {
			return errors.Wrap(err, errors.ErrClipboardRead, "failed to save clipboard before paste")
		}
		original = saved
	}

	if err := p.clip.WriteText(text); err != nil {
		p.putBack(original)
		return errors.Wrap(err, errors.ErrClipboardWrite, "failed to place text on clipboard")
	}

	if err := p.injector.InjectPaste(); err != nil {
		p.putBack(original)
		return errors.Wrap(err, errors.ErrPasteInject, "failed to send paste keystroke")
	}

	logger.Debug().Int("length", len(text)).Bool("restore", p.opts.Restore).Msg("pasted text")

	if p.opts.Restore {
		p.scheduleRestore(original)
	}
	return nil
}

// putBack writes original back after a failed paste so the clipboard ends
// up as it was. Must be called with p.mu held.
func (p *Paster) putBack(original string) {
	if err := p.clip.WriteText(original); err != nil {
		logger := logging.GetLogger("clipboard.paster")
		logger.Error().Err(err).Msg("failed to put clipboard back after failed paste")
	}
}

// scheduleRestore must be called with p.mu held.
func (p *Paster) scheduleRestore(original string) {
	p.restoring = &original
	var timer *time.Timer
	timer = time.AfterFunc(p.opts.RestoreDelay, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.pending != timer {
			return
		}
		p.pending, p.restoring = nil, nil
		if err := p.clip.WriteText(original); err != nil {
			logger := logging.GetLogger("clipboard.paster")
			logger.Warn().Err(err).Msg("failed to restore clipboard")
		}
	})
	p.pending = timer
}

// Pending reports whether a restore is scheduled.
func (p *Paster) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending != nil
}

// Flush performs a pending restore immediately.
func (p *Paster) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == nil {
		return nil
	}
	p.pending.Stop()
	original := *p.restoring
	p.pending, p.restoring = nil, nil
	if err := p.clip.WriteText(original); err != nil {
		return errors.Wrap(err, errors.ErrClipboardWrite, "failed to restore clipboard")
	}
	return nil
}

// Close cancels a pending restore. Later calls to Paste fail.
func (p *Paster) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending != nil {
		p.pending.Stop()
		p.pending, p.restoring = nil, nil
	}
	p.closed = true
}
