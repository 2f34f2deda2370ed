// Package clipboard reads and writes clipboard text and performs the
// write-paste-restore sequence that delivers a chosen path variant.
package clipboard

import (
	"sync"

	"github.com/arthur-debert/pathte/pkg/errors"
	atotto "github.com/atotto/clipboard"
)

// Clipboard is a text clipboard.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// System is the OS clipboard.
type System struct{}

// NewSystem returns the OS clipboard.
func NewSystem() *System { return &System{} }

// Unsupported is true when no clipboard backend was found (for example a
// headless Linux box without xclip, xsel or wl-clipboard).
func (System) Unsupported() bool { return atotto.Unsupported }

// ReadText implements Clipboard.
func (System) ReadText() (string, error) {
	text, err := atotto.ReadAll()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrClipboardRead, "failed to read clipboard")
	}
	return text, nil
}

// WriteText implements Clipboard.
func (System) WriteText(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return errors.Wrap(err, errors.ErrClipboardWrite, "failed to write clipboard")
	}
	return nil
}

// Memory is an in-process clipboard. The zero value is empty and ready.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes []string
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// ReadText implements Clipboard.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// WriteText implements Clipboard.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.writes = append(m.writes, text)
	return nil
}

// Writes returns every text written so far, oldest first.
func (m *Memory) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.writes))
	copy(out, m.writes)
	return out
}
