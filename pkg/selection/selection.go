// Package selection holds the cyclic choice between the format variants of
// one recognized path.
//
// A Selection is built from raw clipboard text. It keeps every format the
// text can be converted to, in the fixed order Windows, Unix, WSL, and a
// cursor that wraps around in both directions. Text that is not a path, or
// that reaches only a single format, yields no selection because there is
// nothing to choose between.
//
// Tracker wraps an optional Selection in an explicit Empty/Active state
// machine for the hotkey controller.
package selection

import (
	"github.com/arthur-debert/pathte/pkg/paths"
	"github.com/google/uuid"
)

// Selection is an ordered set of equivalent paths plus the current choice.
// It always holds at least two options and current is always in range.
type Selection struct {
	id       string
	options  []paths.TypedPath
	current  int
	original paths.Format
}

// New classifies raw and builds a selection over every format it converts
// to. It returns false when raw is not a path or fewer than two formats are
// reachable.
func New(raw string) (*Selection, bool) {
	source, ok := paths.Parse(raw)
	if !ok {
		return nil, false
	}

	options := make([]paths.TypedPath, 0, len(paths.Formats))
	current := 0
	for _, format := range paths.Formats {
		converted, err := paths.Convert(source, format)
		if err != nil {
			// unreachable format, leave it out
			continue
		}
		if format == source.Format() {
			current = len(options)
		}
		options = append(options, converted)
	}

	if len(options) < 2 {
		return nil, false
	}

	return &Selection{
		id:       uuid.NewString(),
		options:  options,
		current:  current,
		original: source.Format(),
	}, true
}

// Advance moves to the next option, wrapping to the first.
func (s *Selection) Advance() {
	s.current = (s.current + 1) % len(s.options)
}

// Retreat moves to the previous option, wrapping to the last.
func (s *Selection) Retreat() {
	s.current = (s.current + len(s.options) - 1) % len(s.options)
}

// Current returns the selected path.
func (s *Selection) Current() paths.TypedPath {
	return s.options[s.current]
}

// CurrentText returns the text of the selected path.
func (s *Selection) CurrentText() string {
	return s.options[s.current].Text()
}

// Index returns the position of the selected option.
func (s *Selection) Index() int { return s.current }

// Len returns the number of options.
func (s *Selection) Len() int { return len(s.options) }

// Original returns the format the raw text was classified as.
func (s *Selection) Original() paths.Format { return s.original }

// ID identifies this selection in logs and display events.
func (s *Selection) ID() string { return s.id }

// Options returns a copy of the options in display order.
func (s *Selection) Options() []paths.TypedPath {
	out := make([]paths.TypedPath, len(s.options))
	copy(out, s.options)
	return out
}

// Snapshot returns an immutable copy of the selection for observers.
func (s *Selection) Snapshot() Snapshot {
	options := make([]Option, len(s.options))
	for i, p := range s.options {
		options[i] = Option{
			Label:  p.Format().Label(),
			Text:   p.Text(),
			Format: p.Format(),
		}
	}
	return Snapshot{
		ID:       s.id,
		Options:  options,
		Selected: s.current,
		Original: s.original,
	}
}
