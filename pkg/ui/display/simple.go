package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pathte/pkg/selection"
)

// NotAPath is printed for inputs that are not paths.
const NotAPath = "not a path"

// TextRenderer provides minimal text output for pathte commands
type TextRenderer struct {
	writer io.Writer
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{writer: w}
}

// Render writes result as plain text. It reports false for types it does
// not know.
func (r *TextRenderer) Render(result interface{}) (bool, error) {
	var err error
	switch v := result.(type) {
	case *ClassifyResult:
		err = r.renderClassify(v)
	case *ConvertResult:
		_, err = fmt.Fprintln(r.writer, v.Output)
	case *VariantsResult:
		err = r.renderOptions(v.Variants, v.OriginalIndex(), "*")
	case *CycleResult:
		err = r.renderOptions(v.Snapshot.Options, v.Snapshot.Selected, ">")
	case *ReplayResult:
		for _, ev := range v.Events {
			if _, err = fmt.Fprintln(r.writer, FormatEvent(ev)); err != nil {
				break
			}
		}
	default:
		return false, nil
	}
	return true, err
}

// Kind returns the format name of a classification, or NotAPath.
func (c Classification) Kind() string {
	if !c.IsPath {
		return NotAPath
	}
	return c.Format.String()
}

func (r *TextRenderer) renderClassify(res *ClassifyResult) error {
	for _, c := range res.Results {
		var err error
		if len(res.Results) == 1 {
			_, err = fmt.Fprintln(r.writer, c.Kind())
		} else {
			_, err = fmt.Fprintf(r.writer, "%s\t%s\n", c.Input, c.Kind())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) renderOptions(options []selection.Option, marked int, marker string) error {
	width := 0
	for _, o := range options {
		if len(o.Label) > width {
			width = len(o.Label)
		}
	}
	for i, o := range options {
		m := " "
		if i == marked {
			m = marker
		}
		if _, err := fmt.Fprintf(r.writer, "%s %-*s  %s\n", m, width, o.Label, o.Text); err != nil {
			return err
		}
	}
	return nil
}

// FormatEvent renders one event record as a single line.
func FormatEvent(ev EventRecord) string {
	var b strings.Builder
	b.WriteString(string(ev.Type))
	if ev.Selected != nil {
		fmt.Fprintf(&b, " [%d]", *ev.Selected)
	}
	if ev.Text != "" {
		b.WriteString(" ")
		b.WriteString(ev.Text)
	}
	if ev.Level != "" {
		fmt.Fprintf(&b, " (%s)", ev.Level)
	}
	if ev.Message != "" {
		b.WriteString(" ")
		b.WriteString(ev.Message)
	}
	return b.String()
}
