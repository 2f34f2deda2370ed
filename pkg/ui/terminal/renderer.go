// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pathte/pkg/feed"
	"github.com/arthur-debert/pathte/pkg/selection"
	"github.com/arthur-debert/pathte/pkg/ui/display"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss styles and pterm
// tables
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ClassifyResult:
		return r.renderClassify(v)
	case *display.ConvertResult:
		_, err := fmt.Fprintf(r.output, "%s %s %s  %s\n",
			badge(v.From), mutedStyle.Render("→"), badge(v.To), inputStyle.Render(v.Output))
		return err
	case *display.VariantsResult:
		return r.renderTable(v.Variants, v.OriginalIndex(), "original")
	case *display.CycleResult:
		if err := r.renderTable(v.Snapshot.Options, v.Snapshot.Selected, "selected"); err != nil {
			return err
		}
		_, err := fmt.Fprintln(r.output, mutedStyle.Render(fmt.Sprintf("%d step(s), selection %s", v.Steps, v.Snapshot.ID)))
		return err
	case *display.ReplayResult:
		return r.renderReplay(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderClassify(res *display.ClassifyResult) error {
	for _, c := range res.Results {
		kind := mutedStyle.Render(display.NotAPath)
		if c.IsPath {
			kind = badge(c.Format)
		}
		if _, err := fmt.Fprintf(r.output, "%s  %s\n", kind, inputStyle.Render(c.Input)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderTable(options []selection.Option, marked int, markLabel string) error {
	data := pterm.TableData{{"", "Format", "Path"}}
	for i, o := range options {
		mark, text := "", o.Text
		if i == marked {
			mark = "●"
			text = selectedStyle.Render(text)
		}
		data = append(data, []string{mark, badge(o.Format), text})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.output, "%s\n%s\n", table, mutedStyle.Render("● "+markLabel))
	return err
}

func (r *Renderer) renderReplay(res *display.ReplayResult) error {
	for _, ev := range res.Events {
		line := display.FormatEvent(ev)
		switch {
		case ev.Type == feed.EventNotice:
			line = errorStyle.Render(line)
		case ev.Type == feed.EventPasteCompleted:
			line = inputStyle.Render(line)
		case strings.HasPrefix(string(ev.Type), "Selection"):
			line = mutedStyle.Render(string(ev.Type)) + strings.TrimPrefix(line, string(ev.Type))
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	if len(res.Pasted) > 0 {
		_, err := fmt.Fprintf(r.output, "%s %s\n", mutedStyle.Render("clipboard:"), inputStyle.Render(res.Clipboard))
		return err
	}
	return nil
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, errorStyle.Render("Error: ")+err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
