// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/pathte/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output         io.Writer
	plain *display.TextRenderer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{
		output:         output,
		plain: display.NewTextRenderer(output),
	}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	ok, err := r.plain.Render(result)
	if ok || err != nil {
		return err
	}
	// For unknown types, just print them
	_, err = fmt.Fprintf(r.output, "%+v\n", result)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
