package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders .md topics with glamour. Other formats pass
// through.
type GlamourRenderer struct {
	// Style is a glamour style name or a style file path. Empty and "auto"
	// pick dark or light from the terminal.
	Style string
	// Width wraps lines. Zero keeps glamour's default.
	Width int
}

// NewGlamourRenderer returns a renderer with an auto-detected style.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render implements Renderer. On a glamour error the content is returned
// unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style == "" || r.Style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
