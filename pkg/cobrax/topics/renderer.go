package topics

// Renderer turns a topic file into terminal text. format is the file
// extension, dot included.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim.
type PlainRenderer struct{}

// Render implements Renderer.
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
