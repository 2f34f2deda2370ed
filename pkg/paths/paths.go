package paths

import (
	"strings"

	"github.com/arthur-debert/pathte/pkg/errors"
)

// Format identifies one of the supported path conventions.
// The zero value is not a valid format.
type Format int

const (
	Windows Format = iota + 1
	Unix
	WSL
)

// Formats lists every format in the fixed order used for selections.
var Formats = []Format{Windows, Unix, WSL}

// String returns the lowercase name used in flags and structured output.
func (f Format) String() string {
	switch f {
	case Windows:
		return "windows"
	case Unix:
		return "unix"
	case WSL:
		return "wsl"
	default:
		return "unknown"
	}
}

// Label returns the short display label shown next to a selection option.
func (f Format) Label() string {
	switch f {
	case Windows:
		return "Win"
	case Unix:
		return "Unix"
	case WSL:
		return "WSL"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	switch f {
	case Windows, Unix, WSL:
		return true
	default:
		return false
	}
}

// ParseFormat parses a format name. It accepts the canonical names plus a
// few common aliases and is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows", "win", "dos":
		return Windows, nil
	case "unix", "posix", "linux":
		return Unix, nil
	case "wsl":
		return WSL, nil
	default:
		return 0, errors.Newf(errors.ErrUnsupportedFormat, "unknown path format %q", s).
			WithDetail("format", s)
	}
}

// MarshalText encodes the format by name for JSON, YAML and TOML output.
func (f Format) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, unsupported(f)
	}
	return []byte(f.String()), nil
}

// UnmarshalText accepts anything ParseFormat does.
func (f *Format) UnmarshalText(b []byte) error {
	parsed, err := ParseFormat(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// TypedPath pairs a format with text that is valid in that format.
// Values are only produced by NewTypedPath, Parse and the converters, all of
// which check the text against the format's pattern.
type TypedPath struct {
	format Format
	text   string
}

// NewTypedPath wraps text as a path of the given format, failing when the
// text does not satisfy that format's pattern.
func NewTypedPath(text string, format Format) (TypedPath, error) {
	if !format.Valid() {
		return TypedPath{}, unsupported(format)
	}
	if !IsValid(text, format) {
		return TypedPath{}, errors.Newf(errors.ErrInvalidInput, "text is not a valid %s path", format).
			WithDetail("format", format.String()).
			WithDetail("input", text)
	}
	return TypedPath{format: format, text: text}, nil
}

// Parse classifies text and wraps it in a TypedPath of the detected format.
func Parse(text string) (TypedPath, bool) {
	format, ok := Classify(text)
	if !ok {
		return TypedPath{}, false
	}
	return TypedPath{format: format, text: text}, true
}

// Format returns the path's format.
func (p TypedPath) Format() Format { return p.format }

// Text returns the path text.
func (p TypedPath) Text() string { return p.text }

// String returns the path text.
func (p TypedPath) String() string { return p.text }

// IsZero reports whether p is the zero value returned alongside an error.
func (p TypedPath) IsZero() bool { return p.format == 0 }
