package paths

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/pathte/pkg/errors"
)

var (
	// ErrNoDriveAnchor matches conversions that need a drive letter the
	// input does not carry.
	ErrNoDriveAnchor = errors.New(errors.ErrNoDriveAnchor, "path has no drive letter to anchor under /mnt")

	// ErrInvalidOutput matches conversions whose rewritten text is not
	// valid in the target format.
	ErrInvalidOutput = errors.New(errors.ErrInvalidOutput, "converted text is not a valid path in the target format")

	// ErrUnsupportedFormat matches conversions involving an unknown format.
	ErrUnsupportedFormat = errors.New(errors.ErrUnsupportedFormat, "unsupported path format")
)

var (
	windowsDrive = regexp.MustCompile(`^([A-Za-z]):`)
	wslDrive     = regexp.MustCompile(`^/mnt/([A-Za-z])`)
	// unixDrive matches a Windows drive path that already had its
	// separators turned into slashes, e.g. "C:/Users".
	unixDrive = regexp.MustCompile(`^([A-Za-z]):(/|$)`)
)

// Convert rewrites p into the target format. Converting to p's own format
// returns p unchanged.
func Convert(p TypedPath, target Format) (TypedPath, error) {
	if !target.Valid() {
		return TypedPath{}, unsupported(target)
	}
	if !p.format.Valid() {
		return TypedPath{}, unsupported(p.format)
	}
	if p.format == target {
		return p, nil
	}

	var (
		out string
		err error
	)
	switch p.format {
	case Windows:
		switch target {
		case Unix:
			out = strings.ReplaceAll(p.text, `\`, "/")
		case WSL:
			out, err = windowsToWSL(p)
		}
	case Unix:
		switch target {
		case Windows:
			out = strings.ReplaceAll(p.text, "/", `\`)
		case WSL:
			out, err = unixToWSL(p)
		}
	case WSL:
		switch target {
		case Windows:
			out, err = wslToWindows(p)
		case Unix:
			out, err = wslToUnix(p)
		}
	}
	if err != nil {
		return TypedPath{}, err
	}

	if !IsValid(out, target) {
		return TypedPath{}, conversionError(ErrInvalidOutput, p, target).WithDetail("output", out)
	}
	return TypedPath{format: target, text: out}, nil
}

// ToWindows converts p to a Windows path.
func ToWindows(p TypedPath) (TypedPath, error) { return Convert(p, Windows) }

// ToUnix converts p to a Unix path.
func ToUnix(p TypedPath) (TypedPath, error) { return Convert(p, Unix) }

// ToWSL converts p to a WSL path.
func ToWSL(p TypedPath) (TypedPath, error) { return Convert(p, WSL) }

func windowsToWSL(p TypedPath) (string, error) {
	m := windowsDrive.FindStringSubmatch(p.text)
	if m == nil {
		return "", conversionError(ErrNoDriveAnchor, p, WSL)
	}
	return mountDrive(m[1], strings.ReplaceAll(p.text[len(m[0]):], `\`, "/")), nil
}

// unixToWSL only succeeds for slash-converted Windows drive paths. A plain
// Unix path says nothing about which drive it lives on.
func unixToWSL(p TypedPath) (string, error) {
	m := unixDrive.FindStringSubmatch(p.text)
	if m == nil {
		return "", conversionError(ErrNoDriveAnchor, p, WSL)
	}
	return mountDrive(m[1], p.text[2:]), nil
}

func wslToWindows(p TypedPath) (string, error) {
	m := wslDrive.FindStringSubmatch(p.text)
	if m == nil {
		return "", conversionError(ErrNoDriveAnchor, p, Windows)
	}
	rest := strings.ReplaceAll(p.text[len(m[0]):], "/", `\`)
	return strings.ToUpper(m[1]) + ":" + rest, nil
}

func wslToUnix(p TypedPath) (string, error) {
	m := wslDrive.FindStringSubmatch(p.text)
	if m == nil {
		return "", conversionError(ErrNoDriveAnchor, p, Unix)
	}
	rest := p.text[len(m[0]):]
	if rest == "" {
		// the drive root
		return "/", nil
	}
	return rest, nil
}

// mountDrive builds /mnt/<letter><rest>, inserting the separator a
// drive-relative remainder ("C:docs") lacks.
func mountDrive(letter, rest string) string {
	if rest != "" && !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return "/mnt/" + strings.ToLower(letter) + rest
}

func conversionError(sentinel *errors.Error, p TypedPath, target Format) *errors.Error {
	return errors.Newf(sentinel.Code, "cannot convert %s path to %s: %s", p.format, target, sentinel.Message).
		WithDetail("from", p.format.String()).
		WithDetail("to", target.String()).
		WithDetail("input", p.text)
}

func unsupported(f Format) *errors.Error {
	return errors.Newf(errors.ErrUnsupportedFormat, "unsupported path format %d", int(f)).
		WithDetail("format", int(f))
}
