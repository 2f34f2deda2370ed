package paths

import (
	"regexp"
	"strings"
)

// urlSchemes are prefixes that mark text as a URL rather than a path.
var urlSchemes = []string{"http:", "https:", "ftp:", "sftp:", "file:"}

var (
	wslPattern       = regexp.MustCompile(`^/mnt/[A-Za-z](/.*)?$`)
	bareDrivePattern = regexp.MustCompile(`^[A-Za-z]:\\?$`)
	drivePrefix      = regexp.MustCompile(`^[A-Za-z]:`)
)

// windowsReserved are characters Windows forbids in path components.
const windowsReserved = `<>:"|?*`

// Classify returns the format of text, or false when text is not a path.
// Patterns are tried in the order WSL, Unix, Windows and the first match wins.
func Classify(text string) (Format, bool) {
	if rejected(text) {
		return 0, false
	}
	switch {
	case isWSL(text):
		return WSL, true
	case isUnix(text):
		return Unix, true
	case isWindows(text):
		return Windows, true
	default:
		return 0, false
	}
}

// IsValid reports whether text satisfies the pattern of format on its own,
// without the priority ordering Classify applies. "/mnt/c/x" is valid both
// as WSL and as Unix.
func IsValid(text string, format Format) bool {
	if rejected(text) {
		return false
	}
	switch format {
	case Windows:
		return isWindows(text)
	case Unix:
		return isUnix(text)
	case WSL:
		return isWSL(text)
	default:
		return false
	}
}

// rejected filters text that can never be a path.
func rejected(text string) bool {
	if text == "" {
		return true
	}
	if strings.ContainsAny(text, "\r\n\x00") {
		return true
	}
	lower := strings.ToLower(text)
	for _, scheme := range urlSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

func isWSL(text string) bool {
	return wslPattern.MatchString(text) && !strings.Contains(text, "//")
}

func isUnix(text string) bool {
	return strings.Contains(text, "/") && !strings.Contains(text, "//")
}

func isWindows(text string) bool {
	if bareDrivePattern.MatchString(text) {
		return true
	}
	if !strings.Contains(text, `\`) {
		return false
	}
	body := drivePrefix.ReplaceAllString(text, "")
	return !strings.ContainsAny(body, windowsReserved)
}
