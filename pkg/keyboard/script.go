package keyboard

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/pathte/pkg/errors"
)

// ParseScript reads an event script. See the package documentation for the
// syntax. "press <spec>" is shorthand for a down followed by an up.
func ParseScript(r io.Reader) ([]Event, error) {
	var (
		events []Event
		held   Modifier
		lineNo int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, scriptError(lineNo, "expected \"<down|up|press> <key>\", got %q", strings.TrimSpace(line))
		}

		key, explicit, err := parseSpec(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "line %d", lineNo)
		}

		switch strings.ToLower(fields[0]) {
		case "down":
			held = held.With(key.Modifier())
			events = append(events, Down(key, held|explicit))
		case "up":
			held = held.Without(key.Modifier())
			events = append(events, Up(key, held|explicit))
		case "press":
			events = append(events, Down(key, held|explicit|key.Modifier()), Up(key, held|explicit))
		default:
			return nil, scriptError(lineNo, "unknown action %q", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to read script")
	}
	return events, nil
}

// parseSpec splits "ctrl+shift+v" into the key and its explicit modifiers.
func parseSpec(spec string) (Key, Modifier, error) {
	parts := strings.Split(spec, "+")
	key, err := ParseKey(parts[len(parts)-1])
	if err != nil {
		return KeyNone, ModNone, err
	}
	if len(parts) == 1 {
		return key, ModNone, nil
	}
	mods, err := ParseModifiers(strings.Join(parts[:len(parts)-1], "+"))
	if err != nil {
		return KeyNone, ModNone, err
	}
	return key, mods, nil
}

func scriptError(line int, format string, args ...interface{}) *errors.Error {
	return errors.Newf(errors.ErrInvalidInput, format, args...).WithDetail("line", line)
}
