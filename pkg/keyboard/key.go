package keyboard

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/pathte/pkg/errors"
)

// Key is a virtual key code. Values follow the Windows VK_* numbering so
// events from a native hook can be passed through unchanged.
type Key uint16

const (
	KeyNone     Key = 0x00
	KeyTab      Key = 0x09
	KeyEnter    Key = 0x0D
	KeyShift    Key = 0x10
	KeyControl  Key = 0x11
	KeyAlt      Key = 0x12
	KeyEscape   Key = 0x1B
	KeySpace    Key = 0x20
	KeyLWin     Key = 0x5B
	KeyRWin     Key = 0x5C
	KeyLShift   Key = 0xA0
	KeyRShift   Key = 0xA1
	KeyLControl Key = 0xA2
	KeyRControl Key = 0xA3
	KeyLAlt     Key = 0xA4
	KeyRAlt     Key = 0xA5

	// Key0..Key9 and KeyA..KeyZ share their ASCII codes.
	Key0 Key = '0'
	Key9 Key = '9'
	KeyA Key = 'A'
	KeyV Key = 'V'
	KeyZ Key = 'Z'
)

var keyNames = map[string]Key{
	"tab":      KeyTab,
	"enter":    KeyEnter,
	"return":   KeyEnter,
	"shift":    KeyShift,
	"ctrl":     KeyControl,
	"control":  KeyControl,
	"alt":      KeyAlt,
	"esc":      KeyEscape,
	"escape":   KeyEscape,
	"space":    KeySpace,
	"lwin":     KeyLWin,
	"rwin":     KeyRWin,
	"win":      KeyLWin,
	"lshift":   KeyLShift,
	"rshift":   KeyRShift,
	"lctrl":    KeyLControl,
	"rctrl":    KeyRControl,
	"lcontrol": KeyLControl,
	"rcontrol": KeyRControl,
	"lalt":     KeyLAlt,
	"ralt":     KeyRAlt,
}

// ParseKey resolves a key name such as "v", "ctrl", "rshift" or "enter".
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNames[n]; ok {
		return k, nil
	}
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return Key(c - 'a' + 'A'), nil
		case c >= '0' && c <= '9':
			return Key(c), nil
		}
	}
	return KeyNone, invalidKey("unknown key %q", name)
}

// Modifier returns the modifier flag a key controls, or ModNone.
func (k Key) Modifier() Modifier {
	switch k {
	case KeyShift, KeyLShift, KeyRShift:
		return ModShift
	case KeyControl, KeyLControl, KeyRControl:
		return ModCtrl
	case KeyAlt, KeyLAlt, KeyRAlt:
		return ModAlt
	case KeyLWin, KeyRWin:
		return ModMeta
	default:
		return ModNone
	}
}

// IsModifier reports whether the key is a modifier key.
func (k Key) IsModifier() bool {
	return k.Modifier() != ModNone
}

// String returns a readable key name.
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ, k >= Key0 && k <= Key9:
		return string(rune(k))
	}
	switch k {
	case KeyTab:
		return "Tab"
	case KeyEnter:
		return "Enter"
	case KeyShift:
		return "Shift"
	case KeyControl:
		return "Ctrl"
	case KeyAlt:
		return "Alt"
	case KeyEscape:
		return "Esc"
	case KeySpace:
		return "Space"
	case KeyLWin:
		return "LWin"
	case KeyRWin:
		return "RWin"
	case KeyLShift:
		return "LShift"
	case KeyRShift:
		return "RShift"
	case KeyLControl:
		return "LCtrl"
	case KeyRControl:
		return "RCtrl"
	case KeyLAlt:
		return "LAlt"
	case KeyRAlt:
		return "RAlt"
	case KeyNone:
		return "None"
	}
	return fmt.Sprintf("VK(0x%02X)", uint16(k))
}

func invalidKey(format string, args ...interface{}) *errors.Error {
	return errors.Newf(errors.ErrInvalidInput, format, args...)
}
