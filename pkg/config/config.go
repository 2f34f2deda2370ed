package config

import (
	"time"

	"github.com/arthur-debert/pathte/pkg/clipboard"
	"github.com/arthur-debert/pathte/pkg/errors"
	"github.com/arthur-debert/pathte/pkg/hotkey"
	"github.com/arthur-debert/pathte/pkg/keyboard"
)

// Config is the complete pathte configuration.
type Config struct {
	Hotkey    Hotkey    `koanf:"hotkey"`
	Clipboard Clipboard `koanf:"clipboard"`
	Display   Display   `koanf:"display"`
	Output    Output    `koanf:"output"`
}

// Hotkey names the keys of the paste gesture.
type Hotkey struct {
	PasteKey        string `koanf:"paste_key"`
	TriggerModifier string `koanf:"trigger_modifier"`
	ReverseModifier string `koanf:"reverse_modifier"`
}

// Clipboard controls what happens to the clipboard around a paste.
type Clipboard struct {
	Restore      bool          `koanf:"restore"`
	RestoreDelay time.Duration `koanf:"restore_delay"`
}

// Display styles the selection overlay.
type Display struct {
	SelectedMarker string `koanf:"selected_marker"`
	ShowLabels     bool   `koanf:"show_labels"`
	AccentColor    string `koanf:"accent_color"`
}

// Output picks the CLI output format.
type Output struct {
	Format string `koanf:"format"`
}

// HotkeyOptions resolves the key names into controller options.
func (c *Config) HotkeyOptions() (hotkey.Options, error) {
	key, err := keyboard.ParseKey(c.Hotkey.PasteKey)
	if err != nil {
		return hotkey.Options{}, invalid(err, "hotkey.paste_key", c.Hotkey.PasteKey)
	}
	trigger, err := keyboard.ParseModifiers(c.Hotkey.TriggerModifier)
	if err != nil {
		return hotkey.Options{}, invalid(err, "hotkey.trigger_modifier", c.Hotkey.TriggerModifier)
	}
	reverse, err := keyboard.ParseModifiers(c.Hotkey.ReverseModifier)
	if err != nil {
		return hotkey.Options{}, invalid(err, "hotkey.reverse_modifier", c.Hotkey.ReverseModifier)
	}
	return hotkey.Options{PasteKey: key, Trigger: trigger, Reverse: reverse}, nil
}

// PasterOptions returns the clipboard paster settings.
func (c *Config) PasterOptions() clipboard.PasterOptions {
	return clipboard.PasterOptions{
		Restore:      c.Clipboard.Restore,
		RestoreDelay: c.Clipboard.RestoreDelay,
	}
}

func invalid(err error, key, value string) *errors.Error {
	return errors.Wrapf(err, errors.ErrConfigValid, "invalid value for %s", key).
		WithDetail("key", key).
		WithDetail("value", value)
}
