package config

import (
	"github.com/arthur-debert/pathte/pkg/errors"
	"github.com/arthur-debert/pathte/pkg/ui"
)

// Validate checks values that the loader cannot check by type alone.
func (c *Config) Validate() error {
	opts, err := c.HotkeyOptions()
	if err != nil {
		return err
	}
	if opts.PasteKey.IsModifier() {
		return errors.New(errors.ErrConfigValid, "hotkey.paste_key cannot be a modifier key").
			WithDetail("value", c.Hotkey.PasteKey)
	}
	if opts.Trigger == opts.Reverse {
		return errors.New(errors.ErrConfigValid, "hotkey.trigger_modifier and hotkey.reverse_modifier must differ").
			WithDetail("value", c.Hotkey.TriggerModifier)
	}
	if c.Clipboard.RestoreDelay < 0 {
		return errors.Newf(errors.ErrConfigValid, "clipboard.restore_delay must not be negative, got %s", c.Clipboard.RestoreDelay)
	}
	if c.Display.SelectedMarker == "" {
		return errors.New(errors.ErrConfigValid, "display.selected_marker must not be empty")
	}
	if _, err := ui.ParseFormat(c.Output.Format); err != nil {
		return invalid(err, "output.format", c.Output.Format)
	}
	return nil
}
