package config

import (
	"github.com/arthur-debert/pathte/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// document mirrors Config with TOML-friendly field types.
type document struct {
	Hotkey struct {
		PasteKey        string `toml:"paste_key"`
		TriggerModifier string `toml:"trigger_modifier"`
		ReverseModifier string `toml:"reverse_modifier"`
	} `toml:"hotkey"`
	Clipboard struct {
		Restore      bool   `toml:"restore"`
		RestoreDelay string `toml:"restore_delay"`
	} `toml:"clipboard"`
	Display struct {
		SelectedMarker string `toml:"selected_marker"`
		ShowLabels     bool   `toml:"show_labels"`
		AccentColor    string `toml:"accent_color"`
	} `toml:"display"`
	Output struct {
		Format string `toml:"format"`
	} `toml:"output"`
}

// Generate renders cfg as a TOML config file.
func Generate(cfg *Config) (string, error) {
	var doc document
	doc.Hotkey.PasteKey = cfg.Hotkey.PasteKey
	doc.Hotkey.TriggerModifier = cfg.Hotkey.TriggerModifier
	doc.Hotkey.ReverseModifier = cfg.Hotkey.ReverseModifier
	doc.Clipboard.Restore = cfg.Clipboard.Restore
	doc.Clipboard.RestoreDelay = cfg.Clipboard.RestoreDelay.String()
	doc.Display.SelectedMarker = cfg.Display.SelectedMarker
	doc.Display.ShowLabels = cfg.Display.ShowLabels
	doc.Display.AccentColor = cfg.Display.AccentColor
	doc.Output.Format = cfg.Output.Format

	out, err := toml.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(out), nil
}
