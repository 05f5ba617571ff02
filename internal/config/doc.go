// Package config holds the Configuration of a stepper control.
//
// A Config is a plain value: bounds, step, unit suffix, caption, glyphs and
// colors, and the alert policy. It is built once per control and never
// mutated afterwards; With returns a modified copy.
//
// # Sources
//
// Values are resolved in three layers, later layers winning:
//
//  1. Default() - built-in defaults
//  2. A YAML defaults file, see Load and DefaultPath
//  3. Options passed by the host when the control is constructed
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/stepper/config.yaml or $HOME/.config/stepper/config.yaml
//   - macOS: $HOME/.config/stepper/config.yaml
//   - Windows: %LOCALAPPDATA%\stepper\config.yaml
//
// # Example
//
//	cfg, err := config.LoadDefault()
//	if err != nil {
//	    return err
//	}
//	cfg = cfg.With(config.WithBounds(0, 10), config.WithUnit("%"))
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
