package config

import (
	"fmt"

	"github.com/stratobyte/flightcore/pkg/input"
	"github.com/zerodha/logf"
)

// LoadBindings resolves every BindingEntry in cfg.Bindings into
// ActionService bindings (spec.md §6.4): "unknown action names yield a
// loader error; unknown device/input locators skip the binding and log a
// warning."
func LoadBindings(cfg *Config, actions *input.ActionService, log *logf.Logger) error {
	for ctxName, entries := range cfg.Bindings {
		ctx := input.Context(ctxName)
		for _, entry := range entries {
			binding, ok, err := resolveBinding(entry, log)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if !actions.AddBinding(ctx, binding) {
				log.Warn("duplicate binding dropped", "context", ctxName, "action", entry.Action)
			}
		}
	}
	return nil
}

func resolveBinding(entry BindingEntry, log *logf.Logger) (input.Binding, bool, error) {
	action, ok := input.ParseAction(entry.Action)
	if !ok {
		return input.Binding{}, false, fmt.Errorf("config: unknown action name %q", entry.Action)
	}

	var device input.DeviceKind
	switch entry.Device {
	case "keyboard":
		device = input.DeviceKeyboard
	case "gamepad":
		device = input.DeviceGamepad
	default:
		log.Warn("unknown device, skipping binding", "device", entry.Device, "action", entry.Action)
		return input.Binding{}, false, nil
	}

	locator := input.InputLocator{
		Device:    device,
		KeyCode:   entry.KeyCode,
		GamepadID: entry.GamepadID,
		Index:     entry.Index,
		IsAxis:    entry.IsAxis,
	}

	scale := entry.Scale
	if scale == 0 {
		scale = 1
	}

	return input.Binding{
		Locator:   locator,
		Modifiers: entry.Modifiers,
		Action:    action,
		Scale:     scale,
		DeadZone:  entry.DeadZone,
	}, true, nil
}
