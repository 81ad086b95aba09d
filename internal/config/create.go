package config

import (
	"path/filepath"

	"github.com/crosskit-dev/crosskit/internal/errors"
	"github.com/crosskit-dev/crosskit/internal/prompt"
)

// Create builds a configuration interactively. It prompts for the
// platform mode and both aliases, validates the assembled object, then
// asks for confirmation before persisting to dir. If the operator
// declines to persist, the in-memory configuration is returned
// unwritten and the current run proceeds without a crosskit.json.
func Create(dir string, p prompt.Prompter) (*Config, error) {
	platform, err := p.Ask("Which platforms are you targeting? (universal / native-only)", PlatformUniversal)
	if err != nil {
		return nil, err
	}

	components, err := p.Ask("Import alias for components:", DefaultComponentsAlias)
	if err != nil {
		return nil, err
	}

	lib, err := p.Ask("Import alias for lib:", DefaultLibAlias)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Platforms: platform,
		Aliases: Aliases{
			Components: components,
			Lib:        lib,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	persist, err := p.Confirm("Write configuration to "+ConfigFileName+"?", true)
	if err != nil {
		return nil, err
	}
	if !persist {
		return cfg, nil
	}

	if err := cfg.SaveTo(filepath.Join(dir, ConfigFileName)); err != nil {
		return nil, errors.FromError(err, "E104")
	}

	return cfg, nil
}
