package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/crosskit-dev/crosskit/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "crosskit.json"

	// PlatformUniversal targets web and native from the same sources.
	PlatformUniversal = "universal"

	// PlatformNativeOnly targets native platforms only.
	PlatformNativeOnly = "native-only"

	// DefaultComponentsAlias is the default import alias for components.
	DefaultComponentsAlias = "@/components"

	// DefaultLibAlias is the default import alias for shared lib code.
	DefaultLibAlias = "@/lib"
)

// Aliases are the import-path prefixes the consumer project uses.
type Aliases struct {
	// Components is the alias for the components directory.
	Components string `json:"components"`

	// Lib is the alias for the shared lib directory.
	Lib string `json:"lib"`
}

// Config represents the complete crosskit.json configuration.
type Config struct {
	// Platforms is the platform mode, fixed at creation:
	// "universal" or "native-only".
	Platforms string `json:"platforms"`

	// Aliases are the consumer project's import-path prefixes.
	Aliases Aliases `json:"aliases"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ResolvedPaths are the absolute destinations derived from the aliases
// and a working directory. The installer only ever writes under
// Components.
type ResolvedPaths struct {
	Components string
	Lib        string
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Platforms: PlatformUniversal,
		Aliases: Aliases{
			Components: DefaultComponentsAlias,
			Lib:        DefaultLibAlias,
		},
	}
}

// notFoundError marks a missing crosskit.json, which callers treat as
// "create interactively" rather than a failure.
type notFoundError struct {
	dir string
}

func (e *notFoundError) Error() string {
	return "no " + ConfigFileName + " found in " + e.dir
}

// IsNotFound reports whether err indicates an absent configuration file.
func IsNotFound(err error) bool {
	_, ok := err.(*notFoundError)
	return ok
}

// Load reads configuration from the specified directory. It looks for
// crosskit.json in the directory. An absent file is reported through
// IsNotFound; a present but malformed file is a validation error.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &notFoundError{dir: dir}
		}
		return nil, errors.New("E103").Wrap(err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.New("E103").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration against the fixed schema.
func (c *Config) Validate() error {
	switch c.Platforms {
	case PlatformUniversal, PlatformNativeOnly:
	default:
		return errors.New("E103").
			WithDetail("platforms must be \"universal\" or \"native-only\", got \"" + c.Platforms + "\"")
	}
	if c.Aliases.Components == "" {
		return errors.New("E103").
			WithDetail("aliases.components must not be empty")
	}
	if c.Aliases.Lib == "" {
		return errors.New("E103").
			WithDetail("aliases.lib must not be empty")
	}
	return nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E104").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E104").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from, or "" for an
// unpersisted configuration.
func (c *Config) Path() string {
	return c.configPath
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// Resolve expands the alias strings into absolute filesystem paths
// rooted at dir. It is a pure function of dir and the aliases, so
// resolving twice yields the same paths.
func (c *Config) Resolve(dir string) (ResolvedPaths, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ResolvedPaths{}, errors.New("E101").Wrap(err)
	}

	return ResolvedPaths{
		Components: aliasPath(abs, c.Aliases.Components),
		Lib:        aliasPath(abs, c.Aliases.Lib),
	}, nil
}

// aliasPath maps an import alias onto the filesystem. The "@/" and "~/"
// markers both denote the project root.
func aliasPath(root, alias string) string {
	rel := alias
	for _, marker := range []string{"@/", "~/"} {
		if strings.HasPrefix(rel, marker) {
			rel = rel[len(marker):]
			break
		}
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}
