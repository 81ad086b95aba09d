package registry

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/crosskit-dev/crosskit/internal/errors"
)

// Component types. Internal components are installable dependencies but
// are hidden from user-facing selection lists.
const (
	TypeUI       = "ui"
	TypeInternal = "internal"
)

// Manifest is the component catalog: a static mapping of component
// name to declared metadata.
type Manifest struct {
	ManifestVersion int                  `json:"manifestVersion"`
	Version         string               `json:"version"`
	Components      map[string]Component `json:"components"`
}

// Component is one catalog entry.
type Component struct {
	// Name is the unique component identifier. It is filled from the
	// manifest map key, not from the JSON body.
	Name string `json:"-"`

	// Type classifies the component ("ui" or "internal").
	Type string `json:"type"`

	// Paths declares the files to install, either flat or keyed by
	// platform mode.
	Paths FileSet `json:"paths"`

	// Dependencies are other component names required transitively.
	Dependencies []string `json:"dependencies"`

	// NpmPackages declares runtime packages per platform mode. They
	// are reported, never installed.
	NpmPackages map[string][]string `json:"npmPackages"`
}

// Target is the destination of one installed file, relative to the
// resolved components path.
type Target struct {
	Folder string `json:"folder"`
	File   string `json:"file"`
}

// FileEntry maps a registry source file to its destination.
type FileEntry struct {
	From string `json:"from"`
	To   Target `json:"to"`
}

// FileSet holds a component's file entries. The manifest may declare
// them as a flat ordered list (same files on every platform) or as a
// mapping keyed by platform mode. Variant selection happens once, at
// installation time.
type FileSet struct {
	flat       []FileEntry
	byPlatform map[string][]FileEntry
}

// UnmarshalJSON accepts either a JSON array of file entries or an
// object keyed by platform mode.
func (fs *FileSet) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		return json.Unmarshal(data, &fs.flat)
	}
	return json.Unmarshal(data, &fs.byPlatform)
}

// ForPlatform returns the file entries for the given platform mode.
// Flat file sets apply to every platform. The second result reports
// whether the component declares a variant for the platform at all.
func (fs FileSet) ForPlatform(platform string) ([]FileEntry, bool) {
	if fs.byPlatform == nil {
		return fs.flat, len(fs.flat) > 0
	}
	entries, ok := fs.byPlatform[platform]
	return entries, ok && len(entries) > 0
}

// Catalog is the loaded, immutable component registry.
type Catalog struct {
	manifest *Manifest
}

// NewCatalog wraps a manifest in a Catalog. Used by tests; production
// code loads the embedded manifest via Load.
func NewCatalog(m *Manifest) *Catalog {
	for name, comp := range m.Components {
		comp.Name = name
		m.Components[name] = comp
	}
	return &Catalog{manifest: m}
}

// Load parses the embedded manifest into a Catalog and verifies the
// dependency invariant.
func Load() (*Catalog, error) {
	manifest, err := embeddedManifest()
	if err != nil {
		return nil, err
	}

	c := NewCatalog(manifest)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Version returns the catalog version string.
func (c *Catalog) Version() string {
	return c.manifest.Version
}

// Get returns the named component.
func (c *Catalog) Get(name string) (Component, bool) {
	comp, ok := c.manifest.Components[name]
	return comp, ok
}

// Names returns all component names, sorted.
func (c *Catalog) Names() []string {
	var names []string
	for name := range c.manifest.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UINames returns the names of user-facing components, sorted.
// Internal components are installable only as dependencies.
func (c *Catalog) UINames() []string {
	var names []string
	for name, comp := range c.manifest.Components {
		if comp.Type == TypeUI {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Validate verifies that every declared dependency exists in the
// catalog. A dangling dependency is a resolution error, not a skip.
func (c *Catalog) Validate() error {
	var missing []string
	for name, comp := range c.manifest.Components {
		for _, dep := range comp.Dependencies {
			if _, ok := c.manifest.Components[dep]; !ok {
				missing = append(missing, name+" -> "+dep)
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errors.New("E201").
			WithDetail("Catalog declares missing dependencies: " + strings.Join(missing, ", "))
	}
	return nil
}

// Resolve expands the requested component names into the deduplicated
// transitive closure of components to install.
//
// All requested names are validated up front so the error lists every
// unrecognized name at once. The requested set is sorted before
// expansion, making the output order a deterministic function of the
// set: dependencies first, each component exactly once.
func (c *Catalog) Resolve(requested []string) ([]Component, error) {
	var unknown []string
	seen := make(map[string]bool)
	for _, name := range requested {
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := c.manifest.Components[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errors.New("E201").
			WithDetail("Unknown components: " + strings.Join(unknown, ", ")).
			WithSuggestion("Run 'crosskit list' to see available components")
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	visited := make(map[string]bool)
	var order []Component

	var visit func(name string) error
	visit = func(name string) error {
		if visited[name] {
			return nil
		}
		// Marked before recursing so a dependency cycle terminates
		// instead of looping.
		visited[name] = true

		comp, ok := c.manifest.Components[name]
		if !ok {
			return errors.New("E201").
				WithDetail("Unknown components: " + name)
		}

		for _, dep := range comp.Dependencies {
			if err := visit(dep); err != nil {
				return err
			}
		}

		order = append(order, comp)
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}

	return order, nil
}
