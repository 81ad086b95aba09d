package registry

import (
	"embed"
	"encoding/json"
	"io/fs"
)

//go:embed components
var embeddedComponents embed.FS

// embeddedManifest parses the embedded component manifest.
func embeddedManifest() (*Manifest, error) {
	data, err := embeddedComponents.ReadFile("components/manifest.json")
	if err != nil {
		return nil, err
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}

	return &manifest, nil
}

// Source returns the filesystem holding the component payload files.
// FileEntry.From paths are relative to this filesystem's root.
func Source() fs.FS {
	sub, err := fs.Sub(embeddedComponents, "components")
	if err != nil {
		// The components directory is compiled into the binary; a
		// failure here is a build defect, not a runtime condition.
		panic(err)
	}
	return sub
}
