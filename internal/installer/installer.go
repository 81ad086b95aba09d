package installer

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/crosskit-dev/crosskit/internal/config"
	"github.com/crosskit-dev/crosskit/internal/errors"
	"github.com/crosskit-dev/crosskit/internal/logger"
	"github.com/crosskit-dev/crosskit/internal/prompt"
	"github.com/crosskit-dev/crosskit/internal/registry"
	"github.com/crosskit-dev/crosskit/internal/rewrite"
)

// Installer materializes resolved components into a consumer project.
type Installer struct {
	// Paths are the resolved destination paths. Every write lands
	// under Paths.Components.
	Paths config.ResolvedPaths

	// Platform selects which file-set variant of each component is
	// installed.
	Platform string

	// Source is the filesystem holding component payload files,
	// normally registry.Source().
	Source fs.FS

	// Rules is the import-rewrite rule table applied to every payload.
	Rules []rewrite.Rule

	// Prompter asks for per-file overwrite consent.
	Prompter prompt.Prompter

	// Overwrite replaces existing files without prompting.
	Overwrite bool
}

// Summary reports what one Install run did.
type Summary struct {
	// Written counts files created or replaced.
	Written int

	// Skipped counts files left untouched because the operator
	// declined to overwrite them.
	Skipped int
}

// Install writes the given components' files in order. Components are
// installed one at a time; within a component, file entries are written
// in declared order. A declined overwrite skips that file only; the
// rest of the batch continues.
func (i *Installer) Install(components []registry.Component) (Summary, error) {
	var summary Summary

	for _, comp := range components {
		entries, ok := comp.Paths.ForPlatform(i.Platform)
		if !ok {
			return summary, errors.New("E202").
				WithDetail("Component \"" + comp.Name + "\" has no files for platform \"" + i.Platform + "\"")
		}

		for _, entry := range entries {
			wrote, err := i.installFile(entry)
			if err != nil {
				return summary, err
			}
			if wrote {
				summary.Written++
			} else {
				summary.Skipped++
			}
		}
	}

	return summary, nil
}

// installFile writes one file entry through the rewriter. It returns
// false without error when the operator declines to overwrite.
func (i *Installer) installFile(entry registry.FileEntry) (bool, error) {
	destDir := filepath.Join(i.Paths.Components, filepath.FromSlash(entry.To.Folder))
	destPath := filepath.Join(destDir, entry.To.File)

	// A manifest entry must not escape the components root.
	rel, err := filepath.Rel(i.Paths.Components, destPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false, errors.New("E302").
			WithDetail("Destination " + destPath + " is outside the components directory")
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return false, errors.New("E302").Wrap(err)
	}

	if _, err := os.Stat(destPath); err == nil && !i.Overwrite {
		replace, err := i.Prompter.Confirm("File "+rel+" already exists. Overwrite?", false)
		if err != nil {
			return false, err
		}
		if !replace {
			logger.Info("Skipped %s", rel)
			return false, nil
		}
	}

	data, err := fs.ReadFile(i.Source, entry.From)
	if err != nil {
		return false, errors.New("E301").
			WithDetail("Could not read " + entry.From + ": " + err.Error())
	}

	content := rewrite.Rewrite(string(data), i.Rules)

	if err := os.WriteFile(destPath, []byte(content), 0644); err != nil {
		return false, errors.New("E302").Wrap(err)
	}

	logger.Success("Wrote %s", rel)
	return true, nil
}
