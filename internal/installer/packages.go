package installer

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/crosskit-dev/crosskit/internal/registry"
)

// lockFiles maps lock file names to their package manager, checked in
// order.
var lockFiles = []struct {
	file    string
	manager string
}{
	{file: "pnpm-lock.yaml", manager: "pnpm"},
	{file: "yarn.lock", manager: "yarn"},
	{file: "bun.lockb", manager: "bun"},
	{file: "package-lock.json", manager: "npm"},
}

// DetectPackageManager sniffs the lock file in dir to pick the
// consumer's package manager, defaulting to npm.
func DetectPackageManager(dir string) string {
	for _, lf := range lockFiles {
		if _, err := os.Stat(filepath.Join(dir, lf.file)); err == nil {
			return lf.manager
		}
	}
	return "npm"
}

// Packages collects the deduplicated npm packages the components
// declare for the platform, sorted. The list is reported to the
// operator; the package manager is never invoked.
func Packages(components []registry.Component, platform string) []string {
	seen := make(map[string]bool)
	for _, comp := range components {
		for _, pkg := range comp.NpmPackages[platform] {
			seen[pkg] = true
		}
	}

	var packages []string
	for pkg := range seen {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)
	return packages
}
