// Package rewrite transforms import paths in copied component sources.
//
// Component sources in the registry reference shared modules through the
// library's own internal conventions (relative paths into the icons,
// primitives and lib folders, plus the "~/" shorthand). When a component
// is installed into a consumer project those references must point at
// the consumer's configured aliases instead. The transform is a plain
// ordered rule table over the source text; the installer never parses
// the sources themselves.
package rewrite

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/crosskit-dev/crosskit/internal/errors"
)

// RulesFileName is the optional per-project rule overlay, relative to
// the project root.
const RulesFileName = ".crosskit/rewrites.yaml"

// Rule maps one source pattern to its replacement.
type Rule struct {
	// Pattern is the literal text to search for.
	Pattern string `yaml:"pattern"`

	// Replacement is the text substituted for the pattern.
	Replacement string `yaml:"replacement"`

	// All controls whether every occurrence is replaced. Folder-style
	// patterns can appear many times in one file and must set it.
	All bool `yaml:"all"`
}

// DefaultRules returns the rule table for the registry's internal
// import conventions, targeted at the given consumer aliases. Rules are
// ordered most-specific first; the single-file icon rule must run
// before the folder prefixes would also match it.
func DefaultRules(componentsAlias, libAlias string) []Rule {
	return []Rule{
		{Pattern: "../../icons/icon", Replacement: componentsAlias + "/icons/icon", All: false},
		{Pattern: "../primitives/", Replacement: componentsAlias + "/primitives/", All: true},
		{Pattern: "../../lib/", Replacement: libAlias + "/", All: true},
		{Pattern: "~/components/", Replacement: componentsAlias + "/", All: true},
		{Pattern: "~/lib/", Replacement: libAlias + "/", All: true},
	}
}

// Rewrite applies the rules to the source text in order and returns the
// transformed text. It is a pure function of its inputs.
func Rewrite(src string, rules []Rule) string {
	for _, rule := range rules {
		if rule.All {
			src = strings.ReplaceAll(src, rule.Pattern, rule.Replacement)
		} else {
			src = strings.Replace(src, rule.Pattern, rule.Replacement, 1)
		}
	}
	return src
}

// LoadRules reads additional rules from a YAML overlay file. A missing
// file is not an error; projects with stock layouts never need one.
//
// The file holds a list of rules:
//
//	- pattern: "../../theme/"
//	  replacement: "@/theme/"
//	  all: true
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.New("E303").Wrap(err)
	}

	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, errors.New("E303").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("The file must be a YAML list of {pattern, replacement, all} entries")
	}

	for _, rule := range rules {
		if rule.Pattern == "" {
			return nil, errors.New("E303").
				WithDetail("Rule with empty pattern in " + path)
		}
	}

	return rules, nil
}
