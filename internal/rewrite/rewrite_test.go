package rewrite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRewrite_DefaultRules(t *testing.T) {
	rules := DefaultRules("@/components", "@/lib")

	src := `import { Icon } from "../../icons/icon";
import * as DialogPrimitive from "../primitives/dialog";
import { cn } from "../../lib/utils";
`
	got := Rewrite(src, rules)

	if !strings.Contains(got, `"@/components/icons/icon"`) {
		t.Errorf("icon import not rewritten: %q", got)
	}
	if !strings.Contains(got, `"@/components/primitives/dialog"`) {
		t.Errorf("primitives import not rewritten: %q", got)
	}
	if !strings.Contains(got, `"@/lib/utils"`) {
		t.Errorf("lib import not rewritten: %q", got)
	}
	if strings.Contains(got, "../") {
		t.Errorf("relative paths remain: %q", got)
	}
}

func TestRewrite_AllOccurrences(t *testing.T) {
	rules := DefaultRules("@/components", "@/lib")

	src := `import * as A from "../primitives/dialog";
import * as B from "../primitives/portal";
import * as C from "../primitives/slot";
`
	got := Rewrite(src, rules)

	if strings.Contains(got, "../primitives/") {
		t.Errorf("folder pattern must be replaced everywhere: %q", got)
	}
	if n := strings.Count(got, "@/components/primitives/"); n != 3 {
		t.Errorf("replacement count = %d, want 3", n)
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	rules := DefaultRules("@/components", "@/lib")

	src := `import { Icon } from "../../icons/icon";
import { cn } from "../../lib/utils";
import { useTheme } from "~/lib/theme";
`
	once := Rewrite(src, rules)
	twice := Rewrite(once, rules)

	if once != twice {
		t.Errorf("Rewrite is not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestRewrite_ShorthandPrefix(t *testing.T) {
	rules := DefaultRules("@/components", "@/lib")

	src := `import { Button } from "~/components/ui/button";`
	got := Rewrite(src, rules)

	if got != `import { Button } from "@/components/ui/button";` {
		t.Errorf("shorthand not rewritten: %q", got)
	}
}

func TestRewrite_SingleFileRuleFirstMatchOnly(t *testing.T) {
	rules := []Rule{
		{Pattern: "x", Replacement: "y", All: false},
	}
	if got := Rewrite("x x x", rules); got != "y x x" {
		t.Errorf("non-All rule replaced more than the first match: %q", got)
	}
}

func TestRewrite_RuleOrder(t *testing.T) {
	// The specific icon rule runs before anything that could shadow it.
	rules := DefaultRules("@/components", "@/lib")

	src := `import { Icon } from "../../icons/icon";`
	got := Rewrite(src, rules)
	if got != `import { Icon } from "@/components/icons/icon";` {
		t.Errorf("icon rule result: %q", got)
	}
}

func TestRewrite_NoMatchesUnchanged(t *testing.T) {
	rules := DefaultRules("@/components", "@/lib")
	src := "const answer = 42;\n"
	if got := Rewrite(src, rules); got != src {
		t.Errorf("text without patterns changed: %q", got)
	}
}

func TestLoadRules(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rewrites.yaml")

	content := `- pattern: "../../theme/"
  replacement: "@/theme/"
  all: true
- pattern: "../animations/spring"
  replacement: "@/animations/spring"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules error: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("len(rules) = %d, want 2", len(rules))
	}
	if rules[0].Pattern != "../../theme/" || !rules[0].All {
		t.Errorf("rule[0] = %+v", rules[0])
	}
	if rules[1].All {
		t.Error("rule[1] should default to first-match-only")
	}

	got := Rewrite(`import a from "../../theme/dark"; import b from "../../theme/light";`, rules)
	if strings.Contains(got, "../../theme/") {
		t.Errorf("overlay rule not applied everywhere: %q", got)
	}
}

func TestLoadRules_Missing(t *testing.T) {
	rules, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing overlay should not error, got %v", err)
	}
	if rules != nil {
		t.Errorf("rules = %v, want nil", rules)
	}
}

func TestLoadRules_Invalid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rewrites.yaml")

	if err := os.WriteFile(path, []byte("{not yaml list"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRules(path); err == nil {
		t.Error("expected error for malformed overlay")
	}

	if err := os.WriteFile(path, []byte("- replacement: x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRules(path); err == nil {
		t.Error("expected error for rule without pattern")
	}
}
