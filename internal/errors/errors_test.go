package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "cli error",
			code:    "E101",
			wantMsg: "Invalid working directory",
			wantCat: CategoryCLI,
		},
		{
			name:    "registry error",
			code:    "E201",
			wantMsg: "Unknown component",
			wantCat: CategoryRegistry,
		},
		{
			name:    "io error",
			code:    "E302",
			wantMsg: "Could not write component file",
			wantCat: CategoryIO,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryConfig, "field %q is required", "aliases")
	if err.Message != `field "aliases" is required` {
		t.Errorf("Message = %q, want %q", err.Message, `field "aliases" is required`)
	}
	if err.Category != CategoryConfig {
		t.Errorf("Category = %q, want %q", err.Category, CategoryConfig)
	}
}

func TestCrosskitError_Error(t *testing.T) {
	err := New("E201")
	got := err.Error()
	want := "E201: Unknown component"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &CrosskitError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestCrosskitError_WithSuggestion(t *testing.T) {
	err := New("E201").WithSuggestion("Run 'crosskit list' to see available components")
	if err.Suggestion != "Run 'crosskit list' to see available components" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
}

func TestCrosskitError_Wrap(t *testing.T) {
	inner := errors.New("disk full")
	err := New("E302").Wrap(inner)

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
	if err.Detail != "disk full" {
		t.Errorf("Detail = %q, want wrapped error text", err.Detail)
	}

	// Wrap must not clobber an existing detail
	err2 := New("E302").WithDetail("custom detail").Wrap(inner)
	if err2.Detail != "custom detail" {
		t.Errorf("Detail = %q, want %q", err2.Detail, "custom detail")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E301") != nil {
		t.Error("FromError(nil) should be nil")
	}

	ce := New("E201")
	if got := FromError(ce, "E301"); got != ce {
		t.Error("FromError should pass through CrosskitError unchanged")
	}

	wrapped := FromError(errors.New("boom"), "E301")
	if wrapped.Code != "E301" {
		t.Errorf("Code = %q, want %q", wrapped.Code, "E301")
	}
}

func TestHasCode(t *testing.T) {
	if !HasCode(New("E202"), "E202") {
		t.Error("HasCode should match the error's code")
	}
	if HasCode(New("E202"), "E201") {
		t.Error("HasCode should not match a different code")
	}
	if HasCode(errors.New("plain"), "E202") {
		t.Error("HasCode should reject non-CrosskitError values")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E201").
		WithDetail("Unknown components: carousel, toast").
		WithSuggestion("Run 'crosskit list' to see available components")

	out := err.Format()

	if !strings.Contains(out, "ERROR E201: Unknown component") {
		t.Errorf("Format missing header: %q", out)
	}
	if !strings.Contains(out, "Unknown components: carousel, toast") {
		t.Errorf("Format missing detail: %q", out)
	}
	if !strings.Contains(out, "Hint: Run 'crosskit list'") {
		t.Errorf("Format missing suggestion: %q", out)
	}
	if !strings.Contains(out, "https://crosskit.dev/docs/errors/E201") {
		t.Errorf("Format missing doc URL: %q", out)
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E103").WithDetail("platforms must be universal or native-only")
	got := err.FormatCompact()
	want := "E103: Invalid configuration (platforms must be universal or native-only)"
	if got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("a long detail string that should be wrapped into more than one line of output", 30)
	if len(lines) < 2 {
		t.Errorf("expected wrapped output, got %v", lines)
	}
	for _, line := range lines {
		if len(line) > 30 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
}

func TestRegistryTemplatesComplete(t *testing.T) {
	for code, tmpl := range registry {
		if tmpl.Message == "" {
			t.Errorf("%s has no message", code)
		}
		if tmpl.Category == "" {
			t.Errorf("%s has no category", code)
		}
		if tmpl.DocURL == "" {
			t.Errorf("%s has no doc URL", code)
		}
	}
}
