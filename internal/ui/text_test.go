package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	// Ensure NO_COLOR is not set for this test.
	os.Unsetenv("NO_COLOR")
	// Force color output for testing.
	originalNoColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = originalNoColor }()

	// Code formatter should not have backticks when color is enabled.
	result := Code.Sprint("notevault vault init")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}

	// Verify it contains ANSI escape codes (color output).
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "notevault notes list", "`notevault notes list`"},
		{"Path has no decoration", Path, "notes_vault.enc", "notes_vault.enc"},
		{"Flag has no decoration", Flag, "--force", "--force"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "Meeting Q1", "'Meeting Q1'"},
		{"Muted adds parentheses", Muted, "3f2a9c1d", "(3f2a9c1d)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	result := Code.Sprintf("notevault notes %s", "search")
	want := "`notevault notes search`"
	if result != want {
		t.Errorf("Code.Sprintf() = %q, want %q", result, want)
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "\n"},
		{"done", "done\n"},
		{"done\n", "done\n"},
	}
	for _, tt := range tests {
		if got := EnsureNewline(tt.input); got != tt.want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStatusLines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := SuccessLine("Vault created"); got != "✓ Vault created" {
		t.Errorf("SuccessLine() = %q", got)
	}
	if got := ErrorLine("Invalid password"); got != "✗ Invalid password" {
		t.Errorf("ErrorLine() = %q", got)
	}
	if got := HintLine("Run init"); got != "→ Run init" {
		t.Errorf("HintLine() = %q", got)
	}
}

func TestTags(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := Tags(nil); got != "" {
		t.Errorf("Tags(nil) = %q, want empty", got)
	}
	if got := Tags([]string{"work", "q1"}); got != "([work, q1])" {
		t.Errorf("Tags() = %q", got)
	}
}

func TestNoColorFunction(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !noColor() {
		t.Error("noColor() should return true when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	originalNoColor := color.NoColor
	color.NoColor = true
	if !noColor() {
		t.Error("noColor() should return true when color.NoColor is true")
	}
	color.NoColor = originalNoColor
}
