package utils

import (
	"strings"
	"testing"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{"ShortUnchanged", "milk eggs", 100, "milk eggs"},
		{"ExactLengthUnchanged", "abcde", 5, "abcde"},
		{"Truncated", "abcdefgh", 5, "abcde..."},
		{"MultiByteRunes", "héllo wörld", 4, "héll..."},
		{"ZeroLimitDisables", "abcdefgh", 0, "abcdefgh"},
		{"Empty", "", 10, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Preview(tc.input, tc.limit)
			if result != tc.expected {
				t.Errorf("Preview(%q, %d) = %q, expected %q", tc.input, tc.limit, result, tc.expected)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("0f8fad5b-d9cb-469f-a165-70867728950e"); got != "0f8fad5b" {
		t.Errorf("ShortID returned %q", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID returned %q", got)
	}
}

func TestFormatPaths(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	result := FormatPaths([]string{"a.md", "b.md"})
	if result != "\n    - a.md\n    - b.md\n" {
		t.Errorf("Unexpected output: %q", result)
	}
	if !strings.HasPrefix(FormatPaths(nil), "\n") {
		t.Error("Expected leading newline")
	}
}

func TestReadStdinLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"TrailingNewline", "hunter22\n", "hunter22", false},
		{"CRLF", "hunter22\r\n", "hunter22", false},
		{"NoNewline", "hunter22", "hunter22", false},
		{"OnlyFirstLine", "first\nsecond\n", "first", false},
		{"Empty", "", "", true},
		{"BlankLine", "\n", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadStdinLine(strings.NewReader(tc.input))
			if tc.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadStdinLine failed: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}
