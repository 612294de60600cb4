package notes

import (
	"strings"
	"testing"
	"time"

	kerrors "github.com/PolarWolf314/notevault/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	n := Note{
		Title:      "Meeting Q1",
		Content:    "budget talk",
		Tags:       []string{"work", "planning"},
		CreatedAt:  ts,
		ModifiedAt: ts,
	}

	out, err := RenderMarkdown("abc", n)
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "---\n"))
	assert.Contains(t, text, "id: abc\n")
	assert.Contains(t, text, "title: Meeting Q1\n")
	assert.Contains(t, text, "- work\n")
	assert.Contains(t, text, "created_at: 2025-03-14T09:26:53Z\n")
	assert.True(t, strings.HasSuffix(text, "---\nbudget talk\n"))
}

func TestParseMarkdownRoundTrip(t *testing.T) {
	n := New("Groceries", "milk\neggs", []string{"home"})
	n.CreatedAt = time.Now().UTC()
	n.ModifiedAt = n.CreatedAt

	out, err := RenderMarkdown("id-1", n)
	require.NoError(t, err)

	parsed, err := ParseMarkdown(out, "ignored")
	require.NoError(t, err)

	assert.Equal(t, "Groceries", parsed.Title)
	assert.Equal(t, "milk\neggs", parsed.Content)
	assert.Equal(t, []string{"home"}, parsed.Tags)
	assert.True(t, parsed.CreatedAt.IsZero(), "imported notes are stamped by the vault")
}

func TestMarkdownKeepsContentExactly(t *testing.T) {
	contents := []string{
		"",
		"line",
		"line\n",
		"line\n\n",
		"  indented\n",
		"\n\nleading blank lines",
		"\n\n",
	}

	for _, content := range contents {
		out, err := RenderMarkdown("id-1", New("Title", content, nil))
		require.NoError(t, err)

		parsed, err := ParseMarkdown(out, "ignored")
		require.NoError(t, err)
		assert.Equal(t, content, parsed.Content, "rendered as %q", out)
	}
}

func TestParseMarkdownDropsOneFinalNewline(t *testing.T) {
	n, err := ParseMarkdown([]byte("# Title\nbody\n\n"), "file")
	require.NoError(t, err)
	assert.Equal(t, "# Title\nbody\n", n.Content)
}

func TestParseMarkdownTitleFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		want     string
	}{
		{"FrontMatterTitle", "---\ntitle: From Header\n---\n# Heading\nbody", "file", "From Header"},
		{"HeadingTitle", "# From Heading\nbody", "file", "From Heading"},
		{"HeadingAfterBlankLines", "\n\n# Late Heading\n", "file", "Late Heading"},
		{"FileNameTitle", "just some text", "file", "file"},
		{"EmptyFrontMatter", "---\n---\nbody", "file", "file"},
		{"WindowsNewlines", "---\r\ntitle: CRLF\r\n---\r\nbody", "file", "CRLF"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := ParseMarkdown([]byte(tc.input), tc.fallback)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.Title)
		})
	}
}

func TestParseMarkdownErrors(t *testing.T) {
	_, err := ParseMarkdown([]byte("---\ntitle: unterminated\nbody"), "file")
	assert.ErrorIs(t, err, kerrors.ErrInvalidFrontMatter)

	_, err = ParseMarkdown([]byte("---\ntitle: [unclosed\n---\nbody"), "file")
	assert.ErrorIs(t, err, kerrors.ErrInvalidFrontMatter)

	_, err = ParseMarkdown([]byte("no title anywhere"), "  ")
	assert.ErrorIs(t, err, kerrors.ErrEmptyTitle)
}

func TestTitleFromPath(t *testing.T) {
	assert.Equal(t, "meeting-notes", TitleFromPath("/tmp/notes/meeting-notes.md"))
	assert.Equal(t, "README", TitleFromPath("README"))
}

func TestFileName(t *testing.T) {
	id := "0123456789abcdef"

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"Simple", "Meeting Q1", "meeting-q1-01234567.md"},
		{"Punctuation", "  Hello, World!  ", "hello-world-01234567.md"},
		{"Unicode", "Café Über", "café-über-01234567.md"},
		{"NoLetters", "???", "note-01234567.md"},
		{"PathSeparators", "../etc/passwd", "etc-passwd-01234567.md"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FileName(id, New(tc.title, "", nil)))
		})
	}
}
