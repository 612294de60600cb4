package notes

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	kerrors "github.com/PolarWolf314/notevault/internal/errors"

	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// frontMatter is the YAML header written above exported note content.
type frontMatter struct {
	ID         string    `yaml:"id,omitempty"`
	Title      string    `yaml:"title,omitempty"`
	Tags       []string  `yaml:"tags,omitempty"`
	CreatedAt  time.Time `yaml:"created_at,omitempty"`
	ModifiedAt time.Time `yaml:"modified_at,omitempty"`
}

// RenderMarkdown renders a note as Markdown with a YAML front matter header.
func RenderMarkdown(id string, n Note) ([]byte, error) {
	fm := frontMatter{
		ID:         id,
		Title:      n.Title,
		Tags:       n.Tags,
		CreatedAt:  n.CreatedAt.UTC(),
		ModifiedAt: n.ModifiedAt.UTC(),
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("failed to encode front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter + "\n")
	buf.Write(header)
	buf.WriteString(frontMatterDelimiter + "\n")
	buf.WriteString(n.Content)
	buf.WriteString("\n")

	return buf.Bytes(), nil
}

// ParseMarkdown reads a Markdown document into a note. Front matter is
// optional; without a title in it, the first "# " heading or fallbackTitle
// is used. Timestamps in the front matter are ignored: the vault stamps
// imported notes itself. The document's final newline is dropped, undoing
// the one RenderMarkdown appends.
func ParseMarkdown(data []byte, fallbackTitle string) (Note, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	var fm frontMatter
	body := text
	if strings.HasPrefix(text, frontMatterDelimiter+"\n") {
		rest := text[len(frontMatterDelimiter)+1:]

		var header string
		if strings.HasPrefix(rest, frontMatterDelimiter) {
			body = rest[len(frontMatterDelimiter):]
		} else {
			end := strings.Index(rest, "\n"+frontMatterDelimiter)
			if end < 0 {
				return Note{}, fmt.Errorf("%w: missing closing delimiter", kerrors.ErrInvalidFrontMatter)
			}
			header, body = rest[:end], rest[end+1+len(frontMatterDelimiter):]
		}

		if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
			return Note{}, fmt.Errorf("%w: %v", kerrors.ErrInvalidFrontMatter, err)
		}
		body = strings.TrimPrefix(body, "\n")
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = headingTitle(body)
	}
	if title == "" {
		title = strings.TrimSpace(fallbackTitle)
	}

	n := New(title, strings.TrimSuffix(body, "\n"), fm.Tags)
	if err := n.Validate(); err != nil {
		return Note{}, err
	}

	return n, nil
}

// TitleFromPath derives a fallback title from a file name.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func headingTitle(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
		return ""
	}
	return ""
}

// FileName returns the export file name for a note: a slug of the title
// followed by the short id, so titles that collide still get distinct files.
func FileName(id string, n Note) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(n.Title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "note"
	}
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return slug + "-" + short + ".md"
}
