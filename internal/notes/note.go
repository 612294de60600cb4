// Package notes defines the note record stored in a vault.
//
// A Note is plain data: the vault owns identity assignment, timestamps and
// persistence. This package only knows how to validate, copy, match and
// render a single note.
package notes

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/notevault/internal/errors"

	"github.com/google/uuid"
)

// Note is a single note and its metadata.
type Note struct {
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Entry pairs a note with its id.
type Entry struct {
	ID   string
	Note Note
}

// NewID returns a new random note id.
func NewID() string {
	return uuid.New().String()
}

// IsValidID reports whether id has the shape produced by NewID.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// New returns a note with the given fields and no timestamps.
func New(title, content string, tags []string) Note {
	return Note{
		Title:   title,
		Content: content,
		Tags:    CloneTags(tags),
	}
}

// Validate checks the invariants every stored note must satisfy. Text must
// be valid UTF-8 so it survives the JSON encoding of the vault unchanged.
func (n Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return kerrors.ErrEmptyTitle
	}
	if !utf8.ValidString(n.Title) {
		return fmt.Errorf("%w: title", kerrors.ErrInvalidText)
	}
	if !utf8.ValidString(n.Content) {
		return fmt.Errorf("%w: content", kerrors.ErrInvalidText)
	}
	for _, tag := range n.Tags {
		if !utf8.ValidString(tag) {
			return fmt.Errorf("%w: tag %q", kerrors.ErrInvalidText, tag)
		}
	}
	return nil
}

// Clone returns a deep copy of n. Tags are never nil in the copy.
func (n Note) Clone() Note {
	c := n
	c.Tags = CloneTags(n.Tags)
	return c
}

// Matches reports whether query occurs, ignoring case, in the title, the content, or any tag.
func (n Note) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// CloneTags copies tags, returning an empty non-nil slice for nil input.
func CloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// ParseTags splits a comma-separated list, trimming whitespace and dropping blanks.
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// DedupeTags removes repeated tags, keeping the first occurrence. Comparison is case-insensitive.
func DedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}
