package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	kerrors "github.com/PolarWolf314/notevault/internal/errors"
	"github.com/PolarWolf314/notevault/internal/notes"
	"github.com/PolarWolf314/notevault/internal/secrets"
)

// record is the decoded form of a stored note. Pointer fields distinguish a
// missing key from an empty value.
type record struct {
	Title      *string    `json:"title"`
	Content    *string    `json:"content"`
	Tags       []string   `json:"tags"`
	CreatedAt  *time.Time `json:"created_at"`
	ModifiedAt *time.Time `json:"modified_at"`
}

// seal serializes the collection and encrypts it.
func seal(box *secrets.Box, m map[string]notes.Note) ([]byte, error) {
	plaintext, err := encode(m)
	if err != nil {
		return nil, err
	}
	defer secrets.Zero(plaintext)

	return box.Seal(plaintext)
}

// open decrypts a blob and deserializes the collection.
func open(box *secrets.Box, blob []byte) (map[string]notes.Note, error) {
	plaintext, err := box.Open(blob)
	if errors.Is(err, kerrors.ErrAuthenticationFailed) {
		return nil, kerrors.ErrInvalidPassword
	}
	if err != nil {
		return nil, err
	}
	defer secrets.Zero(plaintext)

	return decode(plaintext)
}

func encode(m map[string]notes.Note) ([]byte, error) {
	if m == nil {
		m = map[string]notes.Note{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode notes: %w", err)
	}
	return data, nil
}

func decode(data []byte) (map[string]notes.Note, error) {
	var raw map[string]record
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrCorruptedVault, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: note mapping is missing", kerrors.ErrCorruptedVault)
	}

	out := make(map[string]notes.Note, len(raw))
	for id, r := range raw {
		n, err := r.note()
		if err != nil {
			return nil, fmt.Errorf("%w: note %s: %w", kerrors.ErrCorruptedVault, id, err)
		}
		if id == "" {
			return nil, fmt.Errorf("%w: empty note id", kerrors.ErrCorruptedVault)
		}
		out[id] = n
	}
	return out, nil
}

func (r record) note() (notes.Note, error) {
	if r.Title == nil {
		return notes.Note{}, errors.New("missing title")
	}
	if r.CreatedAt == nil || r.CreatedAt.IsZero() {
		return notes.Note{}, errors.New("missing created_at")
	}
	if r.ModifiedAt == nil || r.ModifiedAt.IsZero() {
		return notes.Note{}, errors.New("missing modified_at")
	}

	n := notes.Note{
		Title:      *r.Title,
		Tags:       notes.CloneTags(r.Tags),
		CreatedAt:  r.CreatedAt.UTC(),
		ModifiedAt: r.ModifiedAt.UTC(),
	}
	if r.Content != nil {
		n.Content = *r.Content
	}

	if err := n.Validate(); err != nil {
		return notes.Note{}, err
	}
	return n, nil
}
