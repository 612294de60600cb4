package vault

import (
	"sort"

	kerrors "github.com/PolarWolf314/notevault/internal/errors"
	"github.com/PolarWolf314/notevault/internal/notes"
)

// AddNote stores a new note and returns its id.
func (v *Vault) AddNote(title, content string, tags []string) (string, error) {
	if err := v.requireUnlocked(); err != nil {
		return "", err
	}

	n := notes.New(title, content, tags)
	if err := n.Validate(); err != nil {
		return "", err
	}

	id := v.newID()
	n.CreatedAt = v.now().UTC()
	n.ModifiedAt = n.CreatedAt

	v.notes[id] = n
	if err := v.persist(); err != nil {
		delete(v.notes, id)
		return "", err
	}

	return id, nil
}

// UpdateNote replaces the title, content and tags of an existing note.
// The creation time is kept and the modification time advances.
func (v *Vault) UpdateNote(id, title, content string, tags []string) error {
	if err := v.requireUnlocked(); err != nil {
		return err
	}

	prev, ok := v.notes[id]
	if !ok {
		return kerrors.ErrNoteNotFound
	}

	n := notes.New(title, content, tags)
	if err := n.Validate(); err != nil {
		return err
	}
	n.CreatedAt = prev.CreatedAt
	n.ModifiedAt = v.stamp(prev.ModifiedAt)

	v.notes[id] = n
	if err := v.persist(); err != nil {
		v.notes[id] = prev
		return err
	}

	return nil
}

// DeleteNote removes a note. Deleting an unknown id does nothing.
func (v *Vault) DeleteNote(id string) error {
	if err := v.requireUnlocked(); err != nil {
		return err
	}

	prev, ok := v.notes[id]
	if !ok {
		return nil
	}

	delete(v.notes, id)
	if err := v.persist(); err != nil {
		v.notes[id] = prev
		return err
	}

	return nil
}

// GetNote returns a copy of the note with the given id.
func (v *Vault) GetNote(id string) (notes.Note, error) {
	if err := v.requireUnlocked(); err != nil {
		return notes.Note{}, err
	}

	n, ok := v.notes[id]
	if !ok {
		return notes.Note{}, kerrors.ErrNoteNotFound
	}
	return n.Clone(), nil
}

// ListNotes returns every note ordered by creation time, oldest first.
// Notes created at the same instant are ordered by id.
func (v *Vault) ListNotes() ([]notes.Entry, error) {
	return v.collect(func(notes.Note) bool { return true })
}

// Search returns the notes whose title, content or any tag contains query,
// ignoring case, in listing order.
func (v *Vault) Search(query string) ([]notes.Entry, error) {
	return v.collect(func(n notes.Note) bool { return n.Matches(query) })
}

func (v *Vault) collect(keep func(notes.Note) bool) ([]notes.Entry, error) {
	if err := v.requireUnlocked(); err != nil {
		return nil, err
	}

	entries := make([]notes.Entry, 0, len(v.notes))
	for id, n := range v.notes {
		if keep(n) {
			entries = append(entries, notes.Entry{ID: id, Note: n.Clone()})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Note.CreatedAt, entries[j].Note.CreatedAt
		if !a.Equal(b) {
			return a.Before(b)
		}
		return entries[i].ID < entries[j].ID
	})

	return entries, nil
}

// newID returns an id not present in the collection.
func (v *Vault) newID() string {
	for {
		id := notes.NewID()
		if _, taken := v.notes[id]; !taken {
			return id
		}
	}
}
