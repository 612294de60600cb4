package workflows

import (
	"context"
	"strings"

	"github.com/PolarWolf314/notevault/internal/notes"
)

// AddNoteOptions configures the add note workflow.
type AddNoteOptions struct {
	VaultAccess

	// Title is the note title. It must not be blank.
	Title string

	// Content is the note body.
	Content string

	// Tags are attached to the note. Repeated tags are dropped.
	Tags []string
}

// AddNoteResult contains the outcome of an add note operation.
type AddNoteResult struct {
	// ID is the id assigned to the new note.
	ID string

	// Note is the stored note.
	Note notes.Note
}

// AddNote stores a new note in the vault.
//
// Returns ErrVaultNotFound, ErrInvalidPassword or ErrCorruptedVault if the vault cannot be opened.
// Returns ErrEmptyTitle if the title is blank.
// Returns ErrStorageIO if the vault cannot be written.
func AddNote(ctx context.Context, opts AddNoteOptions) (*AddNoteResult, error) {
	v, err := openVault(ctx, opts.VaultAccess)
	if err != nil {
		return nil, err
	}
	defer v.Lock()

	id, err := v.AddNote(strings.TrimSpace(opts.Title), opts.Content, notes.DedupeTags(opts.Tags))
	if err != nil {
		return nil, err
	}

	n, err := v.GetNote(id)
	if err != nil {
		return nil, err
	}

	return &AddNoteResult{ID: id, Note: n}, nil
}

// EditNoteOptions configures the edit note workflow. Fields that are not
// supplied keep the note's current value.
type EditNoteOptions struct {
	VaultAccess

	// ID is the note id or a unique prefix of it.
	ID string

	// Title replaces the title when non-nil.
	Title *string

	// Content replaces the content when non-nil.
	Content *string

	// Tags replace the current tags when ReplaceTags is set.
	Tags []string

	// ReplaceTags applies Tags, which may be empty to clear them.
	ReplaceTags bool
}

// EditNoteResult contains the outcome of an edit note operation.
type EditNoteResult struct {
	// ID is the full id of the edited note.
	ID string

	// Note is the note after the edit.
	Note notes.Note

	// Changed indicates a new version was written.
	Changed bool
}

// EditNote updates an existing note, keeping any field that is not supplied.
// Nothing is written when no field is supplied.
//
// Returns ErrNoteNotFound if no note matches the id.
// Returns ErrAmbiguousID if the id prefix matches several notes.
// Returns ErrEmptyTitle if the new title is blank.
func EditNote(ctx context.Context, opts EditNoteOptions) (*EditNoteResult, error) {
	v, err := openVault(ctx, opts.VaultAccess)
	if err != nil {
		return nil, err
	}
	defer v.Lock()

	id, err := resolveID(v, opts.ID)
	if err != nil {
		return nil, err
	}

	current, err := v.GetNote(id)
	if err != nil {
		return nil, err
	}

	if opts.Title == nil && opts.Content == nil && !opts.ReplaceTags {
		return &EditNoteResult{ID: id, Note: current}, nil
	}

	title, content, tags := current.Title, current.Content, current.Tags
	if opts.Title != nil {
		title = strings.TrimSpace(*opts.Title)
	}
	if opts.Content != nil {
		content = *opts.Content
	}
	if opts.ReplaceTags {
		tags = notes.DedupeTags(opts.Tags)
	}

	if err := v.UpdateNote(id, title, content, tags); err != nil {
		return nil, err
	}

	updated, err := v.GetNote(id)
	if err != nil {
		return nil, err
	}

	return &EditNoteResult{ID: id, Note: updated, Changed: true}, nil
}

// DeleteNoteOptions configures the delete note workflow.
type DeleteNoteOptions struct {
	VaultAccess

	// ID is the note id or a unique prefix of it.
	ID string
}

// DeleteNoteResult contains the outcome of a delete note operation.
type DeleteNoteResult struct {
	// ID is the full id of the deleted note.
	ID string

	// Title is the title the note had.
	Title string
}

// DeleteNote removes a note from the vault.
//
// Returns ErrNoteNotFound if no note matches the id.
// Returns ErrAmbiguousID if the id prefix matches several notes.
func DeleteNote(ctx context.Context, opts DeleteNoteOptions) (*DeleteNoteResult, error) {
	v, err := openVault(ctx, opts.VaultAccess)
	if err != nil {
		return nil, err
	}
	defer v.Lock()

	id, err := resolveID(v, opts.ID)
	if err != nil {
		return nil, err
	}

	n, err := v.GetNote(id)
	if err != nil {
		return nil, err
	}

	if err := v.DeleteNote(id); err != nil {
		return nil, err
	}

	return &DeleteNoteResult{ID: id, Title: n.Title}, nil
}

// ListNotesOptions configures the list notes workflow.
type ListNotesOptions struct {
	VaultAccess

	// Tag limits the listing to notes carrying this tag, ignoring case.
	Tag string
}

// ListNotesResult contains the outcome of a list notes operation.
type ListNotesResult struct {
	// Notes are ordered by creation time, oldest first.
	Notes []notes.Entry
}

// ListNotes returns the notes in the vault.
func ListNotes(ctx context.Context, opts ListNotesOptions) (*ListNotesResult, error) {
	v, err := openVault(ctx, opts.VaultAccess)
	if err != nil {
		return nil, err
	}
	defer v.Lock()

	entries, err := v.ListNotes()
	if err != nil {
		return nil, err
	}

	if opts.Tag != "" {
		filtered := make([]notes.Entry, 0, len(entries))
		for _, e := range entries {
			if hasTag(e.Note, opts.Tag) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	return &ListNotesResult{Notes: entries}, nil
}

func hasTag(n notes.Note, tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// SearchNotesOptions configures the search notes workflow.
type SearchNotesOptions struct {
	VaultAccess

	// Query is matched case-insensitively against titles, content and tags.
	Query string
}

// SearchNotesResult contains the outcome of a search notes operation.
type SearchNotesResult struct {
	// Query is the query that was run.
	Query string

	// Notes are the matches in listing order.
	Notes []notes.Entry
}

// SearchNotes returns the notes matching a query.
func SearchNotes(ctx context.Context, opts SearchNotesOptions) (*SearchNotesResult, error) {
	v, err := openVault(ctx, opts.VaultAccess)
	if err != nil {
		return nil, err
	}
	defer v.Lock()

	entries, err := v.Search(opts.Query)
	if err != nil {
		return nil, err
	}

	return &SearchNotesResult{Query: opts.Query, Notes: entries}, nil
}

// ShowNoteOptions configures the show note workflow.
type ShowNoteOptions struct {
	VaultAccess

	// ID is the note id or a unique prefix of it.
	ID string
}

// ShowNoteResult contains the outcome of a show note operation.
type ShowNoteResult struct {
	notes.Entry
}

// ShowNote returns a single note.
//
// Returns ErrNoteNotFound if no note matches the id.
// Returns ErrAmbiguousID if the id prefix matches several notes.
func ShowNote(ctx context.Context, opts ShowNoteOptions) (*ShowNoteResult, error) {
	v, err := openVault(ctx, opts.VaultAccess)
	if err != nil {
		return nil, err
	}
	defer v.Lock()

	id, err := resolveID(v, opts.ID)
	if err != nil {
		return nil, err
	}

	n, err := v.GetNote(id)
	if err != nil {
		return nil, err
	}

	return &ShowNoteResult{Entry: notes.Entry{ID: id, Note: n}}, nil
}
