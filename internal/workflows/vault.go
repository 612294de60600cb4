package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/notevault/internal/errors"
	"github.com/PolarWolf314/notevault/internal/notes"
	"github.com/PolarWolf314/notevault/internal/secrets"
	"github.com/PolarWolf314/notevault/internal/vault"
)

// VaultAccess identifies a vault and the password that unlocks it.
type VaultAccess struct {
	// VaultPath is the resolved location of the encrypted blob.
	VaultPath string

	// Password is the master password.
	Password []byte
}

// openVault unlocks the vault described by access. The caller must Lock it.
func openVault(ctx context.Context, access VaultAccess) (*vault.Vault, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v := vault.New(access.VaultPath, vault.Options{})
	if err := v.Unlock(access.Password); err != nil {
		return nil, err
	}
	return v, nil
}

// resolveID returns the full id matching idOrPrefix. An exact id always
// wins and a complete id that is not stored is not treated as a prefix;
// otherwise the prefix must match exactly one note.
func resolveID(v *vault.Vault, idOrPrefix string) (string, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return "", kerrors.ErrNoteNotFound
	}

	if _, err := v.GetNote(idOrPrefix); err == nil {
		return idOrPrefix, nil
	}
	if notes.IsValidID(idOrPrefix) {
		return "", fmt.Errorf("%w: %s", kerrors.ErrNoteNotFound, idOrPrefix)
	}

	entries, err := v.ListNotes()
	if err != nil {
		return "", err
	}

	var matches []string
	for _, e := range entries {
		if strings.HasPrefix(e.ID, idOrPrefix) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", kerrors.ErrNoteNotFound, idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s matches %d notes", kerrors.ErrAmbiguousID, idOrPrefix, len(matches))
	}
}

// CreateVaultOptions configures the create vault workflow.
type CreateVaultOptions struct {
	// VaultPath is where the vault will be created.
	VaultPath string

	// Password is the new master password.
	Password []byte

	// Confirmation must equal Password when non-nil.
	Confirmation []byte

	// MinPasswordLength is the minimum number of characters in Password.
	MinPasswordLength int

	// Force overwrites an existing vault.
	Force bool
}

// CreateVaultResult contains the outcome of a create vault operation.
type CreateVaultResult struct {
	// VaultPath is the location of the encrypted blob.
	VaultPath string

	// SaltPath is the location of the salt artifact.
	SaltPath string

	// Overwritten indicates an existing vault was replaced.
	Overwritten bool
}

// CreateVault creates a new empty vault protected by the given password.
//
// Returns ErrPasswordTooShort if the password is below MinPasswordLength.
// Returns ErrPasswordMismatch if Confirmation does not match.
// Returns ErrVaultExists if a vault is already present and Force is false.
// Returns ErrStorageIO if the vault artifacts cannot be written.
func CreateVault(ctx context.Context, opts CreateVaultOptions) (*CreateVaultResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if n := utf8.RuneCount(opts.Password); n < opts.MinPasswordLength {
		return nil, fmt.Errorf("%w: %d characters, need at least %d", kerrors.ErrPasswordTooShort, n, opts.MinPasswordLength)
	}

	if opts.Confirmation != nil && !secrets.ConstantTimeEqual(opts.Password, opts.Confirmation) {
		return nil, kerrors.ErrPasswordMismatch
	}

	v := vault.New(opts.VaultPath, vault.Options{})
	exists := v.Exists()
	if exists && !opts.Force {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrVaultExists, opts.VaultPath)
	}

	if err := v.Create(opts.Password); err != nil {
		return nil, err
	}
	v.Lock()

	return &CreateVaultResult{
		VaultPath:   v.Path(),
		SaltPath:    v.SaltPath(),
		Overwritten: exists,
	}, nil
}

// ArtifactInfo describes one vault file on disk.
type ArtifactInfo struct {
	// Path is the location of the file.
	Path string `json:"path"`

	// Present indicates the file exists.
	Present bool `json:"present"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// ModTime is the last modification time.
	ModTime time.Time `json:"modified_at"`
}

// StatusOptions configures the status workflow.
type StatusOptions struct {
	// VaultPath is the location of the encrypted blob.
	VaultPath string
}

// StatusResult contains the outcome of a status operation.
type StatusResult struct {
	// Blob describes the encrypted blob.
	Blob ArtifactInfo `json:"blob"`

	// Salt describes the salt artifact.
	Salt ArtifactInfo `json:"salt"`

	// Initialized indicates both artifacts are present.
	Initialized bool `json:"initialized"`

	// SaltValid indicates the salt artifact has the expected length.
	SaltValid bool `json:"salt_valid"`
}

// Status reports on the vault artifacts without unlocking the vault.
//
// Returns ErrStorageIO if an artifact exists but cannot be inspected.
func Status(ctx context.Context, opts StatusOptions) (*StatusResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v := vault.New(opts.VaultPath, vault.Options{})

	blob, err := inspectArtifact(v.Path())
	if err != nil {
		return nil, err
	}
	salt, err := inspectArtifact(v.SaltPath())
	if err != nil {
		return nil, err
	}

	return &StatusResult{
		Blob:        blob,
		Salt:        salt,
		Initialized: blob.Present && salt.Present,
		SaltValid:   salt.Present && salt.Size == secrets.SaltSize,
	}, nil
}

func inspectArtifact(path string) (ArtifactInfo, error) {
	info := ArtifactInfo{Path: path}

	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("%w: %w", kerrors.ErrStorageIO, err)
	}

	info.Present = true
	info.Size = stat.Size()
	info.ModTime = stat.ModTime()
	return info, nil
}

// VerifyOptions configures the verify workflow.
type VerifyOptions struct {
	VaultAccess
}

// VerifyResult contains the outcome of a verify operation.
type VerifyResult struct {
	// NoteCount is the number of notes in the vault.
	NoteCount int

	// TagCount is the number of distinct tags across all notes.
	TagCount int

	// LastModified is the most recent modification time, zero for an empty vault.
	LastModified time.Time
}

// Verify unlocks the vault and checks that its contents decode.
//
// Returns ErrVaultNotFound if the vault does not exist.
// Returns ErrInvalidPassword if the password is wrong.
// Returns ErrCorruptedVault if the decrypted contents are malformed.
func Verify(ctx context.Context, opts VerifyOptions) (*VerifyResult, error) {
	v, err := openVault(ctx, opts.VaultAccess)
	if err != nil {
		return nil, err
	}
	defer v.Lock()

	entries, err := v.ListNotes()
	if err != nil {
		return nil, err
	}

	result := &VerifyResult{NoteCount: v.Len()}
	tags := map[string]bool{}
	for _, e := range entries {
		for _, tag := range e.Note.Tags {
			tags[strings.ToLower(tag)] = true
		}
		if e.Note.ModifiedAt.After(result.LastModified) {
			result.LastModified = e.Note.ModifiedAt
		}
	}
	result.TagCount = len(tags)

	return result, nil
}
