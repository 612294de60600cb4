package errors

import "errors"

// Vault state errors indicate the vault is missing or in the wrong state.
var (
	// ErrVaultLocked indicates a note operation was attempted while the vault is locked.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrVaultNotFound indicates no vault artifacts exist at the configured location.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrVaultExists indicates a vault already exists and would be overwritten.
	ErrVaultExists = errors.New("vault already exists")
)

// Cryptographic errors indicate failures during key derivation or decryption.
var (
	// ErrInvalidPassword indicates the master password did not unlock the vault.
	ErrInvalidPassword = errors.New("invalid master password")

	// ErrAuthenticationFailed indicates ciphertext was truncated, tampered with,
	// or sealed under a different key.
	ErrAuthenticationFailed = errors.New("ciphertext authentication failed")

	// ErrEmptySalt indicates key derivation was attempted without a salt.
	ErrEmptySalt = errors.New("salt must not be empty")

	// ErrKeyWiped indicates a key was used after it had been wiped.
	ErrKeyWiped = errors.New("key has been wiped")
)

// Storage errors indicate issues with the vault artifacts on disk.
var (
	// ErrStorageIO indicates reading or writing a vault artifact failed.
	ErrStorageIO = errors.New("vault storage I/O failed")

	// ErrCorruptedVault indicates the vault decrypted but its contents are malformed.
	ErrCorruptedVault = errors.New("vault contents are corrupted")
)

// Note errors indicate issues with note lookup or validation.
var (
	// ErrNoteNotFound indicates no note exists with the given id.
	ErrNoteNotFound = errors.New("note not found")

	// ErrAmbiguousID indicates an id prefix matched more than one note.
	ErrAmbiguousID = errors.New("note id prefix is ambiguous")

	// ErrEmptyTitle indicates a note was given a blank title.
	ErrEmptyTitle = errors.New("note title must not be empty")

	// ErrInvalidText indicates a title, content or tag is not valid UTF-8.
	ErrInvalidText = errors.New("note text is not valid UTF-8")
)

// Input errors indicate invalid user input at the workflow layer.
var (
	// ErrPasswordTooShort indicates the master password is below the configured minimum length.
	ErrPasswordTooShort = errors.New("master password is too short")

	// ErrPasswordRequired indicates no master password was supplied and none can be prompted for.
	ErrPasswordRequired = errors.New("master password required")

	// ErrPasswordMismatch indicates the password confirmation did not match.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrInvalidFrontMatter indicates a Markdown file has malformed front matter.
	ErrInvalidFrontMatter = errors.New("invalid front matter")
)
