// Package errors provides typed error values for the notevault application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Vault errors: lock state and artifact issues (ErrVaultLocked, ErrVaultNotFound)
//   - Crypto errors: key derivation and authentication (ErrInvalidPassword, ErrAuthenticationFailed)
//   - Storage errors: reading or writing the vault artifacts (ErrStorageIO, ErrCorruptedVault)
//   - Note errors: note lookup and validation (ErrNoteNotFound, ErrEmptyTitle)
//
// ErrInvalidPassword and ErrCorruptedVault are different failure classes.
// The first means the ciphertext did not authenticate under the derived key;
// the second means it did, but the plaintext is not a valid note collection.
//
// # Usage
//
// Return errors from internal packages:
//
//	if v.state != Unlocked {
//	    return errors.ErrVaultLocked
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.AddNote(ctx, opts)
//	if errors.Is(err, kerrors.ErrInvalidPassword) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: writing %s: %w", errors.ErrStorageIO, path, err)
package errors
