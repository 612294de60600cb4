// Package workflows provides high-level orchestration for notevault commands.
//
// Workflows coordinate the vault, notes and configs packages to implement
// complete user-facing features. Each workflow handles a single command's
// business logic, independent of CLI concerns like flag parsing, password
// prompts, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Resolves the vault path and obtains the master password
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Validating input (password length, note ids, file patterns)
//   - Opening the vault and locking it again before returning
//   - Performing the core operation
//
// # Available Workflows
//
//   - CreateVault: creates a new vault, refusing to overwrite without Force
//   - Status: reports the vault artifacts without unlocking
//   - Verify: unlocks the vault and reports what it holds
//   - AddNote, EditNote, DeleteNote: note mutations
//   - ListNotes, SearchNotes, ShowNote: read-only note access
//   - ImportNotes, ExportNotes: Markdown import and export
//
// Every workflow that needs notes opens its own vault handle and locks it
// before returning, so no key material outlives the call.
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.ShowNote(ctx, opts)
//	if errors.Is(err, kerrors.ErrInvalidPassword) {
//	    // Ask the user to try again
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Import and export check it between files; a vault write in progress is
// never interrupted.
package workflows
