// Package vault implements the encrypted note store.
//
// A Vault is bound to a location on disk made of two artifacts:
//
//	<path>        nonce || secretbox(JSON note mapping)
//	<path>.salt   16 raw salt bytes
//
// A new Vault starts Locked. Create or Unlock derive the key from the master
// password and move it to Unlocked; Lock wipes the key and drops every note
// from memory. Note operations called while Locked return ErrVaultLocked and
// never touch the disk.
//
// Every mutation re-serializes and re-encrypts the whole collection, then
// replaces the blob with an atomic rename. If the write fails the in-memory
// collection is rolled back, so memory always matches the last good blob.
//
// A Vault is not safe for concurrent use. Callers own one Vault per process
// and serialize access to it.
package vault
