// Package secrets provides the cryptographic primitives of the vault.
//
// This package handles key derivation from the master password and the
// authenticated encryption of the vault blob. It has no knowledge of notes
// or files: it turns passwords into keys and plaintext into ciphertext.
//
// # Key Derivation
//
// Keys are derived with PBKDF2-HMAC-SHA256:
//
//   - 100,000 iterations (Iterations)
//   - 16-byte random salt per vault (SaltSize)
//   - 32-byte output (KeySize)
//
// Derivation is deterministic: the same password and salt always produce
// the same key. The iteration count is not stored anywhere, so it must not
// change between releases.
//
// # Encryption
//
// A Box seals payloads with NaCl secretbox (XSalsa20-Poly1305). Every call
// to Seal draws a fresh random 24-byte nonce and prepends it to the output:
//
//	nonce (24 bytes) || secretbox(plaintext)
//
// Sealing the same plaintext twice produces different output. Open rejects
// truncated, modified, or foreign ciphertext with ErrAuthenticationFailed;
// this is the only way a wrong password is detected.
//
// # Key Lifetime
//
// A Key is held only in memory. Its pages are locked with mlock where the
// platform supports it, and Wipe zeroes the bytes before unlocking them.
// A wiped key cannot be used by a Box.
package secrets
