package secrets

import (
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/notevault/internal/errors"

	"golang.org/x/crypto/nacl/secretbox"
)

// NonceSize is the length of the random nonce prepended to every sealed payload.
const NonceSize = 24

// Box encrypts and decrypts payloads under a single Key.
type Box struct {
	key *Key
}

// NewBox returns a Box that seals under key. The Box does not copy the key:
// wiping the key disables the Box.
func NewBox(key *Key) *Box {
	return &Box{key: key}
}

// Seal encrypts plaintext and returns nonce || ciphertext.
func (b *Box) Seal(plaintext []byte) ([]byte, error) {
	if b == nil || b.key.Wiped() {
		return nil, kerrors.ErrKeyWiped
	}

	var nonce [NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	out := make([]byte, NonceSize, NonceSize+len(plaintext)+secretbox.Overhead)
	copy(out, nonce[:])

	return secretbox.Seal(out, plaintext, &nonce, &b.key.b), nil
}

// Open authenticates and decrypts a payload produced by Seal.
func (b *Box) Open(ciphertext []byte) ([]byte, error) {
	if b == nil || b.key.Wiped() {
		return nil, kerrors.ErrKeyWiped
	}

	if len(ciphertext) < NonceSize+secretbox.Overhead {
		return nil, kerrors.ErrAuthenticationFailed
	}

	// Extract the nonce from the beginning of the ciphertext
	var nonce [NonceSize]byte
	copy(nonce[:], ciphertext[:NonceSize])

	plaintext, ok := secretbox.Open(nil, ciphertext[NonceSize:], &nonce, &b.key.b)
	if !ok {
		return nil, kerrors.ErrAuthenticationFailed
	}

	return plaintext, nil
}
