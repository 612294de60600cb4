package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	kerrors "github.com/PolarWolf314/notevault/internal/errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the length of a derived key in bytes.
	KeySize = 32

	// SaltSize is the length of a vault salt in bytes.
	SaltSize = 16

	// Iterations is the PBKDF2 work factor.
	Iterations = 100_000
)

// Key is a derived symmetric key. The zero value is not usable.
type Key struct {
	b      [KeySize]byte
	locked bool
	wiped  bool
}

// NewSalt generates a new random salt.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	return salt, nil
}

// DeriveKey stretches password with salt into a Key.
func DeriveKey(password, salt []byte) (*Key, error) {
	if len(salt) == 0 {
		return nil, kerrors.ErrEmptySalt
	}

	derived := pbkdf2.Key(password, salt, Iterations, KeySize, sha256.New)
	defer Zero(derived)

	k := &Key{}
	copy(k.b[:], derived)
	k.locked = lockMemory(k.b[:]) == nil

	return k, nil
}

// Wiped reports whether Wipe has been called.
func (k *Key) Wiped() bool {
	return k == nil || k.wiped
}

// Wipe zeroes the key and releases its memory lock. It is safe to call more than once.
func (k *Key) Wipe() {
	if k == nil || k.wiped {
		return
	}
	Zero(k.b[:])
	if k.locked {
		_ = unlockMemory(k.b[:])
		k.locked = false
	}
	k.wiped = true
}
