package secrets

import (
	"bytes"
	"testing"

	kerrors "github.com/PolarWolf314/notevault/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSalt(t *testing.T) {
	a, err := NewSalt()
	require.NoError(t, err)
	b, err := NewSalt()
	require.NoError(t, err)

	assert.Len(t, a, SaltSize)
	assert.Len(t, b, SaltSize)
	assert.False(t, bytes.Equal(a, b), "two salts should not collide")
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0x42}, SaltSize)

	k1, err := DeriveKey([]byte("correct horse"), salt)
	require.NoError(t, err)
	defer k1.Wipe()

	k2, err := DeriveKey([]byte("correct horse"), salt)
	require.NoError(t, err)
	defer k2.Wipe()

	assert.Equal(t, k1.b, k2.b)
}

func TestDeriveKeySaltSensitive(t *testing.T) {
	s1 := bytes.Repeat([]byte{0x01}, SaltSize)
	s2 := bytes.Repeat([]byte{0x02}, SaltSize)

	k1, err := DeriveKey([]byte("password"), s1)
	require.NoError(t, err)
	k2, err := DeriveKey([]byte("password"), s2)
	require.NoError(t, err)

	assert.NotEqual(t, k1.b, k2.b)
}

func TestDeriveKeyPasswordSensitive(t *testing.T) {
	salt := bytes.Repeat([]byte{0x07}, SaltSize)

	k1, err := DeriveKey([]byte("password-one"), salt)
	require.NoError(t, err)
	k2, err := DeriveKey([]byte("password-two"), salt)
	require.NoError(t, err)

	assert.NotEqual(t, k1.b, k2.b)
}

func TestDeriveKeyMatchesPBKDF2Vector(t *testing.T) {
	// PBKDF2-HMAC-SHA256, P="password", S="salt", c=100000, dkLen=32.
	want := []byte{
		0x03, 0x94, 0xa2, 0xed, 0xe3, 0x32, 0xc9, 0xa1,
		0x3e, 0xb8, 0x2e, 0x9b, 0x24, 0x63, 0x16, 0x04,
		0xc3, 0x1d, 0xf9, 0x78, 0xb4, 0xe2, 0xf0, 0xfb,
		0xd2, 0xc5, 0x49, 0x94, 0x4f, 0x9d, 0x79, 0xa5,
	}

	k, err := DeriveKey([]byte("password"), []byte("salt"))
	require.NoError(t, err)

	assert.Equal(t, want, k.b[:])
}

func TestDeriveKeyRejectsEmptySalt(t *testing.T) {
	for _, salt := range [][]byte{nil, {}} {
		k, err := DeriveKey([]byte("password"), salt)
		assert.ErrorIs(t, err, kerrors.ErrEmptySalt)
		assert.Nil(t, k)
	}
}

func TestKeyWipe(t *testing.T) {
	k, err := DeriveKey([]byte("password"), []byte("0123456789abcdef"))
	require.NoError(t, err)
	require.False(t, k.Wiped())

	k.Wipe()
	assert.True(t, k.Wiped())
	assert.Equal(t, make([]byte, KeySize), k.b[:], "key bytes should be zeroed")

	// Second wipe is a no-op.
	k.Wipe()
	assert.True(t, k.Wiped())
}

func TestNilKeyIsWiped(t *testing.T) {
	var k *Key
	assert.True(t, k.Wiped())
	k.Wipe()
}
