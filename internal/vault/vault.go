package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	kerrors "github.com/PolarWolf314/notevault/internal/errors"
	"github.com/PolarWolf314/notevault/internal/notes"
	"github.com/PolarWolf314/notevault/internal/secrets"
	"github.com/PolarWolf314/notevault/internal/utils"
)

// SaltSuffix is appended to the blob path to name the salt artifact.
const SaltSuffix = ".salt"

// pendingSuffix names the new salt while Create is still writing the blob.
const pendingSuffix = ".new"

// State is the lock state of a Vault.
type State int

const (
	Locked State = iota
	Unlocked
)

func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case Unlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configures a Vault.
type Options struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// writeFunc replaces a file on disk.
type writeFunc func(filename string, data []byte, perm os.FileMode) error

// Vault is a password-protected note collection bound to a storage location.
type Vault struct {
	path     string
	saltPath string

	now   func() time.Time
	write writeFunc

	key   *secrets.Key
	box   *secrets.Box
	notes map[string]notes.Note
}

// New returns a Locked vault stored at path.
func New(path string, opts Options) *Vault {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Vault{
		path:     path,
		saltPath: path + SaltSuffix,
		now:      now,
		write:    utils.WriteFileAtomic,
	}
}

// Path returns the location of the encrypted blob.
func (v *Vault) Path() string {
	return v.path
}

// SaltPath returns the location of the salt artifact.
func (v *Vault) SaltPath() string {
	return v.saltPath
}

// State returns the current lock state.
func (v *Vault) State() State {
	if v.key == nil {
		return Locked
	}
	return Unlocked
}

// IsUnlocked reports whether note operations are available.
func (v *Vault) IsUnlocked() bool {
	return v.State() == Unlocked
}

// Exists reports whether any vault artifact is present at the location.
func (v *Vault) Exists() bool {
	for _, p := range []string{v.path, v.saltPath} {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}

// Len returns the number of notes, or zero while Locked.
func (v *Vault) Len() int {
	return len(v.notes)
}

// Create initializes an empty vault protected by password, replacing any
// vault already at the location. On success the vault is Unlocked.
func (v *Vault) Create(password []byte) error {
	v.Lock()

	salt, err := secrets.NewSalt()
	if err != nil {
		return err
	}

	key, err := secrets.DeriveKey(password, salt)
	if err != nil {
		return err
	}
	box := secrets.NewBox(key)
	empty := make(map[string]notes.Note)

	blob, err := seal(box, empty)
	if err != nil {
		key.Wipe()
		return err
	}

	if err := os.MkdirAll(filepath.Dir(v.path), 0700); err != nil {
		key.Wipe()
		return storageError("failed to create vault directory", err)
	}

	// The new salt only replaces the old one once the new blob is in place,
	// so a failed blob write leaves any previous vault openable.
	pending := v.saltPath + pendingSuffix
	if err := v.write(pending, salt, 0600); err != nil {
		key.Wipe()
		return storageError("failed to write salt", err)
	}

	if err := v.write(v.path, blob, 0600); err != nil {
		key.Wipe()
		_ = os.Remove(pending)
		return storageError("failed to write vault", err)
	}

	if err := utils.RenameFile(pending, v.saltPath); err != nil {
		key.Wipe()
		return storageError("failed to install salt", err)
	}

	v.key, v.box, v.notes = key, box, empty
	return nil
}

// Unlock derives the key from password and decrypts the stored notes.
// The vault stays Locked on any error.
func (v *Vault) Unlock(password []byte) error {
	v.Lock()

	salt, err := readArtifact(v.saltPath)
	if err != nil {
		return err
	}
	blob, err := readArtifact(v.path)
	if err != nil {
		return err
	}

	if len(salt) != secrets.SaltSize {
		return fmt.Errorf("%w: salt is %d bytes, expected %d", kerrors.ErrCorruptedVault, len(salt), secrets.SaltSize)
	}

	key, err := secrets.DeriveKey(password, salt)
	if err != nil {
		return err
	}
	box := secrets.NewBox(key)

	loaded, err := open(box, blob)
	if err != nil {
		key.Wipe()
		return err
	}

	v.key, v.box, v.notes = key, box, loaded
	return nil
}

// Lock wipes the key and discards every note held in memory. It performs
// no disk I/O and is a no-op on a Locked vault.
func (v *Vault) Lock() {
	if v.key != nil {
		v.key.Wipe()
	}
	clear(v.notes)
	v.key, v.box, v.notes = nil, nil, nil
}

func (v *Vault) requireUnlocked() error {
	if !v.IsUnlocked() {
		return kerrors.ErrVaultLocked
	}
	return nil
}

// stamp returns the current time in UTC, strictly after prev.
func (v *Vault) stamp(prev time.Time) time.Time {
	now := v.now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}
