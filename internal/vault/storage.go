package vault

import (
	"errors"
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/notevault/internal/errors"
)

// persist seals the current collection and replaces the blob.
func (v *Vault) persist() error {
	blob, err := seal(v.box, v.notes)
	if err != nil {
		return err
	}

	if err := v.write(v.path, blob, 0600); err != nil {
		return storageError("failed to write vault", err)
	}
	return nil
}

func readArtifact(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrVaultNotFound, path)
	}
	if err != nil {
		return nil, storageError("failed to read vault", err)
	}
	return data, nil
}

func storageError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", kerrors.ErrStorageIO, msg, err)
}
