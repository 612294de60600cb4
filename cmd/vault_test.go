package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/notevault/internal/configs"
	"github.com/PolarWolf314/notevault/internal/workflows"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultInit(t *testing.T) {
	vaultFile := setupTestEnvironment(t)

	output, err := runCLI(t, "vault", "init")
	require.NoError(t, err)
	assert.Contains(t, output, "Vault created successfully")
	assert.Contains(t, output, vaultFile)
	assert.Contains(t, output, vaultFile+".salt")

	for _, path := range []string{vaultFile, vaultFile + ".salt"} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestVaultInitRefusesExistingVault(t *testing.T) {
	vaultFile := setupTestEnvironment(t)
	initTestVault(t)

	before, err := os.ReadFile(vaultFile)
	require.NoError(t, err)

	output, err := runCLI(t, "vault", "init")
	require.NoError(t, err)
	assert.Contains(t, output, "A vault already exists")
	assert.Contains(t, output, "--force")

	after, err := os.ReadFile(vaultFile)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestVaultInitForceReplacesVault(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)

	_, err := runCLI(t, "notes", "add", "--title", "old note")
	require.NoError(t, err)

	setStdin(t, "y\n")
	output, err := runCLI(t, "vault", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, output, "Vault created successfully")
	assert.Contains(t, output, "was replaced")

	output, err = runCLI(t, "notes", "list")
	require.NoError(t, err)
	assert.NotContains(t, output, "old note")
	assert.Contains(t, output, "no notes yet")
}

func TestVaultInitRejectsShortPassword(t *testing.T) {
	vaultFile := setupTestEnvironment(t)
	t.Setenv(configs.PasswordEnv, "abc")

	output, err := runCLI(t, "vault", "init")
	require.NoError(t, err)
	assert.Contains(t, output, "at least")

	_, err = os.Stat(vaultFile)
	assert.True(t, os.IsNotExist(err))
}

func TestVaultInitPasswordFromStdin(t *testing.T) {
	setupTestEnvironment(t)
	t.Setenv(configs.PasswordEnv, "")
	setStdin(t, "piped password\n")

	_, err := runCLI(t, "vault", "init", "--password-stdin")
	require.NoError(t, err)

	// The environment password must not open a vault created with the piped one.
	t.Setenv(configs.PasswordEnv, testPassword)
	output, err := runCLI(t, "vault", "verify")
	require.NoError(t, err)
	assert.Contains(t, output, "Invalid master password")

	setStdin(t, "piped password\n")
	output, err = runCLI(t, "vault", "verify", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, output, "Vault unlocked successfully")
}

func TestVaultInitWithoutPassword(t *testing.T) {
	vaultFile := setupTestEnvironment(t)
	t.Setenv(configs.PasswordEnv, "")

	output, err := runCLI(t, "vault", "init", "--password-stdin")
	require.Error(t, err)
	assert.Contains(t, output, "stdin is empty")

	_, err = os.Stat(vaultFile)
	assert.True(t, os.IsNotExist(err))
}

func TestVaultInitHonoursVaultFlag(t *testing.T) {
	setupTestEnvironment(t)
	custom := filepath.Join(t.TempDir(), "nested", "work.enc")

	_, err := runCLI(t, "vault", "init", "--vault", custom)
	require.NoError(t, err)

	assert.FileExists(t, custom)
	assert.FileExists(t, custom+".salt")
}

func TestVaultStatus(t *testing.T) {
	vaultFile := setupTestEnvironment(t)

	t.Run("before init", func(t *testing.T) {
		output, err := runCLI(t, "vault", "status")
		require.NoError(t, err)
		assert.Contains(t, output, "missing")
		assert.Contains(t, output, "No vault has been created here")
	})

	initTestVault(t)

	t.Run("after init", func(t *testing.T) {
		output, err := runCLI(t, "vault", "status")
		require.NoError(t, err)
		assert.Contains(t, output, vaultFile)
		assert.Contains(t, output, "Vault is ready")
	})

	t.Run("json", func(t *testing.T) {
		output, err := runCLI(t, "vault", "status", "--json")
		require.NoError(t, err)

		var status workflows.StatusResult
		require.NoError(t, json.Unmarshal([]byte(output), &status))
		assert.True(t, status.Initialized)
		assert.True(t, status.SaltValid)
		assert.Equal(t, vaultFile, status.Blob.Path)
		assert.EqualValues(t, 16, status.Salt.Size)
	})

	t.Run("missing salt", func(t *testing.T) {
		require.NoError(t, os.Remove(vaultFile+".salt"))
		output, err := runCLI(t, "vault", "status")
		require.NoError(t, err)
		assert.Contains(t, output, "incomplete")
	})
}

func TestVaultStatusNeedsNoPassword(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)
	t.Setenv(configs.PasswordEnv, "")

	output, err := runCLI(t, "vault", "status")
	require.NoError(t, err)
	assert.Contains(t, output, "Vault is ready")
}

func TestVaultVerify(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)

	_, err := runCLI(t, "notes", "add", "--title", "one", "--tags", "a,b")
	require.NoError(t, err)
	_, err = runCLI(t, "notes", "add", "--title", "two", "--tags", "b,c")
	require.NoError(t, err)

	output, err := runCLI(t, "vault", "verify")
	require.NoError(t, err)
	assert.Contains(t, output, "Vault unlocked successfully")
	assert.Regexp(t, `Notes:\s+2`, output)
	assert.Regexp(t, `Tags:\s+3`, output)
}

func TestVaultVerifyErrors(t *testing.T) {
	vaultFile := setupTestEnvironment(t)

	output, err := runCLI(t, "vault", "verify")
	require.NoError(t, err)
	assert.Contains(t, output, "No vault found")

	initTestVault(t)

	t.Setenv(configs.PasswordEnv, "not the password")
	output, err = runCLI(t, "vault", "verify")
	require.NoError(t, err)
	assert.Contains(t, output, "Invalid master password")

	require.NoError(t, os.WriteFile(vaultFile+".salt", []byte("short"), 0o600))
	output, err = runCLI(t, "vault", "verify")
	require.NoError(t, err)
	assert.Contains(t, output, "is corrupted")
}
