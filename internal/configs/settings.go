package configs

import (
	"log"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the user config file.
	ConfigFileName = "config.toml"

	// DefaultVaultFileName is the vault blob name used when no path is configured.
	DefaultVaultFileName = "notes_vault.enc"

	// VaultPathEnv overrides the configured vault path.
	VaultPathEnv = "NOTEVAULT_VAULT"

	// PasswordEnv supplies the master password non-interactively.
	PasswordEnv = "NOTEVAULT_PASSWORD"
)

type UserSettings struct {
	UserConfigsPath string
	UserDataPath    string
}

var UserNotevaultSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")

	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	UserNotevaultSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "notevault"),
		UserDataPath:    filepath.Join(dataDir, "notevault"),
	}
}

// ConfigFilePath returns the path of the user config file.
func ConfigFilePath() string {
	return filepath.Join(UserNotevaultSettings.UserConfigsPath, ConfigFileName)
}

// DefaultVaultPath returns the vault location used when nothing else is configured.
func DefaultVaultPath() string {
	return filepath.Join(UserNotevaultSettings.UserDataPath, DefaultVaultFileName)
}
