package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultMinPasswordLength is the shortest master password accepted for a new vault.
	DefaultMinPasswordLength = 6

	// DefaultPreviewLength is how many characters of content listings show.
	DefaultPreviewLength = 100
)

type UserConfig struct {
	Vault    VaultConfig    `toml:"vault"`
	Security SecurityConfig `toml:"security"`
	Display  DisplayConfig  `toml:"display"`
}

type VaultConfig struct {
	Path string `toml:"path"`
}

type SecurityConfig struct {
	MinPasswordLength int `toml:"min_password_length"`
}

type DisplayConfig struct {
	PreviewLength int `toml:"preview_length"`
}

// DefaultUserConfig returns the configuration used when no file exists.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Security: SecurityConfig{MinPasswordLength: DefaultMinPasswordLength},
		Display:  DisplayConfig{PreviewLength: DefaultPreviewLength},
	}
}

// LoadUserConfig loads the user configuration from the config file.
// Keys absent from the file keep their defaults.
func LoadUserConfig() (*UserConfig, error) {
	configPath := ConfigFilePath()

	config := DefaultUserConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user config %s: %w", configPath, err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	if err := SaveTOML(ConfigFilePath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// EnsureUserConfig writes the default configuration if no config file exists.
// It reports whether a file was created.
func EnsureUserConfig() (*UserConfig, bool, error) {
	if _, err := os.Stat(ConfigFilePath()); err == nil {
		config, err := LoadUserConfig()
		return config, false, err
	}

	config := DefaultUserConfig()
	config.Vault.Path = DefaultVaultPath()
	if err := SaveUserConfig(config); err != nil {
		return nil, false, err
	}

	return config, true, nil
}

// Validate checks that numeric settings are in range.
func (c *UserConfig) Validate() error {
	if c.Security.MinPasswordLength < 1 {
		return fmt.Errorf("security.min_password_length must be at least 1, got %d", c.Security.MinPasswordLength)
	}
	if c.Display.PreviewLength < 0 {
		return fmt.Errorf("display.preview_length must not be negative, got %d", c.Display.PreviewLength)
	}
	return nil
}

// ResolveVaultPath returns the absolute vault path from, in order, flagValue,
// the NOTEVAULT_VAULT environment variable, the config file, and the default.
func ResolveVaultPath(flagValue string, config *UserConfig) (string, error) {
	path := flagValue
	if path == "" {
		path = os.Getenv(VaultPathEnv)
	}
	if path == "" && config != nil {
		path = config.Vault.Path
	}
	if path == "" {
		path = DefaultVaultPath()
	}

	path, err := expandHome(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve vault path %s: %w", path, err)
	}

	return abs, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
