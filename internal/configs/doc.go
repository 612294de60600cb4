// Package configs manages user configuration for notevault.
//
// Configuration is stored in TOML format at:
//
//	$XDG_CONFIG_HOME/notevault/config.toml (os.UserConfigDir)
//
// The file is optional. Every key has a default, and keys missing from the
// file keep their default value.
//
// # User Configuration
//
// The user config stores:
//   - [vault] path: location of the encrypted vault blob
//   - [security] min_password_length: minimum master password length for new vaults
//   - [display] preview_length: characters of content shown in listings
//
// The salt artifact always lives next to the vault blob, at path + ".salt".
// Nothing secret is ever written to the configuration file.
//
// # Settings
//
// Global settings are initialized at startup:
//   - UserNotevaultSettings: paths to the config and data directories
//
// The data directory ($XDG_DATA_HOME/notevault, default ~/.local/share)
// holds the default vault when no path is configured.
//
// # Vault Path Resolution
//
// ResolveVaultPath picks the vault location in this order:
//
//  1. the --vault flag
//  2. the NOTEVAULT_VAULT environment variable
//  3. [vault] path from the config file
//  4. <data dir>/notes_vault.enc
package configs
