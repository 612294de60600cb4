package cmd

import (
	logger "github.com/PolarWolf314/notevault/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose       bool
	debug         bool
	vaultPath     string
	passwordStdin bool
	Logger        logger.Logger

	// VaultCmd groups commands that manage the vault itself.
	VaultCmd = &cobra.Command{
		Use:   "vault",
		Short: "Create and inspect the encrypted note vault",
		Long: `Provides creation, status and verification of the encrypted note vault.

A vault is two files: the encrypted notes at the vault path, and a random
salt next to it with a ".salt" suffix. Both are needed to unlock the vault.

The vault path is taken from --vault, then $NOTEVAULT_VAULT, then the
config file, and defaults to ~/.local/share/notevault/notes_vault.enc.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing vault command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	addVaultPersistentFlags(VaultCmd.PersistentFlags())

	VaultCmd.AddCommand(vaultInitCmd)
	VaultCmd.AddCommand(vaultStatusCmd)
	VaultCmd.AddCommand(vaultVerifyCmd)
}

// addVaultPersistentFlags registers the flags shared by every command that opens a vault.
func addVaultPersistentFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&debug, "debug", "d", false, "enable debug output")
	flags.StringVar(&vaultPath, "vault", "", "path to the vault file")
	flags.BoolVar(&passwordStdin, "password-stdin", false, "read the master password from stdin")
}

// GetVaultCmd returns the VaultCmd for testing.
func GetVaultCmd() *cobra.Command {
	return VaultCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	vaultPath = ""
	passwordStdin = false
	resetVaultInitState()
	resetVaultStatusState()
	resetNotesState()
	resetCobraFlagState(VaultCmd)
	resetCobraFlagState(NotesCmd)
}

// resetCobraFlagState clears the Changed mark on every flag below cmd to prevent test pollution.
func resetCobraFlagState(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	cmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
