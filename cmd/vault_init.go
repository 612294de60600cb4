package cmd

import (
	"context"
	"fmt"

	kerrors "github.com/PolarWolf314/notevault/internal/errors"
	"github.com/PolarWolf314/notevault/internal/secrets"
	"github.com/PolarWolf314/notevault/internal/ui"
	"github.com/PolarWolf314/notevault/internal/utils"
	"github.com/PolarWolf314/notevault/internal/vault"
	"github.com/PolarWolf314/notevault/internal/workflows"

	"github.com/spf13/cobra"
)

var vaultInitForce bool

func init() {
	vaultInitCmd.Flags().BoolVarP(&vaultInitForce, "force", "f", false, "replace an existing vault")
}

// resetVaultInitState resets the vault init command's global state for testing.
func resetVaultInitState() {
	vaultInitForce = false
}

var vaultInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new encrypted vault",
	Long: `Creates a new, empty vault protected by a master password.

The master password is never stored. If you forget it, the notes in the
vault cannot be recovered.

An existing vault is never replaced unless --force is given. On a terminal
you will also be asked to confirm.

Examples:
  # Create a vault at the default location
  notevault vault init

  # Create a vault at a custom location without prompting
  echo "$PASSWORD" | notevault vault init --vault ./work.enc --password-stdin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting vault init command")

		config, path, err := loadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		if vault.New(path, vault.Options{}).Exists() {
			if !vaultInitForce {
				return reportError(kerrors.ErrVaultExists, path)
			}
			if utils.IsTerminal() && !passwordStdin {
				Logger.Debugf("Asking for confirmation before replacing %s", path)
				if !confirmAction(ui.Warning.Sprint("⚠") + " This permanently replaces the vault at " + ui.Path.Sprint(path) + ". Continue?") {
					fmt.Println(ui.ErrorLine("Aborted"))
					return nil
				}
			}
		}

		password, prompted, err := readMasterPassword("New master password: ")
		if err != nil {
			return reportError(err, path)
		}
		defer secrets.Zero(password)

		var confirmation []byte
		if prompted {
			confirmation, err = utils.ReadPassphrase("Confirm master password: ")
			if err != nil {
				return reportError(err, path)
			}
			defer secrets.Zero(confirmation)
		}

		spinner, cleanup := startSpinner("Creating vault...", verbose)
		defer cleanup()

		result, err := workflows.CreateVault(context.Background(), workflows.CreateVaultOptions{
			VaultPath:         path,
			Password:          password,
			Confirmation:      confirmation,
			MinPasswordLength: config.Security.MinPasswordLength,
			Force:             vaultInitForce,
		})
		if err != nil {
			return handleVaultError(spinner, err, path)
		}

		Logger.Infof("Vault created at %s", result.VaultPath)

		finalMessage := ui.SuccessLine("Vault created successfully!") + "\n" +
			"The following files were written: " + utils.FormatPaths([]string{result.VaultPath, result.SaltPath})
		if result.Overwritten {
			finalMessage += ui.Warning.Sprint("⚠") + " The previous vault at this location was replaced\n"
		}
		finalMessage += ui.HintLine("Add your first note with " + ui.Code.Sprint("notevault notes add --title \"...\""))

		spinner.FinalMSG = finalMessage
		return nil
	},
}
