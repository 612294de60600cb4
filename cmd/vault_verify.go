package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/PolarWolf314/notevault/internal/secrets"
	"github.com/PolarWolf314/notevault/internal/ui"
	"github.com/PolarWolf314/notevault/internal/workflows"

	"github.com/spf13/cobra"
)

var vaultVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Unlock the vault and check that it can be read",
	Long: `Unlocks the vault with the master password, decrypts it, and reports
how many notes it holds. Nothing is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting vault verify command")

		_, path, err := loadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		password, _, err := readMasterPassword("Master password: ")
		if err != nil {
			return reportError(err, path)
		}
		defer secrets.Zero(password)

		spinner, cleanup := startSpinner("Unlocking vault...", verbose)
		defer cleanup()

		result, err := workflows.Verify(context.Background(), workflows.VerifyOptions{
			VaultAccess: workflows.VaultAccess{VaultPath: path, Password: password},
		})
		if err != nil {
			return handleVaultError(spinner, err, path)
		}

		finalMessage := ui.SuccessLine("Vault unlocked successfully") + "\n" +
			fmt.Sprintf("  %-15s %d\n", "Notes:", result.NoteCount) +
			fmt.Sprintf("  %-15s %d", "Tags:", result.TagCount)
		if !result.LastModified.IsZero() {
			finalMessage += fmt.Sprintf("\n  %-15s %s", "Last modified:", result.LastModified.Local().Format(time.DateTime))
		}

		spinner.FinalMSG = finalMessage
		return nil
	},
}
