package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/notevault/internal/secrets"
	"github.com/PolarWolf314/notevault/internal/ui"
	"github.com/PolarWolf314/notevault/internal/workflows"

	"github.com/spf13/cobra"
)

var notesExportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write every note to a directory as Markdown",
	Long: `Writes each note to <dir> as a Markdown file with YAML front matter
holding its id, title, tags and timestamps.

The exported files are NOT encrypted. They are created readable only by you.

Example:
  notevault notes export ./backup`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting notes export command")

		_, path, err := loadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		password, _, err := readMasterPassword("Master password: ")
		if err != nil {
			return reportError(err, path)
		}
		defer secrets.Zero(password)

		spinner, cleanup := startSpinner("Exporting notes...", verbose)
		defer cleanup()

		result, err := workflows.ExportNotes(context.Background(), workflows.ExportNotesOptions{
			VaultAccess: workflows.VaultAccess{VaultPath: path, Password: password},
			Dir:         args[0],
		})
		if err != nil {
			return handleVaultError(spinner, err, path)
		}

		Logger.Infof("Exported %d notes to %s", len(result.Files), result.Dir)
		finalMessage := ui.SuccessLine(fmt.Sprintf("Exported %d notes to %s", len(result.Files), ui.Path.Sprint(result.Dir)))
		if len(result.Files) > 0 {
			finalMessage += "\n" + ui.Warning.Sprint("⚠") + " Exported files are plaintext. Delete them when you are done"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
