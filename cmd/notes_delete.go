package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/notevault/internal/secrets"
	"github.com/PolarWolf314/notevault/internal/ui"
	"github.com/PolarWolf314/notevault/internal/utils"
	"github.com/PolarWolf314/notevault/internal/workflows"

	"github.com/spf13/cobra"
)

var notesDeleteYes bool

func init() {
	notesDeleteCmd.Flags().BoolVarP(&notesDeleteYes, "yes", "y", false, "do not ask for confirmation")
}

// resetNotesDeleteState resets the notes delete command's global state for testing.
func resetNotesDeleteState() {
	notesDeleteYes = false
}

var notesDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a note",
	Long: `Deletes a note from the vault. There is no undo.

On a terminal you are asked to confirm unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting notes delete command")

		_, path, err := loadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		if !notesDeleteYes && !passwordStdin && utils.IsTerminal() {
			if !confirmAction(ui.Warning.Sprint("⚠") + " Delete note " + ui.Highlight.Sprint(args[0]) + "?") {
				fmt.Println(ui.ErrorLine("Aborted"))
				return nil
			}
		}

		password, _, err := readMasterPassword("Master password: ")
		if err != nil {
			return reportError(err, path)
		}
		defer secrets.Zero(password)

		spinner, cleanup := startSpinner("Deleting note...", verbose)
		defer cleanup()

		result, err := workflows.DeleteNote(context.Background(), workflows.DeleteNoteOptions{
			VaultAccess: workflows.VaultAccess{VaultPath: path, Password: password},
			ID:          args[0],
		})
		if err != nil {
			return handleVaultError(spinner, err, path)
		}

		Logger.Infof("Deleted note %s", result.ID)
		spinner.FinalMSG = ui.SuccessLine("Deleted " + ui.Highlight.Sprint(result.Title))
		return nil
	},
}
