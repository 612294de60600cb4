package cmd

import (
	"context"

	"github.com/PolarWolf314/notevault/internal/notes"
	"github.com/PolarWolf314/notevault/internal/secrets"
	"github.com/PolarWolf314/notevault/internal/workflows"

	"github.com/spf13/cobra"
)

var notesShowJSON bool

func init() {
	notesShowCmd.Flags().BoolVar(&notesShowJSON, "json", false, "output in JSON format")
}

// resetNotesShowState resets the notes show command's global state for testing.
func resetNotesShowState() {
	notesShowJSON = false
}

var notesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a note in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting notes show command")

		_, path, err := loadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		password, _, err := readMasterPassword("Master password: ")
		if err != nil {
			return reportError(err, path)
		}
		defer secrets.Zero(password)

		result, err := workflows.ShowNote(context.Background(), workflows.ShowNoteOptions{
			VaultAccess: workflows.VaultAccess{VaultPath: path, Password: password},
			ID:          args[0],
		})
		if err != nil {
			return reportError(err, path)
		}

		if notesShowJSON {
			return printJSON(toNoteJSON([]notes.Entry{result.Entry})[0])
		}

		printNote(result.ID, result.Note)
		return nil
	},
}
