package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/notevault/internal/secrets"
	"github.com/PolarWolf314/notevault/internal/ui"
	"github.com/PolarWolf314/notevault/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	notesListJSON bool
	notesListTag  string
)

func init() {
	notesListCmd.Flags().BoolVar(&notesListJSON, "json", false, "output in JSON format")
	notesListCmd.Flags().StringVar(&notesListTag, "tag", "", "only list notes with this tag")
}

// resetNotesListState resets the notes list command's global state for testing.
func resetNotesListState() {
	notesListJSON = false
	notesListTag = ""
}

var notesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the notes in the vault",
	Long: `Lists every note, oldest first, with a preview of its content.

Examples:
  notevault notes list
  notevault notes list --tag work
  notevault notes list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting notes list command")

		config, path, err := loadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		password, _, err := readMasterPassword("Master password: ")
		if err != nil {
			return reportError(err, path)
		}
		defer secrets.Zero(password)

		result, err := workflows.ListNotes(context.Background(), workflows.ListNotesOptions{
			VaultAccess: workflows.VaultAccess{VaultPath: path, Password: password},
			Tag:         notesListTag,
		})
		if err != nil {
			return reportError(err, path)
		}
		Logger.Debugf("Listing %d notes", len(result.Notes))

		if notesListJSON {
			return printJSON(toNoteJSON(result.Notes))
		}

		if len(result.Notes) == 0 {
			if notesListTag != "" {
				fmt.Println(ui.Muted.Sprint("No notes tagged " + notesListTag))
			} else {
				fmt.Println(ui.Muted.Sprint("The vault has no notes yet"))
				fmt.Println(ui.HintLine("Add one with " + ui.Code.Sprint("notevault notes add --title \"...\"")))
			}
			return nil
		}

		printEntries(result.Notes, previewLength(config))
		fmt.Println()
		fmt.Println(ui.Muted.Sprintf("%d notes", len(result.Notes)))
		return nil
	},
}
