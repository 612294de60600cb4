package cmd

import (
	"context"

	"github.com/PolarWolf314/notevault/internal/notes"
	"github.com/PolarWolf314/notevault/internal/secrets"
	"github.com/PolarWolf314/notevault/internal/ui"
	"github.com/PolarWolf314/notevault/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	notesAddTitle   string
	notesAddContent string
	notesAddTags    string
)

func init() {
	notesAddCmd.Flags().StringVarP(&notesAddTitle, "title", "t", "", "note title (required)")
	notesAddCmd.Flags().StringVarP(&notesAddContent, "content", "c", "", "note body, or - to read it from stdin")
	notesAddCmd.Flags().StringVar(&notesAddTags, "tags", "", "comma-separated tags")
}

// resetNotesAddState resets the notes add command's global state for testing.
func resetNotesAddState() {
	notesAddTitle = ""
	notesAddContent = ""
	notesAddTags = ""
}

var notesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note to the vault",
	Long: `Adds a new note to the vault and prints its id.

Examples:
  # Add a short note
  notevault notes add --title "Groceries" --content "milk, eggs" --tags home,todo

  # Take the body from a file
  cat meeting.txt | notevault notes add --title "Standup" --content -`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting notes add command")
		Logger.Debugf("Flags: title=%q, tags=%q", notesAddTitle, notesAddTags)

		_, path, err := loadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		content, err := readNoteContent(notesAddContent)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read note content: %v", err)
		}

		password, _, err := readMasterPassword("Master password: ")
		if err != nil {
			return reportError(err, path)
		}
		defer secrets.Zero(password)

		spinner, cleanup := startSpinner("Adding note...", verbose)
		defer cleanup()

		result, err := workflows.AddNote(context.Background(), workflows.AddNoteOptions{
			VaultAccess: workflows.VaultAccess{VaultPath: path, Password: password},
			Title:       notesAddTitle,
			Content:     content,
			Tags:        notes.ParseTags(notesAddTags),
		})
		if err != nil {
			return handleVaultError(spinner, err, path)
		}

		Logger.Infof("Added note %s", result.ID)
		spinner.FinalMSG = ui.SuccessLine("Added "+ui.Highlight.Sprint(result.Note.Title)) + "\n" +
			"  ID: " + result.ID
		return nil
	},
}
