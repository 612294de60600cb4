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
	notesEditTitle   string
	notesEditContent string
	notesEditTags    string
)

func init() {
	notesEditCmd.Flags().StringVarP(&notesEditTitle, "title", "t", "", "new title")
	notesEditCmd.Flags().StringVarP(&notesEditContent, "content", "c", "", "new body, or - to read it from stdin")
	notesEditCmd.Flags().StringVar(&notesEditTags, "tags", "", "new comma-separated tags, empty to clear them")
}

// resetNotesEditState resets the notes edit command's global state for testing.
func resetNotesEditState() {
	notesEditTitle = ""
	notesEditContent = ""
	notesEditTags = ""
}

var notesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a note's title, content or tags",
	Long: `Replaces the fields given on the command line and keeps the others.

Examples:
  # Rename a note
  notevault notes edit 3f2a --title "Groceries (weekly)"

  # Clear every tag
  notevault notes edit 3f2a --tags ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting notes edit command")

		opts := workflows.EditNoteOptions{ID: args[0]}
		flags := cmd.Flags()
		if flags.Changed("title") {
			opts.Title = &notesEditTitle
		}
		if flags.Changed("content") {
			content, err := readNoteContent(notesEditContent)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read note content: %v", err)
			}
			opts.Content = &content
		}
		if flags.Changed("tags") {
			opts.Tags = notes.ParseTags(notesEditTags)
			opts.ReplaceTags = true
		}
		Logger.Debugf("Editing %s: title=%t, content=%t, tags=%t", opts.ID, opts.Title != nil, opts.Content != nil, opts.ReplaceTags)

		_, path, err := loadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		password, _, err := readMasterPassword("Master password: ")
		if err != nil {
			return reportError(err, path)
		}
		defer secrets.Zero(password)
		opts.VaultAccess = workflows.VaultAccess{VaultPath: path, Password: password}

		spinner, cleanup := startSpinner("Updating note...", verbose)
		defer cleanup()

		result, err := workflows.EditNote(context.Background(), opts)
		if err != nil {
			return handleVaultError(spinner, err, path)
		}

		if !result.Changed {
			spinner.FinalMSG = ui.Muted.Sprint("Nothing to change") + "\n" +
				ui.HintLine("Pass "+ui.Flag.Sprint("--title")+", "+ui.Flag.Sprint("--content")+" or "+ui.Flag.Sprint("--tags"))
			return nil
		}

		Logger.Infof("Updated note %s", result.ID)
		spinner.FinalMSG = ui.SuccessLine("Updated " + ui.Highlight.Sprint(result.Note.Title))
		return nil
	},
}
