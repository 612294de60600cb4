package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/notevault/internal/secrets"
	"github.com/PolarWolf314/notevault/internal/ui"
	"github.com/PolarWolf314/notevault/internal/workflows"

	"github.com/spf13/cobra"
)

var notesSearchJSON bool

func init() {
	notesSearchCmd.Flags().BoolVar(&notesSearchJSON, "json", false, "output in JSON format")
}

// resetNotesSearchState resets the notes search command's global state for testing.
func resetNotesSearchState() {
	notesSearchJSON = false
}

var notesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find notes by title, content or tag",
	Long: `Lists the notes whose title, content or tags contain the query,
ignoring case. Several words are searched for as one phrase.

Examples:
  notevault notes search groceries
  notevault notes search "project plan" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		Logger.Infof("Starting notes search command")
		Logger.Debugf("Query: %q", query)

		config, path, err := loadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		password, _, err := readMasterPassword("Master password: ")
		if err != nil {
			return reportError(err, path)
		}
		defer secrets.Zero(password)

		result, err := workflows.SearchNotes(context.Background(), workflows.SearchNotesOptions{
			VaultAccess: workflows.VaultAccess{VaultPath: path, Password: password},
			Query:       query,
		})
		if err != nil {
			return reportError(err, path)
		}

		if notesSearchJSON {
			return printJSON(toNoteJSON(result.Notes))
		}

		if len(result.Notes) == 0 {
			fmt.Println(ui.Muted.Sprint("No notes match " + query))
			return nil
		}

		printEntries(result.Notes, previewLength(config))
		fmt.Println()
		fmt.Println(ui.Muted.Sprintf("%d matching notes", len(result.Notes)))
		return nil
	},
}
