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

var notesImportDryRun bool

func init() {
	notesImportCmd.Flags().BoolVar(&notesImportDryRun, "dry-run", false, "show what would be imported without changing the vault")
}

// resetNotesImportState resets the notes import command's global state for testing.
func resetNotesImportState() {
	notesImportDryRun = false
}

var notesImportCmd = &cobra.Command{
	Use:   "import <path>...",
	Short: "Import Markdown files as notes",
	Long: `Imports Markdown files into the vault, one note per file.

Each argument may be a file, a directory (searched for .md and .markdown
files) or a glob such as "docs/**/*.md". Quote globs so the shell does not
expand them.

YAML front matter may set the title and tags. Without a title the first
heading is used, then the file name.

Every file is read before anything is imported, so one bad file imports
nothing.

Examples:
  notevault notes import ~/notes
  notevault notes import "journal/**/*.md" --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting notes import command")
		Logger.Debugf("Patterns: %v, dry run: %t", args, notesImportDryRun)

		_, path, err := loadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		opts := workflows.ImportNotesOptions{
			VaultAccess: workflows.VaultAccess{VaultPath: path},
			Patterns:    args,
			DryRun:      notesImportDryRun,
		}

		if !notesImportDryRun {
			password, _, err := readMasterPassword("Master password: ")
			if err != nil {
				return reportError(err, path)
			}
			defer secrets.Zero(password)
			opts.Password = password
		}

		spinner, cleanup := startSpinner("Importing notes...", verbose)
		defer cleanup()

		result, err := workflows.ImportNotes(context.Background(), opts)
		if err != nil {
			return handleVaultError(spinner, err, path)
		}

		var finalMessage string
		if result.DryRun {
			finalMessage = ui.Warning.Sprint("[dry-run]") + fmt.Sprintf(" Would import %d notes:\n", len(result.Notes))
		} else {
			finalMessage = ui.SuccessLine(fmt.Sprintf("Imported %d notes:", len(result.Notes))) + "\n"
		}
		for _, n := range result.Notes {
			line := "  " + ui.Highlight.Sprint(n.Title) + " " + ui.Muted.Sprint(n.Path)
			if n.ID != "" {
				line = "  " + utils.ShortID(n.ID) + line
			}
			finalMessage += line + "\n"
		}
		if result.DryRun {
			finalMessage += ui.HintLine("Run without " + ui.Flag.Sprint("--dry-run") + " to import them")
		}

		spinner.FinalMSG = finalMessage
		return nil
	},
}
