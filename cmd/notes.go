package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/notevault/internal/configs"
	logger "github.com/PolarWolf314/notevault/internal/logging"
	"github.com/PolarWolf314/notevault/internal/notes"
	"github.com/PolarWolf314/notevault/internal/ui"
	"github.com/PolarWolf314/notevault/internal/utils"

	"github.com/spf13/cobra"
)

// NotesCmd groups commands that read and change the notes inside the vault.
var NotesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Add, find and change notes in the vault",
	Long: `Provides commands for working with the notes stored in the vault.

Every command except "notes import --dry-run" unlocks the vault with the
master password. The password is read from --password-stdin, then
$NOTEVAULT_PASSWORD, and is otherwise prompted for on the terminal.

Notes are addressed by id. Any unique prefix of an id is accepted, so the
eight characters shown by "notes list" are usually enough.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing notes command with verbose=%t, debug=%t", verbose, debug)
	},
}

func init() {
	addVaultPersistentFlags(NotesCmd.PersistentFlags())

	NotesCmd.AddCommand(notesAddCmd)
	NotesCmd.AddCommand(notesListCmd)
	NotesCmd.AddCommand(notesSearchCmd)
	NotesCmd.AddCommand(notesShowCmd)
	NotesCmd.AddCommand(notesEditCmd)
	NotesCmd.AddCommand(notesDeleteCmd)
	NotesCmd.AddCommand(notesImportCmd)
	NotesCmd.AddCommand(notesExportCmd)
}

// GetNotesCmd returns the NotesCmd for testing.
func GetNotesCmd() *cobra.Command {
	return NotesCmd
}

// resetNotesState resets every notes subcommand's global state for testing.
func resetNotesState() {
	resetNotesAddState()
	resetNotesListState()
	resetNotesSearchState()
	resetNotesShowState()
	resetNotesEditState()
	resetNotesDeleteState()
	resetNotesImportState()
}

// readNoteContent returns value, or the whole of stdin when value is "-".
func readNoteContent(value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	if passwordStdin {
		return "", fmt.Errorf("--content - cannot be combined with --password-stdin")
	}

	Logger.Debugf("Reading note content from stdin")
	var (
		data []byte
		err  error
	)
	if f, ok := stdin.(*os.File); ok && f == os.Stdin {
		data, err = utils.ReadStdin()
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// previewLength returns the configured preview length, falling back to the default.
func previewLength(config *configs.UserConfig) int {
	if config == nil {
		return configs.DefaultUserConfig().Display.PreviewLength
	}
	return config.Display.PreviewLength
}

// noteJSON is the machine-readable form of a note printed by --json.
type noteJSON struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

func toNoteJSON(entries []notes.Entry) []noteJSON {
	out := make([]noteJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, noteJSON{
			ID:         e.ID,
			Title:      e.Note.Title,
			Content:    e.Note.Content,
			Tags:       notes.CloneTags(e.Note.Tags),
			CreatedAt:  e.Note.CreatedAt,
			ModifiedAt: e.Note.ModifiedAt,
		})
	}
	return out
}

func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("failed to marshal JSON: %v", err)
	}
	fmt.Println(string(output))
	return nil
}

// printEntries prints one line per note followed by an indented preview of its content.
func printEntries(entries []notes.Entry, limit int) {
	for _, e := range entries {
		line := ui.Muted.Sprint(utils.ShortID(e.ID)) + "  " + ui.Highlight.Sprint(e.Note.Title)
		if tags := ui.Tags(e.Note.Tags); tags != "" {
			line += " " + tags
		}
		fmt.Println(line)

		preview := strings.Join(strings.Fields(e.Note.Content), " ")
		if preview != "" {
			fmt.Println("          " + utils.Preview(preview, limit))
		}
	}
}

// printNote prints a note in full.
func printNote(id string, n notes.Note) {
	fmt.Println(ui.Highlight.Sprint(n.Title))
	fmt.Printf("  %-10s %s\n", "ID:", id)
	if len(n.Tags) > 0 {
		fmt.Printf("  %-10s %s\n", "Tags:", strings.Join(n.Tags, ", "))
	}
	fmt.Printf("  %-10s %s\n", "Created:", n.CreatedAt.Local().Format(time.DateTime))
	fmt.Printf("  %-10s %s\n", "Modified:", n.ModifiedAt.Local().Format(time.DateTime))
	if n.Content != "" {
		fmt.Println()
		fmt.Print(ui.EnsureNewline(n.Content))
	}
}
