package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	kerrors "github.com/PolarWolf314/notevault/internal/errors"
	"github.com/PolarWolf314/notevault/internal/notes"
	"github.com/PolarWolf314/notevault/internal/utils"

	"github.com/bmatcuk/doublestar/v4"
)

// ImportNotesOptions configures the import notes workflow.
type ImportNotesOptions struct {
	VaultAccess

	// Patterns are file paths, directories or doublestar globs.
	Patterns []string

	// DryRun parses the files without opening the vault.
	DryRun bool
}

// ImportedNote describes one imported file.
type ImportedNote struct {
	// Path is the source file.
	Path string

	// ID is the id assigned to the note, empty on a dry run.
	ID string

	// Title is the note title.
	Title string
}

// ImportNotesResult contains the outcome of an import notes operation.
type ImportNotesResult struct {
	// Notes lists every file in the order it was imported.
	Notes []ImportedNote

	// DryRun indicates whether this was a dry run.
	DryRun bool
}

// ImportNotes reads Markdown files and adds each one as a note. Every file is
// parsed before the vault is touched, so a malformed file imports nothing.
//
// Returns ErrNoFilesFound if the patterns match no files.
// Returns ErrInvalidFrontMatter or ErrEmptyTitle for a file that cannot be parsed.
func ImportNotes(ctx context.Context, opts ImportNotesOptions) (*ImportNotesResult, error) {
	files, err := expandPatterns(opts.Patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrNoFilesFound, strings.Join(opts.Patterns, ", "))
	}

	parsed := make([]notes.Note, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		n, err := notes.ParseMarkdown(data, notes.TitleFromPath(path))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		parsed = append(parsed, n)
	}

	result := &ImportNotesResult{DryRun: opts.DryRun}
	if opts.DryRun {
		for i, path := range files {
			result.Notes = append(result.Notes, ImportedNote{Path: path, Title: parsed[i].Title})
		}
		return result, nil
	}

	v, err := openVault(ctx, opts.VaultAccess)
	if err != nil {
		return nil, err
	}
	defer v.Lock()

	for i, n := range parsed {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		id, err := v.AddNote(n.Title, n.Content, notes.DedupeTags(n.Tags))
		if err != nil {
			return result, fmt.Errorf("importing %s: %w", files[i], err)
		}
		result.Notes = append(result.Notes, ImportedNote{Path: files[i], ID: id, Title: n.Title})
	}

	return result, nil
}

// expandPatterns resolves patterns to a sorted list of unique files.
// Directories contribute the Markdown files below them.
func expandPatterns(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string

	add := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			files = append(files, abs)
		}
	}

	for _, pattern := range patterns {
		if info, err := os.Stat(pattern); err == nil {
			if !info.IsDir() {
				add(pattern)
				continue
			}
			found, err := findMarkdownFiles(pattern)
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			add(m)
		}
	}

	sort.Strings(files)
	return files, nil
}

func findMarkdownFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip irregular files.
		if !d.Type().IsRegular() {
			return nil
		}

		if isMarkdownFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	return files, nil
}

func isMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

// ExportNotesOptions configures the export notes workflow.
type ExportNotesOptions struct {
	VaultAccess

	// Dir is the directory the Markdown files are written to.
	Dir string
}

// ExportNotesResult contains the outcome of an export notes operation.
type ExportNotesResult struct {
	// Dir is the absolute export directory.
	Dir string

	// Files are the written files in listing order.
	Files []string
}

// ExportNotes writes every note to Dir as a Markdown file with YAML front
// matter. Files are written with mode 0600 since they hold plaintext.
func ExportNotes(ctx context.Context, opts ExportNotesOptions) (*ExportNotesResult, error) {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolving export directory: %w", err)
	}

	v, err := openVault(ctx, opts.VaultAccess)
	if err != nil {
		return nil, err
	}
	defer v.Lock()

	entries, err := v.ListNotes()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	result := &ExportNotesResult{Dir: dir}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		data, err := notes.RenderMarkdown(e.ID, e.Note)
		if err != nil {
			return result, err
		}

		path := filepath.Join(dir, notes.FileName(e.ID, e.Note))
		if err := utils.WriteFileAtomic(path, data, 0600); err != nil {
			return result, fmt.Errorf("writing %s: %w", path, err)
		}
		result.Files = append(result.Files, path)
	}

	return result, nil
}
