package cmd

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/PolarWolf314/notevault/internal/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addedIDPattern = regexp.MustCompile(`ID: ([0-9a-f-]{36})`)

// addTestNote runs notes add with args and returns the new note's id.
func addTestNote(t *testing.T, args ...string) string {
	t.Helper()
	output, err := runCLI(t, append([]string{"notes", "add"}, args...)...)
	require.NoError(t, err)
	match := addedIDPattern.FindStringSubmatch(output)
	require.NotNil(t, match, "no id in output:\n%s", output)
	return match[1]
}

// listTestNotes returns the vault's notes as printed by notes list --json.
func listTestNotes(t *testing.T, args ...string) []noteJSON {
	t.Helper()
	output, err := runCLI(t, append([]string{"notes", "list", "--json"}, args...)...)
	require.NoError(t, err)
	var listed []noteJSON
	require.NoError(t, json.Unmarshal([]byte(output), &listed), output)
	return listed
}

func TestNotesAddAndList(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)

	first := addTestNote(t, "--title", "Groceries", "--content", "milk, eggs", "--tags", "home, todo")
	second := addTestNote(t, "--title", "Standup", "--content", "ship the release")

	output, err := runCLI(t, "notes", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Groceries")
	assert.Contains(t, output, "home, todo")
	assert.Contains(t, output, "milk, eggs")
	assert.Contains(t, output, first[:8])
	assert.Contains(t, output, "2 notes")
	assert.Less(t, strings.Index(output, "Groceries"), strings.Index(output, "Standup"))

	listed := listTestNotes(t)
	require.Len(t, listed, 2)
	assert.Equal(t, first, listed[0].ID)
	assert.Equal(t, second, listed[1].ID)
	assert.Equal(t, []string{"home", "todo"}, listed[0].Tags)
	assert.Equal(t, []string{}, listed[1].Tags)
	assert.Equal(t, listed[0].CreatedAt, listed[0].ModifiedAt)
}

func TestNotesAddContentFromStdin(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)

	setStdin(t, "line one\nline two\n")
	id := addTestNote(t, "--title", "Piped", "--content", "-")

	listed := listTestNotes(t)
	require.Len(t, listed, 1)
	assert.Equal(t, id, listed[0].ID)
	assert.Equal(t, "line one\nline two\n", listed[0].Content)
}

func TestNotesAddContentAndPasswordBothFromStdin(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)

	setStdin(t, testPassword+"\n")
	_, err := runCLI(t, "notes", "add", "--title", "x", "--content", "-", "--password-stdin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined")
}

func TestNotesAddRequiresTitle(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)

	output, err := runCLI(t, "notes", "add", "--title", "   ", "--content", "body")
	require.NoError(t, err)
	assert.Contains(t, output, "A note needs a title")
	assert.Empty(t, listTestNotes(t))
}

func TestNotesAddRejectsInvalidUTF8(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)

	setStdin(t, "caf\xe9 au lait\n")
	output, err := runCLI(t, "notes", "add", "--title", "Latin-1", "--content", "-")
	require.NoError(t, err)
	assert.Contains(t, output, "Notes must be UTF-8 text")
	assert.Empty(t, listTestNotes(t))
}

func TestNotesWrongPassword(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)
	addTestNote(t, "--title", "kept")

	t.Setenv(configs.PasswordEnv, "wrong password")
	output, err := runCLI(t, "notes", "add", "--title", "rejected")
	require.NoError(t, err)
	assert.Contains(t, output, "Invalid master password")

	t.Setenv(configs.PasswordEnv, testPassword)
	listed := listTestNotes(t)
	require.Len(t, listed, 1)
	assert.Equal(t, "kept", listed[0].Title)
}

func TestNotesWithoutVault(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "notes", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No vault found")
	assert.Contains(t, output, "notevault vault init")
}

func TestNotesListEmpty(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)

	output, err := runCLI(t, "notes", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "no notes yet")

	output, err = runCLI(t, "notes", "list", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", output)
}

func TestNotesListByTag(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)

	addTestNote(t, "--title", "work one", "--tags", "Work")
	addTestNote(t, "--title", "home one", "--tags", "home")
	addTestNote(t, "--title", "work two", "--tags", "work,urgent")

	listed := listTestNotes(t, "--tag", "work")
	require.Len(t, listed, 2)
	assert.Equal(t, "work one", listed[0].Title)
	assert.Equal(t, "work two", listed[1].Title)

	output, err := runCLI(t, "notes", "list", "--tag", "missing")
	require.NoError(t, err)
	assert.Contains(t, output, "No notes tagged missing")
}

func TestNotesListPreviewLength(t *testing.T) {
	setupTestEnvironment(t)
	config := configs.DefaultUserConfig()
	config.Display.PreviewLength = 10
	require.NoError(t, configs.SaveUserConfig(config))
	initTestVault(t)

	addTestNote(t, "--title", "long", "--content", "abcdefghijklmnopqrstuvwxyz")

	output, err := runCLI(t, "notes", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "abcdefghij...")
	assert.NotContains(t, output, "abcdefghijk")
}

func TestNotesSearch(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)

	addTestNote(t, "--title", "Meeting", "--content", "buy milk on the way")
	addTestNote(t, "--title", "Recipes", "--tags", "cooking")
	addTestNote(t, "--title", "Milkshake")

	output, err := runCLI(t, "notes", "search", "MILK")
	require.NoError(t, err)
	assert.Contains(t, output, "Meeting")
	assert.Contains(t, output, "Milkshake")
	assert.NotContains(t, output, "Recipes")
	assert.Contains(t, output, "2 matching notes")

	output, err = runCLI(t, "notes", "search", "cook", "--json")
	require.NoError(t, err)
	var found []noteJSON
	require.NoError(t, json.Unmarshal([]byte(output), &found))
	require.Len(t, found, 1)
	assert.Equal(t, "Recipes", found[0].Title)

	output, err = runCLI(t, "notes", "search", "on", "the", "way")
	require.NoError(t, err)
	assert.Contains(t, output, "Meeting")

	output, err = runCLI(t, "notes", "search", "nothing here")
	require.NoError(t, err)
	assert.Contains(t, output, "No notes match nothing here")
}

func TestNotesSearchRequiresQuery(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCLI(t, "notes", "search")
	require.Error(t, err)
}

func TestNotesShow(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)

	id := addTestNote(t, "--title", "Groceries", "--content", "milk\neggs", "--tags", "home")

	output, err := runCLI(t, "notes", "show", id[:8])
	require.NoError(t, err)
	assert.Contains(t, output, "Groceries")
	assert.Contains(t, output, id)
	assert.Contains(t, output, "home")
	assert.Contains(t, output, "milk\neggs")

	output, err = runCLI(t, "notes", "show", id, "--json")
	require.NoError(t, err)
	var shown noteJSON
	require.NoError(t, json.Unmarshal([]byte(output), &shown))
	assert.Equal(t, id, shown.ID)
	assert.Equal(t, "milk\neggs", shown.Content)

	output, err = runCLI(t, "notes", "show", "ffffffff-0000")
	require.NoError(t, err)
	assert.Contains(t, output, "Note not found")
}

func TestNotesEdit(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)

	id := addTestNote(t, "--title", "Draft", "--content", "body", "--tags", "a,b")

	t.Run("title only", func(t *testing.T) {
		output, err := runCLI(t, "notes", "edit", id[:8], "--title", "Final")
		require.NoError(t, err)
		assert.Contains(t, output, "Updated")

		listed := listTestNotes(t)
		require.Len(t, listed, 1)
		assert.Equal(t, "Final", listed[0].Title)
		assert.Equal(t, "body", listed[0].Content)
		assert.Equal(t, []string{"a", "b"}, listed[0].Tags)
		assert.True(t, listed[0].ModifiedAt.After(listed[0].CreatedAt))
	})

	t.Run("clear tags", func(t *testing.T) {
		_, err := runCLI(t, "notes", "edit", id, "--tags", "")
		require.NoError(t, err)

		listed := listTestNotes(t)
		assert.Empty(t, listed[0].Tags)
		assert.Equal(t, "Final", listed[0].Title)
	})

	t.Run("content from stdin", func(t *testing.T) {
		setStdin(t, "rewritten\n")
		_, err := runCLI(t, "notes", "edit", id, "--content", "-")
		require.NoError(t, err)

		listed := listTestNotes(t)
		assert.Equal(t, "rewritten\n", listed[0].Content)
	})

	t.Run("no fields", func(t *testing.T) {
		before := listTestNotes(t)

		output, err := runCLI(t, "notes", "edit", id)
		require.NoError(t, err)
		assert.Contains(t, output, "Nothing to change")

		after := listTestNotes(t)
		assert.Equal(t, before[0].ModifiedAt, after[0].ModifiedAt)
	})

	t.Run("blank title", func(t *testing.T) {
		output, err := runCLI(t, "notes", "edit", id, "--title", "")
		require.NoError(t, err)
		assert.Contains(t, output, "A note needs a title")

		listed := listTestNotes(t)
		assert.Equal(t, "Final", listed[0].Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		output, err := runCLI(t, "notes", "edit", "does-not-exist", "--title", "x")
		require.NoError(t, err)
		assert.Contains(t, output, "Note not found")
	})
}

func TestNotesDelete(t *testing.T) {
	setupTestEnvironment(t)
	initTestVault(t)

	keep := addTestNote(t, "--title", "keep me")
	drop := addTestNote(t, "--title", "drop me")

	output, err := runCLI(t, "notes", "delete", drop[:8], "--yes")
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted")
	assert.Contains(t, output, "drop me")

	listed := listTestNotes(t)
	require.Len(t, listed, 1)
	assert.Equal(t, keep, listed[0].ID)

	output, err = runCLI(t, "notes", "delete", drop, "--yes")
	require.NoError(t, err)
	assert.Contains(t, output, "Note not found")
}
