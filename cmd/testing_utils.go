// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up an isolated vault,
// capturing output, and running commands through a fresh root command.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/notevault/internal/configs"
	logger "github.com/PolarWolf314/notevault/internal/logging"

	"github.com/spf13/cobra"
)

// testPassword is the master password every command test runs with.
const testPassword = "correct horse battery"

// setupTestEnvironment points the config and data directories at a temp
// directory and supplies the vault path and master password through the
// environment. It returns the vault path.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalSettings := configs.UserNotevaultSettings
	originalStdin := stdin

	configs.UserNotevaultSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempDir, "config"),
		UserDataPath:    filepath.Join(tempDir, "data"),
	}
	stdin = strings.NewReader("")

	t.Cleanup(func() {
		configs.UserNotevaultSettings = originalSettings
		stdin = originalStdin
		ResetGlobalState()
		ResetConfigState()
	})

	vaultFile := filepath.Join(tempDir, "data", "notes_vault.enc")
	t.Setenv(configs.VaultPathEnv, vaultFile)
	t.Setenv(configs.PasswordEnv, testPassword)
	t.Setenv("NO_COLOR", "1")

	return vaultFile
}

// setStdin replaces the reader used for --password-stdin, --content - and
// confirmations for the rest of the test.
func setStdin(t *testing.T, input string) {
	t.Helper()
	original := stdin
	stdin = strings.NewReader(input)
	t.Cleanup(func() { stdin = original })
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// createTestCLI creates a complete CLI instance for testing that runs args.
func createTestCLI(args ...string) *cobra.Command {
	ResetGlobalState()
	ResetConfigState()

	Logger = logger.Logger{}
	ConfigLogger = logger.Logger{}

	rootCmd := &cobra.Command{
		Use:           "notevault",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(VaultCmd)
	rootCmd.AddCommand(NotesCmd)
	rootCmd.AddCommand(ConfigCmd)

	rootCmd.SetArgs(args)
	return rootCmd
}

// runCLI runs args through a fresh root command and returns everything it printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return captureOutput(func() error {
		return createTestCLI(args...).Execute()
	})
}

// initTestVault creates the vault used by a test and fails the test if that does not work.
func initTestVault(t *testing.T) {
	t.Helper()
	output, err := runCLI(t, "vault", "init")
	if err != nil {
		t.Fatalf("vault init failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Vault created successfully") {
		t.Fatalf("vault init did not report success:\n%s", output)
	}
}
