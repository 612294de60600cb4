package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/notevault/internal/configs"
	kerrors "github.com/PolarWolf314/notevault/internal/errors"
	"github.com/PolarWolf314/notevault/internal/ui"
	"github.com/PolarWolf314/notevault/internal/utils"

	"github.com/briandowns/spinner"
)

// stdin is where --password-stdin, --content - and confirmations read from.
var stdin io.Reader = os.Stdin

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	done := false
	cleanup := func() {
		if done {
			return
		}
		done = true

		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// loadUserConfig loads the config file and resolves the vault path from
// --vault, $NOTEVAULT_VAULT, the config file and the default, in that order.
func loadUserConfig() (*configs.UserConfig, string, error) {
	config, err := configs.LoadUserConfig()
	if err != nil {
		return nil, "", err
	}

	path, err := configs.ResolveVaultPath(vaultPath, config)
	if err != nil {
		return nil, "", err
	}
	Logger.Debugf("Using vault at %s", path)

	return config, path, nil
}

// readMasterPassword obtains the master password from --password-stdin,
// $NOTEVAULT_PASSWORD or an interactive prompt, in that order.
func readMasterPassword(prompt string) ([]byte, bool, error) {
	if passwordStdin {
		Logger.Debugf("Reading master password from stdin")
		password, err := utils.ReadStdinLine(stdin)
		return password, false, err
	}

	if env := os.Getenv(configs.PasswordEnv); env != "" {
		Logger.Debugf("Using master password from $%s", configs.PasswordEnv)
		return []byte(env), false, nil
	}

	if !utils.IsTerminal() {
		return nil, false, kerrors.ErrPasswordRequired
	}

	password, err := utils.ReadPassphrase(prompt)
	return password, true, err
}

// confirmAction asks a yes/no question on stdin. Anything but y or yes is a no.
func confirmAction(prompt string) bool {
	fmt.Print(prompt + " [y/N]: ")
	response, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && response == "" {
		Logger.Errorf("Failed to read response: %v", err)
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// isExpectedError reports whether err is a user-facing condition that has
// already been explained and should not also be returned to cobra.
func isExpectedError(err error) bool {
	for _, target := range []error{
		kerrors.ErrVaultNotFound,
		kerrors.ErrVaultExists,
		kerrors.ErrInvalidPassword,
		kerrors.ErrCorruptedVault,
		kerrors.ErrNoteNotFound,
		kerrors.ErrAmbiguousID,
		kerrors.ErrEmptyTitle,
		kerrors.ErrInvalidText,
		kerrors.ErrPasswordTooShort,
		kerrors.ErrPasswordMismatch,
		kerrors.ErrPasswordRequired,
		kerrors.ErrNoFilesFound,
		kerrors.ErrInvalidFrontMatter,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// formatVaultError turns a workflow error into a message for the user.
func formatVaultError(err error, path string) string {
	switch {
	case errors.Is(err, kerrors.ErrVaultNotFound):
		return ui.ErrorLine("No vault found at "+ui.Path.Sprint(path)) + "\n" +
			ui.HintLine("Run "+ui.Code.Sprint("notevault vault init")+" to create one")

	case errors.Is(err, kerrors.ErrVaultExists):
		return ui.ErrorLine("A vault already exists at "+ui.Path.Sprint(path)) + "\n" +
			ui.HintLine("Use "+ui.Flag.Sprint("--force")+" to replace it. Every note in it will be lost")

	case errors.Is(err, kerrors.ErrInvalidPassword):
		return ui.ErrorLine("Invalid master password")

	case errors.Is(err, kerrors.ErrCorruptedVault):
		return ui.ErrorLine("The vault at "+ui.Path.Sprint(path)+" is corrupted and cannot be read") + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()

	case errors.Is(err, kerrors.ErrNoteNotFound):
		return ui.ErrorLine("Note not found") + "\n" +
			ui.HintLine("Run "+ui.Code.Sprint("notevault notes list")+" to see note ids")

	case errors.Is(err, kerrors.ErrAmbiguousID):
		return ui.ErrorLine(err.Error()) + "\n" +
			ui.HintLine("Use more characters of the note id")

	case errors.Is(err, kerrors.ErrEmptyTitle):
		return ui.ErrorLine("A note needs a title") + "\n" +
			ui.HintLine("Pass one with "+ui.Flag.Sprint("--title"))

	case errors.Is(err, kerrors.ErrInvalidText):
		return ui.ErrorLine("Notes must be UTF-8 text: "+err.Error()) + "\n" +
			ui.HintLine("Convert the input first, for example with "+ui.Code.Sprint("iconv -t UTF-8"))

	case errors.Is(err, kerrors.ErrPasswordTooShort):
		return ui.ErrorLine(err.Error())

	case errors.Is(err, kerrors.ErrPasswordMismatch):
		return ui.ErrorLine("Passwords do not match")

	case errors.Is(err, kerrors.ErrPasswordRequired):
		return ui.ErrorLine("A master password is required") + "\n" +
			ui.HintLine("Pipe it with "+ui.Flag.Sprint("--password-stdin")+" or set "+ui.Code.Sprint("$"+configs.PasswordEnv))

	case errors.Is(err, kerrors.ErrNoFilesFound):
		return ui.ErrorLine(err.Error())

	case errors.Is(err, kerrors.ErrInvalidFrontMatter):
		return ui.ErrorLine("Could not import: " + err.Error())

	case errors.Is(err, kerrors.ErrStorageIO):
		return ui.ErrorLine("Could not access the vault files") + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()

	default:
		return ui.ErrorLine("Operation failed: " + err.Error())
	}
}

// handleVaultError shows err through the spinner and decides what to return to cobra.
func handleVaultError(s *spinner.Spinner, err error, path string) error {
	Logger.Debugf("Operation failed: %v", err)
	s.FinalMSG = formatVaultError(err, path)
	if isExpectedError(err) {
		return nil
	}
	return err
}

// reportError prints err when no spinner is running and decides what to return to cobra.
func reportError(err error, path string) error {
	Logger.Debugf("Operation failed: %v", err)
	fmt.Println(formatVaultError(err, path))
	if isExpectedError(err) {
		return nil
	}
	return err
}
