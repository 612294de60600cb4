package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/PolarWolf314/notevault/internal/ui"
	"github.com/PolarWolf314/notevault/internal/workflows"

	"github.com/spf13/cobra"
)

var vaultStatusJSON bool

func init() {
	vaultStatusCmd.Flags().BoolVar(&vaultStatusJSON, "json", false, "output in JSON format")
}

// resetVaultStatusState resets the vault status command's global state for testing.
func resetVaultStatusState() {
	vaultStatusJSON = false
}

var vaultStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the vault lives and whether it exists",
	Long: `Shows the vault and salt files with their sizes and modification times.

No master password is needed: the vault stays encrypted.

Use --json for machine-readable output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting vault status command")

		_, path, err := loadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		result, err := workflows.Status(context.Background(), workflows.StatusOptions{VaultPath: path})
		if err != nil {
			return reportError(err, path)
		}
		Logger.Debugf("Status: initialized=%t, salt valid=%t", result.Initialized, result.SaltValid)

		if vaultStatusJSON {
			output, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("failed to marshal status to JSON: %v", err)
			}
			fmt.Println(string(output))
			return nil
		}

		printVaultStatus(result)
		return nil
	},
}

func printVaultStatus(result *workflows.StatusResult) {
	fmt.Println(ui.Info.Sprint("Vault status"))
	fmt.Println()
	printArtifact("Vault:", result.Blob)
	printArtifact("Salt:", result.Salt)
	fmt.Println()

	switch {
	case !result.Blob.Present && !result.Salt.Present:
		fmt.Println(ui.ErrorLine("No vault has been created here"))
		fmt.Println(ui.HintLine("Run " + ui.Code.Sprint("notevault vault init") + " to create one"))
	case !result.Initialized:
		fmt.Println(ui.ErrorLine("The vault is incomplete: both files are needed to unlock it"))
	case !result.SaltValid:
		fmt.Println(ui.ErrorLine("The salt file is damaged: the vault cannot be unlocked"))
	default:
		fmt.Println(ui.SuccessLine("Vault is ready"))
		fmt.Println(ui.HintLine("Run " + ui.Code.Sprint("notevault vault verify") + " to check your master password"))
	}
}

func printArtifact(label string, info workflows.ArtifactInfo) {
	if !info.Present {
		fmt.Printf("  %-7s %s %s\n", label, ui.Path.Sprint(info.Path), ui.Error.Sprint("missing"))
		return
	}
	fmt.Printf("  %-7s %s %s\n", label, ui.Path.Sprint(info.Path),
		ui.Muted.Sprintf("%d bytes, modified %s", info.Size, info.ModTime.Format(time.DateTime)))
}
