package cmd

import (
	"fmt"

	"github.com/PolarWolf314/notevault/internal/configs"
	"github.com/PolarWolf314/notevault/internal/ui"
	"github.com/PolarWolf314/notevault/internal/utils"

	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

// configJSON is the machine-readable form printed by config show --json.
type configJSON struct {
	ConfigFile        string `json:"config_file"`
	ConfigFileExists  bool   `json:"config_file_exists"`
	VaultPath         string `json:"vault_path"`
	MinPasswordLength int    `json:"min_password_length"`
	PreviewLength     int    `json:"preview_length"`
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the configuration in effect",
	Long: `Displays the settings in effect, including the resolved vault path.

Settings missing from the config file show their defaults. The vault path
reflects $NOTEVAULT_VAULT when it is set.

Examples:
  notevault config show
  notevault config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")
		ConfigLogger.Debugf("Flags: json=%t", configShowJSON)

		path := configs.ConfigFilePath()
		exists, err := utils.FileExists(path)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to check config file: %v", err)
		}

		config, err := configs.LoadUserConfig()
		if err != nil {
			fmt.Println(ui.ErrorLine("Could not read " + ui.Path.Sprint(path)))
			fmt.Println(ui.Error.Sprint("Error: ") + err.Error())
			return nil
		}

		vault, err := configs.ResolveVaultPath("", config)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to resolve vault path: %v", err)
		}

		out := configJSON{
			ConfigFile:        path,
			ConfigFileExists:  exists,
			VaultPath:         vault,
			MinPasswordLength: config.Security.MinPasswordLength,
			PreviewLength:     config.Display.PreviewLength,
		}

		if configShowJSON {
			ConfigLogger.Debugf("Printing config as JSON")
			return printJSON(out)
		}

		fmt.Println(ui.Info.Sprint("User configuration"))
		fmt.Println()
		file := ui.Path.Sprint(out.ConfigFile)
		if !out.ConfigFileExists {
			file += " " + ui.Muted.Sprint("not created, using defaults")
		}
		fmt.Printf("  %-22s %s\n", "Config file:", file)
		fmt.Printf("  %-22s %s\n", "Vault:", ui.Path.Sprint(out.VaultPath))
		fmt.Printf("  %-22s %d\n", "Min password length:", out.MinPasswordLength)
		fmt.Printf("  %-22s %d\n", "Preview length:", out.PreviewLength)

		if !out.ConfigFileExists {
			fmt.Println()
			fmt.Println(ui.HintLine("Run " + ui.Code.Sprint("notevault config init") + " to create the file"))
		}
		return nil
	},
}
