package cmd

import (
	"fmt"

	"github.com/PolarWolf314/notevault/internal/configs"
	"github.com/PolarWolf314/notevault/internal/ui"

	"github.com/spf13/cobra"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Creates ~/.config/notevault/config.toml with the default settings if it
does not exist yet. An existing file is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config init command")

		config, created, err := configs.EnsureUserConfig()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to initialize config: %v", err)
		}

		path := configs.ConfigFilePath()
		if !created {
			ConfigLogger.Infof("Config already exists at %s", path)
			fmt.Println(ui.Muted.Sprint("Config already exists at " + path))
			fmt.Println(ui.HintLine("Run " + ui.Code.Sprint("notevault config show") + " to see it"))
			return nil
		}

		ConfigLogger.Infof("Wrote config to %s", path)
		fmt.Println(ui.SuccessLine("Config written to " + ui.Path.Sprint(path)))
		fmt.Printf("  %-22s %s\n", "Vault:", config.Vault.Path)
		fmt.Printf("  %-22s %d\n", "Min password length:", config.Security.MinPasswordLength)
		fmt.Printf("  %-22s %d\n", "Preview length:", config.Display.PreviewLength)
		return nil
	},
}
