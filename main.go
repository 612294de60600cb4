package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/notevault/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notevault",
	Short: "notevault - an encrypted notebook on your own disk.",
	Long: `notevault keeps your notes in a single file encrypted with a master password.

Features:
  - Notes are encrypted with a key derived from your master password
  - Search notes by title, content or tag
  - Import and export notes as Markdown

Usage:
  notevault <command> [flags]

Available Commands:
  vault      Create and inspect the encrypted vault
  notes      Add, find and change notes
  config     Manage notevault configuration

Run 'notevault help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("notevault", "small", "cyan", true)
		banner.Print()
		fmt.Println()
		fmt.Println("Run 'notevault --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.VaultCmd)
	rootCmd.AddCommand(cmd.NotesCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
