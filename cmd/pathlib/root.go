package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pgavlin/pathlib/cmd/pathlib/internal/term"
	"github.com/pgavlin/pathlib/internal/config"
)

var (
	conf      = &config.Config{}
	version   = "development"
	termWidth int
)

var rootCmd = &cobra.Command{
	Version:       version,
	Use:           "pathlib",
	Short:         "pathlib is a toolbox for inspecting and traversing filesystem paths.",
	Long:          `A toolbox for inspecting, resolving, and traversing filesystem paths.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		termWidth, _, _ = term.GetSize(os.Stdout)

		c, err := config.Load()
		if err != nil {
			return err
		}
		conf = c

		switch conf.Color {
		case "always":
			color.NoColor = false
		case "never":
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(existsCmd)
	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(cwdCmd)
	rootCmd.AddCommand(replCmd)
}
