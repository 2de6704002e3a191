package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgavlin/pathlib"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [paths]",
	Short: "Print the canonical absolute form of each path",
	Long: `Print the canonical absolute form of each path: relative paths are
anchored at the working directory, ".." segments collapse, and symlinks are
followed for the portion of the path that exists.

A leading "~" is not expanded: it resolves as a literal segment relative to
the working directory. Use "pathlib expand --resolve" for home-relative
resolution.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			resolved, err := pathlib.Parse(arg).Resolve()
			if err != nil {
				return err
			}
			fmt.Println(resolved)
		}
		return nil
	},
}

var expandResolve bool

var expandCmd = &cobra.Command{
	Use:   "expand [paths]",
	Short: "Expand a leading ~ or ~username segment to a home directory",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			expanded, err := pathlib.Parse(arg).ExpandUser()
			if err != nil {
				return err
			}
			if expandResolve {
				if expanded, err = expanded.Resolve(); err != nil {
					return err
				}
			}
			fmt.Println(expanded)
		}
		return nil
	},
}

func init() {
	expandCmd.Flags().BoolVar(&expandResolve, "resolve", false, "resolve the expanded path")
}
