package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgavlin/pathlib"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Print the invoking user's home directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := pathlib.Home()
		if err != nil {
			return err
		}
		fmt.Println(home)
		return nil
	},
}

var cwdCmd = &cobra.Command{
	Use:   "cwd",
	Short: "Print the process's working directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := pathlib.Cwd()
		if err != nil {
			return err
		}
		fmt.Println(cwd)
		return nil
	},
}
