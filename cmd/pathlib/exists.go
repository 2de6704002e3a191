package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pgavlin/pathlib"
)

var (
	presentColor = color.New(color.FgGreen)
	missingColor = color.New(color.FgRed)
)

var existsCmd = &cobra.Command{
	Use:   "exists [paths]",
	Short: "Report whether each path refers to an existing filesystem entry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			ok, err := pathlib.Parse(arg).Exists()
			if err != nil {
				return err
			}
			if ok {
				fmt.Printf("%s: %s\n", arg, presentColor.Sprint("true"))
			} else {
				fmt.Printf("%s: %s\n", arg, missingColor.Sprint("false"))
			}
		}
		return nil
	},
}
