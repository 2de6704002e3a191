package main

import (
	"github.com/pgavlin/starlark-go/repl"
	"github.com/pgavlin/starlark-go/starlark"
	"github.com/spf13/cobra"

	"github.com/pgavlin/pathlib/lib/path"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Launch a Starlark REPL with the path module predeclared",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		thread := &starlark.Thread{Name: "repl"}
		globals := starlark.StringDict{"path": path.Module}
		repl.REPL(thread, globals)
		return nil
	},
}
