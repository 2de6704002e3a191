package main

import (
	"fmt"
	"os"

	"github.com/pgavlin/starlark-go/starlark"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if serr, ok := err.(*starlark.EvalError); ok {
			fmt.Fprint(os.Stderr, serr.Backtrace())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
