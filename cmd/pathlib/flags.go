package main

import (
	"regexp"
	"strings"

	"github.com/spf13/pflag"

	"github.com/pgavlin/pathlib/util"
)

// globFlag accumulates glob patterns and compiles them into a single
// regular expression as they are set.
type globFlag struct {
	globs []string
	re    *regexp.Regexp
}

var _ pflag.Value = (*globFlag)(nil)

func (f *globFlag) String() string {
	return strings.Join(f.globs, ",")
}

func (f *globFlag) Set(glob string) error {
	globs := append(f.globs, glob)
	re, err := util.CompileGlobs(globs)
	if err != nil {
		return err
	}
	f.globs, f.re = globs, re
	return nil
}

func (f *globFlag) Type() string {
	return "glob"
}
