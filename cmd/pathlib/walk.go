package main

import (
	"fmt"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pgavlin/fx/v2"
	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"

	"github.com/pgavlin/pathlib"
	"github.com/pgavlin/pathlib/util"
)

var (
	walkExclude globFlag
	walkFiles   bool
	walkLong    bool
	walkJSON    bool
)

var dirColor = color.New(color.FgBlue, color.Bold)

var walkCmd = &cobra.Command{
	Use:   "walk [dir]",
	Short: "List the directories reachable from a root, top-down",
	Long: `List every directory reachable from the given root (or the working
directory), including the root itself, depth-first and top-down. A missing
or non-directory root produces no output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := pathlib.Parse(".")
		if len(args) == 1 {
			root = pathlib.Parse(args[0])
		}

		exclude := walkExclude.re
		if exclude == nil && len(conf.Exclude) != 0 {
			// Patterns were validated when the config file was loaded.
			exclude = util.Must2(util.CompileGlobs(conf.Exclude))
		}

		dirs := root.Walk()
		if exclude != nil {
			dirs = fx.FMap(dirs, func(p *pathlib.Path) (*pathlib.Path, bool) {
				return p, !exclude.MatchString(p.String())
			})
		}

		if walkJSON {
			paths := slices.Collect(fx.FMap(dirs, func(p *pathlib.Path) (string, bool) {
				return p.String(), true
			}))
			enc := sonnet.NewEncoder(os.Stdout)
			enc.SetIndent("", "    ")
			return enc.Encode(paths)
		}

		for dir := range dirs {
			dirColor.Println(truncate(dir.String(), termWidth))
			if !walkFiles {
				continue
			}
			for child := range dir.IterDir() {
				info, err := os.Stat(child.String())
				if err != nil || info.IsDir() {
					continue
				}
				if walkLong {
					fmt.Printf("  %-10s %s\n", humanize.Bytes(uint64(info.Size())), child.Name())
				} else {
					fmt.Printf("  %s\n", child.Name())
				}
			}
		}
		return nil
	},
}

// truncate shortens line to at most width bytes, cutting on a rune
// boundary before appending the ellipsis. A width of zero (no terminal)
// leaves the line alone.
func truncate(line string, width int) string {
	if width <= 3 || len(line) <= width {
		return line
	}
	cut := width - 3
	for cut > 0 && !utf8.RuneStart(line[cut]) {
		cut--
	}
	return line[:cut] + "..."
}

func init() {
	walkCmd.Flags().Var(&walkExclude, "exclude", "skip paths matching the given glob (may be repeated)")
	walkCmd.Flags().BoolVarP(&walkFiles, "files", "f", false, "also list the files in each directory")
	walkCmd.Flags().BoolVarP(&walkLong, "long", "l", false, "print file sizes alongside files")
	walkCmd.Flags().BoolVar(&walkJSON, "json", false, "print the directory list as JSON")
}
