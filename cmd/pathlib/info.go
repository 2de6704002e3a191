package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"

	"github.com/pgavlin/pathlib"
)

var infoJSON bool

type pathDescription struct {
	Path     string   `json:"path"`
	Name     string   `json:"name"`
	Stem     string   `json:"stem"`
	Suffix   string   `json:"suffix"`
	Parent   string   `json:"parent"`
	Absolute string   `json:"absolute"`
	Segments []string `json:"segments"`
}

func describe(raw string) (pathDescription, error) {
	p := pathlib.Parse(raw)
	abs, err := p.Absolute()
	if err != nil {
		return pathDescription{}, err
	}
	return pathDescription{
		Path:     p.String(),
		Name:     p.Name(),
		Stem:     p.Stem(),
		Suffix:   p.Suffix(),
		Parent:   p.Parent().String(),
		Absolute: abs.String(),
		Segments: p.Segments(),
	}, nil
}

var infoCmd = &cobra.Command{
	Use:   "info [paths]",
	Short: "Describe the components of each path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		descriptions := make([]pathDescription, len(args))
		for i, arg := range args {
			d, err := describe(arg)
			if err != nil {
				return err
			}
			descriptions[i] = d
		}

		if infoJSON {
			enc := sonnet.NewEncoder(os.Stdout)
			enc.SetIndent("", "    ")
			return enc.Encode(descriptions)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 2, 0, ' ', 0)
		for _, d := range descriptions {
			fmt.Fprintf(w, "%s\t name=%s\t stem=%s\t suffix=%s\t parent=%s\n", d.Path, d.Name, d.Stem, d.Suffix, d.Parent)
		}
		return w.Flush()
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "print JSON descriptions")
}
