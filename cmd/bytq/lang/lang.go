// Package lang holds the language registry commands.
package lang

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/bytq/bytq/pkg/duration"
	"github.com/bytq/bytq/pkg/utils"
)

var loadDir string

var listCmd = cobra.Command{
	Use:     "list",
	Short:   "List loaded languages",
	Aliases: []string{"ls"},
	Args:    cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		reg := registry()
		tbl := tablewriter.NewTable(os.Stdout,
			tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
				Borders:  tw.BorderNone,
				Settings: tw.Settings{Separators: tw.SeparatorsNone},
			})),
			tablewriter.WithRowAlignment(tw.AlignLeft),
		)
		tbl.Header([]string{"code", "default"})
		for _, code := range reg.Codes() {
			def := ""
			if code == reg.Default() {
				def = "*"
			}
			tbl.Append([]string{code, def})
		}
		tbl.Render()
	},
}

var demoCmd = cobra.Command{
	Use:   "demo <seconds> [code]",
	Short: "Render a duration in every loaded language, or one code",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var seconds float64
		_, err := fmt.Sscanf(args[0], "%f", &seconds)
		utils.CheckErrorAndExit(err, "Parse seconds failed")

		reg := registry()
		codes := reg.Codes()
		if len(args) == 2 {
			codes = []string{args[1]}
		}
		for _, code := range codes {
			out, err := reg.Format(seconds, code)
			utils.CheckErrorAndExit(err, "Format duration failed")
			fmt.Printf("%s\t%s\n", code, out)
		}
	},
}

// registry returns the default registry, extended with tables from
// --load-dir when given.
func registry() *duration.Registry {
	reg := duration.Default()
	if loadDir != "" {
		codes, err := reg.LoadDir(loadDir)
		utils.CheckErrorAndExit(err, "Load language dir failed")
		utils.VerbosePrintln("Loaded %d language tables from %s", len(codes), loadDir)
	}
	return reg
}

func Export(root *cobra.Command) {
	langCmd := cobra.Command{
		Use:   "lang",
		Short: "Duration language registry",
	}
	langCmd.PersistentFlags().StringVar(&loadDir, "load-dir", "", "Directory of *.json language tables to load")
	langCmd.AddCommand(&listCmd, &demoCmd)
	root.AddCommand(&langCmd)
}
