// Package convert holds the size and rate conversion commands plus the
// unit table listing.
package convert

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/bytq/bytq/internal/unit"
	"github.com/bytq/bytq/pkg/datarate"
	"github.com/bytq/bytq/pkg/datasize"
	"github.com/bytq/bytq/pkg/utils"
)

var (
	toUnit    string
	precision int
	delimiter string
	asBits    bool
	asBytes   bool
)

var sizeCmd = cobra.Command{
	Use:   "size <value>",
	Short: "Convert or humanize a data size, e.g. '1536' or '1.5 MB'",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := datasize.New(args[0])
		utils.CheckErrorAndExit(err, "Parse size failed")

		opts := []datasize.FormatOption{
			datasize.WithPrecision(precision),
			datasize.WithDelimiter(delimiter),
		}
		if toUnit == "" {
			fmt.Println(s.Humanize(opts...))
			return
		}
		out, err := s.To(toUnit, opts...)
		utils.CheckErrorAndExit(err, "Convert size failed")
		fmt.Println(out)
	},
}

var rateCmd = cobra.Command{
	Use:   "rate <value>",
	Short: "Convert or humanize a data rate, e.g. '100 Mbps' or '12.5 MBps'",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r, err := datarate.New(args[0])
		utils.CheckErrorAndExit(err, "Parse rate failed")

		opts := []datarate.FormatOption{
			datarate.WithPrecision(precision),
			datarate.WithDelimiter(delimiter),
		}
		if asBits {
			opts = append(opts, datarate.WithBitUnits())
		} else if asBytes {
			opts = append(opts, datarate.WithByteUnits())
		}
		if toUnit == "" {
			fmt.Println(r.Humanize(opts...))
			return
		}
		out, err := r.To(toUnit, opts...)
		utils.CheckErrorAndExit(err, "Convert rate failed")
		fmt.Println(out)
	},
}

var unitsCmd = cobra.Command{
	Use:   "units",
	Short: "List recognized units",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		displayUnits()
	},
}

func displayUnits() {
	tbl := tablewriter.NewTable(os.Stdout,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Borders:  tw.BorderNone,
			Settings: tw.Settings{Separators: tw.SeparatorsNone},
		})),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	tbl.Header([]string{"exp", "size (base 1024)", "rate bits (base 1000)", "rate bytes (base 1000)"})

	sizes := unit.SizeSpecs()
	bits := unit.RateSpecs(true)
	bytes := unit.RateSpecs(false)
	for i := range sizes {
		tbl.Append([]string{
			fmt.Sprintf("%d", sizes[i].Exp),
			sizes[i].Symbol,
			bits[i].Symbol,
			bytes[i].Symbol,
		})
	}
	tbl.Render()
}

func Export(root *cobra.Command) {
	for _, c := range []*cobra.Command{&sizeCmd, &rateCmd} {
		c.Flags().StringVarP(&toUnit, "to", "t", "", "Target unit; humanize when empty")
		c.Flags().IntVarP(&precision, "precision", "p", 2, "Decimal places, negative for full precision")
		c.Flags().StringVarP(&delimiter, "delimiter", "d", " ", "Between number and unit")
	}
	rateCmd.Flags().BoolVar(&asBits, "bits", false, "Render in the bit family")
	rateCmd.Flags().BoolVar(&asBytes, "bytes", false, "Render in the byte family")
	rateCmd.MarkFlagsMutuallyExclusive("bits", "bytes")

	root.AddCommand(&sizeCmd, &rateCmd, &unitsCmd)
}
