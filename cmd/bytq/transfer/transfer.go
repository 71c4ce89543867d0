// Package transfer holds the transfer-time and transfer-amount
// commands.
package transfer

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/bytq/bytq/pkg/datarate"
	"github.com/bytq/bytq/pkg/datasize"
	"github.com/bytq/bytq/pkg/transfer"
	"github.com/bytq/bytq/pkg/utils"
)

var langCode string

var timeCmd = cobra.Command{
	Use:   "time <size> <rate>",
	Short: "Time to move a size at a rate, e.g. time '1 GB' '100 Mbps'",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		size, err := datasize.New(args[0])
		utils.CheckErrorAndExit(err, "Parse size failed")
		rate, err := datarate.New(args[1])
		utils.CheckErrorAndExit(err, "Parse rate failed")

		seconds, err := transfer.Time(size, rate)
		utils.CheckErrorAndExit(err, "Compute transfer time failed")
		formatted, err := transfer.FormattedTime(size, rate, langCode)
		utils.CheckErrorAndExit(err, "Format transfer time failed")

		displayTime(size, rate, seconds, formatted)
	},
}

var amountCmd = cobra.Command{
	Use:     "amount <rate> <seconds>",
	Short:   "Size moved at a rate over a number of seconds",
	Aliases: []string{"estimate"},
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		rate, err := datarate.New(args[0])
		utils.CheckErrorAndExit(err, "Parse rate failed")
		seconds, err := strconv.ParseFloat(args[1], 64)
		utils.CheckErrorAndExit(err, "Parse seconds failed")

		size, err := transfer.Amount(rate, seconds)
		utils.CheckErrorAndExit(err, "Compute transfer amount failed")
		fmt.Println(size.Humanize())
	},
}

func displayTime(size datasize.Size, rate datarate.Rate, seconds float64, formatted string) {
	tbl := tablewriter.NewTable(os.Stdout,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Borders:  tw.BorderNone,
			Settings: tw.Settings{Separators: tw.SeparatorsNone},
		})),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	tbl.Header([]string{"size", "rate", "seconds", "duration"})
	tbl.Append([]string{
		size.Humanize(),
		rate.Humanize(),
		strconv.FormatFloat(seconds, 'f', -1, 64),
		formatted,
	})
	tbl.Render()
}

func Export(root *cobra.Command) {
	timeCmd.Flags().StringVarP(&langCode, "lang", "l", "", "Language code for the duration phrase")

	transferCmd := cobra.Command{
		Use:   "transfer",
		Short: "Transfer time and amount calculations",
	}
	transferCmd.AddCommand(&timeCmd, &amountCmd)
	root.AddCommand(&transferCmd)
}
