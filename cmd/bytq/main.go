package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bytq/bytq/cmd/bytq/convert"
	"github.com/bytq/bytq/cmd/bytq/lang"
	"github.com/bytq/bytq/cmd/bytq/transfer"
	"github.com/bytq/bytq/pkg/builder"
	"github.com/bytq/bytq/pkg/profile"
	"github.com/bytq/bytq/pkg/utils"
)

var (
	verbose   bool
	version   bool
	logFile   string
	profiling string
)

const logoAscii = ` |          |
 |---- \  / |----
 |___/  \/  |___\
        /        `

var stopProfiling = func() {}

var rootCmd = &cobra.Command{
	Use:   "bytq",
	Short: "data size and rate calculator\n\n" + color.HiBlueString(logoAscii),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.SetVerbose(verbose)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if logFile != "" {
			logrus.SetOutput(&lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    20,
				MaxBackups: 5,
				MaxAge:     30,
				Compress:   true,
			})
		}
		stopProfiling = profile.Start(profiling)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopProfiling()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if version {
			fmt.Println(builder.BuildInfo())
			os.Exit(0)
		}
		cmd.Help()
	},
}

func main() {
	cobra.EnableTraverseRunHooks = true
	convert.Export(rootCmd)
	transfer.Export(rootCmd)
	lang.Export(rootCmd)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to a rotating file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&profiling, "profiling", "", "cpu|memory|block|mutex|trace")
	rootCmd.PersistentFlags().MarkHidden("profiling")
	rootCmd.Flags().BoolVarP(&version, "version", "V", false, "Print version")
	rootCmd.Execute()
}
