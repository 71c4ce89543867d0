package utils

import (
	"fmt"
	"os"
)

var verbose bool

func SetVerbose(v bool) {
	verbose = v
}

func Verbose() bool {
	return verbose
}

func VerbosePrintln(format string, a ...any) {
	if !verbose {
		return
	}
	fmt.Printf(format, a...)
	fmt.Println()
}

func CheckErrorAndExit(err error, msg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", msg, err)
		os.Exit(1)
	}
}
