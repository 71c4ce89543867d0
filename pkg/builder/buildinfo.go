package builder

import (
	"fmt"
	"os"
	"runtime"
)

// Set via -ldflags at release build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

func BuildInfo() string {
	return fmt.Sprintf("%s %s (commit %s, built %s) %s", os.Args[0], Version, Commit, Date, GoVersion)
}
