// Package profile starts pprof profiling for the CLI behind a single
// mode string, writing the profile file to the working directory.
package profile

import "github.com/pkg/profile"

// Start begins profiling in the given mode ("cpu", "memory", "block",
// "mutex" or "trace"); any other value is a no-op. The returned function
// stops profiling and must be called before exit. The profile path is
// printed to stderr and can be opened with `go tool pprof`.
func Start(mode string) func() {
	path := profile.ProfilePath(".")
	switch mode {
	case "cpu":
		return profile.Start(path, profile.CPUProfile).Stop
	case "memory":
		return profile.Start(path, profile.MemProfile).Stop
	case "block":
		return profile.Start(path, profile.BlockProfile).Stop
	case "mutex":
		return profile.Start(path, profile.MutexProfile).Stop
	case "trace":
		return profile.Start(path, profile.TraceProfile).Stop
	default:
		return func() {}
	}
}
