// Command appearance manages theme and font-face preferences.
package main

import (
	"runtime"

	"github.com/bnema/appearance/internal/cli/cmd"
	"github.com/bnema/appearance/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
