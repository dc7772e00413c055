package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var versionFile string

// Build-time variables set via ldflags
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App returns the current version of db2snow
func App() string {
	return strings.TrimSpace(versionFile)
}
