package util

import "errors"

// Sentinel errors let subcommands signal run outcomes that the root
// command maps to distinct process exit codes.
var (
	// ErrNoInputFiles means the input directory held nothing to process.
	ErrNoInputFiles = errors.New("no input files found")

	// ErrNoTables means input files existed but no table made it through.
	ErrNoTables = errors.New("no tables produced")
)

// ExitCode maps an error returned by a subcommand to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNoInputFiles):
		return 2
	case errors.Is(err, ErrNoTables):
		return 3
	default:
		return 1
	}
}
