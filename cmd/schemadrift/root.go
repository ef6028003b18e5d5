// Root command for the schemadrift CLI.
// See docs/ARCHITECTURE.md § CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/schemadrift/pkg/schemadrift"
)

// Exit codes. Drift is never an error: a comparison that ran exits 0
// whether or not drift was found.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir  string
	flagSchemasDir string
	flagJSON       bool
)

var rootCmd = &cobra.Command{
	Use:   "schemadrift",
	Short: "Schemadrift detects structural drift between two schema snapshots",
	Long: `Schemadrift compares two exported schema snapshots of the same data-model
standard and prints a deterministic report of every structural disagreement:
types present on only one side, fields present on only one side, and fields
whose declared type differs across sides.

Running schemadrift with no subcommand is the same as "schemadrift compare".`,
	Version:      schemadrift.Version,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runCompare,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.schemadrift)")
	rootCmd.PersistentFlags().StringVar(&flagSchemasDir, "schemas-dir", "", "schemas directory (default: $(CWD)/schemas)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output the report as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(compareCmd)
}

// exitCodeError carries a process exit code alongside the message that main
// prints to stderr.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }
