package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "indy",
	Short: "Lazily-evaluated contract-checking language evaluator",
	Long: `indy evaluates fully-elaborated terms for a small, lazily-evaluated,
gradually-typed functional language whose distinguishing feature is
higher-order contract checking: types appear at runtime as
runtime-enforced contracts that blame a specific party when violated.

The lexer and parser are out of scope for this core; indy's "run"
command instead loads a YAML (or inline JSON) document already shaped
like the term/type trees the evaluator expects.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
