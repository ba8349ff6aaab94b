// Command indy is the CLI front-end for the contract-checking core: it
// loads a term document, reduces it, and prints the resulting value or
// blame report. Per spec §1/§6 this front-end — the surface syntax, the
// YAML "grammar" internal/loader decodes, the CLI itself — is a
// collaborator, not the core; internal/eval, internal/contract, and the
// rest of internal/ don't import this package.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-indylang/cmd/indy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
