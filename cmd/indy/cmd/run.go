package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/go-indylang/internal/diag"
	"github.com/cwbudde/go-indylang/internal/eval"
	"github.com/cwbudde/go-indylang/internal/loader"
	"github.com/cwbudde/go-indylang/internal/term"
	"github.com/cwbudde/go-indylang/internal/value"
)

var (
	evalJSON string
	jsonOut  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Load and reduce a term document to weak-head normal form",
	Long: `Load a YAML term document (or an inline JSON snippet via --eval),
reduce it to weak-head normal form, and print the resulting value or
blame report.

Examples:
  # Run a fixture file
  indy run program.yaml

  # Evaluate an inline JSON-encoded term
  indy run --eval '{"kind":"int","value":9}'

  # Emit the result as a JSON report instead of plain text
  indy run --json program.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTerm,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalJSON, "eval", "e", "", "evaluate an inline JSON-encoded term instead of reading a file")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as a JSON report (sjson-built, no struct round-trip)")
}

func runTerm(_ *cobra.Command, args []string) error {
	var (
		e        term.Expr
		err      error
		filename string
	)

	switch {
	case evalJSON != "":
		filename = "<eval>"
		e, err = loader.LoadJSON([]byte(evalJSON))
	case len(args) == 1:
		filename = args[0]
		e, err = loader.LoadFile(filename)
	default:
		return fmt.Errorf("either provide a file path or use -e/--eval for an inline term")
	}
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[running %s]\n", filename)
	}

	ev := eval.New()
	result := ev.Eval(e, value.NewEnv(nil))

	if jsonOut {
		return printJSONReport(result)
	}

	if sig, ok := value.AsSignal(result); ok {
		trace := ev.Stack.Snapshot()
		fmt.Fprintln(os.Stderr, sig.String())
		if trace.Depth() > 0 {
			fmt.Fprintln(os.Stderr, trace.String())
		}
		return fmt.Errorf("evaluation failed: %s", sig.Kind)
	}

	fmt.Println(result.String())
	return nil
}

// printJSONReport builds the run report as JSON via sjson, the same
// build-without-a-struct approach internal/loader pairs gjson with for
// decoding: the report shape (a value, or blame fields for the accused,
// positive and negative parties plus an optional context) doesn't
// warrant a dedicated struct.
func printJSONReport(result value.Value) error {
	out := "{}"
	var err error

	if sig, ok := value.AsSignal(result); ok {
		out, err = sjson.Set(out, "status", sig.Kind.String())
		if err != nil {
			return err
		}
		out, err = sjson.Set(out, "message", sig.String())
		if err != nil {
			return err
		}
		if sig.Kind == diag.KindBlame {
			out, err = sjson.Set(out, "blame.accused", sig.Label.Accused())
			if err != nil {
				return err
			}
			out, err = sjson.Set(out, "blame.positive", sig.Label.Pos)
			if err != nil {
				return err
			}
			out, err = sjson.Set(out, "blame.negative", sig.Label.Neg)
			if err != nil {
				return err
			}
			if sig.Label.Context != "" {
				out, err = sjson.Set(out, "blame.context", sig.Label.Context)
				if err != nil {
					return err
				}
			}
		}
		fmt.Println(out)
		return fmt.Errorf("evaluation failed: %s", sig.Kind)
	}

	out, err = sjson.Set(out, "status", "ok")
	if err != nil {
		return err
	}
	out, err = sjson.Set(out, "value", result.String())
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
