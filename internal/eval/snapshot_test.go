package eval

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-indylang/internal/label"
	"github.com/cwbudde/go-indylang/internal/term"
)

// TestEvalSnapshots runs a handful of small end-to-end programs and
// compares their printed result (or error) against a golden snapshot,
// the same snaps.MatchSnapshot convention the teacher's fixture_test.go
// uses for whole-program output.
func TestEvalSnapshots(t *testing.T) {
	l := label.New(true, "caller", "callee")

	cases := []struct {
		name string
		expr term.Expr
	}{
		{
			name: "factorial_of_five",
			expr: term.LetRecIn("fact", term.Lam("n", term.IfThenElse(
				term.Bin(term.OpEq, term.V("n"), term.Int(0)),
				term.Int(1),
				term.Bin(term.OpMul, term.V("n"), term.Ap(term.V("fact"), term.Bin(term.OpSub, term.V("n"), term.Int(1)))),
			)), term.Ap(term.V("fact"), term.Int(5))),
		},
		{
			name: "record_field_through_open_contract",
			expr: term.Get(term.AssumeT(
				term.TRecOpen{Default: term.TStr{}, Fields: []term.RecFieldType{{Name: "id", T: term.TNum{}}}},
				l,
				term.Rec(term.Field("id", term.Int(1)), term.Field("tag", term.Str("ok"))),
			), "tag"),
		},
		{
			name: "blame_on_bad_argument",
			expr: term.Ap(
				term.AssumeT(term.TArrow{Dom: term.TNum{}, Cod: term.TNum{}}, l, term.Lam("x", term.V("x"))),
				term.Bool(true),
			),
		},
		{
			name: "parametric_identity",
			expr: term.Ap(term.AssumeT(
				term.TForall{Binder: "a", Body: term.TArrow{Dom: term.TRowVar{Name: "a"}, Cod: term.TRowVar{Name: "a"}}},
				l,
				term.Lam("x", term.V("x")),
			), term.Str("payload")),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var output string
			got, err := New().Run(c.expr)
			if err != nil {
				output = fmt.Sprintf("error: %s", err)
			} else {
				output = got.String()
			}
			snaps.MatchSnapshot(t, output)
		})
	}
}
