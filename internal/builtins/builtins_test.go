package builtins

import (
	"testing"

	"github.com/cwbudde/go-indylang/internal/label"
	"github.com/cwbudde/go-indylang/internal/term"
	"github.com/cwbudde/go-indylang/internal/value"
)

func noForce(term.Expr, *value.Env) value.Value { return nil }

func TestIsNumFamilyAreTotalPredicates(t *testing.T) {
	if Unary(term.OpIsNum, "", value.Str{V: "x"}, noForce).(value.Bool).V {
		t.Fatalf("a string must not report isNum true")
	}
	if !Unary(term.OpIsStr, "", value.Str{V: "x"}, noForce).(value.Bool).V {
		t.Fatalf("expected isStr true for a string")
	}
}

func TestIsZeroStuckOnNonNumber(t *testing.T) {
	got := Unary(term.OpIsZero, "", value.Str{V: "x"}, noForce)
	if !value.IsAbort(got) {
		t.Fatalf("expected isZero on a non-number to abort, got %v", got)
	}
}

func TestBlameUsesAccusedParty(t *testing.T) {
	l := label.New(true, "p", "n")
	got := Unary(term.OpBlame, "", value.LabelValue{L: l}, noForce)
	sig, ok := value.AsSignal(got)
	if !ok {
		t.Fatalf("expected a diagnostic signal from blame")
	}
	if sig.Label.Accused() != "p" {
		t.Fatalf("expected positive party p accused, got %s", sig.Label.Accused())
	}
}

func TestHeadForcesOnlyFirstElement(t *testing.T) {
	calls := 0
	reduce := func(e term.Expr, env *value.Env) value.Value {
		calls++
		return value.Number{V: 1}
	}
	tail := value.NewThunk(term.Int(99), value.NewEnv(nil))
	list := value.List{Items: []*value.Thunk{
		value.NewThunk(term.Int(1), value.NewEnv(nil)),
		tail,
	}}

	got := Unary(term.OpHead, "", list, reduce)
	if got.(value.Number).V != 1 {
		t.Fatalf("expected head to return 1")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one forcing call, got %d", calls)
	}
	if _, forced := tail.Forced(); forced {
		t.Fatalf("expected tail element to remain unforced")
	}
}

func TestArithmeticStuckOnTypeMismatch(t *testing.T) {
	got := Binary(term.OpAdd, value.Number{V: 1}, value.Str{V: "x"}, noForce, nil)
	if !value.IsAbort(got) {
		t.Fatalf("expected a stuck signal for mismatched + operands")
	}
}

func TestMapIsLazyPerElement(t *testing.T) {
	applyCount := 0
	apply := func(fn, arg value.Value) value.Value {
		applyCount++
		return value.Number{V: arg.(value.Number).V * 2}
	}
	list := value.List{Items: []*value.Thunk{
		value.Done(value.Number{V: 1}),
		value.Done(value.Number{V: 2}),
	}}
	mapped := Binary(term.OpMap, &value.NativeFunc{}, list, nil, apply)
	result, ok := mapped.(value.List)
	if !ok {
		t.Fatalf("expected map to return a list")
	}
	if applyCount != 0 {
		t.Fatalf("expected map to build lazily without applying yet, got %d calls", applyCount)
	}
	first := result.Items[0].Force(nil)
	if applyCount != 1 || first.(value.Number).V != 2 {
		t.Fatalf("expected forcing the first element to apply exactly once, got calls=%d val=%v", applyCount, first)
	}
}

func TestMergeRightBiasedOverwrite(t *testing.T) {
	l := &value.Record{Fields: []value.RecField{{Name: "a", Thunk: value.Done(value.Number{V: 1})}}}
	r := &value.Record{Fields: []value.RecField{{Name: "a", Thunk: value.Done(value.Number{V: 2})}}}

	merged := Binary(term.OpMerge, l, r, noForce, nil).(*value.Record)
	th, _ := merged.Find("a")
	if th.Force(nil).(value.Number).V != 2 {
		t.Fatalf("expected merge to prefer the right operand's field value")
	}
}

func TestEqualityRefusesFunctionsAndRecords(t *testing.T) {
	got := Binary(term.OpEq, &value.NativeFunc{}, &value.NativeFunc{}, noForce, nil)
	if got.(value.Bool).V {
		t.Fatalf("expected two distinct callables never to compare equal")
	}
	rec := &value.Record{}
	if Binary(term.OpEq, rec, rec, noForce, nil).(value.Bool).V {
		t.Fatalf("expected a record never to compare equal, not even to itself")
	}
}

func TestStringEqualityNormalizesUnicodeComposition(t *testing.T) {
	// "é" as a single precomposed codepoint vs. "e" followed by a
	// combining acute accent must compare equal under NFC normalization.
	precomposed := value.Str{V: "café"}
	decomposed := value.Str{V: "café"}
	got := Binary(term.OpEq, precomposed, decomposed, noForce, nil)
	if !got.(value.Bool).V {
		t.Fatalf("expected Unicode-equivalent strings to compare equal under NFC")
	}
}

func TestStringConcatNormalizesUnicodeComposition(t *testing.T) {
	decomposed := value.Str{V: "é"}
	got := Binary(term.OpConcatStr, value.Str{V: ""}, decomposed, noForce, nil)
	want := value.Str{V: "é"}
	if got.(value.Str).V != want.V {
		t.Fatalf("expected concatenation to normalize to NFC, got %q", got.(value.Str).V)
	}
}
