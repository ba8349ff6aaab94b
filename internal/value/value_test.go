package value

import (
	"testing"

	"github.com/cwbudde/go-indylang/internal/term"
)

func TestThunkForceMemoizesAcrossRepeatedCalls(t *testing.T) {
	calls := 0
	th := NewThunk(term.Int(41), NewEnv(nil))
	reduce := func(e term.Expr, env *Env) Value {
		calls++
		return Number{V: 41}
	}

	first := th.Force(reduce)
	second := th.Force(reduce)

	if calls != 1 {
		t.Fatalf("expected the reducer to run exactly once, ran %d times", calls)
	}
	if first.(Number).V != 41 || second.(Number).V != 41 {
		t.Fatalf("expected both forces to observe the memoized value")
	}
}

func TestThunkForceDetectsSelfReferentialBlackHole(t *testing.T) {
	var th *Thunk
	th = NewThunk(term.V("x"), NewEnv(nil)).Named("x")
	reentrant := func(e term.Expr, env *Env) Value {
		return th.Force(func(term.Expr, *Env) Value { return Number{V: 0} })
	}

	got := th.Force(reentrant)
	if !IsAbort(got) {
		t.Fatalf("expected a black-hole diagnostic, got %v", got)
	}
}

func TestEnvChildShadowsWithoutMutatingParent(t *testing.T) {
	root := NewEnv(nil)
	root = root.Bind("x", Done(Number{V: 1}))
	child := root.Bind("x", Done(Number{V: 2}))

	childVal, _ := child.Lookup("x")
	rootVal, _ := root.Lookup("x")

	if childVal.Force(nil).(Number).V != 2 {
		t.Fatalf("expected child binding to shadow with 2")
	}
	if rootVal.Force(nil).(Number).V != 1 {
		t.Fatalf("expected parent binding to remain 1, child rebinding must not mutate it")
	}
}

func TestEnvLookupWalksParentChain(t *testing.T) {
	root := NewEnv(nil).Bind("y", Done(Str{V: "outer"}))
	child := NewEnv(root)

	th, ok := child.Lookup("y")
	if !ok {
		t.Fatalf("expected lookup to find binding in parent frame")
	}
	if th.Force(nil).(Str).V != "outer" {
		t.Fatalf("unexpected value from parent lookup")
	}

	if _, ok := child.Lookup("nope"); ok {
		t.Fatalf("expected lookup of unbound name to fail")
	}
}

func TestRecordWithRemovedDropsField(t *testing.T) {
	rec := &Record{Fields: []RecField{
		{Name: "a", Thunk: Done(Number{V: 1})},
		{Name: "b", Thunk: Done(Number{V: 2})},
	}}

	out := rec.WithRemoved("a")
	if _, ok := out.Find("a"); ok {
		t.Fatalf("expected field a to be removed")
	}
	if _, ok := rec.Find("a"); !ok {
		t.Fatalf("original record must not be mutated")
	}
}

func TestRecordWithExtendedShadowsExistingField(t *testing.T) {
	rec := &Record{Fields: []RecField{{Name: "a", Thunk: Done(Number{V: 1})}}}

	out := rec.WithExtended("a", Done(Number{V: 99}))
	th, _ := out.Find("a")
	if th.Force(nil).(Number).V != 99 {
		t.Fatalf("expected extend to overwrite existing field value")
	}
	if len(out.Fields) != 1 {
		t.Fatalf("expected shadowing, not a duplicate field entry, got %d fields", len(out.Fields))
	}
}

func TestNativeFuncCurriesUntilArityReached(t *testing.T) {
	added := false
	add := &NativeFunc{Name: "add", Arity: 2, Fn: func(args []Value) Value {
		added = true
		return Number{V: args[0].(Number).V + args[1].(Number).V}
	}}

	partial := add.Apply(Number{V: 1})
	if added {
		t.Fatalf("expected partial application not to invoke Fn yet")
	}
	result := partial.(*NativeFunc).Apply(Number{V: 2})
	if !added {
		t.Fatalf("expected Fn to run once arity is reached")
	}
	if result.(Number).V != 3 {
		t.Fatalf("expected 3, got %v", result)
	}
}

func TestIsAbortDistinguishesSignalFromOrdinaryValue(t *testing.T) {
	if IsAbort(Number{V: 1}) {
		t.Fatalf("an ordinary value must not be reported as an abort")
	}
}
