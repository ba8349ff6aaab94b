package value

import (
	"github.com/cwbudde/go-indylang/internal/diag"
	"github.com/cwbudde/go-indylang/internal/term"
)

func blackHoleFor(name string) Value {
	if name == "" {
		name = "<anonymous>"
	}
	return diag.BlackHole(name)
}

// Reducer performs weak-head-normal-form reduction; it is supplied by
// package eval at call sites so that value has no import-time dependency
// on eval, the same inversion the teacher uses for
// internal/interp/runtime.EvalCallback.
type Reducer func(expr term.Expr, env *Env) Value

// Applier applies fn to arg one step, used by primitives (map) that need
// to invoke a user function over list elements without value importing
// eval's Apply directly.
type Applier func(fn Value, arg Value) Value

type thunkState int

const (
	unevaluated thunkState = iota
	forcing
	evaluated
)

// Thunk is the unit of call-by-need sharing (spec §4.1): a cell that
// starts holding an unevaluated expression plus the environment it
// closes over, and is mutated to hold its value on first forcing —
// exactly once, regardless of how many times Force is called afterward.
type Thunk struct {
	state thunkState
	expr  term.Expr
	env   *Env
	fn    func() Value // alternative to expr/env, see NewComputedThunk
	val   Value
	name  string // only used to label a black-hole diagnostic
}

// NewThunk wraps an unevaluated expression and its closing environment.
func NewThunk(expr term.Expr, env *Env) *Thunk {
	return &Thunk{expr: expr, env: env}
}

// NewComputedThunk wraps a Go closure instead of a term/environment pair
// — used by primitives like map that build new lazy cells (one per
// result element) without a term.Expr to attach them to. It shares the
// same force-once-then-memoize discipline as an ordinary thunk.
func NewComputedThunk(fn func() Value) *Thunk {
	return &Thunk{fn: fn}
}

// Resolve finishes a cell created by Env.BindSelf, giving it the
// expression and environment to reduce once forced; it must only be
// called while the thunk is still unevaluated.
func (t *Thunk) Resolve(expr term.Expr, env *Env) {
	t.expr = expr
	t.env = env
}

// Named attaches a display name (used for black-hole diagnostics and
// recursive let-bindings); it mutates and returns the same thunk.
func (t *Thunk) Named(name string) *Thunk {
	t.name = name
	return t
}

// Done wraps an already-reduced value, skipping the unevaluated state
// entirely (used for arguments that are already in WHNF). The
// self-reference cell of a recursive let is not built this way: Env.BindSelf
// creates it unevaluated and Resolve fills it in.
func Done(v Value) *Thunk {
	return &Thunk{state: evaluated, val: v}
}

// Force reduces the thunk to weak-head normal form on first call and
// returns the cached value on every subsequent call (the sharing
// invariant spec §8 requires tests to observe directly: a shared thunk
// forced twice must only run its side-effecting observer once).
//
// Re-entering a thunk that is already being forced (a genuine evaluation
// cycle, e.g. `let x = x in x`) returns a black-hole diagnostic instead
// of looping or corrupting the cell; spec §4.1 only requires that the
// cell not be corrupted, detecting the cycle is a deliberate
// enhancement over the minimum.
func (t *Thunk) Force(reduce Reducer) Value {
	switch t.state {
	case evaluated:
		return t.val
	case forcing:
		return blackHoleFor(t.name)
	default:
		t.state = forcing
		var v Value
		if t.fn != nil {
			v = t.fn()
		} else {
			v = reduce(t.expr, t.env)
		}
		t.val = v
		t.state = evaluated
		t.expr = nil
		t.env = nil
		t.fn = nil
		return v
	}
}

// Forced reports whether the thunk has already been reduced, without
// forcing it — used by the pretty-printer so printing a value never
// triggers evaluation of a sibling unevaluated thunk.
func (t *Thunk) Forced() (Value, bool) {
	if t.state == evaluated {
		return t.val, true
	}
	return nil, false
}
