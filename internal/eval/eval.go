// Package eval is the weak-head-normal-form reduction engine: the one
// package that ties together internal/term (what to reduce),
// internal/value (what reduction produces), internal/builtins (the
// primitive table), internal/contract (type-to-contract lowering), and
// internal/seal (fresh identities), the same position the teacher's
// internal/interp/evaluator occupies over its own ast/runtime/contracts
// packages.
package eval

import (
	"fmt"

	"github.com/cwbudde/go-indylang/internal/builtins"
	"github.com/cwbudde/go-indylang/internal/contract"
	"github.com/cwbudde/go-indylang/internal/diag"
	"github.com/cwbudde/go-indylang/internal/label"
	"github.com/cwbudde/go-indylang/internal/record"
	"github.com/cwbudde/go-indylang/internal/seal"
	"github.com/cwbudde/go-indylang/internal/term"
	"github.com/cwbudde/go-indylang/internal/value"
)

// Evaluator holds the two pieces of genuinely global mutable state the
// language needs: the seal generator (spec §5: "a single monotonically
// increasing counter ... is the only other global mutable state") and a
// call stack for diagnostics. Everything else — environments, thunks —
// is ordinary immutable-by-convention tree structure.
type Evaluator struct {
	Seals *seal.Generator
	Stack *CallStack
}

// New returns a ready-to-use Evaluator.
func New() *Evaluator {
	return &Evaluator{Seals: seal.NewGenerator(), Stack: NewCallStack()}
}

// Run reduces e to weak-head normal form in an empty top-level
// environment and converts any propagating diagnostic into a Go error —
// the boundary the CLI and tests sit on.
func (ev *Evaluator) Run(e term.Expr) (value.Value, error) {
	v := ev.Eval(e, value.NewEnv(nil))
	if sig, ok := value.AsSignal(v); ok {
		trace := ev.Stack.Snapshot()
		if trace.Depth() > 0 {
			return nil, fmt.Errorf("%s\n%s", sig.String(), trace.String())
		}
		return nil, fmt.Errorf("%s", sig.String())
	}
	return v, nil
}

// Eval reduces e to weak-head normal form in env. It never forces more
// than the shape of e demands: Func always returns immediately without
// touching Body, If only reduces the selected branch, and record/list
// construction boxes field and element expressions as thunks rather
// than reducing them (spec §4.1).
func (ev *Evaluator) Eval(e term.Expr, env *value.Env) value.Value {
	switch n := e.(type) {

	case term.IntLit:
		return value.Number{V: float64(n.Value)}
	case term.FloatLit:
		return value.Number{V: n.Value}
	case term.BoolLit:
		return value.Bool{V: n.Value}
	case term.StrLit:
		return value.Str{V: n.Value}
	case term.LabelLit:
		return value.LabelValue{L: n.Value}

	case term.Var:
		th, ok := env.Lookup(n.Name)
		if !ok {
			return diag.UnknownVar(n.Name)
		}
		return th.Force(ev.Eval)

	case term.Func:
		return value.Lambda{Param: n.Param, Body: n.Body, Env: env}

	case term.App:
		fn := ev.Eval(n.Fn, env)
		if value.IsAbort(fn) {
			return fn
		}
		return ev.Apply(fn, value.NewThunk(n.Arg, env))

	case term.Let:
		return ev.evalLet(n, env)

	case term.If:
		cond := ev.Eval(n.Cond, env)
		if value.IsAbort(cond) {
			return cond
		}
		b, ok := cond.(value.Bool)
		if !ok {
			return diag.Stuck("if: condition is not a bool, got %s", cond.Type())
		}
		if b.V {
			return ev.Eval(n.Then, env)
		}
		return ev.Eval(n.Else, env)

	case term.PrimUnary:
		return ev.evalPrimUnary(n, env)

	case term.PrimBinary:
		left := ev.Eval(n.Left, env)
		if value.IsAbort(left) {
			return left
		}
		right := ev.Eval(n.Right, env)
		if value.IsAbort(right) {
			return right
		}
		return builtins.Binary(n.Op, left, right, ev.Eval, ev.applyValues)

	case term.RecordLit:
		return ev.evalRecordLit(n, env)

	case term.FieldAccess:
		return ev.evalFieldAccess(n.Record, n.Name, env)

	case term.DynFieldAccess:
		keyV := ev.Eval(n.Key, env)
		if value.IsAbort(keyV) {
			return keyV
		}
		key, ok := keyV.(value.Str)
		if !ok {
			return diag.Stuck(".$: key must be a string, got %s", keyV.Type())
		}
		return ev.evalFieldAccess(n.Record, key.V, env)

	case term.FieldRemove:
		recV := ev.Eval(n.Record, env)
		if value.IsAbort(recV) {
			return recV
		}
		rec, ok := recV.(*value.Record)
		if !ok {
			return diag.Stuck("-$: operand is not a record, got %s", recV.Type())
		}
		return rec.WithRemoved(n.Name)

	case term.FieldExtend:
		recV := ev.Eval(n.Record, env)
		if value.IsAbort(recV) {
			return recV
		}
		rec, ok := recV.(*value.Record)
		if !ok {
			return diag.Stuck("$[...]: operand is not a record, got %s", recV.Type())
		}
		return rec.WithExtended(n.Name, value.NewThunk(n.Value, env))

	case term.EnumTag:
		return value.EnumTag{Tag: n.Tag}

	case term.EnumCase:
		return ev.evalEnumCase(n, env)

	case term.Seal:
		return ev.evalSeal(n, env)

	case term.Unseal:
		return ev.evalUnseal(n, env)

	case term.Promise:
		// No runtime check: a promise trusts the annotation (spec §3).
		return ev.Eval(n.Term, env)

	case term.Assume:
		return ev.evalAssume(n, env)

	case term.ClosedRecordContract:
		return ev.evalClosedRecordContract(n, env)

	case term.OpenRecordContract:
		return ev.evalOpenRecordContract(n, env)

	case term.ThunkRef:
		return diag.Stuck("unresolved thunk reference #%d reached the evaluator", n.ID)

	default:
		return diag.Stuck("unhandled expression node %T", e)
	}
}

func (ev *Evaluator) evalLet(n term.Let, env *value.Env) value.Value {
	if !n.Recursive {
		bound := env.Bind(n.Name, value.NewThunk(n.Value, env).Named(n.Name))
		return ev.Eval(n.Body, bound)
	}
	childEnv, cell := env.BindSelf(n.Name)
	cell.Resolve(n.Value, childEnv)
	cell.Named(n.Name)
	return ev.Eval(n.Body, childEnv)
}

func (ev *Evaluator) evalPrimUnary(n term.PrimUnary, env *value.Env) value.Value {
	if n.Op == term.OpFreshSeal {
		return value.TokenValue{Token: ev.Seals.Fresh()}
	}
	operand := ev.Eval(n.Operand, env)
	if value.IsAbort(operand) {
		return operand
	}
	return builtins.Unary(n.Op, n.Arg, operand, ev.Eval)
}

func (ev *Evaluator) evalRecordLit(n term.RecordLit, env *value.Env) value.Value {
	rec := &value.Record{}
	for _, f := range n.Fields {
		name := f.Name
		if f.KeyExpr != nil {
			keyV := ev.Eval(f.KeyExpr, env)
			if value.IsAbort(keyV) {
				return keyV
			}
			key, ok := keyV.(value.Str)
			if !ok {
				return diag.Stuck("record literal: dynamic field key must be a string, got %s", keyV.Type())
			}
			name = key.V
		}
		for _, existing := range rec.Fields {
			if existing.Name == name {
				return diag.Stuck("record literal: duplicate field %q", name)
			}
		}
		rec.Fields = append(rec.Fields, value.RecField{Name: name, Thunk: value.NewThunk(f.ValueExpr, env)})
	}
	if n.Default != nil {
		def := ev.Eval(n.Default, env)
		if value.IsAbort(def) {
			return def
		}
		rec.Default = def
	}
	return rec
}

func (ev *Evaluator) evalFieldAccess(recExpr term.Expr, name string, env *value.Env) value.Value {
	recV := ev.Eval(recExpr, env)
	if value.IsAbort(recV) {
		return recV
	}
	rec, ok := recV.(*value.Record)
	if !ok {
		return diag.Stuck("field access on non-record: %s", recV.Type())
	}
	if th, found := rec.Find(name); found {
		return th.Force(ev.Eval)
	}
	if rec.Default == nil {
		return diag.Stuck("no field %q and no default", name)
	}
	return ev.applyValues(rec.Default, value.Str{V: name})
}

func (ev *Evaluator) evalEnumCase(n term.EnumCase, env *value.Env) value.Value {
	scrutV := ev.Eval(n.Scrutinee, env)
	if value.IsAbort(scrutV) {
		return scrutV
	}
	tag, ok := scrutV.(value.EnumTag)
	if !ok {
		return diag.Stuck("switch on non-enum value: %s", scrutV.Type())
	}
	if body, found := n.Cases[tag.Tag]; found {
		return ev.Eval(body, env)
	}
	if n.Default != nil {
		return ev.Eval(n.Default, env)
	}
	return diag.Stuck("unmatched enum tag %q", tag.Tag)
}

func (ev *Evaluator) evalSeal(n term.Seal, env *value.Env) value.Value {
	payload := ev.Eval(n.Payload, env)
	if value.IsAbort(payload) {
		return payload
	}
	tokV := ev.Eval(n.Token, env)
	if value.IsAbort(tokV) {
		return tokV
	}
	tok, ok := tokV.(value.TokenValue)
	if !ok {
		return diag.Stuck("seal: token operand is not a seal token, got %s", tokV.Type())
	}

	sealed := value.Sealed{Payload: payload, Token: tok.Token}
	if n.Blame != nil {
		blameV := ev.Eval(n.Blame, env)
		if value.IsAbort(blameV) {
			return blameV
		}
		if lv, ok := blameV.(value.LabelValue); ok {
			sealed.Blame = lv.L
		}
	}
	return sealed
}

func (ev *Evaluator) evalUnseal(n term.Unseal, env *value.Env) value.Value {
	payload := ev.Eval(n.Payload, env)
	if value.IsAbort(payload) {
		return payload
	}
	tokV := ev.Eval(n.Token, env)
	if value.IsAbort(tokV) {
		return tokV
	}
	tok, ok := tokV.(value.TokenValue)
	if !ok {
		return diag.Stuck("unseal: token operand is not a seal token, got %s", tokV.Type())
	}
	if sealed, ok := payload.(value.Sealed); ok && sealed.Token.Same(tok.Token) {
		return sealed.Payload
	}
	return ev.Eval(n.Fallback, env)
}

// evalAssume elaborates T into its contract function and applies it to
// Label and Term. The elaborator is invoked fresh per Assume node rather
// than cached, which is fine for a tree-walking interpreter with no
// loop-hoisting pass; a bytecode-compiling successor would elaborate
// once ahead of time.
func (ev *Evaluator) evalAssume(n term.Assume, env *value.Env) value.Value {
	elaborated := contract.New().Elaborate(n.T)
	contractFn := ev.Eval(elaborated, env)
	if value.IsAbort(contractFn) {
		return contractFn
	}
	withLabel := ev.applyValues(contractFn, value.LabelValue{L: n.Label})
	if value.IsAbort(withLabel) {
		return withLabel
	}
	subject := ev.Eval(n.Term, env)
	if value.IsAbort(subject) {
		return subject
	}
	return ev.applyValues(withLabel, subject)
}

// wrapFieldContract builds a lazily-checked field: forcing the returned
// thunk elaborates nothing extra (contractExpr is already an elaborated
// λl. λt. function), applies it to the field's label and the field's
// own forced value, and returns the result (the original value, or a
// blame signal). The field's contract therefore only actually runs when
// something reads the field, not when the containing record contract is
// attached.
func (ev *Evaluator) wrapFieldContract(contractExpr term.Expr, fieldLabel label.Label, orig *value.Thunk, env *value.Env) *value.Thunk {
	return value.NewComputedThunk(func() value.Value {
		fn := ev.Eval(contractExpr, env)
		if value.IsAbort(fn) {
			return fn
		}
		applied := ev.applyValues(fn, value.LabelValue{L: fieldLabel})
		if value.IsAbort(applied) {
			return applied
		}
		origVal := orig.Force(ev.Eval)
		if value.IsAbort(origVal) {
			return origVal
		}
		return ev.applyValues(applied, origVal)
	})
}

func (ev *Evaluator) evalClosedRecordContract(n term.ClosedRecordContract, env *value.Env) value.Value {
	recV := ev.Eval(n.Term, env)
	if value.IsAbort(recV) {
		return recV
	}
	lblV := ev.Eval(n.Label, env)
	if value.IsAbort(lblV) {
		return lblV
	}
	lbl, ok := lblV.(value.LabelValue)
	if !ok {
		return diag.Stuck("closed record contract: label operand is not a label")
	}
	rec, ok := recV.(*value.Record)
	if !ok {
		return diag.Blame(lbl.L, "not a record")
	}

	expected := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		expected[i] = f.Name
	}
	if missing, extra, exact := record.ExactFieldSet(rec, expected); !exact {
		return diag.Blame(lbl.L, fmt.Sprintf("closed record field mismatch: missing=%v extra=%v", missing, extra))
	}

	newFields := make([]value.RecField, len(n.Fields))
	for i, fc := range n.Fields {
		orig, _ := rec.Find(fc.Name)
		fieldLbl := lbl.L.GoField(fc.Name)
		newFields[i] = value.RecField{Name: fc.Name, Thunk: ev.wrapFieldContract(fc.Contract, fieldLbl, orig, env)}
	}
	blameLbl := lbl.L
	closedDefault := &value.NativeFunc{Name: "closed-record-default", Arity: 1, Fn: func(args []value.Value) value.Value {
		return diag.Blame(blameLbl, fmt.Sprintf("field %s not permitted by closed record contract", args[0]))
	}}
	return &value.Record{Fields: newFields, Default: closedDefault}
}

func (ev *Evaluator) evalOpenRecordContract(n term.OpenRecordContract, env *value.Env) value.Value {
	recV := ev.Eval(n.Term, env)
	if value.IsAbort(recV) {
		return recV
	}
	lblV := ev.Eval(n.Label, env)
	if value.IsAbort(lblV) {
		return lblV
	}
	lbl, ok := lblV.(value.LabelValue)
	if !ok {
		return diag.Stuck("open record contract: label operand is not a label")
	}
	rec, ok := recV.(*value.Record)
	if !ok {
		return diag.Blame(lbl.L, "not a record")
	}

	named := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		named[i] = f.Name
	}

	var newFields []value.RecField
	for _, fc := range n.Fields {
		orig, found := rec.Find(fc.Name)
		if !found {
			return diag.Blame(lbl.L, fmt.Sprintf("missing required field %q", fc.Name))
		}
		fieldLbl := lbl.L.GoField(fc.Name)
		newFields = append(newFields, value.RecField{Name: fc.Name, Thunk: ev.wrapFieldContract(fc.Contract, fieldLbl, orig, env)})
	}
	for _, name := range record.NamesNotIn(rec, named) {
		orig, _ := rec.Find(name)
		fieldLbl := lbl.L.GoField(name)
		newFields = append(newFields, value.RecField{Name: name, Thunk: ev.wrapFieldContract(n.Default, fieldLbl, orig, env)})
	}
	return &value.Record{Fields: newFields, Default: rec.Default}
}

// Apply applies fn to an unforced argument thunk, preserving laziness:
// a Lambda's body is evaluated in an environment where its parameter is
// bound to argThunk itself, so the argument is only forced if the body
// actually uses it. NativeFunc, by contrast, always needs a concrete
// value, since the only native function currently installed (the closed
// record contract's default) inspects its argument immediately.
//
// A Lambda call's frame is popped when the call returns a value; a call
// that aborts leaves its frame on ev.Stack, so after an aborted run the
// stack holds the applications that led to the abort.
func (ev *Evaluator) Apply(fn value.Value, argThunk *value.Thunk) value.Value {
	switch f := fn.(type) {
	case value.Lambda:
		ev.Stack.Push(f.Param)
		childEnv := f.Env.Bind(f.Param, argThunk)
		result := ev.Eval(f.Body, childEnv)
		if !value.IsAbort(result) {
			ev.Stack.Pop()
		}
		return result
	case *value.NativeFunc:
		argVal := argThunk.Force(ev.Eval)
		if value.IsAbort(argVal) {
			return argVal
		}
		return f.Apply(argVal)
	default:
		return diag.Stuck("application of a non-function value: %s", fn.Type())
	}
}

// applyValues adapts Apply to value.Applier's already-forced-argument
// signature, used by builtins.Map and the contract field-wrapping helper.
func (ev *Evaluator) applyValues(fn, arg value.Value) value.Value {
	return ev.Apply(fn, value.Done(arg))
}
