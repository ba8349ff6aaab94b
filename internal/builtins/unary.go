// Package builtins implements the primitive operation table of spec
// §4.7 over already-forced values. The evaluator forces each operand to
// weak-head normal form before dispatching here (these primitives are
// strict in their immediate arguments, unlike Func/If/Let); the classic
// exception is map, which stays lazy by constructing new computed
// thunks rather than forcing the whole list (internal/builtins/binary.go).
//
// A handful of ops need more than a plain value-in, value-out signature
// — head/elemAt/deepSeq need to force nested thunks, map needs to apply
// a function — so those take a value.Reducer and/or value.Applier
// supplied by the evaluator, the same neutral-callback technique
// internal/value uses to stay independent of eval.
package builtins

import (
	"github.com/cwbudde/go-indylang/internal/diag"
	"github.com/cwbudde/go-indylang/internal/term"
	"github.com/cwbudde/go-indylang/internal/value"
)

// Unary dispatches a PrimUnary opcode over an already-forced operand.
func Unary(op term.UnaryOp, arg string, v value.Value, reduce value.Reducer) value.Value {
	switch op {
	case term.OpIsNum, term.OpIsBool, term.OpIsStr, term.OpIsFun, term.OpIsList, term.OpIsRecord:
		// The is* predicates stay truthful about a sealed value's shape
		// (spec §4.6: "isNum returns false on it") rather than blaming;
		// asking is not the same as assuming.
	default:
		if sig, ok := sealedMisuse(v); ok {
			return sig
		}
	}

	switch op {
	case term.OpIsZero:
		n, ok := v.(value.Number)
		if !ok {
			return diag.Stuck("isZero: %s is not a number", v.Type())
		}
		return value.Bool{V: n.V == 0}

	case term.OpIsNum:
		_, ok := v.(value.Number)
		return value.Bool{V: ok}
	case term.OpIsBool:
		_, ok := v.(value.Bool)
		return value.Bool{V: ok}
	case term.OpIsStr:
		_, ok := v.(value.Str)
		return value.Bool{V: ok}
	case term.OpIsFun:
		return value.Bool{V: isFun(v)}
	case term.OpIsList:
		_, ok := v.(value.List)
		return value.Bool{V: ok}
	case term.OpIsRecord:
		_, ok := v.(*value.Record)
		return value.Bool{V: ok}

	case term.OpBlame:
		l, ok := v.(value.LabelValue)
		if !ok {
			return diag.Stuck("blame: %s is not a label", v.Type())
		}
		return diag.Blame(l.L, "blamed")

	case term.OpChngPol:
		l, ok := v.(value.LabelValue)
		if !ok {
			return diag.Stuck("chngPol: %s is not a label", v.Type())
		}
		return value.LabelValue{L: l.L.ChngPol()}

	case term.OpPolarity:
		l, ok := v.(value.LabelValue)
		if !ok {
			return diag.Stuck("polarity: %s is not a label", v.Type())
		}
		return value.Bool{V: l.L.Positive}

	case term.OpGoDom:
		l, ok := v.(value.LabelValue)
		if !ok {
			return diag.Stuck("goDom: %s is not a label", v.Type())
		}
		return value.LabelValue{L: l.L.GoDom()}

	case term.OpGoCodom:
		l, ok := v.(value.LabelValue)
		if !ok {
			return diag.Stuck("goCodom: %s is not a label", v.Type())
		}
		return value.LabelValue{L: l.L.GoCodom()}

	case term.OpNot:
		b, ok := v.(value.Bool)
		if !ok {
			return diag.Stuck("!: %s is not a bool", v.Type())
		}
		return value.Bool{V: !b.V}

	case term.OpHead:
		list, ok := v.(value.List)
		if !ok {
			return diag.Stuck("head: %s is not a list", v.Type())
		}
		if len(list.Items) == 0 {
			return diag.Stuck("head: empty list")
		}
		return list.Items[0].Force(reduce)

	case term.OpTail:
		list, ok := v.(value.List)
		if !ok {
			return diag.Stuck("tail: %s is not a list", v.Type())
		}
		if len(list.Items) == 0 {
			return diag.Stuck("tail: empty list")
		}
		return value.List{Items: list.Items[1:]}

	case term.OpLength:
		list, ok := v.(value.List)
		if !ok {
			return diag.Stuck("length: %s is not a list", v.Type())
		}
		return value.Number{V: float64(len(list.Items))}

	case term.OpFieldsOf:
		rec, ok := v.(*value.Record)
		if !ok {
			return diag.Stuck("fieldsOf: %s is not a record", v.Type())
		}
		items := make([]*value.Thunk, len(rec.Fields))
		for i, name := range rec.Names() {
			items[i] = value.Done(value.Str{V: name})
		}
		return value.List{Items: items}

	case term.OpFreshSeal:
		// freshSeal is stateful (it needs the evaluator's seal.Generator)
		// and is dispatched directly by package eval rather than here;
		// reaching this arm means eval's switch didn't intercept it.
		return diag.Stuck("freshSeal must be handled by the evaluator")

	default:
		return diag.Stuck("unknown unary primitive %q", op)
	}
}

// sealedMisuse reports whether v is an opaque value sealed by a forall
// contract (spec §4.6) reaching a primitive that assumes a concrete
// shape. That is exactly the parametricity violation spec §8 requires to
// blame the label that introduced the seal, rather than surface as an
// ordinary stuck term — the violation is the inspection itself.
func sealedMisuse(v value.Value) (value.Value, bool) {
	s, ok := v.(value.Sealed)
	if !ok {
		return nil, false
	}
	return diag.Blame(s.Blame, "a parametric value was inspected directly instead of passed through opaquely"), true
}

func isFun(v value.Value) bool {
	switch v.(type) {
	case value.Lambda, *value.NativeFunc:
		return true
	default:
		return false
	}
}
