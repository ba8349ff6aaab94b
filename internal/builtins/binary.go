package builtins

import (
	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/go-indylang/internal/diag"
	"github.com/cwbudde/go-indylang/internal/term"
	"github.com/cwbudde/go-indylang/internal/value"
)

// Binary dispatches a PrimBinary opcode over two already-forced
// operands, except Map, whose laziness this package preserves by
// building new computed thunks instead of forcing the list through.
func Binary(op term.BinOp, l, r value.Value, reduce value.Reducer, apply value.Applier) value.Value {
	switch op {
	case term.OpEq, term.OpSeq, term.OpDeepSeq:
		// == stays structural (a sealed value is never equal to anything,
		// not even itself, per equalValues' default case), and
		// seq/deepSeq's whole job is sequencing/forcing regardless of
		// shape; neither one inspects the payload's representation.
	default:
		if sig, ok := sealedMisuse(l); ok {
			return sig
		}
		if sig, ok := sealedMisuse(r); ok {
			return sig
		}
	}

	switch op {
	case term.OpAdd, term.OpSub, term.OpMul, term.OpDiv, term.OpMod:
		return arith(op, l, r)

	case term.OpConcatStr:
		ls, ok1 := l.(value.Str)
		rs, ok2 := r.(value.Str)
		if !ok1 || !ok2 {
			return diag.Stuck("++: operands must be strings, got %s and %s", l.Type(), r.Type())
		}
		// NFC-normalize both sides before concatenating so two
		// differently-composed but canonically-equivalent strings (e.g.
		// "é" as one codepoint vs. "e"+combining-acute) concatenate into
		// the same bytes either way.
		return value.Str{V: norm.NFC.String(ls.V) + norm.NFC.String(rs.V)}

	case term.OpConcatList:
		ll, ok1 := l.(value.List)
		rl, ok2 := r.(value.List)
		if !ok1 || !ok2 {
			return diag.Stuck("@: operands must be lists, got %s and %s", l.Type(), r.Type())
		}
		items := make([]*value.Thunk, 0, len(ll.Items)+len(rl.Items))
		items = append(items, ll.Items...)
		items = append(items, rl.Items...)
		return value.List{Items: items}

	case term.OpEq:
		return value.Bool{V: equalValues(l, r)}

	case term.OpLt, term.OpLe, term.OpGt, term.OpGe:
		return compare(op, l, r)

	case term.OpGoField:
		lv, ok1 := l.(value.LabelValue)
		name, ok2 := r.(value.Str)
		if !ok1 || !ok2 {
			return diag.Stuck("goField: expected a label and a field name")
		}
		return value.LabelValue{L: lv.L.GoField(name.V)}

	case term.OpHasField:
		rec, ok1 := l.(*value.Record)
		name, ok2 := r.(value.Str)
		if !ok1 || !ok2 {
			return diag.Stuck("hasField: expected a record and a field name")
		}
		_, has := rec.Find(name.V)
		return value.Bool{V: has}

	case term.OpElemAt:
		list, ok1 := l.(value.List)
		idx, ok2 := r.(value.Number)
		if !ok1 || !ok2 {
			return diag.Stuck("elemAt: expected a list and a number")
		}
		i := int(idx.V)
		if i < 0 || i >= len(list.Items) {
			return diag.Stuck("elemAt: index %d out of range (length %d)", i, len(list.Items))
		}
		return list.Items[i].Force(reduce)

	case term.OpMerge:
		lrec, ok1 := l.(*value.Record)
		rrec, ok2 := r.(*value.Record)
		if !ok1 || !ok2 {
			return diag.Stuck("merge: both operands must be records")
		}
		return mergeRecords(lrec, rrec)

	case term.OpMap:
		list, ok := r.(value.List)
		if !ok {
			return diag.Stuck("map: second operand must be a list, got %s", r.Type())
		}
		return Map(l, list, reduce, apply)

	case term.OpSeq:
		// Left has already been forced by the evaluator's strict
		// dispatch; seq's job is only to sequence that forcing before
		// returning the right-hand value.
		return r

	case term.OpDeepSeq:
		if ab := deepForce(l, reduce); value.IsAbort(ab) {
			return ab
		}
		return r

	default:
		return diag.Stuck("unknown binary primitive %q", op)
	}
}

// Map builds a new list whose elements apply f to the corresponding
// element of list lazily: forcing list itself (already done by the
// caller) does not force any element, and applying f to an element only
// happens when that result slot is forced.
func Map(f value.Value, list value.List, reduce value.Reducer, apply value.Applier) value.Value {
	items := make([]*value.Thunk, len(list.Items))
	for i, elem := range list.Items {
		elem := elem
		items[i] = value.NewComputedThunk(func() value.Value {
			ev := elem.Force(reduce)
			if value.IsAbort(ev) {
				return ev
			}
			return apply(f, ev)
		})
	}
	return value.List{Items: items}
}

func deepForce(v value.Value, reduce value.Reducer) value.Value {
	switch tv := v.(type) {
	case value.List:
		for _, item := range tv.Items {
			fv := item.Force(reduce)
			if value.IsAbort(fv) {
				return fv
			}
			if ab := deepForce(fv, reduce); value.IsAbort(ab) {
				return ab
			}
		}
		return tv
	case *value.Record:
		for _, f := range tv.Fields {
			fv := f.Thunk.Force(reduce)
			if value.IsAbort(fv) {
				return fv
			}
			if ab := deepForce(fv, reduce); value.IsAbort(ab) {
				return ab
			}
		}
		return tv
	default:
		return v
	}
}

func mergeRecords(l, r *value.Record) value.Value {
	out := &value.Record{Default: r.Default}
	if out.Default == nil {
		out.Default = l.Default
	}
	out.Fields = append(out.Fields, l.Fields...)
	for _, f := range r.Fields {
		out = out.WithExtended(f.Name, f.Thunk)
	}
	return out
}

func arith(op term.BinOp, l, r value.Value) value.Value {
	ln, ok1 := l.(value.Number)
	rn, ok2 := r.(value.Number)
	if !ok1 || !ok2 {
		return diag.Stuck("%s: operands must be numbers, got %s and %s", op, l.Type(), r.Type())
	}
	switch op {
	case term.OpAdd:
		return value.Number{V: ln.V + rn.V}
	case term.OpSub:
		return value.Number{V: ln.V - rn.V}
	case term.OpMul:
		return value.Number{V: ln.V * rn.V}
	case term.OpDiv:
		if rn.V == 0 {
			return diag.Stuck("/: division by zero")
		}
		return value.Number{V: ln.V / rn.V}
	case term.OpMod:
		if rn.V == 0 {
			return diag.Stuck("%%: division by zero")
		}
		return value.Number{V: float64(int64(ln.V) % int64(rn.V))}
	default:
		return diag.Stuck("unreachable arithmetic op %q", op)
	}
}

func compare(op term.BinOp, l, r value.Value) value.Value {
	ln, ok1 := l.(value.Number)
	rn, ok2 := r.(value.Number)
	if !ok1 || !ok2 {
		return diag.Stuck("%s: operands must be numbers, got %s and %s", op, l.Type(), r.Type())
	}
	switch op {
	case term.OpLt:
		return value.Bool{V: ln.V < rn.V}
	case term.OpLe:
		return value.Bool{V: ln.V <= rn.V}
	case term.OpGt:
		return value.Bool{V: ln.V > rn.V}
	case term.OpGe:
		return value.Bool{V: ln.V >= rn.V}
	default:
		return diag.Stuck("unreachable comparison op %q", op)
	}
}

// equalValues implements `==` structurally over the flat value shapes;
// functions, records, lists and sealed values never compare equal to
// anything, not even to themselves, matching the teacher's ValuesEqual
// convention of refusing to define equality over callables.
func equalValues(l, r value.Value) bool {
	switch lv := l.(type) {
	case value.Number:
		rv, ok := r.(value.Number)
		return ok && lv.V == rv.V
	case value.Bool:
		rv, ok := r.(value.Bool)
		return ok && lv.V == rv.V
	case value.Str:
		rv, ok := r.(value.Str)
		// Compare under NFC so Unicode-equivalent source text (e.g. a
		// precomposed accented letter vs. the same letter followed by a
		// combining mark) is equal regardless of which form the loader
		// happened to read.
		return ok && norm.NFC.String(lv.V) == norm.NFC.String(rv.V)
	case value.EnumTag:
		rv, ok := r.(value.EnumTag)
		return ok && lv.Tag == rv.Tag
	case value.LabelValue:
		rv, ok := r.(value.LabelValue)
		return ok && lv.L == rv.L
	default:
		return false
	}
}
