package term

import (
	"fmt"
	"strings"
)

// String implementations are terse, debugging-oriented renderings; they
// are not a serialization format (the loader has its own YAML shape).

func (e IntLit) String() string   { return fmt.Sprintf("%d", e.Value) }
func (e FloatLit) String() string { return fmt.Sprintf("%g", e.Value) }
func (e BoolLit) String() string  { return fmt.Sprintf("%t", e.Value) }
func (e StrLit) String() string   { return fmt.Sprintf("%q", e.Value) }
func (e LabelLit) String() string { return e.Value.String() }
func (e Var) String() string      { return e.Name }

func (e Func) String() string {
	return fmt.Sprintf("(fun %s -> %s)", e.Param, e.Body.String())
}

func (e App) String() string {
	return fmt.Sprintf("(%s %s)", e.Fn.String(), e.Arg.String())
}

func (e Let) String() string {
	if e.Recursive {
		return fmt.Sprintf("(let rec %s = %s in %s)", e.Name, e.Value.String(), e.Body.String())
	}
	return fmt.Sprintf("(let %s = %s in %s)", e.Name, e.Value.String(), e.Body.String())
}

func (e If) String() string {
	return fmt.Sprintf("(if %s then %s else %s)", e.Cond.String(), e.Then.String(), e.Else.String())
}

func (e PrimUnary) String() string {
	if e.Arg != "" {
		return fmt.Sprintf("(%s[%s] %s)", e.Op, e.Arg, e.Operand.String())
	}
	return fmt.Sprintf("(%s %s)", e.Op, e.Operand.String())
}

func (e PrimBinary) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op, e.Right.String())
}

func (e RecordLit) String() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		if f.KeyExpr != nil {
			parts[i] = fmt.Sprintf("$[%s]=%s", f.KeyExpr.String(), f.ValueExpr.String())
		} else {
			parts[i] = fmt.Sprintf("%s=%s", f.Name, f.ValueExpr.String())
		}
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, "; "))
}

func (e FieldAccess) String() string { return fmt.Sprintf("%s.%s", e.Record.String(), e.Name) }
func (e DynFieldAccess) String() string {
	return fmt.Sprintf("%s.$(%s)", e.Record.String(), e.Key.String())
}
func (e FieldRemove) String() string { return fmt.Sprintf("%s-$%s", e.Record.String(), e.Name) }
func (e FieldExtend) String() string {
	return fmt.Sprintf("%s$[%s=%s]", e.Record.String(), e.Name, e.Value.String())
}

func (e EnumTag) String() string { return "`" + e.Tag }

func (e EnumCase) String() string {
	return fmt.Sprintf("(switch %s on %d cases)", e.Scrutinee.String(), len(e.Cases))
}

func (e Seal) String() string   { return fmt.Sprintf("(seal %s %s)", e.Payload.String(), e.Token.String()) }
func (e Unseal) String() string {
	return fmt.Sprintf("(unseal %s %s %s)", e.Payload.String(), e.Token.String(), e.Fallback.String())
}

func (e Promise) String() string {
	return fmt.Sprintf("(promise %s : %s)", e.Term.String(), e.T.String())
}
func (e Assume) String() string {
	return fmt.Sprintf("(assume %s : %s)", e.Term.String(), e.T.String())
}

func (e ClosedRecordContract) String() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Name
	}
	return fmt.Sprintf("(closedRec{%s} %s %s)", strings.Join(parts, ", "), e.Label.String(), e.Term.String())
}

func (e OpenRecordContract) String() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Name
	}
	return fmt.Sprintf("(openRec{%s; _} %s %s)", strings.Join(parts, ", "), e.Label.String(), e.Term.String())
}

func (e ThunkRef) String() string { return fmt.Sprintf("<thunk#%d>", e.ID) }

func (t TDyn) String() string  { return "Dyn" }
func (t TNum) String() string  { return "Num" }
func (t TBool) String() string { return "Bool" }
func (t TStr) String() string  { return "Str" }
func (t TList) String() string { return "List" }

func (t TArrow) String() string { return fmt.Sprintf("(%s -> %s)", t.Dom.String(), t.Cod.String()) }
func (t TForall) String() string {
	return fmt.Sprintf("(forall %s. %s)", t.Binder, t.Body.String())
}

func (t TRecClosed) String() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Name, f.T.String())
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

func (t TRecOpen) String() string {
	parts := []string{fmt.Sprintf("_: %s", t.Default.String())}
	for _, f := range t.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Name, f.T.String()))
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

func (t TEnumRow) String() string { return fmt.Sprintf("<%s>", strings.Join(t.Tags, " | ")) }
func (t TRowVar) String() string  { return t.Name }
func (t TFlat) String() string    { return fmt.Sprintf("#%s", t.Pred.String()) }
