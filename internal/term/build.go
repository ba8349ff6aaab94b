package term

import "github.com/cwbudde/go-indylang/internal/label"

// The functions below are small smart constructors used by tests and the
// loader to build terms without repeating struct-literal noise — the same
// convenience the teacher's pkg/ast provides over its node types.

func Int(v int64) Expr    { return IntLit{Value: v} }
func Float(v float64) Expr { return FloatLit{Value: v} }
func Bool(v bool) Expr    { return BoolLit{Value: v} }
func Str(v string) Expr   { return StrLit{Value: v} }
func V(name string) Expr  { return Var{Name: name} }

func Lam(param string, body Expr) Expr { return Func{Param: param, Body: body} }

func Ap(fn Expr, args ...Expr) Expr {
	result := fn
	for _, a := range args {
		result = App{Fn: result, Arg: a}
	}
	return result
}

func LetIn(name string, value, body Expr) Expr {
	return Let{Name: name, Value: value, Body: body}
}

func LetRecIn(name string, value, body Expr) Expr {
	return Let{Name: name, Value: value, Body: body, Recursive: true}
}

func IfThenElse(cond, then, els Expr) Expr { return If{Cond: cond, Then: then, Else: els} }

func Un(op UnaryOp, operand Expr) Expr { return PrimUnary{Op: op, Operand: operand} }

func UnArg(op UnaryOp, arg string, operand Expr) Expr {
	return PrimUnary{Op: op, Operand: operand, Arg: arg}
}

func Bin(op BinOp, l, r Expr) Expr { return PrimBinary{Op: op, Left: l, Right: r} }

// AssumeT attaches a runtime-checked type annotation.
func AssumeT(t Type, l label.Label, e Expr) Expr { return Assume{T: t, Label: l, Term: e} }

// PromiseT attaches a type annotation with no runtime check.
func PromiseT(t Type, l label.Label, e Expr) Expr { return Promise{T: t, Label: l, Term: e} }

// Field is a convenience constructor for a statically-named record field.
func Field(name string, value Expr) RecordField { return RecordField{Name: name, ValueExpr: value} }

// Rec builds a record literal with no default clause.
func Rec(fields ...RecordField) Expr { return RecordLit{Fields: fields} }

// RecWithDefault builds a record literal with a default-value function.
func RecWithDefault(def Expr, fields ...RecordField) Expr {
	return RecordLit{Fields: fields, Default: def}
}

// Get is static field access by literal name.
func Get(rec Expr, name string) Expr { return FieldAccess{Record: rec, Name: name} }
