// Package term defines the expression and type algebras of the core
// language (spec §3). Both are closed sum types dispatched by total case
// analysis via a type switch in internal/eval, mirroring the teacher's
// internal/ast package's convention of one Go type per AST alternative
// implementing a small marker interface, rather than an open class
// hierarchy.
package term

import "github.com/cwbudde/go-indylang/internal/label"

// Expr is the marker interface implemented by every expression node.
type Expr interface {
	exprNode()
	// String renders the expression for debugging/diagnostics.
	String() string
}

// ---- Literals ----

type IntLit struct{ Value int64 }

type FloatLit struct{ Value float64 }

type BoolLit struct{ Value bool }

type StrLit struct{ Value string }

// LabelLit embeds a label value directly in the term tree: labels are
// first-class, living in the same universe as any other literal (spec
// design note "Labels as first-class values").
type LabelLit struct{ Value label.Label }

// ---- Core calculus ----

// Var is a variable occurrence, resolved against the evaluation
// environment at reduction time.
type Var struct{ Name string }

// Func is a single-parameter lambda. Multi-argument functions are curried
// at the front-end/loader level.
type Func struct {
	Param string
	Body  Expr
}

// App is function application.
type App struct {
	Fn  Expr
	Arg Expr
}

// Let is a by-need, possibly self-referential binding (spec §4.1). When
// Recursive is true the bound thunk receives a reference to itself so
// Value may refer to Name without the expression tree containing a cycle.
type Let struct {
	Name      string
	Value     Expr
	Body      Expr
	Recursive bool
}

// If is the conditional; branches are not reduced unless selected.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// ---- Primitive operations ----

type UnaryOp string

const (
	OpIsZero    UnaryOp = "isZero"
	OpIsNum     UnaryOp = "isNum"
	OpIsBool    UnaryOp = "isBool"
	OpIsStr     UnaryOp = "isStr"
	OpIsFun     UnaryOp = "isFun"
	OpIsList    UnaryOp = "isList"
	OpIsRecord  UnaryOp = "isRecord"
	OpBlame     UnaryOp = "blame"
	OpChngPol   UnaryOp = "chngPol"
	OpPolarity  UnaryOp = "polarity"
	OpGoDom     UnaryOp = "goDom"
	OpGoCodom   UnaryOp = "goCodom"
	OpNot       UnaryOp = "!"
	OpHead      UnaryOp = "head"
	OpTail      UnaryOp = "tail"
	OpLength    UnaryOp = "length"
	OpFieldsOf  UnaryOp = "fieldsOf"
	OpFreshSeal UnaryOp = "freshSeal"
)

// PrimUnary applies a primitive unary operation, forcing Operand then
// dispatching by Opcode. Arg is an optional string parameter carried
// with the node (the loader decodes it and String prints it); none of
// the opcodes above reads it.
type PrimUnary struct {
	Op      UnaryOp
	Operand Expr
	Arg     string // optional string parameter; unused by the current opcodes
}

type BinOp string

const (
	OpAdd          BinOp = "+"
	OpSub          BinOp = "-"
	OpMul          BinOp = "*"
	OpDiv          BinOp = "/"
	OpMod          BinOp = "%"
	OpConcatStr    BinOp = "++"
	OpConcatList   BinOp = "@"
	OpEq           BinOp = "=="
	OpLt           BinOp = "<"
	OpLe           BinOp = "<="
	OpGt           BinOp = ">"
	OpGe        BinOp = ">="
	OpGoField   BinOp = "goField"
	OpHasField  BinOp = "hasField"
	OpMap       BinOp = "map"
	OpElemAt    BinOp = "elemAt"
	OpMerge     BinOp = "merge"
	OpSeq       BinOp = "seq"
	OpDeepSeq   BinOp = "deepSeq"
)

// unwrap(v, σ, fallback) is ternary (spec §4.6) and is represented by the
// dedicated Unseal node below rather than forced into PrimBinary/PrimUnary.

// PrimBinary applies a primitive binary operation, forcing both operands
// (strict in arguments) then dispatching by Opcode.
type PrimBinary struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

// ---- Records ----

// RecordField is one entry of a record literal: either a static
// (name known at construction) or dynamic (name computed from KeyExpr)
// field.
type RecordField struct {
	Name     string // used when KeyExpr == nil
	KeyExpr  Expr   // non-nil for dynamic fields ($[e] = v)
	ValueExpr Expr
}

// RecordLit builds a record value. Default, if non-nil, is the default
// function (string -> expr) invoked on missing-key access; a nil Default
// means "always blame" is not automatically installed — callers that need
// I3 (closed contracts always blame) must supply one explicitly.
type RecordLit struct {
	Fields  []RecordField
	Default Expr
}

// FieldAccess is static field access by literal name.
type FieldAccess struct {
	Record Expr
	Name   string
}

// DynFieldAccess is dynamic field access (`.$`): the key is computed, then
// access proceeds like FieldAccess.
type DynFieldAccess struct {
	Record Expr
	Key    Expr
}

// FieldRemove returns a new record without the named entry (`-$`).
type FieldRemove struct {
	Record Expr
	Name   string
}

// FieldExtend returns a new record with Name bound to Value, shadowing any
// existing entry (`$[f = v]`).
type FieldExtend struct {
	Record Expr
	Name   string
	Value  Expr
}

// ---- Enumerations ----

type EnumTag struct {
	Tag string
}

type EnumCase struct {
	Scrutinee Expr
	Cases     map[string]Expr
	Default   Expr // nil if the case analysis is exhaustive
}

// ---- Seals ----

// Seal wraps Payload under the identity produced by forcing Token. Blame
// is the label in scope at the point of sealing, evaluated alongside
// Payload and Token; it is what a primitive blames if it later inspects
// the sealed payload directly instead of passing it through opaquely
// (spec §4.6's parametricity requirement). Blame is nil when a Seal is
// constructed outside a contract's elaborated body, where no such label
// exists.
type Seal struct {
	Payload Expr
	Token   Expr
	Blame   Expr
}

// Unseal extracts Payload's inner value if its token matches Token,
// otherwise evaluates Fallback.
type Unseal struct {
	Payload  Expr
	Token    Expr
	Fallback Expr
}

// ---- Contracts ----

// Promise attaches a type annotation with no runtime check (spec §3).
type Promise struct {
	T     Type
	Label label.Label
	Term  Expr
}

// Assume attaches a type annotation that is lowered into a runtime check
// by the contract elaborator (internal/contract) before reduction.
type Assume struct {
	T     Type
	Label label.Label
	Term  Expr
}

// ---- Record contracts ----
//
// Closed and open record contracts (spec §4.5's record rows) get
// dedicated nodes rather than being encoded through isRecord/fieldsOf/
// hasField: the exact-field-set check, the always-blame default for
// unlisted fields, and the open contract's default-contract-for-the-rest
// all need to inspect a record's field list directly at reduction time,
// the same way Promise/Assume get dedicated nodes instead of being
// encoded as applications of a generic "check" primitive.

// RecordFieldContract pairs a field name with its own already-elaborated
// contract function (shape λl. λt.).
type RecordFieldContract struct {
	Name     string
	Contract Expr
}

// ClosedRecordContract enforces that Term is a record with exactly the
// named fields, each satisfying its contract; any other shape, or any
// extra field, blames Label (invariant I3).
type ClosedRecordContract struct {
	Fields []RecordFieldContract
	Label  Expr
	Term   Expr
}

// OpenRecordContract enforces the named fields' contracts and applies
// Default to every other field present on Term. Every named field must
// be present (a missing one blames Label); any other field is allowed.
type OpenRecordContract struct {
	Fields  []RecordFieldContract
	Default Expr
	Label   Expr
	Term    Expr
}

// ---- Thunk reference ----

// ThunkRef is a direct reference to an already-boxed thunk cell. The
// evaluator binds arguments and let-bound values through value.Env
// instead, and the loader never produces one, so reaching a ThunkRef
// during reduction is reported as a stuck term.
type ThunkRef struct {
	ID uint64 // informational; identity is the pointer held by the evaluator
}

func (IntLit) exprNode()         {}
func (FloatLit) exprNode()       {}
func (BoolLit) exprNode()        {}
func (StrLit) exprNode()         {}
func (LabelLit) exprNode()       {}
func (Var) exprNode()            {}
func (Func) exprNode()           {}
func (App) exprNode()            {}
func (Let) exprNode()            {}
func (If) exprNode()             {}
func (PrimUnary) exprNode()      {}
func (PrimBinary) exprNode()     {}
func (RecordLit) exprNode()      {}
func (FieldAccess) exprNode()    {}
func (DynFieldAccess) exprNode() {}
func (FieldRemove) exprNode()    {}
func (FieldExtend) exprNode()    {}
func (EnumTag) exprNode()        {}
func (EnumCase) exprNode()       {}
func (Seal) exprNode()           {}
func (Unseal) exprNode()         {}
func (Promise) exprNode()        {}
func (Assume) exprNode()         {}
func (ClosedRecordContract) exprNode() {}
func (OpenRecordContract) exprNode()   {}
func (ThunkRef) exprNode()       {}
