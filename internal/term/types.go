package term

// Type is the marker interface implemented by every type-annotation node
// (spec §3). Types are lowered into contract-checking expressions by
// internal/contract; they never appear as values at runtime.
type Type interface {
	typeNode()
	String() string
}

type TDyn struct{}

type TNum struct{}

type TBool struct{}

type TStr struct{}

type TList struct{}

// TArrow is a function type: Dom -> Cod.
type TArrow struct {
	Dom Type
	Cod Type
}

// TForall is a universal quantifier: Binder ranges over Body, enforced
// dynamically via seals (spec §4.6).
type TForall struct {
	Binder string
	Body   Type
}

// RecFieldType is one (name, type) pair of a record type.
type RecFieldType struct {
	Name string
	T    Type
}

// TRecClosed requires the subject to have exactly these fields.
type TRecClosed struct {
	Fields []RecFieldType
}

// TRecOpen requires the named fields to satisfy their contracts and
// allows any other field, checked against Default.
type TRecOpen struct {
	Default Type
	Fields  []RecFieldType
}

// TEnumRow is a closed enumeration: the subject must be one of Tags.
type TEnumRow struct {
	Tags []string
}

// TRowVar is a bound type-variable occurrence — either the quantified
// variable of an enclosing TForall, or (per spec's single "row variable"
// case) a row-polymorphic placeholder inside an open record's own type.
type TRowVar struct {
	Name string
}

// TFlat is a predicate contract: Pred is an arbitrary term of type
// Dyn -> Bool; the subject passes iff Pred applied to it is true.
type TFlat struct {
	Pred Expr
}

func (TDyn) typeNode()       {}
func (TNum) typeNode()       {}
func (TBool) typeNode()      {}
func (TStr) typeNode()       {}
func (TList) typeNode()      {}
func (TArrow) typeNode()     {}
func (TForall) typeNode()    {}
func (TRecClosed) typeNode() {}
func (TRecOpen) typeNode()   {}
func (TEnumRow) typeNode()   {}
func (TRowVar) typeNode()    {}
func (TFlat) typeNode()      {}
