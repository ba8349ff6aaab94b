// Package value defines the runtime value universe, the thunk graph that
// realises call-by-need sharing, and the lexical environment threading
// those thunks through closures (spec §3, §4.1). It mirrors the teacher's
// internal/interp/runtime package: one Value interface, one concrete type
// per shape, plus the handful of neutral callback types
// (internal/interp/runtime/lazy_eval.go's EvalCallback) that let values
// stay independent of the evaluator that produces them.
package value

import (
	"github.com/cwbudde/go-indylang/internal/diag"
	"github.com/cwbudde/go-indylang/internal/label"
	"github.com/cwbudde/go-indylang/internal/seal"
	"github.com/cwbudde/go-indylang/internal/term"
)

// Value is every runtime value the evaluator can produce: lambdas,
// numeric/boolean/string/label constants, enumeration tags, lists,
// records, and seal wrappers (spec §4.2).
type Value interface {
	Type() string
	String() string
}

// Number backs both integer and floating-point literals; the core
// language does not distinguish them as separate runtime shapes (spec §3
// lists a single Num type).
type Number struct{ V float64 }

func (Number) Type() string { return "NUM" }

type Bool struct{ V bool }

func (Bool) Type() string { return "BOOL" }

type Str struct{ V string }

func (Str) Type() string { return "STR" }

// LabelValue is a label reified as a first-class runtime value (design
// note: "labels live in the same universe as integers and lambdas").
type LabelValue struct{ L label.Label }

func (LabelValue) Type() string { return "LABEL" }

type EnumTag struct{ Tag string }

func (EnumTag) Type() string { return "ENUM" }

// TokenValue reifies a bare seal identity as a runtime value — the
// result of the freshSeal primitive, let-bound once per forall contract
// attachment and closed over by the Seal/Unseal nodes that reference it.
type TokenValue struct{ Token *seal.Token }

func (TokenValue) Type() string { return "TOKEN" }

func (t TokenValue) String() string { return t.Token.String() }

// List is a lazy cons-list: each element is its own thunk so `head e`
// never forces the tail.
type List struct {
	Items []*Thunk
}

func (List) Type() string { return "LIST" }

// Lambda is a user-defined, single-parameter closure.
type Lambda struct {
	Param string
	Body  term.Expr
	Env   *Env
}

func (Lambda) Type() string { return "FUN" }

// NativeFunc embeds a Go-implemented callable, the same technique the
// teacher uses for externally-registered FFI functions
// (internal/interp/contracts.ExternalFunctionRegistry). The evaluator
// uses it for the always-blaming default function that a closed record
// contract installs on the record it returns.
type NativeFunc struct {
	Name string
	Fn   func(args []Value) Value
	// Arity is the number of curried arguments Fn expects before running;
	// applying fewer just returns a partially-applied NativeFunc.
	Arity int
	// collected holds arguments already supplied via currying.
	collected []Value
}

func (NativeFunc) Type() string { return "NATIVE" }

// Apply supplies one more argument, either running Fn (arity reached) or
// returning a new, more-applied NativeFunc.
func (n *NativeFunc) Apply(arg Value) Value {
	args := append(append([]Value{}, n.collected...), arg)
	if len(args) >= n.Arity {
		return n.Fn(args)
	}
	return &NativeFunc{Name: n.Name, Fn: n.Fn, Arity: n.Arity, collected: args}
}

// Sealed is an opaque wrapper bound to a fresh identity (spec §4.6): the
// only way to recover Payload is Unseal with the same *seal.Token. Blame
// is the label that introduced the seal; a primitive that is handed a
// Sealed value where it expects a concrete shape blames Blame's accused
// party instead of reporting a stuck term, since inspecting an opaque
// value is itself the contract violation (spec §8's parametricity
// property).
type Sealed struct {
	Payload Value
	Token   *seal.Token
	Blame   label.Label
}

func (Sealed) Type() string { return "SEALED" }

// RecField is one (name, thunk) entry of a record value.
type RecField struct {
	Name  string
	Thunk *Thunk
}

// Record pairs an ordered list of unique-named field thunks with a
// default function invoked on missing-key access (spec §3, I4).
// Default is nil for a record literal written without a default clause.
// A closed record contract installs one that always blames (I3); an open
// record contract keeps the subject record's own Default, nil or not.
type Record struct {
	Fields  []RecField
	Default Value // callable: Str -> Value, applied by the evaluator
}

func (Record) Type() string { return "RECORD" }

// Find looks up a field by name.
func (r *Record) Find(name string) (*Thunk, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Thunk, true
		}
	}
	return nil, false
}

// Names returns the field names in declaration order.
func (r *Record) Names() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// WithRemoved returns a new Record without the named field (`-$`).
func (r *Record) WithRemoved(name string) *Record {
	out := &Record{Default: r.Default}
	for _, f := range r.Fields {
		if f.Name != name {
			out.Fields = append(out.Fields, f)
		}
	}
	return out
}

// WithExtended returns a new Record with name bound to thunk, shadowing
// any existing entry of the same name (`$[f = v]`, I4 uniqueness).
func (r *Record) WithExtended(name string, thunk *Thunk) *Record {
	out := &Record{Default: r.Default}
	replaced := false
	for _, f := range r.Fields {
		if f.Name == name {
			out.Fields = append(out.Fields, RecField{Name: name, Thunk: thunk})
			replaced = true
			continue
		}
		out.Fields = append(out.Fields, f)
	}
	if !replaced {
		out.Fields = append(out.Fields, RecField{Name: name, Thunk: thunk})
	}
	return out
}

// IsAbort reports whether v is a propagating diagnostic (blame, stuck
// term, or unknown variable) rather than an ordinary value. Evaluator
// code checks this after every sub-reduction, the same
// `isError(result)` idiom the teacher's evaluator uses throughout
// binary_ops.go/visitor_expressions.go.
func IsAbort(v Value) bool {
	_, ok := v.(*diag.Signal)
	return ok
}

// AsSignal extracts the diagnostic signal, if v is one.
func AsSignal(v Value) (*diag.Signal, bool) {
	s, ok := v.(*diag.Signal)
	return s, ok
}
