// Package label implements the blame-label algebra of the contract system.
//
// A label is a four-tuple (polarity, positive party, negative party,
// context) as described by spec §3 and §4.3. Labels are immutable:
// every transformation (ChngPol, GoDom, GoCodom, GoField) returns a new
// label. The indy strategy is encoded here by having GoDom set the context
// to the negative party and GoCodom set it to the positive party for the
// boundary being crossed, rather than swapping Pos/Neg.
package label

import "fmt"

// Label carries the two parties responsible for a contract and tracks
// which of them is currently accused (Positive) plus the context party
// attributed to sub-contracts that reach an indy position.
type Label struct {
	Positive bool   // polarity bit: true selects Pos, false selects Neg
	Pos      string // the positive party (e.g. the annotated term's provenance)
	Neg      string // the negative party (e.g. the ambient context at the annotation site)
	Context  string // party attributed at an indy position; "" if unset
}

// New creates a source label with the given polarity and parties. Context
// starts unset; it is only populated by GoDom, GoCodom, and GoField.
func New(positive bool, pos, neg string) Label {
	return Label{Positive: positive, Pos: pos, Neg: neg}
}

// ChngPol flips the polarity bit, leaving parties and context untouched.
func (l Label) ChngPol() Label {
	l.Positive = !l.Positive
	return l
}

// GoDom flips polarity and sets the context to the current negative party.
// Used when a function contract descends into its domain: the caller
// (negative party before the flip) becomes the context for any sub-contract
// reached while checking the argument.
func (l Label) GoDom() Label {
	l.Context = l.Neg
	l.Positive = !l.Positive
	return l
}

// GoCodom preserves polarity and sets the context to the current positive
// party. Used when a function contract descends into its codomain.
func (l Label) GoCodom() Label {
	l.Context = l.Pos
	return l
}

// GoField updates the context to record the field path being checked
// inside a record contract. If a context is already set (nested fields),
// it is extended with a dotted path.
func (l Label) GoField(field string) Label {
	if l.Context == "" {
		l.Context = field
	} else {
		l.Context = l.Context + "." + field
	}
	return l
}

// Accused returns the party currently blamed by this label's polarity:
// Pos if Positive, Neg otherwise. This is what the `blame` primitive
// reports — the context is carried along for diagnostics but never
// substitutes for the polarity-selected party (spec §4.2, §4.3).
func (l Label) Accused() string {
	if l.Positive {
		return l.Pos
	}
	return l.Neg
}

// String renders a label for debugging/diagnostics.
func (l Label) String() string {
	pol := "neg"
	if l.Positive {
		pol = "pos"
	}
	if l.Context != "" {
		return fmt.Sprintf("<%s: +%s -%s @%s>", pol, l.Pos, l.Neg, l.Context)
	}
	return fmt.Sprintf("<%s: +%s -%s>", pol, l.Pos, l.Neg)
}
