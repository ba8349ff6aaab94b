// Package diag is the error taxonomy propagated out of a reduction (spec
// §7): blame, stuck terms, and unknown variables. It is deliberately the
// lowest package in the graph — it imports only internal/label — so
// internal/value can depend on it without ever depending back on the
// evaluator, the same "neutral package" discipline the teacher applies to
// internal/interp/contracts/contracts.go.
package diag

import (
	"fmt"

	"github.com/cwbudde/go-indylang/internal/label"
)

// Kind distinguishes the three ways a reduction aborts.
type Kind int

const (
	// KindBlame is raised when a contract detects a violation; Label
	// records which party is accused (spec §4.4, §7).
	KindBlame Kind = iota
	// KindStuck is raised when a primitive is applied to a value its
	// case analysis does not cover (spec §4.7's "(stuck)" results) or
	// when a thunk is re-entered while already forcing it.
	KindStuck
	// KindUnknownVar is raised when a Var has no binding in scope.
	KindUnknownVar
)

func (k Kind) String() string {
	switch k {
	case KindBlame:
		return "blame"
	case KindStuck:
		return "stuck"
	case KindUnknownVar:
		return "unknown-variable"
	default:
		return "unknown"
	}
}

// Signal is a propagating diagnostic. It satisfies value.Value's method
// set (Type/String) by construction so it can flow through any function
// that returns a value.Value without value importing eval or vice versa;
// value.IsAbort is the single place that tells a Signal apart from an
// ordinary result.
type Signal struct {
	Kind    Kind
	Label   label.Label // only meaningful for KindBlame
	Message string      // human-readable detail
}

// Type implements the tag side of value.Value's interface without value
// needing to import diag for anything but this struct.
func (s *Signal) Type() string { return "ABORT" }

func (s *Signal) String() string {
	switch s.Kind {
	case KindBlame:
		return fmt.Sprintf("blame: %s accused (%s)", s.Label.Accused(), s.Label.String())
	case KindStuck:
		return fmt.Sprintf("stuck: %s", s.Message)
	case KindUnknownVar:
		return fmt.Sprintf("unknown variable: %s", s.Message)
	default:
		return s.Message
	}
}

// Blame builds the signal raised when a contract is violated by l's
// accused party.
func Blame(l label.Label, reason string) *Signal {
	return &Signal{Kind: KindBlame, Label: l, Message: reason}
}

// Stuck builds a signal for a case-analysis failure that isn't a contract
// violation — e.g. `head 3`, or head of an empty list.
func Stuck(format string, args ...any) *Signal {
	return &Signal{Kind: KindStuck, Message: fmt.Sprintf(format, args...)}
}

// BlackHole is the signal raised when forcing a thunk re-enters itself
// (spec §4.1 permits, but does not require, detecting this; catching it
// here turns a self-referential `let x = x in x` into a clean diagnostic
// instead of corrupting the thunk cell).
func BlackHole(name string) *Signal {
	return &Signal{Kind: KindStuck, Message: fmt.Sprintf("black hole: %q forced while already forcing", name)}
}

// UnknownVar builds the signal raised when a Var has no binding.
func UnknownVar(name string) *Signal {
	return &Signal{Kind: KindUnknownVar, Message: name}
}
