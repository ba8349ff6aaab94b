// Package contract lowers type annotations into the term-level
// checking functions that enforce them (spec §4.5): every type elaborates
// to an expression of shape `λl. λt. ...`, a contract that, given a blame
// label and a candidate term, either returns the term (arranging for
// higher-order checks on its future uses) or raises blame.
//
// The package only builds internal/term expressions — it has no
// dependency on internal/value or internal/eval, the same "build the
// tree, let someone else walk it" split the teacher keeps between
// internal/ast and internal/interp.
package contract

import (
	"fmt"

	"github.com/cwbudde/go-indylang/internal/term"
)

// Elaborator tracks the fresh row-variable names minted for each
// forall encountered. A fresh Elaborator should be used per top-level
// Assume/Promise so names never collide across unrelated contracts.
type Elaborator struct {
	n int
}

// New returns a ready-to-use Elaborator.
func New() *Elaborator {
	return &Elaborator{}
}

// tyEnv maps a forall binder's name to the term.Expr (always a Var
// referencing a let-bound seal token) that stands for its identity
// inside the elaborated body.
type tyEnv map[string]term.Expr

// Elaborate lowers t into its contract-checking function.
func (e *Elaborator) Elaborate(t term.Type) term.Expr {
	return e.build(t, tyEnv{})
}

func (e *Elaborator) freshTokenName() string {
	e.n++
	return fmt.Sprintf("$seal%d", e.n)
}

// wrapLT wraps body (which refers to the free variables "l" and "t")
// into the canonical λl. λt. body contract shape.
func wrapLT(body term.Expr) term.Expr {
	return term.Lam("l", term.Lam("t", body))
}

func (e *Elaborator) build(t term.Type, env tyEnv) term.Expr {
	switch ty := t.(type) {
	case term.TDyn:
		return wrapLT(term.V("t"))

	case term.TNum:
		return wrapLT(flatCheck(term.OpIsNum))
	case term.TBool:
		return wrapLT(flatCheck(term.OpIsBool))
	case term.TStr:
		return wrapLT(flatCheck(term.OpIsStr))
	case term.TList:
		return wrapLT(flatCheck(term.OpIsList))

	case term.TArrow:
		return e.buildArrow(ty, env)

	case term.TForall:
		return e.buildForall(ty, env)

	case term.TRecClosed:
		return e.buildClosedRecord(ty, env)
	case term.TRecOpen:
		return e.buildOpenRecord(ty, env)

	case term.TEnumRow:
		return wrapLT(enumCheck(ty.Tags))

	case term.TRowVar:
		return e.buildRowVar(ty, env)

	case term.TFlat:
		return wrapLT(term.IfThenElse(
			term.Ap(ty.Pred, term.V("t")),
			term.V("t"),
			term.Un(term.OpBlame, term.V("l")),
		))

	default:
		// Types are a closed sum; a default case exists only to make the
		// switch total against a future alternative added without an
		// accompanying contract rule.
		return wrapLT(term.Un(term.OpBlame, term.V("l")))
	}
}

// flatCheck builds `if op(t) then t else blame l` for a unary
// classification primitive (isNum, isBool, isStr, isList).
func flatCheck(op term.UnaryOp) term.Expr {
	return term.IfThenElse(
		term.Un(op, term.V("t")),
		term.V("t"),
		term.Un(term.OpBlame, term.V("l")),
	)
}

// enumCheck builds an EnumCase dispatch that accepts an enum tag t iff it
// is one of tags, blaming l on any other tag. A subject that is not an
// enum tag at all does not blame: the EnumCase itself is stuck on it.
func enumCheck(tags []string) term.Expr {
	cases := make(map[string]term.Expr, len(tags))
	for _, tag := range tags {
		cases[tag] = term.V("t")
	}
	return term.EnumCase{
		Scrutinee: term.V("t"),
		Cases:     cases,
		Default:   term.Un(term.OpBlame, term.V("l")),
	}
}

// buildArrow implements the higher-order function contract (spec §4.5):
// the domain contract runs on arguments with the label's polarity
// flipped and context set to the negative party (GoDom); the codomain
// contract runs on results with polarity preserved and context set to
// the positive party (GoCodom). Earlier drafts of this package tried
// composing ChngPol with GoDom for the domain label, matching the
// spec's §4.5 sketch literally, but since GoDom already flips polarity
// that composition cancels back to the original polarity and breaks the
// indy blame-assignment tests in §8 (a function returning a bad result
// must blame the function, not its argument's provider). GoDom alone,
// with no further ChngPol, is what produces indy blame.
func (e *Elaborator) buildArrow(ty term.TArrow, env tyEnv) term.Expr {
	domContract := e.build(ty.Dom, env)
	codContract := e.build(ty.Cod, env)

	checkedArg := term.Ap(
		term.Ap(domContract, term.Un(term.OpGoDom, term.V("l"))),
		term.V("x"),
	)
	rawResult := term.Ap(term.V("t"), checkedArg)
	checkedResult := term.Ap(
		term.Ap(codContract, term.Un(term.OpGoCodom, term.V("l"))),
		rawResult,
	)

	wrapped := term.Lam("x", checkedResult)
	return wrapLT(term.IfThenElse(
		term.Un(term.OpIsFun, term.V("t")),
		wrapped,
		term.Un(term.OpBlame, term.V("l")),
	))
}

// buildForall mints one fresh seal per contract attachment (not per
// call of the underlying function): the seal token is bound once per
// application of the contract to a label and a term, in a let inside the
// λl. λt. body around the body contract, and closed over by whatever function the
// body contract eventually returns, so every later application of that
// function reuses the same identity (spec §4.6, invariant I5).
func (e *Elaborator) buildForall(ty term.TForall, env tyEnv) term.Expr {
	tokenName := e.freshTokenName()
	inner := tyEnv{}
	for k, v := range env {
		inner[k] = v
	}
	inner[ty.Binder] = term.V(tokenName)

	bodyContract := e.build(ty.Body, inner)
	applied := term.Ap(term.Ap(bodyContract, term.V("l")), term.V("t"))

	return wrapLT(term.LetIn(tokenName, term.Un(term.OpFreshSeal, term.Bool(true)), applied))
}

// buildRowVar enforces parametricity dynamically (Matthews/Findler-style
// sealing): a value flowing into the abstract type from the context —
// a negative occurrence, e.g. the argument of `forall a. a -> a` — is
// sealed under the variable's token before the polymorphic function's
// own body ever sees it, so that body cannot inspect or depend on its
// representation. A value flowing back out to the context through a
// positive occurrence — the result of that same arrow — must still
// carry that exact seal, proving the function only ever passed the
// value through rather than fabricating a new one; unsealing it there
// hands the real value back to the caller. Which case applies is read
// directly off the label's current polarity, since GoDom/GoCodom have
// already encoded the domain/codomain distinction into Positive as the
// contract descends through the type.
func (e *Elaborator) buildRowVar(ty term.TRowVar, env tyEnv) term.Expr {
	tokenExpr, bound := env[ty.Name]
	if !bound {
		// An unbound row variable (no enclosing forall) cannot be checked;
		// treat it like Dyn rather than blaming on something the contract
		// author never introduced.
		return wrapLT(term.V("t"))
	}

	sealed := term.Seal{Payload: term.V("t"), Token: tokenExpr, Blame: term.V("l")}
	unsealed := term.Unseal{
		Payload:  term.V("t"),
		Token:    tokenExpr,
		Fallback: term.Un(term.OpBlame, term.V("l")),
	}
	// Positive polarity is the codomain/result side: unseal and hand the
	// real value back. Negative polarity is the domain/argument side:
	// seal before the value reaches the polymorphic function's body.
	return wrapLT(term.IfThenElse(term.Un(term.OpPolarity, term.V("l")), unsealed, sealed))
}

func (e *Elaborator) buildClosedRecord(ty term.TRecClosed, env tyEnv) term.Expr {
	fields := make([]term.RecordFieldContract, len(ty.Fields))
	for i, f := range ty.Fields {
		fields[i] = term.RecordFieldContract{Name: f.Name, Contract: e.build(f.T, env)}
	}
	return wrapLT(term.ClosedRecordContract{Fields: fields, Label: term.V("l"), Term: term.V("t")})
}

func (e *Elaborator) buildOpenRecord(ty term.TRecOpen, env tyEnv) term.Expr {
	fields := make([]term.RecordFieldContract, len(ty.Fields))
	for i, f := range ty.Fields {
		fields[i] = term.RecordFieldContract{Name: f.Name, Contract: e.build(f.T, env)}
	}
	return wrapLT(term.OpenRecordContract{
		Fields:  fields,
		Default: e.build(ty.Default, env),
		Label:   term.V("l"),
		Term:    term.V("t"),
	})
}
