// Package seal implements the identity tokens used to enforce parametric
// polymorphism dynamically (spec §4.6). A Token's identity is its pointer:
// equality is always reference equality, never structural, per the
// spec's design notes. The numeric ID is carried only for display.
package seal

import (
	"fmt"
	"sync/atomic"
)

// Token is a freshly-allocated identity. Two tokens are the same identity
// iff they are the same pointer.
type Token struct {
	id uint64
}

// String renders a token for diagnostics, e.g. "σ3".
func (t *Token) String() string {
	if t == nil {
		return "σ?"
	}
	return fmt.Sprintf("σ%d", t.id)
}

// Same reports whether t and other are the identical identity.
func (t *Token) Same(other *Token) bool {
	return t == other
}

// Generator mints fresh tokens. The evaluator holds exactly one Generator
// (spec §5: "a single monotonically increasing counter ... is the only
// other global mutable state"); every other piece of the system treats
// tokens as immutable values once minted.
type Generator struct {
	next atomic.Uint64
}

// NewGenerator returns a ready-to-use seal generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Fresh allocates a new, globally-unique token (invariant I5: fresh at
// the site of its introducing forall contract, never reused).
func (g *Generator) Fresh() *Token {
	return &Token{id: g.next.Add(1)}
}
