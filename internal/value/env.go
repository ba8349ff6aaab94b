package value

// Env is a persistent, lexically-scoped chain of thunk bindings. Binding
// a name never mutates an existing Env — it returns a new child frame —
// so closures captured before a Let can never observe bindings introduced
// after it, mirroring the teacher's runtime.Environment parent-chain
// design instead of a single mutable map.
type Env struct {
	vars   map[string]*Thunk
	parent *Env
}

// NewEnv returns an empty frame chained to parent (nil for the root).
func NewEnv(parent *Env) *Env {
	return &Env{vars: make(map[string]*Thunk), parent: parent}
}

// Bind returns a new child frame with name bound to thunk.
func (e *Env) Bind(name string, thunk *Thunk) *Env {
	child := NewEnv(e)
	child.vars[name] = thunk
	return child
}

// BindSelf creates a cell for a recursive binding before its value is
// known (spec §4.1 recursive-thunk support: `let rec f = ...f... in ...`
// needs f's own thunk visible inside its own definition), returning both
// the extended Env and the thunk so the caller can point the thunk's
// expr/env back at this same Env once constructed.
func (e *Env) BindSelf(name string) (*Env, *Thunk) {
	child := NewEnv(e)
	cell := &Thunk{}
	child.vars[name] = cell
	return child, cell
}

// Lookup walks the frame chain outward, returning the nearest binding.
func (e *Env) Lookup(name string) (*Thunk, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if t, ok := cur.vars[name]; ok {
			return t, true
		}
	}
	return nil, false
}
