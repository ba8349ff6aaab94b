package eval

import "github.com/cwbudde/go-indylang/internal/errors"

// CallStack tracks application frames for diagnostics: a plain slice
// pushed on call and popped on return, snapshotted into an
// errors.StackTrace when a diagnostic needs to report where it happened.
// It carries no evaluation semantics of its own; Apply pushes a frame,
// named after the lambda's parameter, for every Lambda call and pops it
// when the call returns a value, leaving it in place when the call aborts.
type CallStack struct {
	frames []errors.StackFrame
}

// NewCallStack returns an empty call stack.
func NewCallStack() *CallStack {
	return &CallStack{}
}

// Push records a new frame for a function application.
func (c *CallStack) Push(functionName string) {
	c.frames = append(c.frames, errors.NewStackFrame(functionName))
}

// Pop removes the most recently pushed frame, if any.
func (c *CallStack) Pop() {
	if len(c.frames) > 0 {
		c.frames = c.frames[:len(c.frames)-1]
	}
}

// Snapshot copies the current frames into a StackTrace, oldest first.
func (c *CallStack) Snapshot() errors.StackTrace {
	out := make(errors.StackTrace, len(c.frames))
	copy(out, c.frames)
	return out
}

// Depth reports how many frames are currently on the stack.
func (c *CallStack) Depth() int {
	return len(c.frames)
}
