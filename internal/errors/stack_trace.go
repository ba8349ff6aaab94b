// Package errors holds the call-stack formatting shared by internal/eval's
// CallStack and the CLI's diagnostic report: a trace of function names,
// most-recent-first, with no dependency on the evaluator.
package errors

import "strings"

// StackFrame captures one application frame: the function applied.
type StackFrame struct {
	FunctionName string
}

// String formats a frame as its function name.
func (sf StackFrame) String() string {
	return sf.FunctionName
}

// StackTrace is a sequence of frames, oldest (bottom) first.
type StackTrace []StackFrame

// String renders the trace most-recent-first, one frame per line.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Depth returns the number of frames in the trace.
func (st StackTrace) Depth() int {
	return len(st)
}

// NewStackFrame creates a frame for the given function name.
func NewStackFrame(functionName string) StackFrame {
	return StackFrame{FunctionName: functionName}
}
