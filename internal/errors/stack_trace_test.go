package errors

import "testing"

func TestStackFrameString(t *testing.T) {
	frame := NewStackFrame("factorial")
	if got := frame.String(); got != "factorial" {
		t.Errorf("got %q, want %q", got, "factorial")
	}
}

func TestStackTraceStringOrdersMostRecentFirst(t *testing.T) {
	trace := StackTrace{
		NewStackFrame("main"),
		NewStackFrame("apply"),
		NewStackFrame("reduce"),
	}
	want := "reduce\napply\nmain"
	if got := trace.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStackTraceStringEmpty(t *testing.T) {
	var trace StackTrace
	if got := trace.String(); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestStackTraceDepth(t *testing.T) {
	tests := []struct {
		name  string
		trace StackTrace
		want  int
	}{
		{"empty", StackTrace{}, 0},
		{"single frame", StackTrace{NewStackFrame("main")}, 1},
		{"nested calls", StackTrace{NewStackFrame("main"), NewStackFrame("apply"), NewStackFrame("reduce")}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.trace.Depth(); got != tt.want {
				t.Errorf("got depth %d, want %d", got, tt.want)
			}
		})
	}
}
