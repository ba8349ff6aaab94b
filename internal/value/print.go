package value

import (
	"strconv"
	"strings"
)

// String renders a value the way the REPL/CLI shows results: terse,
// re-readable, and safe to call on partially-evaluated structures — it
// never forces an unevaluated thunk, printing "<thunk>" for one instead
// (mirrors the teacher's RecordValue.String() convention of rendering
// what's known rather than driving further evaluation as a side effect).

func (n Number) String() string {
	if n.V == float64(int64(n.V)) {
		return strconv.FormatInt(int64(n.V), 10)
	}
	return strconv.FormatFloat(n.V, 'g', -1, 64)
}

func (b Bool) String() string {
	if b.V {
		return "true"
	}
	return "false"
}

func (s Str) String() string { return strconv.Quote(s.V) }

func (l LabelValue) String() string { return l.L.String() }

func (e EnumTag) String() string { return "`" + e.Tag }

func (l List) String() string {
	parts := make([]string, len(l.Items))
	for i, t := range l.Items {
		parts[i] = previewThunk(t)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (Lambda) String() string { return "<fun>" }

func (n NativeFunc) String() string { return "<native:" + n.Name + ">" }

func (s Sealed) String() string { return "<sealed " + s.Token.String() + ">" }

func (r Record) String() string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.Name + " = " + previewThunk(f.Thunk)
	}
	suffix := ""
	if r.Default != nil {
		suffix = "; _ -> " + r.Default.String()
	}
	return "{" + strings.Join(parts, "; ") + suffix + "}"
}

// previewThunk shows a thunk's value if already forced, without forcing
// it itself.
func previewThunk(t *Thunk) string {
	if v, ok := t.Forced(); ok {
		return v.String()
	}
	return "<thunk>"
}
