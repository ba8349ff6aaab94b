package loader

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/cwbudde/go-indylang/internal/label"
	"github.com/cwbudde/go-indylang/internal/term"
)

// exprFromJSON mirrors expr but walks a gjson.Result tree instead of a
// YAML-decoded map, used for `--eval` snippets and embedded pred_json
// predicates. Only the node shapes a predicate or a small inline
// expression plausibly needs are covered here (no let bindings, records,
// enums, seals or type annotations) — anything past that belongs in a
// YAML fixture.
func (d *decoder) exprFromJSON(r gjson.Result) (term.Expr, error) {
	if !r.IsObject() {
		return nil, fmt.Errorf("loader: expected a json object, got %s", r.Type)
	}
	kind := r.Get("kind").String()
	switch kind {
	case "int":
		return term.Int(r.Get("value").Int()), nil
	case "float":
		return term.Float(r.Get("value").Float()), nil
	case "bool":
		return term.Bool(r.Get("value").Bool()), nil
	case "str":
		return term.Str(r.Get("value").String()), nil
	case "var":
		return term.V(r.Get("name").String()), nil
	case "lam":
		body, err := d.exprFromJSON(r.Get("body"))
		if err != nil {
			return nil, err
		}
		return term.Lam(r.Get("param").String(), body), nil
	case "app":
		fn, err := d.exprFromJSON(r.Get("fn"))
		if err != nil {
			return nil, err
		}
		arg, err := d.exprFromJSON(r.Get("arg"))
		if err != nil {
			return nil, err
		}
		return term.Ap(fn, arg), nil
	case "if":
		cond, err := d.exprFromJSON(r.Get("cond"))
		if err != nil {
			return nil, err
		}
		then, err := d.exprFromJSON(r.Get("then"))
		if err != nil {
			return nil, err
		}
		els, err := d.exprFromJSON(r.Get("else"))
		if err != nil {
			return nil, err
		}
		return term.IfThenElse(cond, then, els), nil
	case "prim1":
		arg := r.Get("arg").String()
		operand, err := d.exprFromJSON(r.Get("operand"))
		if err != nil {
			return nil, err
		}
		return term.UnArg(term.UnaryOp(r.Get("op").String()), arg, operand), nil
	case "prim2":
		left, err := d.exprFromJSON(r.Get("left"))
		if err != nil {
			return nil, err
		}
		right, err := d.exprFromJSON(r.Get("right"))
		if err != nil {
			return nil, err
		}
		return term.Bin(term.BinOp(r.Get("op").String()), left, right), nil
	case "label":
		return term.LabelLit{Value: label.New(
			r.Get("positive").Bool(),
			r.Get("pos").String(),
			r.Get("neg").String(),
		)}, nil
	default:
		return nil, fmt.Errorf("loader: unsupported json expression kind %q", kind)
	}
}

func toMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if ok {
		return m, true
	}
	// goccy/go-yaml can decode a mapping into map[any]any for documents
	// with non-string keys; normalize that case too.
	if raw, ok := v.(map[any]any); ok {
		out := make(map[string]any, len(raw))
		for k, val := range raw {
			out[fmt.Sprintf("%v", k)] = val
		}
		return out, true
	}
	return nil, false
}

func toSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

func toString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func toBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
