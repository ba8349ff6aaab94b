// Package loader decodes the stand-in surface syntax this repo uses in
// place of a lexer/parser (out of scope per the core language design):
// a YAML or JSON document describing a term.Expr/term.Type tree node by
// node, tagged with a "kind" discriminator per node. This plays the role
// the teacher's internal/lexer+internal/parser play in turning source text
// into an AST, except the "grammar" here is just the shape of
// internal/term's own node types, so there is no separate AST to keep in
// sync.
//
// Two decoding paths exist side by side: LoadYAML (the primary path, via
// goccy/go-yaml) for files and fixtures, and LoadJSON (via tidwall/gjson)
// for compact inline snippets such as a `run --eval` argument, and for a
// flat contract's predicate term when it is easier for a fixture author
// to embed that one sub-term as a JSON string inside an otherwise-YAML
// document (see the "flat" case of decoder.typ). Neither path tracks source
// positions; internal/diag's blame/stuck reports identify a problem by
// the accused label or the offending value, not by a line/column.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"

	"github.com/cwbudde/go-indylang/internal/label"
	"github.com/cwbudde/go-indylang/internal/term"
)

// LoadFile reads path and decodes it as a YAML term document.
func LoadFile(path string) (term.Expr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	e, err := LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return e, nil
}

// LoadYAML decodes a YAML document into a term.Expr.
func LoadYAML(data []byte) (term.Expr, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("loader: invalid yaml: %w", err)
	}
	d := &decoder{}
	return d.expr(raw)
}

// LoadJSON decodes a compact JSON snippet into a term.Expr, used for
// inline `--eval` arguments where a full YAML document is overkill.
func LoadJSON(data []byte) (term.Expr, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("loader: invalid json")
	}
	d := &decoder{}
	return d.exprFromJSON(gjson.ParseBytes(data))
}

// Fixture is one named document loaded from a fixtures directory,
// mirroring the teacher's testdata/fixtures convention referenced from
// its fixture_test.go: a directory of small standalone scripts used to
// drive table-driven tests.
type Fixture struct {
	Name string
	Expr term.Expr
}

// LoadDir loads every *.yaml/*.yml file directly inside dir as a
// Fixture, named after the file with its extension stripped, sorted by
// name so callers get deterministic test iteration order.
func LoadDir(dir string) ([]Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("loader: reading dir %s: %w", dir, err)
	}
	var fixtures []Fixture
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		e, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		fixtures = append(fixtures, Fixture{Name: name, Expr: e})
	}
	sort.Slice(fixtures, func(i, j int) bool { return fixtures[i].Name < fixtures[j].Name })
	return fixtures, nil
}

// decoder holds no state beyond what a single document needs; it exists
// so helper methods don't have to repeat "from a map[string]any" in
// every signature.
type decoder struct{}

func (d *decoder) expr(raw any) (term.Expr, error) {
	m, ok := toMap(raw)
	if !ok {
		return nil, fmt.Errorf("loader: expected a mapping node, got %T", raw)
	}
	kind, _ := toString(m["kind"])
	switch kind {
	case "int":
		v, _ := toInt64(m["value"])
		return term.Int(v), nil
	case "float":
		v, _ := toFloat64(m["value"])
		return term.Float(v), nil
	case "bool":
		v, _ := toBool(m["value"])
		return term.Bool(v), nil
	case "str":
		v, _ := toString(m["value"])
		return term.Str(v), nil
	case "label":
		l, err := d.label(m)
		if err != nil {
			return nil, err
		}
		return term.LabelLit{Value: l}, nil
	case "var":
		name, _ := toString(m["name"])
		return term.V(name), nil
	case "lam":
		param, _ := toString(m["param"])
		body, err := d.child(m, "body")
		if err != nil {
			return nil, err
		}
		return term.Lam(param, body), nil
	case "app":
		fn, err := d.child(m, "fn")
		if err != nil {
			return nil, err
		}
		arg, err := d.child(m, "arg")
		if err != nil {
			return nil, err
		}
		return term.Ap(fn, arg), nil
	case "let", "letrec":
		name, _ := toString(m["name"])
		value, err := d.child(m, "value")
		if err != nil {
			return nil, err
		}
		body, err := d.child(m, "body")
		if err != nil {
			return nil, err
		}
		if kind == "letrec" {
			return term.LetRecIn(name, value, body), nil
		}
		return term.LetIn(name, value, body), nil
	case "if":
		cond, err := d.child(m, "cond")
		if err != nil {
			return nil, err
		}
		then, err := d.child(m, "then")
		if err != nil {
			return nil, err
		}
		els, err := d.child(m, "else")
		if err != nil {
			return nil, err
		}
		return term.IfThenElse(cond, then, els), nil
	case "prim1":
		op, _ := toString(m["op"])
		arg, _ := toString(m["arg"])
		operand, err := d.child(m, "operand")
		if err != nil {
			return nil, err
		}
		return term.UnArg(term.UnaryOp(op), arg, operand), nil
	case "prim2":
		op, _ := toString(m["op"])
		left, err := d.child(m, "left")
		if err != nil {
			return nil, err
		}
		right, err := d.child(m, "right")
		if err != nil {
			return nil, err
		}
		return term.Bin(term.BinOp(op), left, right), nil
	case "record":
		return d.recordLit(m)
	case "field":
		rec, err := d.child(m, "record")
		if err != nil {
			return nil, err
		}
		name, _ := toString(m["name"])
		return term.Get(rec, name), nil
	case "dynfield":
		rec, err := d.child(m, "record")
		if err != nil {
			return nil, err
		}
		key, err := d.child(m, "key")
		if err != nil {
			return nil, err
		}
		return term.DynFieldAccess{Record: rec, Key: key}, nil
	case "fieldremove":
		rec, err := d.child(m, "record")
		if err != nil {
			return nil, err
		}
		name, _ := toString(m["name"])
		return term.FieldRemove{Record: rec, Name: name}, nil
	case "fieldextend":
		rec, err := d.child(m, "record")
		if err != nil {
			return nil, err
		}
		name, _ := toString(m["name"])
		value, err := d.child(m, "value")
		if err != nil {
			return nil, err
		}
		return term.FieldExtend{Record: rec, Name: name, Value: value}, nil
	case "enumtag":
		tag, _ := toString(m["tag"])
		return term.EnumTag{Tag: tag}, nil
	case "enumcase":
		return d.enumCase(m)
	case "seal":
		payload, err := d.child(m, "payload")
		if err != nil {
			return nil, err
		}
		token, err := d.child(m, "token")
		if err != nil {
			return nil, err
		}
		return term.Seal{Payload: payload, Token: token}, nil
	case "unseal":
		payload, err := d.child(m, "payload")
		if err != nil {
			return nil, err
		}
		token, err := d.child(m, "token")
		if err != nil {
			return nil, err
		}
		fallback, err := d.child(m, "fallback")
		if err != nil {
			return nil, err
		}
		return term.Unseal{Payload: payload, Token: token, Fallback: fallback}, nil
	case "assume", "promise":
		t, err := d.typ(m["type"])
		if err != nil {
			return nil, err
		}
		l, err := d.label(m)
		if err != nil {
			return nil, err
		}
		sub, err := d.child(m, "term")
		if err != nil {
			return nil, err
		}
		if kind == "promise" {
			return term.PromiseT(t, l, sub), nil
		}
		return term.AssumeT(t, l, sub), nil
	default:
		return nil, fmt.Errorf("loader: unknown expression kind %q", kind)
	}
}

func (d *decoder) child(m map[string]any, key string) (term.Expr, error) {
	v, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("loader: missing field %q", key)
	}
	return d.expr(v)
}

func (d *decoder) recordLit(m map[string]any) (term.Expr, error) {
	rawFields, _ := toSlice(m["fields"])
	fields := make([]term.RecordField, 0, len(rawFields))
	for _, rf := range rawFields {
		fm, ok := toMap(rf)
		if !ok {
			return nil, fmt.Errorf("loader: record field must be a mapping")
		}
		value, err := d.child(fm, "value")
		if err != nil {
			return nil, err
		}
		if keyRaw, ok := fm["key"]; ok {
			key, err := d.expr(keyRaw)
			if err != nil {
				return nil, err
			}
			fields = append(fields, term.RecordField{KeyExpr: key, ValueExpr: value})
			continue
		}
		name, _ := toString(fm["name"])
		fields = append(fields, term.Field(name, value))
	}
	if defaultRaw, ok := m["default"]; ok {
		def, err := d.expr(defaultRaw)
		if err != nil {
			return nil, err
		}
		return term.RecordLit{Fields: fields, Default: def}, nil
	}
	return term.RecordLit{Fields: fields}, nil
}

func (d *decoder) enumCase(m map[string]any) (term.Expr, error) {
	scrutinee, err := d.child(m, "scrutinee")
	if err != nil {
		return nil, err
	}
	casesRaw, _ := toMap(m["cases"])
	cases := make(map[string]term.Expr, len(casesRaw))
	for tag, v := range casesRaw {
		sub, err := d.expr(v)
		if err != nil {
			return nil, err
		}
		cases[tag] = sub
	}
	var def term.Expr
	if defaultRaw, ok := m["default"]; ok {
		def, err = d.expr(defaultRaw)
		if err != nil {
			return nil, err
		}
	}
	return term.EnumCase{Scrutinee: scrutinee, Cases: cases, Default: def}, nil
}

func (d *decoder) label(m map[string]any) (label.Label, error) {
	lm, ok := toMap(m["label"])
	if !ok {
		return label.Label{}, fmt.Errorf("loader: missing label")
	}
	positive, _ := toBool(lm["positive"])
	pos, _ := toString(lm["pos"])
	neg, _ := toString(lm["neg"])
	return label.New(positive, pos, neg), nil
}

func (d *decoder) typ(raw any) (term.Type, error) {
	m, ok := toMap(raw)
	if !ok {
		return nil, fmt.Errorf("loader: expected a type mapping, got %T", raw)
	}
	kind, _ := toString(m["kind"])
	switch kind {
	case "dyn":
		return term.TDyn{}, nil
	case "num":
		return term.TNum{}, nil
	case "bool":
		return term.TBool{}, nil
	case "str":
		return term.TStr{}, nil
	case "list":
		return term.TList{}, nil
	case "arrow":
		dom, err := d.typ(m["dom"])
		if err != nil {
			return nil, err
		}
		cod, err := d.typ(m["cod"])
		if err != nil {
			return nil, err
		}
		return term.TArrow{Dom: dom, Cod: cod}, nil
	case "forall":
		binder, _ := toString(m["binder"])
		body, err := d.typ(m["body"])
		if err != nil {
			return nil, err
		}
		return term.TForall{Binder: binder, Body: body}, nil
	case "recclosed":
		fields, err := d.recFieldTypes(m["fields"])
		if err != nil {
			return nil, err
		}
		return term.TRecClosed{Fields: fields}, nil
	case "recopen":
		fields, err := d.recFieldTypes(m["fields"])
		if err != nil {
			return nil, err
		}
		var def term.Type = term.TDyn{}
		if defaultRaw, ok := m["default"]; ok {
			def, err = d.typ(defaultRaw)
			if err != nil {
				return nil, err
			}
		}
		return term.TRecOpen{Default: def, Fields: fields}, nil
	case "enumrow":
		rawTags, _ := toSlice(m["tags"])
		tags := make([]string, 0, len(rawTags))
		for _, t := range rawTags {
			s, _ := toString(t)
			tags = append(tags, s)
		}
		return term.TEnumRow{Tags: tags}, nil
	case "rowvar":
		name, _ := toString(m["name"])
		return term.TRowVar{Name: name}, nil
	case "flat":
		// A flat predicate's own term can either be inlined directly
		// ("pred") or, when a fixture author wants to keep one compact
		// sub-term as JSON inside a larger YAML document, carried as a
		// raw JSON string ("pred_json") and decoded through the gjson
		// path instead.
		if predJSON, ok := m["pred_json"].(string); ok {
			pred, err := d.exprFromJSON(gjson.Parse(predJSON))
			if err != nil {
				return nil, err
			}
			return term.TFlat{Pred: pred}, nil
		}
		pred, err := d.child(m, "pred")
		if err != nil {
			return nil, err
		}
		return term.TFlat{Pred: pred}, nil
	default:
		return nil, fmt.Errorf("loader: unknown type kind %q", kind)
	}
}

func (d *decoder) recFieldTypes(raw any) ([]term.RecFieldType, error) {
	rawFields, _ := toSlice(raw)
	fields := make([]term.RecFieldType, 0, len(rawFields))
	for _, rf := range rawFields {
		fm, ok := toMap(rf)
		if !ok {
			return nil, fmt.Errorf("loader: record field type must be a mapping")
		}
		name, _ := toString(fm["name"])
		t, err := d.typ(fm["type"])
		if err != nil {
			return nil, err
		}
		fields = append(fields, term.RecFieldType{Name: name, T: t})
	}
	return fields, nil
}
