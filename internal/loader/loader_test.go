package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/go-indylang/internal/eval"
	"github.com/cwbudde/go-indylang/internal/term"
	"github.com/cwbudde/go-indylang/internal/value"
)

func TestLoadYAMLDecodesArithmetic(t *testing.T) {
	doc := `
kind: prim2
op: "+"
left:
  kind: int
  value: 1
right:
  kind: int
  value: 2
`
	e, err := LoadYAML([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := eval.New().Run(e)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if got.(value.Number).V != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}

func TestLoadYAMLDecodesLetAndLambda(t *testing.T) {
	doc := `
kind: let
name: inc
value:
  kind: lam
  param: x
  body:
    kind: prim2
    op: "+"
    left: {kind: var, name: x}
    right: {kind: int, value: 1}
body:
  kind: app
  fn: {kind: var, name: inc}
  arg: {kind: int, value: 41}
`
	e, err := LoadYAML([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := eval.New().Run(e)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if got.(value.Number).V != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
}

func TestLoadYAMLDecodesAssumeContract(t *testing.T) {
	doc := `
kind: assume
type: {kind: num}
label: {positive: true, pos: p, neg: n}
term: {kind: int, value: 7}
`
	e, err := LoadYAML([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := eval.New().Run(e)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if got.(value.Number).V != 7 {
		t.Fatalf("expected 7, got %v", got)
	}
}

func TestLoadYAMLRejectsUnknownKind(t *testing.T) {
	_, err := LoadYAML([]byte("kind: not-a-real-node\n"))
	if err == nil {
		t.Fatalf("expected an error for an unknown node kind")
	}
}

func TestLoadJSONDecodesInlineExpression(t *testing.T) {
	e, err := LoadJSON([]byte(`{"kind":"prim2","op":"*","left":{"kind":"int","value":6},"right":{"kind":"int","value":7}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := eval.New().Run(e)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if got.(value.Number).V != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
}

func TestTFlatPredJSONIsDecodedThroughGJSON(t *testing.T) {
	doc := `
kind: assume
type:
  kind: flat
  pred_json: '{"kind":"lam","param":"t","body":{"kind":"prim1","op":"isNum","operand":{"kind":"var","name":"t"}}}'
label: {positive: true, pos: p, neg: n}
term: {kind: int, value: 3}
`
	e, err := LoadYAML([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := eval.New().Run(e)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if got.(value.Number).V != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}

func TestLoadDirLoadsFixturesSortedByName(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "b.yaml", "kind: int\nvalue: 2\n")
	writeFixture(t, dir, "a.yaml", "kind: int\nvalue: 1\n")

	fixtures, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fixtures) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(fixtures))
	}
	if fixtures[0].Name != "a" || fixtures[1].Name != "b" {
		t.Fatalf("expected fixtures sorted a, b; got %s, %s", fixtures[0].Name, fixtures[1].Name)
	}
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}
