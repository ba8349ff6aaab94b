package contract

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-indylang/internal/term"
)

func TestElaborateNumIsLambdaLambdaIf(t *testing.T) {
	e := New()
	expr := e.Elaborate(term.TNum{})

	outer, ok := expr.(term.Func)
	if !ok || outer.Param != "l" {
		t.Fatalf("expected outer lambda over l, got %T", expr)
	}
	inner, ok := outer.Body.(term.Func)
	if !ok || inner.Param != "t" {
		t.Fatalf("expected inner lambda over t, got %T", outer.Body)
	}
	if _, ok := inner.Body.(term.If); !ok {
		t.Fatalf("expected isNum check to compile to an If, got %T", inner.Body)
	}
	if !strings.Contains(expr.String(), string(term.OpIsNum)) {
		t.Fatalf("expected rendering to mention isNum, got %s", expr.String())
	}
}

func TestElaborateArrowUsesGoDomAndGoCodomWithoutExtraChngPol(t *testing.T) {
	e := New()
	expr := e.Elaborate(term.TArrow{Dom: term.TNum{}, Cod: term.TNum{}})

	rendered := expr.String()
	if !strings.Contains(rendered, string(term.OpGoDom)) {
		t.Fatalf("expected domain contract to use goDom, got %s", rendered)
	}
	if !strings.Contains(rendered, string(term.OpGoCodom)) {
		t.Fatalf("expected codomain contract to use goCodom, got %s", rendered)
	}
	if strings.Contains(rendered, string(term.OpChngPol)) {
		t.Fatalf("expected no extra chngPol composed onto goDom/goCodom, got %s", rendered)
	}
}

func TestElaborateForallMintsSealBeforeApplyingBody(t *testing.T) {
	e := New()
	expr := e.Elaborate(term.TForall{Binder: "a", Body: term.TArrow{Dom: term.TRowVar{Name: "a"}, Cod: term.TRowVar{Name: "a"}}})

	outer := expr.(term.Func).Body.(term.Func).Body
	letExpr, ok := outer.(term.Let)
	if !ok {
		t.Fatalf("expected forall contract body to open with a let binding the fresh seal, got %T", outer)
	}
	un, ok := letExpr.Value.(term.PrimUnary)
	if !ok || un.Op != term.OpFreshSeal {
		t.Fatalf("expected the let-bound value to be freshSeal, got %#v", letExpr.Value)
	}
}

func TestElaborateRowVarBranchesOnPolarity(t *testing.T) {
	e := New()
	expr := e.Elaborate(term.TForall{Binder: "a", Body: term.TRowVar{Name: "a"}})

	rendered := expr.String()
	if !strings.Contains(rendered, string(term.OpPolarity)) {
		t.Fatalf("expected row-variable contract to branch on polarity, got %s", rendered)
	}
	if !strings.Contains(rendered, "seal") || !strings.Contains(rendered, "unseal") {
		t.Fatalf("expected both seal and unseal branches present, got %s", rendered)
	}
}

func TestElaborateClosedRecordListsFieldContracts(t *testing.T) {
	e := New()
	expr := e.Elaborate(term.TRecClosed{Fields: []term.RecFieldType{
		{Name: "x", T: term.TNum{}},
		{Name: "y", T: term.TStr{}},
	}})

	rendered := expr.String()
	if !strings.Contains(rendered, "closedRec{x, y}") {
		t.Fatalf("expected closed record contract to name both fields, got %s", rendered)
	}
}

func TestElaborateOpenRecordKeepsDefaultContract(t *testing.T) {
	e := New()
	expr := e.Elaborate(term.TRecOpen{
		Default: term.TBool{},
		Fields:  []term.RecFieldType{{Name: "x", T: term.TNum{}}},
	})

	rendered := expr.String()
	if !strings.Contains(rendered, "openRec{x; _}") {
		t.Fatalf("expected open record contract to name field x, got %s", rendered)
	}
	orc, ok := expr.(term.Func).Body.(term.Func).Body.(term.OpenRecordContract)
	if !ok || orc.Default == nil || !strings.Contains(orc.Default.String(), string(term.OpIsBool)) {
		t.Fatalf("expected open record contract to keep the Bool default contract, got %#v", expr)
	}
}

func TestElaborateUnboundRowVarFallsBackToDyn(t *testing.T) {
	e := New()
	expr := e.Elaborate(term.TRowVar{Name: "never-bound"})

	body := expr.(term.Func).Body.(term.Func).Body
	if v, ok := body.(term.Var); !ok || v.Name != "t" {
		t.Fatalf("expected an unbound row variable to elaborate to identity, got %#v", body)
	}
}
