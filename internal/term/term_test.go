package term

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-indylang/internal/label"
)

func TestExprStringRendersApplications(t *testing.T) {
	e := Ap(Lam("x", Bin(OpAdd, V("x"), Int(1))), Int(41))
	got := e.String()
	if !strings.Contains(got, "fun x") || !strings.Contains(got, "41") {
		t.Fatalf("unexpected rendering: %s", got)
	}
}

func TestAssumeCarriesTypeAndLabel(t *testing.T) {
	l := label.New(true, "p", "n")
	a := Assume{T: TNum{}, Label: l, Term: Str("hello")}

	if a.T.String() != "Num" {
		t.Fatalf("expected Num, got %s", a.T.String())
	}
	if a.Label.Pos != "p" || a.Label.Neg != "n" {
		t.Fatalf("label parties not preserved")
	}
}

func TestArrowTypeString(t *testing.T) {
	ty := TArrow{Dom: TNum{}, Cod: TNum{}}
	if ty.String() != "(Num -> Num)" {
		t.Fatalf("unexpected arrow rendering: %s", ty.String())
	}
}

func TestForallBodyReferencesBinder(t *testing.T) {
	ty := TForall{Binder: "a", Body: TArrow{Dom: TRowVar{Name: "a"}, Cod: TRowVar{Name: "a"}}}
	if ty.String() != "(forall a. (a -> a))" {
		t.Fatalf("unexpected forall rendering: %s", ty.String())
	}
}
