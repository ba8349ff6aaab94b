package record

import (
	"testing"

	"github.com/cwbudde/go-indylang/internal/value"
)

func rec(names ...string) *value.Record {
	r := &value.Record{}
	for _, n := range names {
		r.Fields = append(r.Fields, value.RecField{Name: n, Thunk: value.Done(value.Number{V: 0})})
	}
	return r
}

func TestExactFieldSetMatches(t *testing.T) {
	missing, extra, ok := ExactFieldSet(rec("a", "b"), []string{"a", "b"})
	if !ok || missing != nil || extra != nil {
		t.Fatalf("expected exact match, got ok=%v missing=%v extra=%v", ok, missing, extra)
	}
}

func TestExactFieldSetReportsMissing(t *testing.T) {
	missing, _, ok := ExactFieldSet(rec("a"), []string{"a", "b"})
	if ok || len(missing) != 1 || missing[0] != "b" {
		t.Fatalf("expected missing field b, got ok=%v missing=%v", ok, missing)
	}
}

func TestExactFieldSetReportsExtra(t *testing.T) {
	_, extra, ok := ExactFieldSet(rec("a", "b", "c"), []string{"a", "b"})
	if ok || len(extra) != 1 || extra[0] != "c" {
		t.Fatalf("expected extra field c, got ok=%v extra=%v", ok, extra)
	}
}

func TestNamesNotInExcludesListed(t *testing.T) {
	rest := NamesNotIn(rec("a", "b", "c"), []string{"a"})
	if len(rest) != 2 || rest[0] != "b" || rest[1] != "c" {
		t.Fatalf("unexpected remainder: %v", rest)
	}
}
