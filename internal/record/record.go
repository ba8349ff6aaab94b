// Package record holds the pure, apply-free half of record-contract
// enforcement: field-set comparisons that don't need to run any
// contract function, only inspect the names already present on a
// value.Record. The half that does need to apply a contract function to
// a field's thunk lives in internal/eval, which already owns the
// reduction engine those applications require; splitting it this way
// keeps record free of any dependency on eval, the same neutral-package
// split the teacher uses between internal/interp/contracts and the
// evaluator that actually calls into it.
package record

import "github.com/cwbudde/go-indylang/internal/value"

// ExactFieldSet reports whether rec's field names are precisely
// expected, with nothing missing and nothing extra (spec §4.5's closed
// record rule). missing and extra are both nil when ok is true.
func ExactFieldSet(rec *value.Record, expected []string) (missing, extra []string, ok bool) {
	want := make(map[string]bool, len(expected))
	for _, n := range expected {
		want[n] = true
	}
	have := make(map[string]bool, len(rec.Fields))
	for _, n := range rec.Names() {
		have[n] = true
	}
	for n := range want {
		if !have[n] {
			missing = append(missing, n)
		}
	}
	for n := range have {
		if !want[n] {
			extra = append(extra, n)
		}
	}
	return missing, extra, len(missing) == 0 && len(extra) == 0
}

// NamesNotIn returns rec's field names that aren't in except, in
// declaration order — the fields an open record contract routes through
// its default contract instead of a named one.
func NamesNotIn(rec *value.Record, except []string) []string {
	skip := make(map[string]bool, len(except))
	for _, n := range except {
		skip[n] = true
	}
	var out []string
	for _, n := range rec.Names() {
		if !skip[n] {
			out = append(out, n)
		}
	}
	return out
}
