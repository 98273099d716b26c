// catalog_test.go — verification of the fixed error catalog and fail-fast lookup.
package stanza

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

// catalogTable mirrors catalog.go entry for entry. Keep in sync by hand; the
// duplication is the point — a silent table edit must fail a test.
var catalogTable = map[string]Condition{
	"gone":                    {"302", ClassModify},
	"redirect":                {"302", ClassModify},
	"bad-request":             {"400", ClassModify},
	"jid-malformed":           {"400", ClassModify},
	"unexpected-request":      {"400", ClassWait},
	"not-authorized":          {"401", ClassAuth},
	"payment-required":        {"402", ClassAuth},
	"forbidden":               {"403", ClassAuth},
	"item-not-found":          {"404", ClassCancel},
	"recipient-unavailable":   {"404", ClassCancel},
	"remote-server-not-found": {"404", ClassCancel},
	"not-allowed":             {"405", ClassCancel},
	"not-acceptable":          {"406", ClassModify},
	"registration-required":   {"407", ClassAuth},
	"subscription-required":   {"407", ClassAuth},
	"conflict":                {"409", ClassCancel},
	"internal-server-error":   {"500", ClassWait},
	"resource-constraint":     {"500", ClassWait},
	"feature-not-implemented": {"501", ClassCancel},
	"service-unavailable":     {"503", ClassCancel},
	"remote-server-timeout":   {"504", ClassWait},
}

func TestLookup_EveryCatalogEntry(t *testing.T) {
	t.Parallel()

	for name, want := range catalogTable {
		got, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): unexpected error: %v", name, err)
		}
		if got != want {
			t.Fatalf("Lookup(%q): want=%+v got=%+v", name, want, got)
		}
	}
}

func TestLookup_UnknownNameFailsFast(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"not-a-real-error", "", "ITEM-NOT-FOUND"} {
		t.Run(name, func(t *testing.T) {
			c, err := Lookup(name)
			if err == nil {
				t.Fatalf("Lookup(%q): expected error, got %+v", name, c)
			}
			if !errors.Is(err, ErrUnknownName) {
				t.Fatalf("errors.Is(err, ErrUnknownName)=false for %v", err)
			}
			var u *UnknownNameError
			if !errors.As(err, &u) {
				t.Fatalf("errors.As(*UnknownNameError)=false for %v", err)
			}
			if u.Name != name {
				t.Fatalf("offending name: want=%q got=%q", name, u.Name)
			}
			if c != (Condition{}) {
				t.Fatalf("failed lookup leaked a condition: %+v", c)
			}
		})
	}
}

func TestConditionNames_CompleteAndStable(t *testing.T) {
	t.Parallel()

	got := ConditionNames()
	want := make([]string, 0, len(catalogTable))
	for name := range catalogTable {
		want = append(want, name)
	}
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ConditionNames() mismatch\nwant=%v\ngot =%v", want, got)
	}
}

func TestConditionNames_DefensiveCopy(t *testing.T) {
	t.Parallel()

	orig := ConditionNames()
	mut := ConditionNames()
	mut[0] = "tampered"

	after := ConditionNames()
	if !reflect.DeepEqual(after, orig) {
		t.Fatalf("ConditionNames() exposed internal slice\nwant=%v\ngot =%v", orig, after)
	}
}

func TestUnknownNameError_Message(t *testing.T) {
	t.Parallel()

	err := &UnknownNameError{Name: "bogus"}
	if got, want := err.Error(), `unknown stanza error name "bogus"`; got != want {
		t.Fatalf("Error(): want=%q got=%q", want, got)
	}
}
