// catalog.go — the fixed stanza error catalog for the stanza core.
//
// Intent:
//   - Map each protocol-defined symbolic error name to its legacy numeric
//     code and severity class, exactly as existing deployments expect.
//   - Keep the set closed: the table is process-wide immutable, there is no
//     runtime registration, and an unrecognized name is a caller defect that
//     fails fast rather than defaulting.
//
// Conventions:
//   - Names are the lowercase hyphenated condition names from the protocol.
//   - Codes are 3-digit numeric strings; they are wire text, not integers.
package stanza

import (
	"errors"
	"fmt"
	"sort"
)

// Class is a protocol-mandated error severity class. It tells the receiving
// client how to react: retry after changing the request (modify), retry later
// (wait), give up (cancel), or re-authenticate (auth).
type Class string

// The five protocol severity classes. ClassContinue is defined by the
// protocol and reserved here even though no entry of the fixed table uses it.
const (
	ClassAuth     Class = "auth"
	ClassCancel   Class = "cancel"
	ClassContinue Class = "continue"
	ClassModify   Class = "modify"
	ClassWait     Class = "wait"
)

// Condition is the catalog entry for one symbolic error name: the numeric
// code rendered on the wire and the severity class.
type Condition struct {
	Code  string
	Class Class
}

// conditions is the fixed catalog. No entry has a fallback, so none is
// synthesized: lookups outside this set fail with *UnknownNameError.
var conditions = map[string]Condition{
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

// ConditionNames returns the recognized symbolic names in a stable
// (lexicographic) order. The slice is a defensive copy; mutating it does not
// affect the catalog.
func ConditionNames() []string {
	out := make([]string, 0, len(conditions))
	for name := range conditions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup resolves a symbolic error name to its catalog entry. It is total
// over the closed catalog set; any other name returns a *UnknownNameError
// (matchable with errors.Is against ErrUnknownName). Callers hitting that
// error passed an invalid protocol identifier — a contract bug, not a
// runtime condition to be absorbed.
func Lookup(name string) (Condition, error) {
	c, ok := conditions[name]
	if !ok {
		return Condition{}, &UnknownNameError{Name: name}
	}
	return c, nil
}

// ErrUnknownName is the sentinel every *UnknownNameError matches via
// errors.Is. Use it when the offending name does not matter; use errors.As
// with *UnknownNameError to recover it.
var ErrUnknownName = errors.New("unknown stanza error name")

// UnknownNameError reports a symbolic error name outside the fixed catalog.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown stanza error name %q", e.Name)
}

// Is lets errors.Is(err, ErrUnknownName) succeed for any UnknownNameError.
func (e *UnknownNameError) Is(target error) bool { return target == ErrUnknownName }
