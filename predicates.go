// predicates.go — small stdlib-aligned predicates for the stanza core.
//
// Scope:
//   - Zero-policy helpers answering common classification questions about
//     stanzas and about this package's one failure kind.
//   - Interop-first: error checks go through errors.Is / errors.As so
//     wrapped chains are traversed.
package stanza

import "errors"

// IsUnknownName reports whether err is (or wraps) the catalog's
// unknown-name failure.
func IsUnknownName(err error) bool {
	return errors.Is(err, ErrUnknownName)
}

// UnknownNameOf returns the offending symbolic name carried by err, or ""
// when err is not an unknown-name failure.
func UnknownNameOf(err error) string {
	var u *UnknownNameError
	if errors.As(err, &u) {
		return u.Name
	}
	return ""
}

// IsErrorStanza reports whether e is a stanza of type "error".
func IsErrorStanza(e *Element) bool {
	return e != nil && e.Attr("type") == "error"
}

// IsResultStanza reports whether e is a query stanza of type "result".
func IsResultStanza(e *Element) bool {
	return e != nil && e.name == "iq" && e.Attr("type") == "result"
}
