// errortag.go — construction of protocol <error> payload elements.
//
// Scope:
//   - ErrorTag: the bare condition form.
//   - ErrorTagText: condition plus a human-readable diagnostic child.
//
// Both are pure constructors; the only failure mode is the catalog's
// *UnknownNameError, propagated untouched.
package stanza

// NS is the protocol namespace for stanza error conditions and their
// diagnostic text children.
const NS = "urn:ietf:params:xml:ns:xmpp-stanzas"

// ErrorTag builds the simple error payload for a symbolic name:
//
//	<error code="404" type="cancel"><item-not-found xmlns="urn:ietf:params:xml:ns:xmpp-stanzas"/></error>
//
// The symbolic name is used verbatim as the inner condition tag.
func ErrorTag(name string) (*Element, error) {
	cond, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return New("error",
		map[string]string{"code": cond.Code, "type": string(cond.Class)},
		New(name, map[string]string{"xmlns": NS}),
	), nil
}

// ErrorTagText builds the rich error payload: the condition child first, then
// a <text> sibling carrying the diagnostic in the given language. Child order
// is fixed — condition, then text. An empty lang omits the lang attribute.
func ErrorTagText(name, lang, text string) (*Element, error) {
	cond, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return New("error",
		map[string]string{"code": cond.Code, "type": string(cond.Class)},
		New(name, map[string]string{"xmlns": NS}),
		New("text", map[string]string{"lang": lang, "xmlns": NS}, Text(text)),
	), nil
}
