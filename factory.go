// factory.go — typed stanza constructors built on Build.
//
// Scope:
//   - IQ / Message / Presence: the three top-level stanza kinds.
//   - IQError / MessageError: their error variants, composing the catalog's
//     error tag into the payload.
//
// All constructors are pure and total over well-typed inputs; only the error
// variants can fail, by propagating *UnknownNameError from the catalog.
package stanza

// IQ builds a query stanza ("iq"). Query stanzas normally carry one of the
// types get/set/result/error; an empty typ omits the attribute.
func IQ(payload []Node, from, id, to, typ string) *Element {
	return Build(payload, "iq", from, id, to, typ)
}

// Message builds a chat stanza ("message"). The conversational type
// (chat/groupchat/normal/headline) is optional; an empty typ omits the
// attribute entirely rather than rendering type="".
func Message(payload []Node, from, id, to, typ string) *Element {
	return Build(payload, "message", from, id, to, typ)
}

// Presence builds an availability stanza ("presence"). Both to and typ are
// independently optional.
func Presence(payload []Node, from, id, to, typ string) *Element {
	return Build(payload, "presence", from, id, to, typ)
}

// IQError builds an "iq" stanza of type "error": the given payload followed
// by the simple error tag for name, appended last.
func IQError(payload []Node, name, from, id, to string) (*Element, error) {
	return buildError(payload, "iq", name, from, id, to)
}

// MessageError builds a "message" stanza of type "error", with the error tag
// appended after the existing payload.
func MessageError(payload []Node, name, from, id, to string) (*Element, error) {
	return buildError(payload, "message", name, from, id, to)
}

func buildError(payload []Node, tag, name, from, id, to string) (*Element, error) {
	et, err := ErrorTag(name)
	if err != nil {
		return nil, err
	}
	kids := make([]Node, 0, len(payload)+1)
	kids = append(kids, payload...)
	kids = append(kids, et)
	return Build(kids, tag, from, id, to, "error"), nil
}
