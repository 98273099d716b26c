// derive.go — response derivation from an inbound stanza.
//
// Scope:
//   - ResultFor / ErrorFor / ReplyFor: derive from a raw inbound Element.
//   - ResultForContext / ErrorForContext / ReplyForContext: derive from a
//     routing Context and fill its Response slot (functional update).
//
// Every derivation is independent and stateless. The shared rules:
//   - Address inversion: response from = inbound to, response to = inbound
//     from. The correlation id is copied unchanged; an inbound stanza with no
//     id yields a response with no id. This package never generates ids.
//   - Omission propagates everywhere: absent inbound attributes stay absent
//     on the response, never substituted.
//   - Materialization goes through Build, so the attribute omission rule is
//     applied uniformly.
package stanza

// ResultFor derives the result response for an inbound query stanza: tag name
// mirrored from the inbound element, addresses inverted, id copied, type
// fixed to "result".
//
// A nil payload reuses the inbound children verbatim; a non-nil payload —
// including an explicit empty slice — is used as given and suppresses the
// fallback. The two cases are distinct on the wire: nil echoes the query
// child back, []Node{} produces an empty result.
func ResultFor(in *Element, payload []Node) *Element {
	if payload == nil {
		payload = in.children
	}
	return Build(payload, in.name, in.Attr("to"), in.Attr("id"), in.Attr("from"), "result")
}

// ResultForContext is ResultFor over a routing Context: addressing comes from
// the record (To/From inverted, ID copied), payload fallback comes from
// Inbound. The returned Context is a copy with Response filled; the receiver
// and its inbound element are unchanged. With a nil Inbound the stanza tag
// defaults to "iq" and the nil-payload fallback contributes no children.
func ResultForContext(ctx Context, payload []Node) Context {
	name := "iq"
	if ctx.Inbound != nil {
		name = ctx.Inbound.name
		if payload == nil {
			payload = ctx.Inbound.children
		}
	}
	return ctx.withResponse(Build(payload, name, ctx.To, ctx.ID, ctx.From, "result"))
}

// ErrorFor derives the error response for an inbound stanza: the inbound
// payload is kept and the simple error tag for name is appended after it,
// addresses inverted, id copied, type fixed to "error". An unknown symbolic
// name propagates *UnknownNameError and produces no element.
func ErrorFor(in *Element, name string) (*Element, error) {
	et, err := ErrorTag(name)
	if err != nil {
		return nil, err
	}
	return Build(appendNode(in.children, et), in.name, in.Attr("to"), in.Attr("id"), in.Attr("from"), "error"), nil
}

// ErrorForContext is ErrorFor over a routing Context. On lookup failure the
// context is returned unchanged alongside the error.
func ErrorForContext(ctx Context, name string) (Context, error) {
	et, err := ErrorTag(name)
	if err != nil {
		return ctx, err
	}
	tag := "iq"
	var inbound []Node
	if ctx.Inbound != nil {
		tag = ctx.Inbound.name
		inbound = ctx.Inbound.children
	}
	return ctx.withResponse(Build(appendNode(inbound, et), tag, ctx.To, ctx.ID, ctx.From, "error")), nil
}

// ReplyFor derives a conversational reply: addresses inverted and id copied
// as usual, but the type is copied from the inbound stanza itself, modelling
// "reply with the same conversation type". An inbound stanza with no type
// yields a reply with no type; nothing coerces a default.
func ReplyFor(in *Element, payload []Node) *Element {
	return Build(payload, in.name, in.Attr("to"), in.Attr("id"), in.Attr("from"), in.Attr("type"))
}

// ReplyForContext is ReplyFor over a routing Context; the reply type comes
// from the record's Type field. With a nil Inbound the stanza tag defaults to
// "message", the conversational kind replies are for.
func ReplyForContext(ctx Context, payload []Node) Context {
	name := "message"
	if ctx.Inbound != nil {
		name = ctx.Inbound.name
	}
	return ctx.withResponse(Build(payload, name, ctx.To, ctx.ID, ctx.From, ctx.Type))
}

// appendNode returns a fresh slice of base followed by n; base is never
// aliased, so an inbound element's child list cannot leak into a response.
func appendNode(base []Node, n Node) []Node {
	out := make([]Node, 0, len(base)+1)
	out = append(out, base...)
	out = append(out, n)
	return out
}
