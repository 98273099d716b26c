// context.go — the routing context record.
//
// A Context correlates one inbound stanza with its routing metadata and holds
// the slot the derivation functions fill with the outbound response. The
// record is owned by the routing layer; this package treats it as a value and
// performs functional updates only — derivations return a new Context with
// Response set and never touch the inbound element.
package stanza

// Context carries the addressing and correlation state of one inbound stanza.
//
// From and To are the inbound sender and recipient addresses, opaque strings
// to this package. ID is the correlation id copied verbatim onto any derived
// response. Type is the inbound stanza's own type, used by reply derivation.
// Inbound is the received element; Response is where derivations place the
// outbound stanza.
type Context struct {
	From string
	To   string
	ID   string
	Type string

	Inbound  *Element
	Response *Element
}

// withResponse returns a copy of the context with the response slot filled.
func (c Context) withResponse(e *Element) Context {
	c.Response = e
	return c
}
