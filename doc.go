// doc.go — package documentation for stanza
//
// Package stanza assembles well-formed protocol stanzas — query units ("iq"),
// chat units ("message"), presence units ("presence") — and derives responses
// from inbound stanzas plus routing context. It is designed to be:
//   - Pure at every call site (no I/O, no shared state, no blocking)
//   - Bit-exact on the wire (canonical attribute order, strict omission rules)
//   - Policy-free (no transport, routing, logging or retry rules in core)
//
// # Construction
//
// Build is the single low-level assembler; IQ, Message, Presence and their
// error variants are thin typed constructors over it. The omission rule is
// uniform: an attribute argument that is empty is dropped entirely, never
// rendered as name="". Omitted and empty attributes are not wire-equivalent,
// so callers signal "absent" with "".
//
//	el := stanza.IQ(payload, "alice@example.com", "1", "bob@example.com", "get")
//	// <iq from="alice@example.com" id="1" to="bob@example.com" type="get">...</iq>
//
// # Error payloads
//
// The fixed catalog maps each protocol-defined symbolic error name to its
// numeric code and severity class. ErrorTag and ErrorTagText build the
// <error> payload element; IQError and MessageError compose it into a full
// stanza. A name outside the catalog is a caller defect and fails fast with
// *UnknownNameError — nothing defaults, nothing is synthesized.
//
// # Response derivation
//
// ResultFor, ErrorFor and ReplyFor derive an outbound stanza from a raw
// inbound element; the ...ForContext forms do the same from a routing
// Context, returning a copy with the Response slot filled. All derivations
// share the inversion rule: response from = inbound to, response to =
// inbound from, id copied verbatim. Absent inbound attributes stay absent on
// the response; in particular this package never generates ids.
//
// Result derivation distinguishes "no payload given" from "explicitly empty
// payload": nil reuses the inbound children, a non-nil empty slice produces
// an empty result.
//
// # Concurrency
//
// Every function is a pure function over immutable values. Concurrent
// callers need no coordination; there is no cache, lock or resource here.
//
// # Wire format
//
// Element.String renders the canonical protocol text: attributes in
// name-sorted order (from, id, to, type for the stanza subset), self-closing
// tags for childless elements, minimal escaping (& < > in text, plus " in
// attribute values). See serialize.go.
package stanza
