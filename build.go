// build.go — the single low-level stanza assembler.
//
// Every stanza constructor in this package routes through Build. The
// attribute omission rule lives here and only here: an omitted attribute and
// an empty-string attribute are not wire-equivalent, so absent inputs must
// never surface as name="".
package stanza

import "sort"

// attrList accumulates optional attributes in an explicit order, dropping
// absent (empty) values at the point of the set call rather than relying on
// map semantics.
type attrList []Attr

func (l attrList) set(name, value string) attrList {
	if value == "" {
		return l
	}
	return append(l, Attr{Name: name, Value: value})
}

// Build assembles <name ...>payload</name> from an ordered payload and the
// four stanza attributes. Each of id/from/to/typ is included iff non-empty.
// Payload children are appended in the given order, unmodified; the slice is
// copied so the caller's backing array is never aliased.
func Build(payload []Node, name, from, id, to, typ string) *Element {
	attrs := make(attrList, 0, 4)
	attrs = attrs.set("id", id)
	attrs = attrs.set("from", from)
	attrs = attrs.set("to", to)
	attrs = attrs.set("type", typ)
	// Canonical storage order is name-sorted, same as New.
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })

	var kids []Node
	if len(payload) > 0 {
		kids = make([]Node, len(payload))
		copy(kids, payload)
	}
	return &Element{name: name, attrs: attrs, children: kids}
}
