// serialize.go — canonical wire rendering for elements.
//
// Behavior:
//
//	%s, %v  → the wire string (String()).
//	%q      → the wire string, quoted.
//
// Wire contract (interop-critical, must stay bit-exact):
//   - Attributes render in name-sorted order. For the stanza attribute set
//     this yields from, id, to, type — whichever subset is present, in that
//     relative order, regardless of construction order.
//   - An element with no children renders self-closing (<tag/>); otherwise
//     explicit open/close tags wrap the children in their given order.
//   - Escaping is minimal: & < > in text, plus " in attribute values.
package stanza

import (
	"fmt"
	"strings"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// String renders the element and its subtree as protocol text.
func (e *Element) String() string {
	var sb strings.Builder
	e.writeTo(&sb)
	return sb.String()
}

// Format implements fmt.Formatter. %v and %s emit the wire string; %q emits
// it quoted. Other verbs fall back to the %s rendering.
func (e *Element) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(f, "%q", e.String())
	default:
		_, _ = f.Write([]byte(e.String()))
	}
}

func (e *Element) writeTo(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.name)
	for _, a := range e.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		_, _ = attrEscaper.WriteString(sb, a.Value)
		sb.WriteByte('"')
	}
	if len(e.children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, c := range e.children {
		switch c := c.(type) {
		case Text:
			_, _ = textEscaper.WriteString(sb, string(c))
		case *Element:
			c.writeTo(sb)
		}
	}
	sb.WriteString("</")
	sb.WriteString(e.name)
	sb.WriteByte('>')
}
