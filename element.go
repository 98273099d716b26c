// element.go — the immutable element value model for the stanza core.
//
// Scope:
//   - Element: a named node with an ordered attribute list and ordered children.
//   - Node: the child sum — either *Element or Text.
//   - New: the sole public constructor; builders elsewhere in this package
//     produce Elements through it or through the equivalent internal literal.
//
// Immutability:
//   - Elements are immutable by convention once constructed. Every builder in
//     this package returns a fresh value and never reaches into an element it
//     was handed. Accessors return defensive copies so callers cannot alias
//     internal slices.
//
// Optional values:
//   - Throughout this package the empty string stands for "absent". An
//     attribute whose value is "" is dropped at construction, never rendered
//     as name="". Omitted and empty are not wire-equivalent, so the drop
//     happens before an attribute ever exists.
package stanza

import "sort"

// Node is a child of an Element: either a nested *Element or a Text run.
// The two implementations are the closed set; nothing else satisfies it.
type Node interface {
	node()
}

// Text is a character-data child. It is escaped at serialization time;
// the stored value is the raw, unescaped text.
type Text string

func (Text) node() {}

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the protocol tree: a stanza, a payload child, an
// error tag. The zero value is not useful; construct via New or the builders.
type Element struct {
	name     string
	attrs    []Attr
	children []Node
}

func (*Element) node() {}

// New constructs an element from a tag name, an attribute mapping and an
// ordered child list. Attributes with empty values are dropped entirely.
// The mapping's iteration order is irrelevant: attributes are stored sorted
// by name, which is also the canonical wire order.
func New(name string, attrs map[string]string, children ...Node) *Element {
	var list []Attr
	if len(attrs) > 0 {
		list = make([]Attr, 0, len(attrs))
		for k, v := range attrs {
			if k == "" || v == "" {
				continue
			}
			list = append(list, Attr{Name: k, Value: v})
		}
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}
	var kids []Node
	if len(children) > 0 {
		kids = make([]Node, len(children))
		copy(kids, children)
	}
	return &Element{name: name, attrs: list, children: kids}
}

// Name returns the element's tag name.
func (e *Element) Name() string { return e.name }

// Attr returns the value of the named attribute, or "" when it is absent.
// Absent and empty collapse deliberately: this package never stores an
// empty-valued attribute, so "" is unambiguous.
func (e *Element) Attr(name string) string {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Attrs returns a copy of the attribute list in canonical (name-sorted) order.
func (e *Element) Attrs() []Attr {
	if len(e.attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// Children returns a copy of the ordered child list. The nodes themselves are
// shared; they are immutable by the package convention.
func (e *Element) Children() []Node {
	if len(e.children) == 0 {
		return nil
	}
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// Equal reports structural equality: same name, same attribute set, and
// recursively equal children in the same order. Two independently built
// elements from identical inputs compare Equal even though they are distinct
// values.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.name != other.name || len(e.attrs) != len(other.attrs) || len(e.children) != len(other.children) {
		return false
	}
	for i, a := range e.attrs {
		if other.attrs[i] != a {
			return false
		}
	}
	for i, c := range e.children {
		switch c := c.(type) {
		case Text:
			t, ok := other.children[i].(Text)
			if !ok || t != c {
				return false
			}
		case *Element:
			el, ok := other.children[i].(*Element)
			if !ok || !c.Equal(el) {
				return false
			}
		}
	}
	return true
}
