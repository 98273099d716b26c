// build_test.go — verification of the low-level assembler and omission rules.
package stanza

import "testing"

func TestBuild_AllAttributesPresent(t *testing.T) {
	t.Parallel()

	payload := []Node{New("query", map[string]string{"xmlns": "jabber:iq:roster"})}
	e := Build(payload, "iq", "alice@example.com", "1", "bob@example.com", "get")
	wantWire(t, e, `<iq from="alice@example.com" id="1" to="bob@example.com" type="get"><query xmlns="jabber:iq:roster"/></iq>`)
}

func TestBuild_OmissionRule(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name              string
		from, id, to, typ string
		want              string
	}{
		{"all_empty", "", "", "", "", `<iq/>`},
		{"only_id", "", "7", "", "", `<iq id="7"/>`},
		{"no_type", "a@x", "1", "b@x", "", `<iq from="a@x" id="1" to="b@x"/>`},
		{"no_to", "a@x", "1", "", "set", `<iq from="a@x" id="1" type="set"/>`},
		{"no_from", "", "1", "b@x", "get", `<iq id="1" to="b@x" type="get"/>`},
		{"no_id", "a@x", "", "b@x", "result", `<iq from="a@x" to="b@x" type="result"/>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wantWire(t, Build(nil, "iq", tc.from, tc.id, tc.to, tc.typ), tc.want)
		})
	}
}

func TestBuild_PayloadOrderPreserved(t *testing.T) {
	t.Parallel()

	e := Build([]Node{
		New("active", nil),
		Text("between"),
		New("body", nil, Text("hi")),
	}, "message", "a@x", "", "b@x", "")
	wantWire(t, e, `<message from="a@x" to="b@x"><active/>between<body>hi</body></message>`)
}

func TestBuild_DoesNotAliasPayloadSlice(t *testing.T) {
	t.Parallel()

	payload := []Node{New("query", nil)}
	e := Build(payload, "iq", "", "1", "", "get")

	payload[0] = Text("tampered")
	kids := e.Children()
	if _, ok := kids[0].(*Element); !ok {
		t.Fatalf("Build aliased the caller's payload slice")
	}
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	payload := []Node{New("query", map[string]string{"xmlns": "jabber:iq:roster"})}
	a := Build(payload, "iq", "a@x", "1", "b@x", "get")
	b := Build(payload, "iq", "a@x", "1", "b@x", "get")
	if a == b {
		t.Fatalf("expected distinct values")
	}
	if !a.Equal(b) {
		t.Fatalf("same inputs built unequal elements\na=%s\nb=%s", a, b)
	}
	if a.String() != b.String() {
		t.Fatalf("same inputs serialized differently\na=%s\nb=%s", a, b)
	}
}
