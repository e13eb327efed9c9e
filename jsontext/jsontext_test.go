package jsontext_test

import (
	"strings"
	"testing"

	"github.com/objform/objform/ir"
	"github.com/objform/objform/jsontext"
)

func TestRoundTrip(t *testing.T) {
	cases := []string{
		`null`,
		`true`,
		`false`,
		`0`,
		`-12`,
		`1.50`,
		`1e3`,
		`123456789012345678901234567890`,
		`"hello"`,
		`"with \"quotes\" and \n newline"`,
		`[]`,
		`[1,2,3]`,
		`{}`,
		`{"z":1,"a":2}`,
		`{"nested":{"list":[true,null,"x"],"n":3.14}}`,
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			node, err := jsontext.Parse([]byte(in))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			out, err := jsontext.Marshal(node)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(out) != in {
				t.Errorf("got %s, want %s", out, in)
			}
		})
	}
}

func TestMemberOrderKept(t *testing.T) {
	node, err := jsontext.Parse([]byte(`{"zulu":1,"alpha":2,"mike":3}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var names []string
	for _, f := range node.Fields {
		names = append(names, f.Name)
	}
	want := []string{"zulu", "alpha", "mike"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v", names)
		}
	}
}

func TestDuplicateKeysSurvive(t *testing.T) {
	node, err := jsontext.Parse([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if node.Len() != 2 {
		t.Fatalf("members = %d", node.Len())
	}
	if *node.Values[0].Int64 != 1 || *node.Values[1].Int64 != 2 {
		t.Errorf("values = %v", ir.ToAny(node))
	}
}

func TestLexicalNumbers(t *testing.T) {
	node, err := jsontext.Parse([]byte(`{"price":1.50,"big":9007199254740993}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	price := ir.Get(node, "price")
	if price.Number != "1.50" {
		t.Errorf("price lexical = %q", price.Number)
	}
	big := ir.Get(node, "big")
	if big.Int64 == nil || *big.Int64 != 9007199254740993 {
		t.Errorf("big = %v", big)
	}
	out := jsontext.MustString(node)
	if out != `{"price":1.50,"big":9007199254740993}` {
		t.Errorf("out = %s", out)
	}
}

func TestIndent(t *testing.T) {
	node := ir.Object().
		Set("a", ir.FromInt(1)).
		Set("b", ir.FromSlice([]*ir.Node{ir.FromString("x")}))
	d, err := jsontext.Marshal(node, jsontext.Indent(2))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": [\n    \"x\"\n  ]\n}"
	if string(d) != want {
		t.Errorf("got:\n%s\nwant:\n%s", d, want)
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		`{`,
		`{"a":}`,
		`[1,`,
		`"unterminated`,
		`{"a":1}{"b":2}`,
	}
	for _, in := range bad {
		t.Run(in, func(t *testing.T) {
			if _, err := jsontext.Parse([]byte(in)); err == nil {
				t.Errorf("accepted %q", in)
			}
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	node := ir.FromString("<b>&</b>")
	plain := jsontext.MustString(node)
	if plain != `"<b>&</b>"` {
		t.Errorf("plain = %s", plain)
	}
	d, err := jsontext.Marshal(node, jsontext.EscapeHTML(true))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(d), `<`) {
		t.Errorf("escaped = %s", d)
	}
}
