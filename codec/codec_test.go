package codec

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/objform/objform/format"
	"github.com/objform/objform/ir"
)

func TestRFC3339Time(t *testing.T) {
	c := RFC3339Time{}
	in := time.Date(2021, 9, 8, 12, 0, 0, 500000000, time.UTC)
	n, err := c.Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	if n.String != "2021-09-08T12:00:00.5Z" {
		t.Errorf("encoded %q", n.String)
	}
	out, err := c.Decode(n)
	if err != nil {
		t.Fatal(err)
	}
	if !out.(time.Time).Equal(in) {
		t.Errorf("round trip: %v != %v", out, in)
	}
}

func TestXSDDateTime(t *testing.T) {
	c := XSDDateTime{}
	t.Run("whole seconds drop the fraction", func(t *testing.T) {
		in := time.Date(2001, 9, 11, 12, 36, 0, 0, time.UTC)
		n, err := c.Encode(in)
		if err != nil {
			t.Fatal(err)
		}
		if n.String != "2001-09-11T12:36:00Z" {
			t.Errorf("encoded %q", n.String)
		}
	})
	t.Run("fractions survive", func(t *testing.T) {
		in := time.Date(2001, 9, 11, 12, 36, 0, 120000000, time.UTC)
		n, err := c.Encode(in)
		if err != nil {
			t.Fatal(err)
		}
		if n.String != "2001-09-11T12:36:00.12Z" {
			t.Errorf("encoded %q", n.String)
		}
	})
	t.Run("zone-less input is UTC", func(t *testing.T) {
		out, err := c.Decode(ir.FromString("2001-09-11T12:36:00"))
		if err != nil {
			t.Fatal(err)
		}
		want := time.Date(2001, 9, 11, 12, 36, 0, 0, time.UTC)
		if !out.(time.Time).Equal(want) {
			t.Errorf("decoded %v, expected %v", out, want)
		}
	})
}

func TestXSDDate(t *testing.T) {
	c := XSDDate{}
	n, err := c.Encode(time.Date(2018, 4, 16, 23, 59, 59, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if n.String != "2018-04-16" {
		t.Errorf("encoded %q", n.String)
	}
	for _, in := range []string{"2018-04-16", "2018-04-16Z", "2018-04-16+01:00"} {
		out, err := c.Decode(ir.FromString(in))
		if err != nil {
			t.Fatalf("decode %q: %v", in, err)
		}
		want := time.Date(2018, 4, 16, 0, 0, 0, 0, time.UTC)
		if !out.(time.Time).Equal(want) {
			t.Errorf("decode %q = %v, expected %v", in, out, want)
		}
	}
}

func TestDecimalKeepsPrecision(t *testing.T) {
	c := Decimal{}
	d := decimal.RequireFromString("123.456789012345678901")
	n, err := c.Encode(d)
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != ir.NumberType || n.Number != "123.456789012345678901" {
		t.Errorf("encoded %v %q", n.Type, n.Number)
	}
	out, err := c.Decode(n)
	if err != nil {
		t.Fatal(err)
	}
	if !out.(decimal.Decimal).Equal(d) {
		t.Errorf("round trip: %v != %v", out, d)
	}
	// XML side hands text instead of numbers
	out, err = c.Decode(ir.FromString("123.456789012345678901"))
	if err != nil {
		t.Fatal(err)
	}
	if !out.(decimal.Decimal).Equal(d) {
		t.Errorf("string decode: %v != %v", out, d)
	}
}

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup(reflect.TypeOf(time.Time{})); !ok {
		t.Errorf("expected a default time.Time codec")
	}
	if _, ok := r.Lookup(reflect.TypeOf(decimal.Decimal{})); !ok {
		t.Errorf("expected a default decimal codec")
	}
	if _, ok := r.Lookup(reflect.TypeOf("")); ok {
		t.Errorf("string should have no codec")
	}
	r.RegisterFor(time.Time{}, XSDDate{})
	c, _ := r.Lookup(reflect.TypeOf(time.Time{}))
	if _, ok := c.(XSDDate); !ok {
		t.Errorf("RegisterFor did not replace the default codec")
	}
}

// upperCodec tags JSON renderings, to exercise format-specific refinement
// dispatch.
type upperCodec struct{}

func (upperCodec) Encode(v any) (*ir.Node, error)  { return ir.FromString(v.(string)), nil }
func (upperCodec) Decode(n *ir.Node) (any, error)  { return n.String, nil }
func (upperCodec) EncodeJSON(v any) (*ir.Node, error) {
	return ir.FromString("json:" + v.(string)), nil
}
func (upperCodec) DecodeJSON(n *ir.Node) (any, error) { return n.String[len("json:"):], nil }

func TestFormatDispatch(t *testing.T) {
	var c Codec = upperCodec{}
	n, err := Encode(c, format.JSONFormat, "x")
	if err != nil {
		t.Fatal(err)
	}
	if n.String != "json:x" {
		t.Errorf("JSON encode did not use the refinement: %q", n.String)
	}
	n, err = Encode(c, format.XMLFormat, "x")
	if err != nil {
		t.Fatal(err)
	}
	if n.String != "x" {
		t.Errorf("XML encode should fall back to base: %q", n.String)
	}
	v, err := Decode(c, format.JSONFormat, ir.FromString("json:y"))
	if err != nil {
		t.Fatal(err)
	}
	if v != "y" {
		t.Errorf("JSON decode did not use the refinement: %q", v)
	}
}
