package gomap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/objform/objform/format"
	"github.com/objform/objform/gomap"
	"github.com/objform/objform/ir"
	"github.com/objform/objform/schema"
)

func minimalBook() *ir.Node {
	return ir.Object().
		Set("title", ir.FromString("Dune")).
		Set("isbn", ir.FromString("0441013597"))
}

func TestUnknownMember(t *testing.T) {
	m := gomap.New(bookRegistry(t))
	node := minimalBook().Set("publisher", ir.FromString("Chilton"))

	var out Book
	err := m.FromIR(node, &out, format.JSONFormat)
	var unknown *gomap.UnknownPropertyError
	if !errors.As(err, &unknown) {
		t.Fatalf("want UnknownPropertyError, got %v", err)
	}
	if unknown.Key != "publisher" || unknown.TypeName != "Book" {
		t.Errorf("error = %+v", unknown)
	}

	if err := m.FromIR(node, &out, format.JSONFormat, gomap.WithAllowUnknown(true)); err != nil {
		t.Errorf("WithAllowUnknown: %v", err)
	}
	if out.Title != "Dune" {
		t.Errorf("title = %q", out.Title)
	}
}

func TestAllowUnknownOnType(t *testing.T) {
	type Loose struct {
		A string
	}
	reg := schema.NewRegistry()
	reg.MustRegister(schema.Define("Loose", Loose{}).
		AllowUnknown().
		Prop(schema.Prop("A")))
	m := gomap.New(reg)

	node := ir.Object().
		Set("a", ir.FromString("x")).
		Set("b", ir.FromString("y"))
	var out Loose
	if err := m.FromIR(node, &out, format.JSONFormat); err != nil {
		t.Fatalf("FromIR: %v", err)
	}
	if out.A != "x" {
		t.Errorf("a = %q", out.A)
	}

	// The call option can also turn tolerance off again.
	err := m.FromIR(node, &out, format.JSONFormat, gomap.WithAllowUnknown(false))
	var unknown *gomap.UnknownPropertyError
	if !errors.As(err, &unknown) {
		t.Errorf("want UnknownPropertyError, got %v", err)
	}
}

func TestIgnoredMember(t *testing.T) {
	m := gomap.New(bookRegistry(t))
	node := minimalBook().Set("$schema", ir.FromString("https://example.com/book.json"))
	var out Book
	if err := m.FromIR(node, &out, format.JSONFormat); err != nil {
		t.Fatalf("$schema should be consumed silently: %v", err)
	}
}

func TestRequiredMissing(t *testing.T) {
	m := gomap.New(bookRegistry(t))
	node := ir.Object().Set("isbn", ir.FromString("x"))
	var out Book
	err := m.FromIR(node, &out, format.JSONFormat)
	var cons *gomap.ConstructionError
	if !errors.As(err, &cons) {
		t.Fatalf("want ConstructionError, got %v", err)
	}
	if cons.TypeName != "Book" || cons.Accessor != "Title" {
		t.Errorf("error = %+v", cons)
	}
}

func TestNullCountsAsDelivered(t *testing.T) {
	m := gomap.New(bookRegistry(t))
	node := minimalBook().Set("title", ir.Null())
	var out Book
	if err := m.FromIR(node, &out, format.JSONFormat); err != nil {
		t.Fatalf("explicit null should satisfy a required member: %v", err)
	}
	if out.Title != "" {
		t.Errorf("title = %q", out.Title)
	}
}

func TestXMLBool(t *testing.T) {
	type Flag struct {
		On bool
	}
	reg := schema.NewRegistry()
	reg.MustRegister(schema.Define("Flag", Flag{}).
		Prop(schema.Prop("On")))
	m := gomap.New(reg)

	cases := []struct {
		text    string
		want    bool
		fails   bool
	}{
		{text: "true", want: true},
		{text: "1", want: true},
		{text: "false", want: false},
		{text: "0", want: false},
		{text: "yes", fails: true},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			doc := ir.Object().Set("flag", ir.Object().Set("on", ir.FromString(c.text)))
			var out Flag
			err := m.FromIR(doc, &out, format.XMLFormat)
			if c.fails {
				var conv *gomap.ValueConversionError
				if !errors.As(err, &conv) {
					t.Fatalf("want ValueConversionError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromIR: %v", err)
			}
			if out.On != c.want {
				t.Errorf("on = %v", out.On)
			}
		})
	}
}

func TestJSONBoolFromStringFails(t *testing.T) {
	type Flag struct {
		On bool
	}
	reg := schema.NewRegistry()
	reg.MustRegister(schema.Define("Flag", Flag{}).
		Prop(schema.Prop("On")))
	m := gomap.New(reg)

	node := ir.Object().Set("on", ir.FromString("true"))
	var out Flag
	err := m.FromIR(node, &out, format.JSONFormat)
	var conv *gomap.ValueConversionError
	if !errors.As(err, &conv) {
		t.Fatalf("want ValueConversionError, got %v", err)
	}
	if conv.Path != "on" {
		t.Errorf("path = %q", conv.Path)
	}
}

func TestEmptyElement(t *testing.T) {
	type Mixed struct {
		Name  string
		Count int
		Score *float64
	}
	reg := schema.NewRegistry()
	reg.MustRegister(schema.Define("Mixed", Mixed{}).
		Prop(schema.Prop("Name")).
		Prop(schema.Prop("Count").Optional()).
		Prop(schema.Prop("Score")))
	m := gomap.New(reg)

	// <mixed><name/><count/><score/></mixed>: empty elements are present
	// but carry no value; only the string keeps the empty text.
	doc := ir.Object().Set("mixed", ir.Object().
		Set("name", ir.FromString("")).
		Set("count", ir.FromString("")).
		Set("score", ir.FromString("")))
	var out Mixed
	if err := m.FromIR(doc, &out, format.XMLFormat); err != nil {
		t.Fatalf("FromIR: %v", err)
	}
	if out.Name != "" || out.Count != 0 || out.Score != nil {
		t.Errorf("out = %+v", out)
	}
}

func TestNumericParsing(t *testing.T) {
	type Nums struct {
		I8 int8
		U  uint16
		F  float32
	}
	reg := schema.NewRegistry()
	reg.MustRegister(schema.Define("Nums", Nums{}).
		Prop(schema.Prop("I8").Optional()).
		Prop(schema.Prop("U").Optional()).
		Prop(schema.Prop("F").Optional()))
	m := gomap.New(reg)

	t.Run("fits", func(t *testing.T) {
		node := ir.Object().
			Set("i8", ir.FromInt(100)).
			Set("u", ir.FromInt(65535)).
			Set("f", ir.FromFloat(1.5))
		var out Nums
		if err := m.FromIR(node, &out, format.JSONFormat); err != nil {
			t.Fatalf("FromIR: %v", err)
		}
		if out.I8 != 100 || out.U != 65535 || out.F != 1.5 {
			t.Errorf("out = %+v", out)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		node := ir.Object().Set("i8", ir.FromInt(300))
		var out Nums
		err := m.FromIR(node, &out, format.JSONFormat)
		var conv *gomap.ValueConversionError
		if !errors.As(err, &conv) {
			t.Fatalf("want ValueConversionError, got %v", err)
		}
		if !strings.Contains(conv.Error(), "overflows") {
			t.Errorf("error = %v", conv)
		}
	})

	t.Run("negative into unsigned", func(t *testing.T) {
		node := ir.Object().Set("u", ir.FromInt(-1))
		var out Nums
		err := m.FromIR(node, &out, format.JSONFormat)
		var conv *gomap.ValueConversionError
		if !errors.As(err, &conv) {
			t.Fatalf("want ValueConversionError, got %v", err)
		}
	})

	t.Run("xml lexical", func(t *testing.T) {
		doc := ir.Object().Set("nums", ir.Object().
			Set("i8", ir.FromString("-7")).
			Set("u", ir.FromString("42")).
			Set("f", ir.FromString("2.25")))
		var out Nums
		if err := m.FromIR(doc, &out, format.XMLFormat); err != nil {
			t.Fatalf("FromIR: %v", err)
		}
		if out.I8 != -7 || out.U != 42 || out.F != 2.25 {
			t.Errorf("out = %+v", out)
		}
	})
}

func TestShapeMismatch(t *testing.T) {
	m := gomap.New(bookRegistry(t))

	t.Run("scalar for array", func(t *testing.T) {
		node := minimalBook().Set("chapters", ir.FromString("not a list"))
		var out Book
		err := m.FromIR(node, &out, format.JSONFormat)
		var conv *gomap.ValueConversionError
		if !errors.As(err, &conv) {
			t.Fatalf("want ValueConversionError, got %v", err)
		}
		if conv.Path != "chapters" {
			t.Errorf("path = %q", conv.Path)
		}
	})

	t.Run("leaf for object", func(t *testing.T) {
		node := minimalBook().Set("chapters", ir.FromSlice([]*ir.Node{
			ir.FromInt(3),
		}))
		var out Book
		err := m.FromIR(node, &out, format.JSONFormat)
		var conv *gomap.ValueConversionError
		if !errors.As(err, &conv) {
			t.Fatalf("want ValueConversionError, got %v", err)
		}
		if conv.Path != "chapters[0]" {
			t.Errorf("path = %q", conv.Path)
		}
	})
}

func TestErrorPaths(t *testing.T) {
	m := gomap.New(bookRegistry(t))
	node := minimalBook().Set("chapters", ir.FromSlice([]*ir.Node{
		ir.Object().Set("title", ir.FromString("ok")),
		ir.Object().Set("title", ir.FromString("bad")).Set("pages", ir.FromString("many")),
	}))
	var out Book
	err := m.FromIR(node, &out, format.JSONFormat)
	var conv *gomap.ValueConversionError
	if !errors.As(err, &conv) {
		t.Fatalf("want ValueConversionError, got %v", err)
	}
	if conv.Path != "chapters[1].pages" {
		t.Errorf("path = %q", conv.Path)
	}
}

func TestFlatElementErrorPath(t *testing.T) {
	type Scores struct {
		Points []int
	}
	reg := schema.NewRegistry()
	reg.MustRegister(schema.Define("Scores", Scores{}).
		Prop(schema.Prop("Points").Flat("point")))
	m := gomap.New(reg)

	doc := ir.Object().Set("scores", ir.Object().
		Append("point", ir.FromString("12")).
		Append("point", ir.FromString("twelve")))
	var out Scores
	err := m.FromIR(doc, &out, format.XMLFormat)
	var conv *gomap.ValueConversionError
	if !errors.As(err, &conv) {
		t.Fatalf("want ValueConversionError, got %v", err)
	}
	// The path names the repeated element as it appears in the input.
	if conv.Path != "point[1]" {
		t.Errorf("path = %q", conv.Path)
	}
}

func TestDestinationValidation(t *testing.T) {
	m := gomap.New(bookRegistry(t))
	node := minimalBook()

	if err := m.FromIR(node, nil, format.JSONFormat); err == nil {
		t.Error("nil destination accepted")
	}
	var b Book
	if err := m.FromIR(node, b, format.JSONFormat); err == nil {
		t.Error("non-pointer destination accepted")
	}
	var pb *Book
	if err := m.FromIR(node, pb, format.JSONFormat); err == nil {
		t.Error("nil pointer destination accepted")
	}
}

func TestXMLDocumentShape(t *testing.T) {
	m := gomap.New(bookRegistry(t))
	var out Book
	err := m.FromIR(ir.FromString("loose"), &out, format.XMLFormat)
	var conv *gomap.ValueConversionError
	if !errors.As(err, &conv) {
		t.Fatalf("want ValueConversionError, got %v", err)
	}
	if !strings.Contains(conv.Error(), "root element") {
		t.Errorf("error = %v", conv)
	}
}

func TestNullDocument(t *testing.T) {
	m := gomap.New(bookRegistry(t))
	out := Book{Title: "left alone"}
	if err := m.FromIR(ir.Null(), &out, format.JSONFormat); err != nil {
		t.Fatalf("FromIR: %v", err)
	}
	if out.Title != "left alone" {
		t.Errorf("null document should not touch the destination, got %+v", out)
	}
}
