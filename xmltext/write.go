package xmltext

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/objform/objform/ir"
)

// Encode writes a document tree as XML. The tree must be an object
// holding the document's root elements, as produced by Parse and by
// gomap.ToIR. Attribute members render as attributes, the Text member
// as character data, everything else as child elements in tree order.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil || node.Type != ir.ObjectType {
		return fmt.Errorf("document must be an object holding the root element")
	}
	ew := &encWriter{w: w, indent: es.indent}
	if es.decl {
		ew.raw(xml.Header)
	}
	for i, f := range node.Fields {
		ew.element(f.Name, node.Values[i], "", 0)
	}
	if es.indent > 0 {
		ew.raw("\n")
	}
	return ew.err
}

// Marshal is Encode into a byte slice.
func Marshal(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func MustString(node *ir.Node) string {
	d, err := Marshal(node)
	if err != nil {
		panic(err)
	}
	return string(d)
}

type encWriter struct {
	w      io.Writer
	indent int
	err    error
}

func (ew *encWriter) raw(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *encWriter) escaped(s string) {
	if ew.err != nil {
		return
	}
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		ew.err = err
		return
	}
	_, ew.err = ew.w.Write(buf.Bytes())
}

func (ew *encWriter) newline(depth int) {
	if ew.indent == 0 {
		return
	}
	ew.raw("\n")
	for range depth * ew.indent {
		ew.raw(" ")
	}
}

// element writes one element. space is the namespace in scope; an
// xmlns attribute appears only where the node's namespace departs
// from it.
func (ew *encWriter) element(name string, node *ir.Node, space string, depth int) {
	if depth > 0 {
		ew.newline(depth)
	}
	ew.raw("<")
	ew.raw(name)
	if node != nil && node.Space != "" && node.Space != space {
		space = node.Space
		ew.raw(` xmlns="`)
		ew.escaped(space)
		ew.raw(`"`)
	}
	if node == nil || node.Type == ir.NullType {
		ew.raw("/>")
		return
	}
	if node.Type != ir.ObjectType {
		ew.raw(">")
		ew.escaped(leafText(node))
		ew.raw("</")
		ew.raw(name)
		ew.raw(">")
		return
	}

	children := 0
	for i, f := range node.Fields {
		if f.Attr {
			ew.raw(" ")
			ew.raw(f.Name)
			ew.raw(`="`)
			ew.escaped(leafText(node.Values[i]))
			ew.raw(`"`)
			continue
		}
		children++
	}
	if children == 0 {
		ew.raw("/>")
		return
	}
	ew.raw(">")
	elems := false
	for i, f := range node.Fields {
		if f.Attr {
			continue
		}
		if f.Name == ir.Text {
			ew.escaped(leafText(node.Values[i]))
			continue
		}
		elems = true
		ew.element(f.Name, node.Values[i], space, depth+1)
	}
	if elems {
		ew.newline(depth)
	}
	ew.raw("</")
	ew.raw(name)
	ew.raw(">")
}

// leafText renders a scalar node as XML character data. Booleans use
// the xsd lexical forms, numbers their lexical form when known.
func leafText(node *ir.Node) string {
	if node == nil {
		return ""
	}
	switch node.Type {
	case ir.StringType:
		return node.String
	case ir.BoolType:
		if node.Bool {
			return "true"
		}
		return "false"
	case ir.NumberType:
		return numberText(node)
	case ir.NullType:
		return ""
	default:
		return ""
	}
}

func numberText(node *ir.Node) string {
	switch {
	case node.Number != "":
		return node.Number
	case node.Int64 != nil:
		return fmt.Sprintf("%d", *node.Int64)
	case node.Float64 != nil:
		return fmt.Sprintf("%g", *node.Float64)
	default:
		return "0"
	}
}
