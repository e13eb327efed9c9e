package xmltext

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/objform/objform/debug"
	"github.com/objform/objform/ir"
)

// Parse reads one XML document into a document tree: an object with a
// single member, the root element. Element nodes are objects carrying
// attribute members, child element members in input order, and a Text
// member holding non-blank character data; an element with nothing but
// character data parses as a string leaf. Namespace declarations
// resolve onto Node.Space and do not appear as attributes.
func Parse(d []byte) (*ir.Node, error) {
	return ParseReader(bytes.NewReader(d))
}

func ParseReader(r io.Reader) (*ir.Node, error) {
	decoder := xml.NewDecoder(r)

	type frame struct {
		name string
		node *ir.Node
		text strings.Builder
	}
	var stack []*frame
	doc := ir.Object()
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("unexpected element %s after document end", t.Name.Local)
			}
			node := ir.Object()
			node.Space = t.Name.Space
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				node.SetAttr(a.Name.Local, ir.FromString(a.Value))
			}
			stack = append(stack, &frame{name: t.Name.Local, node: node})

		case xml.EndElement:
			fr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			done := finishElement(fr.node, fr.text.String())
			if len(stack) > 0 {
				stack[len(stack)-1].node.Append(fr.name, done)
			} else {
				doc.Set(fr.name, done)
				rootClosed = true
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !blank(string(t)) {
					return nil, fmt.Errorf("character data outside root element")
				}
				continue
			}
			stack[len(stack)-1].text.Write(t)
		}
	}

	if !rootClosed {
		return nil, io.ErrUnexpectedEOF
	}
	if debug.Text() {
		debug.Logf("xmltext: parsed %v\n", doc)
	}
	return doc, nil
}

// finishElement settles what a closed element is: a string leaf when it
// held nothing but character data, an object otherwise. Blank text
// inside an element with children is indentation and drops away.
func finishElement(node *ir.Node, text string) *ir.Node {
	if node.Len() == 0 {
		leaf := ir.FromString(text)
		leaf.Space = node.Space
		return leaf
	}
	if !blank(text) {
		node.Set(ir.Text, ir.FromString(text))
	}
	return node
}

func blank(s string) bool {
	for _, r := range s {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
