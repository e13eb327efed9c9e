package jsontext

import (
	"bytes"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/objform/objform/ir"
)

// Encode writes the tree as JSON. Object members emit in tree order;
// numbers with a lexical form reproduce it byte for byte. Attribute
// markers and namespaces on the tree are ignored.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	cfg := jsoniter.Config{
		IndentionStep: es.indent,
		EscapeHTML:    es.escapeHTML,
	}.Froze()
	stream := cfg.BorrowStream(w)
	defer cfg.ReturnStream(stream)
	encode(node, stream)
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
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

func encode(node *ir.Node, s *jsoniter.Stream) {
	switch node.Type {
	case ir.NullType:
		s.WriteNil()
	case ir.BoolType:
		s.WriteBool(node.Bool)
	case ir.NumberType:
		encodeNumber(node, s)
	case ir.StringType:
		s.WriteString(node.String)
	case ir.ArrayType:
		s.WriteArrayStart()
		for i, v := range node.Values {
			if i > 0 {
				s.WriteMore()
			}
			encode(v, s)
		}
		s.WriteArrayEnd()
	case ir.ObjectType:
		s.WriteObjectStart()
		for i, f := range node.Fields {
			if i > 0 {
				s.WriteMore()
			}
			s.WriteObjectField(f.Name)
			encode(node.Values[i], s)
		}
		s.WriteObjectEnd()
	}
}

func encodeNumber(node *ir.Node, s *jsoniter.Stream) {
	switch {
	case node.Number != "":
		s.WriteRaw(node.Number)
	case node.Int64 != nil:
		s.WriteInt64(*node.Int64)
	case node.Float64 != nil:
		s.WriteFloat64(*node.Float64)
	default:
		s.WriteRaw("0")
	}
}
