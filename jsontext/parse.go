package jsontext

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/objform/objform/debug"
	"github.com/objform/objform/ir"
)

// Parse reads one JSON document into a tree. Object members keep their
// input order, duplicate keys included, and numbers keep their lexical
// form.
func Parse(d []byte) (*ir.Node, error) {
	it := jsoniter.ParseBytes(jsoniter.ConfigDefault, d)
	node := parseValue(it)
	if it.Error != nil && it.Error != io.EOF {
		return nil, it.Error
	}
	if it.WhatIsNext() != jsoniter.InvalidValue {
		return nil, errors.New("trailing data after document")
	}
	if debug.Text() {
		debug.Logf("jsontext: parsed %v\n", node)
	}
	return node, nil
}

func parseValue(it *jsoniter.Iterator) *ir.Node {
	switch it.WhatIsNext() {
	case jsoniter.NilValue:
		it.ReadNil()
		return ir.Null()
	case jsoniter.BoolValue:
		return ir.FromBool(it.ReadBool())
	case jsoniter.NumberValue:
		return ir.FromNumber(string(it.ReadNumber()))
	case jsoniter.StringValue:
		return ir.FromString(it.ReadString())
	case jsoniter.ArrayValue:
		var elems []*ir.Node
		it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			elems = append(elems, parseValue(it))
			return true
		})
		return ir.FromSlice(elems)
	case jsoniter.ObjectValue:
		obj := ir.Object()
		it.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			obj.Append(field, parseValue(it))
			return true
		})
		return obj
	default:
		it.ReportError("parseValue", "invalid value")
		return ir.Null()
	}
}
