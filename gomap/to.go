package gomap

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/objform/objform/codec"
	"github.com/objform/objform/debug"
	"github.com/objform/objform/ir"
	"github.com/objform/objform/schema"
)

// object converts one registered struct value, unwrapping pointers and
// guarding against cycles at each pointer crossing.
func (w *walker) object(val reflect.Value, path string) (*ir.Node, error) {
	switch val.Kind() {
	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return w.object(val.Elem(), path)
	case reflect.Pointer:
		if val.IsNil() {
			return ir.Null(), nil
		}
		addr := val.Pointer()
		if first, seen := w.visited[addr]; seen {
			return nil, &CyclicGraphError{Path: path, First: first}
		}
		w.visited[addr] = path
		node, err := w.object(val.Elem(), path)
		delete(w.visited, addr)
		return node, err
	}
	td, err := w.m.reg.LookupType(val.Type())
	if err != nil {
		return nil, err
	}
	return w.structNode(val, td, path)
}

// nested converts an object-kind property value under its descriptor's
// type reference.
func (w *walker) nested(p *schema.Property, val reflect.Value, path string) (*ir.Node, error) {
	switch val.Kind() {
	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return w.nested(p, val.Elem(), path)
	case reflect.Pointer:
		if val.IsNil() {
			return ir.Null(), nil
		}
		addr := val.Pointer()
		if first, seen := w.visited[addr]; seen {
			return nil, &CyclicGraphError{Path: path, First: first}
		}
		w.visited[addr] = path
		defer delete(w.visited, addr)
		val = val.Elem()
	}
	td, err := p.Ref.Resolve()
	if err != nil {
		return nil, err
	}
	if val.Type() != td.GoType {
		return nil, &ValueConversionError{Path: path,
			Message: fmt.Sprintf("value type %s does not match %q", val.Type(), td.Name)}
	}
	return w.structNode(val, td, path)
}

func (w *walker) structNode(val reflect.Value, td *schema.TypeDef, path string) (*ir.Node, error) {
	if debug.Walk() {
		debug.Logf("gomap: to %s at %q\n", td.Name, path)
	}
	prevSpace := w.space
	if td.Space != "" {
		w.space = td.Space
	}
	defer func() { w.space = prevSpace }()

	// A type with text content renders as the bare content value in JSON.
	if w.f.IsJSON() {
		if tp := td.TextProp(); tp != nil {
			fv := tp.Field(val)
			if w.present(tp, fv) {
				return w.propNode(tp, fv, path)
			}
		}
	}

	obj := ir.Object()
	if w.f.IsXML() {
		obj.Space = w.space
	}
	for _, p := range td.Order(w.f) {
		if w.f.IsJSON() && p.Text {
			continue
		}
		fv := p.Field(val)
		wirePath := joinPath(path, p.WireName(w.f))
		if p.Text {
			wirePath = path
		}
		if !w.present(p, fv) {
			none, include := w.resolveNone(p)
			if !include {
				continue
			}
			w.place(obj, p, none)
			continue
		}
		if p.Kind.IsArray() {
			if err := w.placeArray(obj, p, fv, wirePath); err != nil {
				return nil, err
			}
			continue
		}
		node, err := w.propNode(p, fv, wirePath)
		if err != nil {
			return nil, err
		}
		w.place(obj, p, node)
	}
	return obj, nil
}

// place adds a single-valued member to obj under p's wire identity.
func (w *walker) place(obj *ir.Node, p *schema.Property, node *ir.Node) {
	if w.f.IsJSON() {
		obj.Set(p.JSONName, node)
		return
	}
	switch {
	case p.Text:
		obj.Set(ir.Text, node)
	case p.XMLAttribute:
		obj.SetAttr(p.XMLName, node)
	case p.Kind.IsArray() && p.Shape == schema.FlatShape:
		// a flat array has no wrapper to render a null into
	default:
		obj.Set(p.XMLName, node)
	}
}

func (w *walker) placeArray(obj *ir.Node, p *schema.Property, list reflect.Value, path string) error {
	if list.Kind() == reflect.Pointer {
		list = list.Elem()
	}
	addr := list.Pointer()
	if first, seen := w.visited[addr]; seen {
		return &CyclicGraphError{Path: path, First: first}
	}
	w.visited[addr] = path
	defer delete(w.visited, addr)

	n := list.Len()
	elems := make([]*ir.Node, n)
	for i := range n {
		node, err := w.propNode(p, list.Index(i), elemPath(path, i))
		if err != nil {
			return err
		}
		elems[i] = node
	}
	if w.f.IsJSON() {
		obj.Set(p.JSONName, ir.FromSlice(elems))
		return nil
	}
	if p.Shape == schema.FlatShape {
		for _, e := range elems {
			obj.Append(p.ChildName, e)
		}
		return nil
	}
	wrap := ir.Object()
	wrap.Space = obj.Space
	for _, e := range elems {
		wrap.Append(p.ChildName, e)
	}
	obj.Set(p.XMLName, wrap)
	return nil
}

// propNode converts one value of the property, an element of it for
// array kinds.
func (w *walker) propNode(p *schema.Property, v reflect.Value, path string) (*ir.Node, error) {
	switch p.Kind.Elem() {
	case schema.ObjectKind:
		return w.nested(p, v, path)
	case schema.EnumKind:
		return w.enumNode(p, v, path)
	default:
		return w.leaf(p, v, path)
	}
}

func (w *walker) enumNode(p *schema.Property, v reflect.Value, path string) (*ir.Node, error) {
	v, ok := deref(v)
	if !ok {
		return ir.Null(), nil
	}
	wire, err := p.Enum.Wire(v.Interface())
	if err != nil {
		return nil, &ValueConversionError{Path: path, Message: "cannot map enum value", Err: err}
	}
	return ir.FromString(wire), nil
}

func (w *walker) leaf(p *schema.Property, v reflect.Value, path string) (*ir.Node, error) {
	v, ok := deref(v)
	if !ok {
		return ir.Null(), nil
	}
	if c := w.codecFor(p); c != nil {
		node, err := codec.Encode(c, w.f, v.Interface())
		if err != nil {
			return nil, &ValueConversionError{Path: path, Message: "codec failed", Err: err}
		}
		return node, nil
	}
	switch v.Kind() {
	case reflect.Bool:
		return ir.FromBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt64 {
			return ir.FromNumber(strconv.FormatUint(u, 10)), nil
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(v.Float()), nil
	case reflect.String:
		s := v.String()
		if w.f.IsXML() {
			s = normalizeString(s, p.StringKind)
		}
		return ir.FromString(s), nil
	}
	return nil, &UnsupportedTypeError{Path: path, GoType: v.Type()}
}

// codecFor resolves the codec converting p's leaf values, the pinned
// one or the registry's by element type.
func (w *walker) codecFor(p *schema.Property) codec.Codec {
	if p.Codec != nil {
		return p.Codec
	}
	if c, ok := w.m.reg.Codecs().Lookup(p.ElemType()); ok {
		return c
	}
	return nil
}

// present reports whether a field value counts as set. Array kinds
// treat empty as absent; nil-able scalars are absent when nil.
func (w *walker) present(p *schema.Property, v reflect.Value) bool {
	if p.Kind.IsArray() {
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return false
			}
			v = v.Elem()
		}
		return v.Len() > 0
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return !v.IsNil()
	default:
		return true
	}
}

// deref unwraps pointers and interfaces, reporting false at nil.
func deref(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, true
}
