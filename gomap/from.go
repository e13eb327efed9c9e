package gomap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/objform/objform/codec"
	"github.com/objform/objform/debug"
	"github.com/objform/objform/ir"
	"github.com/objform/objform/schema"
)

func (w *walker) fromObject(node *ir.Node, dst reflect.Value, td *schema.TypeDef, path string) error {
	if debug.Walk() {
		debug.Logf("gomap: from %s at %q\n", td.Name, path)
	}
	if node.Type != ir.ObjectType {
		// A type with text content deserializes from a bare leaf: the
		// JSON rendering is the value itself, and an element with no
		// attributes parses as one.
		if tp := td.TextProp(); tp != nil && node.Type.IsLeaf() {
			if err := w.assign(tp, node, tp.Field(dst), path); err != nil {
				return err
			}
			return w.checkRequired(td, map[*schema.Property]bool{tp: true}, path)
		}
		if w.f.IsXML() && emptyLeaf(node) {
			// An empty element carries nothing to set.
			return w.checkRequired(td, nil, path)
		}
		return &ValueConversionError{Path: path,
			Message: fmt.Sprintf("expected object, got %s", node.Type)}
	}

	delivered := map[*schema.Property]bool{}
	var flat map[*schema.Property][]*ir.Node

	for i, fld := range node.Fields {
		name := fld.Name
		v := node.Values[i]
		if td.Ignored(name) {
			continue
		}
		p, ok := td.Lookup(w.f, name)
		if !ok {
			if w.unknownOK(td) {
				continue
			}
			return &UnknownPropertyError{TypeName: td.Name, Key: name, Path: path}
		}
		// Flat array items repeat the member; collect them all before
		// building the slice.
		if w.f.IsXML() && p.Kind.IsArray() && p.Shape == schema.FlatShape {
			if flat == nil {
				flat = map[*schema.Property][]*ir.Node{}
			}
			flat[p] = append(flat[p], v)
			delivered[p] = true
			continue
		}
		wirePath := joinPath(path, name)
		if err := w.assignMember(p, v, dst, wirePath); err != nil {
			return err
		}
		delivered[p] = true
	}

	for _, p := range td.Props {
		elems, ok := flat[p]
		if !ok {
			continue
		}
		if err := w.buildSlice(p, elems, dst, joinPath(path, p.ChildName)); err != nil {
			return err
		}
	}
	return w.checkRequired(td, delivered, path)
}

// assignMember fills the property's field from its wire member value.
func (w *walker) assignMember(p *schema.Property, v *ir.Node, dst reflect.Value, path string) error {
	if !p.Kind.IsArray() {
		return w.assign(p, v, p.Field(dst), path)
	}
	var elems []*ir.Node
	if w.f.IsXML() {
		// v is the wrapper element of a nested array; child names are
		// not checked, attributes and character data are dropped.
		switch v.Type {
		case ir.ObjectType:
			for i, f := range v.Fields {
				if f.Attr || f.Name == ir.Text {
					continue
				}
				elems = append(elems, v.Values[i])
			}
		case ir.NullType:
		case ir.StringType:
			// an empty or blank wrapper element is an empty sequence
			if strings.TrimSpace(v.String) != "" {
				return &ValueConversionError{Path: path, Message: "expected element children"}
			}
		default:
			return &ValueConversionError{Path: path,
				Message: fmt.Sprintf("expected element children, got %s", v.Type)}
		}
	} else {
		switch v.Type {
		case ir.ArrayType:
			elems = v.Values
		case ir.NullType:
			return nil
		default:
			return &ValueConversionError{Path: path,
				Message: fmt.Sprintf("expected array, got %s", v.Type)}
		}
	}
	return w.buildSlice(p, elems, dst, path)
}

func (w *walker) buildSlice(p *schema.Property, elems []*ir.Node, dst reflect.Value, path string) error {
	fv := p.Field(dst)
	sliceT := fv.Type()
	if sliceT.Kind() == reflect.Pointer {
		sliceT = sliceT.Elem()
	}
	out := reflect.MakeSlice(sliceT, len(elems), len(elems))
	for i, e := range elems {
		if err := w.assign(p, e, out.Index(i), elemPath(path, i)); err != nil {
			return err
		}
	}
	if fv.Kind() == reflect.Pointer {
		np := reflect.New(sliceT)
		np.Elem().Set(out)
		fv.Set(np)
		return nil
	}
	fv.Set(out)
	return nil
}

// assign converts one wire value into target, a struct field or a slice
// element. A null leaves the zero value in place.
func (w *walker) assign(p *schema.Property, v *ir.Node, target reflect.Value, path string) error {
	switch p.Kind.Elem() {
	case schema.ObjectKind:
		return w.assignObject(p, v, target, path)
	case schema.EnumKind:
		return w.assignEnum(p, v, target, path)
	default:
		return w.assignLeaf(p, v, target, path)
	}
}

func (w *walker) assignObject(p *schema.Property, v *ir.Node, target reflect.Value, path string) error {
	if v.Type == ir.NullType && w.f.IsJSON() {
		return nil
	}
	td, err := p.Ref.Resolve()
	if err != nil {
		return err
	}
	bt := target.Type()
	if bt.Kind() == reflect.Pointer {
		bt = bt.Elem()
	}
	if bt != td.GoType {
		return &ValueConversionError{Path: path,
			Message: fmt.Sprintf("field type %s does not match %q", bt, td.Name)}
	}
	if target.Kind() == reflect.Pointer {
		np := reflect.New(bt)
		if err := w.fromObject(v, np.Elem(), td, path); err != nil {
			return err
		}
		target.Set(np)
		return nil
	}
	return w.fromObject(v, target, td, path)
}

func (w *walker) assignEnum(p *schema.Property, v *ir.Node, target reflect.Value, path string) error {
	leaf := v
	wire := leaf.String
	if w.f.IsXML() {
		leaf = leafText(v)
		wire = strings.TrimSpace(leaf.String)
		if wire == "" {
			return nil
		}
	}
	if leaf.Type == ir.NullType {
		return nil
	}
	if leaf.Type != ir.StringType {
		return &ValueConversionError{Path: path,
			Message: fmt.Sprintf("expected enum string, got %s", leaf.Type)}
	}
	cv, err := p.Enum.Parse(wire)
	if err != nil {
		return &ValueConversionError{Path: path, Message: "cannot parse enum", Err: err}
	}
	allocTarget(target).Set(reflect.ValueOf(cv))
	return nil
}

func (w *walker) assignLeaf(p *schema.Property, v *ir.Node, target reflect.Value, path string) error {
	leaf := v
	if w.f.IsXML() {
		leaf = leafText(v)
		// Whitespace facets apply on both directions of the wire.
		if leaf.Type == ir.StringType && p.StringKind != schema.PlainString {
			leaf = ir.FromString(normalizeString(leaf.String, p.StringKind))
		}
	}
	if leaf.Type == ir.NullType {
		return nil
	}
	bt := target.Type()
	if bt.Kind() == reflect.Pointer {
		bt = bt.Elem()
	}
	// Element text around non-string values is lexical space (xsd
	// collapse); strings themselves keep it.
	if w.f.IsXML() && leaf.Type == ir.StringType && bt.Kind() != reflect.String {
		if s := strings.TrimSpace(leaf.String); s != leaf.String {
			leaf = ir.FromString(s)
		}
	}
	if c := w.codecFor(p); c != nil {
		if w.f.IsXML() && leaf.Type == ir.StringType && leaf.String == "" {
			return nil
		}
		got, err := codec.Decode(c, w.f, leaf)
		if err != nil {
			return &ValueConversionError{Path: path, Message: "codec failed", Err: err}
		}
		rv := reflect.ValueOf(got)
		if rv.Type() != bt {
			if !rv.Type().ConvertibleTo(bt) {
				return &ValueConversionError{Path: path,
					Message: fmt.Sprintf("codec produced %T, field needs %s", got, bt)}
			}
			rv = rv.Convert(bt)
		}
		allocTarget(target).Set(rv)
		return nil
	}
	// The empty string in an element or attribute reads as unset for
	// every leaf type but string itself.
	if w.f.IsXML() && leaf.Type == ir.StringType && leaf.String == "" && bt.Kind() != reflect.String {
		return nil
	}
	t := allocTarget(target)
	switch bt.Kind() {
	case reflect.String:
		if leaf.Type != ir.StringType {
			return &ValueConversionError{Path: path,
				Message: fmt.Sprintf("cannot read string from %s", leafDesc(leaf))}
		}
		t.SetString(leaf.String)
	case reflect.Bool:
		b, err := w.boolValue(leaf, path)
		if err != nil {
			return err
		}
		t.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := w.intValue(leaf, path)
		if err != nil {
			return err
		}
		if t.OverflowInt(i) {
			return &ValueConversionError{Path: path,
				Message: fmt.Sprintf("%d overflows %s", i, bt)}
		}
		t.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := w.uintValue(leaf, path)
		if err != nil {
			return err
		}
		if t.OverflowUint(u) {
			return &ValueConversionError{Path: path,
				Message: fmt.Sprintf("%d overflows %s", u, bt)}
		}
		t.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := w.floatValue(leaf, path)
		if err != nil {
			return err
		}
		if t.OverflowFloat(f) {
			return &ValueConversionError{Path: path,
				Message: fmt.Sprintf("%g overflows %s", f, bt)}
		}
		t.SetFloat(f)
	default:
		return &UnsupportedTypeError{Path: path, GoType: bt}
	}
	return nil
}

func (w *walker) checkRequired(td *schema.TypeDef, delivered map[*schema.Property]bool, path string) error {
	for _, p := range td.Props {
		if p.Required && !delivered[p] {
			return &ConstructionError{TypeName: td.Name, Accessor: p.Accessor, Path: path}
		}
	}
	return nil
}

// allocTarget reaches through a pointer target, allocating it when nil.
func allocTarget(target reflect.Value) reflect.Value {
	if target.Kind() == reflect.Pointer {
		if target.IsNil() {
			target.Set(reflect.New(target.Type().Elem()))
		}
		return target.Elem()
	}
	return target
}
