package schema

import (
	"fmt"
	"reflect"
)

// EnumDef maps the constants of one Go enum type to their wire strings.
// Build one with Enum and attach it to properties via PropBuilder.Enum.
type EnumDef struct {
	name     string
	goType   reflect.Type
	toWire   map[any]string
	fromWire map[string]any
	err      error
}

// Enum starts an enum definition for the type of proto, typically the zero
// constant of an int- or string-backed type.
func Enum(proto any) *EnumDef {
	t := reflect.TypeOf(proto)
	e := &EnumDef{
		name:     t.Name(),
		goType:   t,
		toWire:   map[any]string{},
		fromWire: map[string]any{},
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String:
	default:
		e.err = fmt.Errorf("enum type %s must be int- or string-backed, not %s", t, t.Kind())
	}
	return e
}

// Value maps one constant to its wire string. It returns e for chaining;
// mapping errors surface when a property using e is registered.
func (e *EnumDef) Value(v any, wire string) *EnumDef {
	if e.err != nil {
		return e
	}
	rv := reflect.ValueOf(v)
	if rv.Type() != e.goType {
		e.err = fmt.Errorf("enum %s: value %v has type %s", e.name, v, rv.Type())
		return e
	}
	key := rv.Interface()
	if _, ok := e.toWire[key]; ok {
		e.err = fmt.Errorf("enum %s: constant %v mapped twice", e.name, v)
		return e
	}
	if _, ok := e.fromWire[wire]; ok {
		e.err = fmt.Errorf("enum %s: wire value %q mapped twice", e.name, wire)
		return e
	}
	e.toWire[key] = wire
	e.fromWire[wire] = key
	return e
}

// Name returns the enum's type name.
func (e *EnumDef) Name() string {
	return e.name
}

// GoType returns the enum's Go type.
func (e *EnumDef) GoType() reflect.Type {
	return e.goType
}

// Wire returns the wire string for a constant.
func (e *EnumDef) Wire(v any) (string, error) {
	rv := reflect.ValueOf(v)
	if rv.Type() != e.goType {
		if !rv.Type().ConvertibleTo(e.goType) {
			return "", fmt.Errorf("enum %s: cannot map %T value", e.name, v)
		}
		rv = rv.Convert(e.goType)
	}
	w, ok := e.toWire[rv.Interface()]
	if !ok {
		return "", fmt.Errorf("enum %s: no wire value for constant %v", e.name, v)
	}
	return w, nil
}

// Parse returns the constant for a wire string.
func (e *EnumDef) Parse(wire string) (any, error) {
	v, ok := e.fromWire[wire]
	if !ok {
		return nil, fmt.Errorf("enum %s: unknown wire value %q", e.name, wire)
	}
	return v, nil
}

func (e *EnumDef) validate() error {
	if e.err != nil {
		return e.err
	}
	if len(e.toWire) == 0 {
		return fmt.Errorf("enum %s: no values mapped", e.name)
	}
	return nil
}
