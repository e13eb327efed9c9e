package schema

import (
	"reflect"

	"github.com/objform/objform/codec"
	"github.com/objform/objform/format"
	"github.com/objform/objform/ir"
)

// View is an opaque tag selecting a serialization view. Views carry no
// structure; they are lookup keys in per-property none rules.
type View string

// Kind classifies what a property holds. It is decided once, at
// registration, from the declared field type and the builder calls.
type Kind int

const (
	ScalarKind Kind = iota
	EnumKind
	ObjectKind
	ScalarArrayKind
	EnumArrayKind
	ObjectArrayKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case EnumKind:
		return "enum"
	case ObjectKind:
		return "object"
	case ScalarArrayKind:
		return "array of scalar"
	case EnumArrayKind:
		return "array of enum"
	case ObjectArrayKind:
		return "array of object"
	}
	return "<unknown kind>"
}

func (k Kind) IsArray() bool {
	switch k {
	case ScalarArrayKind, EnumArrayKind, ObjectArrayKind:
		return true
	default:
		return false
	}
}

// Elem returns the element kind of an array kind, and k itself otherwise.
func (k Kind) Elem() Kind {
	switch k {
	case ScalarArrayKind:
		return ScalarKind
	case EnumArrayKind:
		return EnumKind
	case ObjectArrayKind:
		return ObjectKind
	default:
		return k
	}
}

// Shape selects how XML renders an array property. JSON ignores it.
type Shape int

const (
	// NestedShape wraps the items in an element named after the property.
	NestedShape Shape = iota
	// FlatShape emits the items as repeated children of the enclosing
	// element, named ChildName, with no wrapper.
	FlatShape
)

func (s Shape) String() string {
	if s == FlatShape {
		return "flat"
	}
	return "nested"
}

// StringKind selects XML whitespace handling for string leaves.
type StringKind int

const (
	PlainString StringKind = iota
	// TokenString collapses each whitespace run to a single space and
	// trims both ends (xsd:token).
	TokenString
	// NormalizedString replaces each tab, newline and carriage return
	// with one space, without collapsing or trimming (xsd:normalizedString).
	NormalizedString
)

// NoneRule governs an absent value under one view.
type NoneRule struct {
	Included bool
	// Override replaces the null leaf when set.
	Override *ir.Node
}

// Property is a compiled descriptor binding one struct field to its wire
// representation. Instances are built by the registry from a PropBuilder
// and are immutable afterwards.
type Property struct {
	Accessor string
	JSONName string
	XMLName  string

	Kind       Kind
	Shape      Shape
	ChildName  string
	StringKind StringKind
	Sequence   int

	Required     bool
	IncludeNone  bool
	ViewRules    map[View]NoneRule
	XMLAttribute bool
	Text         bool

	Codec codec.Codec
	Enum  *EnumDef
	Ref   *TypeRef

	fieldIndex []int
	fieldType  reflect.Type
	elemType   reflect.Type
}

// WireName returns the member name this property uses in f.
func (p *Property) WireName(f format.Format) string {
	if f == format.XMLFormat {
		return p.XMLName
	}
	return p.JSONName
}

// Field returns the property's field of a struct value.
func (p *Property) Field(structVal reflect.Value) reflect.Value {
	return structVal.FieldByIndex(p.fieldIndex)
}

// FieldType returns the declared Go type of the property's field.
func (p *Property) FieldType() reflect.Type {
	return p.fieldType
}

// ElemType returns the Go type a single leaf or element of this property
// has, after unwrapping pointers and slices.
func (p *Property) ElemType() reflect.Type {
	return p.elemType
}

// TypeDef is a compiled type schema.
type TypeDef struct {
	Name   string
	GoType reflect.Type

	// XMLRoot names the element when a value of this type is the
	// document root.
	XMLRoot string
	// Space is the namespace for elements of this type. Empty inherits
	// the enclosing namespace.
	Space string

	AllowUnknown bool
	Props        []*Property

	xmlOrder  []*Property
	jsonIndex map[string]*Property
	xmlIndex  map[string]*Property
	ignore    map[string]struct{}
	text      *Property
}

// Order returns the properties in emission order for f: declaration order
// for JSON, sequence order for XML.
func (d *TypeDef) Order(f format.Format) []*Property {
	if f == format.XMLFormat {
		return d.xmlOrder
	}
	return d.Props
}

// Lookup finds the property matching a wire member name in f. For XML this
// includes the child names of flat arrays.
func (d *TypeDef) Lookup(f format.Format, wire string) (*Property, bool) {
	var p *Property
	var ok bool
	if f == format.XMLFormat {
		p, ok = d.xmlIndex[wire]
	} else {
		p, ok = d.jsonIndex[wire]
	}
	return p, ok
}

// Ignored reports whether wire is consumed without effect during
// deserialization.
func (d *TypeDef) Ignored(wire string) bool {
	_, ok := d.ignore[wire]
	return ok
}

// TextProp returns the property bound to element character data, or nil.
func (d *TypeDef) TextProp() *Property {
	return d.text
}
