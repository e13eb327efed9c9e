package schema

import (
	"github.com/objform/objform/codec"
	"github.com/objform/objform/ir"
)

// TypeBuilder accumulates a type definition for Registry.Register. Builders
// are write-only; all validation happens at registration.
type TypeBuilder struct {
	name         string
	proto        any
	xmlRoot      string
	space        string
	allowUnknown bool
	ignore       []string
	props        []*PropBuilder
}

// Define starts a type definition binding the logical name to the struct
// type of proto (a value or pointer of that type).
func Define(name string, proto any) *TypeBuilder {
	return &TypeBuilder{name: name, proto: proto}
}

// XMLRoot overrides the element name used when this type is the document
// root. The default applies the registry's formatter to the logical name.
func (b *TypeBuilder) XMLRoot(name string) *TypeBuilder {
	b.xmlRoot = name
	return b
}

// Space declares a namespace for elements of this type, overriding the
// inherited one.
func (b *TypeBuilder) Space(ns string) *TypeBuilder {
	b.space = ns
	return b
}

// AllowUnknown tolerates unknown wire members when deserializing into this
// type instead of failing.
func (b *TypeBuilder) AllowUnknown() *TypeBuilder {
	b.allowUnknown = true
	return b
}

// Ignore lists wire member names that deserialization consumes without
// delivering to construction.
func (b *TypeBuilder) Ignore(wires ...string) *TypeBuilder {
	b.ignore = append(b.ignore, wires...)
	return b
}

// Prop adds a property descriptor.
func (b *TypeBuilder) Prop(p *PropBuilder) *TypeBuilder {
	b.props = append(b.props, p)
	return b
}

type triState int

const (
	unset triState = iota
	setTrue
	setFalse
)

// PropBuilder accumulates one property descriptor.
type PropBuilder struct {
	accessor  string
	jsonName  string
	xmlName   string
	text      bool
	attr      bool
	seq       int
	strKind   StringKind
	shape     Shape
	shapeSet  bool
	childName string
	codec     codec.Codec
	enum      *EnumDef
	ref       *TypeRef
	required  triState
	inclNone  bool
	rules     map[View]NoneRule
}

// Prop starts a property descriptor for the struct field named accessor.
func Prop(accessor string) *PropBuilder {
	return &PropBuilder{accessor: accessor}
}

// JSON overrides the JSON member name.
func (p *PropBuilder) JSON(name string) *PropBuilder {
	p.jsonName = name
	return p
}

// XML overrides the XML element or attribute name.
func (p *PropBuilder) XML(name string) *PropBuilder {
	p.xmlName = name
	return p
}

// Name overrides the wire name in both formats.
func (p *PropBuilder) Name(name string) *PropBuilder {
	p.jsonName = name
	p.xmlName = name
	return p
}

// Text binds the property to XML element character data; in JSON the
// property's value becomes the whole value for the enclosing object.
func (p *PropBuilder) Text() *PropBuilder {
	p.text = true
	return p
}

// Attribute renders the property as an XML attribute of the enclosing
// element. Leaf kinds only.
func (p *PropBuilder) Attribute() *PropBuilder {
	p.attr = true
	return p
}

// Sequence sets the XML ordering key; lower emits earlier. Unset
// properties order at 100, ties keep declaration order.
func (p *PropBuilder) Sequence(n int) *PropBuilder {
	p.seq = n
	return p
}

// Token collapses whitespace runs and trims string leaves in XML
// (xsd:token).
func (p *PropBuilder) Token() *PropBuilder {
	p.strKind = TokenString
	return p
}

// Normalized maps each whitespace character of string leaves to one space
// in XML (xsd:normalizedString).
func (p *PropBuilder) Normalized() *PropBuilder {
	p.strKind = NormalizedString
	return p
}

// Codec pins a scalar codec for this property, overriding registry lookup
// by field type.
func (p *PropBuilder) Codec(c codec.Codec) *PropBuilder {
	p.codec = c
	return p
}

// Enum declares the property an enum (or array of enum) using def's wire
// mapping.
func (p *PropBuilder) Enum(def *EnumDef) *PropBuilder {
	p.enum = def
	return p
}

// Of binds a nested object property to a forward reference instead of the
// default binding by the field's Go type.
func (p *PropBuilder) Of(ref *TypeRef) *PropBuilder {
	p.ref = ref
	return p
}

// Nested renders the array property as a wrapper element containing one
// child element per item, each named childName.
func (p *PropBuilder) Nested(childName string) *PropBuilder {
	p.shape = NestedShape
	p.shapeSet = true
	p.childName = childName
	return p
}

// Flat renders the array property as repeated childName elements with no
// wrapper. The child name is literal; the registry formatter is not
// applied to it, and deserialization matches it byte for byte.
func (p *PropBuilder) Flat(childName string) *PropBuilder {
	p.shape = FlatShape
	p.shapeSet = true
	p.childName = childName
	return p
}

// Required makes construction fail when the wire document carries no value
// for the property. Non-pointer, non-slice fields default to required.
func (p *PropBuilder) Required() *PropBuilder {
	p.required = setTrue
	return p
}

// Optional marks the property not required.
func (p *PropBuilder) Optional() *PropBuilder {
	p.required = setFalse
	return p
}

// IncludeNone emits absent values as null leaves regardless of view.
func (p *PropBuilder) IncludeNone() *PropBuilder {
	p.inclNone = true
	return p
}

// IncludeNoneFor emits a null leaf for absent values under view v.
func (p *PropBuilder) IncludeNoneFor(v View) *PropBuilder {
	return p.rule(v, NoneRule{Included: true})
}

// IncludeNoneAs emits override for absent values under view v.
func (p *PropBuilder) IncludeNoneAs(v View, override *ir.Node) *PropBuilder {
	return p.rule(v, NoneRule{Included: true, Override: override})
}

// OmitNoneFor omits absent values under view v, overriding IncludeNone.
func (p *PropBuilder) OmitNoneFor(v View) *PropBuilder {
	return p.rule(v, NoneRule{Included: false})
}

func (p *PropBuilder) rule(v View, r NoneRule) *PropBuilder {
	if p.rules == nil {
		p.rules = map[View]NoneRule{}
	}
	p.rules[v] = r
	return p
}
