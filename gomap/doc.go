// Package gomap converts between Go values and document trees under
// the direction of registered type schemas.
//
// # Mapping
//
// A Mapper reads property descriptors from a schema.Registry and walks
// struct values with reflection. Nothing is inferred from struct tags
// or field names at conversion time; every wire name, order and shape
// was decided when the type was registered.
//
//	m := gomap.New(reg)
//	node, err := m.ToIR(book, format.JSONFormat)
//	err = m.FromIR(node, &book2, format.JSONFormat)
//
// # Tree Shapes
//
// ToIR and FromIR exchange trees shaped for the requested format. JSON
// trees hold arrays as ArrayType nodes and use JSON wire names. XML
// trees use XML wire names, render arrays as repeated members, nested
// in a wrapper element or flat in the parent, and wrap the document in
// an object holding the single root element.
//
// # Absent Values
//
// A nil pointer, nil or empty slice, or nil map field is absent.
// Absent values are normally omitted; a property's IncludeNone default
// or a rule for the view selected with WithView can render them as
// nulls or as fixed override values instead.
//
// # Errors
//
// Conversion failures return typed errors carrying the property path
// where they occurred: CyclicGraphError, UnknownPropertyError,
// ValueConversionError, ConstructionError and UnsupportedTypeError.
package gomap
