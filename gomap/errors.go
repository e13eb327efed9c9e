package gomap

import (
	"fmt"
	"reflect"
)

// CyclicGraphError is returned when the value graph handed to ToIR
// contains a reference cycle. Path is the property path at which the
// repeated object was encountered and First is the path at which it
// was first seen.
type CyclicGraphError struct {
	Path  string
	First string
}

func (e *CyclicGraphError) Error() string {
	return fmt.Sprintf("cycle detected at %q: object already visited at %q", e.Path, e.First)
}

// UnknownPropertyError is returned by FromIR when a document member
// does not correspond to any property of the target type and the type
// does not allow unknown members.
type UnknownPropertyError struct {
	TypeName string
	Key      string
	Path     string
}

func (e *UnknownPropertyError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unknown property %q for type %q", e.Key, e.TypeName)
	}
	return fmt.Sprintf("unknown property %q for type %q at %q", e.Key, e.TypeName, e.Path)
}

// ValueConversionError is returned when a leaf value cannot be
// converted between its Go representation and its document
// representation, in either direction.
type ValueConversionError struct {
	Path    string
	Message string
	Err     error
}

func (e *ValueConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot convert value at %q: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("cannot convert value at %q: %s", e.Path, e.Message)
}

func (e *ValueConversionError) Unwrap() error {
	return e.Err
}

// ConstructionError is returned by FromIR when a document omits a
// property that the target type requires.
type ConstructionError struct {
	TypeName string
	Accessor string
	Path     string
}

func (e *ConstructionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot construct %q: required property %q missing", e.TypeName, e.Accessor)
	}
	return fmt.Sprintf("cannot construct %q at %q: required property %q missing", e.TypeName, e.Path, e.Accessor)
}

// UnsupportedTypeError is returned when a value of a Go type with no
// schema, codec or primitive mapping is reached during traversal.
type UnsupportedTypeError struct {
	Path   string
	GoType reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %v at %q", e.GoType, e.Path)
}
