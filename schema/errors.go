package schema

import (
	"fmt"
	"reflect"
)

// SchemaError reports an invalid type definition at registration time.
type SchemaError struct {
	TypeName string
	Accessor string
	Message  string
	Err      error
}

func (e *SchemaError) Error() string {
	switch {
	case e.TypeName != "" && e.Accessor != "":
		return fmt.Sprintf("schema error for %q property %q: %s", e.TypeName, e.Accessor, e.Message)
	case e.TypeName != "":
		return fmt.Sprintf("schema error for %q: %s", e.TypeName, e.Message)
	default:
		return fmt.Sprintf("schema error: %s", e.Message)
	}
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// DuplicateRegistrationError reports a second registration of a type name
// or Go type within one registry.
type DuplicateRegistrationError struct {
	TypeName string
	GoType   reflect.Type
}

func (e *DuplicateRegistrationError) Error() string {
	if e.TypeName != "" {
		return fmt.Sprintf("type %q already registered", e.TypeName)
	}
	return fmt.Sprintf("type %s already registered", e.GoType)
}

// UnresolvedTypeError reports a lookup of a type no schema was registered
// for, by name (forward references) or by Go type (traversal).
type UnresolvedTypeError struct {
	TypeName string
	GoType   reflect.Type
}

func (e *UnresolvedTypeError) Error() string {
	if e.TypeName != "" {
		return fmt.Sprintf("type %q not registered", e.TypeName)
	}
	return fmt.Sprintf("type %s not registered", e.GoType)
}
