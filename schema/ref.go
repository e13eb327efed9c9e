package schema

import (
	"reflect"
	"sync/atomic"
)

// TypeRef is a lazily resolved reference to a registered type, either by
// logical name (forward references during registration) or by Go type
// (the default binding for nested object properties). Resolution happens
// at first use and is memoized.
type TypeRef struct {
	name   string
	goType reflect.Type
	reg    *Registry
	def    atomic.Pointer[TypeDef]
}

// Name returns the referenced logical name, or the Go type's name for
// type-bound references.
func (r *TypeRef) Name() string {
	if r.name != "" {
		return r.name
	}
	return r.goType.Name()
}

// Resolve returns the referenced TypeDef, or an UnresolvedTypeError if it
// has not been registered yet.
func (r *TypeRef) Resolve() (*TypeDef, error) {
	if d := r.def.Load(); d != nil {
		return d, nil
	}
	var (
		d   *TypeDef
		err error
	)
	if r.name != "" {
		d, err = r.reg.LookupName(r.name)
	} else {
		d, err = r.reg.LookupType(r.goType)
	}
	if err != nil {
		return nil, err
	}
	r.def.Store(d)
	return d, nil
}
