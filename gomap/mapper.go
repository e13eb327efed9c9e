package gomap

import (
	"fmt"
	"reflect"

	"github.com/objform/objform/format"
	"github.com/objform/objform/ir"
	"github.com/objform/objform/schema"
)

// Mapper converts between Go values and document trees, directed by the
// type schemas of a registry. A Mapper holds no per-call state and is
// safe for concurrent use.
type Mapper struct {
	reg *schema.Registry
}

func New(reg *schema.Registry) *Mapper {
	return &Mapper{reg: reg}
}

// Registry returns the registry the mapper reads schemas from.
func (m *Mapper) Registry() *schema.Registry {
	return m.reg
}

// ToIR converts a Go value to a document tree shaped for f. The value's
// type, after unwrapping pointers, must be registered.
//
// JSON trees carry arrays as ArrayType nodes. XML trees carry them as
// repeated members and wrap the whole document in an object with a
// single member, the root element, named by the type's XMLRoot.
func (m *Mapper) ToIR(v any, f format.Format, opts ...Option) (*ir.Node, error) {
	if !f.IsJSON() && !f.IsXML() {
		return nil, fmt.Errorf("%w: cannot map to %v", format.ErrBadFormat, f)
	}
	o := buildOptions(opts)
	w := &walker{
		m:       m,
		f:       f,
		view:    o.view,
		viewSet: o.viewSet,
		space:   o.space,
		visited: map[uintptr]string{},
	}
	if v == nil {
		return ir.Null(), nil
	}
	val := reflect.ValueOf(v)
	td, err := m.reg.LookupType(val.Type())
	if err != nil {
		return nil, err
	}
	node, err := w.object(val, "")
	if err != nil {
		return nil, err
	}
	if f.IsXML() && node.Type == ir.ObjectType {
		doc := ir.Object()
		doc.Set(td.XMLRoot, node)
		return doc, nil
	}
	return node, nil
}

// FromIR fills the struct pointed to by v from a document tree shaped
// for f. For XML the tree must be a document object holding the single
// root element, as produced by ToIR and by xmltext.Parse.
func (m *Mapper) FromIR(node *ir.Node, v any, f format.Format, opts ...Option) error {
	if !f.IsJSON() && !f.IsXML() {
		return fmt.Errorf("%w: cannot map from %v", format.ErrBadFormat, f)
	}
	o := buildOptions(opts)
	rv := reflect.ValueOf(v)
	if v == nil || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("destination must be a non-nil pointer, got %T", v)
	}
	dst := rv.Elem()
	if dst.Kind() != reflect.Struct {
		return fmt.Errorf("destination must point to a struct, got %T", v)
	}
	td, err := m.reg.LookupType(dst.Type())
	if err != nil {
		return err
	}
	w := &walker{
		m:            m,
		f:            f,
		allowUnknown: o.allowUnknown,
		unknownSet:   o.unknownSet,
	}
	if node == nil || node.Type == ir.NullType {
		return nil
	}
	if f.IsXML() {
		if node.Type != ir.ObjectType || len(node.Values) != 1 {
			return &ValueConversionError{Message: "document must hold a single root element"}
		}
		node = node.Values[0]
	}
	return w.fromObject(node, dst, td, "")
}

// walker carries the state of one conversion call.
type walker struct {
	m       *Mapper
	f       format.Format
	view    schema.View
	viewSet bool
	space   string

	allowUnknown bool
	unknownSet   bool

	// visited maps object addresses on the current descent path to the
	// property path where they were first seen.
	visited map[uintptr]string
}

func (w *walker) unknownOK(td *schema.TypeDef) bool {
	if w.unknownSet {
		return w.allowUnknown
	}
	return td.AllowUnknown
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

func elemPath(base string, i int) string {
	return fmt.Sprintf("%s[%d]", base, i)
}
