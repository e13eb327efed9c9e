package schema

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/objform/objform/codec"
	"github.com/objform/objform/debug"
	"github.com/objform/objform/names"
)

// Registry maps Go types to their compiled serialization schemas. A
// registry owns its name formatter and scalar codec registry; there is no
// process-global registry, so independent registries never interfere.
type Registry struct {
	mu        sync.RWMutex
	byName    map[string]*TypeDef
	byType    map[reflect.Type]*TypeDef
	refs      map[string]*TypeRef
	formatter names.Formatter
	codecs    *codec.Registry
}

type Option func(*Registry)

// WithFormatter sets the wire-name formatter, applied once per property at
// registration. The default is names.CamelCase.
func WithFormatter(f names.Formatter) Option {
	return func(r *Registry) { r.formatter = f }
}

// WithCodecs supplies a scalar codec registry instead of the default one.
func WithCodecs(c *codec.Registry) Option {
	return func(r *Registry) { r.codecs = c }
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byName:    map[string]*TypeDef{},
		byType:    map[reflect.Type]*TypeDef{},
		refs:      map[string]*TypeRef{},
		formatter: names.CamelCase,
		codecs:    codec.NewRegistry(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Codecs returns the registry's scalar codec registry. Register custom
// codecs before registering types that rely on them for kind inference.
func (r *Registry) Codecs() *codec.Registry {
	return r.codecs
}

// Ref returns a forward reference to the named type, usable in property
// descriptors before that type is registered. References resolve lazily at
// first traversal use.
func (r *Registry) Ref(name string) *TypeRef {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ref, ok := r.refs[name]; ok {
		return ref
	}
	ref := &TypeRef{name: name, reg: r}
	r.refs[name] = ref
	return ref
}

// Register compiles and installs a type definition. It fails with
// DuplicateRegistrationError when the logical name or the Go type is
// already registered, and with SchemaError on descriptor invariant
// violations.
func (r *Registry) Register(b *TypeBuilder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, err := r.compile(b)
	if err != nil {
		return err
	}
	if _, exists := r.byName[d.Name]; exists {
		return &DuplicateRegistrationError{TypeName: d.Name}
	}
	if _, exists := r.byType[d.GoType]; exists {
		return &DuplicateRegistrationError{GoType: d.GoType}
	}
	r.byName[d.Name] = d
	r.byType[d.GoType] = d
	if debug.Schema() {
		debug.Logf("schema: registered %q for %s with %d properties\n",
			d.Name, d.GoType, len(d.Props))
	}
	return nil
}

// MustRegister is Register, panicking on error. Intended for init-time
// registration of static schemas.
func (r *Registry) MustRegister(b *TypeBuilder) {
	if err := r.Register(b); err != nil {
		panic(err)
	}
}

// LookupName returns the definition registered under the logical name.
func (r *Registry) LookupName(name string) (*TypeDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d, ok := r.byName[name]; ok {
		return d, nil
	}
	return nil, &UnresolvedTypeError{TypeName: name}
}

// LookupType returns the definition registered for the Go type, unwrapping
// one level of pointer.
func (r *Registry) LookupType(t reflect.Type) (*TypeDef, error) {
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d, ok := r.byType[t]; ok {
		return d, nil
	}
	return nil, &UnresolvedTypeError{GoType: t}
}

// Names returns the registered logical names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ns := make([]string, 0, len(r.byName))
	for n := range r.byName {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	return ns
}

func (r *Registry) compile(b *TypeBuilder) (*TypeDef, error) {
	if b.name == "" {
		return nil, &SchemaError{Message: "type must have a name"}
	}
	rt := reflect.TypeOf(b.proto)
	if rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, &SchemaError{TypeName: b.name,
			Message: fmt.Sprintf("prototype must be a struct, got %v", reflect.TypeOf(b.proto))}
	}

	d := &TypeDef{
		Name:         b.name,
		GoType:       rt,
		XMLRoot:      b.xmlRoot,
		Space:        b.space,
		AllowUnknown: b.allowUnknown,
		jsonIndex:    map[string]*Property{},
		xmlIndex:     map[string]*Property{},
		ignore:       map[string]struct{}{},
	}
	if d.XMLRoot == "" {
		d.XMLRoot = r.formatter(b.name)
	}
	for _, w := range b.ignore {
		d.ignore[w] = struct{}{}
	}

	seen := map[string]struct{}{}
	for _, pb := range b.props {
		p, err := r.compileProp(d, rt, pb)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[p.Accessor]; dup {
			return nil, &SchemaError{TypeName: d.Name, Accessor: p.Accessor,
				Message: "accessor declared twice"}
		}
		seen[p.Accessor] = struct{}{}

		if p.Text {
			if d.text != nil {
				return nil, &SchemaError{TypeName: d.Name, Accessor: p.Accessor,
					Message: fmt.Sprintf("text content already bound to %q", d.text.Accessor)}
			}
			d.text = p
		}
		if _, dup := d.jsonIndex[p.JSONName]; dup {
			return nil, &SchemaError{TypeName: d.Name, Accessor: p.Accessor,
				Message: fmt.Sprintf("duplicate JSON wire name %q", p.JSONName)}
		}
		d.jsonIndex[p.JSONName] = p

		xmlKey := p.XMLName
		if p.Kind.IsArray() && p.Shape == FlatShape {
			xmlKey = p.ChildName
		}
		if _, dup := d.xmlIndex[xmlKey]; dup {
			return nil, &SchemaError{TypeName: d.Name, Accessor: p.Accessor,
				Message: fmt.Sprintf("duplicate XML wire name %q", xmlKey)}
		}
		d.xmlIndex[xmlKey] = p

		d.Props = append(d.Props, p)
	}

	d.xmlOrder = slices.Clone(d.Props)
	slices.SortStableFunc(d.xmlOrder, func(a, b *Property) int {
		return cmp.Compare(a.Sequence, b.Sequence)
	})
	return d, nil
}

func (r *Registry) compileProp(d *TypeDef, rt reflect.Type, pb *PropBuilder) (*Property, error) {
	fail := func(msg string, args ...any) (*Property, error) {
		return nil, &SchemaError{TypeName: d.Name, Accessor: pb.accessor,
			Message: fmt.Sprintf(msg, args...)}
	}

	if pb.accessor == "" {
		return nil, &SchemaError{TypeName: d.Name, Message: "property must have an accessor"}
	}
	sf, ok := rt.FieldByName(pb.accessor)
	if !ok {
		return fail("no field %q in %s", pb.accessor, rt)
	}
	if sf.PkgPath != "" {
		return fail("field is unexported")
	}

	ft := sf.Type
	base := ft
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	isArray := base.Kind() == reflect.Slice && !isByteSlice(base)
	elem := base
	if isArray {
		elem = base.Elem()
		if elem.Kind() == reflect.Pointer {
			elem = elem.Elem()
		}
	}

	if pb.codec != nil && pb.enum != nil {
		return fail("codec and enum are mutually exclusive")
	}

	p := &Property{
		Accessor:     pb.accessor,
		StringKind:   pb.strKind,
		Shape:        pb.shape,
		ChildName:    pb.childName,
		Sequence:     pb.seq,
		IncludeNone:  pb.inclNone,
		XMLAttribute: pb.attr,
		Text:         pb.text,
		Codec:        pb.codec,
		Enum:         pb.enum,
		Ref:          pb.ref,
		fieldIndex:   sf.Index,
		fieldType:    ft,
		elemType:     elem,
	}
	if p.Sequence <= 0 {
		p.Sequence = 100
	}
	if len(pb.rules) > 0 {
		p.ViewRules = make(map[View]NoneRule, len(pb.rules))
		for v, rule := range pb.rules {
			p.ViewRules[v] = rule
		}
	}

	switch {
	case pb.enum != nil:
		if err := pb.enum.validate(); err != nil {
			return nil, &SchemaError{TypeName: d.Name, Accessor: pb.accessor,
				Message: err.Error(), Err: err}
		}
		if elem != pb.enum.goType {
			return fail("field type %s does not match enum %s", elem, pb.enum.Name())
		}
		p.Kind = EnumKind
	case pb.ref != nil:
		if elem.Kind() != reflect.Struct {
			return fail("type reference on non-struct field %s", ft)
		}
		p.Kind = ObjectKind
	default:
		switch {
		case pb.codec != nil:
			p.Kind = ScalarKind
		case isPrimitive(elem):
			p.Kind = ScalarKind
		case r.hasCodec(elem):
			p.Kind = ScalarKind
		case elem.Kind() == reflect.Struct:
			p.Kind = ObjectKind
			p.Ref = &TypeRef{goType: elem, reg: r}
		default:
			return fail("unsupported field type %s", ft)
		}
	}
	if isArray {
		switch p.Kind {
		case ScalarKind:
			p.Kind = ScalarArrayKind
		case EnumKind:
			p.Kind = EnumArrayKind
		case ObjectKind:
			p.Kind = ObjectArrayKind
		}
	}

	if pb.text {
		switch p.Kind {
		case ScalarKind, EnumKind:
		default:
			return fail("text content must be a scalar or enum, not %s", p.Kind)
		}
		if pb.attr {
			return fail("text content cannot be an attribute")
		}
		if pb.jsonName != "" || pb.xmlName != "" {
			return fail("text content cannot carry a wire name")
		}
		p.JSONName = "."
		p.XMLName = "."
	} else {
		p.JSONName = pb.jsonName
		if p.JSONName == "" {
			p.JSONName = r.formatter(pb.accessor)
		}
		p.XMLName = pb.xmlName
		if p.XMLName == "" {
			p.XMLName = r.formatter(pb.accessor)
		}
	}

	if p.Kind.IsArray() {
		if !pb.shapeSet {
			return fail("array property needs Nested or Flat")
		}
		if p.ChildName == "" {
			return fail("array child name must not be empty")
		}
	} else if pb.shapeSet {
		return fail("Nested/Flat on non-array property")
	}

	if pb.attr {
		switch p.Kind {
		case ScalarKind, EnumKind:
		default:
			return fail("attribute must be a scalar or enum, not %s", p.Kind)
		}
	}

	switch pb.required {
	case setTrue:
		p.Required = true
	case setFalse:
		p.Required = false
	default:
		switch ft.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map:
			p.Required = false
		default:
			p.Required = true
		}
	}
	return p, nil
}

func (r *Registry) hasCodec(t reflect.Type) bool {
	_, ok := r.codecs.Lookup(t)
	return ok
}

func isPrimitive(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}

func isByteSlice(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}
