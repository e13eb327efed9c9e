package codec

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/objform/objform/debug"
	"github.com/objform/objform/format"
	"github.com/objform/objform/ir"
)

// Codec converts one scalar Go type to and from leaf nodes.
//
// Encode never receives nil values and Decode never receives null nodes;
// absence is resolved before codecs run.
type Codec interface {
	Encode(v any) (*ir.Node, error)
	Decode(n *ir.Node) (any, error)
}

// JSONCodec refines a Codec for JSON documents. When a codec implements it,
// JSON serialization uses these methods instead of Encode/Decode.
type JSONCodec interface {
	Codec
	EncodeJSON(v any) (*ir.Node, error)
	DecodeJSON(n *ir.Node) (any, error)
}

// XMLCodec refines a Codec for XML documents.
type XMLCodec interface {
	Codec
	EncodeXML(v any) (*ir.Node, error)
	DecodeXML(n *ir.Node) (any, error)
}

// Encode runs the codec for the given format, preferring its format-specific
// refinement when present.
func Encode(c Codec, f format.Format, v any) (*ir.Node, error) {
	if debug.Codec() {
		debug.Logf("codec: encode %T with %T for %v\n", v, c, f)
	}
	switch f {
	case format.JSONFormat:
		if jc, ok := c.(JSONCodec); ok {
			return jc.EncodeJSON(v)
		}
	case format.XMLFormat:
		if xc, ok := c.(XMLCodec); ok {
			return xc.EncodeXML(v)
		}
	}
	return c.Encode(v)
}

// Decode runs the codec for the given format, preferring its format-specific
// refinement when present.
func Decode(c Codec, f format.Format, n *ir.Node) (any, error) {
	if debug.Codec() {
		debug.Logf("codec: decode %s with %T for %v\n", n.Type, c, f)
	}
	switch f {
	case format.JSONFormat:
		if jc, ok := c.(JSONCodec); ok {
			return jc.DecodeJSON(n)
		}
	case format.XMLFormat:
		if xc, ok := c.(XMLCodec); ok {
			return xc.DecodeXML(n)
		}
	}
	return c.Decode(n)
}

// Registry maps exact Go types to codecs. The zero value is not usable; use
// NewRegistry, which installs the built-in codecs.
type Registry struct {
	mu     sync.RWMutex
	codecs map[reflect.Type]Codec
}

// NewRegistry returns a registry with the built-in codecs installed:
// RFC3339Time for time.Time, Decimal for decimal.Decimal, and Base64Bytes
// for []byte.
func NewRegistry() *Registry {
	r := &Registry{codecs: map[reflect.Type]Codec{}}
	r.codecs[timeType] = RFC3339Time{}
	r.codecs[decimalType] = Decimal{}
	r.codecs[byteSliceType] = Base64Bytes{}
	return r
}

// Register installs c for t, replacing any built-in or previously
// registered codec for that exact type.
func (r *Registry) Register(t reflect.Type, c Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[t] = c
}

// RegisterFor is Register keyed by the dynamic type of proto.
func (r *Registry) RegisterFor(proto any, c Codec) {
	r.Register(reflect.TypeOf(proto), c)
}

// Lookup returns the codec for the exact type t.
func (r *Registry) Lookup(t reflect.Type) (Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.codecs[t]
	return c, ok
}

func typeError(n *ir.Node, want string) error {
	return fmt.Errorf("cannot decode %s node as %s", n.Type, want)
}
