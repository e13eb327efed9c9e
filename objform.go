package objform

import (
	"fmt"

	"github.com/objform/objform/format"
	"github.com/objform/objform/gomap"
	"github.com/objform/objform/ir"
	"github.com/objform/objform/jsontext"
	"github.com/objform/objform/schema"
	"github.com/objform/objform/xmltext"
)

// Engine converts between registered Go types and wire text. It holds
// no per-call state and is safe for concurrent use.
type Engine struct {
	mapper *gomap.Mapper
}

func New(reg *schema.Registry) *Engine {
	return &Engine{mapper: gomap.New(reg)}
}

// Registry returns the registry the engine serializes under.
func (e *Engine) Registry() *schema.Registry {
	return e.mapper.Registry()
}

// Marshal serializes v, whose type must be registered, to f text.
func (e *Engine) Marshal(v any, f format.Format, opts ...Option) ([]byte, error) {
	c := buildConfig(opts)
	node, err := e.mapper.ToIR(v, f, c.mapOpts...)
	if err != nil {
		return nil, err
	}
	switch {
	case f.IsJSON():
		return jsontext.Marshal(node, jsontext.Indent(c.indent))
	case f.IsXML():
		return xmltext.Marshal(node, xmltext.Indent(c.indent))
	default:
		return nil, fmt.Errorf("%w: cannot marshal %v", format.ErrBadFormat, f)
	}
}

// Unmarshal fills the struct pointed to by v from f text.
func (e *Engine) Unmarshal(data []byte, v any, f format.Format, opts ...Option) error {
	c := buildConfig(opts)
	var (
		node *ir.Node
		err  error
	)
	switch {
	case f.IsJSON():
		node, err = jsontext.Parse(data)
	case f.IsXML():
		node, err = xmltext.Parse(data)
	default:
		return fmt.Errorf("%w: cannot unmarshal %v", format.ErrBadFormat, f)
	}
	if err != nil {
		return err
	}
	return e.mapper.FromIR(node, v, f, c.mapOpts...)
}

// ToIR serializes v to a document tree shaped for f, stopping short of
// text. Tooling that inspects or rewrites documents works at this
// level.
func (e *Engine) ToIR(v any, f format.Format, opts ...Option) (*ir.Node, error) {
	c := buildConfig(opts)
	return e.mapper.ToIR(v, f, c.mapOpts...)
}

// FromIR fills the struct pointed to by v from a document tree shaped
// for f.
func (e *Engine) FromIR(node *ir.Node, v any, f format.Format, opts ...Option) error {
	c := buildConfig(opts)
	return e.mapper.FromIR(node, v, f, c.mapOpts...)
}
