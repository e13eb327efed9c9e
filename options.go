package objform

import (
	"github.com/objform/objform/gomap"
	"github.com/objform/objform/schema"
)

type config struct {
	mapOpts []gomap.Option
	indent  int
}

// Option configures a single Engine call.
type Option func(*config)

// WithView serializes under the named view. Views govern how absent
// values render; present values are never filtered.
func WithView(v schema.View) Option {
	return func(c *config) {
		c.mapOpts = append(c.mapOpts, gomap.WithView(v))
	}
}

// WithNamespace sets the XML namespace of the document's root element.
// Nested types inherit it unless their definition overrides it.
func WithNamespace(space string) Option {
	return func(c *config) {
		c.mapOpts = append(c.mapOpts, gomap.WithNamespace(space))
	}
}

// WithIndent pretty-prints marshaled text with n spaces per nesting
// level. Zero, the default, keeps output compact.
func WithIndent(n int) Option {
	return func(c *config) {
		c.indent = n
	}
}

// WithAllowUnknown overrides, for this call, whether document members
// matching no property are ignored rather than rejected.
func WithAllowUnknown(allow bool) Option {
	return func(c *config) {
		c.mapOpts = append(c.mapOpts, gomap.WithAllowUnknown(allow))
	}
}

func buildConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
