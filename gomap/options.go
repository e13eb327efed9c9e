package gomap

import "github.com/objform/objform/schema"

type options struct {
	view         schema.View
	viewSet      bool
	space        string
	allowUnknown bool
	unknownSet   bool
}

// Option configures a single ToIR or FromIR call.
type Option func(*options)

// WithView selects the named view for the call. Views only affect how
// absent values are rendered during serialization; deserialization
// ignores them.
func WithView(v schema.View) Option {
	return func(o *options) {
		o.view = v
		o.viewSet = true
	}
}

// WithNamespace sets the XML namespace of the root element. Nested
// types inherit it unless their definition overrides it. The option
// has no effect on JSON.
func WithNamespace(space string) Option {
	return func(o *options) {
		o.space = space
	}
}

// WithAllowUnknown overrides, for this call, whether document members
// that match no property are ignored rather than rejected.
func WithAllowUnknown(allow bool) Option {
	return func(o *options) {
		o.allowUnknown = allow
		o.unknownSet = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
