package codec

import (
	"fmt"
	"reflect"
	"time"

	"github.com/objform/objform/ir"
)

var timeType = reflect.TypeOf(time.Time{})

// RFC3339Time converts time.Time to and from RFC 3339 text with full
// fractional-second precision. It is the default codec for time.Time.
type RFC3339Time struct{}

func (RFC3339Time) Encode(v any) (*ir.Node, error) {
	t, err := asTime(v)
	if err != nil {
		return nil, err
	}
	return ir.FromString(t.Format(time.RFC3339Nano)), nil
}

func (RFC3339Time) Decode(n *ir.Node) (any, error) {
	if n.Type != ir.StringType {
		return nil, typeError(n, "RFC 3339 time")
	}
	return time.Parse(time.RFC3339, n.String)
}

// XSDDateTime converts time.Time to and from xsd:dateTime text. Fractional
// seconds appear only when the value has them, and times parsed without a
// zone are taken as UTC.
type XSDDateTime struct{}

func (XSDDateTime) Encode(v any) (*ir.Node, error) {
	t, err := asTime(v)
	if err != nil {
		return nil, err
	}
	layout := time.RFC3339
	if t.Nanosecond() != 0 {
		layout = time.RFC3339Nano
	}
	return ir.FromString(t.Format(layout)), nil
}

func (XSDDateTime) Decode(n *ir.Node) (any, error) {
	if n.Type != ir.StringType {
		return nil, typeError(n, "xsd:dateTime")
	}
	if t, err := time.Parse(time.RFC3339, n.String); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", n.String)
}

// XSDDate converts time.Time to and from xsd:date text, keeping the date
// part only. Trailing zone designators on input are ignored.
type XSDDate struct{}

func (XSDDate) Encode(v any) (*ir.Node, error) {
	t, err := asTime(v)
	if err != nil {
		return nil, err
	}
	return ir.FromString(t.Format(time.DateOnly)), nil
}

func (XSDDate) Decode(n *ir.Node) (any, error) {
	if n.Type != ir.StringType {
		return nil, typeError(n, "xsd:date")
	}
	s := n.String
	if len(s) > 10 {
		s = s[:10]
	}
	return time.Parse(time.DateOnly, s)
}

func asTime(v any) (time.Time, error) {
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("expected time.Time, got %T", v)
	}
	return t, nil
}
