package codec

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"

	"github.com/objform/objform/ir"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// Decimal converts decimal.Decimal to and from leaf nodes without a float
// round trip. JSON carries the value as a number in its exact lexical form,
// XML as element or attribute text.
type Decimal struct{}

func (Decimal) Encode(v any) (*ir.Node, error) {
	d, ok := v.(decimal.Decimal)
	if !ok {
		return nil, fmt.Errorf("expected decimal.Decimal, got %T", v)
	}
	return ir.FromNumber(d.String()), nil
}

func (Decimal) Decode(n *ir.Node) (any, error) {
	switch n.Type {
	case ir.NumberType:
		return decimal.NewFromString(lexical(n))
	case ir.StringType:
		return decimal.NewFromString(n.String)
	default:
		return nil, typeError(n, "decimal")
	}
}

func lexical(n *ir.Node) string {
	if n.Number != "" {
		return n.Number
	}
	if n.Int64 != nil {
		return fmt.Sprintf("%d", *n.Int64)
	}
	if n.Float64 != nil {
		return fmt.Sprintf("%g", *n.Float64)
	}
	return ""
}
