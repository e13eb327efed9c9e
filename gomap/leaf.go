package gomap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/objform/objform/ir"
	"github.com/objform/objform/schema"
)

// leafText reduces an element node to its character data: attributes
// drop away, an empty element reads as the empty string.
func leafText(n *ir.Node) *ir.Node {
	switch n.Type {
	case ir.ObjectType:
		if t := ir.Get(n, ir.Text); t != nil {
			return t
		}
		return ir.FromString("")
	case ir.NullType:
		return ir.FromString("")
	default:
		return n
	}
}

func emptyLeaf(n *ir.Node) bool {
	return n.Type == ir.NullType || (n.Type == ir.StringType && n.String == "")
}

func leafDesc(n *ir.Node) string {
	switch n.Type {
	case ir.StringType:
		return strconv.Quote(n.String)
	case ir.NumberType:
		return lexical(n)
	default:
		return n.Type.String()
	}
}

// lexical returns the textual form of a number or string leaf.
func lexical(n *ir.Node) string {
	switch n.Type {
	case ir.NumberType:
		if n.Number != "" {
			return n.Number
		}
		if n.Int64 != nil {
			return strconv.FormatInt(*n.Int64, 10)
		}
		if n.Float64 != nil {
			return strconv.FormatFloat(*n.Float64, 'g', -1, 64)
		}
	case ir.StringType:
		return n.String
	}
	return ""
}

func (w *walker) boolValue(leaf *ir.Node, path string) (bool, error) {
	switch leaf.Type {
	case ir.BoolType:
		return leaf.Bool, nil
	case ir.StringType:
		if w.f.IsXML() {
			switch leaf.String {
			case "true", "1":
				return true, nil
			case "false", "0":
				return false, nil
			}
		}
	}
	return false, &ValueConversionError{Path: path,
		Message: fmt.Sprintf("cannot read bool from %s", leafDesc(leaf))}
}

func (w *walker) intValue(leaf *ir.Node, path string) (int64, error) {
	switch leaf.Type {
	case ir.NumberType:
		if leaf.Int64 != nil {
			return *leaf.Int64, nil
		}
	case ir.StringType:
		if !w.f.IsXML() {
			return 0, &ValueConversionError{Path: path,
				Message: fmt.Sprintf("cannot read integer from %s", leafDesc(leaf))}
		}
	default:
		return 0, &ValueConversionError{Path: path,
			Message: fmt.Sprintf("cannot read integer from %s", leafDesc(leaf))}
	}
	i, err := strconv.ParseInt(lexical(leaf), 10, 64)
	if err != nil {
		return 0, &ValueConversionError{Path: path,
			Message: fmt.Sprintf("cannot read integer from %s", leafDesc(leaf)), Err: err}
	}
	return i, nil
}

func (w *walker) uintValue(leaf *ir.Node, path string) (uint64, error) {
	switch leaf.Type {
	case ir.NumberType:
		if leaf.Int64 != nil && *leaf.Int64 >= 0 {
			return uint64(*leaf.Int64), nil
		}
	case ir.StringType:
		if !w.f.IsXML() {
			return 0, &ValueConversionError{Path: path,
				Message: fmt.Sprintf("cannot read unsigned integer from %s", leafDesc(leaf))}
		}
	default:
		return 0, &ValueConversionError{Path: path,
			Message: fmt.Sprintf("cannot read unsigned integer from %s", leafDesc(leaf))}
	}
	u, err := strconv.ParseUint(lexical(leaf), 10, 64)
	if err != nil {
		return 0, &ValueConversionError{Path: path,
			Message: fmt.Sprintf("cannot read unsigned integer from %s", leafDesc(leaf)), Err: err}
	}
	return u, nil
}

func (w *walker) floatValue(leaf *ir.Node, path string) (float64, error) {
	switch leaf.Type {
	case ir.NumberType:
		if leaf.Float64 != nil {
			return *leaf.Float64, nil
		}
		if leaf.Int64 != nil {
			return float64(*leaf.Int64), nil
		}
	case ir.StringType:
		if !w.f.IsXML() {
			return 0, &ValueConversionError{Path: path,
				Message: fmt.Sprintf("cannot read number from %s", leafDesc(leaf))}
		}
	default:
		return 0, &ValueConversionError{Path: path,
			Message: fmt.Sprintf("cannot read number from %s", leafDesc(leaf))}
	}
	f, err := strconv.ParseFloat(lexical(leaf), 64)
	if err != nil {
		return 0, &ValueConversionError{Path: path,
			Message: fmt.Sprintf("cannot read number from %s", leafDesc(leaf)), Err: err}
	}
	return f, nil
}

// normalizeString applies the XML whitespace facet of a string kind.
func normalizeString(s string, k schema.StringKind) string {
	switch k {
	case schema.TokenString:
		return strings.Join(strings.FieldsFunc(s, isXMLSpace), " ")
	case schema.NormalizedString:
		return strings.Map(func(r rune) rune {
			if isXMLSpace(r) && r != ' ' {
				return ' '
			}
			return r
		}, s)
	default:
		return s
	}
}

func isXMLSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
