package ir

import (
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type   Type
	Fields []Field
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64

	// Space is the XML namespace qualifying this node when it renders as
	// an element. Empty means inherit from the enclosing element.
	Space string
}

// Field names the value at the same index of an ObjectType node's Values.
type Field struct {
	Name string
	// Attr marks the member as an XML attribute of the enclosing element.
	// JSON renderings treat attribute members like any other member.
	Attr bool
}

// Text is the member name carrying an element's character data.
const Text = "."

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Space = y.Space
	dst.Fields = slices.Clone(y.Fields)
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dst.Values[i] = dstI
	}
	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber keeps the lexical form of a number alongside its parsed value
// so encoders can reproduce the input text exactly.
func FromNumber(lexical string) *Node {
	n := &Node{
		Type:   NumberType,
		Number: lexical,
	}
	if i, err := strconv.ParseInt(lexical, 10, 64); err == nil {
		n.Int64 = &i
	} else if f, err := strconv.ParseFloat(lexical, 64); err == nil {
		n.Float64 = &f
	}
	return n
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

func FromSlice(ySlice []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: ySlice,
	}
}

// FromMap builds an object with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := Object()
	for _, k := range slices.Sorted(maps.Keys(yMap)) {
		res.Set(k, yMap[k])
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f.Name] = node.Values[i]
	}
	return res
}

// Set appends the member, or replaces the value of an existing member with
// the same name. It returns y.
func (y *Node) Set(name string, v *Node) *Node {
	return y.set(Field{Name: name}, v)
}

// SetAttr is Set for XML attribute members.
func (y *Node) SetAttr(name string, v *Node) *Node {
	return y.set(Field{Name: name, Attr: true}, v)
}

// Append adds the member without looking for an existing one with the same
// name. XML element sequences repeat member names.
func (y *Node) Append(name string, v *Node) *Node {
	y.Fields = append(y.Fields, Field{Name: name})
	y.Values = append(y.Values, v)
	return y
}

func (y *Node) set(f Field, v *Node) *Node {
	for i, have := range y.Fields {
		if have.Name == f.Name && have.Attr == f.Attr {
			y.Values[i] = v
			return y
		}
	}
	y.Fields = append(y.Fields, f)
	y.Values = append(y.Values, v)
	return y
}

// Get returns the value of the first member with the given name, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if f.Name == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Len() int {
	switch y.Type {
	case ObjectType:
		return len(y.Fields)
	case ArrayType:
		return len(y.Values)
	default:
		return 0
	}
}

// Visit walks the tree in depth-first order, calling f before (isPost=false)
// and after (isPost=true) each node's children. Returning false from the
// pre-order call skips the subtree.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	descend, err := f(y, false)
	if err != nil {
		return err
	}
	if descend {
		for _, v := range y.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(y, true)
	return err
}
