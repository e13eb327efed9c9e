// Package ir provides the intermediate representation (IR) for documents
// exchanged between the traversal engine and the text layers.
//
// # Overview
//
// A document, whether parsed from JSON or XML text or produced by walking an
// object graph against its schema, is represented as a tree of ir.Node
// values. The IR is a recursive tagged union: values are placed in fields
// depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64, float64, or lexical fallback)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: ordered members (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.Object().Set("key", ir.FromString("value"))
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Objects
//
// For ObjectType nodes, Fields[i] names the value at Values[i], so there
// are always as many fields as values. Member order is significant and is
// preserved by the text layers. JSON objects never repeat a member name;
// XML element sequences do (see Append).
//
// # Numbers
//
// Number values are placed under:
//   - Int64: if the value is a 64-bit signed integer
//   - Float64: if the value is a 64-bit IEEE float
//   - Number: the lexical form as read from input, kept so encoders can
//     reproduce the text exactly
//
// FromNumber populates the lexical form and whichever parsed field applies.
//
// # XML Annotations
//
// XML-shaped trees reuse the same node type with two annotations: a member
// whose Field.Attr is set renders as an attribute of the enclosing element,
// and Node.Space carries a namespace that overrides the inherited one. The
// member name "." (ir.Text) carries element character data. JSON-shaped
// trees leave all three alone.
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone nodes or synchronize access
// when sharing trees across goroutines.
package ir
