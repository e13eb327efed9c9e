// Package objform serializes Go object graphs to JSON and XML text,
// and back, directed by declarative per-type schemas.
//
// A schema.Registry holds, per Go type, the ordered property
// descriptors saying how each field is named, shaped and converted on
// the wire. An Engine binds a registry to the text layers:
//
//	reg := schema.NewRegistry()
//	reg.MustRegister(schema.Define("Book", Book{}).
//		Prop(schema.Prop("Title")).
//		Prop(schema.Prop("Chapters").Nested("chapter")))
//
//	eng := objform.New(reg)
//	data, err := eng.Marshal(book, format.XMLFormat)
//	err = eng.Unmarshal(data, &book, format.XMLFormat)
//
// The packages underneath split along the dataflow: schema holds
// registration and descriptors, gomap walks object graphs to and from
// document trees, ir is the tree, jsontext and xmltext are the text
// layers, codec converts leaf values.
package objform
