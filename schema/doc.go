// Package schema declares how Go types serialize.
//
// # Overview
//
// A Registry holds one compiled TypeDef per Go type. Definitions are built
// declaratively and registered once, usually at init time:
//
//	reg := schema.NewRegistry()
//	reg.MustRegister(schema.Define("Chapter", Chapter{}).
//		Prop(schema.Prop("Number").Sequence(1)).
//		Prop(schema.Prop("Title").Sequence(2)))
//	reg.MustRegister(schema.Define("Book", Book{}).
//		Prop(schema.Prop("ISBN").Name("isbn_number").Attribute().Sequence(1)).
//		Prop(schema.Prop("Title").Sequence(2)).
//		Prop(schema.Prop("PublishDate").Codec(codec.XSDDate{}).Sequence(3)).
//		Prop(schema.Prop("Authors").Flat("author").Sequence(4)).
//		Prop(schema.Prop("Chapters").Nested("chapter").Sequence(5)))
//
// Wire names default to the registry's formatter applied to the accessor
// name; JSON and XML overrides are independent. Nested struct fields bind
// to the definition registered for their Go type, or to an explicit
// forward reference:
//
//	chapter := reg.Ref("Chapter")
//	... schema.Prop("Chapters").Nested("chapter").Of(chapter) ...
//
// Forward references make registration order irrelevant; a reference that
// is still unregistered when first used yields an UnresolvedTypeError.
//
// # Views
//
// A View tags a serialization audience. Properties carry per-view rules
// governing only absent values; present values always serialize. For
// example a property that normally disappears when nil but must appear as
// null for one API version:
//
//	schema.Prop("Rating").IncludeNoneFor(APIv2)
//
// # Concurrency
//
// Registries are safe for concurrent use; lookups take only a read lock.
// Register codecs before the types whose fields rely on them, since kind
// inference consults the codec registry at registration time.
package schema
