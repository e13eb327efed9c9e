// Package codec converts scalar Go types to and from leaf nodes.
//
// A Codec handles one Go type. Codecs are looked up in a Registry by exact
// reflect.Type, and a schema property may pin a codec directly, overriding
// the registry. The built-ins cover time.Time (RFC3339Time, with XSDDate
// and XSDDateTime as opt-in alternatives), decimal.Decimal, and []byte.
//
// A codec may refine its behavior per format by implementing JSONCodec or
// XMLCodec; the refinement wins for that format and Encode/Decode remain
// the fallback for all others.
package codec
