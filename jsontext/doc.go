// Package jsontext reads and writes JSON text as ir trees.
//
// Unlike generic unmarshaling into maps, the tree keeps what JSON
// documents actually carry: object member order, duplicate keys, and
// the lexical spelling of numbers. Encode(Parse(d)) reproduces a
// compact document exactly.
package jsontext
