package ir

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Hash returns a 64-bit hash of the node, stable across processes.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	h := fnv.New64a()
	var b [8]byte

	h.Write([]byte{byte(n.Type)})
	h.Write([]byte(n.Space))

	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case NumberType:
		if n.Int64 != nil {
			binary.LittleEndian.PutUint64(b[:], uint64(*n.Int64))
			h.Write(b[:])
		} else if n.Float64 != nil {
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(*n.Float64))
			h.Write(b[:])
		} else {
			h.Write([]byte(n.Number))
		}
	case StringType:
		h.Write([]byte(n.String))
	case ArrayType:
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		for i, field := range n.Fields {
			h.Write([]byte(field.Name))
			if field.Attr {
				h.Write([]byte{'@'})
			}
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
