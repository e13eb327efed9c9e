package codec

import (
	"encoding/base64"
	"fmt"
	"reflect"

	"github.com/objform/objform/ir"
)

var byteSliceType = reflect.TypeOf([]byte(nil))

// Base64Bytes converts []byte to and from standard base64 text. It is the
// default codec for []byte, which would otherwise look like an array.
type Base64Bytes struct{}

func (Base64Bytes) Encode(v any) (*ir.Node, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("expected []byte, got %T", v)
	}
	return ir.FromString(base64.StdEncoding.EncodeToString(b)), nil
}

func (Base64Bytes) Decode(n *ir.Node) (any, error) {
	if n.Type != ir.StringType {
		return nil, typeError(n, "base64 bytes")
	}
	return base64.StdEncoding.DecodeString(n.String)
}
