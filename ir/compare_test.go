package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), Object(), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number Comparison: Int < Float < String
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Float < StringNum", FromFloat(1.0), &Node{Type: NumberType, Number: "1e999"}, -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"Lexical == Int", FromNumber("5"), FromInt(5), 0},
		{"Lexical == Float", FromNumber("1.5"), FromFloat(1.5), 0},

		// String Comparison
		{"String < String", FromString("a"), FromString("b"), -1},
		{"String == String", FromString("a"), FromString("a"), 0},

		// Array Comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		// Object Comparison
		{"Empty Object == Empty Object", Object(), Object(), 0},
		{"Short Object < Long Object",
			Object().Set("a", FromInt(1)),
			Object().Set("a", FromInt(1)).Set("b", FromInt(2)),
			-1},
		{"Object Key Comparison",
			Object().Set("a", FromInt(1)),
			Object().Set("b", FromInt(1)),
			-1},
		{"Object Value Comparison",
			Object().Set("a", FromInt(1)),
			Object().Set("a", FromInt(2)),
			-1},
		{"Attr Field < Element Field",
			Object().SetAttr("a", FromInt(1)),
			Object().Set("a", FromInt(1)),
			-1},

		// Namespace participates
		{"Space Comparison",
			&Node{Type: ObjectType, Space: "urn:a"},
			&Node{Type: ObjectType, Space: "urn:b"},
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %d, expected %d", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("reversed Compare() = %d, expected %d", got, -tt.expected)
			}
		})
	}
}

func TestEqualIgnoresLexicalForm(t *testing.T) {
	a := FromNumber("42")
	b := FromInt(42)
	if !Equal(a, b) {
		t.Errorf("expected lexical 42 to equal FromInt(42)")
	}
}
