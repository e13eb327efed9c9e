package ir

import (
	"testing"
)

func TestSetReplacesExisting(t *testing.T) {
	obj := Object().Set("a", FromInt(1)).Set("b", FromInt(2))
	obj.Set("a", FromInt(3))
	if obj.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", obj.Len())
	}
	if got := Get(obj, "a"); got == nil || *got.Int64 != 3 {
		t.Errorf("expected a=3, got %v", got)
	}
	if obj.Fields[0].Name != "a" || obj.Fields[1].Name != "b" {
		t.Errorf("member order changed: %v", obj.Fields)
	}
}

func TestAppendRepeatsNames(t *testing.T) {
	obj := Object().Append("author", FromString("x")).Append("author", FromString("y"))
	if obj.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", obj.Len())
	}
	if obj.Values[0].String != "x" || obj.Values[1].String != "y" {
		t.Errorf("unexpected values: %v %v", obj.Values[0], obj.Values[1])
	}
}

func TestAttrAndElementCoexist(t *testing.T) {
	obj := Object().SetAttr("id", FromString("1")).Set("id", FromString("2"))
	if obj.Len() != 2 {
		t.Fatalf("attribute and element with same name should both exist, got %d members", obj.Len())
	}
}

func TestFromNumber(t *testing.T) {
	tests := []struct {
		in        string
		wantInt   bool
		wantFloat bool
	}{
		{"42", true, false},
		{"-7", true, false},
		{"1.5", false, true},
		{"2e3", false, true},
		{"1e999", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n := FromNumber(tt.in)
			if n.Number != tt.in {
				t.Errorf("lexical form lost: %q", n.Number)
			}
			if (n.Int64 != nil) != tt.wantInt {
				t.Errorf("Int64 presence = %v, expected %v", n.Int64 != nil, tt.wantInt)
			}
			if (n.Float64 != nil) != tt.wantFloat {
				t.Errorf("Float64 presence = %v, expected %v", n.Float64 != nil, tt.wantFloat)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Object().
		Set("title", FromString("t")).
		Set("tags", FromSlice([]*Node{FromString("a")}))
	cp := orig.Clone()
	cp.Values[0].String = "changed"
	cp.Values[1].Values[0].String = "changed"
	if orig.Values[0].String != "t" || orig.Values[1].Values[0].String != "a" {
		t.Errorf("Clone shares structure with original")
	}
	if !Equal(orig, orig.Clone()) {
		t.Errorf("clone not equal to original")
	}
}

func TestHashStable(t *testing.T) {
	n := Object().
		SetAttr("id", FromString("x")).
		Set("n", FromNumber("1.25")).
		Set("xs", FromSlice([]*Node{FromBool(true), Null()}))
	if n.Hash() != n.Hash() {
		t.Errorf("hash not stable across calls")
	}
	if n.Hash() != n.Clone().Hash() {
		t.Errorf("clone hashes differently")
	}
	other := n.Clone()
	other.Values[0].String = "y"
	if n.Hash() == other.Hash() {
		t.Errorf("distinct trees share a hash")
	}
}

func TestVisit(t *testing.T) {
	n := Object().
		Set("a", FromSlice([]*Node{FromInt(1), FromInt(2)})).
		Set("b", FromString("s"))
	var pre, post int
	err := n.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, array, 2 ints, string
	if pre != 5 || post != 5 {
		t.Errorf("visit counts pre=%d post=%d, expected 5/5", pre, post)
	}
}
