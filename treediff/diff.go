package treediff

import (
	"fmt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/objform/objform/ir"
	"github.com/objform/objform/jsontext"
)

// Change trees mirror the documents they compare: objects hold their
// changed members, arrays their elements with unchanged ones as null
// placeholders, and every changed leaf becomes an edit object holding
// the two sides under FromKey and ToKey.
const (
	FromKey = "-"
	ToKey   = "+"
)

// MakeEdit builds the edit record for one replaced, inserted (from
// nil) or deleted (to nil) value.
func MakeEdit(from, to *ir.Node) *ir.Node {
	res := ir.Object()
	if from != nil {
		res.Set(FromKey, from.Clone())
	}
	if to != nil {
		res.Set(ToKey, to.Clone())
	}
	return res
}

// IsEdit reports whether a change-tree node is an edit record.
func IsEdit(n *ir.Node) bool {
	if n == nil || n.Type != ir.ObjectType || len(n.Fields) == 0 {
		return false
	}
	for _, f := range n.Fields {
		if f.Name != FromKey && f.Name != ToKey {
			return false
		}
	}
	return true
}

// Diff returns the change tree transforming from into to, or nil when
// the two documents are equal.
func Diff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil || to == nil:
		return MakeEdit(from, to)
	case from.Type != to.Type:
		return MakeEdit(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		return diffObject(from, to)
	case ir.ArrayType:
		return diffArray(from, to)
	default:
		if ir.Equal(from, to) {
			return nil
		}
		return MakeEdit(from, to)
	}
}

// diffObject maps member names to runes and lets the text differ align
// the two member sequences, so renamed and moved members come out as
// delete/insert pairs while kept names recurse on their values.
func diffObject(from, to *ir.Node) *ir.Node {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := ir.Object()
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				res.Set(runeMap[r], MakeEdit(from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				if sub := Diff(from.Values[fi], to.Values[ti]); sub != nil {
					res.Set(runeMap[r], sub)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				res.Set(runeMap[r], MakeEdit(nil, to.Values[ti]))
				ti++
			}
		}
	}
	if res.Len() == 0 {
		return nil
	}
	return res
}

// diffArray aligns elements by content hash. Aligned elements are
// equal and appear as null placeholders keeping positions readable;
// the rest become edit records in document order.
func diffArray(from, to *ir.Node) *ir.Node {
	hashMap := map[uint64]rune{}
	fromRunes := mapValuesTo(hashMap, from)
	toRunes := mapValuesTo(hashMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var elems []*ir.Node
	changed := false
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				elems = append(elems, MakeEdit(from.Values[fi], nil))
				fi++
				changed = true
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				elems = append(elems, ir.Null())
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				elems = append(elems, MakeEdit(nil, to.Values[ti]))
				ti++
				changed = true
			}
		}
	}
	if !changed {
		return nil
	}
	return ir.FromSlice(elems)
}

// DiffArrayByKey compares two arrays of objects by the named key
// member instead of by position, so reordering is not a change. Each
// changed element appears with its key member alongside the member
// diffs.
func DiffArrayByKey(from, to *ir.Node, key string) (*ir.Node, error) {
	fromMap, err := keyElems(from, key)
	if err != nil {
		return nil, err
	}
	toMap, err := keyElems(to, key)
	if err != nil {
		return nil, err
	}
	objDiff := Diff(ir.FromMap(fromMap), ir.FromMap(toMap))
	if objDiff == nil {
		return nil, nil
	}
	resItems := make([]*ir.Node, 0, objDiff.Len())
	for i, f := range objDiff.Fields {
		keyVal, err := jsontext.Parse([]byte(f.Name))
		if err != nil {
			return nil, err
		}
		item := ir.Object().Set(key, keyVal)
		v := objDiff.Values[i]
		if v.Type != ir.ObjectType {
			return nil, fmt.Errorf("wrong type for keyed element diff: %s", v.Type)
		}
		for j, vf := range v.Fields {
			item.Set(vf.Name, v.Values[j])
		}
		resItems = append(resItems, item)
	}
	return ir.FromSlice(resItems), nil
}

func keyElems(arr *ir.Node, key string) (map[string]*ir.Node, error) {
	if arr.Type != ir.ArrayType {
		return nil, fmt.Errorf("keyed diff needs arrays, got %s", arr.Type)
	}
	res := make(map[string]*ir.Node, len(arr.Values))
	for _, v := range arr.Values {
		kv := ir.Get(v, key)
		if kv == nil {
			return nil, fmt.Errorf("element has no %q member", key)
		}
		res[jsontext.MustString(kv)] = v
	}
	return res, nil
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].Name
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}

func mapValuesTo(m map[uint64]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		h := v.Hash()
		r, ok := m[h]
		if !ok {
			r = rune(len(m))
			m[h] = r
		}
		rs[i] = r
	}
	return rs
}
