package gomap

import (
	"github.com/objform/objform/ir"
	"github.com/objform/objform/schema"
)

// resolveNone decides how an absent value renders. It returns false to
// omit the member, or true with the node to emit, a null unless the
// matching view rule overrides it.
//
// Views only ever widen or narrow what happens to absent values: a rule
// for the selected view wins, otherwise the property's IncludeNone
// default applies.
func (w *walker) resolveNone(p *schema.Property) (*ir.Node, bool) {
	if w.viewSet {
		if rule, ok := p.ViewRules[w.view]; ok {
			if !rule.Included {
				return nil, false
			}
			if rule.Override != nil {
				return rule.Override.Clone(), true
			}
			return ir.Null(), true
		}
	}
	if p.IncludeNone {
		return ir.Null(), true
	}
	return nil, false
}
