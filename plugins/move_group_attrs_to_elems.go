package plugins

import (
	"github.com/tdewolff/svgo"
)

var pathElemsWithGroupsAndText = map[string]bool{"glyph": true, "missing-glyph": true, "path": true, "g": true, "text": true}

// MoveGroupAttrsToElems moves the transform of a group to its children when all children are paths, groups or text without an id, which allows convertPathData to apply it.
var MoveGroupAttrsToElems = &svgo.Plugin{
	Name:        "moveGroupAttrsToElems",
	Description: "moves some group attributes to the content elements",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			transform, ok := n.Attr("transform")
			if n.Name != "g" || len(n.Children()) == 0 || !ok {
				return
			}
			for _, attr := range n.Attrs {
				if svgo.ReferencesProps[attr.Name] && svgo.IncludesURLReference(attr.Value) {
					return
				}
			}
			for _, c := range n.Children() {
				if !c.IsElement() || !pathElemsWithGroupsAndText[c.Name] || c.Has("id") {
					return
				}
			}
			for _, c := range n.Children() {
				if childTransform, ok := c.Attr("transform"); ok {
					c.Set("transform", transform+" "+childTransform)
				} else {
					c.Set("transform", transform)
				}
			}
			n.Remove("transform")
		})
	},
}
