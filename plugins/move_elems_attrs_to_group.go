package plugins

import (
	"github.com/tdewolff/svgo"
)

// MoveElemsAttrsToGroup moves inheritable attributes that all children of a group share to the group. Transforms are only moved when the group has no clip-path or mask and not all children are paths.
var MoveElemsAttrsToGroup = &svgo.Plugin{
	Name:        "moveElemsAttrsToGroup",
	Description: "Move common attributes of group children to the group",
	Fn:          moveElemsAttrsToGroup,
}

func moveElemsAttrsToGroup(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	withStyles := false
	root.Descendants(func(n *svgo.Node) bool {
		if n.IsElement("style") {
			withStyles = true
		}
		return !withStyles
	})

	return &svgo.Visitor{
		Element: svgo.Hooks{
			Exit: func(n *svgo.Node) {
				if n.Name != "g" || len(n.Children()) <= 1 || withStyles {
					return
				}

				var common []svgo.Attr
				initial := true
				everyChildIsPath := true
				for _, c := range n.Elements() {
					if !svgo.PathElems[c.Name] {
						everyChildIsPath = false
					}
					if initial {
						initial = false
						for _, attr := range c.Attrs {
							if svgo.InheritableAttrs[attr.Name] {
								common = append(common, attr)
							}
						}
						continue
					}
					kept := common[:0]
					for _, attr := range common {
						if v, ok := c.Attr(attr.Name); ok && v == attr.Value {
							kept = append(kept, attr)
						}
					}
					common = kept
				}

				if n.Has("clip-path") || n.Has("mask") || everyChildIsPath {
					kept := common[:0]
					for _, attr := range common {
						if attr.Name != "transform" {
							kept = append(kept, attr)
						}
					}
					common = kept
				}
				for _, attr := range common {
					if attr.Name == "transform" {
						if transform, ok := n.Attr("transform"); ok {
							n.Set("transform", transform+" "+attr.Value)
							continue
						}
					}
					n.Set(attr.Name, attr.Value)
				}
				for _, c := range n.Elements() {
					for _, attr := range common {
						c.Remove(attr.Name)
					}
				}
			},
		},
	}
}
