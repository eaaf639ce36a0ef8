package plugins

import (
	"github.com/tdewolff/svgo"
)

// CollapseGroups removes groups without attributes and moves the attributes of a group with a single child to that child.
var CollapseGroups = &svgo.Plugin{
	Name:        "collapseGroups",
	Description: "collapses useless groups",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return &svgo.Visitor{
			Element: svgo.Hooks{
				Exit: collapseGroup,
			},
		}
	},
}

func collapseGroup(n *svgo.Node) {
	parent := n.Parent()
	if parent == nil || parent.Type == svgo.RootNode || parent.IsElement("switch") {
		return
	} else if n.Name != "g" || len(n.Children()) == 0 {
		return
	}

	if len(n.Attrs) != 0 && len(n.Children()) == 1 {
		child := n.FirstChild()
		_, groupClass := n.Attr("class")
		_, childClass := child.Attr("class")
		if child.IsElement() && !child.Has("id") && !n.Has("filter") && (!groupClass || !childClass) &&
			(!n.Has("clip-path") && !n.Has("mask") || child.Name == "g" && !n.Has("transform") && !child.Has("transform")) {
			attrs := append([]svgo.Attr{}, child.Attrs...)
			set := func(name, value string) {
				for i := range attrs {
					if attrs[i].Name == name {
						attrs[i].Value = value
						return
					}
				}
				attrs = append(attrs, svgo.Attr{Name: name, Value: value})
			}
			for _, attr := range n.Attrs {
				if hasAnimatedAttr(child, attr.Name) {
					return
				}
				value, ok := child.Attr(attr.Name)
				if !ok {
					set(attr.Name, attr.Value)
				} else if attr.Name == "transform" {
					set(attr.Name, attr.Value+" "+value)
				} else if value == "inherit" {
					set(attr.Name, attr.Value)
				} else if !svgo.InheritableAttrs[attr.Name] && value != attr.Value {
					return
				}
			}
			n.Attrs = nil
			child.Attrs = attrs
		}
	}

	if len(n.Attrs) == 0 {
		for _, c := range n.Children() {
			if c.IsElement() && svgo.ElemsGroups["animation"][c.Name] {
				return
			}
		}
		n.ReplaceWith(append([]*svgo.Node{}, n.Children()...)...)
	}
}

// hasAnimatedAttr returns true if an animation element in the subtree targets the attribute.
func hasAnimatedAttr(n *svgo.Node, name string) bool {
	if n.IsElement() && svgo.ElemsGroups["animation"][n.Name] && n.Get("attributeName") == name {
		return true
	}
	for _, c := range n.Children() {
		if hasAnimatedAttr(c, name) {
			return true
		}
	}
	return false
}
