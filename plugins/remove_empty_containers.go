package plugins

import "github.com/tdewolff/svgo"

// RemoveEmptyContainers removes container elements without children. Patterns with attributes, masks with an id, children of switch and groups with a filter are kept since they may still render.
var RemoveEmptyContainers = &svgo.Plugin{
	Name:        "removeEmptyContainers",
	Description: "removes empty container elements",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return &svgo.Visitor{
			Element: svgo.Hooks{
				Exit: func(n *svgo.Node) {
					parent := n.Parent()
					if parent == nil || n.Name == "svg" || !svgo.ElemsGroups["container"][n.Name] || len(n.Children()) != 0 {
						return
					} else if n.Name == "pattern" && len(n.Attrs) != 0 {
						return
					} else if n.Name == "mask" && n.Has("id") {
						return
					} else if parent.IsElement("switch") {
						return
					} else if n.Name == "g" && n.Has("filter") {
						return
					}
					n.Detach()
				},
			},
		}
	},
}
