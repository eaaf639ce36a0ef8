package plugins

import "github.com/tdewolff/svgo"

// RemoveEmptyText removes empty text, tspan and tref elements.
var RemoveEmptyText = &svgo.Plugin{
	Name:        "removeEmptyText",
	Description: "removes empty <text> elements",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		text := params.Bool("text", true)
		tspan := params.Bool("tspan", true)
		tref := params.Bool("tref", true)
		return svgo.ElementVisitor(func(n *svgo.Node) {
			switch {
			case text && n.Name == "text" && len(n.Children()) == 0:
				n.Detach()
			case tspan && n.Name == "tspan" && len(n.Children()) == 0:
				n.Detach()
			case tref && n.Name == "tref" && !n.Has("xlink:href"):
				n.Detach()
			}
		})
	},
}
