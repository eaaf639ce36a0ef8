package plugins

import "github.com/tdewolff/svgo"

// RemoveDoctype removes the doctype declaration.
var RemoveDoctype = &svgo.Plugin{
	Name:        "removeDoctype",
	Description: "removes doctype declaration",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return &svgo.Visitor{
			Doctype: svgo.Hooks{
				Enter: func(n *svgo.Node) svgo.Action {
					n.Detach()
					return svgo.Continue
				},
			},
		}
	},
}
