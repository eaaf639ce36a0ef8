package plugins

import "github.com/tdewolff/svgo"

// RemoveTitle removes title elements.
var RemoveTitle = &svgo.Plugin{
	Name:        "removeTitle",
	Description: "removes <title>",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if n.Name == "title" {
				n.Detach()
			}
		})
	},
}
