package plugins

import "github.com/tdewolff/svgo"

// RemoveMetadata removes metadata elements.
var RemoveMetadata = &svgo.Plugin{
	Name:        "removeMetadata",
	Description: "removes <metadata>",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if n.Name == "metadata" {
				n.Detach()
			}
		})
	},
}
