package plugins

import "github.com/tdewolff/svgo"

// RemoveStyleElement removes style elements.
var RemoveStyleElement = &svgo.Plugin{
	Name:        "removeStyleElement",
	Description: "removes <style> element",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if n.Name == "style" {
				n.Detach()
			}
		})
	},
}
