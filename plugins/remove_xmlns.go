package plugins

import "github.com/tdewolff/svgo"

// RemoveXMLNS removes the xmlns attribute of the outer svg element, for inline SVG.
var RemoveXMLNS = &svgo.Plugin{
	Name:        "removeXMLNS",
	Description: "removes xmlns attribute (for inline svg, disabled by default)",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if n.Name == "svg" {
				n.Remove("xmlns")
			}
		})
	},
}
