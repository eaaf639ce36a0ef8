package plugins

import (
	"strings"

	"github.com/tdewolff/svgo"
)

// RemoveElementsByAttr removes elements by id or by class name.
var RemoveElementsByAttr = &svgo.Plugin{
	Name:        "removeElementsByAttr",
	Description: "removes arbitrary elements by ID or className (disabled by default)",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		ids := params.Strings("id")
		classes := params.Strings("class")
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if id, ok := n.Attr("id"); ok && containsString(ids, id) {
				n.Detach()
				return
			}
			for _, class := range strings.Fields(n.Get("class")) {
				if containsString(classes, class) {
					n.Detach()
					return
				}
			}
		})
	},
}
