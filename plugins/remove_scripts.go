package plugins

import (
	"strings"

	"github.com/tdewolff/svgo"
)

// RemoveScripts removes script elements, event attributes and javascript links. Links with a javascript URL are replaced by their children.
var RemoveScripts = &svgo.Plugin{
	Name:        "removeScripts",
	Description: "removes scripts (disabled by default)",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if n.Name == "script" {
				n.Detach()
				return
			}
			n.RemoveFunc(func(attr svgo.Attr) bool {
				return isEventAttr(attr.Name)
			})
			if n.Name == "a" {
				for _, attr := range n.Attrs {
					if isHref(attr.Name) && strings.HasPrefix(strings.TrimSpace(attr.Value), "javascript:") {
						var children []*svgo.Node
						for _, c := range n.Children() {
							if c.Type != svgo.TextNode {
								children = append(children, c)
							}
						}
						n.ReplaceWith(children...)
						return
					}
				}
			}
		})
	},
}
