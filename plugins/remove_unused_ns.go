package plugins

import (
	"strings"

	"github.com/tdewolff/svgo"
)

// RemoveUnusedNS removes namespace declarations of the outer svg element that no element or attribute uses.
var RemoveUnusedNS = &svgo.Plugin{
	Name:        "removeUnusedNS",
	Description: "removes unused namespaces declaration",
	Fn:          removeUnusedNS,
}

func removeUnusedNS(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	unused := map[string]bool{}
	var svg *svgo.Node
	markUsed := func(name string) {
		if i := strings.IndexByte(name, ':'); i != -1 {
			delete(unused, name[:i])
		}
	}
	return &svgo.Visitor{
		Element: svgo.Hooks{
			Enter: func(n *svgo.Node) svgo.Action {
				if n.Name == "svg" && n.Parent() != nil && n.Parent().Type == svgo.RootNode {
					svg = n
					for _, attr := range n.Attrs {
						if strings.HasPrefix(attr.Name, "xmlns:") {
							unused[attr.Name[6:]] = true
						}
					}
				}
				if len(unused) != 0 {
					markUsed(n.Name)
					for _, attr := range n.Attrs {
						if !strings.HasPrefix(attr.Name, "xmlns:") {
							markUsed(attr.Name)
						}
					}
				}
				return svgo.Continue
			},
		},
		Root: svgo.Hooks{
			Exit: func(*svgo.Node) {
				if svg == nil {
					return
				}
				svg.RemoveFunc(func(attr svgo.Attr) bool {
					return strings.HasPrefix(attr.Name, "xmlns:") && unused[attr.Name[6:]]
				})
			},
		},
	}
}
