package plugins

import "github.com/tdewolff/svgo"

// RemoveUselessDefs removes the content of defs and non-rendering elements that cannot be referenced, that is elements without an id other than style elements.
var RemoveUselessDefs = &svgo.Plugin{
	Name:        "removeUselessDefs",
	Description: "removes elements in <defs> without id",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if n.Name == "defs" || svgo.ElemsGroups["nonRendering"][n.Name] && !n.Has("id") {
				useful := collectUsefulNodes(n, nil)
				if len(useful) == 0 {
					n.Detach()
				}
				n.SetChildren(useful)
			}
		})
	},
}

func collectUsefulNodes(n *svgo.Node, useful []*svgo.Node) []*svgo.Node {
	for _, c := range n.Children() {
		if c.Type != svgo.ElementNode {
			continue
		} else if c.Has("id") || c.Name == "style" {
			useful = append(useful, c)
		} else {
			useful = collectUsefulNodes(c, useful)
		}
	}
	return useful
}
