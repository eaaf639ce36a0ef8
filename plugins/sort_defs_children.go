package plugins

import "github.com/tdewolff/svgo"

// SortDefsChildren sorts the children of defs by how often their element name occurs and then by name, which improves compression.
var SortDefsChildren = &svgo.Plugin{
	Name:        "sortDefsChildren",
	Description: "Sorts children of <defs> to improve compression",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if n.Name != "defs" {
				return
			}
			frequencies := map[string]int{}
			for _, c := range n.Elements() {
				frequencies[c.Name]++
			}
			n.SortChildren(func(a, b *svgo.Node) bool {
				if a.Type != svgo.ElementNode || b.Type != svgo.ElementNode {
					return false
				}
				if fa, fb := frequencies[a.Name], frequencies[b.Name]; fa != fb {
					return fb < fa
				} else if len(a.Name) != len(b.Name) {
					return len(b.Name) < len(a.Name)
				}
				return b.Name < a.Name
			})
		})
	},
}
