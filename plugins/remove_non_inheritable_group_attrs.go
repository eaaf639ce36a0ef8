package plugins

import "github.com/tdewolff/svgo"

// RemoveNonInheritableGroupAttrs removes presentation attributes of groups that neither inherit to the children nor apply to the group itself.
var RemoveNonInheritableGroupAttrs = &svgo.Plugin{
	Name:        "removeNonInheritableGroupAttrs",
	Description: "removes non-inheritable group's presentational attributes",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if n.Name != "g" {
				return
			}
			n.RemoveFunc(func(attr svgo.Attr) bool {
				return svgo.AttrsGroups["presentation"][attr.Name] && !svgo.InheritableAttrs[attr.Name] && !svgo.PresentationNonInheritableGroupAttrs[attr.Name]
			})
		})
	},
}
