package plugins

import "github.com/tdewolff/svgo"

// RemoveEmptyAttrs removes attributes with an empty value, except conditional processing attributes.
var RemoveEmptyAttrs = &svgo.Plugin{
	Name:        "removeEmptyAttrs",
	Description: "removes empty attributes",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			n.RemoveFunc(func(attr svgo.Attr) bool {
				return attr.Value == "" && !svgo.AttrsGroups["conditionalProcessing"][attr.Name]
			})
		})
	},
}
