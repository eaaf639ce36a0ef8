package plugins

import (
	"strings"

	"github.com/tdewolff/svgo"
)

// ConvertStyleToAttrs moves presentation properties from the style attribute to attributes. With keepImportant, declarations marked !important stay in the style attribute.
var ConvertStyleToAttrs = &svgo.Plugin{
	Name:        "convertStyleToAttrs",
	Description: "converts style to attributes",
	Fn:          convertStyleToAttrs,
}

func convertStyleToAttrs(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	keepImportant := params.Bool("keepImportant", false)
	return svgo.ElementVisitor(func(n *svgo.Node) {
		style, ok := n.Attr("style")
		if !ok {
			return
		}

		var attrs []svgo.Attr
		var rest []svgo.Declaration
		for _, decl := range svgo.ParseDeclarations(style) {
			name := strings.ToLower(decl.Name)
			if !svgo.AttrsGroups["presentation"][name] || keepImportant && decl.Important {
				rest = append(rest, decl)
				continue
			}
			value := decl.Value
			if 2 <= len(value) && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
				value = value[1 : len(value)-1]
			}
			attrs = append(attrs, svgo.Attr{Name: name, Value: value})
		}
		for _, attr := range attrs {
			n.Set(attr.Name, attr.Value)
		}
		if 0 < len(rest) {
			n.Set("style", svgo.StringifyDeclarations(rest))
		} else {
			n.Remove("style")
		}
	})
}
