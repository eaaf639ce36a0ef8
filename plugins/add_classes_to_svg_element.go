package plugins

import (
	"strings"

	"github.com/tdewolff/svgo"
)

// AddClassesToSVGElement adds class names to the outer svg element.
var AddClassesToSVGElement = &svgo.Plugin{
	Name:        "addClassesToSVGElement",
	Description: "adds classnames to an outer <svg> element",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		classNames := params.Strings("classNames")
		if name := params.String("className", ""); name != "" {
			classNames = append(classNames, name)
		}
		if len(classNames) == 0 {
			info.Logger.Warn("addClassesToSVGElement requires the classNames or className parameter")
			return nil
		}
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if n.Name != "svg" || n.Parent() == nil || n.Parent().Type != svgo.RootNode {
				return
			}
			classes := strings.Fields(n.Get("class"))
			for _, name := range classNames {
				if !containsString(classes, name) {
					classes = append(classes, name)
				}
			}
			n.Set("class", strings.Join(classes, " "))
		})
	},
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
