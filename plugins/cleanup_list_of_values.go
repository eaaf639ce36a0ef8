package plugins

import (
	"strings"

	"github.com/tdewolff/svgo"
)

var listOfValuesAttrs = map[string]bool{"points": true, "enable-background": true, "viewBox": true, "stroke-dasharray": true, "dx": true, "dy": true, "x": true, "y": true}

// CleanupListOfValues rounds the numbers of attributes that hold a list of values.
var CleanupListOfValues = &svgo.Plugin{
	Name:        "cleanupListOfValues",
	Description: "rounds list of values to the fixed precision",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		opts := numericParams(params)
		return svgo.ElementVisitor(func(n *svgo.Node) {
			for i, attr := range n.Attrs {
				if !listOfValuesAttrs[attr.Name] {
					continue
				}
				fields := separatorRegexp.Split(strings.TrimSpace(attr.Value), -1)
				for j, field := range fields {
					if field == "new" || field == "auto" || field == "inherit" || field == "none" {
						continue
					} else if value, ok := cleanupNumeric(field, opts); ok {
						fields[j] = value
					}
				}
				n.Attrs[i].Value = strings.Join(fields, " ")
			}
		})
	},
}
