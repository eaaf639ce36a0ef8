package plugins

import (
	"regexp"

	"github.com/tdewolff/svgo"
)

var enableBackgroundRegexp = regexp.MustCompile(`^new\s0\s0\s([-+]?\d*\.?\d+([eE][-+]?\d+)?)\s([-+]?\d*\.?\d+([eE][-+]?\d+)?)$`)

// CleanupEnableBackground removes enable-background when it equals the dimensions of the svg, mask or pattern element, or everywhere when the document has no filters.
var CleanupEnableBackground = &svgo.Plugin{
	Name:        "cleanupEnableBackground",
	Description: "remove or cleanup enable-background attribute when possible",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		hasFilter := false
		root.Descendants(func(n *svgo.Node) bool {
			if n.IsElement("filter") {
				hasFilter = true
			}
			return !hasFilter
		})

		return svgo.ElementVisitor(func(n *svgo.Node) {
			value, ok := n.Attr("enable-background")
			if !ok {
				return
			} else if !hasFilter {
				n.Remove("enable-background")
				return
			}
			if n.IsElement("svg", "mask", "pattern") && n.Has("width") && n.Has("height") {
				m := enableBackgroundRegexp.FindStringSubmatch(value)
				if m != nil && m[1] == n.Get("width") && m[3] == n.Get("height") {
					if n.Name == "svg" {
						n.Remove("enable-background")
					} else {
						n.Set("enable-background", "new")
					}
				}
			}
		})
	},
}
