package plugins

import (
	"strings"

	"github.com/tdewolff/svgo"
)

// RemoveDimensions removes the width and height of the outer svg element in favor of its viewBox, which is added when missing.
var RemoveDimensions = &svgo.Plugin{
	Name:        "removeDimensions",
	Description: "removes width and height in presence of viewBox (opposite to removeViewBox)",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if n.Name != "svg" {
				return
			} else if n.Has("viewBox") {
				n.Remove("width")
				n.Remove("height")
				return
			}
			width, okWidth := parseNumber(strings.TrimSuffix(n.Get("width"), "px"))
			height, okHeight := parseNumber(strings.TrimSuffix(n.Get("height"), "px"))
			if okWidth && okHeight {
				n.Set("viewBox", "0 0 "+svgo.FormatNumber(width)+" "+svgo.FormatNumber(height))
				n.Remove("width")
				n.Remove("height")
			}
		})
	},
}
