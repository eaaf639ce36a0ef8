package plugins

import (
	"regexp"

	"github.com/tdewolff/svgo"
)

var rasterImageRegexp = regexp.MustCompile(`(\.|image/)(jpe?g|png|gif)`)

// RemoveRasterImages removes image elements that embed or link to JPEG, PNG or GIF images.
var RemoveRasterImages = &svgo.Plugin{
	Name:        "removeRasterImages",
	Description: "removes raster images (disabled by default)",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if n.Name != "image" {
				return
			}
			for _, attr := range n.Attrs {
				if isHref(attr.Name) && rasterImageRegexp.MatchString(attr.Value) {
					n.Detach()
					return
				}
			}
		})
	},
}
