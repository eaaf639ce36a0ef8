package plugins

import "github.com/tdewolff/svgo"

// ConvertEllipseToCircle converts ellipses with equal radii into circles.
var ConvertEllipseToCircle = &svgo.Plugin{
	Name:        "convertEllipseToCircle",
	Description: "converts non-eccentric <ellipse>s to <circle>s",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if n.Name != "ellipse" {
				return
			}
			rx, ry := n.Get("rx"), n.Get("ry")
			if rx == "" {
				rx = "0"
			}
			if ry == "" {
				ry = "0"
			}
			if rx != ry && rx != "auto" && ry != "auto" {
				return
			}
			r := rx
			if rx == "auto" {
				r = ry
			}
			n.Name = "circle"
			n.Remove("rx")
			n.Remove("ry")
			n.Set("r", r)
		})
	},
}
