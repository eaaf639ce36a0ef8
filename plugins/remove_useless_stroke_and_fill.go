package plugins

import (
	"strings"

	"github.com/tdewolff/svgo"
)

// RemoveUselessStrokeAndFill removes stroke attributes of shapes without a visible stroke and fill attributes of shapes without a visible fill. With removeNone, shapes without stroke and fill are removed.
var RemoveUselessStrokeAndFill = &svgo.Plugin{
	Name:        "removeUselessStrokeAndFill",
	Description: "removes useless stroke and fill attributes",
	Fn:          removeUselessStrokeAndFill,
}

func removeUselessStrokeAndFill(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	removeStroke := params.Bool("stroke", true)
	removeFill := params.Bool("fill", true)
	removeNone := params.Bool("removeNone", false)

	if hasStyleOrScript(root) {
		return nil
	}
	stylesheet := svgo.CollectStylesheet(root)
	isStatic := func(styles svgo.ComputedStyles, name, value string) bool {
		v, ok := styles[name]
		return ok && v.Type == svgo.StaticStyle && v.Value == value
	}

	return &svgo.Visitor{
		Element: svgo.Hooks{
			Enter: func(n *svgo.Node) svgo.Action {
				if n.Has("id") {
					return svgo.SkipChildren
				} else if !svgo.ElemsGroups["shape"][n.Name] {
					return svgo.Continue
				}

				styles := svgo.ComputeStyle(stylesheet, n)
				_, hasStroke := styles["stroke"]
				fill, hasFill := styles["fill"]
				var parentStyles svgo.ComputedStyles
				if parent := n.Parent(); parent != nil && parent.Type == svgo.ElementNode {
					parentStyles = svgo.ComputeStyle(stylesheet, parent)
				}

				if removeStroke {
					if !hasStroke || isStatic(styles, "stroke", "none") || isStatic(styles, "stroke-opacity", "0") || isStatic(styles, "stroke-width", "0") {
						_, hasMarkerEnd := styles["marker-end"]
						if isStatic(styles, "stroke-width", "0") || !hasMarkerEnd {
							n.RemoveFunc(func(attr svgo.Attr) bool {
								return strings.HasPrefix(attr.Name, "stroke")
							})
							if v, ok := parentStyles["stroke"]; ok && v.Type == svgo.StaticStyle && v.Value != "none" {
								n.Set("stroke", "none")
							}
						}
					}
				}
				if removeFill {
					if isStatic(styles, "fill", "none") || isStatic(styles, "fill-opacity", "0") {
						n.RemoveFunc(func(attr svgo.Attr) bool {
							return strings.HasPrefix(attr.Name, "fill-")
						})
						if !hasFill || fill.Type == svgo.StaticStyle && fill.Value != "none" {
							n.Set("fill", "none")
						}
					}
				}
				if removeNone {
					if (!hasStroke || n.Get("stroke") == "none") && (isStatic(styles, "fill", "none") || n.Get("fill") == "none") {
						n.Detach()
					}
				}
				return svgo.Continue
			},
		},
	}
}
