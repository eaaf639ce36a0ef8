package plugins

import (
	"github.com/tdewolff/svgo"
)

// RemoveHiddenElems removes elements that are not rendered: hidden or undisplayed elements, fully transparent elements and shapes with a zero size or without path data. Use elements that reference a removed element are removed too.
var RemoveHiddenElems = &svgo.Plugin{
	Name:        "removeHiddenElems",
	Description: "removes hidden elements (zero sized, with absent attributes)",
	Fn:          removeHiddenElems,
}

func removeHiddenElems(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	isHidden := params.Bool("isHidden", true)
	displayNone := params.Bool("displayNone", true)
	opacity0 := params.Bool("opacity0", true)
	circleR0 := params.Bool("circleR0", true)
	ellipseRX0 := params.Bool("ellipseRX0", true)
	ellipseRY0 := params.Bool("ellipseRY0", true)
	rectWidth0 := params.Bool("rectWidth0", true)
	rectHeight0 := params.Bool("rectHeight0", true)
	patternWidth0 := params.Bool("patternWidth0", true)
	patternHeight0 := params.Bool("patternHeight0", true)
	imageWidth0 := params.Bool("imageWidth0", true)
	imageHeight0 := params.Bool("imageHeight0", true)
	pathEmptyD := params.Bool("pathEmptyD", true)
	polylineEmptyPoints := params.Bool("polylineEmptyPoints", true)
	polygonEmptyPoints := params.Bool("polygonEmptyPoints", true)

	stylesheet := svgo.CollectStylesheet(root)
	removedIDs := map[string]bool{}
	var uses []*svgo.Node

	isZero := func(n *svgo.Node, name string) bool {
		v, ok := n.Attr(name)
		return ok && v == "0"
	}
	hasVisibleDescendant := func(n *svgo.Node) bool {
		found := false
		n.Descendants(func(c *svgo.Node) bool {
			if c.IsElement() && c.Get("visibility") == "visible" {
				found = true
			}
			return !found
		})
		return found
	}
	hidden := func(n *svgo.Node) bool {
		styles := svgo.ComputeStyle(stylesheet, n)
		if isHidden && styles.IsStatic("visibility") && styles["visibility"].Value == "hidden" && !hasVisibleDescendant(n) {
			return true
		} else if displayNone && n.Name != "marker" && styles.IsStatic("display") && styles["display"].Value == "none" {
			return true
		} else if opacity0 && styles.IsStatic("opacity") && styles["opacity"].Value == "0" && !hasAncestor(n, "clipPath") && n.Name != "clipPath" {
			return true
		}

		switch n.Name {
		case "circle":
			return circleR0 && len(n.Children()) == 0 && isZero(n, "r")
		case "ellipse":
			return len(n.Children()) == 0 && (ellipseRX0 && isZero(n, "rx") || ellipseRY0 && isZero(n, "ry"))
		case "rect":
			return len(n.Children()) == 0 && (rectWidth0 && isZero(n, "width") || rectHeight0 && isZero(n, "height"))
		case "pattern":
			return patternWidth0 && isZero(n, "width") || patternHeight0 && isZero(n, "height")
		case "image":
			return imageWidth0 && isZero(n, "width") || imageHeight0 && isZero(n, "height")
		case "path":
			if !pathEmptyD {
				return false
			}
			d, ok := n.Attr("d")
			if !ok {
				return true
			}
			items := svgo.ParsePathData(d)
			if len(items) == 0 {
				return true
			}
			_, markerStart := styles["marker-start"]
			_, markerEnd := styles["marker-end"]
			return len(items) == 1 && !markerStart && !markerEnd
		case "polyline":
			return polylineEmptyPoints && n.Get("points") == ""
		case "polygon":
			return polygonEmptyPoints && n.Get("points") == ""
		}
		return false
	}

	return &svgo.Visitor{
		Element: svgo.Hooks{
			Enter: func(n *svgo.Node) svgo.Action {
				if n.Name == "use" {
					uses = append(uses, n)
				}
				if hidden(n) {
					if id, ok := n.Attr("id"); ok {
						removedIDs[id] = true
					}
					n.Descendants(func(c *svgo.Node) bool {
						if id, ok := c.Attr("id"); ok && c.IsElement() {
							removedIDs[id] = true
						}
						return true
					})
					n.Detach()
					return svgo.SkipChildren
				}
				return svgo.Continue
			},
		},
		Root: svgo.Hooks{
			Exit: func(*svgo.Node) {
				for _, use := range uses {
					for _, attr := range use.Attrs {
						if !isHref(attr.Name) {
							continue
						}
						for _, id := range findReferences(attr.Name, attr.Value) {
							if removedIDs[id] {
								use.Detach()
							}
						}
					}
				}
			},
		},
	}
}
