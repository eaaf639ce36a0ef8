package plugins

import (
	"strings"

	"github.com/tdewolff/svgo"
)

// ConvertOneStopGradients replaces references to gradients with a single stop by the stop color and removes those gradients, as well as defs elements that become empty.
var ConvertOneStopGradients = &svgo.Plugin{
	Name:        "convertOneStopGradients",
	Description: "converts one-stop (single color) gradients to a plain color",
	Fn:          convertOneStopGradients,
}

func convertOneStopGradients(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	stylesheet := svgo.CollectStylesheet(root)
	var defs, gradients []*svgo.Node

	stops := func(n *svgo.Node) []*svgo.Node {
		var stops []*svgo.Node
		for _, c := range n.Children() {
			if c.IsElement("stop") {
				stops = append(stops, c)
			}
		}
		return stops
	}
	replace := func(id, color string) {
		ref := "url(#" + id + ")"
		root.Descendants(func(n *svgo.Node) bool {
			if n.Type != svgo.ElementNode {
				return true
			}
			for name := range svgo.ColorsProps {
				if v, ok := n.Attr(name); ok && v == ref {
					if color != "" {
						n.Set(name, color)
					} else {
						n.Remove(name)
					}
				}
			}
			if style, ok := n.Attr("style"); ok && strings.Contains(style, ref) {
				value := color
				if value == "" {
					value = svgo.AttrsGroupsDefaults["presentation"]["stop-color"]
				}
				n.Set("style", strings.Replace(style, ref, value, 1))
			}
			return true
		})
	}

	return &svgo.Visitor{
		Element: svgo.Hooks{
			Enter: func(n *svgo.Node) svgo.Action {
				if n.Name == "defs" {
					defs = append(defs, n)
					return svgo.Continue
				} else if n.Name != "linearGradient" && n.Name != "radialGradient" {
					return svgo.Continue
				}

				effective := n
				if len(stops(n)) == 0 {
					href, ok := n.Attr("xlink:href")
					if !ok {
						href, ok = n.Attr("href")
					}
					if ok && strings.HasPrefix(href, "#") {
						effective = findByID(root, href[1:])
					}
				}
				if effective == nil {
					gradients = append(gradients, n)
					return svgo.Continue
				}
				effectiveStops := stops(effective)
				if len(effectiveStops) != 1 {
					return svgo.Continue
				}
				gradients = append(gradients, n)

				color, _ := svgo.ComputeStyle(stylesheet, effectiveStops[0]).Value("stop-color")
				if id, ok := n.Attr("id"); ok {
					replace(id, color)
				}
				return svgo.Continue
			},
		},
		Root: svgo.Hooks{
			Exit: func(root *svgo.Node) {
				for _, n := range gradients {
					n.Detach()
				}
				for _, n := range defs {
					if n.Parent() != nil && len(n.Children()) == 0 {
						n.Detach()
					}
				}
				if 0 < len(gradients) && !hasXlinkHref(root) {
					for _, n := range root.Elements() {
						if n.Name == "svg" {
							n.Remove("xmlns:xlink")
						}
					}
				}
			},
		},
	}
}

// findByID returns the first element with the given ID.
func findByID(root *svgo.Node, id string) *svgo.Node {
	var found *svgo.Node
	root.Descendants(func(n *svgo.Node) bool {
		if found == nil && n.Type == svgo.ElementNode && n.Get("id") == id {
			found = n
		}
		return found == nil
	})
	return found
}

func hasXlinkHref(root *svgo.Node) bool {
	found := false
	root.Descendants(func(n *svgo.Node) bool {
		if n.Type == svgo.ElementNode && n.Has("xlink:href") {
			found = true
		}
		return !found
	})
	return found
}
