package plugins

import (
	"strconv"

	"github.com/tdewolff/svgo"
)

// ReusePaths finds paths with equal data, fill and stroke, moves one copy into defs and replaces all occurrences by use elements that reference it.
var ReusePaths = &svgo.Plugin{
	Name:        "reusePaths",
	Description: "Finds <path> elements with the same d, fill, and stroke, and converts them to <use> elements referencing a single <path> def.",
	Fn:          reusePaths,
}

func reusePaths(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	stylesheet := svgo.CollectStylesheet(root)
	paths := map[string][]*svgo.Node{}
	var keys []string
	var svgDefs *svgo.Node
	hrefs := map[string]bool{}

	hasIDRule := func(id string) bool {
		for _, rule := range stylesheet.Rules {
			if rule.Selector == "#"+id {
				return true
			}
		}
		return false
	}

	return &svgo.Visitor{
		Element: svgo.Hooks{
			Enter: func(n *svgo.Node) svgo.Action {
				if n.Name == "path" && n.Has("d") {
					key := n.Get("d") + ";s:" + n.Get("stroke") + ";f:" + n.Get("fill")
					if _, ok := paths[key]; !ok {
						keys = append(keys, key)
					}
					paths[key] = append(paths[key], n)
				}
				if svgDefs == nil && n.Name == "defs" && n.Parent().IsElement("svg") {
					svgDefs = n
				}
				if n.Name == "use" {
					for _, name := range []string{"href", "xlink:href"} {
						if href := n.Get(name); 1 < len(href) && href[0] == '#' {
							hrefs[href[1:]] = true
						}
					}
				}
				return svgo.Continue
			},
			Exit: func(n *svgo.Node) {
				if n.Name != "svg" || n.Parent() == nil || n.Parent().Type != svgo.RootNode {
					return
				}
				defs := svgDefs
				if defs == nil {
					defs = svgo.NewElement("defs")
				}

				index := 0
				for _, key := range keys {
					list := paths[key]
					if len(list) < 2 {
						continue
					}
					reusable := svgo.NewElement("path")
					for _, name := range []string{"fill", "stroke", "d"} {
						if v, ok := list[0].Attr(name); ok {
							reusable.Set(name, v)
						}
					}
					if id, ok := list[0].Attr("id"); !ok || hrefs[id] || hasIDRule(id) {
						reusable.Set("id", "reuse-"+strconv.Itoa(index))
						index++
					} else {
						reusable.Set("id", id)
						list[0].Remove("id")
					}
					defs.AppendChild(reusable)
					ref := "#" + reusable.Get("id")

					for _, p := range list {
						p.Remove("d")
						p.Remove("stroke")
						p.Remove("fill")
						if p.Parent() == defs && len(p.Children()) == 0 {
							if len(p.Attrs) == 0 {
								p.Detach()
								continue
							} else if id, ok := p.Attr("id"); ok && len(p.Attrs) == 1 {
								p.Detach()
								n.Descendants(func(c *svgo.Node) bool {
									for _, name := range []string{"href", "xlink:href"} {
										if v, ok := c.Attr(name); ok && v == "#"+id {
											c.Set(name, ref)
										}
									}
									return true
								})
								continue
							}
						}
						p.Name = "use"
						p.Set("xlink:href", ref)
					}
				}
				if 0 < len(defs.Children()) {
					if !n.Has("xmlns:xlink") {
						n.Set("xmlns:xlink", "http://www.w3.org/1999/xlink")
					}
					if svgDefs == nil {
						n.InsertChildren(0, defs)
					}
				}
			},
		},
	}
}
