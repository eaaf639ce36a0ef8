package plugins

import (
	"regexp"
	"strings"

	"github.com/tdewolff/svgo"
)

var (
	viewBoxCleanRegexp = regexp.MustCompile(`[,+]|px`)
	viewBoxRegexp      = regexp.MustCompile(`^(-?\d*\.?\d+) (-?\d*\.?\d+) (\d*\.?\d+) (\d*\.?\d+)$`)
)

// RemoveOffCanvasPaths removes paths that are drawn entirely outside of the viewBox. Elements with a transform and their descendants are skipped.
var RemoveOffCanvasPaths = &svgo.Plugin{
	Name:        "removeOffCanvasPaths",
	Description: "removes elements that are drawn outside of the viewBox (disabled by default)",
	Fn:          removeOffCanvasPaths,
}

func removeOffCanvasPaths(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	var viewBox []svgo.PathItem
	var left, top, right, bottom float64
	return &svgo.Visitor{
		Element: svgo.Hooks{
			Enter: func(n *svgo.Node) svgo.Action {
				if n.Name == "svg" && n.Parent() != nil && n.Parent().Type == svgo.RootNode {
					s, ok := n.Attr("viewBox")
					if !ok && n.Has("width") && n.Has("height") {
						s = "0 0 " + n.Get("width") + " " + n.Get("height")
					}
					s = strings.Join(strings.Fields(viewBoxCleanRegexp.ReplaceAllString(s, " ")), " ")
					if m := viewBoxRegexp.FindStringSubmatch(s); m != nil {
						nums, _ := parseNumbers(strings.Join(m[1:], " "))
						left, top = nums[0], nums[1]
						right, bottom = left+nums[2], top+nums[3]
						viewBox = []svgo.PathItem{
							{Command: 'M', Args: []float64{left, top}},
							{Command: 'h', Args: []float64{nums[2]}},
							{Command: 'v', Args: []float64{nums[3]}},
							{Command: 'H', Args: []float64{left}},
							{Command: 'z'},
						}
					}
				}
				if n.Has("transform") {
					return svgo.SkipChildren
				} else if n.Name != "path" || !n.Has("d") || viewBox == nil {
					return svgo.Continue
				}

				items := svgo.ParsePathData(n.Get("d"))
				for _, item := range items {
					if item.Command == 'M' {
						if x, y := item.Args[0], item.Args[1]; left <= x && x <= right && top <= y && y <= bottom {
							return svgo.Continue
						}
					}
				}
				if len(items) == 2 {
					items = append(items, svgo.PathItem{Command: 'z'})
				}
				if !svgo.Intersects(viewBox, items) {
					n.Detach()
					return svgo.SkipChildren
				}
				return svgo.Continue
			},
		},
	}
}
