package plugins

import (
	"github.com/tdewolff/svgo"
)

// ConvertShapeToPath converts rect, line, polyline and polygon, and with convertArcs also circle and ellipse, to path elements. Shapes with units or percentages are left untouched, as are rects with rounded corners.
var ConvertShapeToPath = &svgo.Plugin{
	Name:        "convertShapeToPath",
	Description: "converts basic shapes to more compact path form",
	Fn:          convertShapeToPath,
}

func convertShapeToPath(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	convertArcs := params.Bool("convertArcs", false)
	opts := svgo.PathStringifyOptions{
		Precision: -1,
	}
	if params.Has("floatPrecision") {
		opts.Precision = precision(params, "floatPrecision", -1)
	}

	number := func(n *svgo.Node, name string) (float64, bool) {
		v, ok := n.Attr(name)
		if !ok {
			return 0.0, true
		}
		return parseNumber(v)
	}
	toPath := func(n *svgo.Node, items []svgo.PathItem, attrs ...string) {
		n.Name = "path"
		n.Set("d", svgo.StringifyPathData(items, opts))
		for _, name := range attrs {
			n.Remove(name)
		}
	}

	return svgo.ElementVisitor(func(n *svgo.Node) {
		switch n.Name {
		case "rect":
			if n.Has("rx") || n.Has("ry") || !n.Has("width") || !n.Has("height") {
				return
			}
			x, okX := number(n, "x")
			y, okY := number(n, "y")
			w, okW := number(n, "width")
			h, okH := number(n, "height")
			if !okX || !okY || !okW || !okH {
				return
			}
			toPath(n, []svgo.PathItem{
				{Command: 'M', Args: []float64{x, y}},
				{Command: 'H', Args: []float64{x + w}},
				{Command: 'V', Args: []float64{y + h}},
				{Command: 'H', Args: []float64{x}},
				{Command: 'z'},
			}, "x", "y", "width", "height")
		case "line":
			x1, ok1 := number(n, "x1")
			y1, ok2 := number(n, "y1")
			x2, ok3 := number(n, "x2")
			y2, ok4 := number(n, "y2")
			if !ok1 || !ok2 || !ok3 || !ok4 {
				return
			}
			toPath(n, []svgo.PathItem{
				{Command: 'M', Args: []float64{x1, y1}},
				{Command: 'L', Args: []float64{x2, y2}},
			}, "x1", "y1", "x2", "y2")
		case "polyline", "polygon":
			points, ok := n.Attr("points")
			if !ok {
				return
			}
			coords, ok := parseNumbers(points)
			if !ok {
				return
			} else if len(coords) < 4 {
				n.Detach()
				return
			}
			items := []svgo.PathItem{}
			for i := 0; i+1 < len(coords); i += 2 {
				command := byte('L')
				if i == 0 {
					command = 'M'
				}
				items = append(items, svgo.PathItem{Command: command, Args: []float64{coords[i], coords[i+1]}})
			}
			if n.Name == "polygon" {
				items = append(items, svgo.PathItem{Command: 'z'})
			}
			toPath(n, items, "points")
		case "circle":
			if !convertArcs {
				return
			}
			cx, ok1 := number(n, "cx")
			cy, ok2 := number(n, "cy")
			r, ok3 := number(n, "r")
			if !ok1 || !ok2 || !ok3 || !n.Has("r") {
				return
			}
			toPath(n, []svgo.PathItem{
				{Command: 'M', Args: []float64{cx, cy - r}},
				{Command: 'A', Args: []float64{r, r, 0, 1, 0, cx, cy + r}},
				{Command: 'A', Args: []float64{r, r, 0, 1, 0, cx, cy - r}},
				{Command: 'z'},
			}, "cx", "cy", "r")
		case "ellipse":
			if !convertArcs {
				return
			}
			cx, ok1 := number(n, "cx")
			cy, ok2 := number(n, "cy")
			rx, ok3 := number(n, "rx")
			ry, ok4 := number(n, "ry")
			if !ok1 || !ok2 || !ok3 || !ok4 || !n.Has("rx") || !n.Has("ry") {
				return
			}
			toPath(n, []svgo.PathItem{
				{Command: 'M', Args: []float64{cx, cy - ry}},
				{Command: 'A', Args: []float64{rx, ry, 0, 1, 0, cx, cy + ry}},
				{Command: 'A', Args: []float64{rx, ry, 0, 1, 0, cx, cy - ry}},
				{Command: 'z'},
			}, "cx", "cy", "rx", "ry")
		}
	})
}
