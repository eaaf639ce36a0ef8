package plugins

import (
	"math"
	"strings"

	"github.com/tdewolff/svgo"
)

// applyTransforms applies the transform attribute of path elements to their path data. Paths with an ID, a style attribute, references or a stroke that cannot be scaled uniformly keep their transform.
func applyTransforms(root *svgo.Node, transformPrecision int, applyStroked bool) {
	stylesheet := svgo.CollectStylesheet(root)
	svgo.Visit(root, svgo.ElementVisitor(func(n *svgo.Node) {
		if !n.Has("d") || n.Has("id") || n.Has("style") {
			return
		}
		transform, ok := n.Attr("transform")
		if !ok || strings.TrimSpace(transform) == "" {
			return
		}
		for _, attr := range n.Attrs {
			if svgo.ReferencesProps[attr.Name] && svgo.IncludesURLReference(attr.Value) {
				return
			}
		}

		styles := svgo.ComputeStyle(stylesheet, n)
		if v, ok := styles["transform"]; ok && (v.Type != svgo.StaticStyle || v.Value != transform) {
			return
		}
		if v, ok := styles["stroke"]; ok && v.Type == svgo.DynamicStyle {
			return
		} else if v, ok := styles["stroke-width"]; ok && v.Type == svgo.DynamicStyle {
			return
		}
		ts := svgo.ParseTransform(transform)
		if len(ts) == 0 {
			return
		}
		m := svgo.TransformsMatrix(ts)
		v := m.Values()

		if stroke, ok := styles.Value("stroke"); ok && stroke != "none" {
			if !applyStroked {
				return
			} else if (v[0] != v[3] || v[1] != -v[2]) && (v[0] != -v[3] || v[1] != v[2]) {
				return
			}
			scale := svgo.ToFixed(math.Sqrt(v[0]*v[0]+v[1]*v[1]), transformPrecision)
			if scale != 1.0 && n.Get("vector-effect") != "non-scaling-stroke" {
				scaleValue := func(s string) string {
					return numericValueRegexp.ReplaceAllStringFunc(strings.TrimSpace(s), func(num string) string {
						f, _ := parseNumber(num)
						return svgo.FormatNumber(f * scale)
					})
				}
				strokeWidth, ok := styles.Value("stroke-width")
				if !ok {
					strokeWidth = svgo.AttrsGroupsDefaults["presentation"]["stroke-width"]
				}
				n.Set("stroke-width", scaleValue(strokeWidth))
				for _, name := range []string{"stroke-dashoffset", "stroke-dasharray"} {
					if val, ok := n.Attr(name); ok {
						n.Set(name, scaleValue(val))
					}
				}
			}
		}

		items := svgo.ParsePathData(n.Get("d"))
		applyMatrixToPathData(items, m)
		n.Set("d", svgo.StringifyPathData(items, svgo.PathStringifyOptions{Precision: -1}))
		n.Remove("transform")
	}))
}

// applyMatrixToPathData transforms the path data in place. Horizontal and vertical lines become linetos.
func applyMatrixToPathData(items []svgo.PathItem, m svgo.Matrix) {
	var start, cursor svgo.Point
	abs := func(args []float64, i int) {
		p := m.Dot(svgo.Point{X: args[i], Y: args[i+1]})
		args[i], args[i+1] = p.X, p.Y
	}
	rel := func(args []float64, i int) {
		p := m.DotVector(svgo.Point{X: args[i], Y: args[i+1]})
		args[i], args[i+1] = p.X, p.Y
	}
	swapAxes := func(args []float64) {
		if rot := args[2]; 80.0 < math.Abs(rot) {
			args[0], args[1] = args[1], args[0]
			if 0.0 < rot {
				args[2] = rot - 90.0
			} else {
				args[2] = rot + 90.0
			}
		}
	}

	for i := range items {
		command := items[i].Command
		args := items[i].Args
		switch command {
		case 'M':
			cursor = svgo.Point{X: args[0], Y: args[1]}
			start = cursor
			abs(args, 0)
		case 'm':
			cursor = cursor.Add(svgo.Point{X: args[0], Y: args[1]})
			start = cursor
			rel(args, 0)
		case 'H':
			command = 'L'
			args = []float64{args[0], cursor.Y}
		case 'h':
			command = 'l'
			args = []float64{args[0], 0.0}
		case 'V':
			command = 'L'
			args = []float64{cursor.X, args[0]}
		case 'v':
			command = 'l'
			args = []float64{0.0, args[0]}
		}

		switch command {
		case 'L', 'T':
			cursor = svgo.Point{X: args[0], Y: args[1]}
			abs(args, 0)
		case 'l', 't':
			cursor = cursor.Add(svgo.Point{X: args[0], Y: args[1]})
			rel(args, 0)
		case 'C':
			cursor = svgo.Point{X: args[4], Y: args[5]}
			abs(args, 0)
			abs(args, 2)
			abs(args, 4)
		case 'c':
			cursor = cursor.Add(svgo.Point{X: args[4], Y: args[5]})
			rel(args, 0)
			rel(args, 2)
			rel(args, 4)
		case 'S', 'Q':
			cursor = svgo.Point{X: args[2], Y: args[3]}
			abs(args, 0)
			abs(args, 2)
		case 's', 'q':
			cursor = cursor.Add(svgo.Point{X: args[2], Y: args[3]})
			rel(args, 0)
			rel(args, 2)
		case 'A':
			transformArc(cursor, args, m)
			cursor = svgo.Point{X: args[5], Y: args[6]}
			swapAxes(args)
			abs(args, 5)
		case 'a':
			transformArc(svgo.Point{}, args, m)
			cursor = cursor.Add(svgo.Point{X: args[5], Y: args[6]})
			swapAxes(args)
			rel(args, 5)
		case 'Z', 'z':
			cursor = start
		}
		items[i].Command = command
		items[i].Args = args
	}
}

// transformArc sets the radii and rotation of the arc to those of its ellipse transformed by the matrix. The endpoint is left untouched.
func transformArc(cursor svgo.Point, arc []float64, m svgo.Matrix) {
	x, y := arc[5]-cursor.X, arc[6]-cursor.Y
	a, b := arc[0], arc[1]
	rot := arc[2] * math.Pi / 180.0
	cos, sin := math.Cos(rot), math.Sin(rot)
	if 0.0 < a && 0.0 < b {
		h := math.Pow(x*cos+y*sin, 2.0)/(4.0*a*a) + math.Pow(y*cos-x*sin, 2.0)/(4.0*b*b)
		if 1.0 < h {
			h = math.Sqrt(h)
			a *= h
			b *= h
		}
	}

	e := m.Mul(svgo.NewMatrix(a*cos, a*sin, -b*sin, b*cos, 0.0, 0.0)).Values()
	lastCol := e[2]*e[2] + e[3]*e[3]
	squareSum := e[0]*e[0] + e[1]*e[1] + lastCol
	root := math.Hypot(e[0]-e[3], e[1]+e[2]) * math.Hypot(e[0]+e[3], e[1]-e[2])
	if root == 0.0 {
		arc[0] = math.Sqrt(squareSum / 2.0)
		arc[1] = arc[0]
		arc[2] = 0.0
	} else {
		majorAxisSqr := (squareSum + root) / 2.0
		minorAxisSqr := (squareSum - root) / 2.0
		major := 1e-6 < math.Abs(majorAxisSqr-lastCol)
		sub := minorAxisSqr - lastCol
		if major {
			sub = majorAxisSqr - lastCol
		}
		rowsSum := e[0]*e[2] + e[1]*e[3]
		term1 := e[0]*sub + e[2]*rowsSum
		term2 := e[1]*sub + e[3]*rowsSum
		arc[0] = math.Sqrt(majorAxisSqr)
		arc[1] = math.Sqrt(minorAxisSqr)

		t, sign := term2, 1.0
		if major {
			t = term1
			if term2 < 0.0 {
				sign = -1.0
			}
		} else if 0.0 < term1 {
			sign = -1.0
		}
		arc[2] = sign * math.Acos(t/math.Hypot(term1, term2)) * 180.0 / math.Pi
	}

	if v := m.Values(); (v[0] < 0.0) != (v[3] < 0.0) {
		arc[4] = 1.0 - arc[4]
	}
}
