package plugins

import (
	"math"

	"github.com/tdewolff/svgo"
)

// ConvertPathData rewrites path data into its shortest form: commands are made relative, curves that are straight become lines, runs of curves on a circle become arcs, shorthands are used where possible and every command finally picks the shorter of its absolute and relative form.
var ConvertPathData = &svgo.Plugin{
	Name:        "convertPathData",
	Description: "optimizes path data: writes in shorter form, applies transformations",
	Fn:          convertPathData,
}

type pathItem struct {
	command byte
	args    []float64
	base    svgo.Point // start point
	coords  svgo.Point // end point
	sdata   []float64  // cubic data of an item converted to an arc

	control    svgo.Point // implicit first control point of s and t in the input
	outControl svgo.Point // last control point of c, s, q and t as written
}

type arcCircle struct {
	center svgo.Point
	radius float64
}

type pathConverter struct {
	applyTransforms        bool
	applyTransformsStroked bool
	makeArcs               bool
	arcThreshold           float64
	arcTolerance           float64
	straightCurves         bool
	convertToQ             bool
	lineShorthands         bool
	convertToZ             bool
	curveSmoothShorthands  bool
	floatPrecision         int
	transformPrecision     int
	smartArcRounding       bool
	removeUseless          bool
	collapseRepeated       bool
	utilizeAbsolute        bool
	forceAbsolutePath      bool
	outData                svgo.OutDataOptions

	precision int
	error     float64
}

func convertPathData(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	c := &pathConverter{
		applyTransforms:        params.Bool("applyTransforms", true),
		applyTransformsStroked: params.Bool("applyTransformsStroked", true),
		makeArcs:               params.Bool("makeArcs", true),
		arcThreshold:           2.5,
		arcTolerance:           0.5,
		straightCurves:         params.Bool("straightCurves", true),
		convertToQ:             params.Bool("convertToQ", true),
		lineShorthands:         params.Bool("lineShorthands", true),
		convertToZ:             params.Bool("convertToZ", true),
		curveSmoothShorthands:  params.Bool("curveSmoothShorthands", true),
		floatPrecision:         precision(params, "floatPrecision", 3),
		transformPrecision:     params.Int("transformPrecision", 5),
		smartArcRounding:       params.Bool("smartArcRounding", true),
		removeUseless:          params.Bool("removeUseless", true),
		collapseRepeated:       params.Bool("collapseRepeated", true),
		utilizeAbsolute:        params.Bool("utilizeAbsolute", true),
		forceAbsolutePath:      params.Bool("forceAbsolutePath", false),
		outData: svgo.OutDataOptions{
			LeadingZero:        params.Bool("leadingZero", true),
			NegativeExtraSpace: params.Bool("negativeExtraSpace", true),
			NoSpaceAfterFlags:  params.Bool("noSpaceAfterFlags", false),
		},
	}
	if arcs := params.Map("makeArcs"); arcs != nil {
		p := svgo.Params(arcs)
		c.arcThreshold = p.Float("threshold", c.arcThreshold)
		c.arcTolerance = p.Float("tolerance", c.arcTolerance)
	}

	if c.applyTransforms {
		applyTransforms(root, c.transformPrecision, c.applyTransformsStroked)
	}

	stylesheet := svgo.CollectStylesheet(root)
	return svgo.ElementVisitor(func(n *svgo.Node) {
		if !svgo.PathElems[n.Name] || !n.Has("d") {
			return
		}
		items := svgo.ParsePathData(n.Get("d"))
		if len(items) == 0 {
			return
		}

		c.precision = c.floatPrecision
		c.error = 1e-2
		if 0 <= c.precision {
			c.error = svgo.ToFixed(math.Pow(0.1, float64(c.precision)), c.precision)
		}

		styles := svgo.ComputeStyle(stylesheet, n)
		stroke, hasStroke := styles["stroke"]
		linecap, hasLinecap := styles["stroke-linecap"]
		maybeHasStroke := hasStroke && (stroke.Type == svgo.DynamicStyle || stroke.Value != "none")
		maybeHasLinecap := hasLinecap && (linecap.Type == svgo.DynamicStyle || linecap.Value != "butt")
		isSafeToUseZ := true
		if maybeHasStroke {
			capValue, _ := styles.Value("stroke-linecap")
			joinValue, _ := styles.Value("stroke-linejoin")
			isSafeToUseZ = capValue == "round" && joinValue == "round"
		}
		_, hasMarkerMid := styles["marker-mid"]

		includesVertices := false
		for _, item := range items {
			if item.Command != 'M' && item.Command != 'm' {
				includesVertices = true
				break
			}
		}

		data := convertToRelative(items)
		data = c.filters(data, isSafeToUseZ, maybeHasStroke && maybeHasLinecap, hasMarkerMid)
		if c.utilizeAbsolute {
			data = c.convertToMixed(data)
		}

		out := make([]svgo.PathItem, 0, len(data)+1)
		onlyMovetos := true
		for _, item := range data {
			out = append(out, svgo.PathItem{Command: item.command, Args: item.args})
			if item.command != 'M' && item.command != 'm' {
				onlyMovetos = false
			}
		}
		if (n.Has("marker-start") || n.Has("marker-end")) && includesVertices && onlyMovetos {
			out = append(out, svgo.PathItem{Command: 'z'})
		}
		setPath(n, out, svgo.PathStringifyOptions{
			Precision:         c.precision,
			NoSpaceAfterFlags: c.outData.NoSpaceAfterFlags,
		})
	})
}

// convertToRelative makes all commands relative except for the first moveto and the closepaths, and tracks the start and end point of each command.
func convertToRelative(items []svgo.PathItem) []*pathItem {
	var start, cursor, prevCoords, prevControl svgo.Point
	var prevCommand byte
	out := make([]*pathItem, len(items))
	for i, item := range items {
		command := item.Command
		args := append([]float64{}, item.Args...)
		toRelative := func() {
			for j := range args {
				if j%2 == 0 {
					args[j] -= cursor.X
				} else {
					args[j] -= cursor.Y
				}
			}
		}

		switch command {
		case 'm':
			cursor = cursor.Add(svgo.Point{X: args[0], Y: args[1]})
			start = cursor
		case 'M':
			if i != 0 {
				command = 'm'
			}
			args[0] -= cursor.X
			args[1] -= cursor.Y
			cursor = cursor.Add(svgo.Point{X: args[0], Y: args[1]})
			start = cursor
		case 'l', 't':
			cursor = cursor.Add(svgo.Point{X: args[0], Y: args[1]})
		case 'L', 'T':
			command += 'a' - 'A'
			toRelative()
			cursor = cursor.Add(svgo.Point{X: args[0], Y: args[1]})
		case 'h':
			cursor.X += args[0]
		case 'H':
			command = 'h'
			args[0] -= cursor.X
			cursor.X += args[0]
		case 'v':
			cursor.Y += args[0]
		case 'V':
			command = 'v'
			args[0] -= cursor.Y
			cursor.Y += args[0]
		case 'c':
			cursor = cursor.Add(svgo.Point{X: args[4], Y: args[5]})
		case 'C':
			command = 'c'
			toRelative()
			cursor = cursor.Add(svgo.Point{X: args[4], Y: args[5]})
		case 's', 'q':
			cursor = cursor.Add(svgo.Point{X: args[2], Y: args[3]})
		case 'S', 'Q':
			command += 'a' - 'A'
			toRelative()
			cursor = cursor.Add(svgo.Point{X: args[2], Y: args[3]})
		case 'a':
			cursor = cursor.Add(svgo.Point{X: args[5], Y: args[6]})
		case 'A':
			command = 'a'
			args[5] -= cursor.X
			args[6] -= cursor.Y
			cursor = cursor.Add(svgo.Point{X: args[5], Y: args[6]})
		case 'Z', 'z':
			cursor = start
		}
		var control svgo.Point
		switch command {
		case 'c':
			prevControl = prevCoords.Add(svgo.Point{X: args[2], Y: args[3]})
		case 'q':
			prevControl = prevCoords.Add(svgo.Point{X: args[0], Y: args[1]})
		case 's':
			control = prevCoords
			if prevCommand == 'c' || prevCommand == 's' {
				control = reflectPoint(prevControl, prevCoords)
			}
			prevControl = prevCoords.Add(svgo.Point{X: args[0], Y: args[1]})
		case 't':
			control = prevCoords
			if prevCommand == 'q' || prevCommand == 't' {
				control = reflectPoint(prevControl, prevCoords)
			}
			prevControl = control
		}
		out[i] = &pathItem{
			command: command,
			args:    args,
			base:    prevCoords,
			coords:  cursor,
			control: control,
		}
		prevCoords = cursor
		prevCommand = command
	}
	return out
}

func (c *pathConverter) roundData(data []float64) []float64 {
	if 0 < c.precision && c.precision < 20 {
		return svgo.SmartRound(c.precision, data)
	} else if c.precision == 0 {
		return svgo.RoundAll(data)
	}
	return data
}

func (c *pathConverter) stringify(items []*pathItem) string {
	s := ""
	for _, item := range items {
		s += string(item.command)
		if 0 < len(item.args) {
			s += svgo.CleanupOutData(c.roundData(append([]float64{}, item.args...)), c.outData, item.command)
		}
	}
	return s
}

func (c *pathConverter) filters(path []*pathItem, isSafeToUseZ, maybeHasStrokeAndLinecap, hasMarkerMid bool) []*pathItem {
	var relSubpoint, pathBase [2]float64
	prev := &pathItem{}

	out := make([]*pathItem, 0, len(path))
	for index := 0; index < len(path); index++ {
		item := path[index]

		command := item.command
		data := item.args
		var next *pathItem
		if index+1 < len(path) {
			next = path[index+1]
		}

		if command != 'Z' && command != 'z' {
			sdata := data
			if command == 's' {
				sdata = append(item.relControl(), data...)
			}

			if c.makeArcs && (command == 'c' || command == 's') && isConvex(sdata) {
				if circle, ok := c.findCircle(sdata); ok {
					if converted, absorbed := c.convertToArc(&path, index, item, prev, sdata, circle, &relSubpoint); absorbed {
						continue
					} else if converted {
						command = item.command
						data = item.args
					}
				}
			}

			if 0 <= c.precision {
				switch command {
				case 'm', 'l', 't', 'q', 's', 'c':
					for i := len(data) - 1; 0 <= i; i-- {
						data[i] += at(item.base, i%2) - relSubpoint[i%2]
					}
				case 'h':
					data[0] += item.base.X - relSubpoint[0]
				case 'v':
					data[0] += item.base.Y - relSubpoint[1]
				case 'a':
					data[5] += item.base.X - relSubpoint[0]
					data[6] += item.base.Y - relSubpoint[1]
				}
				c.roundData(data)

				if command == 'h' {
					relSubpoint[0] += data[0]
				} else if command == 'v' {
					relSubpoint[1] += data[0]
				} else {
					relSubpoint[0] += data[len(data)-2]
					relSubpoint[1] += data[len(data)-1]
				}
				c.roundData(relSubpoint[:])
				if command == 'M' || command == 'm' {
					pathBase = relSubpoint
				}
			} else if command == 'M' || command == 'm' {
				pathBase = [2]float64{item.coords.X, item.coords.Y}
			}

			sagitta, hasSagitta := 0.0, false
			if command == 'a' {
				sagitta, hasSagitta = c.calculateSagitta(data)
			}
			if c.smartArcRounding && hasSagitta && 0 < c.precision {
				for prec := c.precision; 0 <= prec; prec-- {
					radius := svgo.ToFixed(data[0], prec)
					sagittaNew, ok := c.calculateSagitta(append([]float64{radius, radius}, data[2:]...))
					if !ok || c.error <= math.Abs(sagitta-sagittaNew) {
						break
					}
					data[0], data[1] = radius, radius
				}
			}

			if c.straightCurves {
				if command == 'c' && c.isCurveStraightLine(data) || command == 's' && c.isCurveStraightLine(sdata) {
					if next != nil && next.command == 's' {
						makeLonghand(next, data)
					}
					command = 'l'
					data = lastPoint(data)
				} else if command == 'q' && c.isCurveStraightLine(data) {
					if next != nil && next.command == 't' {
						makeLonghand(next, data)
					}
					command = 'l'
					data = lastPoint(data)
				} else if command == 't' && c.isCurveStraightLine(append(item.relControl(), data...)) {
					if next != nil && next.command == 't' {
						makeLonghand(next, append(item.relControl(), data...))
					}
					command = 'l'
					data = lastPoint(data)
				} else if command == 'a' && (data[0] == 0.0 || data[1] == 0.0 || hasSagitta && sagitta < c.error) {
					command = 'l'
					data = lastPoint(data)
				}
			}

			if c.convertToQ && command == 'c' {
				x1 := 0.75*(item.base.X+data[0]) - 0.25*item.base.X
				x2 := 0.75*(item.base.X+data[2]) - 0.25*(item.base.X+data[4])
				if math.Abs(x1-x2) < c.error*2.0 {
					y1 := 0.75*(item.base.Y+data[1]) - 0.25*item.base.Y
					y2 := 0.75*(item.base.Y+data[3]) - 0.25*(item.base.Y+data[5])
					if math.Abs(y1-y2) < c.error*2.0 {
						qdata := c.roundData([]float64{x1 + x2 - item.base.X, y1 + y2 - item.base.Y, data[4], data[5]})
						if len(svgo.CleanupOutData(qdata, c.outData, 'q')) < len(svgo.CleanupOutData(data, c.outData, 'c')) {
							command = 'q'
							data = qdata
							if next != nil && next.command == 's' {
								makeLonghand(next, data)
							}
						}
					}
				}
			}

			if c.lineShorthands && command == 'l' {
				if data[1] == 0.0 {
					command = 'h'
					data = data[:1]
				} else if data[0] == 0.0 {
					command = 'v'
					data = data[1:]
				}
			}

			if c.collapseRepeated && !hasMarkerMid && (command == 'm' || command == 'h' || command == 'v') && prev.command != 0 && command == lower(prev.command) {
				if command == 'm' || (0.0 <= prev.args[0]) == (0.0 <= data[0]) {
					prev.args[0] += data[0]
					if command == 'm' {
						prev.args[1] += data[1]
					}
					prev.coords = item.coords
					path[index] = prev
					continue
				}
			}

			if c.curveSmoothShorthands && prev.command != 0 {
				if command == 'c' {
					if prev.command == 'c' && math.Abs(data[0]+prev.args[2]-prev.args[4]) < c.error && math.Abs(data[1]+prev.args[3]-prev.args[5]) < c.error ||
						prev.command == 's' && math.Abs(data[0]+prev.args[0]-prev.args[2]) < c.error && math.Abs(data[1]+prev.args[1]-prev.args[3]) < c.error ||
						prev.command != 'c' && prev.command != 's' && math.Abs(data[0]) < c.error && math.Abs(data[1]) < c.error {
						item.control = svgo.Point{X: item.base.X + data[0], Y: item.base.Y + data[1]}
						command = 's'
						data = data[2:]
					}
				} else if command == 'q' {
					if prev.command == 'q' && math.Abs(data[0]-(prev.args[2]-prev.args[0])) < c.error && math.Abs(data[1]-(prev.args[3]-prev.args[1])) < c.error {
						item.control = svgo.Point{X: item.base.X + data[0], Y: item.base.Y + data[1]}
						command = 't'
						data = data[2:]
					} else if prev.command == 't' {
						predicted := reflectPoint(prev.outControl, item.base)
						real := svgo.Point{X: data[0] + item.base.X, Y: data[1] + item.base.Y}
						if math.Abs(predicted.X-real.X) < c.error && math.Abs(predicted.Y-real.Y) < c.error {
							item.control = real
							command = 't'
							data = data[2:]
						}
					}
				}
			}

			if c.removeUseless && !maybeHasStrokeAndLinecap {
				switch command {
				case 'l', 'h', 'v', 'q', 't', 'c', 's':
					if allZero(data) {
						path[index] = prev
						continue
					}
				case 'a':
					if data[5] == 0.0 && data[6] == 0.0 {
						path[index] = prev
						continue
					}
				}
			}

			if c.convertToZ && (isSafeToUseZ || next != nil && (next.command == 'Z' || next.command == 'z')) && (command == 'l' || command == 'h' || command == 'v') {
				if math.Abs(pathBase[0]-item.coords.X) < c.error && math.Abs(pathBase[1]-item.coords.Y) < c.error {
					command = 'z'
					data = nil
				}
			}

			item.command = command
			item.args = data
		} else {
			relSubpoint = pathBase
			if prev.command == 'Z' || prev.command == 'z' {
				continue
			}
		}

		if (command == 'Z' || command == 'z') && c.removeUseless && isSafeToUseZ && math.Abs(item.base.X-item.coords.X) < c.error/10.0 && math.Abs(item.base.Y-item.coords.Y) < c.error/10.0 {
			continue
		}

		if command == 's' || command == 't' {
			// the implicit control point follows the previous command as written, which may have been rewritten
			implicit := item.base
			if command == 's' && (prev.command == 'c' || prev.command == 's') || command == 't' && (prev.command == 'q' || prev.command == 't') {
				implicit = reflectPoint(prev.outControl, item.base)
			}
			if 2.0*c.error < math.Abs(implicit.X-item.control.X) || 2.0*c.error < math.Abs(implicit.Y-item.control.Y) {
				if command == 's' {
					command = 'c'
				} else {
					command = 'q'
				}
				data = append(c.roundData(item.relControl()), data...)
				item.command = command
				item.args = data
			} else if command == 't' {
				item.outControl = implicit
			}
		}
		switch command {
		case 'c':
			item.outControl = svgo.Point{X: item.base.X + data[2], Y: item.base.Y + data[3]}
		case 's', 'q':
			item.outControl = svgo.Point{X: item.base.X + data[0], Y: item.base.Y + data[1]}
		}
		prev = item
		out = append(out, item)
	}
	return out
}

// convertToArc tries to replace the curve, possibly together with the previous curve and the following curves, by one or two arcs. It returns whether the conversion was shorter, and whether the item was absorbed by the previous item and must be dropped.
func (c *pathConverter) convertToArc(path *[]*pathItem, index int, item, prev *pathItem, sdata []float64, circle arcCircle, relSubpoint *[2]float64) (bool, bool) {
	r := c.roundData([]float64{circle.radius})[0]
	angle := findArcAngle(sdata, circle)
	sweep := 0.0
	if 0.0 < sdata[5]*sdata[0]-sdata[4]*sdata[1] {
		sweep = 1.0
	}
	arc := &pathItem{
		command: 'a',
		args:    []float64{r, r, 0.0, 0.0, sweep, sdata[4], sdata[5]},
		base:    item.base,
		coords:  item.coords,
	}
	output := []*pathItem{arc}
	relCircle := arcCircle{
		center: svgo.Point{X: circle.center.X - sdata[4], Y: circle.center.Y - sdata[5]},
		radius: circle.radius,
	}
	arcCurves := []*pathItem{item}
	hasPrev := 0
	suffix := ""

	if prev.command == 'c' && isConvex(prev.args) && c.isArcPrev(prev.args, circle) || prev.command == 'a' && prev.sdata != nil && c.isArcPrev(prev.sdata, circle) {
		arcCurves = append([]*pathItem{prev}, arcCurves...)
		arc.base = prev.base
		arc.args[5] = arc.coords.X - arc.base.X
		arc.args[6] = arc.coords.Y - arc.base.Y
		prevData := prev.args
		if prev.command == 'a' {
			prevData = prev.sdata
		}
		angle += findArcAngle(prevData, arcCircle{
			center: svgo.Point{X: prevData[4] + circle.center.X, Y: prevData[5] + circle.center.Y},
			radius: circle.radius,
		})
		if math.Pi < angle {
			arc.args[3] = 1.0
		}
		hasPrev = 1
	}

	j := index
	for {
		j++
		if len(*path) <= j {
			break
		}
		next := (*path)[j]
		if next.command != 'c' && next.command != 's' {
			break
		}
		nextData := next.args
		if next.command == 's' {
			longhand := makeLonghand(&pathItem{command: 's', args: append([]float64{}, next.args...)}, (*path)[j-1].args)
			nextData = longhand.args
			longhand.args = nextData[:2]
			suffix = c.stringify([]*pathItem{longhand})
		}
		if !isConvex(nextData) || !c.isArc(nextData, relCircle) {
			break
		}
		angle += findArcAngle(nextData, relCircle)
		if 1e-3 < angle-2.0*math.Pi {
			break
		}
		if math.Pi < angle {
			arc.args[3] = 1.0
		}
		arcCurves = append(arcCurves, next)
		if 1e-3 < 2.0*math.Pi-angle {
			arc.coords = next.coords
			arc.args[5] = arc.coords.X - arc.base.X
			arc.args[6] = arc.coords.Y - arc.base.Y
		} else {
			// full circle, split in two halves
			arc.args[5] = 2.0 * (relCircle.center.X - nextData[4])
			arc.args[6] = 2.0 * (relCircle.center.Y - nextData[5])
			arc.coords = arc.base.Add(svgo.Point{X: arc.args[5], Y: arc.args[6]})
			arc = &pathItem{
				command: 'a',
				args:    []float64{r, r, 0.0, 0.0, sweep, next.coords.X - arc.coords.X, next.coords.Y - arc.coords.Y},
				base:    arc.coords,
				coords:  next.coords,
			}
			output = append(output, arc)
			j++
			break
		}
		relCircle.center.X -= nextData[4]
		relCircle.center.Y -= nextData[5]
	}

	if len(c.stringify(arcCurves)) <= len(c.stringify(output))+len(suffix) {
		return false, false
	}
	if j < len(*path) && (*path)[j].command == 's' {
		makeLonghand((*path)[j], (*path)[j-1].args)
	}
	if hasPrev == 1 {
		prevArc := output[0]
		output = output[1:]
		c.roundData(prevArc.args)
		relSubpoint[0] += prevArc.args[5] - prev.args[len(prev.args)-2]
		relSubpoint[1] += prevArc.args[6] - prev.args[len(prev.args)-1]
		prev.command = 'a'
		prev.args = prevArc.args
		prev.coords = prevArc.coords
		item.base = prevArc.coords
	}

	if len(arcCurves) == 1 {
		item.sdata = append([]float64{}, sdata...)
	} else if n := len(arcCurves) - 1 - hasPrev; 0 < n {
		tail := append([]*pathItem{}, (*path)[index+1+n:]...)
		rest := output
		if 0 < len(rest) {
			rest = rest[1:]
		}
		*path = append(append((*path)[:index+1], rest...), tail...)
	}
	if len(output) == 0 {
		return true, true
	}
	arc = output[0]
	item.command = 'a'
	item.args = arc.args
	item.coords = arc.coords
	return true, false
}

// convertToMixed uses the absolute form of a command when it is shorter than its relative form.
func (c *pathConverter) convertToMixed(path []*pathItem) []*pathItem {
	if len(path) == 0 {
		return path
	}
	prev := path[0]
	for _, item := range path[1:] {
		if item.command == 'Z' || item.command == 'z' {
			prev = item
			continue
		}
		command := item.command
		adata := append([]float64{}, item.args...)
		rdata := append([]float64{}, item.args...)
		switch command {
		case 'm', 'l', 't', 'q', 's', 'c':
			for i := range adata {
				adata[i] += at(item.base, i%2)
			}
		case 'h':
			adata[0] += item.base.X
		case 'v':
			adata[0] += item.base.Y
		case 'a':
			adata[5] += item.base.X
			adata[6] += item.base.Y
		}
		c.roundData(adata)
		c.roundData(rdata)

		abs := svgo.CleanupOutData(adata, c.outData, command)
		rel := svgo.CleanupOutData(rdata, c.outData, command)
		if c.forceAbsolutePath || len(abs) < len(rel) && !(c.outData.NegativeExtraSpace && command == prev.command && 'a' <= prev.command && len(abs) == len(rel)-1 && c.joinsWithoutSpace(item.args, prev.args)) {
			item.command = command - ('a' - 'A')
			item.args = adata
		}
		prev = item
	}
	return path
}

// joinsWithoutSpace returns true when the relative data would be appended to the previous command without a separator.
func (c *pathConverter) joinsWithoutSpace(data, prevData []float64) bool {
	if len(data) == 0 {
		return false
	} else if data[0] < 0.0 {
		return true
	}
	return math.Floor(data[0]) == 0.0 && data[0] != 0.0 && 0 < len(prevData) && math.Mod(prevData[len(prevData)-1], 1.0) != 0.0
}

func (c *pathConverter) calculateSagitta(data []float64) (float64, bool) {
	if data[3] == 1.0 {
		return 0.0, false
	}
	rx, ry := data[0], data[1]
	if c.error < math.Abs(rx-ry) {
		return 0.0, false
	}
	chord := math.Hypot(data[5], data[6])
	if rx*2.0 < chord {
		return 0.0, false
	}
	return rx - math.Sqrt(rx*rx-0.25*chord*chord), true
}

// isCurveStraightLine returns true if all control points lie within the error distance of the line to the endpoint.
func (c *pathConverter) isCurveStraightLine(data []float64) bool {
	i := len(data) - 2
	a, b := -data[i+1], data[i]
	d := 1.0 / (a*a + b*b)
	if i <= 1 || math.IsInf(d, 0) || math.IsNaN(d) {
		return false
	}
	for i -= 2; 0 <= i; i -= 2 {
		if c.error < math.Sqrt(math.Pow(a*data[i]+b*data[i+1], 2.0)*d) {
			return false
		}
	}
	return true
}

func (c *pathConverter) arcTolerancy(radius float64) float64 {
	return math.Max(c.arcThreshold*c.error, c.arcTolerance*radius/100.0)
}

// findCircle returns the circle through the start, middle and end point of the cubic curve, if its quarter points lie on it as well.
func (c *pathConverter) findCircle(curve []float64) (arcCircle, bool) {
	mid := cubicBezierPoint(curve, 0.5)
	m1 := svgo.Point{X: mid.X / 2.0, Y: mid.Y / 2.0}
	m2 := svgo.Point{X: (mid.X + curve[4]) / 2.0, Y: (mid.Y + curve[5]) / 2.0}
	center, ok := intersection([8]float64{
		m1.X, m1.Y,
		m1.X + m1.Y, m1.Y - m1.X,
		m2.X, m2.Y,
		m2.X + (m2.Y - mid.Y), m2.Y - (m2.X - mid.X),
	})
	if !ok {
		return arcCircle{}, false
	}
	radius := center.Length()
	if 1e15 <= radius {
		return arcCircle{}, false
	}
	tolerance := c.arcTolerancy(radius)
	for _, t := range []float64{0.25, 0.75} {
		if tolerance < math.Abs(cubicBezierPoint(curve, t).Sub(center).Length()-radius) {
			return arcCircle{}, false
		}
	}
	return arcCircle{center, radius}, true
}

// isArc returns true if the cubic curve lies on the circle, the circle's center is relative to the curve's start.
func (c *pathConverter) isArc(curve []float64, circle arcCircle) bool {
	tolerance := c.arcTolerancy(circle.radius)
	for _, t := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
		if tolerance < math.Abs(cubicBezierPoint(curve, t).Sub(circle.center).Length()-circle.radius) {
			return false
		}
	}
	return true
}

// isArcPrev is isArc for the curve before the one the circle was found for.
func (c *pathConverter) isArcPrev(curve []float64, circle arcCircle) bool {
	return c.isArc(curve, arcCircle{
		center: svgo.Point{X: circle.center.X + curve[4], Y: circle.center.Y + curve[5]},
		radius: circle.radius,
	})
}

// findArcAngle returns the angle of the arc spanned by the curve around the circle's center.
func findArcAngle(curve []float64, circle arcCircle) float64 {
	x1, y1 := -circle.center.X, -circle.center.Y
	x2, y2 := curve[4]-circle.center.X, curve[5]-circle.center.Y
	return math.Acos((x1*x2 + y1*y2) / math.Sqrt((x1*x1+y1*y1)*(x2*x2+y2*y2)))
}

// isConvex returns true if the control points of the relative cubic curve lie on the same side and the curve does not inflect.
func isConvex(data []float64) bool {
	if len(data) < 6 {
		return false
	}
	center, ok := intersection([8]float64{0.0, 0.0, data[2], data[3], data[0], data[1], data[4], data[5]})
	return ok &&
		(data[2] < center.X) == (center.X < 0.0) &&
		(data[3] < center.Y) == (center.Y < 0.0) &&
		(data[4] < center.X) == (center.X < data[0]) &&
		(data[5] < center.Y) == (center.Y < data[1])
}

// intersection returns the intersection of the line through the first two points and the line through the last two points.
func intersection(coords [8]float64) (svgo.Point, bool) {
	a1 := coords[1] - coords[3]
	b1 := coords[2] - coords[0]
	c1 := coords[0]*coords[3] - coords[2]*coords[1]
	a2 := coords[5] - coords[7]
	b2 := coords[6] - coords[4]
	c2 := coords[4]*coords[7] - coords[5]*coords[6]
	denom := a1*b2 - a2*b1
	if denom == 0.0 {
		return svgo.Point{}, false
	}
	p := svgo.Point{X: (b1*c2 - b2*c1) / denom, Y: (a1*c2 - a2*c1) / -denom}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return svgo.Point{}, false
	}
	return p, true
}

func cubicBezierPoint(curve []float64, t float64) svgo.Point {
	sqrT := t * t
	cubT := sqrT * t
	mt := 1.0 - t
	sqrMt := mt * mt
	return svgo.Point{
		X: 3.0*sqrMt*t*curve[0] + 3.0*mt*sqrT*curve[2] + cubT*curve[4],
		Y: 3.0*sqrMt*t*curve[1] + 3.0*mt*sqrT*curve[3] + cubT*curve[5],
	}
}

// makeLonghand turns a smooth curve into its full form using the previous curve's data to reflect the control point.
func makeLonghand(item *pathItem, data []float64) *pathItem {
	switch item.command {
	case 's':
		item.command = 'c'
	case 't':
		item.command = 'q'
	}
	var cp [2]float64
	if n := len(data); 4 <= n {
		cp = [2]float64{data[n-2] - data[n-4], data[n-1] - data[n-3]}
	}
	item.args = append(cp[:], item.args...)
	return item
}

// relControl returns the implicit control point relative to the start point.
func (item *pathItem) relControl() []float64 {
	return []float64{item.control.X - item.base.X, item.control.Y - item.base.Y}
}

func reflectPoint(p, base svgo.Point) svgo.Point {
	return svgo.Point{X: 2.0*base.X - p.X, Y: 2.0*base.Y - p.Y}
}

func at(p svgo.Point, i int) float64 {
	if i == 0 {
		return p.X
	}
	return p.Y
}

func lastPoint(data []float64) []float64 {
	return []float64{data[len(data)-2], data[len(data)-1]}
}

func allZero(data []float64) bool {
	for _, f := range data {
		if f != 0.0 {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
