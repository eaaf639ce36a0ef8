package svgo

import (
	"math"
	"sort"
)

// gjkMaxIterations bounds the GJK loop, exhausting it reports an intersection.
const gjkMaxIterations = 10000

type pointSet struct {
	list                   []Point
	minX, minY, maxX, maxY float64
}

func newPointSet() *pointSet {
	return &pointSet{
		minX: math.Inf(1),
		minY: math.Inf(1),
		maxX: math.Inf(-1),
		maxY: math.Inf(-1),
	}
}

func (s *pointSet) add(p Point) {
	s.list = append(s.list, p)
	s.minX = math.Min(s.minX, p.X)
	s.minY = math.Min(s.minY, p.Y)
	s.maxX = math.Max(s.maxX, p.X)
	s.maxY = math.Max(s.maxY, p.Y)
}

func (s *pointSet) disjoint(t *pointSet) bool {
	return s.maxX <= t.minX || t.maxX <= s.minX || s.maxY <= t.minY || t.maxY <= s.minY
}

// gatherPoints collects per subpath the end points and control points. The control polygon of a Bézier contains the curve, so the convex hull of the points contains the subpath. Arcs are converted to cubic Béziers first.
func gatherPoints(items []PathItem) (*pointSet, []*pointSet) {
	all := newPointSet()
	subpaths := []*pointSet{}
	var cur *pointSet
	addPoint := func(p Point) {
		if cur == nil {
			cur = newPointSet()
			subpaths = append(subpaths, cur)
		}
		cur.add(p)
		all.add(p)
	}

	var pos, start, prevCtrl Point
	var prevCmd byte
	for _, item := range ToAbsolute(items) {
		args := item.Args
		switch item.Command {
		case 'M':
			cur = nil
			pos = Point{args[0], args[1]}
			start = pos
			addPoint(pos)
		case 'L', 'T':
			addPoint(pos)
			if item.Command == 'T' {
				ctrl := pos
				if prevCmd == 'Q' || prevCmd == 'T' {
					ctrl = pos.Mul(2.0).Sub(prevCtrl)
				}
				addPoint(ctrl)
				prevCtrl = ctrl
			}
			pos = Point{args[0], args[1]}
			addPoint(pos)
		case 'H':
			addPoint(pos)
			pos.X = args[0]
			addPoint(pos)
		case 'V':
			addPoint(pos)
			pos.Y = args[0]
			addPoint(pos)
		case 'Q':
			addPoint(pos)
			prevCtrl = Point{args[0], args[1]}
			addPoint(prevCtrl)
			pos = Point{args[2], args[3]}
			addPoint(pos)
		case 'C':
			addPoint(pos)
			addPoint(Point{args[0], args[1]})
			prevCtrl = Point{args[2], args[3]}
			addPoint(prevCtrl)
			pos = Point{args[4], args[5]}
			addPoint(pos)
		case 'S':
			addPoint(pos)
			ctrl := pos
			if prevCmd == 'C' || prevCmd == 'S' {
				ctrl = pos.Mul(2.0).Sub(prevCtrl)
			}
			addPoint(ctrl)
			prevCtrl = Point{args[0], args[1]}
			addPoint(prevCtrl)
			pos = Point{args[2], args[3]}
			addPoint(pos)
		case 'A':
			addPoint(pos)
			end := Point{args[5], args[6]}
			for _, c := range ArcToCubic(pos, args[0], args[1], args[2], args[3] != 0.0, args[4] != 0.0, end) {
				addPoint(Point{c.Args[0], c.Args[1]})
				addPoint(Point{c.Args[2], c.Args[3]})
				addPoint(Point{c.Args[4], c.Args[5]})
			}
			pos = end
			addPoint(pos)
		case 'Z':
			pos = start
		}
		prevCmd = item.Command
	}
	return all, subpaths
}

// ConvexHull returns the convex hull of the points in counter clockwise order, using the monotone chain algorithm. Colinear points are excluded.
func ConvexHull(points []Point) []Point {
	ps := append([]Point{}, points...)
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].X == ps[j].X {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
	if len(ps) < 3 {
		return ps
	}

	cross := func(o, a, b Point) float64 {
		return a.Sub(o).PerpDot(b.Sub(o))
	}
	lower := []Point{}
	for _, p := range ps {
		for 2 <= len(lower) && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0.0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	upper := []Point{}
	for i := len(ps) - 1; 0 <= i; i-- {
		p := ps[i]
		for 2 <= len(upper) && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0.0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// supportPoint returns the point of the convex polygon farthest in direction d.
func supportPoint(polygon []Point, d Point) Point {
	best := polygon[0]
	max := best.Dot(d)
	for _, p := range polygon[1:] {
		if v := p.Dot(d); max < v {
			best, max = p, v
		}
	}
	return best
}

// orth returns the vector perpendicular to v that faces away from the point from.
func orth(v, from Point) Point {
	o := Point{-v.Y, v.X}
	if o.Dot(from.Neg()) < 0.0 {
		return o.Neg()
	}
	return o
}

// processSimplex updates the simplex and search direction, it returns true when the simplex contains the origin.
func processSimplex(simplex []Point, d *Point) ([]Point, bool) {
	if len(simplex) == 2 {
		a, b := simplex[1], simplex[0]
		ao, ab := a.Neg(), b.Sub(a)
		if 0.0 < ao.Dot(ab) {
			*d = orth(ab, a)
		} else {
			*d = ao
			simplex = simplex[1:]
		}
		return simplex, false
	}

	a, b, c := simplex[2], simplex[1], simplex[0]
	ab, ac, ao := b.Sub(a), c.Sub(a), a.Neg()
	acb := orth(ab, ac) // perpendicular to AB facing away from C
	abc := orth(ac, ab) // perpendicular to AC facing away from B
	if 0.0 < acb.Dot(ao) {
		if 0.0 < ab.Dot(ao) {
			*d = acb
			simplex = []Point{b, a}
		} else {
			*d = ao
			simplex = []Point{a}
		}
	} else if 0.0 < abc.Dot(ao) {
		if 0.0 < ac.Dot(ao) {
			*d = abc
			simplex = []Point{c, a}
		} else {
			*d = ao
			simplex = []Point{a}
		}
	} else {
		return simplex, true
	}
	return simplex, false
}

// hullsIntersect runs GJK on the Minkowski difference of two convex polygons. Degenerate hulls and exhausting the iteration limit report an intersection.
func hullsIntersect(hull1, hull2 []Point) bool {
	if len(hull1) < 3 || len(hull2) < 3 {
		return true
	}
	support := func(d Point) Point {
		return supportPoint(hull1, d).Sub(supportPoint(hull2, d.Neg()))
	}

	simplex := []Point{support(Point{1.0, 0.0})}
	d := simplex[0].Neg()
	for i := 0; i < gjkMaxIterations; i++ {
		if d.IsZero() {
			// origin lies on the simplex, the hulls touch
			return true
		}
		simplex = append(simplex, support(d))
		if d.Dot(simplex[len(simplex)-1]) <= 0.0 {
			return false
		}
		var ok bool
		if simplex, ok = processSimplex(simplex, &d); ok {
			return true
		}
	}
	return true
}

// Intersects returns true if the two paths may overlap. The test is conservative: it may report an intersection for disjoint paths, but never reports disjoint paths that overlap.
func Intersects(path1, path2 []PathItem) bool {
	all1, subpaths1 := gatherPoints(path1)
	all2, subpaths2 := gatherPoints(path2)
	if len(subpaths1) == 0 || len(subpaths2) == 0 || all1.disjoint(all2) {
		return false
	}

	allDisjoint := true
	for _, s1 := range subpaths1 {
		for _, s2 := range subpaths2 {
			if !s1.disjoint(s2) {
				allDisjoint = false
			}
		}
	}
	if allDisjoint {
		return false
	}

	hulls2 := make([][]Point, len(subpaths2))
	for i, s2 := range subpaths2 {
		hulls2[i] = ConvexHull(s2.list)
	}
	for _, s1 := range subpaths1 {
		hull1 := ConvexHull(s1.list)
		for i, s2 := range subpaths2 {
			if s1.disjoint(s2) {
				continue
			} else if hullsIntersect(hull1, hulls2[i]) {
				return true
			}
		}
	}
	return false
}
