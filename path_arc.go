package svgo

import (
	"math"
)

// arcToCenter changes between the SVG arc format to the center and angles format. Radii that are too small are scaled up and returned.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64, float64, float64) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if x1 == x2 && y1 == y2 {
		return x1, y1, rx, ry, 0.0, 0.0
	}

	rot *= math.Pi / 180.0
	sinrot, cosrot := math.Sincos(rot)
	x1p := cosrot*(x1-x2)/2.0 + sinrot*(y1-y2)/2.0
	y1p := -sinrot*(x1-x2)/2.0 + cosrot*(y1-y2)/2.0

	// reduce rouding errors
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if radiiCheck > 1.0 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosrot*cxp - sinrot*cyp + (x1+x2)/2.0
	cy := sinrot*cxp + cosrot*cyp + (y1+y2)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(math.Max(-1.0, math.Min(1.0, ux/math.Sqrt(ux*ux+uy*uy))))
	if uy < 0.0 {
		theta = -theta
	}
	theta *= 180.0 / math.Pi

	delta := math.Acos(math.Max(-1.0, math.Min(1.0, (ux*vx+uy*vy)/math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	delta *= 180.0 / math.Pi
	if !sweep && delta > 0.0 {
		delta -= 360.0
	} else if sweep && delta < 0.0 {
		delta += 360.0
	}
	return cx, cy, rx, ry, theta, theta + delta
}

func ellipsePos(rx, ry, phi, cx, cy, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	x := cx + rx*costheta*cosphi - ry*sintheta*sinphi
	y := cy + rx*costheta*sinphi + ry*sintheta*cosphi
	return Point{x, y}
}

func ellipseDeriv(rx, ry, phi, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	dx := -rx*sintheta*cosphi - ry*costheta*sinphi
	dy := -rx*sintheta*sinphi + ry*costheta*cosphi
	return Point{dx, dy}
}

// ArcToCubic approximates the arc from start to end by cubic Béziers of at most 90 degrees each. It returns absolute C commands. A zero radius gives a straight curve.
func ArcToCubic(start Point, rx, ry, rot float64, large, sweep bool, end Point) []PathItem {
	if start.Equals(end) {
		return nil
	} else if rx == 0.0 || ry == 0.0 {
		return []PathItem{{'C', []float64{start.X, start.Y, end.X, end.Y, end.X, end.Y}}}
	}

	cx, cy, rx, ry, theta0, theta1 := arcToCenter(start.X, start.Y, rx, ry, rot, large, sweep, end.X, end.Y)
	phi := rot * math.Pi / 180.0
	theta0 *= math.Pi / 180.0
	theta1 *= math.Pi / 180.0

	n := int(math.Ceil(math.Abs(theta1-theta0) / (math.Pi / 2.0)))
	if n < 1 {
		n = 1
	}
	dtheta := (theta1 - theta0) / float64(n)
	kappa := 4.0 / 3.0 * math.Tan(dtheta/4.0)

	items := make([]PathItem, 0, n)
	p0 := start
	for i := 0; i < n; i++ {
		t0 := theta0 + float64(i)*dtheta
		t1 := t0 + dtheta
		p3 := ellipsePos(rx, ry, phi, cx, cy, t1)
		if i == n-1 {
			p3 = end
		}
		p1 := p0.Add(ellipseDeriv(rx, ry, phi, t0).Mul(kappa))
		p2 := p3.Sub(ellipseDeriv(rx, ry, phi, t1).Mul(kappa))
		items = append(items, PathItem{'C', []float64{p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y}})
		p0 = p3
	}
	return items
}
