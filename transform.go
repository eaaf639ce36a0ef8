package svgo

import (
	"math"
	"regexp"
	"strings"
)

// TransformName is the name of a transform function.
type TransformName string

// TransformName values.
const (
	MatrixTransform    TransformName = "matrix"
	TranslateTransform TransformName = "translate"
	ScaleTransform     TransformName = "scale"
	RotateTransform    TransformName = "rotate"
	SkewXTransform     TransformName = "skewX"
	SkewYTransform     TransformName = "skewY"
)

// Transform is a single transform function, angles are in degrees.
type Transform struct {
	Name TransformName
	Data []float64
}

func (t Transform) arg(i int) float64 {
	if i < len(t.Data) {
		return t.Data[i]
	}
	return 0.0
}

func (t Transform) copy() Transform {
	return Transform{t.Name, append([]float64{}, t.Data...)}
}

// TransformParams holds the precisions used to round transforms.
type TransformParams struct {
	FloatPrecision     int
	TransformPrecision int
	DegPrecision       int // negative means unset
	OutData            OutDataOptions
}

var transformRegexp = regexp.MustCompile(`\s*(matrix|translate|scale|rotate|skewX|skewY)\s*\(\s*(.+?)\s*\)[\s,]*`)
var numberRegexp = regexp.MustCompile(`[-+]?(?:\d*\.\d+|\d+\.?)(?:[eE][-+]?\d+)?`)

// ParseTransform parses a transform list, an invalid list returns nil.
func ParseTransform(s string) []Transform {
	ts := []Transform{}
	for _, m := range transformRegexp.FindAllStringSubmatch(s, -1) {
		t := Transform{Name: TransformName(m[1])}
		for _, num := range numberRegexp.FindAllString(m[2], -1) {
			f, n := parseFloat(num)
			if n != 0 {
				t.Data = append(t.Data, f)
			}
		}
		if !t.valid() {
			return nil
		}
		ts = append(ts, t)
	}
	return ts
}

func (t Transform) valid() bool {
	switch t.Name {
	case MatrixTransform:
		return len(t.Data) == 6
	case TranslateTransform, ScaleTransform:
		return len(t.Data) == 1 || len(t.Data) == 2
	case RotateTransform:
		return len(t.Data) == 1 || len(t.Data) == 3
	case SkewXTransform, SkewYTransform:
		return len(t.Data) == 1
	}
	return false
}

// Matrix returns the transformation matrix.
func (t Transform) Matrix() Matrix {
	switch t.Name {
	case MatrixTransform:
		return NewMatrix(t.arg(0), t.arg(1), t.arg(2), t.arg(3), t.arg(4), t.arg(5))
	case TranslateTransform:
		return Identity.Translate(t.arg(0), t.arg(1))
	case ScaleTransform:
		sy := t.arg(0)
		if 1 < len(t.Data) {
			sy = t.Data[1]
		}
		return Identity.Scale(t.arg(0), sy)
	case RotateTransform:
		return Identity.RotateAt(t.arg(0), t.arg(1), t.arg(2))
	case SkewXTransform:
		return Identity.SkewX(t.arg(0))
	case SkewYTransform:
		return Identity.SkewY(t.arg(0))
	}
	return Identity
}

// TransformsMultiply composes the transforms into a single matrix transform.
func TransformsMultiply(ts []Transform) Transform {
	m := Identity
	for _, t := range ts {
		m = m.Mul(t.Matrix())
	}
	return Transform{MatrixTransform, m.Values()}
}

// TransformsMatrix composes the transforms into a matrix.
func TransformsMatrix(ts []Transform) Matrix {
	m := Identity
	for _, t := range ts {
		m = m.Mul(t.Matrix())
	}
	return m
}

func deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// decomposeQRAB decomposes a matrix via its first column into translate, rotate, scale and skewX. It returns nil for singular matrices.
func decomposeQRAB(m Matrix) []Transform {
	a, b, c, d, e, f := m[0][0], m[1][0], m[0][1], m[1][1], m[0][2], m[1][2]
	delta := a*d - b*c
	if delta == 0.0 {
		return nil
	}
	r := math.Hypot(a, b)
	if r == 0.0 {
		return nil
	}

	ts := []Transform{}
	if e != 0.0 || f != 0.0 {
		ts = append(ts, Transform{TranslateTransform, []float64{e, f}})
	}
	if cos := a / r; cos != 1.0 {
		angle := math.Acos(math.Max(-1.0, math.Min(1.0, cos)))
		if b < 0.0 {
			angle = -angle
		}
		ts = append(ts, Transform{RotateTransform, []float64{deg(angle), 0.0, 0.0}})
	}
	sx, sy := r, delta/r
	if sx != 1.0 || sy != 1.0 {
		ts = append(ts, Transform{ScaleTransform, []float64{sx, sy}})
	}
	if acbd := a*c + b*d; acbd != 0.0 {
		ts = append(ts, Transform{SkewXTransform, []float64{deg(math.Atan(acbd / (a*a + b*b)))}})
	}
	return ts
}

// decomposeQRCD decomposes a matrix via its second column into translate, rotate, scale and skewY. It returns nil for singular matrices.
func decomposeQRCD(m Matrix) []Transform {
	a, b, c, d, e, f := m[0][0], m[1][0], m[0][1], m[1][1], m[0][2], m[1][2]
	delta := a*d - b*c
	if delta == 0.0 {
		return nil
	}
	s := math.Hypot(c, d)
	if s == 0.0 {
		return nil
	}

	ts := []Transform{}
	if e != 0.0 || f != 0.0 {
		ts = append(ts, Transform{TranslateTransform, []float64{e, f}})
	}
	sign := 1.0
	if d < 0.0 {
		sign = -1.0
	}
	angle := math.Pi/2.0 - sign*math.Acos(math.Max(-1.0, math.Min(1.0, -c/s)))
	ts = append(ts, Transform{RotateTransform, []float64{deg(angle), 0.0, 0.0}})
	ts = append(ts, Transform{ScaleTransform, []float64{delta / s, s}})
	if acbd := a*c + b*d; acbd != 0.0 {
		ts = append(ts, Transform{SkewYTransform, []float64{deg(math.Atan(acbd / (c*c + d*d)))}})
	}
	return ts
}

// Decompositions returns the candidate decompositions of the matrix. Composing any of them gives back the matrix.
func Decompositions(m Matrix) [][]Transform {
	ds := [][]Transform{}
	if qrab := decomposeQRAB(m); qrab != nil {
		ds = append(ds, qrab)
	}
	if qrcd := decomposeQRCD(m); qrcd != nil {
		ds = append(ds, qrcd)
	}
	return ds
}

// mergeTranslateAndRotate returns rotate(a,cx,cy) that equals translate(tx,ty) rotate(a).
func mergeTranslateAndRotate(tx, ty, a float64) Transform {
	d := 1.0 - math.Cos(rad(a))
	e := math.Sin(rad(a))
	cy := (d*ty + e*tx) / (d*d + e*e)
	cx := (tx - e*cy) / d
	return Transform{RotateTransform, []float64{a, cx, cy}}
}

func isIdentityTransform(t Transform) bool {
	switch t.Name {
	case RotateTransform, SkewXTransform, SkewYTransform:
		return t.arg(0) == 0.0
	case ScaleTransform:
		return t.arg(0) == 1.0 && (len(t.Data) < 2 || t.Data[1] == 1.0)
	case TranslateTransform:
		return t.arg(0) == 0.0 && t.arg(1) == 0.0
	}
	return false
}

func scaleTransform(data []float64) Transform {
	if len(data) == 2 && data[0] == data[1] {
		return Transform{ScaleTransform, []float64{data[0]}}
	}
	return Transform{ScaleTransform, append([]float64{}, data...)}
}

// optimizeTransforms removes identities and merges rotations, raw are the unrounded transforms.
func optimizeTransforms(rounded, raw []Transform) []Transform {
	ts := []Transform{}
	for i := 0; i < len(rounded); i++ {
		t := rounded[i]
		if isIdentityTransform(t) {
			continue
		}
		switch t.Name {
		case RotateTransform:
			if t.arg(0) == 180.0 || t.arg(0) == -180.0 {
				if i+1 < len(rounded) && rounded[i+1].Name == ScaleTransform {
					next := rounded[i+1].Data
					neg := make([]float64, len(next))
					for j, v := range next {
						neg[j] = -v
					}
					ts = append(ts, scaleTransform(neg))
					i++
				} else {
					ts = append(ts, Transform{ScaleTransform, []float64{-1.0}})
				}
				continue
			}
			if t.arg(1) != 0.0 || t.arg(2) != 0.0 {
				ts = append(ts, Transform{RotateTransform, []float64{t.arg(0), t.arg(1), t.arg(2)}})
			} else {
				ts = append(ts, Transform{RotateTransform, []float64{t.arg(0)}})
			}
		case ScaleTransform:
			ts = append(ts, scaleTransform(t.Data))
		case SkewXTransform, SkewYTransform:
			ts = append(ts, Transform{t.Name, []float64{t.arg(0)}})
		case TranslateTransform:
			if i+1 < len(rounded) {
				next := rounded[i+1]
				if next.Name == RotateTransform && next.arg(0) != 180.0 && next.arg(0) != -180.0 && next.arg(0) != 0.0 && next.arg(1) == 0.0 && next.arg(2) == 0.0 {
					ts = append(ts, mergeTranslateAndRotate(raw[i].arg(0), raw[i].arg(1), raw[i+1].arg(0)))
					i++
					continue
				}
			}
			if t.arg(1) != 0.0 {
				ts = append(ts, Transform{TranslateTransform, []float64{t.arg(0), t.arg(1)}})
			} else {
				ts = append(ts, Transform{TranslateTransform, []float64{t.arg(0)}})
			}
		}
	}
	if len(ts) == 0 {
		return []Transform{{ScaleTransform, []float64{1.0}}}
	}
	return ts
}

// MatrixToTransform returns the shortest rounded decomposition of the matrix, or the matrix itself when it cannot be decomposed.
func MatrixToTransform(m Matrix, params TransformParams) []Transform {
	var shortest []Transform
	shortestLen := math.MaxInt
	for _, d := range Decompositions(m) {
		rounded := make([]Transform, len(d))
		for i, t := range d {
			rounded[i] = RoundTransform(t.copy(), params)
		}
		optimized := optimizeTransforms(rounded, d)
		if n := len(StringifyTransform(optimized, params)); n < shortestLen {
			shortest = optimized
			shortestLen = n
		}
	}
	if shortest == nil {
		return []Transform{{MatrixTransform, m.Values()}}
	}
	return shortest
}

func degRound(data []float64, params TransformParams) []float64 {
	if 1 <= params.DegPrecision && params.FloatPrecision < 20 {
		return SmartRound(params.DegPrecision, data)
	}
	return RoundAll(data)
}

func floatRound(data []float64, params TransformParams) []float64 {
	if 1 <= params.FloatPrecision && params.FloatPrecision < 20 {
		return SmartRound(params.FloatPrecision, data)
	}
	return RoundAll(data)
}

func transformRound(data []float64, params TransformParams) []float64 {
	if 1 <= params.TransformPrecision && params.FloatPrecision < 20 {
		return SmartRound(params.TransformPrecision, data)
	}
	return RoundAll(data)
}

// RoundTransform rounds the transform in place: angles with the degree precision, translations with the float precision and scale factors with the transform precision.
func RoundTransform(t Transform, params TransformParams) Transform {
	switch t.Name {
	case TranslateTransform:
		t.Data = floatRound(t.Data, params)
	case RotateTransform:
		if 0 < len(t.Data) {
			degRound(t.Data[:1], params)
			floatRound(t.Data[1:], params)
		}
	case SkewXTransform, SkewYTransform:
		t.Data = degRound(t.Data, params)
	case ScaleTransform:
		t.Data = transformRound(t.Data, params)
	case MatrixTransform:
		if 4 <= len(t.Data) {
			transformRound(t.Data[:4], params)
			floatRound(t.Data[4:], params)
		}
	}
	return t
}

// StringifyTransform rounds and serializes a transform list.
func StringifyTransform(ts []Transform, params TransformParams) string {
	sb := strings.Builder{}
	for _, t := range ts {
		t = RoundTransform(t.copy(), params)
		sb.WriteString(string(t.Name))
		sb.WriteByte('(')
		sb.WriteString(CleanupOutData(t.Data, params.OutData, 0))
		sb.WriteByte(')')
	}
	return sb.String()
}
