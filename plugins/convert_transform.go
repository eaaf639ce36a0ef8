package plugins

import (
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/svgo"
)

// ConvertTransform collapses transform lists into one matrix, decomposes matrices into shorter transform functions, rounds and drops identity transforms.
var ConvertTransform = &svgo.Plugin{
	Name:        "convertTransform",
	Description: "collapses multiple transformations and optimizes it",
	Fn:          convertTransform,
}

type transformOptions struct {
	convertToShorts   bool
	matrixToTransform bool
	shortTranslate    bool
	shortScale        bool
	shortRotate       bool
	removeUseless     bool
	collapseIntoOne   bool
	params            svgo.TransformParams
}

func convertTransform(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	opts := transformOptions{
		convertToShorts:   params.Bool("convertToShorts", true),
		matrixToTransform: params.Bool("matrixToTransform", true),
		shortTranslate:    params.Bool("shortTranslate", true),
		shortScale:        params.Bool("shortScale", true),
		shortRotate:       params.Bool("shortRotate", true),
		removeUseless:     params.Bool("removeUseless", true),
		collapseIntoOne:   params.Bool("collapseIntoOne", true),
		params: svgo.TransformParams{
			FloatPrecision:     params.Int("floatPrecision", 3),
			TransformPrecision: params.Int("transformPrecision", 5),
			DegPrecision:       params.Int("degPrecision", -1),
			OutData: svgo.OutDataOptions{
				LeadingZero:        params.Bool("leadingZero", true),
				NegativeExtraSpace: params.Bool("negativeExtraSpace", false),
			},
		},
	}

	return svgo.ElementVisitor(func(n *svgo.Node) {
		for _, name := range []string{"transform", "gradientTransform", "patternTransform"} {
			if v, ok := n.Attr(name); ok {
				if s, ok := opts.convert(v); !ok {
					continue
				} else if s == "" {
					n.Remove(name)
				} else {
					n.Set(name, s)
				}
			}
		}
	})
}

// convert returns the optimized transform list, it returns false when the list cannot be parsed.
func (opts transformOptions) convert(s string) (string, bool) {
	ts := svgo.ParseTransform(s)
	if ts == nil {
		return "", false
	}
	params := definePrecision(ts, opts.params)
	if opts.collapseIntoOne && 1 < len(ts) {
		ts = []svgo.Transform{svgo.TransformsMultiply(ts)}
	}
	if opts.convertToShorts {
		ts = opts.toShorts(ts, params)
	} else {
		for i := range ts {
			ts[i] = svgo.RoundTransform(ts[i], params)
		}
	}
	if opts.removeUseless {
		ts = removeUselessTransforms(ts)
	}
	if len(ts) == 0 {
		return "", true
	}
	return svgo.StringifyTransform(ts, params), true
}

// definePrecision lowers the transform precision to the precision of the matrix factors and sets the degree precision when it is not given.
func definePrecision(ts []svgo.Transform, params svgo.TransformParams) svgo.TransformParams {
	var factors []float64
	for _, t := range ts {
		if t.Name == svgo.MatrixTransform {
			factors = append(factors, t.Data[:4]...)
		}
	}
	numberOfDigits := params.TransformPrecision
	if 0 < len(factors) {
		floatDigits, digits := 0, 0
		for _, f := range factors {
			s := strconv.FormatFloat(f, 'f', -1, 64)
			if i := strings.IndexByte(s, '.'); i != -1 {
				floatDigits = max(floatDigits, len(s)-i-1)
			}
			digits = max(digits, len(strings.Map(func(r rune) rune {
				if '0' <= r && r <= '9' {
					return r
				}
				return -1
			}, s)))
		}
		if floatDigits != 0 {
			params.TransformPrecision = min(params.TransformPrecision, floatDigits)
		}
		numberOfDigits = digits
	}
	if params.DegPrecision < 0 {
		params.DegPrecision = max(0, min(params.FloatPrecision, numberOfDigits-2))
	}
	return params
}

func (opts transformOptions) toShorts(ts []svgo.Transform, params svgo.TransformParams) []svgo.Transform {
	for i := 0; i < len(ts); i++ {
		if opts.matrixToTransform && ts[i].Name == svgo.MatrixTransform {
			decomposed := svgo.MatrixToTransform(svgo.TransformsMatrix(ts[i:i+1]), params)
			if len(svgo.StringifyTransform(decomposed, params)) <= len(svgo.StringifyTransform(ts[i:i+1], params)) {
				ts = append(ts[:i], append(decomposed, ts[i+1:]...)...)
			}
		}

		t := svgo.RoundTransform(ts[i], params)
		if opts.shortTranslate && t.Name == svgo.TranslateTransform && len(t.Data) == 2 && t.Data[1] == 0.0 {
			t.Data = t.Data[:1]
		}
		if opts.shortScale && t.Name == svgo.ScaleTransform && len(t.Data) == 2 && t.Data[0] == t.Data[1] {
			t.Data = t.Data[:1]
		}
		ts[i] = t

		if opts.shortRotate && 2 <= i && ts[i-2].Name == svgo.TranslateTransform && ts[i-1].Name == svgo.RotateTransform && t.Name == svgo.TranslateTransform {
			first, last := ts[i-2].Data, t.Data
			if arg(first, 0) == -arg(last, 0) && arg(first, 1) == -arg(last, 1) {
				rotate := svgo.Transform{
					Name: svgo.RotateTransform,
					Data: []float64{ts[i-1].Data[0], arg(first, 0), arg(first, 1)},
				}
				ts = append(append(ts[:i-2], rotate), ts[i+1:]...)
				i -= 2
			}
		}
	}
	return ts
}

func removeUselessTransforms(ts []svgo.Transform) []svgo.Transform {
	out := ts[:0]
	for _, t := range ts {
		switch t.Name {
		case svgo.TranslateTransform:
			if arg(t.Data, 0) == 0.0 && arg(t.Data, 1) == 0.0 {
				continue
			}
		case svgo.RotateTransform:
			if arg(t.Data, 0) == 0.0 && arg(t.Data, 1) == 0.0 {
				continue
			}
		case svgo.SkewXTransform, svgo.SkewYTransform:
			if arg(t.Data, 0) == 0.0 {
				continue
			}
		case svgo.ScaleTransform:
			if arg(t.Data, 0) == 1.0 && (len(t.Data) < 2 || t.Data[1] == 1.0) {
				continue
			}
		case svgo.MatrixTransform:
			d := t.Data
			if d[0] == 1.0 && d[3] == 1.0 && d[1] == 0.0 && d[2] == 0.0 && d[4] == 0.0 && d[5] == 0.0 {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func arg(data []float64, i int) float64 {
	if i < len(data) && !math.IsNaN(data[i]) {
		return data[i]
	}
	return 0.0
}
