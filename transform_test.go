package svgo

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParseTransform(t *testing.T) {
	var tests = []struct {
		s        string
		expected []Transform
	}{
		{"translate(10)", []Transform{{TranslateTransform, []float64{10}}}},
		{"translate(10,20) scale(2)", []Transform{{TranslateTransform, []float64{10, 20}}, {ScaleTransform, []float64{2}}}},
		{"rotate(45 10 10)", []Transform{{RotateTransform, []float64{45, 10, 10}}}},
		{"matrix(1,0,0,1,-.5,1e1)", []Transform{{MatrixTransform, []float64{1, 0, 0, 1, -0.5, 10}}}},
		{"skewX(30),skewY(-30)", []Transform{{SkewXTransform, []float64{30}}, {SkewYTransform, []float64{-30}}}},
		{"", []Transform{}},
		{"matrix(1 2)", nil},
		{"rotate(1 2)", nil},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			test.T(t, ParseTransform(tt.s), tt.expected)
		})
	}
}

func TestTransformsMatrix(t *testing.T) {
	ts := ParseTransform("translate(10,20) scale(2)")
	test.T(t, TransformsMatrix(ts).Values(), []float64{2, 0, 0, 2, 10, 20})
	test.T(t, TransformsMultiply(ts), Transform{MatrixTransform, []float64{2, 0, 0, 2, 10, 20}})
	test.That(t, TransformsMatrix(ParseTransform("rotate(90 10 10)")).Equals(NewMatrix(0, 1, -1, 0, 20, 0)))
}

func TestDecompositions(t *testing.T) {
	ms := []Matrix{
		NewMatrix(1, 2, 3, 4, 5, 6),
		NewMatrix(2, 0, 0, 3, 0, 0),
		Identity.Rotate(30).Scale(2, 1),
		NewMatrix(-1, 0, 0, 1, 10, 0),
	}
	for _, m := range ms {
		t.Run(m.String(), func(t *testing.T) {
			ds := Decompositions(m)
			test.T(t, len(ds), 2)
			for _, d := range ds {
				test.That(t, TransformsMatrix(d).Equals(m), d)
			}
		})
	}
	test.T(t, len(Decompositions(NewMatrix(1, 2, 2, 4, 0, 0))), 0)
}

func TestMatrixToTransform(t *testing.T) {
	params := TransformParams{FloatPrecision: 3, TransformPrecision: 5, DegPrecision: 3}
	var tests = []struct {
		m        Matrix
		expected string
	}{
		{NewMatrix(1, 0, 0, 1, 10, 20), "translate(10 20)"},
		{NewMatrix(1, 0, 0, 1, 10, 0), "translate(10)"},
		{NewMatrix(2, 0, 0, 2, 0, 0), "scale(2)"},
		{NewMatrix(2, 0, 0, 3, 0, 0), "scale(2 3)"},
		{Identity.Rotate(30), "rotate(30)"},
		{Identity, "scale(1)"},
		{NewMatrix(1, 2, 2, 4, 5, 6), "matrix(1 2 2 4 5 6)"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			test.String(t, StringifyTransform(MatrixToTransform(tt.m, params), params), tt.expected)
		})
	}
}

func TestStringifyTransform(t *testing.T) {
	params := TransformParams{FloatPrecision: 3, TransformPrecision: 5, DegPrecision: -1}
	ts := []Transform{{TranslateTransform, []float64{10.12345}}, {ScaleTransform, []float64{2}}}
	test.String(t, StringifyTransform(ts, params), "translate(10.123)scale(2)")
	test.T(t, ts[0].Data, []float64{10.12345})
}
