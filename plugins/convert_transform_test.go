package plugins

import (
	"testing"

	"github.com/tdewolff/svgo"
	"github.com/tdewolff/test"
)

func TestConvertTransform(t *testing.T) {
	g := func(transform string) string {
		return `<svg><g transform="` + transform + `"/></svg>`
	}
	testPlugin(t, ConvertTransform, []pluginTest{
		{"short translate", nil, g("translate(10 0)"), g("translate(10)")},
		{"short scale", nil, g("scale(2 2)"), g("scale(2)")},
		{"useless rotate", nil, g("rotate(0)"), `<svg><g/></svg>`},
		{"useless matrix", nil, g("matrix(1 0 0 1 0 0)"), `<svg><g/></svg>`},
		{"collapse", nil, g("translate(10,20) scale(2)"), g("matrix(2 0 0 2 10 20)")},
		{"matrix to translate", nil, g("matrix(1 0 0 1 10 20)"), g("translate(10 20)")},
		{"round", nil, g("translate(10.123456)"), g("translate(10.123)")},
		{"no collapse", svgo.Params{"collapseIntoOne": false}, g("translate(10,0) scale(2,2)"), g("translate(10)scale(2)")},
		{"gradient", nil, `<svg><linearGradient gradientTransform="scale(1)"/></svg>`, `<svg><linearGradient/></svg>`},
	})
}

func TestDefinePrecision(t *testing.T) {
	params := svgo.TransformParams{FloatPrecision: 3, TransformPrecision: 5, DegPrecision: -1}

	p := definePrecision(svgo.ParseTransform("translate(10)"), params)
	test.T(t, p.TransformPrecision, 5)
	test.T(t, p.DegPrecision, 3)

	p = definePrecision(svgo.ParseTransform("matrix(0.5 0 0 0.25 0 0)"), params)
	test.T(t, p.TransformPrecision, 2)
	test.T(t, p.DegPrecision, 1)
}

func TestRemoveUselessTransforms(t *testing.T) {
	ts := removeUselessTransforms(svgo.ParseTransform("translate(0) rotate(0) skewX(0) scale(1) scale(1 2)"))
	test.T(t, len(ts), 1)
	test.T(t, ts[0].Name, svgo.ScaleTransform)
}
