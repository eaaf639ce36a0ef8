package plugins

import (
	"testing"

	"github.com/tdewolff/svgo"
	"github.com/tdewolff/test"
)

func TestCleanupAttrs(t *testing.T) {
	testPlugin(t, CleanupAttrs, []pluginTest{
		{"spaces", nil, `<svg><rect class="  a   b "/></svg>`, `<svg><rect class="a b"/></svg>`},
		{"newline", nil, "<svg><rect class=\"a\nb\"/></svg>", `<svg><rect class="a b"/></svg>`},
		{"no trim", svgo.Params{"trim": false}, `<svg><rect class="  a   b "/></svg>`, `<svg><rect class=" a b "/></svg>`},
	})
}

func TestCleanupNumericValues(t *testing.T) {
	testPlugin(t, CleanupNumericValues, []pluginTest{
		{"viewBox", nil, `<svg viewBox="0, 0, 100.0001, 50"/>`, `<svg viewBox="0 0 100 50"/>`},
		{"units", nil, `<svg width="100px" height="1in" x="0.5" version="1.1"/>`, `<svg width="100" height="96" x=".5" version="1.1"/>`},
		{"precision", svgo.Params{"floatPrecision": 1}, `<svg><rect x="1.26" y="-0.04"/></svg>`, `<svg><rect x="1.3" y="0"/></svg>`},
		{"leading zero", svgo.Params{"leadingZero": false}, `<svg><rect x="0.5"/></svg>`, `<svg><rect x="0.5"/></svg>`},
		{"unknown unit", nil, `<svg><rect x="5vw" fill="red"/></svg>`, `<svg><rect x="5vw" fill="red"/></svg>`},
	})
}

func TestConvertColors(t *testing.T) {
	testPlugin(t, ConvertColors, []pluginTest{
		{"short name", nil, `<svg><rect fill="#FF0000"/></svg>`, `<svg><rect fill="red"/></svg>`},
		{"rgb", nil, `<svg><rect stroke="rgb(255, 255, 255)"/></svg>`, `<svg><rect stroke="#fff"/></svg>`},
		{"name", nil, `<svg><rect fill="WHITE"/></svg>`, `<svg><rect fill="#fff"/></svg>`},
		{"url", nil, `<svg><rect fill="url(#A)"/></svg>`, `<svg><rect fill="url(#A)"/></svg>`},
		{"currentColor", svgo.Params{"currentColor": true}, `<svg><rect fill="red" stroke="none"/><mask><rect fill="red"/></mask></svg>`, `<svg><rect fill="currentColor" stroke="none"/><mask><rect fill="red"/></mask></svg>`},
		{"ignore", nil, `<svg><rect x="#FF0000"/></svg>`, `<svg><rect x="#FF0000"/></svg>`},
	})
}

func TestCleanupIds(t *testing.T) {
	testPlugin(t, CleanupIds, []pluginTest{
		{"minify", nil, `<svg><defs><linearGradient id="gradient"/></defs><rect fill="url(#gradient)" id="unused"/></svg>`, `<svg><defs><linearGradient id="a"/></defs><rect fill="url(#a)"/></svg>`},
		{"href", nil, `<svg><path id="shape"/><use href="#shape"/></svg>`, `<svg><path id="a"/><use href="#a"/></svg>`},
		{"preserve", svgo.Params{"preserve": []any{"shape"}}, `<svg><path id="shape"/><use href="#shape"/><rect id="x"/></svg>`, `<svg><path id="shape"/><use href="#shape"/><rect/></svg>`},
		{"style", nil, `<svg><style>#a{fill:red}</style><rect id="unused"/></svg>`, `<svg><style>#a{fill:red}</style><rect id="unused"/></svg>`},
		{"no minify", svgo.Params{"minify": false}, `<svg><path id="shape"/><use href="#shape"/><rect id="x"/></svg>`, `<svg><path id="shape"/><use href="#shape"/><rect/></svg>`},
	})
}

func TestGenerateID(t *testing.T) {
	test.String(t, generateID(0), "a")
	test.String(t, generateID(25), "z")
	test.String(t, generateID(26), "A")
	test.String(t, generateID(51), "Z")
	test.String(t, generateID(52), "aa")
	test.String(t, generateID(53), "ab")
}

func TestFindReferences(t *testing.T) {
	var tests = []struct {
		name, value string
		expected    []string
	}{
		{"fill", "url(#a)", []string{"a"}},
		{"fill", `url("#b")`, []string{"b"}},
		{"href", "#c", []string{"c"}},
		{"xlink:href", "#d", []string{"d"}},
		{"begin", "e.end", []string{"e"}},
		{"fill", "red", nil},
		{"x", "url(#a)", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name+"="+tt.value, func(t *testing.T) {
			test.T(t, findReferences(tt.name, tt.value), tt.expected)
		})
	}
}

func TestCleanupListOfValues(t *testing.T) {
	testPlugin(t, CleanupListOfValues, []pluginTest{
		{"points", nil, `<svg><polygon points="10.12345,20.5  30 40"/></svg>`, `<svg><polygon points="10.123 20.5 30 40"/></svg>`},
		{"units", nil, `<svg><rect stroke-dasharray="1.0001px, 2in"/></svg>`, `<svg><rect stroke-dasharray="1 2in"/></svg>`},
		{"keywords", nil, `<svg enable-background="new 0 0 10.0001 20"/>`, `<svg enable-background="new 0 0 10 20"/>`},
		{"precision", svgo.Params{"floatPrecision": 1}, `<svg viewBox="0 0 10.25 20.71"/>`, `<svg viewBox="0 0 10.3 20.7"/>`},
		{"other", nil, `<svg><rect width="10.12345"/></svg>`, `<svg><rect width="10.12345"/></svg>`},
	})
}

func TestCleanupEnableBackground(t *testing.T) {
	testPlugin(t, CleanupEnableBackground, []pluginTest{
		{"no filter", nil, `<svg enable-background="new 0 0 10 20"><g enable-background="new"/></svg>`, `<svg><g/></svg>`},
		{"svg", nil, `<svg width="10" height="20" enable-background="new 0 0 10 20"><filter/></svg>`, `<svg width="10" height="20"><filter/></svg>`},
		{"mask", nil, `<svg><filter/><mask width="10" height="20" enable-background="new 0 0 10 20"/></svg>`, `<svg><filter/><mask width="10" height="20" enable-background="new"/></svg>`},
		{"different", nil, `<svg width="10" height="20" enable-background="new 0 0 10 30"><filter/></svg>`, `<svg width="10" height="20" enable-background="new 0 0 10 30"><filter/></svg>`},
	})
}

func TestAddAttributesToSVGElement(t *testing.T) {
	testPlugin(t, AddAttributesToSVGElement, []pluginTest{
		{"attributes", svgo.Params{"attributes": []any{"focusable", map[string]any{"data-x": "1"}}}, `<svg width="1"><svg/></svg>`, `<svg width="1" focusable="" data-x="1"><svg/></svg>`},
		{"attribute", svgo.Params{"attribute": map[string]any{"width": "2"}}, `<svg width="1"/>`, `<svg width="1"/>`},
		{"missing", nil, `<svg/>`, `<svg/>`},
	})
}

func TestAddClassesToSVGElement(t *testing.T) {
	testPlugin(t, AddClassesToSVGElement, []pluginTest{
		{"classNames", svgo.Params{"classNames": []any{"b", "a"}}, `<svg class="a"/>`, `<svg class="a b"/>`},
		{"className", svgo.Params{"className": "x"}, `<svg><svg/></svg>`, `<svg class="x"><svg/></svg>`},
		{"missing", nil, `<svg/>`, `<svg/>`},
	})
}
