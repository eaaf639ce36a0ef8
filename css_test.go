package svgo

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseCSS(t *testing.T) {
	rules, err := ParseCSS(".a, g > rect{fill:red;stroke : blue !important}@media print{.b{fill:blue}}@import url(x.css);")
	test.Error(t, err)
	test.T(t, len(rules), 3)
	test.T(t, rules[0].Selectors, []string{".a", "g>rect"})
	test.T(t, rules[0].Declarations, []Declaration{{"fill", "red", false}, {"stroke", "blue", true}})
	test.String(t, rules[1].AtRule, "@media")
	test.String(t, rules[1].Prelude, "print")
	test.That(t, rules[1].Block)
	test.T(t, len(rules[1].Rules), 1)
	test.String(t, rules[2].AtRule, "@import")
	test.That(t, !rules[2].Block)
}

func TestStringifyCSS(t *testing.T) {
	var tests = []struct {
		css      string
		expected string
	}{
		{".a { fill: red; stroke: blue }", ".a{fill:red;stroke:blue}"},
		{".a,.b{fill:red!important}", ".a,.b{fill:red!important}"},
		{".a, g > rect, :not(.b, .c) { fill: red }", ".a,g>rect,:not(.b,.c){fill:red}"},
		{"@media print { .a { fill: red } }", "@media print{.a{fill:red}}"},
		{"@font-face{font-family:x}", "@font-face{font-family:x}"},
		{"@charset \"utf-8\";", "@charset \"utf-8\";"},
	}
	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			rules, err := ParseCSS(tt.css)
			test.Error(t, err)
			test.String(t, StringifyCSS(rules), tt.expected)
		})
	}
}

func TestParseDeclarations(t *testing.T) {
	var tests = []struct {
		style    string
		expected []Declaration
	}{
		{"fill:red", []Declaration{{"fill", "red", false}}},
		{"fill: red; stroke: blue;", []Declaration{{"fill", "red", false}, {"stroke", "blue", false}}},
		{"FILL:red !important", []Declaration{{"fill", "red", true}}},
		{"font-family: a, b", []Declaration{{"font-family", "a,b", false}}},
		{"fill:;stroke:red", []Declaration{{"stroke", "red", false}}},
		{"", []Declaration{}},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			decls := ParseDeclarations(tt.style)
			test.T(t, decls, tt.expected)
		})
	}
	test.String(t, StringifyDeclarations([]Declaration{{"fill", "red", false}, {"stroke", "blue", true}}), "fill:red;stroke:blue!important")
}

func TestSelectorSpecificity(t *testing.T) {
	var tests = []struct {
		selector string
		expected Specificity
	}{
		{"*", Specificity{0, 0, 0}},
		{"rect", Specificity{0, 0, 1}},
		{".a.b", Specificity{0, 2, 0}},
		{"#a rect", Specificity{1, 0, 1}},
		{"g > rect[fill]:hover", Specificity{0, 2, 2}},
		{"rect::before", Specificity{0, 0, 2}},
		{":not(#a)", Specificity{1, 0, 0}},
		{":where(#a) rect", Specificity{0, 0, 1}},
		{"rect, #a", Specificity{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			sel, err := ParseSelector(tt.selector)
			test.Error(t, err)
			test.T(t, sel.Specificity(), tt.expected)
		})
	}

	test.T(t, Specificity{0, 1, 0}.Compare(Specificity{0, 0, 5}), 1)
	test.T(t, Specificity{0, 1, 0}.Compare(Specificity{1, 0, 0}), -1)
	test.T(t, Specificity{1, 2, 3}.Compare(Specificity{1, 2, 3}), 0)
}

func TestSelectorErrors(t *testing.T) {
	var tests = []string{
		"",
		"g >",
		".",
		"[fill",
		"[=a]",
		":not(",
		"a)",
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, err := ParseSelector(tt)
			test.That(t, err != nil)
		})
	}
}

func TestSelectorString(t *testing.T) {
	var tests = []struct {
		selector string
		expected string
	}{
		{"g   rect", "g rect"},
		{"g > rect + circle ~ path", "g>rect+circle~path"},
		{"#a.b[fill=red]", `#a.b[fill="red"]`},
		{"[xlink|href]", "[xlink|href]"},
		{"*", "*"},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			sel, err := ParseSelector(tt.selector)
			test.Error(t, err)
			test.String(t, sel.String(), tt.expected)
		})
	}
}

func TestQuerySelectorAll(t *testing.T) {
	root := MustParse(`<svg id="svg"><g id="g" class="x y"><rect id="r1" fill="red"/><circle id="c1"/><rect id="r2" fill="blue"/></g><rect id="r3" class="x" href="a.svg"/></svg>`)
	var tests = []struct {
		selector string
		expected string
	}{
		{"rect", "r1,r2,r3"},
		{"g rect", "r1,r2"},
		{"svg > rect", "r3"},
		{".x", "g,r3"},
		{".x.y", "g"},
		{"#c1 + rect", "r2"},
		{"#r1 ~ *", "c1,r2"},
		{"[fill]", "r1,r2"},
		{"[fill=blue]", "r2"},
		{"[class~=y]", "g"},
		{"[href$='.svg']", "r3"},
		{"[href^=a]", "r3"},
		{"[href*='.']", "r3"},
		{"rect:first-child", "r1"},
		{"rect:last-child", "r2,r3"},
		{"g > :nth-child(2n+1)", "r1,r2"},
		{"g > :nth-child(2)", "c1"},
		{"rect:nth-of-type(2)", "r2"},
		{"rect:not([fill])", "r3"},
		{":is(circle, #r3)", "c1,r3"},
		{"svg:root", "svg"},
		{"circle:empty", "c1"},
		{"rect:hover", ""},
		{"rect::before", ""},
		{"g, circle", "g,c1"},
		{"svg|rect", "r1,r2,r3"},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			ids := []string{}
			for _, n := range QuerySelectorAll(root, tt.selector) {
				ids = append(ids, n.Get("id"))
			}
			if n := QuerySelector(root, tt.selector); n != nil {
				test.String(t, n.Get("id"), ids[0])
			}
			test.String(t, strings.Join(ids, ","), tt.expected)
		})
	}
	test.That(t, Matches(root.FirstChild(), "svg"))
	test.That(t, !Matches(root.FirstChild(), "svg("))
}

func TestSelectorRename(t *testing.T) {
	sel, err := ParseSelector("#a.b:not(.c)")
	test.Error(t, err)
	renamed := sel.Rename(func(s string) string { return "x" + s }, func(s string) string { return "y" + s })
	ids, classes := renamed.Names()
	test.T(t, ids, []string{"xa"})
	test.T(t, classes, []string{"yb", "yc"})

	stripped, ok := sel.WithoutPseudoClasses()
	test.That(t, ok)
	test.String(t, stripped.String(), "#a.b")
	test.T(t, sel.Pseudos(), []string{":not"})
}
