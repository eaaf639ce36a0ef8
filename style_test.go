package svgo

import (
	"testing"

	"github.com/tdewolff/test"
)

func findID(root *Node, id string) *Node {
	return QuerySelector(root, "#"+id)
}

func TestComputeOwnStyle(t *testing.T) {
	root := MustParse(`<svg>
<style>
rect { fill: red; stroke: blue }
#a { fill: green }
.b { stroke: black !important }
rect:hover { opacity: .5 }
@media print { rect { stroke-width: 2 } }
</style>
<rect id="a" class="b" fill="yellow" stroke="white" style="stroke: gray; color: navy"/>
<rect id="c" fill="yellow"/>
</svg>`)
	ss := CollectStylesheet(root)
	test.T(t, len(ss.Errors), 0)

	styles := ComputeOwnStyle(ss, findID(root, "a"))
	test.T(t, styles["fill"], ComputedValue{Type: StaticStyle, Value: "green"})
	test.T(t, styles["stroke"], ComputedValue{Type: StaticStyle, Value: "black"})
	test.T(t, styles["color"], ComputedValue{Type: StaticStyle, Value: "navy"})
	test.T(t, styles["opacity"].Type, DynamicStyle)
	test.T(t, styles["stroke-width"].Type, DynamicStyle)
	test.That(t, !styles.IsStatic("opacity"))

	styles = ComputeOwnStyle(ss, findID(root, "c"))
	v, ok := styles.Value("fill")
	test.That(t, ok)
	test.String(t, v, "red")
	_, ok = styles.Value("opacity")
	test.That(t, !ok)
}

func TestStylesheetOrder(t *testing.T) {
	root := MustParse(`<svg><style>#a{fill:red}rect{fill:blue}.b{fill:green}</style><style media="print">rect{fill:black}</style><style type="text/less">rect{}</style></svg>`)
	ss := CollectStylesheet(root)
	selectors := []string{}
	for _, r := range ss.Rules {
		selectors = append(selectors, r.Selector)
	}
	test.T(t, selectors, []string{"rect", "rect", ".b", "#a"})
	test.That(t, !ss.Rules[0].Dynamic)
	test.That(t, ss.Rules[1].Dynamic)
	test.That(t, ss.UsesAttrSelector("class"))
	test.That(t, !ss.UsesAttrSelector("fill"))
}

func TestComputeStyleInheritance(t *testing.T) {
	root := MustParse(`<svg fill="red" opacity=".5"><g stroke="blue" color="inherit"><rect id="a" stroke="inherit" color="inherit"/><rect id="b" fill="inherit"/></g></svg>`)
	ss := CollectStylesheet(root)

	styles := ComputeStyle(ss, findID(root, "a"))
	test.T(t, styles["fill"], ComputedValue{Type: StaticStyle, Value: "red", Inherited: true})
	test.T(t, styles["stroke"], ComputedValue{Type: StaticStyle, Value: "blue", Inherited: true})
	_, ok := styles["opacity"]
	test.That(t, !ok, "opacity is not inherited")
	_, ok = styles["color"]
	test.That(t, !ok, "unresolved inherit is removed")

	styles = ComputeStyle(ss, findID(root, "b"))
	test.T(t, styles["fill"], ComputedValue{Type: StaticStyle, Value: "red", Inherited: true})
	test.T(t, styles["stroke"].Value, "blue")
}

func TestComputeStyleDynamic(t *testing.T) {
	root := MustParse(`<svg><style>g:hover{fill:red}</style><g><rect id="a"/><rect id="b" fill="blue"/></g></svg>`)
	ss := CollectStylesheet(root)

	styles := ComputeStyle(ss, findID(root, "a"))
	test.T(t, styles["fill"].Type, DynamicStyle)
	test.That(t, styles["fill"].Inherited)

	styles = ComputeStyle(ss, findID(root, "b"))
	test.T(t, styles["fill"], ComputedValue{Type: StaticStyle, Value: "blue"})
}

func TestIncludesURLReference(t *testing.T) {
	test.That(t, IncludesURLReference("url(#a)"))
	test.That(t, !IncludesURLReference("red"))
}

func TestStylesheetSelectorList(t *testing.T) {
	root := MustParse(`<svg><style>.a, .b { fill: red } g > rect, rect.c { stroke: blue }</style><rect id="a" class="a"/><rect id="b" class="b"/><rect id="c" class="c"/></svg>`)
	ss := CollectStylesheet(root)
	selectors := []string{}
	for _, r := range ss.Rules {
		selectors = append(selectors, r.Selector)
	}
	test.T(t, selectors, []string{"g>rect", ".a", ".b", "rect.c"})

	for _, id := range []string{"a", "b"} {
		v, ok := ComputeOwnStyle(ss, findID(root, id)).Value("fill")
		test.That(t, ok, id)
		test.String(t, v, "red")
	}
	v, _ := ComputeOwnStyle(ss, findID(root, "c")).Value("stroke")
	test.String(t, v, "blue")
}
