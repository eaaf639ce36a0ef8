package svgo

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestNodeAttrs(t *testing.T) {
	n := NewElement("rect", Attr{"x", "1"}, Attr{"y", "2"})
	test.String(t, n.Get("x"), "1")
	test.That(t, !n.Has("width"))

	n.Set("x", "3")
	n.Set("width", "4")
	test.T(t, n.Attrs, []Attr{{"x", "3"}, {"y", "2"}, {"width", "4"}})

	n.Remove("y")
	test.T(t, n.Attrs, []Attr{{"x", "3"}, {"width", "4"}})

	n.RemoveFunc(func(attr Attr) bool { return attr.Value == "4" })
	test.T(t, n.Attrs, []Attr{{"x", "3"}})
}

func TestNodeChildren(t *testing.T) {
	root := MustParse(`<svg><a/><b/><c/></svg>`)
	svg := root.FirstChild()
	a, b, c := svg.Children()[0], svg.Children()[1], svg.Children()[2]
	test.T(t, b.Index(), 1)

	b.Detach()
	test.That(t, b.Parent() == nil)
	test.T(t, b.Index(), -1)
	test.String(t, Stringify(root, nil), `<svg><a/><c/></svg>`)

	svg.InsertChildren(0, b)
	test.String(t, Stringify(root, nil), `<svg><b/><a/><c/></svg>`)

	a.ReplaceWith(NewElement("d"), NewElement("e"))
	test.String(t, Stringify(root, nil), `<svg><b/><d/><e/><c/></svg>`)

	c.AppendChild(b)
	test.String(t, Stringify(root, nil), `<svg><d/><e/><c><b/></c></svg>`)
	test.That(t, b.Parent() == c)

	clone := c.Clone()
	test.That(t, clone.Parent() == nil)
	test.That(t, clone.FirstChild().Parent() == clone)
	clone.Set("x", "1")
	test.That(t, !c.Has("x"))

	svg.SetChildren([]*Node{c})
	test.String(t, Stringify(root, nil), `<svg><c><b/></c></svg>`)
	test.T(t, len(svg.Elements()), 1)
	test.That(t, svg.IsElement("svg", "g"))
	test.That(t, !svg.IsElement("g"))
	test.That(t, !root.IsElement())
}

func TestNodeDescendants(t *testing.T) {
	root := MustParse(`<svg><g><a/></g><b/></svg>`)
	names := []string{}
	root.Descendants(func(n *Node) bool {
		names = append(names, n.Name)
		return n.Name != "g"
	})
	test.String(t, strings.Join(names, ","), "svg,g,b")
}

func TestNodeTextContent(t *testing.T) {
	root := MustParse(`<svg><style>a<![CDATA[b]]></style></svg>`)
	test.String(t, root.FirstChild().FirstChild().TextContent(), "ab")
}

func TestVisit(t *testing.T) {
	root := MustParse(`<svg><g><a/></g><b/><!--c--></svg>`)
	events := []string{}
	Visit(root, &Visitor{
		Element: Hooks{
			Enter: func(n *Node) Action {
				events = append(events, "+"+n.Name)
				if n.Name == "g" {
					return SkipChildren
				}
				return Continue
			},
			Exit: func(n *Node) {
				events = append(events, "-"+n.Name)
			},
		},
		Comment: Hooks{
			Enter: func(n *Node) Action {
				events = append(events, "#"+n.Value)
				return Continue
			},
		},
	})
	// skipped elements have no exit
	test.String(t, strings.Join(events, " "), "+svg +g +b -b #c -svg")
}

func TestVisitDetach(t *testing.T) {
	root := MustParse(`<svg><a><b/></a><c/><d/></svg>`)
	visited := []string{}
	Visit(root, ElementVisitor(func(n *Node) {
		visited = append(visited, n.Name)
		if n.Name == "a" {
			n.Detach()
		} else if n.Name == "c" {
			n.Parent().AppendChild(NewElement("e"))
		}
	}))
	test.String(t, strings.Join(visited, ","), "svg,a,c,d")
	test.String(t, Stringify(root, nil), `<svg><c/><d/><e/></svg>`)
}
