package plugins

import (
	"sort"
	"strings"

	"github.com/tdewolff/svgo"
)

var defaultAttrsOrder = []string{"id", "width", "height", "x", "x1", "x2", "y", "y1", "y2", "cx", "cy", "r", "fill", "stroke", "marker", "d", "points"}

// SortAttrs sorts attributes: namespace declarations first, then the attributes in order, then the rest alphabetically. Attributes sharing a prefix before a dash, such as fill and fill-opacity, are kept together.
var SortAttrs = &svgo.Plugin{
	Name:        "sortAttrs",
	Description: "Sort element attributes for better compression",
	Fn:          sortAttrs,
}

func sortAttrs(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	order := defaultAttrsOrder
	if params.Has("order") {
		order = params.Strings("order")
	}
	xmlnsFront := params.String("xmlnsOrder", "front") == "front"

	nsPriority := func(name string) int {
		if xmlnsFront {
			if name == "xmlns" {
				return 3
			} else if strings.HasPrefix(name, "xmlns:") {
				return 2
			}
		}
		if strings.Contains(name, ":") {
			return 1
		}
		return 0
	}
	orderIndex := func(name string) int {
		for i, item := range order {
			if item == name {
				return i
			}
		}
		return -1
	}
	less := func(a, b string) bool {
		if pa, pb := nsPriority(a), nsPriority(b); pa != pb {
			return pb < pa
		}
		partA, _, _ := strings.Cut(a, "-")
		partB, _, _ := strings.Cut(b, "-")
		if partA != partB {
			ia, ib := orderIndex(partA), orderIndex(partB)
			if ia != -1 && ib != -1 {
				return ia < ib
			} else if ia != -1 || ib != -1 {
				return ia != -1
			}
		}
		return a < b
	}
	return svgo.ElementVisitor(func(n *svgo.Node) {
		sort.SliceStable(n.Attrs, func(i, j int) bool {
			return less(n.Attrs[i].Name, n.Attrs[j].Name)
		})
	})
}
