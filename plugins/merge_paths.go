package plugins

import (
	"github.com/tdewolff/svgo"
)

// MergePaths merges adjacent paths with the same attributes into one path when they do not overlap, since overlapping paths may render differently as one path.
var MergePaths = &svgo.Plugin{
	Name:        "mergePaths",
	Description: "merges multiple paths in one if possible",
	Fn:          mergePaths,
}

func mergePaths(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	force := params.Bool("force", false)
	opts := svgo.PathStringifyOptions{
		Precision:         precision(params, "floatPrecision", 3),
		NoSpaceAfterFlags: params.Bool("noSpaceAfterFlags", false),
	}

	stylesheet := svgo.CollectStylesheet(root)
	isPath := func(n *svgo.Node) bool {
		return n.IsElement("path") && len(n.Children()) == 0 && n.Has("d")
	}
	hasURL := func(styles svgo.ComputedStyles, name string) bool {
		v, ok := styles.Value(name)
		return ok && svgo.IncludesURLReference(v)
	}
	isMergeable := func(styles svgo.ComputedStyles) bool {
		for _, name := range []string{"marker-start", "marker-mid", "marker-end", "clip-path", "mask", "mask-image"} {
			if _, ok := styles[name]; ok {
				return false
			}
		}
		return !hasURL(styles, "fill") && !hasURL(styles, "filter") && !hasURL(styles, "stroke")
	}
	sameAttrs := func(a, b *svgo.Node) bool {
		if len(a.Attrs) != len(b.Attrs) {
			return false
		}
		for _, attr := range b.Attrs {
			if attr.Name == "d" {
				continue
			} else if v, ok := a.Attr(attr.Name); !ok || v != attr.Value {
				return false
			}
		}
		return true
	}

	return svgo.ElementVisitor(func(n *svgo.Node) {
		children := n.Children()
		if len(children) <= 1 {
			return
		}

		var removed []*svgo.Node
		prev := children[0]
		var prevData []svgo.PathItem
		flush := func() {
			if prevData != nil {
				setPath(prev, prevData, opts)
				prevData = nil
			}
		}
		for _, child := range children[1:] {
			if !isPath(prev) || !isPath(child) || !isMergeable(svgo.ComputeStyle(stylesheet, child)) || !sameAttrs(prev, child) {
				if prev.Type == svgo.ElementNode {
					flush()
				}
				prev = child
				continue
			}

			data := parsePath(child)
			if prevData == nil {
				prevData = parsePath(prev)
			}
			if force || !svgo.Intersects(prevData, data) {
				prevData = append(prevData, data...)
				removed = append(removed, child)
				continue
			}
			flush()
			prev = child
		}
		if prev.Type == svgo.ElementNode {
			flush()
		}
		for _, child := range removed {
			child.Detach()
		}
	})
}
