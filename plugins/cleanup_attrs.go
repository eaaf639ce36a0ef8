package plugins

import (
	"regexp"
	"strings"

	"github.com/tdewolff/svgo"
)

var (
	newlineBetweenRegexp = regexp.MustCompile(`(\S)\r?\n(\S)`)
	newlineRegexp        = regexp.MustCompile(`\r?\n`)
	spacesRegexp         = regexp.MustCompile(`\s{2,}`)
)

// CleanupAttrs removes newlines, trims and collapses whitespace in attribute values.
var CleanupAttrs = &svgo.Plugin{
	Name:        "cleanupAttrs",
	Description: "cleanups attributes from newlines, trailing and repeating spaces",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		newlines := params.Bool("newlines", true)
		trim := params.Bool("trim", true)
		spaces := params.Bool("spaces", true)
		return svgo.ElementVisitor(func(n *svgo.Node) {
			for i, attr := range n.Attrs {
				value := attr.Value
				if newlines {
					value = newlineBetweenRegexp.ReplaceAllString(value, "$1 $2")
					value = newlineRegexp.ReplaceAllString(value, "")
				}
				if trim {
					value = strings.TrimSpace(value)
				}
				if spaces {
					value = spacesRegexp.ReplaceAllString(value, " ")
				}
				n.Attrs[i].Value = value
			}
		})
	},
}
