package plugins

import (
	"regexp"
	"strings"

	"github.com/tdewolff/svgo"
)

var standardDescRegexp = regexp.MustCompile(`^(Created with|Created using)`)

// RemoveDesc removes desc elements that are empty or were generated by an editor, or all when removeAny is set.
var RemoveDesc = &svgo.Plugin{
	Name:        "removeDesc",
	Description: "removes <desc>",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		removeAny := params.Bool("removeAny", false)
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if n.Name != "desc" {
				return
			}
			children := n.Children()
			if removeAny || len(children) == 0 || children[0].Type == svgo.TextNode && standardDescRegexp.MatchString(strings.TrimSpace(children[0].Value)) {
				n.Detach()
			}
		})
	},
}
