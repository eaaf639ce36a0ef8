package plugins

import (
	"strings"

	"github.com/tdewolff/svgo"
)

var viewBoxElems = map[string]bool{"pattern": true, "svg": true, "symbol": true}

// RemoveViewBox removes the viewBox attribute when it coincides with the width and height.
var RemoveViewBox = &svgo.Plugin{
	Name:        "removeViewBox",
	Description: "removes viewBox attribute when possible",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return svgo.ElementVisitor(func(n *svgo.Node) {
			if !viewBoxElems[n.Name] || !n.Has("viewBox") || !n.Has("width") || !n.Has("height") {
				return
			} else if n.Name == "svg" && n.Parent() != nil && n.Parent().Type != svgo.RootNode {
				// nested svg elements scale their content with the viewBox
				return
			}
			nums := separatorRegexp.Split(strings.TrimSpace(n.Get("viewBox")), -1)
			if len(nums) == 4 && nums[0] == "0" && nums[1] == "0" &&
				strings.TrimSuffix(n.Get("width"), "px") == nums[2] && strings.TrimSuffix(n.Get("height"), "px") == nums[3] {
				n.Remove("viewBox")
			}
		})
	},
}
