package plugins

import "github.com/tdewolff/svgo"

// RemoveXMLProcInst removes the XML declaration.
var RemoveXMLProcInst = &svgo.Plugin{
	Name:        "removeXMLProcInst",
	Description: "removes XML processing instructions",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		return &svgo.Visitor{
			Instruction: svgo.Hooks{
				Enter: func(n *svgo.Node) svgo.Action {
					if n.Name == "xml" {
						n.Detach()
					}
					return svgo.Continue
				},
			},
		}
	},
}
