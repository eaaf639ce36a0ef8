package plugins

import (
	"github.com/tdewolff/svgo"
)

// MergeStyles merges all style elements into the first one. A media attribute is turned into a media rule.
var MergeStyles = &svgo.Plugin{
	Name:        "mergeStyles",
	Description: "merge multiple style elements into one",
	Fn:          mergeStyles,
}

func mergeStyles(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	var first *svgo.Node
	css := ""
	useCData := false
	return &svgo.Visitor{
		Element: svgo.Hooks{
			Enter: func(n *svgo.Node) svgo.Action {
				if n.Name == "foreignObject" {
					return svgo.SkipChildren
				} else if !svgo.IsStyleElement(n) {
					return svgo.Continue
				}

				text := ""
				for _, c := range n.Children() {
					if c.Type == svgo.TextNode || c.Type == svgo.CDataNode {
						text += c.Value
						if c.Type == svgo.CDataNode {
							useCData = true
						}
					}
				}
				if isBlank(text) {
					n.Detach()
					return svgo.Continue
				}
				if media, ok := n.Attr("media"); ok {
					text = "@media " + media + "{" + text + "}"
					n.Remove("media")
				}

				if first == nil {
					first = n
				} else {
					n.Detach()
				}
				css += text
				return svgo.Continue
			},
		},
		Root: svgo.Hooks{
			Exit: func(*svgo.Node) {
				if first == nil {
					return
				}
				content := svgo.NewText(css)
				if useCData {
					content.Type = svgo.CDataNode
				}
				first.SetChildren([]*svgo.Node{content})
			},
		},
	}
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' && s[i] != '\n' && s[i] != '\r' {
			return false
		}
	}
	return true
}
