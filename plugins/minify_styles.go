package plugins

import (
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/svgo"
	"go.uber.org/zap"
)

// MinifyStyles minifies the contents of style elements and style attributes. Empty style elements and attributes are removed.
var MinifyStyles = &svgo.Plugin{
	Name:        "minifyStyles",
	Description: "minifies styles and removes unused styles",
	Fn:          minifyStyles,
}

func minifyStyles(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	inlineParams := map[string]string{"inline": "1"}

	return svgo.ElementVisitor(func(n *svgo.Node) {
		if svgo.IsStyleElement(n) {
			text := n.TextContent()
			minified, err := m.String("text/css", text)
			if err != nil {
				info.Logger.Warn("style element not minified", zap.String("path", info.Path), zap.Error(err))
				return
			} else if minified == "" {
				n.Detach()
				return
			}
			content := svgo.NewText(minified)
			if first := n.FirstChild(); first != nil && first.Type == svgo.CDataNode {
				content.Type = svgo.CDataNode
			}
			n.SetChildren([]*svgo.Node{content})
		}
		if style, ok := n.Attr("style"); ok {
			sb := strings.Builder{}
			if err := css.Minify(m, &sb, strings.NewReader(style), inlineParams); err != nil {
				info.Logger.Warn("style attribute not minified", zap.String("path", info.Path), zap.Error(err))
				return
			}
			if minified := sb.String(); minified == "" {
				n.Remove("style")
			} else {
				n.Set("style", minified)
			}
		}
	})
}
