package plugins

import (
	"github.com/tdewolff/svgo"
	"go.uber.org/zap"
)

// RemoveAttributesBySelector removes attributes of the elements that match a CSS selector. The selectors parameter is a list of mappings with a selector and the attributes to remove.
var RemoveAttributesBySelector = &svgo.Plugin{
	Name:        "removeAttributesBySelector",
	Description: "removes attributes of elements that match a css selector",
	Fn:          removeAttributesBySelector,
}

func removeAttributesBySelector(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	var entries []any
	if list, ok := params["selectors"].([]any); ok {
		entries = list
	} else if params.Has("selector") {
		entries = []any{map[string]any(params)}
	}
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		p := svgo.Params(m)
		selector := p.String("selector", "")
		sel, err := svgo.ParseSelector(selector)
		if err != nil {
			info.Logger.Warn("invalid selector", zap.String("selector", selector), zap.Error(err))
			continue
		}
		attrs := p.Strings("attributes")
		for _, n := range sel.QueryAll(root) {
			for _, name := range attrs {
				n.Remove(name)
			}
		}
	}
	return nil
}
