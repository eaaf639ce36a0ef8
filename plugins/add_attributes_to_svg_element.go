package plugins

import (
	"github.com/tdewolff/svgo"
	"go.uber.org/zap"
)

// AddAttributesToSVGElement adds attributes to the outer svg element. The attributes are given as names without a value or as mappings from name to value, existing attributes are kept.
var AddAttributesToSVGElement = &svgo.Plugin{
	Name:        "addAttributesToSVGElement",
	Description: "adds attributes to an outer <svg> element",
	Fn:          addAttributesToSVGElement,
}

func addAttributesToSVGElement(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	var attrs []any
	if list, ok := params["attributes"].([]any); ok {
		attrs = list
	} else if attr, ok := params["attribute"]; ok {
		attrs = []any{attr}
	} else {
		info.Logger.Warn("addAttributesToSVGElement requires the attributes or attribute parameter")
		return nil
	}

	return svgo.ElementVisitor(func(n *svgo.Node) {
		if n.Name != "svg" || n.Parent() == nil || n.Parent().Type != svgo.RootNode {
			return
		}
		for _, attr := range attrs {
			switch v := attr.(type) {
			case string:
				if !n.Has(v) {
					n.Set(v, "")
				}
			case map[string]any:
				for name, value := range v {
					if !n.Has(name) {
						s, _ := value.(string)
						n.Set(name, s)
					}
				}
			default:
				info.Logger.Warn("invalid attribute", zap.Any("attribute", attr))
			}
		}
	})
}
