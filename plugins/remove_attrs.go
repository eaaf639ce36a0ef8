package plugins

import (
	"regexp"
	"strings"

	"github.com/tdewolff/svgo"
	"go.uber.org/zap"
)

// RemoveAttrs removes attributes by pattern. A pattern has the form element:attribute:value, where each part is a regular expression and the element and value parts are optional.
var RemoveAttrs = &svgo.Plugin{
	Name:        "removeAttrs",
	Description: "removes specified attributes",
	Fn:          removeAttrs,
}

type attrPattern struct {
	elem, name, value *regexp.Regexp
}

func removeAttrs(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	attrs := params.Strings("attrs")
	if len(attrs) == 0 {
		info.Logger.Warn("removeAttrs requires the attrs parameter")
		return nil
	}
	sep := params.String("elemSeparator", ":")
	preserveCurrentColor := params.Bool("preserveCurrentColor", false)

	compile := func(s string) (*regexp.Regexp, error) {
		if s == "*" {
			s = ".*"
		}
		return regexp.Compile("^(?:" + s + ")$")
	}
	var patterns []attrPattern
	for _, attr := range attrs {
		parts := strings.Split(attr, sep)
		switch len(parts) {
		case 1:
			parts = []string{".*", parts[0], ".*"}
		case 2:
			parts = append(parts, ".*")
		}
		var p attrPattern
		var errs [3]error
		p.elem, errs[0] = compile(parts[0])
		p.name, errs[1] = compile(parts[1])
		p.value, errs[2] = compile(strings.Join(parts[2:], sep))
		if errs[0] != nil || errs[1] != nil || errs[2] != nil {
			info.Logger.Warn("invalid attribute pattern", zap.String("pattern", attr))
			continue
		}
		patterns = append(patterns, p)
	}

	return svgo.ElementVisitor(func(n *svgo.Node) {
		for _, p := range patterns {
			if !p.elem.MatchString(n.Name) {
				continue
			}
			n.RemoveFunc(func(attr svgo.Attr) bool {
				if preserveCurrentColor && (attr.Name == "fill" || attr.Name == "stroke") && strings.EqualFold(attr.Value, "currentColor") {
					return false
				}
				return p.name.MatchString(attr.Name) && p.value.MatchString(attr.Value)
			})
		}
	})
}
