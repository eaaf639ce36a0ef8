package plugins

import (
	"regexp"
	"strings"

	"github.com/tdewolff/svgo"
	"go.uber.org/zap"
)

var (
	urlHashRegexp         = regexp.MustCompile(`(?i)\burl\((["']?)(#[^"')]+)["']?\)`)
	timingSeparatorRegexp = regexp.MustCompile(`\s*;\s+`)
)

// PrefixIds prefixes IDs and class names with the prefix parameter, or with the file name of the document, so that multiple inlined documents do not clash. References in attributes and style elements are updated accordingly.
var PrefixIds = &svgo.Plugin{
	Name:        "prefixIds",
	Description: "prefix IDs",
	Fn:          prefixIds,
}

func prefixIds(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	delim := params.String("delim", "__")
	doIDs := params.Bool("prefixIds", true)
	doClasses := params.Bool("prefixClassNames", true)

	prefix := "prefix" + delim
	if v, ok := params["prefix"]; ok {
		switch v := v.(type) {
		case bool:
			if !v {
				prefix = ""
			}
		case string:
			prefix = v + delim
		}
	} else if info != nil && info.Path != "" {
		base := info.Path
		if i := strings.LastIndexAny(base, `/\`); i != -1 {
			base = base[i+1:]
		}
		prefix = strings.NewReplacer(".", "_", " ", "_").Replace(base) + delim
	}

	prefixID := func(name string) string {
		if strings.HasPrefix(name, prefix) {
			return name
		}
		return prefix + name
	}
	prefixReference := func(ref string) (string, bool) {
		if !strings.HasPrefix(ref, "#") {
			return "", false
		}
		return "#" + prefixID(ref[1:]), true
	}
	prefixURLs := func(value string) string {
		return urlHashRegexp.ReplaceAllStringFunc(value, func(m string) string {
			sub := urlHashRegexp.FindStringSubmatch(m)
			ref, _ := prefixReference(sub[2])
			return "url(" + ref + ")"
		})
	}
	renameID, renameClass := prefixID, prefixID
	if !doIDs {
		renameID = func(name string) string { return name }
	}
	if !doClasses {
		renameClass = func(name string) string { return name }
	}

	var prefixRules func([]*svgo.CSSRule)
	prefixRules = func(rules []*svgo.CSSRule) {
		for _, rule := range rules {
			for i, s := range rule.Selectors {
				sel, err := svgo.ParseSelector(s)
				if err != nil {
					info.Logger.Debug("skip selector", zap.String("selector", s), zap.Error(err))
					continue
				}
				rule.Selectors[i] = sel.Rename(renameID, renameClass).String()
			}
			for i, decl := range rule.Declarations {
				rule.Declarations[i].Value = prefixURLs(decl.Value)
			}
			prefixRules(rule.Rules)
		}
	}

	return svgo.ElementVisitor(func(n *svgo.Node) {
		if n.Name == "style" {
			for _, child := range n.Children() {
				if child.Type != svgo.TextNode && child.Type != svgo.CDataNode {
					continue
				}
				rules, err := svgo.ParseCSS(child.Value)
				if err != nil {
					info.Logger.Warn("cannot parse style element", zap.Error(err))
					return
				}
				prefixRules(rules)
				child.Value = svgo.StringifyCSS(rules)
				return
			}
			return
		}

		if id := n.Get("id"); doIDs && id != "" {
			n.Set("id", prefixID(id))
		}
		if class := n.Get("class"); doClasses && class != "" {
			names := strings.Fields(class)
			for i, name := range names {
				names[i] = prefixID(name)
			}
			n.Set("class", strings.Join(names, " "))
		}
		for _, name := range []string{"href", "xlink:href"} {
			if v := n.Get(name); v != "" {
				if ref, ok := prefixReference(v); ok {
					n.Set(name, ref)
				}
			}
		}
		for i, attr := range n.Attrs {
			if svgo.ReferencesProps[attr.Name] && attr.Value != "" {
				n.Attrs[i].Value = prefixURLs(attr.Value)
			}
		}
		for _, name := range []string{"begin", "end"} {
			if v := n.Get(name); v != "" {
				parts := timingSeparatorRegexp.Split(v, -1)
				for i, part := range parts {
					if strings.HasSuffix(part, ".end") || strings.HasSuffix(part, ".start") {
						id, postfix, _ := strings.Cut(part, ".")
						parts[i] = prefixID(id) + "." + postfix
					}
				}
				n.Set(name, strings.Join(parts, "; "))
			}
		}
	})
}
