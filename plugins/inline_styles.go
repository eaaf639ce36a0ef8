package plugins

import (
	"sort"
	"strings"

	"github.com/tdewolff/svgo"
	"go.uber.org/zap"
)

// InlineStyles moves the declarations of style elements into the style attributes of the elements they match. Rules under media queries or with pseudo-classes that are not listed are kept in the stylesheet.
var InlineStyles = &svgo.Plugin{
	Name:        "inlineStyles",
	Description: "inline styles (additional options)",
	Fn:          inlineStyles,
}

type inlineSheet struct {
	node    *svgo.Node
	rules   []*svgo.CSSRule
	changed bool
}

type inlineSelector struct {
	text    string
	matcher *svgo.Selector
	spec    svgo.Specificity
	rule    *svgo.CSSRule
	sheet   *inlineSheet
}

func inlineStyles(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	onlyMatchedOnce := params.Bool("onlyMatchedOnce", true)
	removeMatchedSelectors := params.Bool("removeMatchedSelectors", true)
	useMqs := []string{"", "screen"}
	if params.Has("useMqs") {
		useMqs = params.Strings("useMqs")
	}
	usePseudos := []string{""}
	if params.Has("usePseudos") {
		usePseudos = params.Strings("usePseudos")
	}

	var sheets []*inlineSheet
	root.Descendants(func(n *svgo.Node) bool {
		if n.IsElement("foreignObject") {
			return false
		} else if !svgo.IsStyleElement(n) {
			return true
		} else if media, ok := n.Attr("media"); ok && !containsString(useMqs, media) {
			return false
		}
		for _, c := range n.Children() {
			if c.Type != svgo.TextNode && c.Type != svgo.CDataNode {
				return false
			}
		}
		rules, err := svgo.ParseCSS(n.TextContent())
		if err != nil {
			info.Logger.Warn("stylesheet not inlined", zap.String("path", info.Path), zap.Error(err))
			return false
		}
		sheets = append(sheets, &inlineSheet{node: n, rules: rules})
		return false
	})

	var selectors []*inlineSelector
	var collect func(*inlineSheet, []*svgo.CSSRule)
	collect = func(sheet *inlineSheet, rules []*svgo.CSSRule) {
		for _, r := range rules {
			if r.AtRule == "@media" && containsString(useMqs, r.Prelude) {
				collect(sheet, r.Rules)
				continue
			} else if r.AtRule != "" {
				continue
			}
		Selectors:
			for _, text := range r.Selectors {
				sel, err := svgo.ParseSelector(text)
				if err != nil {
					info.Logger.Debug("invalid selector", zap.String("selector", text), zap.Error(err))
					continue
				}
				for _, pseudo := range sel.Pseudos() {
					if !containsString(usePseudos, pseudo) {
						continue Selectors
					}
				}
				matcher, _ := sel.WithoutPseudoClasses()
				selectors = append(selectors, &inlineSelector{
					text:    text,
					matcher: matcher,
					spec:    sel.Specificity(),
					rule:    r,
					sheet:   sheet,
				})
			}
		}
	}
	for _, sheet := range sheets {
		collect(sheet, sheet.rules)
	}

	// process the highest specificity first, declarations that are already inlined are not overwritten
	sort.SliceStable(selectors, func(i, j int) bool {
		return selectors[i].spec.Compare(selectors[j].spec) < 0
	})
	for i, j := 0, len(selectors)-1; i < j; i, j = i+1, j-1 {
		selectors[i], selectors[j] = selectors[j], selectors[i]
	}

	matched := map[*inlineSelector][]*svgo.Node{}
	for _, sel := range selectors {
		elems := sel.matcher.QueryAll(root)
		if len(elems) == 0 || onlyMatchedOnce && 1 < len(elems) {
			continue
		}
		for _, elem := range elems {
			decls := svgo.ParseDeclarations(elem.Get("style"))
		Declarations:
			for _, decl := range sel.rule.Declarations {
				for i, existing := range decls {
					if existing.Name == decl.Name {
						if !existing.Important && decl.Important {
							decls[i] = decl
						}
						continue Declarations
					}
				}
				decls = append(decls, decl)
			}
			elem.Set("style", svgo.StringifyDeclarations(decls))
		}
		matched[sel] = elems
	}

	if removeMatchedSelectors {
		for _, sel := range selectors {
			if _, ok := matched[sel]; !ok {
				continue
			}
			kept := sel.rule.Selectors[:0]
			for _, text := range sel.rule.Selectors {
				if text != sel.text {
					kept = append(kept, text)
				}
			}
			sel.rule.Selectors = kept
			sel.sheet.changed = true
		}
		removeInlinedNames(root, selectors, matched)
	}

	for _, sheet := range sheets {
		if !sheet.changed {
			continue
		}
		sheet.rules = pruneRules(sheet.rules)
		if len(sheet.rules) == 0 {
			sheet.node.Detach()
			continue
		}
		content := svgo.NewText(svgo.StringifyCSS(sheet.rules))
		if first := sheet.node.FirstChild(); first != nil && first.Type == svgo.CDataNode {
			content.Type = svgo.CDataNode
		}
		sheet.node.SetChildren([]*svgo.Node{content})
	}
	return nil
}

// removeInlinedNames removes the class or id of elements matched by a plain class or id selector, unless it is still used by a remaining selector or referenced.
func removeInlinedNames(root *svgo.Node, selectors []*inlineSelector, matched map[*inlineSelector][]*svgo.Node) {
	usedIDs, usedClasses := map[string]bool{}, map[string]bool{}
	for _, sel := range selectors {
		for _, text := range sel.rule.Selectors {
			if s, err := svgo.ParseSelector(text); err == nil {
				ids, classes := s.Names()
				for _, id := range ids {
					usedIDs[id] = true
				}
				for _, class := range classes {
					usedClasses[class] = true
				}
			}
		}
	}
	root.Descendants(func(n *svgo.Node) bool {
		for _, attr := range n.Attrs {
			for _, id := range findReferences(attr.Name, attr.Value) {
				usedIDs[id] = true
			}
		}
		return true
	})

	for sel, elems := range matched {
		ids, classes := sel.matcher.Names()
		text := sel.matcher.String()
		for _, elem := range elems {
			if len(classes) == 1 && len(ids) == 0 && text == "."+classes[0] && !usedClasses[classes[0]] {
				var kept []string
				for _, class := range strings.Fields(elem.Get("class")) {
					if class != classes[0] {
						kept = append(kept, class)
					}
				}
				if len(kept) == 0 {
					elem.Remove("class")
				} else {
					elem.Set("class", strings.Join(kept, " "))
				}
			} else if len(ids) == 1 && len(classes) == 0 && text == "#"+ids[0] && !usedIDs[ids[0]] && elem.Get("id") == ids[0] {
				elem.Remove("id")
			}
		}
	}
}

// pruneRules removes style rules without selectors and media rules without rules.
func pruneRules(rules []*svgo.CSSRule) []*svgo.CSSRule {
	kept := rules[:0]
	for _, r := range rules {
		if r.AtRule == "" && len(r.Selectors) == 0 {
			continue
		} else if r.AtRule == "@media" {
			r.Rules = pruneRules(r.Rules)
			if len(r.Rules) == 0 && len(r.Declarations) == 0 && r.Raw == "" {
				continue
			}
		}
		kept = append(kept, r)
	}
	return kept
}
