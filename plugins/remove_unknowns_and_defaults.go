package plugins

import (
	"regexp"
	"strings"

	"github.com/tdewolff/svgo"
)

var standaloneRegexp = regexp.MustCompile(`\s*standalone\s*=\s*["']no["']`)

// RemoveUnknownsAndDefaults removes unknown elements and attributes, attributes set to their default value and attributes equal to the value inherited from the parent.
var RemoveUnknownsAndDefaults = &svgo.Plugin{
	Name:        "removeUnknownsAndDefaults",
	Description: "removes unknown elements content and attributes, removes attrs with default values",
	Fn:          removeUnknownsAndDefaults,
}

func removeUnknownsAndDefaults(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	unknownContent := params.Bool("unknownContent", true)
	unknownAttrs := params.Bool("unknownAttrs", true)
	defaultAttrs := params.Bool("defaultAttrs", true)
	defaultMarkupDeclarations := params.Bool("defaultMarkupDeclarations", true)
	uselessOverrides := params.Bool("uselessOverrides", true)
	keepDataAttrs := params.Bool("keepDataAttrs", true)
	keepAriaAttrs := params.Bool("keepAriaAttrs", true)
	keepRoleAttr := params.Bool("keepRoleAttr", false)

	stylesheet := svgo.CollectStylesheet(root)
	return &svgo.Visitor{
		Instruction: svgo.Hooks{
			Enter: func(n *svgo.Node) svgo.Action {
				if defaultMarkupDeclarations {
					n.Value = standaloneRegexp.ReplaceAllString(n.Value, "")
				}
				return svgo.Continue
			},
		},
		Element: svgo.Hooks{
			Enter: func(n *svgo.Node) svgo.Action {
				if strings.Contains(n.Name, ":") {
					return svgo.Continue
				} else if n.Name == "foreignObject" {
					return svgo.SkipChildren
				}

				parent := n.Parent()
				if unknownContent && parent != nil && parent.Type == svgo.ElementNode {
					if config, ok := svgo.Elems[parent.Name]; ok && 0 < len(config.ContentGroups)+len(config.Content) {
						if !config.AllowsChild(n.Name) {
							n.Detach()
							return svgo.SkipChildren
						}
					} else if _, ok := svgo.Elems[n.Name]; !ok {
						n.Detach()
						return svgo.SkipChildren
					}
				}

				config, ok := svgo.Elems[n.Name]
				if !ok {
					return svgo.Continue
				}
				var parentStyle svgo.ComputedStyles
				if parent != nil && parent.Type == svgo.ElementNode {
					parentStyle = svgo.ComputeStyle(stylesheet, parent)
				}
				_, hasID := n.Attr("id")
				n.RemoveFunc(func(attr svgo.Attr) bool {
					name := attr.Name
					if name == "xmlns" || strings.HasPrefix(name, "xmlns:") {
						return false
					} else if keepDataAttrs && strings.HasPrefix(name, "data-") {
						return false
					} else if keepAriaAttrs && strings.HasPrefix(name, "aria-") {
						return false
					} else if keepRoleAttr && name == "role" {
						return false
					} else if stylesheet.UsesAttrSelector(name) {
						return false
					}
					if i := strings.IndexByte(name, ':'); i != -1 {
						if prefix := name[:i]; prefix != "xml" && prefix != "xlink" {
							return false
						}
					}

					if unknownAttrs && !config.AllowsAttr(name) {
						return true
					}
					if defaultAttrs && !hasID {
						if def, ok := config.Default(name); ok && def == attr.Value {
							if _, inherited := parentStyle[name]; !inherited {
								return true
							}
						}
					}
					if uselessOverrides && !hasID && !svgo.PresentationNonInheritableGroupAttrs[name] {
						if v, ok := parentStyle[name]; ok && v.Type == svgo.StaticStyle && v.Value == attr.Value {
							return true
						}
					}
					return false
				})
				return svgo.Continue
			},
		},
	}
}
