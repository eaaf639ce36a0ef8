package svgo

import (
	"sort"
	"strings"
)

// StyleType tells whether a computed value is known statically.
type StyleType int

// StyleType values.
const (
	StaticStyle StyleType = iota
	DynamicStyle
)

// ComputedValue is the computed value of a property. Dynamic values have no value.
type ComputedValue struct {
	Type      StyleType
	Value     string
	Inherited bool
}

// ComputedStyles maps property names to their computed value.
type ComputedStyles map[string]ComputedValue

// IsStatic returns true if the property is set to a static value.
func (s ComputedStyles) IsStatic(name string) bool {
	v, ok := s[name]
	return ok && v.Type == StaticStyle
}

// Value returns the static value of the property.
func (s ComputedStyles) Value(name string) (string, bool) {
	v, ok := s[name]
	if !ok || v.Type != StaticStyle {
		return "", false
	}
	return v.Value, true
}

// StyleRule is a single selector of a stylesheet rule with its declarations.
type StyleRule struct {
	Specificity  Specificity
	Selector     string // selector used for matching, pseudo-classes are removed
	Declarations []Declaration
	Dynamic      bool

	matcher *Selector
}

// Match returns true if the rule's selector matches the element.
func (r *StyleRule) Match(n *Node) bool {
	return r.matcher != nil && r.matcher.Match(n)
}

// Stylesheet are the rules of all style elements of a document, sorted by ascending specificity, and a lookup of the parent of each element.
type Stylesheet struct {
	Rules   []StyleRule
	Parents map[*Node]*Node
	Errors  []error // parse errors of style elements and selectors
}

// IsStyleElement returns true if the node is a style element containing CSS.
func IsStyleElement(n *Node) bool {
	if !n.IsElement("style") {
		return false
	}
	t, ok := n.Attr("type")
	return !ok || t == "" || t == "text/css"
}

// CollectStylesheet collects the style rules of all style elements of the document. Rules with pseudo-classes, inside at-rules or inside style elements with a media other than all are dynamic. Keyframes are ignored.
func CollectStylesheet(root *Node) *Stylesheet {
	ss := &Stylesheet{
		Parents: map[*Node]*Node{},
	}
	var walk func(*Node)
	walk = func(n *Node) {
		for _, c := range n.children {
			if c.Type != ElementNode {
				continue
			}
			ss.Parents[c] = n
			if IsStyleElement(c) {
				media, hasMedia := c.Attr("media")
				dynamic := hasMedia && media != "all"
				rules, err := ParseCSS(c.TextContent())
				if err != nil {
					ss.Errors = append(ss.Errors, err)
				}
				ss.addRules(rules, dynamic)
			}
			walk(c)
		}
	}
	walk(root)

	sort.SliceStable(ss.Rules, func(i, j int) bool {
		return ss.Rules[i].Specificity.Compare(ss.Rules[j].Specificity) < 0
	})
	return ss
}

func (ss *Stylesheet) addRules(rules []*CSSRule, dynamic bool) {
	for _, r := range rules {
		if r.AtRule != "" {
			if !strings.HasSuffix(r.AtRule, "keyframes") {
				ss.addRules(r.Rules, true)
			}
			continue
		}
		for _, text := range r.Selectors {
			sel, err := ParseSelector(text)
			if err != nil {
				ss.Errors = append(ss.Errors, err)
				continue
			}
			for _, single := range sel.Split() {
				stripped, hasPseudoClasses := single.WithoutPseudoClasses()
				ss.Rules = append(ss.Rules, StyleRule{
					Specificity:  single.Specificity(),
					Selector:     stripped.String(),
					Declarations: r.Declarations,
					Dynamic:      dynamic || hasPseudoClasses,
					matcher:      stripped,
				})
			}
		}
	}
}

// UsesAttrSelector returns true if any rule selects on the given attribute.
func (ss *Stylesheet) UsesAttrSelector(name string) bool {
	for _, r := range ss.Rules {
		if r.matcher != nil && r.matcher.hasAttr(name) {
			return true
		}
	}
	return false
}

func (s *Selector) hasAttr(name string) bool {
	for _, complex := range s.complexes {
		for _, compound := range complex.compounds {
			for _, attr := range compound.attrs {
				if attr.name == name {
					return true
				}
			}
			if name == "id" && 0 < len(compound.ids) || name == "class" && 0 < len(compound.classes) {
				return true
			}
			for _, pc := range compound.pseudoClasses {
				if pc.selector != nil && pc.selector.hasAttr(name) {
					return true
				}
			}
		}
	}
	return false
}

// ComputeOwnStyle returns the style of an element without inheritance. Presentation attributes come first, then matching rules in order of specificity and finally the style attribute. Important declarations override normal ones. Properties set by a dynamic rule stay dynamic.
func ComputeOwnStyle(ss *Stylesheet, n *Node) ComputedStyles {
	styles := ComputedStyles{}
	important := map[string]bool{}
	for _, attr := range n.Attrs {
		if AttrsGroups["presentation"][attr.Name] {
			styles[attr.Name] = ComputedValue{Type: StaticStyle, Value: attr.Value}
			important[attr.Name] = false
		}
	}

	apply := func(decl Declaration) {
		cur, ok := styles[decl.Name]
		if ok && cur.Type == DynamicStyle {
			return
		} else if !ok || decl.Important || !important[decl.Name] {
			styles[decl.Name] = ComputedValue{Type: StaticStyle, Value: decl.Value}
			important[decl.Name] = decl.Important
		}
	}
	if ss != nil {
		for i := range ss.Rules {
			r := &ss.Rules[i]
			if !r.Match(n) {
				continue
			}
			for _, decl := range r.Declarations {
				if r.Dynamic {
					styles[decl.Name] = ComputedValue{Type: DynamicStyle}
				} else {
					apply(decl)
				}
			}
		}
	}
	if style, ok := n.Attr("style"); ok {
		for _, decl := range ParseDeclarations(style) {
			apply(decl)
		}
	}
	return styles
}

func (ss *Stylesheet) parent(n *Node) *Node {
	if ss != nil && ss.Parents != nil {
		if p, ok := ss.Parents[n]; ok {
			return p
		}
	}
	return n.Parent()
}

// ComputeStyle returns the style of an element including the inherited properties of its ancestors. Properties set to inherit take the value of the closest ancestor that sets them, and are removed when no ancestor does.
func ComputeStyle(ss *Stylesheet, n *Node) ComputedStyles {
	styles := ComputeOwnStyle(ss, n)
	pending := map[string]bool{}
	for name, v := range styles {
		if v.Type == StaticStyle && v.Value == "inherit" {
			pending[name] = true
		}
	}

	for p := ss.parent(n); p != nil && p.Type == ElementNode; p = ss.parent(p) {
		own := ComputeOwnStyle(ss, p)
		for name, v := range own {
			if pending[name] {
				if v.Type == StaticStyle && v.Value == "inherit" {
					continue
				}
				v.Inherited = true
				styles[name] = v
				delete(pending, name)
			} else if _, ok := styles[name]; !ok && InheritableAttrs[name] && !PresentationNonInheritableGroupAttrs[name] {
				if v.Type == StaticStyle && v.Value == "inherit" {
					pending[name] = true
				}
				v.Inherited = true
				styles[name] = v
			}
		}
	}
	for name := range pending {
		delete(styles, name)
	}
	return styles
}

// IncludesURLReference returns true if the value references another element with url().
func IncludesURLReference(s string) bool {
	return strings.Contains(s, "url(")
}
