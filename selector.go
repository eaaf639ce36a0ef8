package svgo

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/strconv"
)

// Specificity is the (ids, classes, types) weight of a selector.
type Specificity [3]int

// Compare returns -1, 0 or 1 when s is lower, equal or higher than t.
func (s Specificity) Compare(t Specificity) int {
	for i := 0; i < 3; i++ {
		if s[i] < t[i] {
			return -1
		} else if t[i] < s[i] {
			return 1
		}
	}
	return 0
}

type combinator int

const (
	noCombinator combinator = iota
	descendantCombinator
	childCombinator
	nextSiblingCombinator
	subsequentSiblingCombinator
)

type attrOperator int

const (
	attrExists attrOperator = iota
	attrEquals
	attrIncludes
	attrDashMatch
	attrPrefix
	attrSuffix
	attrSubstring
)

type attrSelector struct {
	name     string
	operator attrOperator
	value    string
}

type pseudoClass struct {
	name     string
	arg      string    // argument of functional pseudo-classes
	selector *Selector // argument of :not, :is and :where
}

type compoundSelector struct {
	tag           string // empty or * for any element
	ids           []string
	classes       []string
	attrs         []attrSelector
	pseudoClasses []pseudoClass
	pseudoElement string
	combinator    combinator // combinator to the next compound selector
}

type complexSelector struct {
	compounds []*compoundSelector
}

// Selector is a parsed selector list.
type Selector struct {
	complexes []*complexSelector
}

type selectorParser struct {
	tokens []css.Token
	pos    int
}

func (p *selectorParser) current() css.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return css.Token{TokenType: css.ErrorToken}
}

func (p *selectorParser) peek(offset int) css.Token {
	if pos := p.pos + offset; pos < len(p.tokens) {
		return p.tokens[pos]
	}
	return css.Token{TokenType: css.ErrorToken}
}

func (p *selectorParser) consume() css.Token {
	t := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *selectorParser) isDelim(c byte) bool {
	t := p.current()
	return t.TokenType == css.DelimToken && len(t.Data) == 1 && t.Data[0] == c
}

func (p *selectorParser) skipWhitespace() bool {
	skipped := false
	for p.current().TokenType == css.WhitespaceToken {
		p.consume()
		skipped = true
	}
	return skipped
}

func tokenizeSelector(s string) ([]css.Token, error) {
	tokens := []css.Token{}
	l := css.NewLexer(parse.NewInputString(s))
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if l.Err() != io.EOF {
				return nil, l.Err()
			}
			return tokens, nil
		} else if tt == css.CommentToken {
			continue
		}
		tokens = append(tokens, css.Token{TokenType: tt, Data: parse.Copy(data)})
	}
}

// ParseSelector parses a selector list.
func ParseSelector(s string) (*Selector, error) {
	tokens, err := tokenizeSelector(s)
	if err != nil {
		return nil, err
	}
	p := &selectorParser{tokens: tokens}
	sel, err := p.parseSelectorList()
	if err != nil {
		return nil, err
	} else if p.pos < len(p.tokens) {
		return nil, fmt.Errorf("unexpected %s in selector", p.current().Data)
	}
	return sel, nil
}

func (p *selectorParser) parseSelectorList() (*Selector, error) {
	sel := &Selector{}
	for {
		p.skipWhitespace()
		complex, err := p.parseComplexSelector()
		if err != nil {
			return nil, err
		}
		sel.complexes = append(sel.complexes, complex)
		p.skipWhitespace()
		if p.current().TokenType != css.CommaToken {
			return sel, nil
		}
		p.consume()
	}
}

func (p *selectorParser) parseComplexSelector() (*complexSelector, error) {
	complex := &complexSelector{}
	for {
		compound, err := p.parseCompoundSelector()
		if err != nil {
			return nil, err
		} else if compound == nil {
			if len(complex.compounds) == 0 {
				return nil, fmt.Errorf("expected selector")
			}
			// dangling combinator
			last := complex.compounds[len(complex.compounds)-1]
			if last.combinator != descendantCombinator {
				return nil, fmt.Errorf("expected selector after combinator")
			}
			last.combinator = noCombinator
			return complex, nil
		}
		complex.compounds = append(complex.compounds, compound)

		hadWhitespace := p.skipWhitespace()
		switch {
		case p.isDelim('>'):
			p.consume()
			compound.combinator = childCombinator
		case p.isDelim('+'):
			p.consume()
			compound.combinator = nextSiblingCombinator
		case p.isDelim('~'):
			p.consume()
			compound.combinator = subsequentSiblingCombinator
		case p.current().TokenType == css.ErrorToken, p.current().TokenType == css.CommaToken, p.current().TokenType == css.RightParenthesisToken:
			return complex, nil
		case hadWhitespace:
			compound.combinator = descendantCombinator
		default:
			return complex, nil
		}
		p.skipWhitespace()
	}
}

func (p *selectorParser) parseCompoundSelector() (*compoundSelector, error) {
	compound := &compoundSelector{}
	hasContent := false
	if t := p.current(); t.TokenType == css.IdentToken {
		p.consume()
		compound.tag = string(t.Data)
		hasContent = true
	} else if p.isDelim('*') {
		p.consume()
		compound.tag = "*"
		hasContent = true
	}
	if hasContent && p.isDelim('|') {
		// namespaced type selectors match on the local name
		p.consume()
		if t := p.consume(); t.TokenType == css.IdentToken {
			compound.tag = string(t.Data)
		} else if t.TokenType == css.DelimToken && t.Data[0] == '*' {
			compound.tag = "*"
		} else {
			return nil, fmt.Errorf("expected element name after namespace")
		}
	}

	for {
		t := p.current()
		switch t.TokenType {
		case css.HashToken:
			p.consume()
			compound.ids = append(compound.ids, string(t.Data[1:]))
		case css.DelimToken:
			if t.Data[0] != '.' {
				return compound.orNil(hasContent), nil
			}
			p.consume()
			name := p.consume()
			if name.TokenType != css.IdentToken {
				return nil, fmt.Errorf("expected class name")
			}
			compound.classes = append(compound.classes, string(name.Data))
		case css.LeftBracketToken:
			attr, err := p.parseAttrSelector()
			if err != nil {
				return nil, err
			}
			compound.attrs = append(compound.attrs, attr)
		case css.ColonToken:
			p.consume()
			if p.current().TokenType == css.ColonToken {
				p.consume()
				name := p.consume()
				if name.TokenType != css.IdentToken {
					return nil, fmt.Errorf("expected pseudo-element name")
				}
				compound.pseudoElement = string(name.Data)
			} else {
				pc, err := p.parsePseudoClass()
				if err != nil {
					return nil, err
				}
				compound.pseudoClasses = append(compound.pseudoClasses, pc)
			}
		default:
			return compound.orNil(hasContent), nil
		}
		hasContent = true
	}
}

func (c *compoundSelector) orNil(hasContent bool) *compoundSelector {
	if !hasContent {
		return nil
	}
	return c
}

func (p *selectorParser) parseAttrSelector() (attrSelector, error) {
	p.consume() // [
	p.skipWhitespace()
	attr := attrSelector{}
	name := p.consume()
	if name.TokenType != css.IdentToken {
		return attr, fmt.Errorf("expected attribute name")
	}
	attr.name = string(name.Data)
	if p.isDelim('|') && p.peek(1).TokenType == css.IdentToken {
		// ns|name matches the prefixed attribute ns:name
		p.consume()
		attr.name += ":" + string(p.consume().Data)
	}
	p.skipWhitespace()

	switch t := p.consume(); t.TokenType {
	case css.RightBracketToken:
		attr.operator = attrExists
		return attr, nil
	case css.IncludeMatchToken:
		attr.operator = attrIncludes
	case css.DashMatchToken:
		attr.operator = attrDashMatch
	case css.PrefixMatchToken:
		attr.operator = attrPrefix
	case css.SuffixMatchToken:
		attr.operator = attrSuffix
	case css.SubstringMatchToken:
		attr.operator = attrSubstring
	case css.DelimToken:
		if t.Data[0] != '=' {
			return attr, fmt.Errorf("unexpected %s in attribute selector", t.Data)
		}
		attr.operator = attrEquals
	default:
		return attr, fmt.Errorf("unexpected %s in attribute selector", t.Data)
	}
	p.skipWhitespace()

	switch t := p.consume(); t.TokenType {
	case css.IdentToken, css.NumberToken:
		attr.value = string(t.Data)
	case css.StringToken:
		attr.value = string(t.Data[1 : len(t.Data)-1])
	default:
		return attr, fmt.Errorf("expected attribute value")
	}
	p.skipWhitespace()
	if p.consume().TokenType != css.RightBracketToken {
		return attr, fmt.Errorf("expected ] in attribute selector")
	}
	return attr, nil
}

func (p *selectorParser) parsePseudoClass() (pseudoClass, error) {
	t := p.consume()
	if t.TokenType == css.IdentToken {
		return pseudoClass{name: strings.ToLower(string(t.Data))}, nil
	} else if t.TokenType != css.FunctionToken {
		return pseudoClass{}, fmt.Errorf("expected pseudo-class name")
	}

	pc := pseudoClass{name: strings.ToLower(string(t.Data[:len(t.Data)-1]))}
	switch pc.name {
	case "not", "is", "where":
		sel, err := p.parseSelectorList()
		if err != nil {
			return pc, err
		}
		pc.selector = sel
		p.skipWhitespace()
		if p.consume().TokenType != css.RightParenthesisToken {
			return pc, fmt.Errorf("expected ) after :%s", pc.name)
		}
	default:
		sb := strings.Builder{}
		level := 1
		for {
			t := p.consume()
			if t.TokenType == css.ErrorToken {
				return pc, fmt.Errorf("expected ) after :%s", pc.name)
			} else if t.TokenType == css.FunctionToken || t.TokenType == css.LeftParenthesisToken {
				level++
			} else if t.TokenType == css.RightParenthesisToken {
				level--
				if level == 0 {
					break
				}
			}
			sb.Write(t.Data)
		}
		pc.arg = strings.TrimSpace(sb.String())
	}
	return pc, nil
}

// Specificity returns the highest specificity of the selectors in the list.
func (s *Selector) Specificity() Specificity {
	highest := Specificity{}
	for _, complex := range s.complexes {
		if spec := complex.specificity(); highest.Compare(spec) < 0 {
			highest = spec
		}
	}
	return highest
}

func (c *complexSelector) specificity() Specificity {
	spec := Specificity{}
	for _, compound := range c.compounds {
		spec[0] += len(compound.ids)
		spec[1] += len(compound.classes) + len(compound.attrs)
		for _, pc := range compound.pseudoClasses {
			switch pc.name {
			case "where":
			case "not", "is":
				inner := pc.selector.Specificity()
				spec[0] += inner[0]
				spec[1] += inner[1]
				spec[2] += inner[2]
			default:
				spec[1]++
			}
		}
		if compound.tag != "" && compound.tag != "*" {
			spec[2]++
		}
		if compound.pseudoElement != "" {
			spec[2]++
		}
	}
	return spec
}

// Split returns every selector of the list as its own selector.
func (s *Selector) Split() []*Selector {
	sels := make([]*Selector, len(s.complexes))
	for i, complex := range s.complexes {
		sels[i] = &Selector{[]*complexSelector{complex}}
	}
	return sels
}

// WithoutPseudoClasses returns the selector with all pseudo-classes removed, and whether any were removed. A compound left empty matches any element.
func (s *Selector) WithoutPseudoClasses() (*Selector, bool) {
	removed := false
	out := &Selector{}
	for _, complex := range s.complexes {
		c := &complexSelector{}
		for _, compound := range complex.compounds {
			cc := *compound
			if 0 < len(cc.pseudoClasses) {
				removed = true
				cc.pseudoClasses = nil
				if cc.tag == "" && len(cc.ids) == 0 && len(cc.classes) == 0 && len(cc.attrs) == 0 && cc.pseudoElement == "" {
					cc.tag = "*"
				}
			}
			c.compounds = append(c.compounds, &cc)
		}
		out.complexes = append(out.complexes, c)
	}
	return out, removed
}

// HasPseudoElement returns true if any compound has a pseudo-element.
func (s *Selector) HasPseudoElement() bool {
	for _, complex := range s.complexes {
		for _, compound := range complex.compounds {
			if compound.pseudoElement != "" {
				return true
			}
		}
	}
	return false
}

// Pseudos returns the pseudo-classes and pseudo-elements of the top-level compounds as written, ie. :hover or ::before.
func (s *Selector) Pseudos() []string {
	var pseudos []string
	for _, complex := range s.complexes {
		for _, compound := range complex.compounds {
			for _, pc := range compound.pseudoClasses {
				pseudos = append(pseudos, ":"+pc.name)
			}
			if compound.pseudoElement != "" {
				pseudos = append(pseudos, "::"+compound.pseudoElement)
			}
		}
	}
	return pseudos
}

// Names returns the IDs and class names used in the selector.
func (s *Selector) Names() ([]string, []string) {
	var ids, classes []string
	for _, complex := range s.complexes {
		for _, compound := range complex.compounds {
			ids = append(ids, compound.ids...)
			classes = append(classes, compound.classes...)
			for _, pc := range compound.pseudoClasses {
				if pc.selector != nil {
					innerIDs, innerClasses := pc.selector.Names()
					ids = append(ids, innerIDs...)
					classes = append(classes, innerClasses...)
				}
			}
		}
	}
	return ids, classes
}

// Rename returns a copy of the selector with its IDs and class names replaced by the given functions.
func (s *Selector) Rename(id, class func(string) string) *Selector {
	out := &Selector{}
	for _, complex := range s.complexes {
		c := &complexSelector{}
		for _, compound := range complex.compounds {
			cc := *compound
			cc.ids = make([]string, len(compound.ids))
			for i, name := range compound.ids {
				cc.ids[i] = id(name)
			}
			cc.classes = make([]string, len(compound.classes))
			for i, name := range compound.classes {
				cc.classes[i] = class(name)
			}
			cc.pseudoClasses = make([]pseudoClass, len(compound.pseudoClasses))
			for i, pc := range compound.pseudoClasses {
				if pc.selector != nil {
					pc.selector = pc.selector.Rename(id, class)
				}
				cc.pseudoClasses[i] = pc
			}
			c.compounds = append(c.compounds, &cc)
		}
		out.complexes = append(out.complexes, c)
	}
	return out
}

func (s *Selector) String() string {
	sb := strings.Builder{}
	for i, complex := range s.complexes {
		if i != 0 {
			sb.WriteByte(',')
		}
		for _, compound := range complex.compounds {
			compound.writeString(&sb)
			switch compound.combinator {
			case descendantCombinator:
				sb.WriteByte(' ')
			case childCombinator:
				sb.WriteByte('>')
			case nextSiblingCombinator:
				sb.WriteByte('+')
			case subsequentSiblingCombinator:
				sb.WriteByte('~')
			}
		}
	}
	return sb.String()
}

func (c *compoundSelector) writeString(sb *strings.Builder) {
	if c.tag != "*" || len(c.ids)+len(c.classes)+len(c.attrs)+len(c.pseudoClasses) == 0 && c.pseudoElement == "" {
		sb.WriteString(c.tag)
	}
	for _, id := range c.ids {
		sb.WriteString("#" + id)
	}
	for _, class := range c.classes {
		sb.WriteString("." + class)
	}
	for _, attr := range c.attrs {
		sb.WriteString("[" + strings.Replace(attr.name, ":", "|", 1))
		switch attr.operator {
		case attrEquals:
			sb.WriteString("=")
		case attrIncludes:
			sb.WriteString("~=")
		case attrDashMatch:
			sb.WriteString("|=")
		case attrPrefix:
			sb.WriteString("^=")
		case attrSuffix:
			sb.WriteString("$=")
		case attrSubstring:
			sb.WriteString("*=")
		}
		if attr.operator != attrExists {
			sb.WriteString("\"" + attr.value + "\"")
		}
		sb.WriteString("]")
	}
	for _, pc := range c.pseudoClasses {
		sb.WriteString(":" + pc.name)
		if pc.selector != nil {
			sb.WriteString("(" + pc.selector.String() + ")")
		} else if pc.arg != "" {
			sb.WriteString("(" + pc.arg + ")")
		}
	}
	if c.pseudoElement != "" {
		sb.WriteString("::" + c.pseudoElement)
	}
}

// Match returns true if the element matches any selector of the list.
func (s *Selector) Match(n *Node) bool {
	if n.Type != ElementNode {
		return false
	}
	for _, complex := range s.complexes {
		if complex.match(n) {
			return true
		}
	}
	return false
}

func parentElement(n *Node) *Node {
	if p := n.Parent(); p != nil && p.Type == ElementNode {
		return p
	}
	return nil
}

func previousElement(n *Node) *Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	var prev *Node
	for _, c := range p.children {
		if c == n {
			return prev
		} else if c.Type == ElementNode {
			prev = c
		}
	}
	return nil
}

func (c *complexSelector) match(n *Node) bool {
	return c.matchFrom(len(c.compounds)-1, n)
}

// matchFrom matches compound i against n and backtracks over the combinators to the left.
func (c *complexSelector) matchFrom(i int, n *Node) bool {
	if !c.compounds[i].match(n) {
		return false
	} else if i == 0 {
		return true
	}
	switch c.compounds[i-1].combinator {
	case descendantCombinator:
		for a := parentElement(n); a != nil; a = parentElement(a) {
			if c.matchFrom(i-1, a) {
				return true
			}
		}
	case childCombinator:
		if a := parentElement(n); a != nil {
			return c.matchFrom(i-1, a)
		}
	case nextSiblingCombinator:
		if prev := previousElement(n); prev != nil {
			return c.matchFrom(i-1, prev)
		}
	case subsequentSiblingCombinator:
		for prev := previousElement(n); prev != nil; prev = previousElement(prev) {
			if c.matchFrom(i-1, prev) {
				return true
			}
		}
	}
	return false
}

func (c *compoundSelector) match(n *Node) bool {
	if c.pseudoElement != "" {
		return false
	} else if c.tag != "" && c.tag != "*" && c.tag != n.Name {
		return false
	}
	for _, id := range c.ids {
		if v, ok := n.Attr("id"); !ok || v != id {
			return false
		}
	}
	classes := strings.Fields(n.Get("class"))
	for _, class := range c.classes {
		if !containsString(classes, class) {
			return false
		}
	}
	for _, attr := range c.attrs {
		if !attr.match(n) {
			return false
		}
	}
	for _, pc := range c.pseudoClasses {
		if !pc.match(n) {
			return false
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func (a attrSelector) match(n *Node) bool {
	v, ok := n.Attr(a.name)
	if !ok {
		return false
	}
	switch a.operator {
	case attrExists:
		return true
	case attrEquals:
		return v == a.value
	case attrIncludes:
		return containsString(strings.Fields(v), a.value)
	case attrDashMatch:
		return v == a.value || strings.HasPrefix(v, a.value+"-")
	case attrPrefix:
		return a.value != "" && strings.HasPrefix(v, a.value)
	case attrSuffix:
		return a.value != "" && strings.HasSuffix(v, a.value)
	case attrSubstring:
		return a.value != "" && strings.Contains(v, a.value)
	}
	return false
}

// elementPosition returns the 1-based position of n among its element siblings, counting from the end when fromLast is set and only counting siblings with the same name when ofType is set.
func elementPosition(n *Node, fromLast, ofType bool) int {
	p := n.Parent()
	if p == nil {
		return 1
	}
	siblings := []*Node{}
	for _, c := range p.children {
		if c.Type == ElementNode && (!ofType || c.Name == n.Name) {
			siblings = append(siblings, c)
		}
	}
	for i, c := range siblings {
		if c == n {
			if fromLast {
				return len(siblings) - i
			}
			return i + 1
		}
	}
	return 1
}

func (pc pseudoClass) match(n *Node) bool {
	switch pc.name {
	case "not":
		return !pc.selector.Match(n)
	case "is", "where":
		return pc.selector.Match(n)
	case "root":
		p := n.Parent()
		return p == nil || p.Type == RootNode
	case "empty":
		for _, c := range n.children {
			if c.Type == ElementNode || (c.Type == TextNode || c.Type == CDataNode) && c.Value != "" {
				return false
			}
		}
		return true
	case "first-child":
		return elementPosition(n, false, false) == 1
	case "last-child":
		return elementPosition(n, true, false) == 1
	case "only-child":
		return elementPosition(n, false, false) == 1 && elementPosition(n, true, false) == 1
	case "first-of-type":
		return elementPosition(n, false, true) == 1
	case "last-of-type":
		return elementPosition(n, true, true) == 1
	case "only-of-type":
		return elementPosition(n, false, true) == 1 && elementPosition(n, true, true) == 1
	case "nth-child", "nth-last-child", "nth-of-type", "nth-last-of-type":
		a, b, ok := parseAnPlusB(pc.arg)
		if !ok {
			return false
		}
		pos := elementPosition(n, strings.Contains(pc.name, "last"), strings.HasSuffix(pc.name, "of-type"))
		if a == 0 {
			return pos == b
		}
		diff := pos - b
		return diff%a == 0 && 0 <= diff/a
	}
	// state dependent pseudo-classes never match statically
	return false
}

// parseAnPlusB parses the An+B notation of :nth-child and friends.
func parseAnPlusB(s string) (int, int, bool) {
	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if s == "odd" {
		return 2, 1, true
	} else if s == "even" {
		return 2, 0, true
	}

	parseInt := func(s string) (int, bool) {
		i, n := strconv.ParseInt([]byte(s))
		return int(i), n == len(s) && n != 0
	}
	nIdx := strings.IndexByte(s, 'n')
	if nIdx == -1 {
		b, ok := parseInt(s)
		return 0, b, ok
	}

	a := 1
	switch as := s[:nIdx]; as {
	case "", "+":
	case "-":
		a = -1
	default:
		var ok bool
		if a, ok = parseInt(as); !ok {
			return 0, 0, false
		}
	}
	b := 0
	if bs := s[nIdx+1:]; bs != "" {
		var ok bool
		if b, ok = parseInt(bs); !ok {
			return 0, 0, false
		}
	}
	return a, b, true
}

// Matches returns true if the element matches the selector. Invalid selectors match nothing.
func Matches(n *Node, selector string) bool {
	sel, err := ParseSelector(selector)
	if err != nil {
		return false
	}
	return sel.Match(n)
}

// QuerySelectorAll returns all descendant elements of n matching the selector in document order. Invalid selectors match nothing.
func QuerySelectorAll(n *Node, selector string) []*Node {
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil
	}
	return sel.QueryAll(n)
}

// QueryAll returns all descendant elements of n matching the selector in document order.
func (s *Selector) QueryAll(n *Node) []*Node {
	var matches []*Node
	n.Descendants(func(c *Node) bool {
		if s.Match(c) {
			matches = append(matches, c)
		}
		return true
	})
	return matches
}

// QuerySelector returns the first descendant element of n matching the selector, or nil.
func QuerySelector(n *Node, selector string) *Node {
	if matches := QuerySelectorAll(n, selector); 0 < len(matches) {
		return matches[0]
	}
	return nil
}
