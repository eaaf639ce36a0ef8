package svgo

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is a CSS property declaration.
type Declaration struct {
	Name      string
	Value     string
	Important bool
}

// CSSRule is a rule of a stylesheet. Style rules have selectors and declarations. At-rules have a name, a prelude and either nested rules, declarations or the raw content of their block.
type CSSRule struct {
	AtRule       string // at-keyword such as @media, empty for style rules
	Prelude      string
	Block        bool
	Selectors    []string
	Declarations []Declaration
	Rules        []*CSSRule
	Raw          string
}

func tokensString(tokens []css.Token) string {
	sb := strings.Builder{}
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	return sb.String()
}

// declaration converts the parser values of a declaration, a trailing !important is stripped.
func declaration(name []byte, values []css.Token) Declaration {
	important := false
	n := len(values)
	for 0 < n && values[n-1].TokenType == css.WhitespaceToken {
		n--
	}
	if 2 <= n && values[n-1].TokenType == css.IdentToken && strings.EqualFold(string(values[n-1].Data), "important") && values[n-2].TokenType == css.DelimToken && values[n-2].Data[0] == '!' {
		important = true
		n -= 2
	}
	return Declaration{
		Name:      string(name),
		Value:     strings.TrimSpace(tokensString(values[:n])),
		Important: important,
	}
}

// splitSelectors splits a selector list at the top-level commas.
func splitSelectors(tokens []css.Token) []string {
	selectors := []string{}
	level := 0
	sb := strings.Builder{}
	for _, t := range tokens {
		switch t.TokenType {
		case css.LeftParenthesisToken, css.LeftBracketToken, css.FunctionToken:
			level++
		case css.RightParenthesisToken, css.RightBracketToken:
			level--
		case css.CommaToken:
			if level == 0 {
				if s := strings.TrimSpace(sb.String()); s != "" {
					selectors = append(selectors, s)
				}
				sb.Reset()
				continue
			}
		}
		sb.Write(t.Data)
	}
	if s := strings.TrimSpace(sb.String()); s != "" {
		selectors = append(selectors, s)
	}
	return selectors
}

// ParseCSS parses a stylesheet. The parser recovers from errors, the returned rules are all rules that could be parsed and the error is the first parse error encountered.
func ParseCSS(s string) ([]*CSSRule, error) {
	var first error
	p := css.NewParser(parse.NewInputString(s), false)
	rules := []*CSSRule{}
	stack := []*CSSRule{}
	add := func(r *CSSRule) {
		if len(stack) == 0 {
			rules = append(rules, r)
		} else {
			parent := stack[len(stack)-1]
			parent.Rules = append(parent.Rules, r)
		}
	}
	var cur *CSSRule               // current style rule
	var selectorTokens []css.Token // selectors before the last comma of a selector list
	raw := strings.Builder{}
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if !p.HasParseError() {
				return rules, first
			} else if first == nil {
				first = p.Err()
			}
			selectorTokens = selectorTokens[:0]
		case css.QualifiedRuleGrammar:
			for _, t := range p.Values() {
				selectorTokens = append(selectorTokens, css.Token{TokenType: t.TokenType, Data: parse.Copy(t.Data)})
			}
			selectorTokens = append(selectorTokens, css.Token{TokenType: css.CommaToken, Data: []byte{','}})
		case css.AtRuleGrammar:
			add(&CSSRule{
				AtRule:  string(data),
				Prelude: strings.TrimSpace(tokensString(p.Values())),
			})
		case css.BeginAtRuleGrammar:
			r := &CSSRule{
				AtRule:  string(data),
				Prelude: strings.TrimSpace(tokensString(p.Values())),
				Block:   true,
			}
			add(r)
			stack = append(stack, r)
			raw.Reset()
		case css.EndAtRuleGrammar:
			if 0 < len(stack) {
				r := stack[len(stack)-1]
				if len(r.Rules) == 0 && len(r.Declarations) == 0 {
					r.Raw = strings.TrimSpace(raw.String())
				}
				stack = stack[:len(stack)-1]
			}
			raw.Reset()
		case css.TokenGrammar:
			if 0 < len(stack) {
				raw.Write(data)
			}
		case css.BeginRulesetGrammar:
			cur = &CSSRule{Selectors: splitSelectors(append(selectorTokens, p.Values()...))}
			selectorTokens = selectorTokens[:0]
			add(cur)
		case css.EndRulesetGrammar:
			cur = nil
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			decl := declaration(data, p.Values())
			if cur != nil {
				cur.Declarations = append(cur.Declarations, decl)
			} else if 0 < len(stack) {
				r := stack[len(stack)-1]
				r.Declarations = append(r.Declarations, decl)
			}
		}
	}
}

// ParseDeclarations parses the contents of a style attribute. Declarations that fail to parse are skipped.
func ParseDeclarations(s string) []Declaration {
	decls := []Declaration{}
	p := css.NewParser(parse.NewInputString(s), true)
	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			if p.HasParseError() {
				continue
			}
			return decls
		} else if gt == css.DeclarationGrammar || gt == css.CustomPropertyGrammar {
			if decl := declaration(data, p.Values()); decl.Value != "" {
				decls = append(decls, decl)
			}
		}
	}
}

// StringifyDeclarations serializes declarations for a style attribute.
func StringifyDeclarations(decls []Declaration) string {
	sb := strings.Builder{}
	for i, decl := range decls {
		if i != 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(decl.Name)
		sb.WriteByte(':')
		sb.WriteString(decl.Value)
		if decl.Important {
			sb.WriteString("!important")
		}
	}
	return sb.String()
}

// StringifyCSS serializes a stylesheet.
func StringifyCSS(rules []*CSSRule) string {
	sb := strings.Builder{}
	writeCSSRules(&sb, rules)
	return sb.String()
}

func writeCSSRules(sb *strings.Builder, rules []*CSSRule) {
	for _, r := range rules {
		if r.AtRule == "" {
			if len(r.Selectors) == 0 {
				continue
			}
			sb.WriteString(strings.Join(r.Selectors, ","))
			sb.WriteByte('{')
			sb.WriteString(StringifyDeclarations(r.Declarations))
			sb.WriteByte('}')
			continue
		}

		sb.WriteString(r.AtRule)
		if r.Prelude != "" {
			sb.WriteByte(' ')
			sb.WriteString(r.Prelude)
		}
		if !r.Block {
			sb.WriteByte(';')
			continue
		}
		sb.WriteByte('{')
		if 0 < len(r.Rules) {
			writeCSSRules(sb, r.Rules)
		} else if 0 < len(r.Declarations) {
			sb.WriteString(StringifyDeclarations(r.Declarations))
		} else {
			sb.WriteString(r.Raw)
		}
		sb.WriteByte('}')
	}
}
