package svgo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"golang.org/x/net/html"
)

// textElems keep their whitespace and are serialized without indentation.
var textElems = map[string]bool{
	"altGlyph":     true,
	"altGlyphDef":  true,
	"altGlyphItem": true,
	"glyph":        true,
	"glyphRef":     true,
	"text":         true,
	"textPath":     true,
	"tref":         true,
	"tspan":        true,
	"pre":          true,
	"title":        true,
}

var entityDeclRegexp = regexp.MustCompile(`<!ENTITY\s+(\S+)\s+(?:'([^']+)'|"([^"]+)")\s*>`)

// ParseError is a fatal error in the markup with its position in the source.
type ParseError struct {
	Message string
	Line    int // 1-based
	Column  int // 1-based
	Path    string
	Source  string
}

func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d: %s", path, e.Line, e.Column, e.Message)
}

// Context returns the error followed by the surrounding lines of the source, the offending line is marked and a caret points at the column.
func (e *ParseError) Context() string {
	lines := strings.Split(strings.ReplaceAll(e.Source, "\r\n", "\n"), "\n")
	start := max(e.Line-3, 0)
	end := min(e.Line+2, len(lines))
	width := len(strconv.Itoa(end))

	sb := strings.Builder{}
	sb.WriteString(e.Error())
	sb.WriteString("\n\n")
	for i := start; i < end; i++ {
		number := strconv.Itoa(i + 1)
		gutter := " " + strings.Repeat(" ", width-len(number)) + number + " | "
		if i+1 == e.Line {
			sb.WriteString(">" + gutter + lines[i] + "\n")
			spacing := []byte(strings.Repeat(" ", len(gutter)-2) + "|")
			for j, c := range []byte(lines[i]) {
				if e.Column-1 <= j {
					break
				} else if c == '\t' {
					spacing = append(spacing, '\t')
				} else {
					spacing = append(spacing, ' ')
				}
			}
			sb.WriteString("  " + string(spacing[1:]) + " ^\n")
		} else {
			sb.WriteString(" " + gutter + lines[i] + "\n")
		}
	}
	return sb.String()
}

type parser struct {
	path     string
	data     []byte
	entities map[string]string
}

func (p *parser) errorf(offset int, format string, args ...any) error {
	line, col, _ := parse.Position(bytes.NewReader(p.data), offset)
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  col,
		Path:    p.path,
		Source:  string(p.data),
	}
}

func (p *parser) decode(s string) string {
	if strings.IndexByte(s, '&') == -1 {
		return s
	}
	for name, value := range p.entities {
		s = strings.ReplaceAll(s, "&"+name+";", value)
	}
	return html.UnescapeString(s)
}

// Parse parses an SVG document into a tree. Markup errors return a *ParseError, an unexpected end of the input implicitly closes all open elements.
func Parse(data []byte, path string) (*Node, error) {
	p := &parser{
		path:     path,
		data:     data,
		entities: map[string]string{},
	}

	z := parse.NewInputString(string(data))
	l := xml.NewLexer(z)

	root := NewRoot()
	stack := []*Node{root}
	var tag, pi *Node
	piValue := []string{}
	for {
		offset := z.Offset()
		tt, data := l.Next()
		cur := stack[len(stack)-1]
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != io.EOF {
				var perr *parse.Error
				if errors.As(err, &perr) {
					return nil, &ParseError{
						Message: perr.Message,
						Line:    perr.Line,
						Column:  perr.Column,
						Path:    path,
						Source:  string(p.data),
					}
				}
				return nil, p.errorf(offset, "%v", err)
			}
			return root, nil
		case xml.DOCTYPEToken:
			value := string(data)
			value = strings.TrimPrefix(value, "<!DOCTYPE")
			value = strings.TrimSuffix(value, ">")
			for _, m := range entityDeclRegexp.FindAllStringSubmatch(value, -1) {
				if m[2] != "" {
					p.entities[m[1]] = m[2]
				} else {
					p.entities[m[1]] = m[3]
				}
			}
			cur.AppendChild(&Node{Type: DoctypeNode, Name: "svg", Value: value})
		case xml.CommentToken:
			value := strings.TrimPrefix(string(data), "<!--")
			value = strings.TrimSuffix(value, "-->")
			cur.AppendChild(&Node{Type: CommentNode, Value: strings.TrimSpace(value)})
		case xml.CDATAToken:
			value := strings.TrimPrefix(string(data), "<![CDATA[")
			value = strings.TrimSuffix(value, "]]>")
			cur.AppendChild(&Node{Type: CDataNode, Value: value})
		case xml.StartTagPIToken:
			pi = &Node{Type: InstructionNode, Name: strings.TrimPrefix(string(data), "<?")}
			piValue = piValue[:0]
		case xml.StartTagClosePIToken:
			if pi != nil {
				pi.Value = strings.Join(piValue, " ")
				cur.AppendChild(pi)
				pi = nil
			}
		case xml.StartTagToken:
			name := string(data[1:])
			if !isValidName(name) {
				return nil, p.errorf(offset, "Invalid tag name: %q", name)
			}
			tag = NewElement(name)
			cur.AppendChild(tag)
			stack = append(stack, tag)
		case xml.AttributeToken:
			if pi != nil {
				piValue = append(piValue, strings.TrimSpace(string(data)))
				break
			} else if tag == nil {
				break
			}
			name := string(l.Text())
			val := l.AttrVal()
			if val == nil {
				return nil, p.errorf(offset, "Attribute without value: %s", name)
			} else if val[0] != '"' && val[0] != '\'' {
				return nil, p.errorf(offset, "Unquoted attribute value: %s", name)
			}
			if 2 <= len(val) && val[len(val)-1] == val[0] {
				val = val[1 : len(val)-1]
			} else {
				val = val[1:]
			}
			tag.Set(name, p.decode(string(val)))
		case xml.StartTagCloseToken:
			tag = nil
		case xml.StartTagCloseVoidToken:
			tag = nil
			if 1 < len(stack) {
				stack = stack[:len(stack)-1]
			}
		case xml.EndTagToken:
			name := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(string(data), "</"), ">"))
			if len(stack) == 1 || cur.Name != name {
				return nil, p.errorf(offset, "Unexpected close tag: %s", name)
			}
			stack = stack[:len(stack)-1]
		case xml.TextToken:
			if cur.Type == RootNode {
				if len(bytes.TrimSpace(data)) != 0 {
					return nil, p.errorf(offset, "Text data outside of root node.")
				}
				break
			}
			text := p.decode(string(data))
			if textElems[cur.Name] {
				cur.AppendChild(NewText(text))
			} else if trimmed := strings.TrimSpace(text); trimmed != "" {
				cur.AppendChild(NewText(trimmed))
			}
		}
	}
}

// MustParse parses the document and panics on error.
func MustParse(s string) *Node {
	root, err := Parse([]byte(s), "")
	if err != nil {
		panic(err)
	}
	return root
}

func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || r == ':' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || 0x80 <= r {
			continue
		} else if 0 < i && (r == '-' || r == '.' || '0' <= r && r <= '9') {
			continue
		}
		return false
	}
	return true
}
