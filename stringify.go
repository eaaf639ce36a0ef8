package svgo

import (
	"strings"
)

// StringifyOptions are the serializer options.
type StringifyOptions struct {
	Pretty       bool   `yaml:"pretty"`
	Indent       int    `yaml:"indent"`       // number of spaces per level when pretty printing
	UseShortTags bool   `yaml:"useShortTags"` // write <tag/> instead of <tag></tag> for empty elements
	EOL          string `yaml:"eol"`          // lf or crlf
	FinalNewline bool   `yaml:"finalNewline"`
}

// DefaultStringifyOptions returns the default serializer options.
func DefaultStringifyOptions() StringifyOptions {
	return StringifyOptions{
		Indent:       4,
		UseShortTags: true,
		EOL:          "lf",
	}
}

var textEntities = strings.NewReplacer("&", "&amp;", "'", "&apos;", "\"", "&quot;", "<", "&lt;", ">", "&gt;")
var attrEntities = strings.NewReplacer("&", "&amp;", "\"", "&quot;", "<", "&lt;", ">", "&gt;")

type stringifier struct {
	StringifyOptions
	sb          strings.Builder
	eol         string
	indent      string
	level       int
	textContext *Node
}

// Stringify serializes the tree.
func Stringify(root *Node, opts *StringifyOptions) string {
	if opts == nil {
		o := DefaultStringifyOptions()
		opts = &o
	}
	s := &stringifier{
		StringifyOptions: *opts,
		eol:              "\n",
		level:            -1,
	}
	if s.EOL == "crlf" {
		s.eol = "\r\n"
	}
	if 0 < s.Indent {
		s.indent = strings.Repeat(" ", s.Indent)
	}
	if root.Type == RootNode {
		s.writeChildren(root)
	} else {
		s.level = 0
		s.writeNode(root)
	}

	out := s.sb.String()
	if s.FinalNewline && 0 < len(out) && !strings.HasSuffix(out, "\n") {
		out += s.eol
	}
	return out
}

func (s *stringifier) newline() string {
	if s.Pretty {
		return s.eol
	}
	return ""
}

func (s *stringifier) writeIndent() {
	if s.Pretty && s.textContext == nil {
		s.sb.WriteString(strings.Repeat(s.indent, s.level))
	}
}

func (s *stringifier) writeChildren(n *Node) {
	s.level++
	for _, c := range n.children {
		s.writeNode(c)
	}
	s.level--
}

func (s *stringifier) writeNode(n *Node) {
	switch n.Type {
	case DoctypeNode:
		s.writeIndent()
		s.sb.WriteString("<!DOCTYPE" + n.Value + ">" + s.newline())
	case InstructionNode:
		s.writeIndent()
		s.sb.WriteString("<?" + n.Name)
		if n.Value != "" {
			s.sb.WriteString(" " + n.Value)
		}
		s.sb.WriteString("?>" + s.newline())
	case CommentNode:
		s.writeIndent()
		s.sb.WriteString("<!--" + n.Value + "-->" + s.newline())
	case CDataNode:
		s.writeIndent()
		s.sb.WriteString("<![CDATA[" + n.Value + "]]>" + s.newline())
	case TextNode:
		if s.textContext != nil {
			s.sb.WriteString(textEntities.Replace(n.Value))
		} else {
			s.writeIndent()
			s.sb.WriteString(textEntities.Replace(n.Value) + s.newline())
		}
	case ElementNode:
		s.writeElement(n)
	case RootNode:
		s.writeChildren(n)
	}
}

func (s *stringifier) writeAttrs(n *Node) {
	for _, attr := range n.Attrs {
		s.sb.WriteString(" " + attr.Name + "=\"" + attrEntities.Replace(attr.Value) + "\"")
	}
}

func (s *stringifier) writeElement(n *Node) {
	// inside text content no newlines are added since they would change the rendering
	nl := s.newline()
	if s.textContext != nil {
		nl = ""
	}

	s.writeIndent()
	s.sb.WriteString("<" + n.Name)
	s.writeAttrs(n)
	if len(n.children) == 0 {
		if s.UseShortTags {
			s.sb.WriteString("/>" + nl)
		} else {
			s.sb.WriteString("></" + n.Name + ">" + nl)
		}
		return
	}

	openEnd := nl
	closeIndent := true
	if s.textContext == nil && textElems[n.Name] {
		openEnd = ""
		closeIndent = false
		s.textContext = n
	}
	s.sb.WriteString(">" + openEnd)
	s.writeChildren(n)
	if s.textContext == n {
		s.textContext = nil
	}
	if closeIndent {
		s.writeIndent()
	}
	s.sb.WriteString("</" + n.Name + ">" + s.newlineFor(n))
}

func (s *stringifier) newlineFor(n *Node) string {
	if s.textContext != nil {
		return ""
	}
	return s.newline()
}
