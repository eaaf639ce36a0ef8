package svgo

import (
	"sort"
	"strconv"
)

// NodeType is the kind of a node in the document tree.
type NodeType int

// NodeType values.
const (
	RootNode NodeType = iota
	ElementNode
	TextNode
	CommentNode
	CDataNode
	DoctypeNode
	InstructionNode
)

func (t NodeType) String() string {
	switch t {
	case RootNode:
		return "Root"
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case CDataNode:
		return "CData"
	case DoctypeNode:
		return "Doctype"
	case InstructionNode:
		return "Instruction"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// Attr is an element attribute.
type Attr struct {
	Name, Value string
}

// Node is a node in the document tree. Name is the tag name of elements and the target of processing instructions, Value holds the contents of all other leaves. The parent and children are only modified through the node's methods so that the parent reference always points to the node that holds it.
type Node struct {
	Type  NodeType
	Name  string
	Value string
	Attrs []Attr

	parent   *Node
	children []*Node
}

// NewRoot returns an empty document.
func NewRoot() *Node {
	return &Node{Type: RootNode}
}

// NewElement returns an element without parent.
func NewElement(name string, attrs ...Attr) *Node {
	return &Node{Type: ElementNode, Name: name, Attrs: attrs}
}

// NewText returns a text node.
func NewText(value string) *Node {
	return &Node{Type: TextNode, Value: value}
}

// Parent returns the parent node or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// Index returns the position of n in its parent's children, or -1 when detached.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Detach removes n from its parent and clears the parent reference.
func (n *Node) Detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	if i := n.Index(); i != -1 {
		p.children = append(p.children[:i:i], p.children[i+1:]...)
	}
	n.parent = nil
}

// AppendChild appends c to the children of n, c is detached from its old parent first.
func (n *Node) AppendChild(c *Node) {
	c.Detach()
	c.parent = n
	n.children = append(n.children, c)
}

// InsertChildren inserts the nodes at position i of the children of n.
func (n *Node) InsertChildren(i int, cs ...*Node) {
	for _, c := range cs {
		c.Detach()
	}
	if i < 0 || len(n.children) < i {
		i = len(n.children)
	}
	children := make([]*Node, 0, len(n.children)+len(cs))
	children = append(children, n.children[:i]...)
	children = append(children, cs...)
	children = append(children, n.children[i:]...)
	for _, c := range cs {
		c.parent = n
	}
	n.children = children
}

// InsertBefore inserts c before ref, which must be a child of n.
func (n *Node) InsertBefore(c, ref *Node) {
	c.Detach()
	i := len(n.children)
	if ref != nil && ref.parent == n {
		i = ref.Index()
	}
	n.InsertChildren(i, c)
}

// ReplaceWith replaces n by the given nodes in its parent.
func (n *Node) ReplaceWith(cs ...*Node) {
	p := n.parent
	if p == nil {
		return
	}
	i := n.Index()
	n.Detach()
	p.InsertChildren(i, cs...)
}

// SetChildren replaces all children of n.
func (n *Node) SetChildren(cs []*Node) {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = n.children[:0:0]
	for _, c := range cs {
		n.AppendChild(c)
	}
}

// SortChildren sorts the children stably.
func (n *Node) SortChildren(less func(a, b *Node) bool) {
	sort.SliceStable(n.children, func(i, j int) bool {
		return less(n.children[i], n.children[j])
	})
}

// Attr returns the attribute value and whether it exists.
func (n *Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Get returns the attribute value or an empty string.
func (n *Node) Get(name string) string {
	v, _ := n.Attr(name)
	return v
}

// Has returns true if the attribute exists.
func (n *Node) Has(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// Set sets an attribute, existing attributes keep their position.
func (n *Node) Set(name, value string) {
	for i, attr := range n.Attrs {
		if attr.Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{name, value})
}

// Remove removes an attribute.
func (n *Node) Remove(name string) {
	for i, attr := range n.Attrs {
		if attr.Name == name {
			n.Attrs = append(n.Attrs[:i:i], n.Attrs[i+1:]...)
			return
		}
	}
}

// RemoveFunc removes all attributes for which f returns true.
func (n *Node) RemoveFunc(f func(Attr) bool) {
	attrs := n.Attrs[:0:0]
	for _, attr := range n.Attrs {
		if !f(attr) {
			attrs = append(attrs, attr)
		}
	}
	n.Attrs = attrs
}

// Clone returns a deep copy of n without parent.
func (n *Node) Clone() *Node {
	c := &Node{
		Type:  n.Type,
		Name:  n.Name,
		Value: n.Value,
	}
	if n.Attrs != nil {
		c.Attrs = append([]Attr{}, n.Attrs...)
	}
	for _, child := range n.children {
		c.AppendChild(child.Clone())
	}
	return c
}

// IsElement returns true if n is an element with one of the given names, or any element when no names are given.
func (n *Node) IsElement(names ...string) bool {
	if n.Type != ElementNode {
		return false
	} else if len(names) == 0 {
		return true
	}
	for _, name := range names {
		if n.Name == name {
			return true
		}
	}
	return false
}

// Elements returns the element children.
func (n *Node) Elements() []*Node {
	var elems []*Node
	for _, c := range n.children {
		if c.Type == ElementNode {
			elems = append(elems, c)
		}
	}
	return elems
}

// Descendants calls f for every descendant in document order, the subtree of a node is skipped when f returns false.
func (n *Node) Descendants(f func(*Node) bool) {
	for _, c := range n.children {
		if f(c) {
			c.Descendants(f)
		}
	}
}

// TextContent returns the concatenated text and CDATA of the children.
func (n *Node) TextContent() string {
	s := ""
	for _, c := range n.children {
		if c.Type == TextNode || c.Type == CDataNode {
			s += c.Value
		}
	}
	return s
}
