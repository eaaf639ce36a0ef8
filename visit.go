package svgo

// Action is returned by an enter hook to control the traversal.
type Action int

// Action values.
const (
	Continue Action = iota
	SkipChildren
)

// Hooks are the callbacks for one kind of node. Both are optional.
type Hooks struct {
	Enter func(*Node) Action
	Exit  func(*Node)
}

// Visitor holds the hooks per node kind.
type Visitor struct {
	Root        Hooks
	Element     Hooks
	Text        Hooks
	Comment     Hooks
	CData       Hooks
	Doctype     Hooks
	Instruction Hooks
}

func (v *Visitor) hooks(t NodeType) *Hooks {
	switch t {
	case RootNode:
		return &v.Root
	case ElementNode:
		return &v.Element
	case TextNode:
		return &v.Text
	case CommentNode:
		return &v.Comment
	case CDataNode:
		return &v.CData
	case DoctypeNode:
		return &v.Doctype
	case InstructionNode:
		return &v.Instruction
	}
	return nil
}

// Visit traverses the tree in pre-order. Children of an element that was detached by its enter hook are not visited. The children are iterated over a snapshot taken after the enter hook, children that were detached or moved in the meantime are skipped and nodes that were inserted are not visited.
func Visit(n *Node, v *Visitor) {
	h := v.hooks(n.Type)
	attached := n.parent != nil
	if h != nil && h.Enter != nil {
		if h.Enter(n) == SkipChildren {
			return
		}
	}
	if 0 < len(n.children) && (!attached || n.parent != nil) {
		children := make([]*Node, len(n.children))
		copy(children, n.children)
		for _, c := range children {
			if c.parent == n {
				Visit(c, v)
			}
		}
	}
	if h != nil && h.Exit != nil {
		h.Exit(n)
	}
}

// ElementVisitor returns a visitor that only has an element enter hook that never skips.
func ElementVisitor(f func(*Node)) *Visitor {
	return &Visitor{
		Element: Hooks{
			Enter: func(n *Node) Action {
				f(n)
				return Continue
			},
		},
	}
}
