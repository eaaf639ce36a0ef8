package plugins

import (
	"strings"

	"github.com/tdewolff/svgo"
)

// RemoveEditorsNSData removes elements and attributes in the namespaces of editors such as Inkscape, Illustrator and Sketch, together with their namespace declarations.
var RemoveEditorsNSData = &svgo.Plugin{
	Name:        "removeEditorsNSData",
	Description: "removes editors namespaces, elements and attributes",
	Fn:          removeEditorsNSData,
}

func removeEditorsNSData(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	namespaces := map[string]bool{}
	for ns := range svgo.EditorNamespaces {
		namespaces[ns] = true
	}
	for _, ns := range params.Strings("additionalNamespaces") {
		namespaces[ns] = true
	}

	prefixes := map[string]bool{}
	isEditorName := func(name string) bool {
		if i := strings.IndexByte(name, ':'); i != -1 {
			return prefixes[name[:i]]
		}
		return false
	}
	return svgo.ElementVisitor(func(n *svgo.Node) {
		if n.Name == "svg" {
			for _, attr := range n.Attrs {
				if strings.HasPrefix(attr.Name, "xmlns:") && namespaces[attr.Value] {
					prefixes[attr.Name[6:]] = true
				}
			}
			n.RemoveFunc(func(attr svgo.Attr) bool {
				return strings.HasPrefix(attr.Name, "xmlns:") && prefixes[attr.Name[6:]]
			})
		}
		n.RemoveFunc(func(attr svgo.Attr) bool {
			return isEditorName(attr.Name)
		})
		if isEditorName(n.Name) {
			n.Detach()
		}
	})
}
