package plugins

import (
	"strings"

	"github.com/tdewolff/svgo"
)

const xlinkNamespace = "http://www.w3.org/1999/xlink"

// legacyXlinkElems only support xlink:href, even in SVG 2.
var legacyXlinkElems = map[string]bool{"cursor": true, "filter": true, "font-face-uri": true, "glyphRef": true, "tref": true}

// RemoveXlink replaces xlink attributes by their SVG 2 equivalents: xlink:href becomes href, xlink:show becomes target and xlink:title becomes a title element. Unused xlink namespace declarations are removed.
var RemoveXlink = &svgo.Plugin{
	Name:        "removeXlink",
	Description: "remove xlink namespace and replaces attributes with the SVG 2 equivalent where applicable",
	Fn:          removeXlink,
}

func removeXlink(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	includeLegacy := params.Bool("includeLegacy", false)

	// xlink prefixes in scope, declarations are removed once all their uses are converted
	prefixes := []string{}
	declared := map[*svgo.Node][]string{}
	used := map[string]bool{}
	return &svgo.Visitor{
		Element: svgo.Hooks{
			Enter: func(n *svgo.Node) svgo.Action {
				for _, attr := range n.Attrs {
					if strings.HasPrefix(attr.Name, "xmlns:") && attr.Value == xlinkNamespace {
						prefix := attr.Name[6:]
						prefixes = append(prefixes, prefix)
						declared[n] = append(declared[n], prefix)
					}
				}

				for _, prefix := range prefixes {
					if show, ok := n.Attr(prefix + ":show"); ok {
						if !n.Has("target") {
							switch show {
							case "new":
								n.Set("target", "_blank")
							case "replace":
								n.Set("target", "_self")
							}
						}
						n.Remove(prefix + ":show")
					}
					if title, ok := n.Attr(prefix + ":title"); ok {
						hasTitle := false
						for _, c := range n.Elements() {
							if c.Name == "title" {
								hasTitle = true
							}
						}
						if !hasTitle {
							elem := svgo.NewElement("title")
							elem.AppendChild(svgo.NewText(title))
							n.InsertChildren(0, elem)
						}
						n.Remove(prefix + ":title")
					}
					if href, ok := n.Attr(prefix + ":href"); ok {
						if !includeLegacy && legacyXlinkElems[n.Name] {
							used[prefix] = true
							continue
						}
						if !n.Has("href") {
							n.Set("href", href)
						}
						n.Remove(prefix + ":href")
					}
					for _, attr := range n.Attrs {
						if strings.HasPrefix(attr.Name, prefix+":") {
							used[prefix] = true
						}
					}
				}
				return svgo.Continue
			},
			Exit: func(n *svgo.Node) {
				for _, prefix := range declared[n] {
					if !used[prefix] {
						n.Remove("xmlns:" + prefix)
					}
					delete(used, prefix)
					prefixes = prefixes[:len(prefixes)-1]
				}
			},
		},
	}
}
