package plugins

import (
	"strings"

	"github.com/tdewolff/svgo"
)

const idChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CleanupIds removes unreferenced IDs and shortens referenced ones. Documents with style elements or scripts are left untouched unless force is set, since those may reference IDs in ways that cannot be tracked.
var CleanupIds = &svgo.Plugin{
	Name:        "cleanupIds",
	Description: "removes unused IDs and minifies used",
	Fn:          cleanupIds,
}

type idReference struct {
	node *svgo.Node
	name string
}

func cleanupIds(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	remove := params.Bool("remove", true)
	minify := params.Bool("minify", true)
	preserve := params.Strings("preserve")
	preservePrefixes := params.Strings("preservePrefixes")
	force := params.Bool("force", false)

	if !force && hasStyleOrScript(root) {
		return nil
	}

	isPreserved := func(id string) bool {
		if containsString(preserve, id) {
			return true
		}
		for _, prefix := range preservePrefixes {
			if strings.HasPrefix(id, prefix) {
				return true
			}
		}
		return false
	}

	nodeByID := map[string]*svgo.Node{}
	var ids []string
	references := map[string][]idReference{}
	var order []string
	root.Descendants(func(n *svgo.Node) bool {
		if n.Type != svgo.ElementNode {
			return true
		}
		for _, attr := range n.Attrs {
			if attr.Name == "id" {
				if _, ok := nodeByID[attr.Value]; ok {
					// duplicate IDs refer to the first element
					continue
				}
				nodeByID[attr.Value] = n
				ids = append(ids, attr.Value)
				continue
			}
			for _, id := range findReferences(attr.Name, attr.Value) {
				if _, ok := references[id]; !ok {
					order = append(order, id)
				}
				references[id] = append(references[id], idReference{n, attr.Name})
			}
		}
		return true
	})

	if minify {
		taken := map[string]bool{}
		for _, id := range ids {
			if isPreserved(id) {
				taken[id] = true
			}
		}
		counter := 0
		nextID := func() string {
			for {
				id := generateID(counter)
				counter++
				if !taken[id] {
					return id
				}
			}
		}
		for _, id := range order {
			n, ok := nodeByID[id]
			if !ok || isPreserved(id) {
				continue
			}
			newID := nextID()
			n.Set("id", newID)
			for _, ref := range references[id] {
				ref.node.Set(ref.name, replaceReferences(ref.name, ref.node.Get(ref.name), id, newID))
			}
			delete(nodeByID, id)
		}
	}
	if remove {
		for id, n := range nodeByID {
			if _, ok := references[id]; !ok && !isPreserved(id) && n.Get("id") == id {
				n.Remove("id")
			}
		}
	}
	return nil
}

// generateID returns the i-th identifier of the sequence a, b, ..., Z, aa, ab, ...
func generateID(i int) string {
	var b []byte
	for {
		b = append([]byte{idChars[i%len(idChars)]}, b...)
		i = i/len(idChars) - 1
		if i < 0 {
			return string(b)
		}
	}
}
