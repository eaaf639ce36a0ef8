package plugins

import (
	"math"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/svgo"
)

var (
	urlReferenceRegexp   = regexp.MustCompile(`\burl\(\s*["']?#([^"')]+?)["']?\s*\)`)
	hrefReferenceRegexp  = regexp.MustCompile(`^#(.+)$`)
	beginReferenceRegexp = regexp.MustCompile(`(\w+)\.[a-zA-Z]`)
	numericValueRegexp   = regexp.MustCompile(`[-+]?(?:\d*\.\d+|\d+\.?)(?:[eE][-+]?\d+)?`)
	separatorRegexp      = regexp.MustCompile(`[\s,]+`)
)

// precision returns the precision parameter, or -1 when it is set to false.
func precision(params svgo.Params, name string, def int) int {
	if b, ok := params[name].(bool); ok && !b {
		return -1
	}
	return params.Int(name, def)
}

// isHref returns true for href and namespaced href attributes.
func isHref(name string) bool {
	return name == "href" || strings.HasSuffix(name, ":href")
}

// findReferences returns the IDs referenced by an attribute value.
func findReferences(name, value string) []string {
	var ids []string
	if svgo.ReferencesProps[name] {
		for _, m := range urlReferenceRegexp.FindAllStringSubmatch(value, -1) {
			ids = append(ids, m[1])
		}
	}
	if isHref(name) {
		if m := hrefReferenceRegexp.FindStringSubmatch(value); m != nil {
			ids = append(ids, m[1])
		}
	}
	if name == "begin" {
		if m := beginReferenceRegexp.FindStringSubmatch(value); m != nil {
			ids = append(ids, m[1])
		}
	}
	for i, id := range ids {
		ids[i] = string(parse.DecodeURL([]byte(id)))
	}
	return ids
}

// replaceReferences replaces references to the id in an attribute value.
func replaceReferences(name, value, id, newID string) string {
	if isHref(name) {
		if value == "#"+id {
			return "#" + newID
		}
		return value
	}
	if name == "begin" {
		return strings.ReplaceAll(value, id+".", newID+".")
	}
	return urlReferenceRegexp.ReplaceAllStringFunc(value, func(m string) string {
		sub := urlReferenceRegexp.FindStringSubmatch(m)
		if string(parse.DecodeURL([]byte(sub[1]))) != id {
			return m
		}
		return "url(#" + newID + ")"
	})
}

// hasScripts returns true if the document contains scripts, script links or event attributes.
func hasScripts(root *svgo.Node) bool {
	found := false
	root.Descendants(func(n *svgo.Node) bool {
		if found || n.Type != svgo.ElementNode {
			return !found
		}
		if n.Name == "script" && 0 < len(n.Children()) {
			found = true
		} else if n.Name == "a" {
			for _, attr := range n.Attrs {
				if isHref(attr.Name) && strings.HasPrefix(strings.TrimSpace(attr.Value), "javascript:") {
					found = true
				}
			}
		}
		for _, attr := range n.Attrs {
			if isEventAttr(attr.Name) {
				found = true
			}
		}
		return !found
	})
	return found
}

func isEventAttr(name string) bool {
	for _, group := range []string{"animationEvent", "documentEvent", "documentElementEvent", "globalEvent", "graphicalEvent"} {
		if svgo.AttrsGroups[group][name] {
			return true
		}
	}
	return false
}

// hasStyleOrScript returns true if the document has style elements or scripts.
func hasStyleOrScript(root *svgo.Node) bool {
	style := false
	root.Descendants(func(n *svgo.Node) bool {
		if n.IsElement("style") {
			style = true
		}
		return !style
	})
	return style || hasScripts(root)
}

// hasAncestor returns true if any ancestor of n is an element with the given name.
func hasAncestor(n *svgo.Node, name string) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.IsElement(name) {
			return true
		}
	}
	return false
}

// parseNumber returns the number if s consists of a single number only.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0.0, false
	}
	f, n := strconv.ParseFloat([]byte(s))
	if n != len(s) || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0.0, false
	}
	return f, true
}

// parseNumbers parses a list of numbers separated by whitespace or commas.
func parseNumbers(s string) ([]float64, bool) {
	var nums []float64
	for _, field := range separatorRegexp.Split(strings.TrimSpace(s), -1) {
		if field == "" {
			continue
		}
		f, ok := parseNumber(field)
		if !ok {
			return nil, false
		}
		nums = append(nums, f)
	}
	return nums, true
}

// parsePath returns the path data of an element, the first moveto is made absolute.
func parsePath(n *svgo.Node) []svgo.PathItem {
	items := svgo.ParsePathData(n.Get("d"))
	if 0 < len(items) && items[0].Command == 'm' {
		items[0].Command = 'M'
	}
	return items
}

// setPath serializes the path data to the d attribute. A moveto directly followed by another moveto is merged into it.
func setPath(n *svgo.Node, items []svgo.PathItem, opts svgo.PathStringifyOptions) {
	data := make([]svgo.PathItem, 0, len(items))
	for _, item := range items {
		if 0 < len(data) && (item.Command == 'M' || item.Command == 'm') {
			last := &data[len(data)-1]
			if last.Command == 'M' || last.Command == 'm' {
				if item.Command == 'm' {
					item = svgo.PathItem{Command: last.Command, Args: []float64{last.Args[0] + item.Args[0], last.Args[1] + item.Args[1]}}
				}
				data = data[:len(data)-1]
			}
		}
		data = append(data, item)
	}
	n.Set("d", svgo.StringifyPathData(data, opts))
}
