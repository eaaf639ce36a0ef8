package plugins

import (
	"testing"

	"github.com/tdewolff/svgo"
)

func TestRemoveComments(t *testing.T) {
	testPlugin(t, RemoveComments, []pluginTest{
		{"default", nil, `<svg><!-- a --><!--! legal --><g/></svg>`, `<svg><!--! legal--><g/></svg>`},
		{"patterns", svgo.Params{"preservePatterns": []any{"^keep"}}, `<svg><!--keep me--><!--! legal--></svg>`, `<svg><!--keep me--></svg>`},
		{"no patterns", svgo.Params{"preservePatterns": []any{}}, `<svg><!--! legal--></svg>`, `<svg/>`},
	})
}

func TestRemoveDimensions(t *testing.T) {
	testPlugin(t, RemoveDimensions, []pluginTest{
		{"viewBox", nil, `<svg width="100px" height="50" viewBox="0 0 100 50"/>`, `<svg viewBox="0 0 100 50"/>`},
		{"add viewBox", nil, `<svg width="100" height="50.5px"/>`, `<svg viewBox="0 0 100 50.5"/>`},
		{"relative", nil, `<svg width="100%" height="50"/>`, `<svg width="100%" height="50"/>`},
	})
}

func TestRemoveEmptyContainers(t *testing.T) {
	testPlugin(t, RemoveEmptyContainers, []pluginTest{
		{"nested", nil, `<svg><g><g/></g><path d="M0 0"/></svg>`, `<svg><path d="M0 0"/></svg>`},
		{"kept", nil, `<svg><pattern id="a"/><mask/><g filter="url(#f)"/></svg>`, `<svg><pattern id="a"/><g filter="url(#f)"/></svg>`},
		{"switch", nil, `<svg><switch><g/></switch></svg>`, `<svg><switch><g/></switch></svg>`},
	})
}

func TestRemoveEmptyAttrs(t *testing.T) {
	testPlugin(t, RemoveEmptyAttrs, []pluginTest{
		{"empty", nil, `<svg><rect fill="" requiredFeatures="" x="1"/></svg>`, `<svg><rect requiredFeatures="" x="1"/></svg>`},
	})
}

func TestRemoveUselessDefs(t *testing.T) {
	testPlugin(t, RemoveUselessDefs, []pluginTest{
		{"unwrap", nil, `<svg><defs><g><path id="a"/></g><rect/></defs></svg>`, `<svg><defs><path id="a"/></defs></svg>`},
		{"empty", nil, `<svg><defs><rect/></defs><path d="M0 0"/></svg>`, `<svg><path d="M0 0"/></svg>`},
		{"style", nil, `<svg><defs><style>.a{}</style></defs></svg>`, `<svg><defs><style>.a{}</style></defs></svg>`},
	})
}

func TestRemoveAttrs(t *testing.T) {
	testPlugin(t, RemoveAttrs, []pluginTest{
		{"name", svgo.Params{"attrs": "fill"}, `<svg><rect fill="red" stroke="blue"/></svg>`, `<svg><rect stroke="blue"/></svg>`},
		{"alternatives", svgo.Params{"attrs": "(fill|stroke)"}, `<svg><rect fill="red" stroke="blue" x="1"/></svg>`, `<svg><rect x="1"/></svg>`},
		{"element", svgo.Params{"attrs": []any{"circle:fill"}}, `<svg><rect fill="red"/><circle fill="red"/></svg>`, `<svg><rect fill="red"/><circle/></svg>`},
		{"value", svgo.Params{"attrs": "*:fill:none"}, `<svg><rect fill="none"/><circle fill="red"/></svg>`, `<svg><rect/><circle fill="red"/></svg>`},
		{"currentColor", svgo.Params{"attrs": "fill", "preserveCurrentColor": true}, `<svg><rect fill="currentColor"/><circle fill="red"/></svg>`, `<svg><rect fill="currentColor"/><circle/></svg>`},
		{"missing", nil, `<svg><rect fill="red"/></svg>`, `<svg><rect fill="red"/></svg>`},
	})
}

func TestRemoveXlink(t *testing.T) {
	testPlugin(t, RemoveXlink, []pluginTest{
		{"href", nil, `<svg xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="#a"/></svg>`, `<svg><use href="#a"/></svg>`},
		{"show", nil, `<svg xmlns:xlink="http://www.w3.org/1999/xlink"><a xlink:show="new"/></svg>`, `<svg><a target="_blank"/></svg>`},
	})
}

func TestConvertEllipseToCircle(t *testing.T) {
	testPlugin(t, ConvertEllipseToCircle, []pluginTest{
		{"equal", nil, `<svg><ellipse cx="5" rx="2" ry="2"/></svg>`, `<svg><circle cx="5" r="2"/></svg>`},
		{"auto", nil, `<svg><ellipse rx="auto" ry="3"/></svg>`, `<svg><circle r="3"/></svg>`},
		{"eccentric", nil, `<svg><ellipse rx="2" ry="3"/></svg>`, `<svg><ellipse rx="2" ry="3"/></svg>`},
	})
}

func TestRemoveHiddenElems(t *testing.T) {
	testPlugin(t, RemoveHiddenElems, []pluginTest{
		{"display", nil, `<svg><g display="none"><rect/></g><g/></svg>`, `<svg><g/></svg>`},
		{"opacity", nil, `<svg><clipPath><rect opacity="0"/></clipPath><rect opacity="0"/></svg>`, `<svg><clipPath><rect opacity="0"/></clipPath></svg>`},
		{"zero size", nil, `<svg><circle r="0"/><ellipse rx="0" ry="1"/><rect width="0" height="5"/><rect width="5" height="5"/></svg>`, `<svg><rect width="5" height="5"/></svg>`},
		{"path data", nil, `<svg><path/><path d=""/><path d="M0 0"/><path d="M0 0L1 1"/></svg>`, `<svg><path d="M0 0L1 1"/></svg>`},
		{"marker", nil, `<svg><path d="M0 0" marker-end="url(#m)"/></svg>`, `<svg><path d="M0 0" marker-end="url(#m)"/></svg>`},
		{"use", nil, `<svg><defs><path id="a" d=""/></defs><use href="#a"/></svg>`, `<svg><defs/></svg>`},
		{"visibility", nil, `<svg><g visibility="hidden"><rect/></g><g visibility="hidden"><rect visibility="visible"/></g></svg>`, `<svg><g visibility="hidden"><rect visibility="visible"/></g></svg>`},
		{"disabled", svgo.Params{"displayNone": false}, `<svg><g display="none"/></svg>`, `<svg><g display="none"/></svg>`},
	})
}

func TestRemoveUnknownsAndDefaults(t *testing.T) {
	testPlugin(t, RemoveUnknownsAndDefaults, []pluginTest{
		{"unknown attribute", nil, `<svg><rect foo="1" width="10" data-a="1" aria-label="b"/></svg>`, `<svg><rect width="10" data-a="1" aria-label="b"/></svg>`},
		{"unknown element", nil, `<svg><g><foo/><rect/></g></svg>`, `<svg><g><rect/></g></svg>`},
		{"default", nil, `<svg preserveAspectRatio="xMidYMid meet" version="1.1"><rect x="0" y="1" width="10" fill-opacity="1"/></svg>`, `<svg><rect y="1" width="10"/></svg>`},
		{"inherited default", nil, `<svg><g fill="red"><rect fill="#000"/></g></svg>`, `<svg><g fill="red"><rect fill="#000"/></g></svg>`},
		{"useless override", nil, `<svg><g fill="red"><rect fill="red"/></g></svg>`, `<svg><g fill="red"><rect/></g></svg>`},
		{"id", nil, `<svg><g fill="red"><rect id="a" fill="red" x="0"/></g></svg>`, `<svg><g fill="red"><rect id="a" fill="red" x="0"/></g></svg>`},
		{"attribute selector", nil, `<svg><style>[x]{fill:red}</style><rect x="0"/></svg>`, `<svg><style>[x]{fill:red}</style><rect x="0"/></svg>`},
		{"standalone", nil, `<?xml version="1.0" standalone="no"?><svg/>`, `<?xml version="1.0"?><svg/>`},
		{"keep data", svgo.Params{"keepDataAttrs": false}, `<svg><rect data-a="1"/></svg>`, `<svg><rect/></svg>`},
	})
}

func TestRemoveUselessStrokeAndFill(t *testing.T) {
	testPlugin(t, RemoveUselessStrokeAndFill, []pluginTest{
		{"stroke none", nil, `<svg><rect stroke="none" stroke-width="2" fill="red"/></svg>`, `<svg><rect fill="red"/></svg>`},
		{"inherited stroke", nil, `<svg><g stroke="red"><rect stroke-width="0"/></g></svg>`, `<svg><g stroke="red"><rect stroke="none"/></g></svg>`},
		{"fill none", nil, `<svg><rect fill="none" fill-rule="evenodd"/></svg>`, `<svg><rect fill="none"/></svg>`},
		{"fill opacity", nil, `<svg><rect fill="red" fill-opacity="0"/></svg>`, `<svg><rect fill="none"/></svg>`},
		{"id", nil, `<svg><rect id="a" stroke="none"/></svg>`, `<svg><rect id="a" stroke="none"/></svg>`},
		{"style", nil, `<svg><style>.a{}</style><rect stroke="none"/></svg>`, `<svg><style>.a{}</style><rect stroke="none"/></svg>`},
		{"marker", nil, `<svg><path d="M0 0" stroke="none" marker-end="url(#m)"/></svg>`, `<svg><path d="M0 0" stroke="none" marker-end="url(#m)"/></svg>`},
		{"remove none", svgo.Params{"removeNone": true}, `<svg><rect fill="none"/><rect/></svg>`, `<svg><rect/></svg>`},
	})
}

func TestRemoveViewBox(t *testing.T) {
	testPlugin(t, RemoveViewBox, []pluginTest{
		{"same", nil, `<svg width="10px" height="20" viewBox="0 0 10 20"/>`, `<svg width="10px" height="20"/>`},
		{"nested", nil, `<svg width="10" height="10" viewBox="0 0 10 10"><svg width="5" height="5" viewBox="0 0 5 5"/></svg>`, `<svg width="10" height="10"><svg width="5" height="5" viewBox="0 0 5 5"/></svg>`},
		{"scaled", nil, `<svg width="10" height="10" viewBox="0 0 20 20"/>`, `<svg width="10" height="10" viewBox="0 0 20 20"/>`},
	})
}

func TestRemoveUnusedNS(t *testing.T) {
	testPlugin(t, RemoveUnusedNS, []pluginTest{
		{"unused", nil, `<svg xmlns:a="x" xmlns:b="y" xmlns:c="z"><a:rect/><rect b:foo="1"/></svg>`, `<svg xmlns:a="x" xmlns:b="y"><a:rect/><rect b:foo="1"/></svg>`},
	})
}

func TestRemoveEditorsNSData(t *testing.T) {
	testPlugin(t, RemoveEditorsNSData, []pluginTest{
		{"inkscape", nil, `<svg xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" inkscape:version="1"><inkscape:x/><rect inkscape:label="a"/></svg>`, `<svg><rect/></svg>`},
		{"additional", svgo.Params{"additionalNamespaces": []any{"x"}}, `<svg xmlns:e="x"><rect e:a="1"/></svg>`, `<svg><rect/></svg>`},
		{"other", nil, `<svg xmlns:e="x"><rect e:a="1"/></svg>`, `<svg xmlns:e="x"><rect e:a="1"/></svg>`},
	})
}

func TestRemoveXMLNS(t *testing.T) {
	testPlugin(t, RemoveXMLNS, []pluginTest{
		{"xmlns", nil, `<svg xmlns="http://www.w3.org/2000/svg" width="1"/>`, `<svg width="1"/>`},
	})
}

func TestRemoveXMLProcInst(t *testing.T) {
	testPlugin(t, RemoveXMLProcInst, []pluginTest{
		{"declaration", nil, `<?xml version="1.0"?><?xml-stylesheet href="a.css"?><svg/>`, `<?xml-stylesheet href="a.css"?><svg/>`},
	})
}

func TestRemoveDoctype(t *testing.T) {
	testPlugin(t, RemoveDoctype, []pluginTest{
		{"doctype", nil, `<!DOCTYPE svg><svg/>`, `<svg/>`},
	})
}

func TestRemoveNonInheritableGroupAttrs(t *testing.T) {
	testPlugin(t, RemoveNonInheritableGroupAttrs, []pluginTest{
		{"group", nil, `<svg><g fill="red" opacity=".5" stop-color="red" overflow="hidden" x="1"/></svg>`, `<svg><g fill="red" opacity=".5" x="1"/></svg>`},
		{"rect", nil, `<svg><rect stop-color="red"/></svg>`, `<svg><rect stop-color="red"/></svg>`},
	})
}

func TestRemoveScripts(t *testing.T) {
	testPlugin(t, RemoveScripts, []pluginTest{
		{"scripts", nil, `<svg><script>alert(1)</script><rect onclick="x()" fill="red"/><a href="javascript:x()"><rect/></a><a href="#x"/></svg>`, `<svg><rect fill="red"/><rect/><a href="#x"/></svg>`},
	})
}

func TestRemoveRasterImages(t *testing.T) {
	testPlugin(t, RemoveRasterImages, []pluginTest{
		{"raster", nil, `<svg><image href="a.png"/><image xlink:href="data:image/jpeg;base64,AAAA"/><image href="a.svg"/></svg>`, `<svg><image href="a.svg"/></svg>`},
	})
}

func TestRemoveDescriptive(t *testing.T) {
	testPlugin(t, RemoveTitle, []pluginTest{
		{"title", nil, `<svg><title>a</title><rect/></svg>`, `<svg><rect/></svg>`},
	})
	testPlugin(t, RemoveMetadata, []pluginTest{
		{"metadata", nil, `<svg><metadata><x/></metadata><rect/></svg>`, `<svg><rect/></svg>`},
	})
	testPlugin(t, RemoveStyleElement, []pluginTest{
		{"style", nil, `<svg><style>.a{}</style><rect/></svg>`, `<svg><rect/></svg>`},
	})
	testPlugin(t, RemoveDesc, []pluginTest{
		{"desc", nil, `<svg><desc/><desc>Created with X</desc><desc>Chart</desc></svg>`, `<svg><desc>Chart</desc></svg>`},
		{"any", svgo.Params{"removeAny": true}, `<svg><desc>Chart</desc></svg>`, `<svg/>`},
	})
}

func TestRemoveElementsByAttr(t *testing.T) {
	testPlugin(t, RemoveElementsByAttr, []pluginTest{
		{"id", svgo.Params{"id": "a"}, `<svg><rect id="a"/><rect id="b"/></svg>`, `<svg><rect id="b"/></svg>`},
		{"class", svgo.Params{"class": []any{"x", "y"}}, `<svg><rect class="x z"/><circle class="y"/><path class="z"/></svg>`, `<svg><path class="z"/></svg>`},
		{"none", nil, `<svg><rect id="a"/></svg>`, `<svg><rect id="a"/></svg>`},
	})
}

func TestRemoveEmptyText(t *testing.T) {
	testPlugin(t, RemoveEmptyText, []pluginTest{
		{"empty", nil, `<svg><text/><text>a<tspan/></text><tref/><tref xlink:href="#a"/></svg>`, `<svg><text>a</text><tref xlink:href="#a"/></svg>`},
		{"tspan kept", svgo.Params{"tspan": false}, `<svg><text>a<tspan/></text></svg>`, `<svg><text>a<tspan/></text></svg>`},
	})
}

func TestRemoveAttributesBySelector(t *testing.T) {
	testPlugin(t, RemoveAttributesBySelector, []pluginTest{
		{"selector", svgo.Params{"selector": "rect.a", "attributes": "fill"}, `<svg><rect class="a" fill="red" stroke="blue"/><rect fill="red"/></svg>`, `<svg><rect class="a" stroke="blue"/><rect fill="red"/></svg>`},
		{"selectors", svgo.Params{"selectors": []any{
			map[string]any{"selector": "#b", "attributes": []any{"stroke", "x"}},
			map[string]any{"selector": "circle", "attributes": "r"},
		}}, `<svg><rect id="b" stroke="red" x="1" y="2"/><circle r="1"/></svg>`, `<svg><rect id="b" y="2"/><circle/></svg>`},
	})
}
