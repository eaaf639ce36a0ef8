package plugins

import (
	"testing"

	"github.com/tdewolff/svgo"
)

func TestMergePaths(t *testing.T) {
	testPlugin(t, MergePaths, []pluginTest{
		{"disjoint", nil, `<svg><path d="M0 0h10v10z"/><path d="M20 20h10v10z"/></svg>`, `<svg><path d="M0 0h10v10zM20 20h10v10z"/></svg>`},
		{"overlapping", nil, `<svg><path d="M0 0h10v10z"/><path d="M5 5h10v10z"/></svg>`, `<svg><path d="M0 0h10v10z"/><path d="M5 5h10v10z"/></svg>`},
		{"force", svgo.Params{"force": true}, `<svg><path d="M0 0h10v10z"/><path d="M5 5h10v10z"/></svg>`, `<svg><path d="M0 0h10v10zM5 5h10v10z"/></svg>`},
		{"attributes", nil, `<svg><path d="M0 0h10v10z" fill="red"/><path d="M20 20h10v10z" fill="blue"/></svg>`, `<svg><path d="M0 0h10v10z" fill="red"/><path d="M20 20h10v10z" fill="blue"/></svg>`},
		{"marker", nil, `<svg><path d="M0 0h10v10z" marker-end="url(#m)"/><path d="M20 20h10v10z" marker-end="url(#m)"/></svg>`, `<svg><path d="M0 0h10v10z" marker-end="url(#m)"/><path d="M20 20h10v10z" marker-end="url(#m)"/></svg>`},
	})
}

func TestPrefixIds(t *testing.T) {
	testPlugin(t, PrefixIds, []pluginTest{
		{"path", nil, `<svg><rect id="a" class="b c"/><use href="#a"/><rect fill="url(#a)"/></svg>`, `<svg><rect id="test_svg__a" class="test_svg__b test_svg__c"/><use href="#test_svg__a"/><rect fill="url(#test_svg__a)"/></svg>`},
		{"prefix", svgo.Params{"prefix": "p"}, `<svg><rect id="a"/></svg>`, `<svg><rect id="p__a"/></svg>`},
		{"delim", svgo.Params{"prefix": "p", "delim": "-"}, `<svg><rect id="a"/></svg>`, `<svg><rect id="p-a"/></svg>`},
		{"no classes", svgo.Params{"prefix": "p", "prefixClassNames": false}, `<svg><rect id="a" class="b"/></svg>`, `<svg><rect id="p__a" class="b"/></svg>`},
		{"style", svgo.Params{"prefix": "p"}, `<svg><style>.b{fill:url(#a)}</style></svg>`, `<svg><style>.p__b{fill:url(#p__a)}</style></svg>`},
		{"begin", svgo.Params{"prefix": "p"}, `<svg><animate begin="a.end; 1s"/></svg>`, `<svg><animate begin="p__a.end; 1s"/></svg>`},
	})
}

func TestReusePaths(t *testing.T) {
	testPlugin(t, ReusePaths, []pluginTest{
		{"reuse", nil, `<svg><path d="M0 0h10" fill="red"/><path d="M0 0h10" fill="red"/></svg>`, `<svg xmlns:xlink="http://www.w3.org/1999/xlink"><defs><path fill="red" d="M0 0h10" id="reuse-0"/></defs><use xlink:href="#reuse-0"/><use xlink:href="#reuse-0"/></svg>`},
		{"keep id", nil, `<svg><path id="p" d="M0 0h10"/><path d="M0 0h10"/></svg>`, `<svg xmlns:xlink="http://www.w3.org/1999/xlink"><defs><path d="M0 0h10" id="p"/></defs><use xlink:href="#p"/><use xlink:href="#p"/></svg>`},
		{"unique", nil, `<svg><path d="M0 0h10"/><path d="M0 0h20"/></svg>`, `<svg><path d="M0 0h10"/><path d="M0 0h20"/></svg>`},
	})
}

func TestRemoveOffCanvasPaths(t *testing.T) {
	testPlugin(t, RemoveOffCanvasPaths, []pluginTest{
		{"outside", nil, `<svg viewBox="0 0 100 100"><path d="M10 10h10"/><path d="M200 200h10v10z"/></svg>`, `<svg viewBox="0 0 100 100"><path d="M10 10h10"/></svg>`},
		{"crossing", nil, `<svg viewBox="0 0 100 100"><path d="M-10 50H110"/></svg>`, `<svg viewBox="0 0 100 100"><path d="M-10 50H110"/></svg>`},
		{"dimensions", nil, `<svg width="100" height="100"><path d="M200 200h10v10z"/></svg>`, `<svg width="100" height="100"/>`},
		{"transform", nil, `<svg viewBox="0 0 100 100"><g transform="translate(-200 -200)"><path d="M200 200h10v10z"/></g></svg>`, `<svg viewBox="0 0 100 100"><g transform="translate(-200 -200)"><path d="M200 200h10v10z"/></g></svg>`},
	})
}

func TestConvertOneStopGradients(t *testing.T) {
	testPlugin(t, ConvertOneStopGradients, []pluginTest{
		{"one stop", nil, `<svg><defs><linearGradient id="g"><stop stop-color="red"/></linearGradient></defs><rect fill="url(#g)"/></svg>`, `<svg><rect fill="red"/></svg>`},
		{"two stops", nil, `<svg><linearGradient id="g"><stop stop-color="red"/><stop stop-color="blue"/></linearGradient><rect fill="url(#g)"/></svg>`, `<svg><linearGradient id="g"><stop stop-color="red"/><stop stop-color="blue"/></linearGradient><rect fill="url(#g)"/></svg>`},
		{"href", nil, `<svg><linearGradient id="a"><stop stop-color="red"/></linearGradient><radialGradient id="b" href="#a"/><rect fill="url(#b)"/></svg>`, `<svg><rect fill="red"/></svg>`},
	})
}

func TestConvertShapeToPath(t *testing.T) {
	testPlugin(t, ConvertShapeToPath, []pluginTest{
		{"rect", nil, `<svg><rect x="1" y="2" width="3" height="4" fill="red"/></svg>`, `<svg><path fill="red" d="M1 2H4V6H1z"/></svg>`},
		{"line", nil, `<svg><line x1="1" y1="2" x2="3" y2="4"/></svg>`, `<svg><path d="M1 2 3 4"/></svg>`},
		{"polyline", nil, `<svg><polyline points="0,0 10,10 20,0"/></svg>`, `<svg><path d="M0 0 10 10 20 0"/></svg>`},
		{"polygon", nil, `<svg><polygon points="0,0 10,10 20,0"/></svg>`, `<svg><path d="M0 0 10 10 20 0z"/></svg>`},
		{"single point", nil, `<svg><polyline points="1 1"/></svg>`, `<svg/>`},
		{"rounded", nil, `<svg><rect width="3" height="4" rx="1"/></svg>`, `<svg><rect width="3" height="4" rx="1"/></svg>`},
		{"percentage", nil, `<svg><rect width="10%" height="4"/></svg>`, `<svg><rect width="10%" height="4"/></svg>`},
		{"circle", nil, `<svg><circle cx="5" cy="5" r="5"/></svg>`, `<svg><circle cx="5" cy="5" r="5"/></svg>`},
		{"arcs", svgo.Params{"convertArcs": true}, `<svg><circle cx="5" cy="5" r="5"/></svg>`, `<svg><path d="M5 0A5 5 0 1 0 5 10 5 5 0 1 0 5 0z"/></svg>`},
	})
}

func TestMoveGroupAttrsToElems(t *testing.T) {
	testPlugin(t, MoveGroupAttrsToElems, []pluginTest{
		{"transform", nil, `<svg><g transform="scale(2)"><path d="M0 0" transform="rotate(45)"/><g/></g></svg>`, `<svg><g><path d="M0 0" transform="scale(2) rotate(45)"/><g transform="scale(2)"/></g></svg>`},
		{"reference", nil, `<svg><g transform="scale(2)" clip-path="url(#c)"><path d="M0 0"/></g></svg>`, `<svg><g transform="scale(2)" clip-path="url(#c)"><path d="M0 0"/></g></svg>`},
		{"id", nil, `<svg><g transform="scale(2)"><path id="a" d="M0 0"/></g></svg>`, `<svg><g transform="scale(2)"><path id="a" d="M0 0"/></g></svg>`},
		{"rect", nil, `<svg><g transform="scale(2)"><rect/></g></svg>`, `<svg><g transform="scale(2)"><rect/></g></svg>`},
	})
}

func TestSortDefsChildren(t *testing.T) {
	testPlugin(t, SortDefsChildren, []pluginTest{
		{"frequency", nil, `<svg><defs><path id="1"/><linearGradient/><path id="2"/><circle/><rect/></defs></svg>`, `<svg><defs><path id="1"/><path id="2"/><linearGradient/><circle/><rect/></defs></svg>`},
	})
}
