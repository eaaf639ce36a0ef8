package plugins

import (
	"testing"

	"github.com/tdewolff/svgo"
)

func TestSortAttrs(t *testing.T) {
	testPlugin(t, SortAttrs, []pluginTest{
		{"order", nil, `<svg><rect fill-opacity=".5" x="1" id="a" fill="red" data-foo="b" xlink:href="#c"/></svg>`, `<svg><rect xlink:href="#c" id="a" x="1" fill="red" fill-opacity=".5" data-foo="b"/></svg>`},
		{"xmlns", nil, `<svg xmlns:xlink="http://www.w3.org/1999/xlink" width="1" xmlns="http://www.w3.org/2000/svg"/>`, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="1"/>`},
		{"alphabetical", svgo.Params{"xmlnsOrder": "alphabetical"}, `<svg xmlns:xlink="http://www.w3.org/1999/xlink" width="1" xmlns="http://www.w3.org/2000/svg"/>`, `<svg xmlns:xlink="http://www.w3.org/1999/xlink" width="1" xmlns="http://www.w3.org/2000/svg"/>`},
	})
}

func TestMergeStyles(t *testing.T) {
	testPlugin(t, MergeStyles, []pluginTest{
		{"media", nil, `<svg><style>.a{fill:red}</style><style media="print">.b{fill:blue}</style><style> </style></svg>`, `<svg><style>.a{fill:red}@media print{.b{fill:blue}}</style></svg>`},
		{"single", nil, `<svg><style>.a{fill:red}</style></svg>`, `<svg><style>.a{fill:red}</style></svg>`},
	})
}

func TestMinifyStyles(t *testing.T) {
	testPlugin(t, MinifyStyles, []pluginTest{
		{"element", nil, `<svg><style>.a { fill : red ; }</style></svg>`, `<svg><style>.a{fill:red}</style></svg>`},
		{"attribute", nil, `<svg><rect style="fill: red ; stroke : none"/></svg>`, `<svg><rect style="fill:red;stroke:none"/></svg>`},
		{"empty", nil, `<svg><style>/* comment */</style><rect style=" "/></svg>`, `<svg><rect/></svg>`},
		{"selector list", nil, `<svg><style>.a , g > rect { fill : red }</style></svg>`, `<svg><style>.a,g>rect{fill:red}</style></svg>`},
	})
}

func TestInlineStyles(t *testing.T) {
	testPlugin(t, InlineStyles, []pluginTest{
		{"class", nil, `<svg><style>.a{fill:red}</style><rect class="a"/></svg>`, `<svg><rect style="fill:red"/></svg>`},
		{"matched twice", nil, `<svg><style>.a{fill:red}</style><rect class="a"/><circle class="a"/></svg>`, `<svg><style>.a{fill:red}</style><rect class="a"/><circle class="a"/></svg>`},
		{"existing", nil, `<svg><style>rect{fill:red;stroke:blue}</style><rect style="fill:green"/></svg>`, `<svg><rect style="fill:green;stroke:blue"/></svg>`},
		{"pseudo", nil, `<svg><style>rect:hover{fill:red}</style><rect/></svg>`, `<svg><style>rect:hover{fill:red}</style><rect/></svg>`},
		{"selector list", nil, `<svg><style>.a, .b{fill:red}</style><rect class="a"/><circle class="b"/></svg>`, `<svg><rect style="fill:red"/><circle style="fill:red"/></svg>`},
		{"selector list partly", nil, `<svg><style>.a, rect{fill:red}</style><rect class="a"/><rect/></svg>`, `<svg><style>rect{fill:red}</style><rect style="fill:red"/><rect/></svg>`},
	})
}

func TestConvertStyleToAttrs(t *testing.T) {
	testPlugin(t, ConvertStyleToAttrs, []pluginTest{
		{"presentation", nil, `<svg><rect style="fill:red;stroke-width:2;foo:bar"/></svg>`, `<svg><rect style="foo:bar" fill="red" stroke-width="2"/></svg>`},
		{"all", nil, `<svg><text style="font-family:'Arial'"/></svg>`, `<svg><text font-family="Arial"/></svg>`},
		{"important", svgo.Params{"keepImportant": true}, `<svg><rect style="fill:red!important;stroke:blue"/></svg>`, `<svg><rect style="fill:red!important" stroke="blue"/></svg>`},
	})
}

func TestCollapseGroups(t *testing.T) {
	testPlugin(t, CollapseGroups, []pluginTest{
		{"nested", nil, `<svg><g><g><path d="M0 0"/></g></g></svg>`, `<svg><path d="M0 0"/></svg>`},
		{"move attrs", nil, `<svg><g fill="red"><path d="M0 0"/></g></svg>`, `<svg><path d="M0 0" fill="red"/></svg>`},
		{"transform", nil, `<svg><g transform="scale(2)"><path d="M0 0" transform="rotate(45)"/></g></svg>`, `<svg><path d="M0 0" transform="scale(2) rotate(45)"/></svg>`},
		{"filter", nil, `<svg><g filter="url(#f)"><path d="M0 0"/></g></svg>`, `<svg><g filter="url(#f)"><path d="M0 0"/></g></svg>`},
		{"id", nil, `<svg><g fill="red"><path id="a" d="M0 0"/></g></svg>`, `<svg><g fill="red"><path id="a" d="M0 0"/></g></svg>`},
	})
}

func TestMoveElemsAttrsToGroup(t *testing.T) {
	testPlugin(t, MoveElemsAttrsToGroup, []pluginTest{
		{"common", nil, `<svg><g><rect fill="red"/><circle fill="red"/></g></svg>`, `<svg><g fill="red"><rect/><circle/></g></svg>`},
		{"different", nil, `<svg><g><rect fill="red"/><circle fill="blue"/></g></svg>`, `<svg><g><rect fill="red"/><circle fill="blue"/></g></svg>`},
		{"paths transform", nil, `<svg><g><path transform="scale(2)"/><path transform="scale(2)"/></g></svg>`, `<svg><g><path transform="scale(2)"/><path transform="scale(2)"/></g></svg>`},
		{"style", nil, `<svg><style>rect{}</style><g><rect fill="red"/><circle fill="red"/></g></svg>`, `<svg><style>rect{}</style><g><rect fill="red"/><circle fill="red"/></g></svg>`},
	})
}
