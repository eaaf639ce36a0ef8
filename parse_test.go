package svgo

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseStringify(t *testing.T) {
	var tests = []struct {
		svg      string
		expected string
	}{
		{`<svg></svg>`, `<svg/>`},
		{`<svg  width="10" height='20'/>`, `<svg width="10" height="20"/>`},
		{`<?xml version="1.0" encoding="UTF-8"?><svg/>`, `<?xml version="1.0" encoding="UTF-8"?><svg/>`},
		{`<!DOCTYPE svg><svg/>`, `<!DOCTYPE svg><svg/>`},
		{`<svg><!--  comment  --></svg>`, `<svg><!--comment--></svg>`},
		{"<svg>\n  <g>\n    <path/>\n  </g>\n</svg>", `<svg><g><path/></g></svg>`},
		{`<svg><text> a <tspan>b</tspan> </text></svg>`, `<svg><text> a <tspan>b</tspan> </text></svg>`},
		{`<svg><style><![CDATA[a>b]]></style></svg>`, `<svg><style><![CDATA[a>b]]></style></svg>`},
		{`<svg><text>&lt;&amp;</text></svg>`, `<svg><text>&lt;&amp;</text></svg>`},
		{`<svg title="&quot;a&quot; &amp; b"/>`, `<svg title="&quot;a&quot; &amp; b"/>`},
		{`<!DOCTYPE svg [<!ENTITY ns "http://www.w3.org/2000/svg">]><svg xmlns="&ns;"/>`, `<!DOCTYPE svg [<!ENTITY ns "http://www.w3.org/2000/svg">]><svg xmlns="http://www.w3.org/2000/svg"/>`},
	}
	for _, tt := range tests {
		t.Run(tt.svg, func(t *testing.T) {
			root, err := Parse([]byte(tt.svg), "")
			test.Error(t, err)
			test.String(t, Stringify(root, nil), tt.expected)
		})
	}
}

func TestParseError(t *testing.T) {
	var tests = []struct {
		svg string
		err string
	}{
		{`<svg></g>`, "Unexpected close tag: g"},
		{`<svg x=1/>`, "Unquoted attribute value: x"},
		{`text<svg/>`, "Text data outside of root node."},
	}
	for _, tt := range tests {
		t.Run(tt.svg, func(t *testing.T) {
			_, err := Parse([]byte(tt.svg), "test.svg")
			var perr *ParseError
			test.That(t, errors.As(err, &perr), err)
			test.String(t, perr.Message, tt.err)
			test.String(t, perr.Path, "test.svg")
			test.T(t, perr.Line, 1)
		})
	}
}

func TestParseUnclosed(t *testing.T) {
	root, err := Parse([]byte(`<svg><g>`), "")
	test.Error(t, err)
	test.String(t, Stringify(root, nil), `<svg><g/></svg>`)
}

func TestStringifyOptions(t *testing.T) {
	root := MustParse(`<svg><g><path/></g><text>a <tspan>b</tspan></text></svg>`)

	opts := DefaultStringifyOptions()
	opts.Pretty = true
	test.String(t, Stringify(root, &opts), "<svg>\n    <g>\n        <path/>\n    </g>\n    <text>a <tspan>b</tspan></text>\n</svg>\n")

	opts = DefaultStringifyOptions()
	opts.Pretty = true
	opts.Indent = 1
	opts.EOL = "crlf"
	test.String(t, Stringify(root, &opts), "<svg>\r\n <g>\r\n  <path/>\r\n </g>\r\n <text>a <tspan>b</tspan></text>\r\n</svg>\r\n")

	opts = DefaultStringifyOptions()
	opts.UseShortTags = false
	opts.FinalNewline = true
	test.String(t, Stringify(root, &opts), "<svg><g><path></path></g><text>a <tspan>b</tspan></text></svg>\n")
}
