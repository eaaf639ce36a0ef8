package plugins

import (
	"strings"
	"testing"

	"github.com/tdewolff/svgo"
	"github.com/tdewolff/test"
	"go.uber.org/zap"
)

type pluginTest struct {
	name     string
	params   svgo.Params
	svg      string
	expected string
}

func runPlugin(t *testing.T, plugin *svgo.Plugin, params svgo.Params, svg string) string {
	t.Helper()
	root, err := svgo.Parse([]byte(svg), "test.svg")
	test.Error(t, err)
	info := &svgo.Info{
		Path:   "test.svg",
		Logger: zap.NewNop(),
	}
	if params == nil {
		params = svgo.Params{}
	}
	if v := plugin.Fn(root, params, info); v != nil {
		svgo.Visit(root, v)
	}
	return svgo.Stringify(root, nil)
}

func testPlugin(t *testing.T, plugin *svgo.Plugin, tests []pluginTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.String(t, runPlugin(t, plugin, tt.params, tt.svg), tt.expected)
		})
	}
}

func TestBuiltin(t *testing.T) {
	for _, plugin := range All {
		p, ok := Builtin.Get(plugin.Name)
		test.That(t, ok, plugin.Name)
		test.That(t, p == plugin, plugin.Name)
	}
	for _, name := range PresetDefault {
		p, ok := Builtin.Get(name)
		test.That(t, ok, name)
		test.That(t, !p.IsPreset(), name)
	}
	test.That(t, Default.IsPreset())
}

func TestOptimizeDefault(t *testing.T) {
	var tests = []struct {
		name     string
		svg      string
		expected string
	}{
		{"prolog", `<?xml version="1.0" encoding="UTF-8"?><!DOCTYPE svg><!-- comment --><svg xmlns="http://www.w3.org/2000/svg"><g></g></svg>`, `<svg xmlns="http://www.w3.org/2000/svg"/>`},
		{"metadata", `<svg xmlns="http://www.w3.org/2000/svg"><metadata>x</metadata><desc>Created with Tool</desc><rect width="10" height="10"/></svg>`, `<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0h10v10H0z"/></svg>`},
		{"colors", `<svg xmlns="http://www.w3.org/2000/svg"><path fill="#FF0000" d="M0 0h10v10H0z"/></svg>`, `<svg xmlns="http://www.w3.org/2000/svg"><path fill="red" d="M0 0h10v10H0z"/></svg>`},
		{"hidden", `<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0h10v10H0z" display="none"/></svg>`, `<svg xmlns="http://www.w3.org/2000/svg"/>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svgo.Optimize([]byte(tt.svg), Builtin, nil)
			test.Error(t, err)
			test.String(t, res.Data, tt.expected)
		})
	}
}

func TestOptimizeMultipass(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><g><g><path d="M0 0h10v10H0z"/></g></g></svg>`
	res, err := svgo.Optimize([]byte(svg), Builtin, &svgo.Config{
		Multipass: true,
		Plugins:   []svgo.PluginConfig{{Name: svgo.DefaultPreset}},
	})
	test.Error(t, err)
	test.String(t, res.Data, `<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0h10v10H0z"/></svg>`)
}

func TestOptimizeOverrides(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><!-- keep --><g/></svg>`
	res, err := svgo.Optimize([]byte(svg), Builtin, &svgo.Config{
		Plugins: []svgo.PluginConfig{{
			Name: svgo.DefaultPreset,
			Params: svgo.Params{
				"overrides": map[string]any{
					"removeComments": false,
				},
			},
		}},
	})
	test.Error(t, err)
	test.String(t, res.Data, `<svg xmlns="http://www.w3.org/2000/svg"><!--keep--></svg>`)
}

func TestOptimizeIdempotent(t *testing.T) {
	var tests = []string{
		`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"><g><rect x="1" y="2" width="10" height="10" fill="#FF0000"/></g></svg>`,
		`<svg xmlns="http://www.w3.org/2000/svg"><style>.a{fill:red}</style><rect class="a" width="10" height="10"/></svg>`,
		`<svg xmlns="http://www.w3.org/2000/svg"><g transform="translate(10 10)"><path d="M 0 0 C 10 10 20 10 30 0 S 50 -10 60 0"/></g></svg>`,
		`<svg xmlns="http://www.w3.org/2000/svg"><defs><linearGradient id="gradient"><stop offset="0" stop-color="red"/></linearGradient></defs><circle cx="5" cy="5" r="5" fill="url(#gradient)"/></svg>`,
	}
	for _, svg := range tests {
		t.Run(svg, func(t *testing.T) {
			first, err := svgo.Optimize([]byte(svg), Builtin, nil)
			test.Error(t, err)
			second, err := svgo.Optimize([]byte(first.Data), Builtin, nil)
			test.Error(t, err)
			test.That(t, len(first.Data) <= len(second.Data), "second pass shrunk", first.Data, "to", second.Data)
			test.String(t, second.Data, first.Data)
		})
	}
}

func TestOptimizeDynamicStyle(t *testing.T) {
	var tests = []struct {
		name  string
		style string
	}{
		{"media", `@media print{.a{fill:red}}`},
		{"hover", `.a:hover{fill:red}`},
		{"first-child", `.a:first-child{fill:red}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := `<svg xmlns="http://www.w3.org/2000/svg"><style>` + tt.style + `</style><path class="a" fill="#123456" d="M0 0h10v10H0z"/></svg>`
			res, err := svgo.Optimize([]byte(svg), Builtin, nil)
			test.Error(t, err)
			test.That(t, strings.Contains(res.Data, `class="a"`), res.Data)
			test.That(t, strings.Contains(res.Data, `fill="#123456"`), res.Data)
			test.That(t, !strings.Contains(res.Data, `fill="red"`), res.Data)
			test.That(t, strings.Contains(res.Data, "<style>"), res.Data)
		})
	}
}
