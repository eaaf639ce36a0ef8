package plugins

import (
	"regexp"
	"strings"

	"github.com/tdewolff/svgo"
)

var rgbRegexp = regexp.MustCompile(`^rgb\(\s*([^)]*?)\s*\)$`)

// ConvertColors converts colors to their shortest form: color names and rgb() to hex, #aabbcc to #abc and hex to shorter names. Optionally all colors are replaced by currentColor.
var ConvertColors = &svgo.Plugin{
	Name:        "convertColors",
	Description: "converts colors: rgb() to #rrggbb and #rrggbb to #rgb",
	Fn:          convertColors,
}

func convertColors(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	currentColor := params.Bool("currentColor", false)
	currentColorName := params.String("currentColor", "")
	names2hex := params.Bool("names2hex", true)
	rgb2hex := params.Bool("rgb2hex", true)
	convertCase := params.String("convertCase", "lower")
	if b, ok := params["convertCase"].(bool); ok && !b {
		convertCase = ""
	}
	shorthex := params.Bool("shorthex", true)
	shortname := params.Bool("shortname", true)

	maskDepth := 0
	return &svgo.Visitor{
		Element: svgo.Hooks{
			Enter: func(n *svgo.Node) svgo.Action {
				if n.Name == "mask" {
					maskDepth++
				}
				for i, attr := range n.Attrs {
					if !svgo.ColorsProps[attr.Name] {
						continue
					}
					val := attr.Value
					if (currentColor || currentColorName != "") && maskDepth == 0 {
						if currentColorName != "" && val == currentColorName || currentColorName == "" && val != "none" {
							val = "currentColor"
						}
					}
					if names2hex {
						if hex, ok := svgo.ColorsNames[strings.ToLower(val)]; ok {
							val = hex
						}
					}
					if rgb2hex {
						if m := rgbRegexp.FindStringSubmatch(val); m != nil {
							if hex, ok := svgo.RGBToHex(m[1]); ok {
								val = hex
							}
						}
					}
					if convertCase != "" && !svgo.IncludesURLReference(val) && val != "currentColor" {
						if convertCase == "lower" {
							val = strings.ToLower(val)
						} else if convertCase == "upper" {
							val = strings.ToUpper(val)
						}
					}
					if shorthex && strings.HasPrefix(val, "#") {
						val = svgo.ShortHex(val)
					}
					if shortname {
						if name, ok := svgo.ColorsShortNames[strings.ToLower(val)]; ok {
							val = name
						}
					}
					n.Attrs[i].Value = val
				}
				return svgo.Continue
			},
			Exit: func(n *svgo.Node) {
				if n.Name == "mask" {
					maskDepth--
				}
			},
		},
	}
}
