package plugins

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/svgo"
)

// absoluteLengths are the number of pixels per unit.
var absoluteLengths = map[string]float64{
	"cm": 96.0 / 2.54,
	"mm": 96.0 / 25.4,
	"in": 96.0,
	"pt": 4.0 / 3.0,
	"pc": 16.0,
	"px": 1.0,
}

var numericUnits = map[string]bool{"": true, "px": true, "pt": true, "pc": true, "mm": true, "cm": true, "m": true, "in": true, "ft": true, "em": true, "ex": true, "%": true}

type numericOptions struct {
	precision   int
	leadingZero bool
	defaultPx   bool
	convertToPx bool
}

func numericParams(params svgo.Params) numericOptions {
	return numericOptions{
		precision:   precision(params, "floatPrecision", 3),
		leadingZero: params.Bool("leadingZero", true),
		defaultPx:   params.Bool("defaultPx", true),
		convertToPx: params.Bool("convertToPx", true),
	}
}

// splitDimension splits a number with an optional unit, it returns false if s is not a dimension.
func splitDimension(s string) (float64, string, bool) {
	b := []byte(s)
	num, unit := parse.Dimension(b)
	if num == 0 || num+unit != len(b) {
		return 0.0, "", false
	}
	f, n := strconv.ParseFloat(b[:num])
	if n != num {
		return 0.0, "", false
	}
	return f, s[num:], true
}

func formatNumeric(f float64, opts numericOptions) string {
	s := svgo.FormatNumberPrec(f, opts.precision)
	if !opts.leadingZero {
		if strings.HasPrefix(s, ".") {
			s = "0" + s
		} else if strings.HasPrefix(s, "-.") {
			s = "-0" + s[1:]
		}
	}
	return s
}

// cleanupNumeric rounds a dimension, converts absolute units to pixels when shorter and removes the px unit.
func cleanupNumeric(value string, opts numericOptions) (string, bool) {
	f, unit, ok := splitDimension(value)
	if !ok || !numericUnits[unit] {
		return value, false
	}
	if 0 <= opts.precision {
		f = svgo.ToFixed(f, opts.precision)
	}
	if opts.convertToPx && unit != "" && unit != "px" {
		if px, ok := absoluteLengths[unit]; ok {
			pxNum := f * px
			if 0 <= opts.precision {
				pxNum = svgo.ToFixed(pxNum, opts.precision)
			}
			if len(svgo.FormatNumber(pxNum)) < len(value) {
				f, unit = pxNum, "px"
			}
		}
	}
	if opts.defaultPx && unit == "px" {
		unit = ""
	}
	return formatNumeric(f, opts) + unit, true
}

// CleanupNumericValues rounds numeric values to the precision, converts absolute units to pixels and removes default units.
var CleanupNumericValues = &svgo.Plugin{
	Name:        "cleanupNumericValues",
	Description: "rounds numeric values to the fixed precision, removes default 'px' units",
	Fn: func(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
		opts := numericParams(params)
		return svgo.ElementVisitor(func(n *svgo.Node) {
			for i, attr := range n.Attrs {
				switch attr.Name {
				case "version":
					continue
				case "viewBox":
					nums, ok := parseNumbers(attr.Value)
					if !ok {
						continue
					}
					parts := make([]string, len(nums))
					for j, f := range nums {
						if 0 <= opts.precision {
							f = svgo.ToFixed(f, opts.precision)
						}
						parts[j] = formatNumeric(f, opts)
					}
					n.Attrs[i].Value = strings.Join(parts, " ")
				default:
					if value, ok := cleanupNumeric(attr.Value, opts); ok {
						n.Attrs[i].Value = value
					}
				}
			}
		})
	},
}
