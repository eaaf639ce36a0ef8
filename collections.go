package svgo

// ElemsGroups are the element categories of SVG 1.1 and 2.
var ElemsGroups = map[string]map[string]bool{
	"animation":        set("animate", "animateColor", "animateMotion", "animateTransform", "set"),
	"descriptive":      set("desc", "metadata", "title"),
	"shape":            set("circle", "ellipse", "line", "path", "polygon", "polyline", "rect"),
	"structural":       set("defs", "g", "svg", "symbol", "use"),
	"paintServer":      set("hatch", "linearGradient", "meshGradient", "pattern", "radialGradient", "solidColor"),
	"nonRendering":     set("clipPath", "filter", "linearGradient", "marker", "mask", "pattern", "radialGradient", "solidColor", "symbol"),
	"container":        set("a", "defs", "foreignObject", "g", "marker", "mask", "missing-glyph", "pattern", "svg", "switch", "symbol"),
	"textContent":      set("a", "altGlyph", "altGlyphDef", "altGlyphItem", "glyph", "glyphRef", "text", "textPath", "tref", "tspan"),
	"textContentChild": set("altGlyph", "textPath", "tref", "tspan"),
	"lightSource":      set("feDiffuseLighting", "feDistantLight", "fePointLight", "feSpecularLighting", "feSpotLight"),
	"filterPrimitive": set("feBlend", "feColorMatrix", "feComponentTransfer", "feComposite", "feConvolveMatrix", "feDiffuseLighting",
		"feDisplacementMap", "feDropShadow", "feFlood", "feFuncA", "feFuncB", "feFuncG", "feFuncR", "feGaussianBlur", "feImage",
		"feMerge", "feMergeNode", "feMorphology", "feOffset", "feSpecularLighting", "feTile", "feTurbulence"),
}

// PathElems are the elements with a d attribute holding path data.
var PathElems = set("glyph", "missing-glyph", "path")

// AttrsGroups are the attribute categories.
var AttrsGroups = map[string]map[string]bool{
	"animationAddition":        set("additive", "accumulate"),
	"animationAttributeTarget": set("attributeType", "attributeName"),
	"animationEvent":           set("onbegin", "onend", "onrepeat", "onload"),
	"animationTiming":          set("begin", "dur", "end", "fill", "max", "min", "repeatCount", "repeatDur", "restart"),
	"animationValue":           set("by", "calcMode", "from", "keySplines", "keyTimes", "to", "values"),
	"conditionalProcessing":    set("requiredExtensions", "requiredFeatures", "systemLanguage"),
	"core":                     set("id", "tabindex", "xml:base", "xml:lang", "xml:space"),
	"graphicalEvent": set("onactivate", "onclick", "onfocusin", "onfocusout", "onload", "onmousedown", "onmousemove",
		"onmouseout", "onmouseover", "onmouseup"),
	"presentation": set("alignment-baseline", "baseline-shift", "clip-path", "clip-rule", "clip", "color-interpolation-filters",
		"color-interpolation", "color-profile", "color-rendering", "color", "cursor", "direction", "display", "dominant-baseline",
		"enable-background", "fill-opacity", "fill-rule", "fill", "filter", "flood-color", "flood-opacity", "font-family",
		"font-size-adjust", "font-size", "font-stretch", "font-style", "font-variant", "font-weight", "glyph-orientation-horizontal",
		"glyph-orientation-vertical", "image-rendering", "letter-spacing", "lighting-color", "marker-end", "marker-mid",
		"marker-start", "mask", "opacity", "overflow", "paint-order", "pointer-events", "shape-rendering", "stop-color",
		"stop-opacity", "stroke-dasharray", "stroke-dashoffset", "stroke-linecap", "stroke-linejoin", "stroke-miterlimit",
		"stroke-opacity", "stroke-width", "stroke", "text-anchor", "text-decoration", "text-overflow", "text-rendering",
		"transform", "transform-origin", "unicode-bidi", "vector-effect", "visibility", "white-space", "word-spacing", "writing-mode"),
	"xlink":                set("xlink:actuate", "xlink:arcrole", "xlink:href", "xlink:role", "xlink:show", "xlink:title", "xlink:type"),
	"documentEvent":        set("onabort", "onerror", "onresize", "onscroll", "onunload", "onzoom"),
	"documentElementEvent": set("oncopy", "oncut", "onpaste"),
	"globalEvent": set("oncancel", "oncanplay", "oncanplaythrough", "onchange", "onclick", "onclose", "oncuechange", "ondblclick",
		"ondrag", "ondragend", "ondragenter", "ondragleave", "ondragover", "ondragstart", "ondrop", "ondurationchange", "onemptied",
		"onended", "onerror", "onfocus", "oninput", "oninvalid", "onkeydown", "onkeypress", "onkeyup", "onload", "onloadeddata",
		"onloadedmetadata", "onloadstart", "onmousedown", "onmouseenter", "onmouseleave", "onmousemove", "onmouseout",
		"onmouseover", "onmouseup", "onmousewheel", "onpause", "onplay", "onplaying", "onprogress", "onratechange", "onreset",
		"onresize", "onscroll", "onseeked", "onseeking", "onselect", "onshow", "onstalled", "onsubmit", "onsuspend",
		"ontimeupdate", "ontoggle", "onvolumechange", "onwaiting"),
	"filterPrimitive":  set("x", "y", "width", "height", "result"),
	"transferFunction": set("amplitude", "exponent", "intercept", "offset", "slope", "tableValues", "type"),
}

// AttrsGroupsDefaults are the initial values per attribute category.
var AttrsGroupsDefaults = map[string]map[string]string{
	"core": {"xml:space": "default"},
	"presentation": {
		"clip":                         "auto",
		"clip-path":                    "none",
		"clip-rule":                    "nonzero",
		"mask":                         "none",
		"opacity":                      "1",
		"stop-color":                   "#000",
		"stop-opacity":                 "1",
		"fill-opacity":                 "1",
		"fill-rule":                    "nonzero",
		"fill":                         "#000",
		"stroke":                       "none",
		"stroke-width":                 "1",
		"stroke-linecap":               "butt",
		"stroke-linejoin":              "miter",
		"stroke-miterlimit":            "4",
		"stroke-dasharray":             "none",
		"stroke-dashoffset":            "0",
		"stroke-opacity":               "1",
		"paint-order":                  "normal",
		"vector-effect":                "none",
		"display":                      "inline",
		"visibility":                   "visible",
		"marker-start":                 "none",
		"marker-mid":                   "none",
		"marker-end":                   "none",
		"color-interpolation":          "sRGB",
		"color-interpolation-filters":  "linearRGB",
		"color-rendering":              "auto",
		"shape-rendering":              "auto",
		"text-rendering":               "auto",
		"image-rendering":              "auto",
		"font-style":                   "normal",
		"font-variant":                 "normal",
		"font-weight":                  "normal",
		"font-stretch":                 "normal",
		"font-size":                    "medium",
		"font-size-adjust":             "none",
		"kerning":                      "auto",
		"letter-spacing":               "normal",
		"word-spacing":                 "normal",
		"text-decoration":              "none",
		"text-anchor":                  "start",
		"text-overflow":                "clip",
		"writing-mode":                 "lr-tb",
		"glyph-orientation-vertical":   "auto",
		"glyph-orientation-horizontal": "0deg",
		"direction":                    "ltr",
		"unicode-bidi":                 "normal",
		"dominant-baseline":            "auto",
		"alignment-baseline":           "baseline",
		"baseline-shift":               "baseline",
	},
	"transferFunction": {
		"slope":     "1",
		"intercept": "0",
		"amplitude": "1",
		"exponent":  "1",
		"offset":    "0",
	},
}

// ElemConfig describes the allowed attributes and children of an element.
type ElemConfig struct {
	AttrsGroups   []string
	Attrs         []string
	Defaults      map[string]string
	ContentGroups []string
	Content       []string

	allowedAttrs    map[string]bool
	allowedChildren map[string]bool
}

// AllowsAttr returns true if the attribute is allowed on the element.
func (c *ElemConfig) AllowsAttr(name string) bool {
	return c.allowedAttrs[name]
}

// AllowsChild returns true if the element may contain an element with the given name. Elements without content model allow any child.
func (c *ElemConfig) AllowsChild(name string) bool {
	if len(c.ContentGroups) == 0 && len(c.Content) == 0 {
		return true
	}
	return c.allowedChildren[name]
}

// Default returns the initial value of the attribute on this element, including the defaults of its attribute groups.
func (c *ElemConfig) Default(name string) (string, bool) {
	if v, ok := c.Defaults[name]; ok {
		return v, true
	}
	for _, group := range c.AttrsGroups {
		if v, ok := AttrsGroupsDefaults[group][name]; ok {
			return v, true
		}
	}
	return "", false
}

var containerContent = []string{"a", "altGlyphDef", "clipPath", "color-profile", "cursor", "filter", "font-face", "font",
	"foreignObject", "image", "marker", "mask", "pattern", "script", "style", "switch", "text", "view"}

var animationGroups = []string{"conditionalProcessing", "core", "animationAddition", "animationAttributeTarget", "animationEvent",
	"animationTiming", "animationValue", "presentation", "xlink"}

var shapeGroups = []string{"conditionalProcessing", "core", "graphicalEvent", "presentation"}

var filterGroups = []string{"core", "presentation", "filterPrimitive"}

// Elems are the known SVG elements.
var Elems = map[string]*ElemConfig{
	"a": {
		AttrsGroups:   []string{"conditionalProcessing", "core", "graphicalEvent", "presentation", "xlink"},
		Attrs:         []string{"class", "externalResourcesRequired", "style", "target", "transform", "href"},
		Defaults:      map[string]string{"target": "_self"},
		ContentGroups: []string{"animation", "descriptive", "paintServer", "shape", "structural"},
		Content:       append([]string{"tspan"}, containerContent...),
	},
	"altGlyphDef": {
		AttrsGroups: []string{"core"},
		Content:     []string{"glyphRef"},
	},
	"animate": {
		AttrsGroups:   animationGroups,
		Attrs:         []string{"externalResourcesRequired"},
		ContentGroups: []string{"descriptive"},
	},
	"animateColor": {
		AttrsGroups:   animationGroups,
		Attrs:         []string{"externalResourcesRequired"},
		ContentGroups: []string{"descriptive"},
	},
	"animateMotion": {
		AttrsGroups:   []string{"conditionalProcessing", "core", "animationAddition", "animationEvent", "animationTiming", "animationValue", "xlink"},
		Attrs:         []string{"externalResourcesRequired", "keyPoints", "origin", "path", "rotate"},
		Defaults:      map[string]string{"rotate": "0"},
		ContentGroups: []string{"descriptive"},
		Content:       []string{"mpath"},
	},
	"animateTransform": {
		AttrsGroups:   []string{"conditionalProcessing", "core", "animationAddition", "animationAttributeTarget", "animationEvent", "animationTiming", "animationValue", "xlink"},
		Attrs:         []string{"externalResourcesRequired", "type"},
		ContentGroups: []string{"descriptive"},
	},
	"circle": {
		AttrsGroups:   shapeGroups,
		Attrs:         []string{"class", "externalResourcesRequired", "style", "transform", "cx", "cy", "r"},
		Defaults:      map[string]string{"cx": "0", "cy": "0"},
		ContentGroups: []string{"animation", "descriptive"},
	},
	"clipPath": {
		AttrsGroups:   []string{"conditionalProcessing", "core", "presentation"},
		Attrs:         []string{"class", "externalResourcesRequired", "style", "transform", "clipPathUnits"},
		Defaults:      map[string]string{"clipPathUnits": "userSpaceOnUse"},
		ContentGroups: []string{"animation", "descriptive", "shape"},
		Content:       []string{"text", "use"},
	},
	"color-profile": {
		AttrsGroups:   []string{"core", "xlink"},
		Attrs:         []string{"local", "name", "rendering-intent"},
		Defaults:      map[string]string{"name": "sRGB", "rendering-intent": "auto"},
		ContentGroups: []string{"descriptive"},
	},
	"cursor": {
		AttrsGroups:   []string{"core", "conditionalProcessing", "xlink"},
		Attrs:         []string{"externalResourcesRequired", "x", "y"},
		Defaults:      map[string]string{"x": "0", "y": "0"},
		ContentGroups: []string{"descriptive"},
	},
	"defs": {
		AttrsGroups:   shapeGroups,
		Attrs:         []string{"class", "externalResourcesRequired", "style", "transform"},
		ContentGroups: []string{"animation", "descriptive", "paintServer", "shape", "structural"},
		Content:       containerContent,
	},
	"desc": {
		AttrsGroups: []string{"core"},
		Attrs:       []string{"class", "style"},
	},
	"ellipse": {
		AttrsGroups:   shapeGroups,
		Attrs:         []string{"class", "externalResourcesRequired", "style", "transform", "cx", "cy", "rx", "ry"},
		Defaults:      map[string]string{"cx": "0", "cy": "0"},
		ContentGroups: []string{"animation", "descriptive"},
	},
	"feBlend": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style", "in", "in2", "mode"},
		Defaults:    map[string]string{"mode": "normal"},
		Content:     []string{"animate", "set"},
	},
	"feColorMatrix": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style", "in", "type", "values"},
		Defaults:    map[string]string{"type": "matrix"},
		Content:     []string{"animate", "set"},
	},
	"feComponentTransfer": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style", "in"},
		Content:     []string{"feFuncA", "feFuncB", "feFuncG", "feFuncR"},
	},
	"feComposite": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style", "in", "in2", "operator", "k1", "k2", "k3", "k4"},
		Defaults:    map[string]string{"operator": "over", "k1": "0", "k2": "0", "k3": "0", "k4": "0"},
		Content:     []string{"animate", "set"},
	},
	"feConvolveMatrix": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style", "in", "kernelMatrix", "order", "divisor", "bias", "targetX", "targetY", "edgeMode", "kernelUnitLength", "preserveAlpha"},
		Defaults:    map[string]string{"order": "3", "bias": "0", "edgeMode": "duplicate", "preserveAlpha": "false"},
		Content:     []string{"animate", "set"},
	},
	"feDiffuseLighting": {
		AttrsGroups:   filterGroups,
		Attrs:         []string{"class", "style", "in", "surfaceScale", "diffuseConstant", "kernelUnitLength"},
		Defaults:      map[string]string{"surfaceScale": "1", "diffuseConstant": "1"},
		ContentGroups: []string{"descriptive"},
		Content:       []string{"feDistantLight", "fePointLight", "feSpotLight"},
	},
	"feDisplacementMap": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style", "in", "in2", "scale", "xChannelSelector", "yChannelSelector"},
		Defaults:    map[string]string{"scale": "0", "xChannelSelector": "A", "yChannelSelector": "A"},
		Content:     []string{"animate", "set"},
	},
	"feDistantLight": {
		AttrsGroups: []string{"core"},
		Attrs:       []string{"azimuth", "elevation"},
		Defaults:    map[string]string{"azimuth": "0", "elevation": "0"},
		Content:     []string{"animate", "set"},
	},
	"feDropShadow": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style", "in", "dx", "dy", "stdDeviation"},
		Defaults:    map[string]string{"dx": "2", "dy": "2", "stdDeviation": "2"},
		Content:     []string{"animate", "script", "set"},
	},
	"feFlood": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style"},
		Content:     []string{"animate", "animateColor", "set"},
	},
	"feFuncA": {AttrsGroups: []string{"core", "transferFunction"}, Content: []string{"set", "animate"}},
	"feFuncB": {AttrsGroups: []string{"core", "transferFunction"}, Content: []string{"set", "animate"}},
	"feFuncG": {AttrsGroups: []string{"core", "transferFunction"}, Content: []string{"set", "animate"}},
	"feFuncR": {AttrsGroups: []string{"core", "transferFunction"}, Content: []string{"set", "animate"}},
	"feGaussianBlur": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style", "in", "stdDeviation"},
		Defaults:    map[string]string{"stdDeviation": "0"},
		Content:     []string{"set", "animate"},
	},
	"feImage": {
		AttrsGroups: append([]string{"xlink"}, filterGroups...),
		Attrs:       []string{"class", "externalResourcesRequired", "href", "preserveAspectRatio", "style", "xlink:href"},
		Defaults:    map[string]string{"preserveAspectRatio": "xMidYMid meet"},
		Content:     []string{"animate", "animateTransform", "set"},
	},
	"feMerge": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style"},
		Content:     []string{"feMergeNode"},
	},
	"feMergeNode": {
		AttrsGroups: []string{"core"},
		Attrs:       []string{"in"},
		Content:     []string{"animate", "set"},
	},
	"feMorphology": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style", "in", "operator", "radius"},
		Defaults:    map[string]string{"operator": "erode", "radius": "0"},
		Content:     []string{"animate", "set"},
	},
	"feOffset": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style", "in", "dx", "dy"},
		Defaults:    map[string]string{"dx": "0", "dy": "0"},
		Content:     []string{"animate", "set"},
	},
	"fePointLight": {
		AttrsGroups: []string{"core"},
		Attrs:       []string{"x", "y", "z"},
		Defaults:    map[string]string{"x": "0", "y": "0", "z": "0"},
		Content:     []string{"animate", "set"},
	},
	"feSpecularLighting": {
		AttrsGroups:   filterGroups,
		Attrs:         []string{"class", "style", "in", "surfaceScale", "specularConstant", "specularExponent", "kernelUnitLength"},
		Defaults:      map[string]string{"surfaceScale": "1", "specularConstant": "1", "specularExponent": "1"},
		ContentGroups: []string{"descriptive", "lightSource"},
	},
	"feSpotLight": {
		AttrsGroups: []string{"core"},
		Attrs:       []string{"x", "y", "z", "pointsAtX", "pointsAtY", "pointsAtZ", "specularExponent", "limitingConeAngle"},
		Defaults:    map[string]string{"x": "0", "y": "0", "z": "0", "pointsAtX": "0", "pointsAtY": "0", "pointsAtZ": "0", "specularExponent": "1"},
		Content:     []string{"animate", "set"},
	},
	"feTile": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style", "in"},
		Content:     []string{"animate", "set"},
	},
	"feTurbulence": {
		AttrsGroups: filterGroups,
		Attrs:       []string{"class", "style", "baseFrequency", "numOctaves", "seed", "stitchTiles", "type"},
		Defaults:    map[string]string{"baseFrequency": "0", "numOctaves": "1", "seed": "0", "stitchTiles": "noStitch", "type": "turbulence"},
		Content:     []string{"animate", "set"},
	},
	"filter": {
		AttrsGroups:   []string{"core", "presentation", "xlink"},
		Attrs:         []string{"class", "style", "externalResourcesRequired", "x", "y", "width", "height", "filterRes", "filterUnits", "primitiveUnits", "href"},
		Defaults:      map[string]string{"primitiveUnits": "userSpaceOnUse", "x": "-10%", "y": "-10%", "width": "120%", "height": "120%"},
		ContentGroups: []string{"descriptive", "filterPrimitive"},
		Content:       []string{"animate", "set"},
	},
	"foreignObject": {
		AttrsGroups: shapeGroups,
		Attrs:       []string{"class", "style", "externalResourcesRequired", "transform", "x", "y", "width", "height"},
		Defaults:    map[string]string{"x": "0", "y": "0"},
	},
	"g": {
		AttrsGroups:   shapeGroups,
		Attrs:         []string{"class", "externalResourcesRequired", "style", "transform"},
		ContentGroups: []string{"animation", "descriptive", "paintServer", "shape", "structural"},
		Content:       containerContent,
	},
	"image": {
		AttrsGroups:   append([]string{"xlink"}, shapeGroups...),
		Attrs:         []string{"class", "externalResourcesRequired", "height", "href", "preserveAspectRatio", "style", "transform", "width", "x", "y"},
		Defaults:      map[string]string{"x": "0", "y": "0", "preserveAspectRatio": "xMidYMid meet"},
		ContentGroups: []string{"animation", "descriptive"},
	},
	"line": {
		AttrsGroups:   shapeGroups,
		Attrs:         []string{"class", "externalResourcesRequired", "style", "transform", "x1", "x2", "y1", "y2"},
		Defaults:      map[string]string{"x1": "0", "y1": "0", "x2": "0", "y2": "0"},
		ContentGroups: []string{"animation", "descriptive"},
	},
	"linearGradient": {
		AttrsGroups:   []string{"core", "presentation", "xlink"},
		Attrs:         []string{"class", "style", "externalResourcesRequired", "x1", "y1", "x2", "y2", "gradientUnits", "gradientTransform", "spreadMethod", "href"},
		Defaults:      map[string]string{"x1": "0", "y1": "0", "x2": "100%", "y2": "0", "spreadMethod": "pad"},
		ContentGroups: []string{"descriptive"},
		Content:       []string{"animate", "animateTransform", "set", "stop"},
	},
	"marker": {
		AttrsGroups:   []string{"core", "presentation"},
		Attrs:         []string{"class", "style", "externalResourcesRequired", "viewBox", "preserveAspectRatio", "refX", "refY", "markerUnits", "markerWidth", "markerHeight", "orient"},
		Defaults:      map[string]string{"markerUnits": "strokeWidth", "refX": "0", "refY": "0", "markerWidth": "3", "markerHeight": "3"},
		ContentGroups: []string{"animation", "descriptive", "shape", "structural", "paintServer"},
		Content:       containerContent,
	},
	"mask": {
		AttrsGroups:   []string{"conditionalProcessing", "core", "presentation"},
		Attrs:         []string{"class", "style", "externalResourcesRequired", "x", "y", "width", "height", "mask-type", "maskUnits", "maskContentUnits"},
		Defaults:      map[string]string{"maskUnits": "objectBoundingBox", "maskContentUnits": "userSpaceOnUse", "x": "-10%", "y": "-10%", "width": "120%", "height": "120%"},
		ContentGroups: []string{"animation", "descriptive", "shape", "structural", "paintServer"},
		Content:       containerContent,
	},
	"metadata": {
		AttrsGroups: []string{"core"},
	},
	"mpath": {
		AttrsGroups:   []string{"core", "xlink"},
		Attrs:         []string{"externalResourcesRequired", "href"},
		ContentGroups: []string{"descriptive"},
	},
	"path": {
		AttrsGroups:   shapeGroups,
		Attrs:         []string{"class", "externalResourcesRequired", "style", "transform", "d", "pathLength"},
		ContentGroups: []string{"animation", "descriptive"},
	},
	"pattern": {
		AttrsGroups:   []string{"conditionalProcessing", "core", "presentation", "xlink"},
		Attrs:         []string{"class", "externalResourcesRequired", "height", "href", "patternContentUnits", "patternTransform", "patternUnits", "preserveAspectRatio", "style", "viewBox", "width", "x", "y"},
		Defaults:      map[string]string{"patternUnits": "objectBoundingBox", "patternContentUnits": "userSpaceOnUse", "x": "0", "y": "0", "width": "0", "height": "0", "preserveAspectRatio": "xMidYMid meet"},
		ContentGroups: []string{"animation", "descriptive", "paintServer", "shape", "structural"},
		Content:       containerContent,
	},
	"polygon": {
		AttrsGroups:   shapeGroups,
		Attrs:         []string{"class", "externalResourcesRequired", "style", "transform", "points"},
		ContentGroups: []string{"animation", "descriptive"},
	},
	"polyline": {
		AttrsGroups:   shapeGroups,
		Attrs:         []string{"class", "externalResourcesRequired", "style", "transform", "points"},
		ContentGroups: []string{"animation", "descriptive"},
	},
	"radialGradient": {
		AttrsGroups:   []string{"core", "presentation", "xlink"},
		Attrs:         []string{"class", "cx", "cy", "externalResourcesRequired", "fr", "fx", "fy", "gradientTransform", "gradientUnits", "href", "r", "spreadMethod", "style"},
		Defaults:      map[string]string{"gradientUnits": "objectBoundingBox", "cx": "50%", "cy": "50%", "r": "50%"},
		ContentGroups: []string{"descriptive"},
		Content:       []string{"animate", "animateTransform", "set", "stop"},
	},
	"rect": {
		AttrsGroups:   shapeGroups,
		Attrs:         []string{"class", "externalResourcesRequired", "height", "rx", "ry", "style", "transform", "width", "x", "y"},
		Defaults:      map[string]string{"x": "0", "y": "0"},
		ContentGroups: []string{"animation", "descriptive"},
	},
	"script": {
		AttrsGroups: []string{"core", "xlink"},
		Attrs:       []string{"externalResourcesRequired", "type", "href"},
	},
	"set": {
		AttrsGroups:   []string{"conditionalProcessing", "core", "animationEvent", "xlink", "animationAttributeTarget", "animationTiming"},
		Attrs:         []string{"externalResourcesRequired", "to"},
		ContentGroups: []string{"descriptive"},
	},
	"solidColor": {
		AttrsGroups:   []string{"core", "presentation"},
		Attrs:         []string{"class", "style"},
		ContentGroups: []string{"paintServer"},
	},
	"stop": {
		AttrsGroups: []string{"core", "presentation"},
		Attrs:       []string{"class", "style", "offset", "path"},
		Content:     []string{"animate", "animateColor", "set"},
	},
	"style": {
		AttrsGroups: []string{"core"},
		Attrs:       []string{"type", "media", "title"},
		Defaults:    map[string]string{"type": "text/css"},
	},
	"svg": {
		AttrsGroups: []string{"conditionalProcessing", "core", "documentEvent", "graphicalEvent", "presentation"},
		Attrs: []string{"baseProfile", "class", "contentScriptType", "contentStyleType", "height", "preserveAspectRatio", "style",
			"version", "viewBox", "width", "x", "y", "zoomAndPan"},
		Defaults: map[string]string{"x": "0", "y": "0", "width": "100%", "height": "100%", "preserveAspectRatio": "xMidYMid meet",
			"zoomAndPan": "magnify", "version": "1.1", "baseProfile": "none", "contentScriptType": "application/ecmascript",
			"contentStyleType": "text/css"},
		ContentGroups: []string{"animation", "descriptive", "paintServer", "shape", "structural"},
		Content:       containerContent,
	},
	"switch": {
		AttrsGroups:   shapeGroups,
		Attrs:         []string{"class", "externalResourcesRequired", "style", "transform"},
		ContentGroups: []string{"animation", "descriptive", "shape"},
		Content:       []string{"a", "foreignObject", "g", "image", "svg", "switch", "text", "use"},
	},
	"symbol": {
		AttrsGroups:   []string{"core", "graphicalEvent", "presentation"},
		Attrs:         []string{"class", "externalResourcesRequired", "preserveAspectRatio", "refX", "refY", "style", "viewBox", "width", "height", "x", "y"},
		Defaults:      map[string]string{"refX": "0", "refY": "0"},
		ContentGroups: []string{"animation", "descriptive", "paintServer", "shape", "structural"},
		Content:       containerContent,
	},
	"text": {
		AttrsGroups:   shapeGroups,
		Attrs:         []string{"class", "dx", "dy", "externalResourcesRequired", "lengthAdjust", "rotate", "style", "textLength", "transform", "x", "y"},
		Defaults:      map[string]string{"x": "0", "y": "0", "lengthAdjust": "spacing"},
		ContentGroups: []string{"animation", "descriptive", "textContentChild"},
		Content:       []string{"a"},
	},
	"textPath": {
		AttrsGroups:   append([]string{"xlink"}, shapeGroups...),
		Attrs:         []string{"class", "d", "externalResourcesRequired", "href", "method", "spacing", "startOffset", "style"},
		Defaults:      map[string]string{"startOffset": "0", "method": "align", "spacing": "exact"},
		ContentGroups: []string{"descriptive"},
		Content:       []string{"a", "altGlyph", "animate", "animateColor", "set", "tref", "tspan"},
	},
	"title": {
		AttrsGroups: []string{"core"},
		Attrs:       []string{"class", "style"},
	},
	"tref": {
		AttrsGroups:   append([]string{"xlink"}, shapeGroups...),
		Attrs:         []string{"class", "externalResourcesRequired", "href", "style"},
		ContentGroups: []string{"descriptive"},
		Content:       []string{"animate", "animateColor", "set"},
	},
	"tspan": {
		AttrsGroups:   shapeGroups,
		Attrs:         []string{"class", "dx", "dy", "externalResourcesRequired", "lengthAdjust", "rotate", "style", "textLength", "x", "y"},
		ContentGroups: []string{"descriptive"},
		Content:       []string{"a", "altGlyph", "animate", "animateColor", "set", "tref", "tspan"},
	},
	"use": {
		AttrsGroups:   append([]string{"xlink"}, shapeGroups...),
		Attrs:         []string{"class", "externalResourcesRequired", "height", "href", "style", "transform", "width", "x", "y"},
		Defaults:      map[string]string{"x": "0", "y": "0"},
		ContentGroups: []string{"animation", "descriptive"},
	},
	"view": {
		AttrsGroups:   []string{"core"},
		Attrs:         []string{"externalResourcesRequired", "preserveAspectRatio", "viewBox", "viewTarget", "zoomAndPan"},
		ContentGroups: []string{"descriptive"},
	},
}

func init() {
	for _, elem := range Elems {
		elem.allowedAttrs = map[string]bool{}
		for _, group := range elem.AttrsGroups {
			for name := range AttrsGroups[group] {
				elem.allowedAttrs[name] = true
			}
		}
		for _, name := range elem.Attrs {
			elem.allowedAttrs[name] = true
		}
		elem.allowedChildren = map[string]bool{}
		for _, group := range elem.ContentGroups {
			for name := range ElemsGroups[group] {
				elem.allowedChildren[name] = true
			}
		}
		for _, name := range elem.Content {
			elem.allowedChildren[name] = true
		}
	}
}

// InheritableAttrs are the presentation attributes that are inherited by default.
var InheritableAttrs = set("clip-rule", "color-interpolation-filters", "color-interpolation", "color-profile", "color-rendering",
	"color", "cursor", "direction", "dominant-baseline", "fill-opacity", "fill-rule", "fill", "font-family", "font-size-adjust",
	"font-size", "font-stretch", "font-style", "font-variant", "font-weight", "font", "glyph-orientation-horizontal",
	"glyph-orientation-vertical", "image-rendering", "letter-spacing", "marker-end", "marker-mid", "marker-start", "marker",
	"paint-order", "pointer-events", "shape-rendering", "stroke-dasharray", "stroke-dashoffset", "stroke-linecap",
	"stroke-linejoin", "stroke-miterlimit", "stroke-opacity", "stroke-width", "stroke", "text-anchor", "text-rendering",
	"transform", "visibility", "word-spacing", "writing-mode")

// PresentationNonInheritableGroupAttrs are presentation attributes on groups that do not pass to their children.
var PresentationNonInheritableGroupAttrs = set("clip-path", "display", "filter", "mask", "opacity", "text-decoration",
	"transform", "unicode-bidi")

// ReferencesProps are the attributes whose value may contain url() references.
var ReferencesProps = set("clip-path", "color-profile", "fill", "filter", "marker-end", "marker-mid", "marker-start", "mask",
	"stroke", "style")

// EditorNamespaces are the namespaces of editor specific data.
var EditorNamespaces = set(
	"http://creativecommons.org/ns#",
	"http://inkscape.sourceforge.net/DTD/sodipodi-0.dtd",
	"http://ns.adobe.com/AdobeIllustrator/10.0/",
	"http://ns.adobe.com/AdobeSVGViewerExtensions/3.0/",
	"http://ns.adobe.com/Extensibility/1.0/",
	"http://ns.adobe.com/Flows/1.0/",
	"http://ns.adobe.com/GenericCustomNamespace/1.0/",
	"http://ns.adobe.com/Graphs/1.0/",
	"http://ns.adobe.com/ImageReplacement/1.0/",
	"http://ns.adobe.com/SaveForWeb/1.0/",
	"http://ns.adobe.com/Variables/1.0/",
	"http://ns.adobe.com/XPath/1.0/",
	"http://purl.org/dc/elements/1.1/",
	"http://schemas.microsoft.com/visio/2003/SVGExtensions/",
	"http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd",
	"http://taptrix.com/vectorillustrator/svg_extensions",
	"http://www.bohemiancoding.com/sketch/ns",
	"http://www.figma.com/figma/ns",
	"http://www.inkscape.org/namespaces/inkscape",
	"http://www.serif.com/",
	"http://www.vector.evaxdesign.com/",
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"https://boxy-svg.com",
)

// ColorsProps are the attributes that hold a color.
var ColorsProps = set("color", "fill", "flood-color", "lighting-color", "stop-color", "stroke")

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, name := range names {
		m[name] = true
	}
	return m
}
