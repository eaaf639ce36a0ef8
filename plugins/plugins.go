// Package plugins contains the optimization passes and the default preset.
package plugins

import (
	"github.com/tdewolff/svgo"
)

// PresetDefault are the plugins of the default preset in order.
var PresetDefault = []string{
	"removeDoctype",
	"removeXMLProcInst",
	"removeComments",
	"removeMetadata",
	"removeEditorsNSData",
	"cleanupAttrs",
	"mergeStyles",
	"inlineStyles",
	"minifyStyles",
	"cleanupIds",
	"removeUselessDefs",
	"cleanupNumericValues",
	"convertColors",
	"removeUnknownsAndDefaults",
	"removeNonInheritableGroupAttrs",
	"removeUselessStrokeAndFill",
	"cleanupEnableBackground",
	"removeHiddenElems",
	"removeEmptyText",
	"convertShapeToPath",
	"convertEllipseToCircle",
	"moveElemsAttrsToGroup",
	"moveGroupAttrsToElems",
	"collapseGroups",
	"convertPathData",
	"convertTransform",
	"removeEmptyAttrs",
	"removeEmptyContainers",
	"mergePaths",
	"removeUnusedNS",
	"sortAttrs",
	"sortDefsChildren",
	"removeDesc",
}

// Default is the default preset.
var Default = &svgo.Plugin{
	Name:        svgo.DefaultPreset,
	Description: "runs the default set of optimizations",
	Plugins:     PresetDefault,
}

// All are all builtin plugins and presets.
var All = []*svgo.Plugin{
	Default,
	AddAttributesToSVGElement,
	AddClassesToSVGElement,
	CleanupAttrs,
	CleanupEnableBackground,
	CleanupIds,
	CleanupListOfValues,
	CleanupNumericValues,
	CollapseGroups,
	ConvertColors,
	ConvertEllipseToCircle,
	ConvertOneStopGradients,
	ConvertPathData,
	ConvertShapeToPath,
	ConvertStyleToAttrs,
	ConvertTransform,
	InlineStyles,
	MergePaths,
	MergeStyles,
	MinifyStyles,
	MoveElemsAttrsToGroup,
	MoveGroupAttrsToElems,
	PrefixIds,
	RemoveAttributesBySelector,
	RemoveAttrs,
	RemoveComments,
	RemoveDesc,
	RemoveDimensions,
	RemoveDoctype,
	RemoveEditorsNSData,
	RemoveElementsByAttr,
	RemoveEmptyAttrs,
	RemoveEmptyContainers,
	RemoveEmptyText,
	RemoveHiddenElems,
	RemoveMetadata,
	RemoveNonInheritableGroupAttrs,
	RemoveOffCanvasPaths,
	RemoveRasterImages,
	RemoveScripts,
	RemoveStyleElement,
	RemoveTitle,
	RemoveUnknownsAndDefaults,
	RemoveUnusedNS,
	RemoveUselessDefs,
	RemoveUselessStrokeAndFill,
	RemoveViewBox,
	RemoveXlink,
	RemoveXMLNS,
	RemoveXMLProcInst,
	ReusePaths,
	SortAttrs,
	SortDefsChildren,
}

// Builtin is the registry of all builtin plugins.
var Builtin = svgo.NewRegistry(All...)
