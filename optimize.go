package svgo

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
)

// MaxMultipass is the maximum number of optimization cycles in multipass mode.
const MaxMultipass = 10

// Params are the parameters of a plugin, as decoded from the configuration.
type Params map[string]any

// Has returns true if the parameter is set.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Bool returns a boolean parameter or def.
func (p Params) Bool(name string, def bool) bool {
	if v, ok := p[name].(bool); ok {
		return v
	}
	return def
}

// Int returns an integer parameter or def.
func (p Params) Int(name string, def int) int {
	switch v := p[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// Float returns a number parameter or def.
func (p Params) Float(name string, def float64) float64 {
	switch v := p[name].(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case float64:
		return v
	}
	return def
}

// String returns a string parameter or def.
func (p Params) String(name, def string) string {
	if v, ok := p[name].(string); ok {
		return v
	}
	return def
}

// Strings returns a parameter that is a string or a list of strings.
func (p Params) Strings(name string) []string {
	switch v := p[name].(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		strs := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				strs = append(strs, s)
			}
		}
		return strs
	}
	return nil
}

// Map returns a parameter that is a mapping.
func (p Params) Map(name string) map[string]any {
	switch v := p[name].(type) {
	case map[string]any:
		return v
	case Params:
		return v
	}
	return nil
}

func mergeParams(ps ...map[string]any) Params {
	merged := Params{}
	for _, p := range ps {
		for k, v := range p {
			merged[k] = v
		}
	}
	return merged
}

// Info is passed to every plugin invocation.
type Info struct {
	Path           string
	MultipassCount int
	Logger         *zap.Logger
}

// PluginFunc prepares a plugin for a document. It may modify the tree directly and return nil, or return a visitor that is run over the tree.
type PluginFunc func(root *Node, params Params, info *Info) *Visitor

// Plugin is an optimization pass. A preset is a plugin that runs a list of other plugins.
type Plugin struct {
	Name        string
	Description string
	Fn          PluginFunc
	Plugins     []string // plugins run by a preset
}

// IsPreset returns true if the plugin is a preset.
func (p *Plugin) IsPreset() bool {
	return p.Fn == nil && p.Plugins != nil
}

// Registry is an immutable set of plugins and presets by name.
type Registry struct {
	plugins map[string]*Plugin
}

// NewRegistry returns a registry of the given plugins.
func NewRegistry(plugins ...*Plugin) *Registry {
	r := &Registry{plugins: make(map[string]*Plugin, len(plugins))}
	for _, p := range plugins {
		r.plugins[p.Name] = p
	}
	return r
}

// Get returns the plugin by name.
func (r *Registry) Get(name string) (*Plugin, bool) {
	if r == nil {
		return nil, false
	}
	p, ok := r.plugins[name]
	return p, ok
}

// Names returns the sorted plugin names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownPluginError is returned for a plugin name that is not registered.
type UnknownPluginError struct {
	Name string
}

func (e *UnknownPluginError) Error() string {
	return fmt.Sprintf("unknown plugin %q", e.Name)
}

// PluginConfig configures one plugin. Fn may be set for custom plugins that are not in the registry.
type PluginConfig struct {
	Name   string     `yaml:"name"`
	Params Params     `yaml:"params"`
	Fn     PluginFunc `yaml:"-"`
}

// Config configures Optimize.
type Config struct {
	Path           string            `yaml:"path"`
	Multipass      bool              `yaml:"multipass"`
	FloatPrecision *int              `yaml:"floatPrecision"` // overrides the precision of all plugins
	Plugins        []PluginConfig    `yaml:"plugins"`
	JS2SVG         *StringifyOptions `yaml:"js2svg"`
	DataURI        string            `yaml:"datauri"` // base64, enc or unenc
	Logger         *zap.Logger       `yaml:"-"`
}

// DefaultPreset is the name of the default preset.
const DefaultPreset = "preset-default"

// DefaultConfig returns a configuration running the default preset.
func DefaultConfig() *Config {
	return &Config{
		Plugins: []PluginConfig{{Name: DefaultPreset}},
	}
}

// Result is the optimized document.
type Result struct {
	Data string
}

// Optimize parses, optimizes and serializes a document. In multipass mode the output is optimized again while its size decreases, up to MaxMultipass cycles, and the smallest output is returned.
func Optimize(data []byte, registry *Registry, config *Config) (*Result, error) {
	if config == nil {
		config = DefaultConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	js2svg := config.JS2SVG
	if js2svg == nil {
		opts := DefaultStringifyOptions()
		js2svg = &opts
	}
	globalOverrides := Params{}
	if config.FloatPrecision != nil {
		globalOverrides["floatPrecision"] = *config.FloatPrecision
	}

	maxPasses := 1
	if config.Multipass {
		maxPasses = MaxMultipass
	}
	info := &Info{
		Path:   config.Path,
		Logger: logger,
	}

	best := ""
	bestLen := math.MaxInt
	input := data
	for i := 0; i < maxPasses; i++ {
		info.MultipassCount = i
		root, err := Parse(input, config.Path)
		if err != nil {
			return nil, err
		}
		if err := invokePlugins(root, info, registry, config.Plugins, nil, globalOverrides); err != nil {
			return nil, err
		}
		output := Stringify(root, js2svg)
		logger.Debug("optimized", zap.String("path", config.Path), zap.Int("pass", i+1), zap.Int("size", len(output)))
		if bestLen <= len(output) {
			break
		}
		best, bestLen = output, len(output)
		input = []byte(output)
	}

	if config.DataURI != "" {
		uri, err := EncodeDataURI(best, config.DataURI)
		if err != nil {
			return nil, err
		}
		best = uri
	}
	return &Result{Data: best}, nil
}

// invokePlugins runs the plugins in order. Overrides are the per-plugin overrides of a preset: false disables a plugin and a mapping is merged into its parameters.
func invokePlugins(root *Node, info *Info, registry *Registry, plugins []PluginConfig, overrides map[string]any, globalOverrides Params) error {
	for _, pc := range plugins {
		override := overrides[pc.Name]
		if disabled, ok := override.(bool); ok && !disabled {
			continue
		}
		overrideParams := Params(overrides).Map(pc.Name)
		params := mergeParams(pc.Params, globalOverrides, overrideParams)

		fn := pc.Fn
		if fn == nil {
			plugin, ok := registry.Get(pc.Name)
			if !ok {
				return &UnknownPluginError{pc.Name}
			}
			if plugin.IsPreset() {
				presetOverrides := params.Map("overrides")
				for name := range presetOverrides {
					if !containsString(plugin.Plugins, name) {
						info.Logger.Warn("override of plugin that is not in preset", zap.String("preset", plugin.Name), zap.String("plugin", name))
					}
				}
				configs := make([]PluginConfig, len(plugin.Plugins))
				for i, name := range plugin.Plugins {
					configs[i] = PluginConfig{Name: name}
				}
				if err := invokePlugins(root, info, registry, configs, presetOverrides, globalOverrides); err != nil {
					return err
				}
				continue
			}
			fn = plugin.Fn
		}
		runPlugin(root, pc.Name, fn, params, info)
	}
	return nil
}

// runPlugin runs one plugin, a panicking plugin is logged and its changes up to the panic are kept.
func runPlugin(root *Node, name string, fn PluginFunc, params Params, info *Info) {
	defer func() {
		if r := recover(); r != nil {
			info.Logger.Warn("plugin failed", zap.String("plugin", name), zap.String("path", info.Path), zap.Any("panic", r))
		}
	}()
	if v := fn(root, params, info); v != nil {
		Visit(root, v)
	}
}
