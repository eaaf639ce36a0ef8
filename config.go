package svgo

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a plugin entry, which is either the plugin name or a mapping with a name and parameters.
func (pc *PluginConfig) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		pc.Name = value.Value
		return nil
	case yaml.MappingNode:
		var entry struct {
			Name   string         `yaml:"name"`
			Params map[string]any `yaml:"params"`
		}
		if err := value.Decode(&entry); err != nil {
			return err
		} else if entry.Name == "" {
			return fmt.Errorf("line %d: plugin without name", value.Line)
		}
		pc.Name = entry.Name
		pc.Params = entry.Params
		return nil
	}
	return fmt.Errorf("line %d: plugin must be a name or a mapping", value.Line)
}

// LoadConfig decodes a YAML configuration. Missing plugins default to the default preset and js2svg fields that are not set keep their defaults.
func LoadConfig(r io.Reader) (*Config, error) {
	opts := DefaultStringifyOptions()
	config := &Config{JS2SVG: &opts}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: %w", err)
	}
	if config.Plugins == nil {
		config.Plugins = DefaultConfig().Plugins
	}
	switch config.DataURI {
	case "", DataURIBase64, DataURIEnc, DataURIUnenc:
	default:
		return nil, fmt.Errorf("config: unknown data URI encoding %q", config.DataURI)
	}
	return config, nil
}
