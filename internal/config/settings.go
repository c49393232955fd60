package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Setting is one leaf of the config, addressed by its dotted YAML path.
type Setting struct {
	Key   string // e.g. "physics.gravity"
	Value string // Scalar as it appears in YAML
}

// Settings flattens the config into its leaves in document order.
func (c FlappyConfig) Settings() ([]Setting, error) {
	var doc yaml.Node
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	var out []Setting
	if len(doc.Content) > 0 {
		collectSettings(doc.Content[0], "", &out)
	}
	return out, nil
}

// collectSettings walks mapping nodes; scalar values become settings.
func collectSettings(n *yaml.Node, prefix string, out *[]Setting) {
	if n.Kind != yaml.MappingNode {
		*out = append(*out, Setting{Key: prefix, Value: n.Value})
		return
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if prefix != "" {
			key = prefix + "." + key
		}
		collectSettings(n.Content[i+1], key, out)
	}
}
