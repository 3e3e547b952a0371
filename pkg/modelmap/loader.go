package modelmap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// currentSchema is the decode target for the "current" on-disk schema: an
// object with three optional sub-mappings.
type currentSchema struct {
	Generation    map[string]string           `yaml:"generation"`
	Embeddings    map[string]string           `yaml:"embeddings"`
	ChatTemplates map[string]ChatTemplateSpec `yaml:"chat_templates"`
}

// currentSchemaKeys are the only keys that mark a document as the current
// schema. Detection happens once, here, against the raw document's mapping
// keys — never by probing struct-decode success at call sites, per
// spec.md §9's Design Notes on the union schema.
var currentSchemaKeys = map[string]bool{
	"generation":     true,
	"embeddings":     true,
	"chat_templates": true,
}

// Load reads the model-map configuration file at path and decodes it under
// whichever of the two schemas its top-level keys select. Every failure
// here is fatal to the caller: bad file, malformed YAML, or an invalid
// address. Chat template sources are decoded but not compiled here.
func Load(path string) (*ModelMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load model map config: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid model map config: %w", err)
	}
	if len(doc.Content) == 0 {
		return &ModelMap{}, nil
	}
	root := doc.Content[0]

	if root.Kind == yaml.MappingNode && isCurrentSchema(root) {
		var cs currentSchema
		if err := root.Decode(&cs); err != nil {
			return nil, fmt.Errorf("invalid model map config: %w", err)
		}
		return fromCurrentSchema(cs)
	}

	var legacy map[string]string
	if err := root.Decode(&legacy); err != nil {
		return nil, fmt.Errorf("invalid model map config: %w", err)
	}
	gen, err := parseAddressMap(legacy)
	if err != nil {
		return nil, err
	}
	return &ModelMap{Generation: gen}, nil
}

// isCurrentSchema reports whether a YAML mapping node uses any of the
// current schema's reserved top-level keys.
func isCurrentSchema(mapping *yaml.Node) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		if currentSchemaKeys[key.Value] {
			return true
		}
	}
	return false
}

func fromCurrentSchema(cs currentSchema) (*ModelMap, error) {
	gen, err := parseAddressMap(cs.Generation)
	if err != nil {
		return nil, err
	}
	emb, err := parseAddressMap(cs.Embeddings)
	if err != nil {
		return nil, err
	}
	return &ModelMap{
		Generation:    gen,
		Embeddings:    emb,
		ChatTemplates: cs.ChatTemplates,
	}, nil
}

func parseAddressMap(raw map[string]string) (map[string]ServiceAddress, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]ServiceAddress, len(raw))
	for modelID, addr := range raw {
		parsed, err := ParseServiceAddress(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid model map config: %w", err)
		}
		out[modelID] = parsed
	}
	return out, nil
}
