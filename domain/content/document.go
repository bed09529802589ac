package content

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document formats accepted by Encode and Decode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatFromPath picks a format from a file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode writes v in the given format using its JSON field names.
func Encode(v interface{}, format string) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON, "":
		return append(data, '\n'), nil
	case FormatYAML:
		var tree interface{}
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
		return yaml.Marshal(tree)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Decode converts a JSON or YAML document to JSON for ParseOverride.
func Decode(data []byte, format string) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		if !json.Valid(data) {
			return nil, fmt.Errorf("invalid JSON document")
		}
		return data, nil
	case FormatYAML:
		var tree interface{}
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("invalid YAML document: %w", err)
		}
		tree, err := jsonCompatible(tree)
		if err != nil {
			return nil, err
		}
		return json.Marshal(tree)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// jsonCompatible rewrites YAML maps with non-string keys, which
// encoding/json cannot marshal.
func jsonCompatible(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, child := range t {
			c, err := jsonCompatible(child)
			if err != nil {
				return nil, err
			}
			t[k] = c
		}
		return t, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, child := range t {
			c, err := jsonCompatible(child)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = c
		}
		return out, nil
	case []interface{}:
		for i, child := range t {
			c, err := jsonCompatible(child)
			if err != nil {
				return nil, err
			}
			t[i] = c
		}
		return t, nil
	default:
		return v, nil
	}
}
