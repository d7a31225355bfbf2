package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a parcel manifest: the root box.
type ImportSchema struct {
	Label    string       `json:"label" yaml:"label"`
	Children []NodeImport `json:"children" yaml:"children"`
}

// NodeImport defines one node inside a manifest. Which fields apply depends
// on Kind.
type NodeImport struct {
	Kind        string       `json:"kind" yaml:"kind"`
	Label       string       `json:"label,omitempty" yaml:"label,omitempty"`
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Amount      *float64     `json:"amount,omitempty" yaml:"amount,omitempty"`
	Date        string       `json:"date,omitempty" yaml:"date,omitempty"`
	Children    []NodeImport `json:"children,omitempty" yaml:"children,omitempty"`
}

// LoadImportSchema reads a manifest file. The extension picks the decoder:
// .yaml and .yml use YAML, everything else JSON.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

func ParseJSON(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

func ParseYAML(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
