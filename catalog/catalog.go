package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/tmplfn/funcs"
)

// Document is the exported function table.
type Document struct {
	Functions []funcs.Info `yaml:"functions" json:"functions"`
}

// Build collects the metadata of every enabled function in the
// library, sorted by name.
func Build(lib *funcs.Library) Document {
	return Document{Functions: lib.Funcs()}
}

// YAML renders the document.
func (d Document) YAML() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return data, nil
}

// Schema returns the JSON Schema for the document shape.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	schema := reflector.Reflect(&Document{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
