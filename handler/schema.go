package handler

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/numentry/pkg/numformat"
)

// Schema maps form field names to their configuration override layers.
// Layers are resolved against the handler defaults per request, with
// the same permissive coercion used for element attributes, so a typo
// in the schema degrades a field to defaults instead of failing the
// endpoint.
type Schema struct {
	Fields map[string]numformat.Layer
}

// LoadSchema reads a YAML schema file:
//
//	fields:
//	  price:
//	    negative: false
//	    decimalPlaces: 2
//	  quantity:
//	    decimal: false
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, errors.Join(ErrSchemaRead, err)
	}
	return ParseSchema(data)
}

// ParseSchema decodes YAML schema bytes.
func ParseSchema(data []byte) (Schema, error) {
	var file struct {
		Fields map[string]map[string]any `yaml:"fields"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Schema{}, errors.Join(ErrSchemaParse, err)
	}
	if len(file.Fields) == 0 {
		return Schema{}, fmt.Errorf("%w: no fields defined", ErrSchemaParse)
	}

	s := Schema{Fields: make(map[string]numformat.Layer, len(file.Fields))}
	for name, raw := range file.Fields {
		s.Fields[name] = numformat.Layer(raw)
	}
	return s, nil
}
