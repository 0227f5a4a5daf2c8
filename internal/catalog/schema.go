// internal/catalog/schema.go
package catalog

import (
	"fmt"

	"github.com/mwiater/longctx/internal/util"
	"github.com/xeipuuv/gojsonschema"
	"go.yaml.in/yaml/v3"
)

// catalogSchema describes a registry document.
var catalogSchema = map[string]any{
	"type":     "object",
	"required": []string{"families"},
	"properties": map[string]any{
		"fallbackColor": map[string]any{"type": "string", "pattern": "^#[0-9A-Fa-f]{6}$"},
		"families": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []string{"name", "models"},
				"properties": map[string]any{
					"name":   map[string]any{"type": "string", "minLength": 1},
					"color":  map[string]any{"type": "string", "pattern": "^#[0-9A-Fa-f]{6}$"},
					"models": map[string]any{"type": "array", "items": map[string]any{"type": "string", "minLength": 1}},
				},
			},
		},
		"topModels": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
}

// Validate checks a raw registry document and returns every problem found.
// The error is reserved for documents that cannot be parsed at all.
func Validate(raw []byte) ([]string, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(catalogSchema), gojsonschema.NewGoLoader(util.JSONSafe(doc)))
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	if !result.Valid() {
		return problems, nil
	}

	var reg Registry
	if err := yaml.Unmarshal(raw, &reg); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return append(problems, reg.Problems()...), nil
}

// Problems reports registry content the schema cannot express: models listed
// in more than one family, families declared twice, and top models that no
// family lists.
func (r *Registry) Problems() []string {
	var problems []string
	owner := make(map[string]string)
	families := make(map[string]bool)
	for _, family := range r.Families {
		if families[family.Name] {
			problems = append(problems, fmt.Sprintf("family %q is declared more than once", family.Name))
		}
		families[family.Name] = true
		for _, model := range family.Models {
			if first, ok := owner[model]; ok {
				problems = append(problems, fmt.Sprintf("model %q is listed in both %q and %q; %q wins", model, first, family.Name, first))
				continue
			}
			owner[model] = family.Name
		}
	}
	for _, model := range r.TopModels {
		if _, ok := owner[model]; !ok {
			problems = append(problems, fmt.Sprintf("top model %q is not listed in any family", model))
		}
	}
	return problems
}
