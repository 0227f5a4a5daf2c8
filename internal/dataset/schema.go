// internal/dataset/schema.go
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/mwiater/longctx/internal/util"
	"github.com/xeipuuv/gojsonschema"
	"go.yaml.in/yaml/v3"
)

var datasetSchema = map[string]any{
	"type":     "object",
	"required": []string{"points"},
	"properties": map[string]any{
		"title":    map[string]any{"type": "string"},
		"subtitle": map[string]any{"type": "string"},
		"source": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
				"url":  map[string]any{"type": "string"},
				"date": map[string]any{"type": "string"},
			},
		},
		"points": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"window"},
				"properties": map[string]any{
					"window": map[string]any{"type": "integer", "minimum": 0},
					"scores": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type":    []string{"number", "null"},
							"minimum": 0,
							"maximum": 100,
						},
					},
				},
			},
		},
	},
}

func decode(r io.Reader, ds *Dataset) error {
	if err := yaml.NewDecoder(r).Decode(ds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode dataset: %w", err)
	}
	return nil
}

// Validate checks a raw dataset document and returns every problem found.
// Problems never stop a render; they are reported so the data can be fixed.
func Validate(raw []byte) ([]string, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(datasetSchema), gojsonschema.NewGoLoader(util.JSONSafe(doc)))
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

	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return append(problems, ds.Problems()...), nil
}

// Problems reports content the schema cannot express, using the document's
// own point order.
func (d *Dataset) Problems() []string {
	var problems []string
	if d.Empty() {
		return append(problems, "dataset has no points")
	}
	seen := make(map[int]bool)
	for i, p := range d.Points {
		if seen[p.Window] {
			problems = append(problems, fmt.Sprintf("window %d appears more than once", p.Window))
		}
		seen[p.Window] = true
		if i > 0 && p.Window < d.Points[i-1].Window {
			problems = append(problems, fmt.Sprintf("window %d is listed after %d; points are reordered by window", p.Window, d.Points[i-1].Window))
		}
		for model, score := range p.Scores {
			if model == "" {
				problems = append(problems, fmt.Sprintf("window %d: score has an empty model id", p.Window))
			}
			if score != nil && (math.IsNaN(*score) || math.IsInf(*score, 0)) {
				problems = append(problems, fmt.Sprintf("window %d: score for %q is not finite", p.Window, model))
			}
		}
	}
	return problems
}
