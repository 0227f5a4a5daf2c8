// internal/catalog/catalog.go
// Package catalog holds the provider families, their colors, and the curated
// default selection, and resolves models against them.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	// OtherFamily is returned for models that belong to no family.
	OtherFamily = "Other"
	// DefaultFallbackColor is used when a family has no color entry.
	DefaultFallbackColor = "#888888"
)

//go:embed catalog.yaml
var bundledCatalog []byte

// Family groups the models published by one provider.
type Family struct {
	Name   string   `yaml:"name" json:"name"`
	Color  string   `yaml:"color" json:"color"`
	Models []string `yaml:"models" json:"models"`
}

// Registry is the immutable family table loaded at startup.
type Registry struct {
	Families      []Family `yaml:"families" json:"families"`
	FallbackColor string   `yaml:"fallbackColor" json:"fallbackColor"`
	TopModels     []string `yaml:"topModels" json:"topModels"`
}

// Default returns the registry bundled with the binary.
func Default() (*Registry, error) {
	return Load(bytes.NewReader(bundledCatalog))
}

// Bundled returns the raw bundled catalog document.
func Bundled() []byte {
	return append([]byte(nil), bundledCatalog...)
}

// LoadFile reads a registry from a YAML or JSON file.
func LoadFile(path string) (*Registry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %q: %w", path, err)
	}
	defer file.Close()

	reg, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	return reg, nil
}

// Load decodes a registry document. JSON input is accepted since it is valid YAML.
func Load(r io.Reader) (*Registry, error) {
	var reg Registry
	if err := yaml.NewDecoder(r).Decode(&reg); err != nil {
		if errors.Is(err, io.EOF) {
			return &Registry{FallbackColor: DefaultFallbackColor}, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if strings.TrimSpace(reg.FallbackColor) == "" {
		reg.FallbackColor = DefaultFallbackColor
	}
	return &reg, nil
}

// FamilyOf returns the first family, in registry order, listing model.
// Models listed nowhere resolve to OtherFamily.
func (r *Registry) FamilyOf(model string) string {
	for _, family := range r.Families {
		for _, member := range family.Models {
			if member == model {
				return family.Name
			}
		}
	}
	return OtherFamily
}

// FamilyColor returns the color for a family name, or the fallback color.
func (r *Registry) FamilyColor(name string) string {
	for _, family := range r.Families {
		if family.Name == name && family.Color != "" {
			return family.Color
		}
	}
	return r.fallback()
}

// ColorOf resolves model to its family and returns that family's color.
func (r *Registry) ColorOf(model string) string {
	return r.FamilyColor(r.FamilyOf(model))
}

// Family looks up a family by name.
func (r *Registry) Family(name string) (Family, bool) {
	for _, family := range r.Families {
		if family.Name == name {
			return family, true
		}
	}
	return Family{}, false
}

// FamilyNames lists family names in registry order.
func (r *Registry) FamilyNames() []string {
	names := make([]string, 0, len(r.Families))
	for _, family := range r.Families {
		names = append(names, family.Name)
	}
	return names
}

// AllModels flattens every family's members in registry order.
func (r *Registry) AllModels() []string {
	var models []string
	for _, family := range r.Families {
		models = append(models, family.Models...)
	}
	return models
}

// TopModelOrder maps each curated top model to its position in the list.
func (r *Registry) TopModelOrder() map[string]int {
	order := make(map[string]int, len(r.TopModels))
	for i, model := range r.TopModels {
		if _, seen := order[model]; !seen {
			order[model] = i
		}
	}
	return order
}

func (r *Registry) fallback() string {
	if r.FallbackColor != "" {
		return r.FallbackColor
	}
	return DefaultFallbackColor
}
