// Package models defines the data structures for spreadsheet extraction.
package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// Canonical category keys for the classical-texts corpus.
const (
	CategoryArete         = "arete"
	CategoryPoliticaPoder = "politica_poder"
	CategoryDiosesHombres = "dioses_hombres"
)

// Canonical field keys. Texto is the mandatory field; a table without a
// recognizable texto column is never extracted.
const (
	FieldTexto  = "texto"
	FieldCanto  = "canto"
	FieldVersos = "versos"
)

// PatternSet associates a canonical key with the surface forms that may
// name it in source files.
type PatternSet struct {
	// Key is the canonical identifier.
	Key string `json:"key"`
	// Patterns are known surface forms (synonyms, abbreviations,
	// misspellings) for the key.
	Patterns []string `json:"patterns"`
}

// Catalog holds the canonical categories and fields the extractor
// recognizes. Sets are matched in slice order; on tied similarity
// scores the earlier key wins, so the most specific keys should come
// first.
type Catalog struct {
	// Categories are the canonical text categories, in match order.
	Categories []PatternSet `json:"categories"`
	// Fields are the canonical data columns, in match order.
	Fields []PatternSet `json:"fields"`
}

// DefaultCatalog returns the built-in catalog for the classical-texts
// corpus.
func DefaultCatalog() Catalog {
	return Catalog{
		Categories: []PatternSet{
			{Key: CategoryArete, Patterns: []string{
				"areté", "arete", "arété", "etiqueta areté", "etiqueta arete",
			}},
			{Key: CategoryPoliticaPoder, Patterns: []string{
				"política y poder", "politica y poder", "poder y política",
				"poder y politica", "etiqueta poder", "politica", "política", "poder",
			}},
			{Key: CategoryDiosesHombres, Patterns: []string{
				"relación entre dioses y hombres", "relacion entre dioses y hombres",
				"dioses y hombres", "dioses", "etiqueta dioses",
				"relación entre humanos y dioses", "relacion entre humanos y dioses",
			}},
		},
		Fields: []PatternSet{
			{Key: FieldCanto, Patterns: []string{
				"canto", "número de canto", "numero de canto", "n° canto", "nº canto",
			}},
			{Key: FieldVersos, Patterns: []string{
				"verso", "versos", "números de versos", "numeros de versos", "n° verso",
			}},
			{Key: FieldTexto, Patterns: []string{
				"cita", "texto", "fragmento", "pasaje",
			}},
		},
	}
}

// LoadCatalog reads a catalog from a JSON file so new patterns can be
// added without touching matcher logic.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, err
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if len(c.Categories) == 0 || len(c.Fields) == 0 {
		return Catalog{}, fmt.Errorf("catalog %s: categories and fields must be non-empty", path)
	}
	return c, nil
}
