package parser

import (
	"testing"

	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/models"
)

func TestMatchKeyCategories(t *testing.T) {
	categories := models.DefaultCatalog().Categories

	cases := []struct {
		name string
		want string
	}{
		{"Areté", models.CategoryArete},
		{"arete", models.CategoryArete},
		{"Etiqueta Areté", models.CategoryArete},
		{"Política y Poder", models.CategoryPoliticaPoder},
		{"PODER Y POLITICA", models.CategoryPoliticaPoder},
		{"Relación entre Dioses y Hombres", models.CategoryDiosesHombres},
		{"Dioses y Hombres", models.CategoryDiosesHombres},
		{"Random Notes", ""},
		{"Hoja1", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := MatchKey(c.name, categories, 65); got != c.want {
			t.Errorf("MatchKey(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestMatchKeyFields(t *testing.T) {
	fields := models.DefaultCatalog().Fields

	cases := []struct {
		header string
		want   string
	}{
		{"Canto", models.FieldCanto},
		{"Número de Canto", models.FieldCanto},
		{"Versos", models.FieldVersos},
		{"Cita", models.FieldTexto},
		{"Fragmento", models.FieldTexto},
		{"TEXTO", models.FieldTexto},
		{"Fecha", ""},
	}

	for _, c := range cases {
		if got := MatchKey(c.header, fields, 60); got != c.want {
			t.Errorf("MatchKey(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}

func TestMatchKeyFirstSetWinsOnTie(t *testing.T) {
	sets := []models.PatternSet{
		{Key: "first", Patterns: []string{"canto"}},
		{Key: "second", Patterns: []string{"canto"}},
	}

	if got := MatchKey("canto", sets, 60); got != "first" {
		t.Errorf("tie-break: got %q, want %q", got, "first")
	}
}

// Raising the threshold must never turn a rejection into a match, and
// must never change the winning key while the query still matches.
func TestMatchKeyThresholdMonotonic(t *testing.T) {
	categories := models.DefaultCatalog().Categories
	queries := []string{"Areté", "Etiqueta Areté", "Politica", "Random Notes"}

	for _, q := range queries {
		prev := MatchKey(q, categories, 0)
		for threshold := 1; threshold <= 100; threshold++ {
			got := MatchKey(q, categories, threshold)
			if prev == "" && got != "" {
				t.Fatalf("query %q: threshold %d matched %q after rejection at %d",
					q, threshold, got, threshold-1)
			}
			if got != "" && got != prev {
				t.Fatalf("query %q: winning key changed from %q to %q at threshold %d",
					q, prev, got, threshold)
			}
			prev = got
		}
	}
}
