package parser

import (
	"testing"

	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/models"
)

func TestFindHeaderRow(t *testing.T) {
	fields := models.DefaultCatalog().Fields
	rows := [][]string{
		{"Tarea 3"},
		{},
		{"Canto", "Versos", "Cita"},
		{"1", "1-10", "La cólera de Aquiles"},
	}

	rowIdx, mapping := FindHeaderRow(rows, fields, DefaultHeaderSearch())
	if rowIdx != 2 {
		t.Fatalf("header row = %d, want 2", rowIdx)
	}
	if mapping[models.FieldCanto] != 0 || mapping[models.FieldVersos] != 1 || mapping[models.FieldTexto] != 2 {
		t.Errorf("unexpected mapping: %v", mapping)
	}
}

func TestFindHeaderRowRequiresMandatoryField(t *testing.T) {
	fields := models.DefaultCatalog().Fields
	rows := [][]string{
		{"Canto", "Versos"},
		{"1", "1-10"},
	}

	rowIdx, mapping := FindHeaderRow(rows, fields, DefaultHeaderSearch())
	if rowIdx != -1 || mapping != nil {
		t.Errorf("got row %d mapping %v, want not found", rowIdx, mapping)
	}
}

func TestFindHeaderRowRespectsBound(t *testing.T) {
	fields := models.DefaultCatalog().Fields
	rows := make([][]string, 6)
	rows[5] = []string{"Canto", "Versos", "Cita"}

	p := DefaultHeaderSearch()
	p.MaxRows = 3
	if rowIdx, _ := FindHeaderRow(rows, fields, p); rowIdx != -1 {
		t.Errorf("header row = %d, want -1 with MaxRows 3", rowIdx)
	}

	p.MaxRows = 20
	if rowIdx, _ := FindHeaderRow(rows, fields, p); rowIdx != 5 {
		t.Errorf("header row = %d, want 5 with MaxRows 20", rowIdx)
	}
}

func TestFindHeaderRowFirstQualifyingWins(t *testing.T) {
	fields := models.DefaultCatalog().Fields
	rows := [][]string{
		{"Cita", "Canto"},
		{"Texto", "Canto", "Versos"},
	}

	rowIdx, mapping := FindHeaderRow(rows, fields, DefaultHeaderSearch())
	if rowIdx != 0 {
		t.Fatalf("header row = %d, want 0", rowIdx)
	}
	if _, ok := mapping[models.FieldVersos]; ok {
		t.Errorf("mapping %v should come from row 0, which has no versos column", mapping)
	}
}

func TestMapHeaderCellsLeftmostDuplicateWins(t *testing.T) {
	fields := models.DefaultCatalog().Fields
	row := []string{"Cita", "Texto", "Canto"}

	mapping := mapHeaderCells(row, 0, len(row), fields, 60)
	if mapping[models.FieldTexto] != 0 {
		t.Errorf("texto column = %d, want 0 (leftmost duplicate)", mapping[models.FieldTexto])
	}
}

func TestFindRegionHeaderScopedToWindow(t *testing.T) {
	fields := models.DefaultCatalog().Fields
	rows := [][]string{
		{"ETIQUETA ARETÉ", "", "", "", "", "", "POLÍTICA Y PODER"},
		{},
		{"Canto", "Cita", "", "", "", "", "Cita", "Versos"},
	}
	region := models.TableRegion{Categoria: models.CategoryPoliticaPoder, C1: 6, C2: 13}

	rowIdx, mapping := FindRegionHeader(rows, region, 0, 5, fields, DefaultHeaderSearch())
	if rowIdx != 2 {
		t.Fatalf("region header row = %d, want 2", rowIdx)
	}
	if mapping[models.FieldTexto] != 6 || mapping[models.FieldVersos] != 7 {
		t.Errorf("unexpected region mapping: %v", mapping)
	}
	if _, ok := mapping[models.FieldCanto]; ok {
		t.Errorf("mapping %v leaked the canto column from outside the region", mapping)
	}
}

func TestFindRegionHeaderNotFound(t *testing.T) {
	fields := models.DefaultCatalog().Fields
	rows := [][]string{
		{"ETIQUETA ARETÉ"},
		{"dato", "dato"},
		{"dato", "dato"},
	}
	region := models.TableRegion{Categoria: models.CategoryArete, C1: 0, C2: 7}

	if rowIdx, _ := FindRegionHeader(rows, region, 0, 5, fields, DefaultHeaderSearch()); rowIdx != -1 {
		t.Errorf("region header row = %d, want -1", rowIdx)
	}
}
