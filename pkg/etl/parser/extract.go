package parser

import (
	"strings"

	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/models"
)

// Table describes one located table ready for extraction.
type Table struct {
	// HeaderRow is the 0-based header row index; data rows start
	// directly below it.
	HeaderRow int
	// Mapping maps canonical field keys to column indexes.
	Mapping ColumnMapping
	// Categoria is the canonical category for every extracted record.
	Categoria string
}

// ExtractTable walks every row strictly below the header row and emits
// one record per row with a non-empty mandatory text cell, preserving
// source row order. Optional fields are read opportunistically: every
// optional catalog key appears in the record, nil when the column was
// not mapped, the cell is empty, or the row is too short.
func ExtractTable(rows [][]string, t Table, fields []models.PatternSet, mandatory, fuente, hoja string) []models.Record {
	textCol, ok := t.Mapping[mandatory]
	if !ok {
		return nil
	}
	var records []models.Record
	for rowIdx := t.HeaderRow + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		texto := cellAt(row, textCol)
		if texto == "" {
			continue
		}
		campos := make(map[string]*string, len(fields)-1)
		for _, set := range fields {
			if set.Key == mandatory {
				continue
			}
			if col, mapped := t.Mapping[set.Key]; mapped {
				campos[set.Key] = optionalValue(row, col)
			} else {
				campos[set.Key] = nil
			}
		}
		records = append(records, models.Record{
			Texto:        texto,
			Categoria:    t.Categoria,
			Fuente:       fuente,
			HojaOriginal: hoja,
			Campos:       campos,
		})
	}
	return records
}

// ExtractRegion locates a region's own header inside the bounded row
// window below the title row and extracts its data rows scoped to the
// region's columns. A region without a qualifying sub-header yields no
// records.
func ExtractRegion(rows [][]string, region models.TableRegion, titleRow, searchRows int, fields []models.PatternSet, hp HeaderSearch, fuente, hoja string) []models.Record {
	headerRow, mapping := FindRegionHeader(rows, region, titleRow, searchRows, fields, hp)
	if headerRow < 0 {
		return nil
	}
	t := Table{HeaderRow: headerRow, Mapping: mapping, Categoria: region.Categoria}
	return ExtractTable(rows, t, fields, hp.MandatoryField, fuente, hoja)
}

// cellAt returns the trimmed cell at col, or "" when the row does not
// reach it.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// optionalValue reads an optional field cell; empty or out-of-range
// cells become nil, never an error.
func optionalValue(row []string, col int) *string {
	v := cellAt(row, col)
	if v == "" {
		return nil
	}
	return &v
}
