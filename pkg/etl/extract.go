package etl

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/models"
	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/parser"
)

// FileResult holds what ProcessFile extracted from one workbook.
type FileResult struct {
	// Records are the extracted records in sheet and source row order.
	Records []models.Record
	// SkippedSheets are sheets that matched no category and held no
	// multi-table layout.
	SkippedSheets []string
}

// ProcessFile extracts records from every sheet of one workbook. Each
// sheet is first checked for a multi-table layout; otherwise its name
// is resolved to a whole-sheet category and the sheet is treated as a
// single table. Sheets matching neither way are reported as skipped,
// never as errors.
func ProcessFile(path string, opts Options) (FileResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return FileResult{}, err
	}
	defer f.Close()

	log := opts.logger()
	fuente := filepath.Base(path)
	var res FileResult

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return res, fmt.Errorf("reading sheet %q: %w", sheetName, err)
		}

		layout := parser.DetectLayout(rows, opts.Catalog.Categories, opts.Layout)
		if layout.MultiTable {
			log.Info("multi-table sheet",
				"file", fuente, "sheet", sheetName, "regions", len(layout.Regions))
			for _, region := range layout.Regions {
				recs := parser.ExtractRegion(rows, region, layout.TitleRow,
					opts.SubHeaderRows, opts.Catalog.Fields, opts.Header, fuente, sheetName)
				if len(recs) == 0 {
					log.Warn("region yielded no records",
						"file", fuente, "sheet", sheetName,
						"categoria", region.Categoria, "col", region.C1)
					continue
				}
				res.Records = append(res.Records, recs...)
			}
			continue
		}

		categoria := parser.MatchKey(sheetName, opts.Catalog.Categories, opts.CategoryThreshold)
		if categoria == "" {
			log.Info("sheet matches no category, skipping",
				"file", fuente, "sheet", sheetName)
			res.SkippedSheets = append(res.SkippedSheets, sheetName)
			continue
		}

		headerRow, mapping := parser.FindHeaderRow(rows, opts.Catalog.Fields, opts.Header)
		if headerRow < 0 {
			log.Warn("no valid header row", "file", fuente, "sheet", sheetName)
			res.SkippedSheets = append(res.SkippedSheets, sheetName)
			continue
		}
		t := parser.Table{HeaderRow: headerRow, Mapping: mapping, Categoria: categoria}
		recs := parser.ExtractTable(rows, t, opts.Catalog.Fields,
			opts.Header.MandatoryField, fuente, sheetName)
		log.Info("sheet extracted",
			"file", fuente, "sheet", sheetName, "categoria", categoria, "records", len(recs))
		res.Records = append(res.Records, recs...)
	}

	return res, nil
}
