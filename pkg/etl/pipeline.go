package etl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/models"
	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/store"
)

// Result is the outcome of a pipeline run.
type Result struct {
	// Records are all extracted records, in file then sheet then source
	// row order.
	Records []models.Record
	// Stats summarizes the run.
	Stats models.Stats
}

// Run enumerates the .xlsx files in datasetDir in sorted order,
// extracts records from each, and hands them to st in a single bulk
// write. When clearExisting is set the store is emptied first. A nil
// store skips persistence (dry run).
//
// A missing dataset directory is the only fatal condition; per-file
// failures are logged, surfaced in Stats.FileErrors, and do not abort
// the run.
func Run(ctx context.Context, datasetDir string, st store.Store, clearExisting bool, opts Options) (Result, error) {
	log := opts.logger()

	info, err := os.Stat(datasetDir)
	if err != nil || !info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s", ErrDatasetNotFound, datasetDir)
	}

	paths, err := filepath.Glob(filepath.Join(datasetDir, "*.xlsx"))
	if err != nil {
		return Result{}, err
	}
	sort.Strings(paths)

	workbooks := make([]string, 0, len(paths))
	for _, path := range paths {
		if strings.HasPrefix(filepath.Base(path), "~$") {
			continue // Excel lock files
		}
		workbooks = append(workbooks, path)
	}
	if len(workbooks) == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrNoWorkbooks, datasetDir)
	}
	log.Info("dataset scanned", "dir", datasetDir, "files", len(workbooks))

	stats := models.Stats{
		ByCategory: make(map[string]int),
		ByFile:     make(map[string]int),
		FileErrors: make(map[string]string),
	}
	for _, set := range opts.Catalog.Categories {
		stats.ByCategory[set.Key] = 0
	}

	var records []models.Record
	for _, path := range workbooks {
		name := filepath.Base(path)
		log.Info("processing file", "file", name)
		res, err := ProcessFile(path, opts)
		if err != nil {
			// Records from sheets read before the failure are kept.
			ferr := &FileError{File: name, Err: err}
			log.Error("file failed", "file", name, "error", ferr,
				"partial_records", len(res.Records))
			stats.FileErrors[name] = err.Error()
		} else {
			log.Info("file done", "file", name, "records", len(res.Records))
		}
		records = append(records, res.Records...)
		stats.ByFile[name] = len(res.Records)
		for _, r := range res.Records {
			stats.ByCategory[r.Categoria]++
		}
		for _, sheet := range res.SkippedSheets {
			stats.SkippedSheets = append(stats.SkippedSheets, name+"/"+sheet)
		}
	}

	if st != nil {
		if clearExisting {
			deleted, err := st.Clear(ctx)
			if err != nil {
				return Result{}, fmt.Errorf("clearing store: %w", err)
			}
			log.Info("store cleared", "deleted", deleted)
		}
		if len(records) > 0 {
			if err := st.Insert(ctx, records); err != nil {
				return Result{}, fmt.Errorf("inserting records: %w", err)
			}
		}
	}
	stats.TotalInserted = len(records)
	log.Info("run complete", "total", stats.TotalInserted)

	return Result{Records: records, Stats: stats}, nil
}
