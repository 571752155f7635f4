// Package etl extracts labeled text records from directories of Excel
// workbooks with heterogeneous layouts.
package etl

import (
	"log/slog"

	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/models"
	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/parser"
)

// Options configures extraction behavior. The zero value is not
// usable; start from DefaultOptions and override as needed.
type Options struct {
	// Catalog holds the canonical categories and fields to recognize.
	Catalog models.Catalog
	// CategoryThreshold is the minimum similarity (0-100) for a sheet
	// name to resolve to a category.
	CategoryThreshold int
	// Header bounds the header-row search.
	Header parser.HeaderSearch
	// Layout bounds multi-table detection.
	Layout parser.LayoutParams
	// SubHeaderRows is how many rows below a multi-table title row are
	// searched for each region's own header.
	SubHeaderRows int
	// Logger receives progress and skip reports. Nil means
	// slog.Default.
	Logger *slog.Logger
}

// DefaultOptions returns options tuned for the known corpus.
func DefaultOptions() Options {
	return Options{
		Catalog:           models.DefaultCatalog(),
		CategoryThreshold: 65,
		Header:            parser.DefaultHeaderSearch(),
		Layout:            parser.DefaultLayoutParams(),
		SubHeaderRows:     5,
	}
}

// logger returns the configured logger or the process default.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
