package models

// Stats summarizes a pipeline run. Non-fatal conditions (skipped
// sheets, failed files) are surfaced here so callers can audit
// extraction completeness without parsing logs.
type Stats struct {
	// TotalInserted is the number of records handed to the store.
	TotalInserted int `json:"total_inserted"`
	// ByCategory counts records per canonical category key. Every
	// catalog category is present, zero included.
	ByCategory map[string]int `json:"by_category"`
	// ByFile counts records per source file, zero included for files
	// that yielded nothing.
	ByFile map[string]int `json:"by_file"`
	// SkippedSheets lists sheets that matched no category and held no
	// multi-table layout, as "file.xlsx/Sheet".
	SkippedSheets []string `json:"skipped_sheets,omitempty"`
	// FileErrors maps file names to the failure that aborted their
	// processing. Failures here never abort the run.
	FileErrors map[string]string `json:"file_errors,omitempty"`
}
