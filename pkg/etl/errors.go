package etl

import (
	"errors"
	"fmt"
)

// ErrDatasetNotFound indicates the dataset directory does not exist.
var ErrDatasetNotFound = errors.New("dataset directory not found")

// ErrNoWorkbooks indicates the dataset directory holds no .xlsx files.
// The run fails before the store is touched, so a mistyped directory
// cannot clear previously persisted records.
var ErrNoWorkbooks = errors.New("no workbook files in dataset directory")

// FileError records a failure while processing one workbook. The
// orchestrator logs it, surfaces it in the run statistics, and
// continues with the next file.
type FileError struct {
	File string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("processing %q: %v", e.File, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
