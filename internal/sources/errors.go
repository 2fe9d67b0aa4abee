package sources

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRows is returned when a source has a header but no match rows.
var ErrNoRows = errors.New("no match rows")

// LoadError wraps any failure to read a source.
type LoadError struct {
	Source string
	Path   string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("load %s %s: %v", e.Source, e.Path, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// AsLoadError attempts to unwrap an error into a LoadError.
func AsLoadError(err error) (*LoadError, bool) {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr, true
	}
	return nil, false
}

// MissingColumnsError reports required header columns that were not found.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

// CellError reports a cell whose value could not be parsed.
// Row is the 1-based spreadsheet row including the header.
type CellError struct {
	Row    int
	Column string
	Value  string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d column %s: invalid integer %q", e.Row, e.Column, e.Value)
}
