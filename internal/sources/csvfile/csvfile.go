package csvfile

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/preston-bernstein/worldcup-dashboard/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-dashboard/internal/sources"
)

// Source reads match results from a comma separated file with a header row.
type Source struct {
	path string
}

// New returns a Source reading the file at path.
func New(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Name() string { return sources.NameCSV }

// Load decodes every data row of the file. Errors are *sources.LoadError values; a file with no data rows wraps sources.ErrNoRows.
func (s *Source) Load(ctx context.Context) ([]matches.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, s.wrap(err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, s.wrap(err)
	}

	out, err := sources.DecodeRows(rows)
	if err != nil {
		return nil, s.wrap(err)
	}
	return out, nil
}

func (s *Source) wrap(err error) error {
	return &sources.LoadError{Source: sources.NameCSV, Path: s.path, Err: err}
}
