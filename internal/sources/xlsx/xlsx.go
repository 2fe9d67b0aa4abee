package xlsx

import (
	"context"
	"errors"

	"github.com/xuri/excelize/v2"

	"github.com/preston-bernstein/worldcup-dashboard/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-dashboard/internal/sources"
)

var errNoSheets = errors.New("workbook has no sheets")

// Source reads match results from one sheet of an Excel workbook.
type Source struct {
	path  string
	sheet string
}

// New creates a workbook source. An empty sheet name selects the first sheet.
func New(path, sheet string) *Source {
	return &Source{path: path, sheet: sheet}
}

func (s *Source) Name() string { return sources.NameXLSX }

// Load opens the workbook and decodes every row of the selected sheet.
func (s *Source) Load(ctx context.Context) ([]matches.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, s.wrap(err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, s.wrap(errNoSheets)
	}

	rows, err := f.GetRows(sheet)
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
	return &sources.LoadError{Source: sources.NameXLSX, Path: s.path, Err: err}
}
