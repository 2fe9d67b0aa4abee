package dataset

import (
	"fmt"
	"strconv"

	"github.com/go-gota/gota/dataframe"

	"github.com/preston-bernstein/worldcup-dashboard/internal/domain/matches"
)

// Dataset is the read-only, in-memory table of match results.
type Dataset struct {
	source  string
	matches []matches.Match
	frame   dataframe.DataFrame
}

// Table is a rendered grid of cells with a header row.
type Table struct {
	Header []string
	Rows   [][]string
}

// New builds a Dataset and its dataframe view. The slice is copied.
func New(source string, ms []matches.Match) (*Dataset, error) {
	d := &Dataset{
		source:  source,
		matches: append([]matches.Match(nil), ms...),
	}
	if len(ms) == 0 {
		return d, nil
	}

	// Team and stadium names like "NA" are data, not missing values.
	frame := dataframe.LoadStructs(d.matches, dataframe.NaNValues(nil))
	if frame.Err != nil {
		return nil, fmt.Errorf("build dataframe: %w", frame.Err)
	}
	d.frame = frame
	return d, nil
}

// Source names where the rows were loaded from.
func (d *Dataset) Source() string { return d.source }

// Len is the number of match rows.
func (d *Dataset) Len() int { return len(d.matches) }

// Shape returns the row and column counts.
func (d *Dataset) Shape() (rows, cols int) {
	return len(d.matches), len(matches.Columns)
}

// Matches returns a copy of the rows.
func (d *Dataset) Matches() []matches.Match {
	return append([]matches.Match(nil), d.matches...)
}

// Frame returns a copy of the dataframe view. It is empty when the dataset has no rows.
func (d *Dataset) Frame() dataframe.DataFrame {
	if d.Len() == 0 {
		return dataframe.DataFrame{}
	}
	return d.frame.Copy()
}

// Preview returns the first n rows with every column.
func (d *Dataset) Preview(n int) Table {
	if n > d.Len() {
		n = d.Len()
	}
	table := Table{Header: append([]string(nil), matches.Columns...)}
	if n <= 0 {
		return table
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	records := d.frame.Subset(idx).Records()
	if len(records) > 1 {
		table.Header = records[0]
		table.Rows = records[1:]
	}
	return table
}

// Summary describes the numeric columns: count, mean, spread and quartiles.
func (d *Dataset) Summary() (Table, error) {
	header := append([]string{"statistic"}, matches.NumericColumns...)
	if d.Len() == 0 {
		return Table{Header: header}, nil
	}

	described := d.frame.Select(matches.NumericColumns).Describe()
	if described.Err != nil {
		return Table{}, fmt.Errorf("describe dataset: %w", described.Err)
	}
	records := described.Records()

	count := strconv.Itoa(d.Len())
	rows := [][]string{{"count"}}
	for range matches.NumericColumns {
		rows[0] = append(rows[0], count)
	}
	for _, rec := range records[1:] {
		row := make([]string, len(rec))
		row[0] = rec[0]
		for i := 1; i < len(rec); i++ {
			row[i] = formatStat(rec[i])
		}
		rows = append(rows, row)
	}
	return Table{Header: header, Rows: rows}, nil
}

func formatStat(raw string) string {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
