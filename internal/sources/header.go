package sources

import (
	"math"
	"strconv"
	"strings"

	"github.com/preston-bernstein/worldcup-dashboard/internal/domain/matches"
)

// Header maps canonical column names to their position in a source row.
type Header map[string]int

var canonicalColumns = func() map[string]string {
	out := make(map[string]string, len(matches.Columns))
	for _, col := range matches.Columns {
		out[normalizeColumn(col)] = col
	}
	return out
}()

// normalizeColumn folds case and drops separators so "Home Team" and "home_team" both map to HomeTeam.
func normalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '_', '-', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseHeader maps header cells onto match columns. Unknown columns are ignored;
// when a column appears twice the first occurrence wins.
func ParseHeader(cells []string) (Header, error) {
	h := make(Header, len(matches.Columns))
	for i, cell := range cells {
		col, ok := canonicalColumns[normalizeColumn(cell)]
		if !ok {
			continue
		}
		if _, dup := h[col]; !dup {
			h[col] = i
		}
	}

	var missing []string
	for _, col := range matches.RequiredColumns {
		if _, ok := h[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	return h, nil
}

// Decode converts one data row into a Match. line is the 1-based row number used in errors.
func (h Header) Decode(row []string, line int) (matches.Match, error) {
	var m matches.Match
	var err error

	if m.Year, err = h.intCell(row, matches.ColYear, line); err != nil {
		return matches.Match{}, err
	}
	if m.HomeGoals, err = h.intCell(row, matches.ColHomeGoals, line); err != nil {
		return matches.Match{}, err
	}
	if m.AwayGoals, err = h.intCell(row, matches.ColAwayGoals, line); err != nil {
		return matches.Match{}, err
	}

	m.Date = h.cell(row, matches.ColDate)
	m.Time = h.cell(row, matches.ColTime)
	m.Round = h.cell(row, matches.ColRound)
	m.Stadium = h.cell(row, matches.ColStadium)
	m.City = h.cell(row, matches.ColCity)
	m.Country = h.cell(row, matches.ColCountry)
	m.HomeTeam = h.cell(row, matches.ColHomeTeam)
	m.AwayTeam = h.cell(row, matches.ColAwayTeam)
	m.Observation = h.cell(row, matches.ColObservation)
	return m, nil
}

func (h Header) cell(row []string, col string) string {
	idx, ok := h[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (h Header) intCell(row []string, col string, line int) (int, error) {
	raw := h.cell(row, col)
	if raw == "" {
		return 0, nil
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	// float64(math.MaxInt) rounds up to 2^63, which no int holds.
	if err != nil || f != math.Trunc(f) || f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, &CellError{Row: line, Column: col, Value: raw}
	}
	return int(f), nil
}

// DecodeRows treats the first row as the header and decodes the rest.
// Rows with no non-blank cells are skipped.
func DecodeRows(rows [][]string) ([]matches.Match, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	header, err := ParseHeader(rows[0])
	if err != nil {
		return nil, err
	}

	out := make([]matches.Match, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		m, err := header.Decode(row, i+2)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
