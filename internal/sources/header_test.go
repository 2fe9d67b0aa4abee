package sources

import (
	"errors"
	"testing"

	"github.com/preston-bernstein/worldcup-dashboard/internal/domain/matches"
)

var fullHeader = []string{
	"Year", "Date", "Time", "Round", "Stadium", "City", "Country",
	"HomeTeam", "HomeGoals", "AwayGoals", "AwayTeam", "Observation",
}

func TestParseHeaderNormalizesNames(t *testing.T) {
	h, err := ParseHeader([]string{"year", "Round", "STADIUM", "Country", "Home Team", "home_goals", "Away-Goals", "Away Team", "Extra"})
	if err != nil {
		t.Fatalf("expected header to parse, got %v", err)
	}
	if h[matches.ColHomeTeam] != 4 || h[matches.ColHomeGoals] != 5 || h[matches.ColAwayGoals] != 6 {
		t.Fatalf("unexpected mapping %+v", h)
	}
	if _, ok := h[matches.ColObservation]; ok {
		t.Fatalf("expected optional column to be absent")
	}
}

func TestParseHeaderStripsBOM(t *testing.T) {
	header := append([]string{"\ufeffYear"}, fullHeader[1:]...)
	h, err := ParseHeader(header)
	if err != nil {
		t.Fatalf("expected header to parse, got %v", err)
	}
	if h[matches.ColYear] != 0 {
		t.Fatalf("expected Year at index 0, got %d", h[matches.ColYear])
	}
}

func TestParseHeaderReportsMissingColumns(t *testing.T) {
	_, err := ParseHeader([]string{"Year", "Round", "Stadium", "Country", "HomeTeam"})
	var missing *MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnsError, got %v", err)
	}
	want := []string{matches.ColHomeGoals, matches.ColAwayGoals, matches.ColAwayTeam}
	if len(missing.Columns) != len(want) {
		t.Fatalf("expected %v missing, got %v", want, missing.Columns)
	}
	for i := range want {
		if missing.Columns[i] != want[i] {
			t.Fatalf("expected %v missing, got %v", want, missing.Columns)
		}
	}
}

func TestDecodeRows(t *testing.T) {
	rows := [][]string{
		fullHeader,
		{"1930", "13 Jul 1930", "15:00", "Group 1", "Pocitos", "Montevideo", "Uruguay", "France", "4", "1", "Mexico", ""},
		{"", "", ""},
		{"1934.0", "27 May 1934", "16:30", "Round of 16", "Stadio Nazionale PNF", "Rome", "Italy", "Italy", "7", "", "USA"},
	}

	got, err := DecodeRows(rows)
	if err != nil {
		t.Fatalf("expected rows to decode, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected blank row to be skipped, got %d matches", len(got))
	}
	if got[0].HomeTeam != "France" || got[0].HomeGoals != 4 || got[0].AwayGoals != 1 {
		t.Fatalf("unexpected first match %+v", got[0])
	}
	second := got[1]
	if second.Year != 1934 {
		t.Fatalf("expected float year to be accepted, got %d", second.Year)
	}
	if second.AwayGoals != 0 {
		t.Fatalf("expected blank goals to default to 0, got %d", second.AwayGoals)
	}
	if second.Observation != "" {
		t.Fatalf("expected short row to leave trailing columns empty, got %q", second.Observation)
	}
}

func TestDecodeRowsRejectsBadIntegers(t *testing.T) {
	rows := [][]string{
		fullHeader,
		{"1930", "", "", "Final", "Centenario", "", "Uruguay", "Uruguay", "four", "2", "Argentina", ""},
	}
	_, err := DecodeRows(rows)
	var cellErr *CellError
	if !errors.As(err, &cellErr) {
		t.Fatalf("expected CellError, got %v", err)
	}
	if cellErr.Row != 2 || cellErr.Column != matches.ColHomeGoals || cellErr.Value != "four" {
		t.Fatalf("unexpected cell error %+v", cellErr)
	}
}

func TestDecodeRowsRejectsFractionalGoals(t *testing.T) {
	rows := [][]string{
		fullHeader,
		{"1930", "", "", "Final", "Centenario", "", "Uruguay", "Uruguay", "4", "2.5", "Argentina", ""},
	}
	if _, err := DecodeRows(rows); err == nil {
		t.Fatalf("expected fractional goals to fail")
	}
}

func TestDecodeRowsRejectsGoalsOutsideIntRange(t *testing.T) {
	for _, raw := range []string{"1e30", "-1e30", "9.3e18", "1e400", "NaN"} {
		rows := [][]string{
			fullHeader,
			{"1930", "", "", "Final", "Centenario", "", "Uruguay", "Uruguay", raw, "2", "Argentina", ""},
		}
		_, err := DecodeRows(rows)
		var cellErr *CellError
		if !errors.As(err, &cellErr) {
			t.Fatalf("%s: expected CellError, got %v", raw, err)
		}
		if cellErr.Column != matches.ColHomeGoals || cellErr.Value != raw {
			t.Fatalf("%s: unexpected cell error %+v", raw, cellErr)
		}
	}
}

func TestDecodeRowsAcceptsWholeFloats(t *testing.T) {
	rows := [][]string{
		fullHeader,
		{"1.93e3", "", "", "Final", "Centenario", "", "Uruguay", "Uruguay", "4.0", "2", "Argentina", ""},
	}
	got, err := DecodeRows(rows)
	if err != nil {
		t.Fatalf("expected whole floats to decode, got %v", err)
	}
	if got[0].Year != 1930 || got[0].HomeGoals != 4 {
		t.Fatalf("unexpected match %+v", got[0])
	}
}

func TestDecodeRowsEmpty(t *testing.T) {
	if _, err := DecodeRows(nil); !errors.Is(err, ErrNoRows) {
		t.Fatalf("expected ErrNoRows for no rows, got %v", err)
	}
	if _, err := DecodeRows([][]string{fullHeader, {"", ""}}); !errors.Is(err, ErrNoRows) {
		t.Fatalf("expected ErrNoRows for header only, got %v", err)
	}
}
