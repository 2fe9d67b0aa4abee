package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/preston-bernstein/worldcup-dashboard/internal/analysis"
	"github.com/preston-bernstein/worldcup-dashboard/internal/config"
)

func TestRunPrintsEveryQueryForFixture(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-source", "fixture"}, &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	text := out.String()
	for _, want := range []string{"Loaded 12 rows, 12 columns from fixture", "Q1: ", "Q6: ", "Uruguay", "Total Goals per World Cup"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, text)
		}
	}
}

func TestRunSingleQueryWithCountry(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-source", "fixture", "-q", "q2", "-country", "Italy"}, &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Matches per Stadium in Italy") {
		t.Fatalf("expected Italy title, got:\n%s", text)
	}
	if strings.Contains(text, "Q1: ") {
		t.Fatalf("expected only Q2 output, got:\n%s", text)
	}
}

func TestRunReportsLoadFailure(t *testing.T) {
	err := run([]string{"-source", "csv", "-file", t.TempDir() + "/missing.csv"}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "Data not found") {
		t.Fatalf("expected load failure, got %v", err)
	}
}

func TestSelectQueries(t *testing.T) {
	ids, err := selectQueries("ALL")
	if err != nil || len(ids) != 6 {
		t.Fatalf("expected six queries, got %v (%v)", ids, err)
	}

	ids, err = selectQueries(" q5 ")
	if err != nil || len(ids) != 1 || ids[0] != analysis.Q5 {
		t.Fatalf("expected Q5, got %v (%v)", ids, err)
	}

	if _, err := selectQueries("Q9"); !errors.Is(err, analysis.ErrUnknownQuery) {
		t.Fatalf("expected ErrUnknownQuery, got %v", err)
	}
}

func TestParseFlagsDefaultsFromConfig(t *testing.T) {
	opts, err := parseFlags(nil, config.DatasetConfig{File: "cup.xlsx", Source: "auto", Sheet: "Results"})
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if opts.query != queryAll || opts.file != "cup.xlsx" || opts.source != "auto" || opts.sheet != "Results" {
		t.Fatalf("unexpected defaults %+v", opts)
	}
}

func TestTableRowsFormatsValues(t *testing.T) {
	res := analysis.Result{
		Query: analysis.Query{TableLimit: 2},
		Rows:  []analysis.Row{{Label: "A", Value: 3}, {Label: "B", Value: 2.5}, {Label: "C", Value: 1}},
	}
	rows := tableRows(res)
	if len(rows) != 2 {
		t.Fatalf("expected table limit applied, got %d rows", len(rows))
	}
	if rows[0][1] != "3" || rows[1][1] != "2.50" {
		t.Fatalf("unexpected formatting %v", rows)
	}
}
