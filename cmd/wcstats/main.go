package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/preston-bernstein/worldcup-dashboard/internal/analysis"
	"github.com/preston-bernstein/worldcup-dashboard/internal/config"
	"github.com/preston-bernstein/worldcup-dashboard/internal/dataset"
)

const queryAll = "all"

var (
	heading = color.New(color.FgCyan, color.Bold)
	info    = color.New(color.FgYellow)
	failure = color.New(color.FgRed)
)

type options struct {
	query   string
	country string
	file    string
	source  string
	sheet   string
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		failure.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if err := config.LoadDotenv(); err != nil {
		info.Fprintf(out, "dotenv file ignored: %v\n", err)
	}
	opts, err := parseFlags(args, config.Load().Dataset)
	if err != nil {
		return err
	}

	src, err := dataset.NewSource(config.DatasetConfig{File: opts.file, Source: opts.source, Sheet: opts.sheet})
	if err != nil {
		return err
	}
	state := dataset.NewLoader(src, nil, nil).Load(context.Background())
	if !state.Ready() {
		return fmt.Errorf("%s: %w", dataset.HaltedMessage, state.Err)
	}

	rows, cols := state.Dataset.Shape()
	info.Fprintf(out, "Loaded %d rows, %d columns from %s\n", rows, cols, src.Name())

	ids, err := selectQueries(opts.query)
	if err != nil {
		return err
	}
	svc := analysis.NewService(state.Dataset, nil, nil)
	for _, id := range ids {
		res, err := svc.Run(context.Background(), string(id), analysis.Options{Country: opts.country})
		if err != nil {
			return fmt.Errorf("run %s: %w", id, err)
		}
		printResult(out, res)
	}
	return nil
}

func parseFlags(args []string, defaults config.DatasetConfig) (options, error) {
	fs := flag.NewFlagSet("wcstats", flag.ContinueOnError)
	opts := options{}
	fs.StringVar(&opts.query, "q", queryAll, "query to run (Q1..Q6 or all)")
	fs.StringVar(&opts.country, "country", "", "host country for Q2")
	fs.StringVar(&opts.file, "file", defaults.File, "dataset file")
	fs.StringVar(&opts.source, "source", defaults.Source, "dataset source (xlsx, csv, fixture, auto)")
	fs.StringVar(&opts.sheet, "sheet", defaults.Sheet, "xlsx sheet name")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func selectQueries(q string) ([]analysis.QueryID, error) {
	if strings.EqualFold(strings.TrimSpace(q), queryAll) {
		var ids []analysis.QueryID
		for _, query := range analysis.Catalog() {
			ids = append(ids, query.ID)
		}
		return ids, nil
	}
	query, ok := analysis.Lookup(q)
	if !ok {
		return nil, fmt.Errorf("%w: %q", analysis.ErrUnknownQuery, q)
	}
	return []analysis.QueryID{query.ID}, nil
}

func printResult(out io.Writer, res analysis.Result) {
	heading.Fprintf(out, "\n%s\n", res.Label())
	info.Fprintln(out, res.Title)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{res.XLabel, res.YLabel})
	for _, row := range tableRows(res) {
		table.Append(row)
	}
	table.Render()
}

func tableRows(res analysis.Result) [][]string {
	rows := res.TableRows()
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{row.Label, formatValue(row.Value)})
	}
	return out
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
