package dataset

import (
	"testing"

	"github.com/preston-bernstein/worldcup-dashboard/internal/config"
	"github.com/preston-bernstein/worldcup-dashboard/internal/sources"
)

func TestNewSourceSelection(t *testing.T) {
	cases := []struct {
		cfg  config.DatasetConfig
		want string
	}{
		{config.DatasetConfig{File: "world_cup_results.xlsx", Source: "auto"}, sources.NameXLSX},
		{config.DatasetConfig{File: "results.CSV", Source: ""}, sources.NameCSV},
		{config.DatasetConfig{File: "results.csv", Source: "xlsx"}, sources.NameXLSX},
		{config.DatasetConfig{File: "results.xlsx", Source: "CSV"}, sources.NameCSV},
		{config.DatasetConfig{Source: "fixture"}, sources.NameFixture},
	}
	for _, tc := range cases {
		src, err := NewSource(tc.cfg)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", tc.cfg, err)
		}
		if src.Name() != tc.want {
			t.Fatalf("expected %s for %+v, got %s", tc.want, tc.cfg, src.Name())
		}
	}
}

func TestNewSourceUnknown(t *testing.T) {
	if _, err := NewSource(config.DatasetConfig{Source: "postgres"}); err == nil {
		t.Fatalf("expected unknown source error")
	}
}
