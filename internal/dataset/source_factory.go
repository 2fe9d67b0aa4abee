package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/preston-bernstein/worldcup-dashboard/internal/config"
	"github.com/preston-bernstein/worldcup-dashboard/internal/sources"
	"github.com/preston-bernstein/worldcup-dashboard/internal/sources/csvfile"
	"github.com/preston-bernstein/worldcup-dashboard/internal/sources/fixture"
	"github.com/preston-bernstein/worldcup-dashboard/internal/sources/xlsx"
)

const sourceAuto = "auto"

// NewSource picks the source implementation named in the config.
// "auto" chooses csv for a .csv file and xlsx otherwise.
func NewSource(cfg config.DatasetConfig) (sources.MatchSource, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Source))
	if name == "" || name == sourceAuto {
		name = sourceFromExtension(cfg.File)
	}

	switch name {
	case sources.NameXLSX:
		return xlsx.New(cfg.File, cfg.Sheet), nil
	case sources.NameCSV:
		return csvfile.New(cfg.File), nil
	case sources.NameFixture:
		return fixture.New(), nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Source)
	}
}

func sourceFromExtension(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return sources.NameCSV
	}
	return sources.NameXLSX
}
