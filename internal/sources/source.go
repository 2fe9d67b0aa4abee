package sources

import (
	"context"

	"github.com/preston-bernstein/worldcup-dashboard/internal/domain/matches"
)

// Source names used in configuration, logs and metrics.
const (
	NameXLSX    = "xlsx"
	NameCSV     = "csv"
	NameFixture = "fixture"
)

// MatchSource loads the full set of match results in one pass.
// Implementations read their backing file on every call; callers load once and keep the result.
type MatchSource interface {
	Name() string
	Load(ctx context.Context) ([]matches.Match, error)
}
