package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/worldcup-dashboard/internal/config"
	"github.com/preston-bernstein/worldcup-dashboard/internal/dataset"
	"github.com/preston-bernstein/worldcup-dashboard/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-dashboard/internal/logging"
	"github.com/preston-bernstein/worldcup-dashboard/internal/sources"
)

// brokenSource reports a configuration error as a load failure so the
// dashboard starts halted instead of exiting.
type brokenSource struct {
	name string
	err  error
}

func (s brokenSource) Name() string { return s.name }

func (s brokenSource) Load(ctx context.Context) ([]matches.Match, error) {
	return nil, s.err
}

func buildSource(cfg config.DatasetConfig, logger *slog.Logger) sources.MatchSource {
	src, err := dataset.NewSource(cfg)
	if err != nil {
		logging.Warn(logger, "invalid dataset source", logging.FieldSource, cfg.Source, "error", err)
		return brokenSource{name: cfg.Source, err: err}
	}
	return src
}
