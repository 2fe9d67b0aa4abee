package testutil

import (
	"context"

	"github.com/preston-bernstein/worldcup-dashboard/internal/domain/matches"
)

// StubSource returns fixed rows or an error and counts calls.
type StubSource struct {
	NameVal string
	Rows    []matches.Match
	Err     error
	Calls   int
}

func (s *StubSource) Name() string {
	if s.NameVal == "" {
		return "stub"
	}
	return s.NameVal
}

func (s *StubSource) Load(ctx context.Context) ([]matches.Match, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]matches.Match(nil), s.Rows...), nil
}
