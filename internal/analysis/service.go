package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/preston-bernstein/worldcup-dashboard/internal/dataset"
	"github.com/preston-bernstein/worldcup-dashboard/internal/logging"
	"github.com/preston-bernstein/worldcup-dashboard/internal/metrics"
)

var (
	// ErrUnknownQuery is returned for IDs outside Q1..Q6.
	ErrUnknownQuery = errors.New("unknown query")
	// ErrUnknownCountry is returned when Q2 is asked about a country that hosted no matches.
	ErrUnknownCountry = errors.New("unknown host country")
)

// Options carries per-query selections.
type Options struct {
	Country string
}

// Service answers the fixed queries against a loaded dataset.
type Service struct {
	ds      *dataset.Dataset
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewService builds a Service. A nil dataset answers every query with zero rows.
func NewService(ds *dataset.Dataset, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		ds:      ds,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Countries lists the distinct host countries in alphabetical order.
func (s *Service) Countries() []string {
	if s.ds == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, m := range s.ds.Matches() {
		if _, ok := seen[m.Country]; ok {
			continue
		}
		seen[m.Country] = struct{}{}
		out = append(out, m.Country)
	}
	sort.Strings(out)
	return out
}

// Run executes one query.
func (s *Service) Run(ctx context.Context, id string, opts Options) (Result, error) {
	q, ok := Lookup(id)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownQuery, id)
	}

	start := s.now()
	res, err := s.run(q, opts)
	duration := s.now().Sub(start)
	s.metrics.RecordQuery(string(q.ID), duration, err)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Warn(logger, "analysis query failed", logging.FieldQuery, q.ID, "error", err)
		return Result{}, err
	}
	logging.Debug(logger, "analysis query complete",
		logging.FieldQuery, q.ID,
		logging.FieldCount, len(res.Rows),
		logging.FieldDurationMS, duration.Milliseconds(),
	)
	return res, nil
}

func (s *Service) run(q Query, opts Options) (Result, error) {
	res := Result{Query: q}
	if q.ID == Q2 {
		country, err := s.resolveCountry(opts.Country)
		if err != nil {
			return Result{}, err
		}
		res.Country = country
		res.Title = fmt.Sprintf(q.Title, country)
	}
	if s.ds == nil || s.ds.Len() == 0 {
		return res, nil
	}

	var (
		rows []Row
		err  error
	)
	switch q.ID {
	case Q1:
		rows, err = s.hostCountries()
	case Q2:
		rows, err = s.stadiumsIn(res.Country)
	case Q3:
		rows, err = s.goalsByYear()
	case Q4:
		rows, err = s.goalsConceded()
	case Q5:
		rows, err = s.goalsByStadium()
	case Q6:
		rows, err = s.matchesByRound()
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", q.ID, err)
	}
	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}
	res.Rows = rows
	return res, nil
}

func (s *Service) resolveCountry(country string) (string, error) {
	countries := s.Countries()
	if country == "" {
		if len(countries) == 0 {
			return "", nil
		}
		return countries[0], nil
	}
	for _, c := range countries {
		if c == country {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCountry, country)
}

func (s *Service) hostCountries() ([]Row, error) {
	ms := s.ds.Matches()
	countries := make([]string, len(ms))
	for i, m := range ms {
		countries[i] = m.Country
	}
	return countDesc(byLabel(countries, make([]int, len(ms))))
}

func (s *Service) stadiumsIn(country string) ([]Row, error) {
	var stadiums []string
	for _, m := range s.ds.Matches() {
		if m.Country == country {
			stadiums = append(stadiums, m.Stadium)
		}
	}
	if len(stadiums) == 0 {
		return nil, nil
	}
	return countDesc(byLabel(stadiums, make([]int, len(stadiums))))
}

func (s *Service) goalsByYear() ([]Row, error) {
	ms := s.ds.Matches()
	years := make([]int, len(ms))
	goals := make([]int, len(ms))
	for i, m := range ms {
		years[i] = m.Year
		goals[i] = m.TotalGoals()
	}
	g := byYear(years, goals)
	grouped, err := g.sum()
	if err != nil {
		return nil, err
	}
	return g.toRows(sortByKey(grouped))
}

func (s *Service) goalsConceded() ([]Row, error) {
	ms := s.ds.Matches()
	teams := make([]string, 0, 2*len(ms))
	conceded := make([]int, 0, 2*len(ms))
	for _, m := range ms {
		teams = append(teams, m.HomeTeam, m.AwayTeam)
		conceded = append(conceded, m.AwayGoals, m.HomeGoals)
	}
	return sumDesc(byLabel(teams, conceded))
}

func (s *Service) goalsByStadium() ([]Row, error) {
	ms := s.ds.Matches()
	stadiums := make([]string, len(ms))
	goals := make([]int, len(ms))
	for i, m := range ms {
		stadiums[i] = m.Stadium
		goals[i] = m.TotalGoals()
	}
	return sumDesc(byLabel(stadiums, goals))
}

func (s *Service) matchesByRound() ([]Row, error) {
	ms := s.ds.Matches()
	rounds := make([]string, len(ms))
	for i, m := range ms {
		rounds[i] = m.Round
	}
	return countDesc(byLabel(rounds, make([]int, len(ms))))
}

func countDesc(g grouping) ([]Row, error) {
	grouped, err := g.count()
	if err != nil {
		return nil, err
	}
	return g.toRows(sortDesc(grouped))
}

func sumDesc(g grouping) ([]Row, error) {
	grouped, err := g.sum()
	if err != nil {
		return nil, err
	}
	return g.toRows(sortDesc(grouped))
}
