package fixture

import (
	"context"

	"github.com/preston-bernstein/worldcup-dashboard/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-dashboard/internal/sources"
)

// Source returns a static set of matches useful for local runs and tests.
type Source struct{}

// New creates a fixture source.
func New() *Source {
	return &Source{}
}

func (s *Source) Name() string { return sources.NameFixture }

// Load returns a deterministic copy of the fixture matches.
func (s *Source) Load(ctx context.Context) ([]matches.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Matches(), nil
}

// Matches returns twelve matches from the 1930, 1934 and 2014 tournaments.
// Host countries, rounds and stadiums are chosen so every analysis query has a
// distinct leader.
func Matches() []matches.Match {
	return []matches.Match{
		{Year: 1930, Date: "13 Jul 1930", Time: "15:00", Round: "Group 1", Stadium: "Pocitos", City: "Montevideo", Country: "Uruguay", HomeTeam: "France", HomeGoals: 4, AwayGoals: 1, AwayTeam: "Mexico"},
		{Year: 1930, Date: "13 Jul 1930", Time: "15:00", Round: "Group 4", Stadium: "Parque Central", City: "Montevideo", Country: "Uruguay", HomeTeam: "USA", HomeGoals: 3, AwayGoals: 0, AwayTeam: "Belgium"},
		{Year: 1930, Date: "18 Jul 1930", Time: "14:30", Round: "Group 3", Stadium: "Estadio Centenario", City: "Montevideo", Country: "Uruguay", HomeTeam: "Uruguay", HomeGoals: 1, AwayGoals: 0, AwayTeam: "Peru"},
		{Year: 1930, Date: "26 Jul 1930", Time: "14:45", Round: "Semi-finals", Stadium: "Estadio Centenario", City: "Montevideo", Country: "Uruguay", HomeTeam: "Uruguay", HomeGoals: 6, AwayGoals: 1, AwayTeam: "Yugoslavia"},
		{Year: 1930, Date: "30 Jul 1930", Time: "14:15", Round: "Final", Stadium: "Estadio Centenario", City: "Montevideo", Country: "Uruguay", HomeTeam: "Uruguay", HomeGoals: 4, AwayGoals: 2, AwayTeam: "Argentina"},
		{Year: 1934, Date: "27 May 1934", Time: "16:30", Round: "Round of 16", Stadium: "Stadio Nazionale PNF", City: "Rome", Country: "Italy", HomeTeam: "Italy", HomeGoals: 7, AwayGoals: 1, AwayTeam: "USA"},
		{Year: 1934, Date: "31 May 1934", Time: "16:30", Round: "Quarter-finals", Stadium: "Giovanni Berta", City: "Florence", Country: "Italy", HomeTeam: "Italy", HomeGoals: 1, AwayGoals: 1, AwayTeam: "Spain", Observation: "Replay required"},
		{Year: 1934, Date: "10 Jun 1934", Time: "17:30", Round: "Final", Stadium: "Stadio Nazionale PNF", City: "Rome", Country: "Italy", HomeTeam: "Italy", HomeGoals: 2, AwayGoals: 1, AwayTeam: "Czechoslovakia", Observation: "Italy win after extra time"},
		{Year: 2014, Date: "12 Jun 2014", Time: "17:00", Round: "Group A", Stadium: "Arena de Sao Paulo", City: "Sao Paulo", Country: "Brazil", HomeTeam: "Brazil", HomeGoals: 3, AwayGoals: 1, AwayTeam: "Croatia"},
		{Year: 2014, Date: "08 Jul 2014", Time: "17:00", Round: "Semi-finals", Stadium: "Estadio Mineirao", City: "Belo Horizonte", Country: "Brazil", HomeTeam: "Brazil", HomeGoals: 1, AwayGoals: 7, AwayTeam: "Germany"},
		{Year: 2014, Date: "12 Jul 2014", Time: "17:00", Round: "Play-off for third place", Stadium: "Estadio Nacional", City: "Brasilia", Country: "Brazil", HomeTeam: "Brazil", HomeGoals: 0, AwayGoals: 3, AwayTeam: "Netherlands"},
		{Year: 2014, Date: "13 Jul 2014", Time: "16:00", Round: "Final", Stadium: "Estadio do Maracana", City: "Rio De Janeiro", Country: "Brazil", HomeTeam: "Germany", HomeGoals: 1, AwayGoals: 0, AwayTeam: "Argentina", Observation: "Germany win after extra time"},
	}
}
