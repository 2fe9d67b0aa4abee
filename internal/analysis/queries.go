package analysis

import "strings"

// QueryID identifies one of the fixed dashboard questions.
type QueryID string

const (
	Q1 QueryID = "Q1"
	Q2 QueryID = "Q2"
	Q3 QueryID = "Q3"
	Q4 QueryID = "Q4"
	Q5 QueryID = "Q5"
	Q6 QueryID = "Q6"
)

// ChartKind selects how a result is drawn.
type ChartKind string

const (
	KindBar  ChartKind = "bar"
	KindLine ChartKind = "line"
)

// Query describes a question and how its answer is charted.
type Query struct {
	ID       QueryID   `json:"id"`
	Question string    `json:"question"`
	Title    string    `json:"title"`
	Kind     ChartKind `json:"kind"`
	XLabel   string    `json:"xLabel"`
	YLabel   string    `json:"yLabel"`
	// Rotate is the x tick label angle in degrees.
	Rotate float64 `json:"rotate,omitempty"`
	// Limit truncates the result rows; 0 keeps all.
	Limit int `json:"limit,omitempty"`
	// TableLimit truncates the table shown under the chart; 0 shows all rows.
	TableLimit int `json:"tableLimit,omitempty"`
}

var catalog = []Query{
	{ID: Q1, Question: "Which countries hosted World Cups most often?", Title: "Matches by Host Country", Kind: KindBar, XLabel: "Host Country", YLabel: "Number of Matches", TableLimit: 10},
	{ID: Q2, Question: "Which stadium hosts the highest number of games in each country?", Title: "Matches per Stadium in %s", Kind: KindBar, XLabel: "Stadium", YLabel: "Number of Matches", Rotate: 45, TableLimit: 10},
	{ID: Q3, Question: "How have total goals changed across different World Cups/years?", Title: "Total Goals per World Cup", Kind: KindLine, XLabel: "World Cup Year", YLabel: "Total Goals Scored"},
	{ID: Q4, Question: "Which team conceded the most goals in World Cup?", Title: "Teams Conceding Most Goals", Kind: KindBar, XLabel: "Team", YLabel: "Goals Conceded", Rotate: 45, Limit: 10},
	{ID: Q5, Question: "Which stadiums have seen the most goals scored?", Title: "Stadiums with Most Goals", Kind: KindBar, XLabel: "Stadium", YLabel: "Total Goals Scored", Rotate: 45, Limit: 10},
	{ID: Q6, Question: "Which rounds had the most matches?", Title: "Number of Matches by Round", Kind: KindBar, XLabel: "Tournament Round", YLabel: "Number of Matches"},
}

// Catalog lists the queries in menu order.
func Catalog() []Query {
	return append([]Query(nil), catalog...)
}

// Lookup finds a query by ID, ignoring case.
func Lookup(id string) (Query, bool) {
	for _, q := range catalog {
		if strings.EqualFold(string(q.ID), strings.TrimSpace(id)) {
			return q, true
		}
	}
	return Query{}, false
}

// Label is the menu text, e.g. "Q1: Which countries hosted World Cups most often?".
func (q Query) Label() string {
	return string(q.ID) + ": " + q.Question
}
