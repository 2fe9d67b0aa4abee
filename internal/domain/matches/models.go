package matches

import "strconv"

// Column names as they appear in the source spreadsheet header.
const (
	ColYear        = "Year"
	ColDate        = "Date"
	ColTime        = "Time"
	ColRound       = "Round"
	ColStadium     = "Stadium"
	ColCity        = "City"
	ColCountry     = "Country"
	ColHomeTeam    = "HomeTeam"
	ColHomeGoals   = "HomeGoals"
	ColAwayGoals   = "AwayGoals"
	ColAwayTeam    = "AwayTeam"
	ColObservation = "Observation"
)

// Columns lists every match column in spreadsheet order.
var Columns = []string{
	ColYear, ColDate, ColTime, ColRound, ColStadium, ColCity, ColCountry,
	ColHomeTeam, ColHomeGoals, ColAwayGoals, ColAwayTeam, ColObservation,
}

// RequiredColumns must be present in a source header for the analysis queries to run.
var RequiredColumns = []string{
	ColYear, ColRound, ColStadium, ColCountry, ColHomeTeam, ColHomeGoals, ColAwayGoals, ColAwayTeam,
}

// NumericColumns hold integer values.
var NumericColumns = []string{ColYear, ColHomeGoals, ColAwayGoals}

// Match is one World Cup match result.
type Match struct {
	Year        int    `json:"year"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Round       string `json:"round"`
	Stadium     string `json:"stadium"`
	City        string `json:"city"`
	Country     string `json:"country"`
	HomeTeam    string `json:"homeTeam"`
	HomeGoals   int    `json:"homeGoals"`
	AwayGoals   int    `json:"awayGoals"`
	AwayTeam    string `json:"awayTeam"`
	Observation string `json:"observation"`
}

// TotalGoals is the number of goals scored by both sides.
func (m Match) TotalGoals() int {
	return m.HomeGoals + m.AwayGoals
}

// Record returns the match as spreadsheet cells in Columns order.
func (m Match) Record() []string {
	return []string{
		strconv.Itoa(m.Year), m.Date, m.Time, m.Round, m.Stadium, m.City, m.Country,
		m.HomeTeam, strconv.Itoa(m.HomeGoals), strconv.Itoa(m.AwayGoals), m.AwayTeam, m.Observation,
	}
}
