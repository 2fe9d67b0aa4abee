package analysis

// Row is one aggregated group.
type Row struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Result is the answer to one query.
type Result struct {
	Query
	// Country is the Q2 selection; empty for other queries.
	Country string `json:"country,omitempty"`
	Rows    []Row  `json:"rows"`
}

// TableRows returns the rows shown in the table under the chart.
func (r Result) TableRows() []Row {
	if r.TableLimit > 0 && len(r.Rows) > r.TableLimit {
		return r.Rows[:r.TableLimit]
	}
	return r.Rows
}

// Max is the largest value, or 0 for an empty result.
func (r Result) Max() float64 {
	var max float64
	for _, row := range r.Rows {
		if row.Value > max {
			max = row.Value
		}
	}
	return max
}
