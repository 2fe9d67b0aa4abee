package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod  = "method"
	AttrPath    = "path"
	AttrStatus  = "status"
	AttrSource  = "source"
	AttrQuery   = "query"
	AttrOutcome = "outcome"
)

// Chat reply outcomes.
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
)
