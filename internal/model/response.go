package model

import "github.com/rotisserie/eris"

// QueryResponse is the full payload of a successful query: the generated SQL,
// the result rows, and execution metadata.
type QueryResponse struct {
	SQL           string        `json:"sql"`
	Results       []QueryResult `json:"results"`
	ExecutionTime float64       `json:"execution_time"`
	ResultCount   int           `json:"result_count"`
	Timestamp     string        `json:"timestamp"`
}

// Validate reports a mismatch between the declared result count and the
// actual number of rows. The mismatch is a data-integrity signal from the
// service; callers surface it rather than correcting the count.
func (r *QueryResponse) Validate() error {
	if r.ResultCount != len(r.Results) {
		return eris.Errorf("model: result_count %d does not match %d results",
			r.ResultCount, len(r.Results))
	}
	return nil
}

// ResultByID returns the result with the given id, or nil.
func (r *QueryResponse) ResultByID(id int64) *QueryResult {
	for i := range r.Results {
		if r.Results[i].ID == id {
			return &r.Results[i]
		}
	}
	return nil
}
