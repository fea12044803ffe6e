package model

import "github.com/google/uuid"

// QueryHistoryItem is the summary retained after a completed query, once the
// full response has been discarded.
type QueryHistoryItem struct {
	ID            string  `json:"id"`
	Question      string  `json:"question"`
	SQL           string  `json:"sql"`
	ResultCount   int     `json:"result_count"`
	ExecutionTime float64 `json:"execution_time"`
	Timestamp     string  `json:"timestamp"`
}

// NewHistoryItem projects a response and its question into a history item
// with a fresh synthetic id.
func NewHistoryItem(question string, resp *QueryResponse) QueryHistoryItem {
	return QueryHistoryItem{
		ID:            uuid.NewString(),
		Question:      question,
		SQL:           resp.SQL,
		ResultCount:   resp.ResultCount,
		ExecutionTime: resp.ExecutionTime,
		Timestamp:     resp.Timestamp,
	}
}
