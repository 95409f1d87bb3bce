package model

import "time"

// SearchLog is an append-only record of one AI-assisted search.
// EnhancedQuery holds the serialized analysis; ResultsCount the number of products returned.
type SearchLog struct {
	ID            int64     `json:"id"`
	Query         string    `json:"query"`
	EnhancedQuery string    `json:"enhanced_query"`
	CreatedAt     time.Time `json:"created_at"`
	ResultsCount  int       `json:"results_count"`
	IsAISearch    bool      `json:"is_ai_search"`
}
