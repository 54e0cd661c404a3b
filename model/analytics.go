package model

// SearchEvent is one served query kept by the request history window.
type SearchEvent struct {
	QueryID        string `json:"query_id"`
	Query          string `json:"query"`
	WasEmpty       bool   `json:"was_empty"`
	ResultCount    int    `json:"result_count"`
	SequenceNumber int64  `json:"sequence_number"`
}

// PopularQuery counts how often a query text appears in the window.
type PopularQuery struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
	EmptyCount  int    `json:"empty_count"`
}

// HistoryStats summarizes the request history window.
type HistoryStats struct {
	Window         int            `json:"window"`
	Retained       int            `json:"retained"`
	EmptyResults   int            `json:"empty_results"`
	EmptyRatio     float64        `json:"empty_ratio"`
	Sequence       int64          `json:"sequence"`
	PopularQueries []PopularQuery `json:"popular_queries"`
}
