package domain

import "strings"

// Quote is a snapshot of a tracked stock. Identity for deduplication purposes
// is the symbol alone; two quotes with the same symbol are the same entity
// even if their prices differ.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// QuoteData is the raw numeric payload of a single quote fetch.
type QuoteData struct {
	Current       float64
	Change        float64
	ChangePercent float64
}

// NormalizeSymbol canonicalizes a user-supplied ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// WatchlistEntry is a persisted watchlist row: the symbol plus an optional
// custom display name. Quote values are not persisted and are re-fetched on load.
type WatchlistEntry struct {
	Symbol     string `json:"symbol"`
	CustomName string `json:"customName,omitempty"`
}
