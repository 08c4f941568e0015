package models

import "time"

// WatchlistSymbol is the database row shape for one watchlist entry. Position
// preserves insertion order; quotes themselves are never persisted.
type WatchlistSymbol struct {
	UserID     string
	Symbol     string
	CustomName string
	Position   int
	AddedAt    time.Time
}
