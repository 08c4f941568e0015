package repositories

import (
	"context"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
)

// WatchlistReader defines read operations for a user's watchlist.
type WatchlistReader interface {
	// ListSymbols returns the user's symbols in insertion order.
	// Read failures degrade to an empty list and are never fatal.
	ListSymbols(ctx context.Context, userID string) ([]domain.WatchlistEntry, error)
}

// WatchlistWriter defines write operations for a user's watchlist.
type WatchlistWriter interface {
	// AddSymbol appends a symbol if not already present. Adding an existing
	// symbol is a no-op, preserving the no-duplicates invariant.
	AddSymbol(ctx context.Context, userID string, entry domain.WatchlistEntry) error

	// RemoveSymbol removes a symbol. Removing an absent symbol is not an error.
	RemoveSymbol(ctx context.Context, userID string, symbol string) error
}

// WatchlistRepositoryFacade combines all watchlist repository interfaces.
type WatchlistRepositoryFacade interface {
	WatchlistReader
	WatchlistWriter
}
