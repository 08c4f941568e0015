package services

import (
	"context"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
)

// WatchlistReaderSvc defines read operations over a user's watchlist.
type WatchlistReaderSvc interface {
	// ListWatchlist returns the user's currently published quotes.
	ListWatchlist(ctx context.Context, userID string) ([]domain.Quote, error)
}

// WatchlistWriterSvc defines the quote-fetching operations.
type WatchlistWriterSvc interface {
	// FetchQuote fetches a quote for the symbol and publishes it into the
	// watchlist. A symbol already present leaves the list untouched; the
	// fetched result is silently dropped.
	FetchQuote(ctx context.Context, userID string, symbol string) (*domain.Quote, error)

	// RemoveQuote removes a symbol from the watchlist. Absent symbols are
	// not an error.
	RemoveQuote(ctx context.Context, userID string, symbol string) error

	// RefreshAll clears the published collection and re-fetches every
	// tracked symbol concurrently. The resulting order is completion order;
	// failed symbols are absent from the result.
	RefreshAll(ctx context.Context, userID string) ([]domain.Quote, error)
}

// WatchlistSvcFacade combines all watchlist service interfaces.
type WatchlistSvcFacade interface {
	WatchlistReaderSvc
	WatchlistWriterSvc
}
