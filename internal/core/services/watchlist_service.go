package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/pocketfin/pocket_finance_app/internal/apperrors"
	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	portsprov "github.com/pocketfin/pocket_finance_app/internal/core/ports/providers"
	portsrepo "github.com/pocketfin/pocket_finance_app/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocket_finance_app/internal/core/ports/services"
)

// WatchlistService fetches stock quotes and publishes them into per-user
// watchlists. All state mutation funnels through the service's mutex, so
// concurrent fetch completions cannot race; list order is completion order.
type WatchlistService struct {
	provider portsprov.QuoteProvider
	repo     portsrepo.WatchlistRepositoryFacade

	mu        sync.Mutex
	published map[string][]domain.Quote
}

// NewWatchlistService creates a new WatchlistService.
func NewWatchlistService(provider portsprov.QuoteProvider, repo portsrepo.WatchlistRepositoryFacade) *WatchlistService {
	return &WatchlistService{
		provider:  provider,
		repo:      repo,
		published: make(map[string][]domain.Quote),
	}
}

var _ portssvc.WatchlistSvcFacade = (*WatchlistService)(nil)

// FetchQuote fetches a quote for the symbol and publishes it into the user's
// watchlist. If the symbol is already tracked, the freshly fetched result is
// silently dropped and the existing entry is returned unchanged.
func (s *WatchlistService) FetchQuote(ctx context.Context, userID string, symbol string) (*domain.Quote, error) {
	symbol = domain.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("%w: symbol must not be empty", apperrors.ErrValidation)
	}

	data, err := s.provider.FetchQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	quote := domain.Quote{
		Symbol:        symbol,
		Name:          symbol,
		Price:         data.Current,
		Change:        data.Change,
		ChangePercent: data.ChangePercent,
	}

	existing, added := s.publish(userID, quote)
	if !added {
		return existing, nil
	}

	if err := s.repo.AddSymbol(ctx, userID, domain.WatchlistEntry{Symbol: symbol}); err != nil {
		// Roll the publish back so a retry re-attempts persistence instead
		// of short-circuiting on the dedup check.
		s.unpublish(userID, symbol)
		return nil, fmt.Errorf("failed to persist watchlist symbol: %w", err)
	}
	return &quote, nil
}

// publish appends a quote unless its symbol is already present. The
// containment check and the append happen under one lock acquisition, so two
// concurrent fetches for the same symbol can never both land.
func (s *WatchlistService) publish(userID string, quote domain.Quote) (*domain.Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.published[userID] {
		if s.published[userID][i].Symbol == quote.Symbol {
			existing := s.published[userID][i]
			return &existing, false
		}
	}
	s.published[userID] = append(s.published[userID], quote)
	return &quote, true
}

// unpublish removes a symbol from the in-memory collection.
func (s *WatchlistService) unpublish(userID string, symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quotes := s.published[userID]
	kept := quotes[:0]
	for _, q := range quotes {
		if q.Symbol != symbol {
			kept = append(kept, q)
		}
	}
	s.published[userID] = kept
}

// RemoveQuote removes a symbol from the watchlist. Absent symbols are a no-op.
func (s *WatchlistService) RemoveQuote(ctx context.Context, userID string, symbol string) error {
	symbol = domain.NormalizeSymbol(symbol)
	if symbol == "" {
		return fmt.Errorf("%w: symbol must not be empty", apperrors.ErrValidation)
	}

	if err := s.repo.RemoveSymbol(ctx, userID, symbol); err != nil {
		return fmt.Errorf("failed to remove watchlist symbol: %w", err)
	}

	s.unpublish(userID, symbol)
	return nil
}

// ListWatchlist returns the user's currently published quotes.
func (s *WatchlistService) ListWatchlist(ctx context.Context, userID string) ([]domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quotes := make([]domain.Quote, len(s.published[userID]))
	copy(quotes, s.published[userID])
	return quotes, nil
}

// fetchOutcome is the typed result of one concurrent quote fetch.
type fetchOutcome struct {
	symbol string
	data   domain.QuoteData
	err    error
}

// RefreshAll clears the published collection and re-fetches every tracked
// symbol concurrently. Outcomes are applied by this single consumer in
// arrival order, so the refreshed list is in completion order, not the
// original order. Failed fetches leave their symbol out of the result.
func (s *WatchlistService) RefreshAll(ctx context.Context, userID string) ([]domain.Quote, error) {
	symbols := s.trackedSymbols(ctx, userID)

	s.mu.Lock()
	s.published[userID] = nil
	s.mu.Unlock()

	outcomes := make(chan fetchOutcome, len(symbols))
	for _, symbol := range symbols {
		go func(symbol string) {
			data, err := s.provider.FetchQuote(ctx, symbol)
			outcomes <- fetchOutcome{symbol: symbol, data: data, err: err}
		}(symbol)
	}

	for range symbols {
		outcome := <-outcomes
		if outcome.err != nil {
			continue
		}
		s.publish(userID, domain.Quote{
			Symbol:        outcome.symbol,
			Name:          outcome.symbol,
			Price:         outcome.data.Current,
			Change:        outcome.data.Change,
			ChangePercent: outcome.data.ChangePercent,
		})
	}

	return s.ListWatchlist(ctx, userID)
}

// trackedSymbols prefers the persisted symbol list; read failures degrade to
// the in-memory published symbols, never to an error.
func (s *WatchlistService) trackedSymbols(ctx context.Context, userID string) []string {
	entries, err := s.repo.ListSymbols(ctx, userID)
	if err == nil && len(entries) > 0 {
		symbols := make([]string, len(entries))
		for i, e := range entries {
			symbols[i] = e.Symbol
		}
		return symbols
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	symbols := make([]string, len(s.published[userID]))
	for i, q := range s.published[userID] {
		symbols[i] = q.Symbol
	}
	return symbols
}
