package services

import (
	"context"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
)

// RatesSvcFacade fetches the live multi-currency snapshot and exposes its
// filtered display view.
type RatesSvcFacade interface {
	// FetchRates issues one upstream call and returns the fresh snapshot.
	FetchRates(ctx context.Context) (*domain.RateSnapshot, error)

	// FilteredRates recomputes the display view of a snapshot: allow-listed
	// codes only, sorted ascending. Pure, never cached.
	FilteredRates(snapshot *domain.RateSnapshot) []domain.RateEntry
}
