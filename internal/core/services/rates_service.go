package services

import (
	"context"
	"time"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	portsprov "github.com/pocketfin/pocket_finance_app/internal/core/ports/providers"
	portssvc "github.com/pocketfin/pocket_finance_app/internal/core/ports/services"
)

// RatesService fetches the live rate table against a fixed base currency and
// derives its filtered display view.
type RatesService struct {
	provider  portsprov.RatesProvider
	base      string
	allowList []string
}

// NewRatesService creates a new RatesService.
func NewRatesService(provider portsprov.RatesProvider, base string, allowList []string) *RatesService {
	return &RatesService{
		provider:  provider,
		base:      base,
		allowList: allowList,
	}
}

var _ portssvc.RatesSvcFacade = (*RatesService)(nil)

// FetchRates issues one upstream call and returns the fresh snapshot.
func (s *RatesService) FetchRates(ctx context.Context) (*domain.RateSnapshot, error) {
	rates, err := s.provider.FetchLiveRates(ctx, s.base)
	if err != nil {
		return nil, err
	}
	return &domain.RateSnapshot{
		Base:      s.base,
		Rates:     rates,
		FetchedAt: time.Now(),
	}, nil
}

// FilteredRates recomputes the display view on every call.
func (s *RatesService) FilteredRates(snapshot *domain.RateSnapshot) []domain.RateEntry {
	if snapshot == nil {
		return nil
	}
	return domain.FilterRates(snapshot.Rates, s.allowList)
}
