package services

import (
	portsprov "github.com/pocketfin/pocket_finance_app/internal/core/ports/providers"
	portsrepo "github.com/pocketfin/pocket_finance_app/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocket_finance_app/internal/core/ports/services"
	"github.com/pocketfin/pocket_finance_app/internal/platform/config"
)

// Providers bundles the upstream API clients for injection into NewContainer.
type Providers struct {
	Quote      portsprov.QuoteProvider
	Conversion portsprov.ConversionProvider
	Rates      portsprov.RatesProvider
	News       portsprov.NewsProvider
}

// NewContainer creates the service container with properly initialized
// dependencies.
func NewContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, providers Providers) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Watchlist:   NewWatchlistService(providers.Quote, repos.WatchlistRepo),
		Converter:   NewConverterService(providers.Conversion, cfg.AvailableCurrencies),
		Rates:       NewRatesService(providers.Rates, cfg.BaseCurrency, cfg.RateAllowList),
		News:        NewNewsService(providers.News),
		Transaction: NewTransactionService(repos.TransactionRepo),
	}
}
