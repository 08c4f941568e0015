// Package providers defines the outbound ports for the third-party market
// data, FX and news APIs. Each provider issues exactly one HTTP GET per
// logical call and reports failures through the apperrors taxonomy:
// ErrNetwork for transport failures, ErrServer for refusals (non-2xx status
// or success:false envelopes), ErrDecode for unexpected response shapes.
package providers

import (
	"context"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
)

// QuoteProvider fetches a single stock quote by symbol.
type QuoteProvider interface {
	// FetchQuote returns the current price, absolute change and percent
	// change for the given (already normalized) symbol.
	FetchQuote(ctx context.Context, symbol string) (domain.QuoteData, error)
}

// ConversionProvider converts an amount between two currencies.
type ConversionProvider interface {
	Convert(ctx context.Context, from, to string, amount float64) (float64, error)
}

// RatesProvider fetches the live rate table versus a fixed base currency.
// Keys of the returned mapping are bare target currency codes.
type RatesProvider interface {
	FetchLiveRates(ctx context.Context, base string) (map[string]float64, error)
}

// NewsPayload is the decoded top-level shape of a news sentiment response.
// Exactly one of three conditions holds: Feed is non-nil (possibly empty),
// Note/Information carries an advisory string, or neither is present.
type NewsPayload struct {
	// Feed is nil when the response carried no feed at all, and non-nil
	// but empty when the feed was present with zero items. The distinction
	// matters to callers.
	Feed        []domain.NewsArticle
	HasFeed     bool
	Note        string
	Information string
}

// NewsProvider fetches the sentiment-tagged news feed for a fixed ticker list.
type NewsProvider interface {
	FetchNewsSentiment(ctx context.Context) (NewsPayload, error)
}
