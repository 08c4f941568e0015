// Package finnhub implements the quote provider against the Finnhub API.
package finnhub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pocketfin/pocket_finance_app/internal/adapters/extapi"
	"github.com/pocketfin/pocket_finance_app/internal/apperrors"
	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	portsprov "github.com/pocketfin/pocket_finance_app/internal/core/ports/providers"
)

// Client is a Finnhub quote client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Finnhub client against the given base URL.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

var _ portsprov.QuoteProvider = (*Client)(nil)

// quoteEnvelope is the Finnhub /quote response: current price, absolute
// change and percent change.
type quoteEnvelope struct {
	Current       *float64 `json:"c"`
	Change        *float64 `json:"d"`
	ChangePercent *float64 `json:"dp"`
}

// FetchQuote issues one GET against /quote for the given symbol.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (domain.QuoteData, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("token", c.apiKey)
	addr := fmt.Sprintf("%s/quote?%s", c.baseURL, params.Encode())

	var envelope quoteEnvelope
	if err := extapi.GetJSON(ctx, c.httpClient, addr, &envelope); err != nil {
		return domain.QuoteData{}, err
	}
	// Finnhub answers unknown symbols with nulls rather than an error status.
	if envelope.Current == nil || envelope.Change == nil || envelope.ChangePercent == nil {
		return domain.QuoteData{}, fmt.Errorf("%w: malformed quote response", apperrors.ErrDecode)
	}

	return domain.QuoteData{
		Current:       *envelope.Current,
		Change:        *envelope.Change,
		ChangePercent: *envelope.ChangePercent,
	}, nil
}
