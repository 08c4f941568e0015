// Package exchangerate implements the conversion and live-rate providers
// against the exchangerate.host API.
package exchangerate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pocketfin/pocket_finance_app/internal/adapters/extapi"
	"github.com/pocketfin/pocket_finance_app/internal/apperrors"
	portsprov "github.com/pocketfin/pocket_finance_app/internal/core/ports/providers"
)

// Client is an exchangerate.host client serving both the converter and the
// live rate table.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an exchangerate.host client against the given base URL.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

var (
	_ portsprov.ConversionProvider = (*Client)(nil)
	_ portsprov.RatesProvider      = (*Client)(nil)
)

type errorInfo struct {
	Info string `json:"info"`
}

// convertEnvelope is the /convert response: a success flag, an optional
// numeric result and optional error info.
type convertEnvelope struct {
	Success bool       `json:"success"`
	Result  *float64   `json:"result"`
	Error   *errorInfo `json:"error"`
}

// Convert issues one GET against /convert.
func (c *Client) Convert(ctx context.Context, from, to string, amount float64) (float64, error) {
	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)
	params.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	params.Set("access_key", c.apiKey)
	addr := fmt.Sprintf("%s/convert?%s", c.baseURL, params.Encode())

	var envelope convertEnvelope
	if err := extapi.GetJSON(ctx, c.httpClient, addr, &envelope); err != nil {
		return 0, err
	}

	if !envelope.Success {
		msg := "conversion failed"
		if envelope.Error != nil && envelope.Error.Info != "" {
			msg = envelope.Error.Info
		}
		return 0, fmt.Errorf("%w: %s", apperrors.ErrServer, msg)
	}
	if envelope.Result == nil {
		return 0, fmt.Errorf("%w: invalid conversion result", apperrors.ErrDecode)
	}
	return *envelope.Result, nil
}

// liveEnvelope is the /live response: a success flag and a mapping of
// currency-pair codes ("USDEUR") to rates.
type liveEnvelope struct {
	Success bool               `json:"success"`
	Source  string             `json:"source"`
	Quotes  map[string]float64 `json:"quotes"`
	Error   *errorInfo         `json:"error"`
}

// FetchLiveRates issues one GET against /live with the fixed base currency.
// Pair keys are normalized to bare target codes ("USDEUR" becomes "EUR").
func (c *Client) FetchLiveRates(ctx context.Context, base string) (map[string]float64, error) {
	params := url.Values{}
	params.Set("access_key", c.apiKey)
	params.Set("source", base)
	addr := fmt.Sprintf("%s/live?%s", c.baseURL, params.Encode())

	var envelope liveEnvelope
	if err := extapi.GetJSON(ctx, c.httpClient, addr, &envelope); err != nil {
		return nil, err
	}

	if !envelope.Success {
		msg := "unknown error"
		if envelope.Error != nil && envelope.Error.Info != "" {
			msg = envelope.Error.Info
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrServer, msg)
	}

	rates := make(map[string]float64, len(envelope.Quotes))
	for pair, rate := range envelope.Quotes {
		code := strings.TrimPrefix(pair, base)
		if code == "" {
			continue
		}
		rates[code] = rate
	}
	return rates, nil
}
