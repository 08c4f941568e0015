// Package alphavantage implements the news sentiment provider against the
// Alpha Vantage NEWS_SENTIMENT endpoint.
package alphavantage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pocketfin/pocket_finance_app/internal/adapters/extapi"
	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	portsprov "github.com/pocketfin/pocket_finance_app/internal/core/ports/providers"
)

// Client is an Alpha Vantage news sentiment client.
type Client struct {
	baseURL    string
	apiKey     string
	tickers    []string
	httpClient *http.Client
}

// NewClient creates an Alpha Vantage client with the fixed ticker list.
func NewClient(baseURL, apiKey string, tickers []string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		tickers:    tickers,
		httpClient: httpClient,
	}
}

var _ portsprov.NewsProvider = (*Client)(nil)

type rawArticle struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Summary       string `json:"summary"`
	BannerImage   string `json:"banner_image"`
	Sentiment     string `json:"overall_sentiment_label"`
	Source        string `json:"source"`
	TimePublished string `json:"time_published"`
}

// newsEnvelope is the NEWS_SENTIMENT response: either a feed of articles, an
// advisory string (Note, or Information for rate limits), or neither. The
// pointer on Feed keeps "feed absent" distinguishable from "feed empty".
type newsEnvelope struct {
	Feed        *[]rawArticle `json:"feed"`
	Note        string        `json:"Note"`
	Information string        `json:"Information"`
}

// FetchNewsSentiment issues one GET against /query?function=NEWS_SENTIMENT
// for the configured tickers.
func (c *Client) FetchNewsSentiment(ctx context.Context) (portsprov.NewsPayload, error) {
	params := url.Values{}
	params.Set("function", "NEWS_SENTIMENT")
	params.Set("tickers", strings.Join(c.tickers, ","))
	params.Set("apikey", c.apiKey)
	addr := fmt.Sprintf("%s/query?%s", c.baseURL, params.Encode())

	var envelope newsEnvelope
	if err := extapi.GetJSON(ctx, c.httpClient, addr, &envelope); err != nil {
		return portsprov.NewsPayload{}, err
	}

	payload := portsprov.NewsPayload{
		Note:        envelope.Note,
		Information: envelope.Information,
	}
	if envelope.Feed != nil {
		payload.HasFeed = true
		payload.Feed = make([]domain.NewsArticle, 0, len(*envelope.Feed))
		for _, raw := range *envelope.Feed {
			payload.Feed = append(payload.Feed, domain.NewsArticle{
				Title:         raw.Title,
				URL:           raw.URL,
				Summary:       raw.Summary,
				BannerImage:   raw.BannerImage,
				Sentiment:     raw.Sentiment,
				Source:        raw.Source,
				TimePublished: raw.TimePublished,
			})
		}
	}
	return payload, nil
}
