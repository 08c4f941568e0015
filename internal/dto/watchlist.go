package dto

import "github.com/pocketfin/pocket_finance_app/internal/core/domain"

// AddQuoteRequest defines the payload for tracking a new symbol.
type AddQuoteRequest struct {
	Symbol string `json:"symbol" binding:"required,max=12"`
}

// QuoteResponse is the API representation of a tracked quote.
type QuoteResponse struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// WatchlistResponse wraps the user's current watchlist.
type WatchlistResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

// ToQuoteResponse converts a domain.Quote to a QuoteResponse DTO.
func ToQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		Symbol:        q.Symbol,
		Name:          q.Name,
		Price:         q.Price,
		Change:        q.Change,
		ChangePercent: q.ChangePercent,
	}
}

// ToWatchlistResponse converts a slice of domain.Quote to a WatchlistResponse.
func ToWatchlistResponse(quotes []domain.Quote) WatchlistResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = ToQuoteResponse(q)
	}
	return WatchlistResponse{Quotes: out}
}
