package dto

import (
	"time"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
)

// ConvertRequest defines the payload for a currency conversion. Amount is a
// raw string on purpose: empty input clears state silently and non-numeric
// input is a validation error, both decided before any network call.
type ConvertRequest struct {
	Amount string `json:"amount"`
	From   string `json:"from" binding:"required,len=3,uppercase"`
	To     string `json:"to" binding:"required,len=3,uppercase"`
}

// ConversionResponse is the API representation of a published conversion.
type ConversionResponse struct {
	From        string    `json:"from"`
	To          string    `json:"to"`
	Amount      float64   `json:"amount"`
	Converted   float64   `json:"converted"`
	ConvertedAt time.Time `json:"convertedAt"`
}

// CurrenciesResponse lists the currencies offered by the converter.
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

// ToConversionResponse converts a domain.ConversionResult to its DTO.
func ToConversionResponse(r *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		From:        r.From,
		To:          r.To,
		Amount:      r.Amount,
		Converted:   r.Converted,
		ConvertedAt: r.ConvertedAt,
	}
}
