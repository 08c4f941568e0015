package dto

import (
	"time"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
)

// RateEntryResponse is one row of the displayed rate table.
type RateEntryResponse struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}

// RateTableResponse is the filtered, display-only view of a rate snapshot.
type RateTableResponse struct {
	Base      string              `json:"base"`
	Rates     []RateEntryResponse `json:"rates"`
	FetchedAt time.Time           `json:"fetchedAt"`
}

// ToRateTableResponse converts a snapshot plus its filtered view to a DTO.
func ToRateTableResponse(snapshot *domain.RateSnapshot, entries []domain.RateEntry) RateTableResponse {
	rates := make([]RateEntryResponse, len(entries))
	for i, e := range entries {
		rates[i] = RateEntryResponse{Code: e.Code, Rate: e.Rate}
	}
	return RateTableResponse{
		Base:      snapshot.Base,
		Rates:     rates,
		FetchedAt: snapshot.FetchedAt,
	}
}
