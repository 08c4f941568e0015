package domain

import "time"

// ConversionResult is the published outcome of a currency conversion. It
// always corresponds to the most recently issued request; superseded in-flight
// requests never overwrite it.
type ConversionResult struct {
	From        string    `json:"from"`
	To          string    `json:"to"`
	Amount      float64   `json:"amount"`
	Converted   float64   `json:"converted"`
	ConvertedAt time.Time `json:"convertedAt"`
}
