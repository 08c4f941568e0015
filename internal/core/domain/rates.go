package domain

import (
	"sort"
	"time"
)

// RateSnapshot is one fetch of the live rate table: a mapping from currency
// code to its rate versus the base currency.
type RateSnapshot struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetchedAt"`
}

// RateEntry is one row of the display view of a snapshot.
type RateEntry struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}

// FilterRates is the display view of a snapshot: the full mapping filtered to
// the allow-list of codes, sorted by code ascending. It is pure and recomputed
// on every call; it is not cached and not itself a stored field.
func FilterRates(rates map[string]float64, allowList []string) []RateEntry {
	allowed := make(map[string]struct{}, len(allowList))
	for _, code := range allowList {
		allowed[code] = struct{}{}
	}

	entries := make([]RateEntry, 0, len(allowList))
	for code, rate := range rates {
		if _, ok := allowed[code]; ok {
			entries = append(entries, RateEntry{Code: code, Rate: rate})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })
	return entries
}
