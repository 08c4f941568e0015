package services

import (
	"context"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	"github.com/pocketfin/pocket_finance_app/internal/dto"
)

// ConverterSvcFacade performs currency conversions with request supersession:
// at most one in-flight conversion per user; a newer Convert call cancels the
// previous one, and the superseded outcome is never published.
type ConverterSvcFacade interface {
	// Convert validates the request, then issues at most one upstream call.
	// An empty amount clears published state silently and returns (nil, nil).
	// A superseded call returns apperrors.ErrCancelled, which callers must
	// swallow rather than surface.
	Convert(ctx context.Context, userID string, req dto.ConvertRequest) (*domain.ConversionResult, error)

	// LastResult returns the most recently published conversion for the
	// user, or nil if none.
	LastResult(userID string) *domain.ConversionResult

	// AvailableCurrencies lists the currency codes offered by the converter.
	AvailableCurrencies() []string
}
