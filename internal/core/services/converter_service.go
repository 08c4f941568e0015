package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pocketfin/pocket_finance_app/internal/apperrors"
	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	portsprov "github.com/pocketfin/pocket_finance_app/internal/core/ports/providers"
	portssvc "github.com/pocketfin/pocket_finance_app/internal/core/ports/services"
	"github.com/pocketfin/pocket_finance_app/internal/dto"
)

// ConverterService performs currency conversions with request supersession:
// per user, at most one conversion is in flight, and issuing a new one
// cancels the previous. Each request carries a generation number; on
// completion the outcome is applied only if its generation is still current,
// so a superseded completion is a guaranteed no-op on published state.
type ConverterService struct {
	provider   portsprov.ConversionProvider
	currencies []string

	mu     sync.Mutex
	states map[string]*conversionState
}

type conversionState struct {
	generation uint64
	cancel     context.CancelFunc
	result     *domain.ConversionResult
}

// NewConverterService creates a new ConverterService offering the given
// currency codes.
func NewConverterService(provider portsprov.ConversionProvider, currencies []string) *ConverterService {
	return &ConverterService{
		provider:   provider,
		currencies: currencies,
		states:     make(map[string]*conversionState),
	}
}

var _ portssvc.ConverterSvcFacade = (*ConverterService)(nil)

// Convert validates the request, supersedes any in-flight conversion for the
// user, then issues at most one upstream call. Validation precedes the
// network: an empty amount clears published state silently; a non-numeric or
// non-positive amount clears it too and returns a validation error. Neither
// issues a request.
func (s *ConverterService) Convert(ctx context.Context, userID string, req dto.ConvertRequest) (*domain.ConversionResult, error) {
	amountStr := strings.TrimSpace(req.Amount)

	if amountStr == "" {
		s.supersede(userID, func(st *conversionState) { st.result = nil })
		return nil, nil
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || amount <= 0 {
		s.supersede(userID, func(st *conversionState) { st.result = nil })
		return nil, fmt.Errorf("%w: please enter a valid positive number", apperrors.ErrValidation)
	}

	callCtx, generation := s.begin(ctx, userID)
	converted, err := s.provider.Convert(callCtx, req.From, req.To, amount)

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.states[userID]

	// A newer request owns the outcome now; this completion must neither
	// mutate state nor surface an error.
	if st.generation != generation {
		return nil, apperrors.ErrCancelled
	}
	// Release the call context now that the request is finished.
	st.cancel()
	st.cancel = nil

	if err != nil {
		if errors.Is(err, apperrors.ErrCancelled) {
			return nil, apperrors.ErrCancelled
		}
		return nil, err
	}

	result := &domain.ConversionResult{
		From:        req.From,
		To:          req.To,
		Amount:      amount,
		Converted:   converted,
		ConvertedAt: time.Now(),
	}
	st.result = result
	return result, nil
}

// begin supersedes the previous request and registers a new cancellable one,
// returning its call context and generation number.
func (s *ConverterService) begin(ctx context.Context, userID string) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)
	st.generation++
	if st.cancel != nil {
		st.cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	st.cancel = cancel
	return callCtx, st.generation
}

// supersede cancels any in-flight request and optionally mutates the state.
func (s *ConverterService) supersede(userID string, apply func(*conversionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)
	st.generation++
	if st.cancel != nil {
		st.cancel()
		st.cancel = nil
	}
	if apply != nil {
		apply(st)
	}
}

func (s *ConverterService) state(userID string) *conversionState {
	st, ok := s.states[userID]
	if !ok {
		st = &conversionState{}
		s.states[userID] = st
	}
	return st
}

// LastResult returns the most recently published conversion for the user.
func (s *ConverterService) LastResult(userID string) *domain.ConversionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[userID]
	if !ok || st.result == nil {
		return nil
	}
	result := *st.result
	return &result
}

// AvailableCurrencies lists the currency codes offered by the converter.
func (s *ConverterService) AvailableCurrencies() []string {
	currencies := make([]string, len(s.currencies))
	copy(currencies, s.currencies)
	return currencies
}
