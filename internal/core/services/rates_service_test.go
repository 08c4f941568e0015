package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pocketfin/pocket_finance_app/internal/apperrors"
	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	"github.com/pocketfin/pocket_finance_app/internal/core/services"
)

// --- Mock RatesProvider ---
type MockRatesProvider struct {
	mock.Mock
}

func (m *MockRatesProvider) FetchLiveRates(ctx context.Context, base string) (map[string]float64, error) {
	args := m.Called(ctx, base)
	var rates map[string]float64
	if args.Get(0) != nil {
		rates = args.Get(0).(map[string]float64)
	}
	return rates, args.Error(1)
}

// --- Test Suite ---
type RatesServiceTestSuite struct {
	suite.Suite
	mockProvider *MockRatesProvider
	service      *services.RatesService
}

func (suite *RatesServiceTestSuite) SetupTest() {
	suite.mockProvider = new(MockRatesProvider)
	suite.service = services.NewRatesService(suite.mockProvider, "USD", []string{"EUR", "UAH"})
}

func (suite *RatesServiceTestSuite) TestFetchRates_Success() {
	ctx := context.Background()
	rates := map[string]float64{"EUR": 0.92, "UAH": 41.3, "GBP": 0.79}
	suite.mockProvider.On("FetchLiveRates", ctx, "USD").Return(rates, nil).Once()

	snapshot, err := suite.service.FetchRates(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(snapshot)
	suite.Equal("USD", snapshot.Base)
	suite.Equal(rates, snapshot.Rates)
	suite.False(snapshot.FetchedAt.IsZero())
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RatesServiceTestSuite) TestFetchRates_ProviderError() {
	ctx := context.Background()
	suite.mockProvider.On("FetchLiveRates", ctx, "USD").Return(nil, apperrors.ErrServer).Once()

	snapshot, err := suite.service.FetchRates(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrServer)
	suite.Nil(snapshot)
}

// The display view keeps allow-listed codes only, sorted ascending. The full
// snapshot is untouched.
func (suite *RatesServiceTestSuite) TestFilteredRates() {
	snapshot := &domain.RateSnapshot{
		Base:  "USD",
		Rates: map[string]float64{"UAH": 41.3, "GBP": 0.79, "EUR": 0.92, "JPY": 147.2},
	}

	filtered := suite.service.FilteredRates(snapshot)

	suite.Equal([]domain.RateEntry{
		{Code: "EUR", Rate: 0.92},
		{Code: "UAH", Rate: 41.3},
	}, filtered)
	suite.Len(snapshot.Rates, 4)
}

func (suite *RatesServiceTestSuite) TestFilteredRates_NilSnapshot() {
	suite.Nil(suite.service.FilteredRates(nil))
}

func (suite *RatesServiceTestSuite) TestFilteredRates_NoAllowedCodes() {
	snapshot := &domain.RateSnapshot{Base: "USD", Rates: map[string]float64{"GBP": 0.79}}
	suite.Empty(suite.service.FilteredRates(snapshot))
}

func TestRatesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RatesServiceTestSuite))
}
