package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pocketfin/pocket_finance_app/internal/apperrors"
	"github.com/pocketfin/pocket_finance_app/internal/core/services"
	"github.com/pocketfin/pocket_finance_app/internal/dto"
)

// --- Mock ConversionProvider ---
type MockConversionProvider struct {
	mock.Mock
	ConvertFn func(ctx context.Context, from, to string, amount float64) (float64, error)
}

func (m *MockConversionProvider) Convert(ctx context.Context, from, to string, amount float64) (float64, error) {
	if m.ConvertFn != nil {
		return m.ConvertFn(ctx, from, to, amount)
	}
	args := m.Called(ctx, from, to, amount)
	return args.Get(0).(float64), args.Error(1)
}

// --- Test Suite ---
type ConverterServiceTestSuite struct {
	suite.Suite
	mockProvider *MockConversionProvider
	service      *services.ConverterService
}

func (suite *ConverterServiceTestSuite) SetupTest() {
	suite.mockProvider = new(MockConversionProvider)
	suite.service = services.NewConverterService(suite.mockProvider, []string{"USD", "EUR", "UAH"})
}

func (suite *ConverterServiceTestSuite) TestConvert_Success() {
	ctx := context.Background()
	userID := "user-1"
	req := dto.ConvertRequest{Amount: "100", From: "USD", To: "EUR"}

	suite.mockProvider.On("Convert", mock.Anything, "USD", "EUR", 100.0).Return(92.5, nil).Once()

	result, err := suite.service.Convert(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("USD", result.From)
	suite.Equal("EUR", result.To)
	suite.Equal(100.0, result.Amount)
	suite.Equal(92.5, result.Converted)
	suite.False(result.ConvertedAt.IsZero())

	last := suite.service.LastResult(userID)
	suite.Require().NotNil(last)
	suite.Equal(92.5, last.Converted)

	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *ConverterServiceTestSuite) TestConvert_EmptyAmount_ClearsResultWithoutCall() {
	ctx := context.Background()
	userID := "user-1"

	suite.mockProvider.On("Convert", mock.Anything, "USD", "EUR", 100.0).Return(92.5, nil).Once()
	_, err := suite.service.Convert(ctx, userID, dto.ConvertRequest{Amount: "100", From: "USD", To: "EUR"})
	suite.Require().NoError(err)
	suite.Require().NotNil(suite.service.LastResult(userID))

	// Whitespace-only counts as empty. No upstream call, state cleared.
	result, err := suite.service.Convert(ctx, userID, dto.ConvertRequest{Amount: "   ", From: "USD", To: "EUR"})

	suite.Require().NoError(err)
	suite.Nil(result)
	suite.Nil(suite.service.LastResult(userID))
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *ConverterServiceTestSuite) TestConvert_InvalidAmount_NoUpstreamCall() {
	ctx := context.Background()
	userID := "user-1"

	for _, amount := range []string{"abc", "-5", "0", "12.3.4"} {
		result, err := suite.service.Convert(ctx, userID, dto.ConvertRequest{Amount: amount, From: "USD", To: "EUR"})
		suite.Require().Error(err, "amount %q", amount)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(result)
	}

	// No provider expectations were set; any call would have panicked.
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *ConverterServiceTestSuite) TestConvert_InvalidAmount_ClearsPreviousResult() {
	ctx := context.Background()
	userID := "user-1"

	suite.mockProvider.On("Convert", mock.Anything, "USD", "EUR", 100.0).Return(92.5, nil).Once()
	_, err := suite.service.Convert(ctx, userID, dto.ConvertRequest{Amount: "100", From: "USD", To: "EUR"})
	suite.Require().NoError(err)
	suite.Require().NotNil(suite.service.LastResult(userID))

	_, err = suite.service.Convert(ctx, userID, dto.ConvertRequest{Amount: "abc", From: "USD", To: "EUR"})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// Rejected input leaves no stale value on display.
	suite.Nil(suite.service.LastResult(userID))
}

func (suite *ConverterServiceTestSuite) TestConvert_UpstreamError_KeepsPreviousResult() {
	ctx := context.Background()
	userID := "user-1"

	suite.mockProvider.On("Convert", mock.Anything, "USD", "EUR", 100.0).Return(92.5, nil).Once()
	_, err := suite.service.Convert(ctx, userID, dto.ConvertRequest{Amount: "100", From: "USD", To: "EUR"})
	suite.Require().NoError(err)

	suite.mockProvider.On("Convert", mock.Anything, "USD", "EUR", 50.0).Return(0.0, apperrors.ErrNetwork).Once()
	result, err := suite.service.Convert(ctx, userID, dto.ConvertRequest{Amount: "50", From: "USD", To: "EUR"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNetwork)
	suite.Nil(result)

	last := suite.service.LastResult(userID)
	suite.Require().NotNil(last)
	suite.Equal(92.5, last.Converted)
	suite.mockProvider.AssertExpectations(suite.T())
}

// A newer Convert call supersedes the in-flight one: the first returns
// ErrCancelled and its outcome never reaches published state.
func (suite *ConverterServiceTestSuite) TestConvert_Superseded() {
	ctx := context.Background()
	userID := "user-1"

	firstStarted := make(chan struct{})
	release := make(chan struct{})
	suite.mockProvider.ConvertFn = func(callCtx context.Context, from, to string, amount float64) (float64, error) {
		if amount == 100.0 {
			close(firstStarted)
			select {
			case <-release:
			case <-callCtx.Done():
			}
			// The stale value; it must never be published.
			return 11111.0, nil
		}
		return 46.25, nil
	}

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = suite.service.Convert(ctx, userID, dto.ConvertRequest{Amount: "100", From: "USD", To: "EUR"})
	}()

	<-firstStarted
	second, err := suite.service.Convert(ctx, userID, dto.ConvertRequest{Amount: "50", From: "USD", To: "EUR"})
	suite.Require().NoError(err)
	suite.Require().NotNil(second)
	suite.Equal(46.25, second.Converted)

	close(release)
	wg.Wait()

	suite.Require().Error(firstErr)
	suite.ErrorIs(firstErr, apperrors.ErrCancelled)

	// The superseded completion must not have overwritten the newer result.
	last := suite.service.LastResult(userID)
	suite.Require().NotNil(last)
	suite.Equal(46.25, last.Converted)
}

func (suite *ConverterServiceTestSuite) TestConvert_SupersededCallContextCancelled() {
	ctx := context.Background()
	userID := "user-1"

	firstStarted := make(chan struct{})
	cancelled := make(chan struct{})
	suite.mockProvider.ConvertFn = func(callCtx context.Context, from, to string, amount float64) (float64, error) {
		if amount == 100.0 {
			close(firstStarted)
			<-callCtx.Done()
			close(cancelled)
			return 0, apperrors.ErrCancelled
		}
		return 46.25, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = suite.service.Convert(ctx, userID, dto.ConvertRequest{Amount: "100", From: "USD", To: "EUR"})
	}()

	<-firstStarted
	_, err := suite.service.Convert(ctx, userID, dto.ConvertRequest{Amount: "50", From: "USD", To: "EUR"})
	suite.Require().NoError(err)

	// The superseding call must have cancelled the first call's context.
	<-cancelled
	<-done
}

func (suite *ConverterServiceTestSuite) TestConvert_CallContextReleasedAfterCompletion() {
	ctx := context.Background()
	userID := "user-1"

	var callCtx context.Context
	suite.mockProvider.ConvertFn = func(c context.Context, from, to string, amount float64) (float64, error) {
		callCtx = c
		return 92.5, nil
	}

	_, err := suite.service.Convert(ctx, userID, dto.ConvertRequest{Amount: "100", From: "USD", To: "EUR"})
	suite.Require().NoError(err)

	// The per-request context must not outlive its request.
	suite.Require().NotNil(callCtx)
	select {
	case <-callCtx.Done():
	default:
		suite.Fail("call context still live after completion")
	}
}

func (suite *ConverterServiceTestSuite) TestConvert_PerUserIsolation() {
	ctx := context.Background()

	suite.mockProvider.On("Convert", mock.Anything, "USD", "EUR", 100.0).Return(92.5, nil).Once()
	suite.mockProvider.On("Convert", mock.Anything, "USD", "UAH", 10.0).Return(413.0, nil).Once()

	_, err := suite.service.Convert(ctx, "user-a", dto.ConvertRequest{Amount: "100", From: "USD", To: "EUR"})
	suite.Require().NoError(err)
	_, err = suite.service.Convert(ctx, "user-b", dto.ConvertRequest{Amount: "10", From: "USD", To: "UAH"})
	suite.Require().NoError(err)

	suite.Equal(92.5, suite.service.LastResult("user-a").Converted)
	suite.Equal(413.0, suite.service.LastResult("user-b").Converted)
}

func (suite *ConverterServiceTestSuite) TestLastResult_NoneYet() {
	suite.Nil(suite.service.LastResult("unknown-user"))
}

func (suite *ConverterServiceTestSuite) TestAvailableCurrencies_ReturnsCopy() {
	currencies := suite.service.AvailableCurrencies()
	suite.Equal([]string{"USD", "EUR", "UAH"}, currencies)

	currencies[0] = "XXX"
	suite.Equal([]string{"USD", "EUR", "UAH"}, suite.service.AvailableCurrencies())
}

func TestConverterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConverterServiceTestSuite))
}
