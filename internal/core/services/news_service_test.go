package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pocketfin/pocket_finance_app/internal/apperrors"
	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	portsprov "github.com/pocketfin/pocket_finance_app/internal/core/ports/providers"
	"github.com/pocketfin/pocket_finance_app/internal/core/services"
)

// --- Mock NewsProvider ---
type MockNewsProvider struct {
	mock.Mock
}

func (m *MockNewsProvider) FetchNewsSentiment(ctx context.Context) (portsprov.NewsPayload, error) {
	args := m.Called(ctx)
	return args.Get(0).(portsprov.NewsPayload), args.Error(1)
}

// --- Test Suite ---
type NewsServiceTestSuite struct {
	suite.Suite
	mockProvider *MockNewsProvider
	service      *services.NewsService
}

func (suite *NewsServiceTestSuite) SetupTest() {
	suite.mockProvider = new(MockNewsProvider)
	suite.service = services.NewNewsService(suite.mockProvider)
}

func (suite *NewsServiceTestSuite) TestFetchNewsSentiment_FeedWithItems() {
	ctx := context.Background()
	payload := portsprov.NewsPayload{
		HasFeed: true,
		Feed: []domain.NewsArticle{
			{Title: "Apple launches new chip", Sentiment: "Bullish"},
			{Title: "Markets flat"},
		},
	}
	suite.mockProvider.On("FetchNewsSentiment", ctx).Return(payload, nil).Once()

	articles, err := suite.service.FetchNewsSentiment(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(articles, 2)
	suite.Equal("Bullish", articles[0].Sentiment)
	// Missing sentiment falls back to the default.
	suite.Equal(domain.DefaultSentiment, articles[1].Sentiment)
	suite.NotEmpty(articles[0].ID)
	suite.NotEmpty(articles[1].ID)
	suite.NotEqual(articles[0].ID, articles[1].ID)
}

// An empty-but-present feed is not an error: it is the distinct
// "no news items found" condition.
func (suite *NewsServiceTestSuite) TestFetchNewsSentiment_EmptyFeed() {
	ctx := context.Background()
	payload := portsprov.NewsPayload{HasFeed: true, Feed: []domain.NewsArticle{}}
	suite.mockProvider.On("FetchNewsSentiment", ctx).Return(payload, nil).Once()

	articles, err := suite.service.FetchNewsSentiment(ctx)

	suite.Require().NoError(err)
	suite.NotNil(articles)
	suite.Empty(articles)
}

func (suite *NewsServiceTestSuite) TestFetchNewsSentiment_NoteIsServerError() {
	ctx := context.Background()
	note := "Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."
	payload := portsprov.NewsPayload{Note: note}
	suite.mockProvider.On("FetchNewsSentiment", ctx).Return(payload, nil).Once()

	articles, err := suite.service.FetchNewsSentiment(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrServer)
	// The advisory text is surfaced verbatim.
	suite.Contains(err.Error(), note)
	suite.Nil(articles)
}

func (suite *NewsServiceTestSuite) TestFetchNewsSentiment_InformationIsServerError() {
	ctx := context.Background()
	payload := portsprov.NewsPayload{Information: "API key required"}
	suite.mockProvider.On("FetchNewsSentiment", ctx).Return(payload, nil).Once()

	articles, err := suite.service.FetchNewsSentiment(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrServer)
	suite.Contains(err.Error(), "API key required")
	suite.Nil(articles)
}

func (suite *NewsServiceTestSuite) TestFetchNewsSentiment_NeitherShapeIsDecodeError() {
	ctx := context.Background()
	suite.mockProvider.On("FetchNewsSentiment", ctx).Return(portsprov.NewsPayload{}, nil).Once()

	articles, err := suite.service.FetchNewsSentiment(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDecode)
	suite.Contains(err.Error(), "unexpected response format")
	suite.Nil(articles)
}

func (suite *NewsServiceTestSuite) TestFetchNewsSentiment_ProviderError() {
	ctx := context.Background()
	suite.mockProvider.On("FetchNewsSentiment", ctx).Return(portsprov.NewsPayload{}, apperrors.ErrNetwork).Once()

	articles, err := suite.service.FetchNewsSentiment(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNetwork)
	suite.Nil(articles)
}

// Identity is per-decode: refetching the same articles yields fresh IDs.
func (suite *NewsServiceTestSuite) TestRefresh_AssignsFreshIdentity() {
	ctx := context.Background()
	payload := portsprov.NewsPayload{
		HasFeed: true,
		Feed:    []domain.NewsArticle{{Title: "Same story"}},
	}
	suite.mockProvider.On("FetchNewsSentiment", ctx).Return(payload, nil).Twice()

	first, err := suite.service.FetchNewsSentiment(ctx)
	suite.Require().NoError(err)
	second, err := suite.service.Refresh(ctx)
	suite.Require().NoError(err)

	suite.Equal(first[0].Title, second[0].Title)
	suite.NotEqual(first[0].ID, second[0].ID)
}

func TestNewsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NewsServiceTestSuite))
}
