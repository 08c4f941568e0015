package services

import (
	"context"
	"fmt"

	"github.com/pocketfin/pocket_finance_app/internal/apperrors"
	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	portsprov "github.com/pocketfin/pocket_finance_app/internal/core/ports/providers"
	portssvc "github.com/pocketfin/pocket_finance_app/internal/core/ports/services"
)

// NewsService fetches the sentiment-tagged news feed and applies the
// post-decode normalization (default sentiment, fresh per-decode identity).
type NewsService struct {
	provider portsprov.NewsProvider
}

// NewNewsService creates a new NewsService.
func NewNewsService(provider portsprov.NewsProvider) *NewsService {
	return &NewsService{provider: provider}
}

var _ portssvc.NewsSvcFacade = (*NewsService)(nil)

// FetchNewsSentiment issues one upstream call and classifies the response
// into one of three shapes: a feed of articles (possibly empty), an advisory
// note, or neither. An empty-but-present feed returns an empty slice with a
// nil error; callers surface it as "no news items found", distinct from both
// the note condition and transport errors.
func (s *NewsService) FetchNewsSentiment(ctx context.Context) ([]domain.NewsArticle, error) {
	payload, err := s.provider.FetchNewsSentiment(ctx)
	if err != nil {
		return nil, err
	}

	switch {
	case payload.HasFeed:
		articles := make([]domain.NewsArticle, 0, len(payload.Feed))
		for _, article := range payload.Feed {
			articles = append(articles, domain.NormalizeArticle(article))
		}
		return articles, nil
	case payload.Note != "":
		return nil, fmt.Errorf("%w: %s", apperrors.ErrServer, payload.Note)
	case payload.Information != "":
		return nil, fmt.Errorf("%w: %s", apperrors.ErrServer, payload.Information)
	default:
		return nil, fmt.Errorf("%w: unexpected response format", apperrors.ErrDecode)
	}
}

// Refresh is an alias for FetchNewsSentiment.
func (s *NewsService) Refresh(ctx context.Context) ([]domain.NewsArticle, error) {
	return s.FetchNewsSentiment(ctx)
}
