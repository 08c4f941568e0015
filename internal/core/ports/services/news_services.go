package services

import (
	"context"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
)

// NewsSvcFacade fetches the sentiment-tagged news feed.
type NewsSvcFacade interface {
	// FetchNewsSentiment issues one upstream call and returns the decoded,
	// normalized articles. An empty slice with a nil error means the feed
	// was present but empty ("no news items found"), which is distinct from
	// an advisory note (ErrServer) and from a shape mismatch (ErrDecode).
	FetchNewsSentiment(ctx context.Context) ([]domain.NewsArticle, error)

	// Refresh is an alias for FetchNewsSentiment.
	Refresh(ctx context.Context) ([]domain.NewsArticle, error)
}
