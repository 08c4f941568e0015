package dto

import "github.com/pocketfin/pocket_finance_app/internal/core/domain"

// NewsArticleResponse is the API representation of a sentiment-tagged article.
type NewsArticleResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	URL           string `json:"url,omitempty"`
	Summary       string `json:"summary,omitempty"`
	BannerImage   string `json:"bannerImage,omitempty"`
	Sentiment     string `json:"sentiment"`
	Source        string `json:"source,omitempty"`
	TimePublished string `json:"timePublished,omitempty"`
}

// NewsFeedResponse wraps the fetched articles. Message is set when the feed
// was present but empty ("no news items found").
type NewsFeedResponse struct {
	Articles []NewsArticleResponse `json:"articles"`
	Message  string                `json:"message,omitempty"`
}

// ToNewsFeedResponse converts domain articles to a NewsFeedResponse.
func ToNewsFeedResponse(articles []domain.NewsArticle) NewsFeedResponse {
	out := make([]NewsArticleResponse, len(articles))
	for i, a := range articles {
		out[i] = NewsArticleResponse{
			ID:            a.ID,
			Title:         a.Title,
			URL:           a.URL,
			Summary:       a.Summary,
			BannerImage:   a.BannerImage,
			Sentiment:     a.Sentiment,
			Source:        a.Source,
			TimePublished: a.TimePublished,
		}
	}
	resp := NewsFeedResponse{Articles: out}
	if len(out) == 0 {
		resp.Message = "no news items found"
	}
	return resp
}
