package domain

import "github.com/google/uuid"

// DefaultSentiment is applied when the source omits the sentiment label.
const DefaultSentiment = "Neutral"

// NewsArticle is a sentiment-tagged article. Articles are never deduplicated
// by content; the ID is a freshly generated token assigned at decode time, so
// identity is per-decode, not per-content.
type NewsArticle struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	URL           string `json:"url,omitempty"`
	Summary       string `json:"summary,omitempty"`
	BannerImage   string `json:"bannerImage,omitempty"`
	Sentiment     string `json:"sentiment"`
	Source        string `json:"source,omitempty"`
	TimePublished string `json:"timePublished,omitempty"`
}

// NormalizeArticle applies the documented field defaults to a decoded article
// and assigns it a fresh identity token. Defaults: sentiment falls back to
// DefaultSentiment when absent; all other optional fields stay empty.
func NormalizeArticle(a NewsArticle) NewsArticle {
	a.ID = uuid.NewString()
	if a.Sentiment == "" {
		a.Sentiment = DefaultSentiment
	}
	return a
}
