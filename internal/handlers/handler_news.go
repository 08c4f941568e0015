package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketfin/pocket_finance_app/internal/core/ports/services"
	"github.com/pocketfin/pocket_finance_app/internal/dto"
	"github.com/pocketfin/pocket_finance_app/internal/middleware"
)

// newsHandler handles HTTP requests related to the news feed.
type newsHandler struct {
	newsService portssvc.NewsSvcFacade
}

func newNewsHandler(ns portssvc.NewsSvcFacade) *newsHandler {
	return &newsHandler{newsService: ns}
}

// registerNewsRoutes registers routes related to market news.
func registerNewsRoutes(rg *gin.RouterGroup, newsService portssvc.NewsSvcFacade) {
	h := newNewsHandler(newsService)

	news := rg.Group("/news")
	{
		news.GET("", h.getNews)
		news.POST("/refresh", h.refresh)
	}
}

// getNews godoc
// @Summary Fetch sentiment-tagged news
// @Description Fetches the news feed for the configured tickers. An empty feed answers 200 with a "no news items found" message; an upstream advisory note answers 502 with the note verbatim.
// @Tags news
// @Produce  json
// @Success 200 {object} dto.NewsFeedResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Upstream note or unreadable response"
// @Failure 503 {object} ErrorResponse "Upstream unreachable"
// @Security BearerAuth
// @Router /news [get]
func (h *newsHandler) getNews(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	articles, err := h.newsService.FetchNewsSentiment(c.Request.Context())
	if err != nil {
		respondFetchError(c, logger, err, "Failed to fetch news")
		return
	}
	c.JSON(http.StatusOK, dto.ToNewsFeedResponse(articles))
}

// refresh godoc
// @Summary Refresh the news feed
// @Description Alias for fetching the news feed.
// @Tags news
// @Produce  json
// @Success 200 {object} dto.NewsFeedResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Upstream note or unreadable response"
// @Security BearerAuth
// @Router /news/refresh [post]
func (h *newsHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	articles, err := h.newsService.Refresh(c.Request.Context())
	if err != nil {
		respondFetchError(c, logger, err, "Failed to refresh news")
		return
	}
	c.JSON(http.StatusOK, dto.ToNewsFeedResponse(articles))
}
