package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketfin/pocket_finance_app/internal/apperrors"
	portssvc "github.com/pocketfin/pocket_finance_app/internal/core/ports/services"
	"github.com/pocketfin/pocket_finance_app/internal/dto"
	"github.com/pocketfin/pocket_finance_app/internal/middleware"
)

// watchlistHandler handles HTTP requests related to the stock watchlist.
type watchlistHandler struct {
	watchlistService portssvc.WatchlistSvcFacade
}

func newWatchlistHandler(ws portssvc.WatchlistSvcFacade) *watchlistHandler {
	return &watchlistHandler{watchlistService: ws}
}

// registerWatchlistRoutes registers routes related to the watchlist.
func registerWatchlistRoutes(rg *gin.RouterGroup, watchlistService portssvc.WatchlistSvcFacade) {
	h := newWatchlistHandler(watchlistService)

	watchlist := rg.Group("/watchlist")
	{
		watchlist.GET("", h.listWatchlist)
		watchlist.POST("", h.fetchQuote)
		watchlist.POST("/refresh", h.refreshAll)
		watchlist.DELETE("/:symbol", h.removeQuote)
	}
}

// fetchQuote godoc
// @Summary Track a stock symbol
// @Description Fetches a quote for the symbol and adds it to the watchlist. An already tracked symbol is left unchanged.
// @Tags watchlist
// @Accept  json
// @Produce  json
// @Param   quote body dto.AddQuoteRequest true "Symbol to track"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse "Invalid symbol"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Upstream quote API failed"
// @Security BearerAuth
// @Router /watchlist [post]
func (h *watchlistHandler) fetchQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	quote, err := h.watchlistService.FetchQuote(c.Request.Context(), userID, req.Symbol)
	if err != nil {
		respondFetchError(c, logger, err, "Failed to fetch quote")
		return
	}

	logger.Info("Quote published", slog.String("symbol", quote.Symbol))
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(*quote))
}

// listWatchlist godoc
// @Summary List the watchlist
// @Description Returns the currently published quotes for the user.
// @Tags watchlist
// @Produce  json
// @Success 200 {object} dto.WatchlistResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /watchlist [get]
func (h *watchlistHandler) listWatchlist(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	quotes, err := h.watchlistService.ListWatchlist(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list watchlist"})
		return
	}
	c.JSON(http.StatusOK, dto.ToWatchlistResponse(quotes))
}

// refreshAll godoc
// @Summary Refresh the whole watchlist
// @Description Clears the list and re-fetches every tracked symbol concurrently. The refreshed order is completion order.
// @Tags watchlist
// @Produce  json
// @Success 200 {object} dto.WatchlistResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /watchlist/refresh [post]
func (h *watchlistHandler) refreshAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	quotes, err := h.watchlistService.RefreshAll(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to refresh watchlist", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to refresh watchlist"})
		return
	}
	c.JSON(http.StatusOK, dto.ToWatchlistResponse(quotes))
}

// removeQuote godoc
// @Summary Untrack a stock symbol
// @Description Removes a symbol from the watchlist. Removing an absent symbol succeeds.
// @Tags watchlist
// @Produce  json
// @Param   symbol path string true "Symbol"
// @Success 204 "Removed"
// @Failure 400 {object} ErrorResponse "Invalid symbol"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /watchlist/{symbol} [delete]
func (h *watchlistHandler) removeQuote(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.watchlistService.RemoveQuote(c.Request.Context(), userID, c.Param("symbol")); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove symbol"})
		return
	}
	c.Status(http.StatusNoContent)
}

// respondFetchError maps the fetch error taxonomy to HTTP statuses:
// validation to 400, upstream refusals and unreadable responses to 502,
// transport failures to 503. Cancelled fetches are not user-facing errors
// and answer 204 without touching published state.
func respondFetchError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrCancelled):
		c.Status(http.StatusNoContent)
	case errors.Is(err, apperrors.ErrNetwork):
		logger.Warn("Upstream transport failure", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrServer), errors.Is(err, apperrors.ErrDecode):
		logger.Warn("Upstream API failure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
