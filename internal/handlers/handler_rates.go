package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketfin/pocket_finance_app/internal/core/ports/services"
	"github.com/pocketfin/pocket_finance_app/internal/dto"
	"github.com/pocketfin/pocket_finance_app/internal/middleware"
)

// ratesHandler handles HTTP requests related to the live rate table.
type ratesHandler struct {
	ratesService portssvc.RatesSvcFacade
}

func newRatesHandler(rs portssvc.RatesSvcFacade) *ratesHandler {
	return &ratesHandler{ratesService: rs}
}

// registerRatesRoutes registers routes related to exchange rates.
func registerRatesRoutes(rg *gin.RouterGroup, ratesService portssvc.RatesSvcFacade) {
	h := newRatesHandler(ratesService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
	}
}

// getRates godoc
// @Summary Live exchange rates
// @Description Fetches a fresh snapshot against the base currency and returns the allow-listed view, sorted by code.
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateTableResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Upstream rates API failed"
// @Failure 503 {object} ErrorResponse "Upstream unreachable"
// @Security BearerAuth
// @Router /rates [get]
func (h *ratesHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot, err := h.ratesService.FetchRates(c.Request.Context())
	if err != nil {
		respondFetchError(c, logger, err, "Failed to fetch rates")
		return
	}

	entries := h.ratesService.FilteredRates(snapshot)
	c.JSON(http.StatusOK, dto.ToRateTableResponse(snapshot, entries))
}
