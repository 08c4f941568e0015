package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketfin/pocket_finance_app/internal/core/ports/services"
	"github.com/pocketfin/pocket_finance_app/internal/dto"
	"github.com/pocketfin/pocket_finance_app/internal/middleware"
)

// converterHandler handles HTTP requests related to currency conversion.
type converterHandler struct {
	converterService portssvc.ConverterSvcFacade
}

func newConverterHandler(cs portssvc.ConverterSvcFacade) *converterHandler {
	return &converterHandler{converterService: cs}
}

// registerConverterRoutes registers routes related to the converter.
func registerConverterRoutes(rg *gin.RouterGroup, converterService portssvc.ConverterSvcFacade) {
	h := newConverterHandler(converterService)

	convert := rg.Group("/convert")
	{
		convert.POST("", h.convert)
		convert.GET("/last", h.lastResult)
		convert.GET("/currencies", h.currencies)
	}
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Issues at most one upstream conversion; a newer request for the same user supersedes any in-flight one. An empty amount clears the published result.
// @Tags converter
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion request"
// @Success 200 {object} dto.ConversionResponse
// @Success 204 "Cleared, or superseded by a newer request"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Upstream conversion API failed"
// @Security BearerAuth
// @Router /convert [post]
func (h *converterHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.converterService.Convert(c.Request.Context(), userID, req)
	if err != nil {
		respondFetchError(c, logger, err, "Conversion failed")
		return
	}
	if result == nil {
		// Empty amount: published state was cleared silently.
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}

// lastResult godoc
// @Summary Last published conversion
// @Description Returns the most recently published conversion outcome for the user.
// @Tags converter
// @Produce  json
// @Success 200 {object} dto.ConversionResponse
// @Success 204 "No conversion published"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /convert/last [get]
func (h *converterHandler) lastResult(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result := h.converterService.LastResult(userID)
	if result == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}

// currencies godoc
// @Summary List converter currencies
// @Description Returns the currency codes offered by the converter.
// @Tags converter
// @Produce  json
// @Success 200 {object} dto.CurrenciesResponse
// @Security BearerAuth
// @Router /convert/currencies [get]
func (h *converterHandler) currencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CurrenciesResponse{Currencies: h.converterService.AvailableCurrencies()})
}
