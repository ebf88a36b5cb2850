package handler

import (
	"net/http"

	"palmcafe/internal/service"

	"github.com/gin-gonic/gin"
)

type CurrencyHandler struct {
	currencyService service.CurrencyService
}

func NewCurrencyHandler(currencyService service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

func (h *CurrencyHandler) RegisterRoutes(router *gin.RouterGroup) {
	currency := router.Group("/api/currency-settings")
	{
		currency.GET("", h.GetCurrencySetting)
		currency.PUT("", h.UpdateCurrencySetting)
		currency.GET("/history", h.GetCurrencyHistory)
		currency.GET("/available", h.GetAvailableCurrencies)
	}
}

// GetCurrencySetting returns the active currency
// @Summary      Get currency setting
// @Tags         settings
// @Produce      json
// @Success      200  {object}  service.CurrencySettingResponse
// @Failure      500  {object}  response.Response
// @Router       /api/currency-settings [get]
func (h *CurrencyHandler) GetCurrencySetting(c *gin.Context) {
	setting, err := h.currencyService.GetActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

// UpdateCurrencySetting replaces the active currency
// @Summary      Update currency setting
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdateCurrencySettingRequest  true  "Currency Setting Payload"
// @Success      200      {object}  service.CurrencySettingResponse
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/currency-settings [put]
func (h *CurrencyHandler) UpdateCurrencySetting(c *gin.Context) {
	var req service.UpdateCurrencySettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	setting, err := h.currencyService.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

// GetCurrencyHistory lists every currency setting, newest first
// @Summary      Currency setting history
// @Tags         settings
// @Produce      json
// @Success      200  {array}   service.CurrencyHistoryResponse
// @Failure      500  {object}  response.Response
// @Router       /api/currency-settings/history [get]
func (h *CurrencyHandler) GetCurrencyHistory(c *gin.Context) {
	history, err := h.currencyService.History(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetAvailableCurrencies returns the currencies offered on the settings screen
// @Summary      Available currencies
// @Tags         settings
// @Produce      json
// @Success      200  {array}  service.CurrencySettingResponse
// @Router       /api/currency-settings/available [get]
func (h *CurrencyHandler) GetAvailableCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, h.currencyService.Catalog())
}
