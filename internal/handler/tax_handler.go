package handler

import (
	"net/http"

	"palmcafe/internal/service"

	"github.com/gin-gonic/gin"
)

type TaxHandler struct {
	taxService service.TaxService
}

func NewTaxHandler(taxService service.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

func (h *TaxHandler) RegisterRoutes(router *gin.RouterGroup) {
	tax := router.Group("/api/tax-settings")
	{
		tax.GET("", h.GetTaxSetting)
		tax.PUT("", h.UpdateTaxSetting)
		tax.GET("/history", h.GetTaxHistory)
	}
	router.POST("/api/calculate-tax", h.CalculateTax)
}

// GetTaxSetting returns the active tax
// @Summary      Get tax setting
// @Tags         settings
// @Produce      json
// @Success      200  {object}  service.TaxSettingResponse
// @Failure      500  {object}  response.Response
// @Router       /api/tax-settings [get]
func (h *TaxHandler) GetTaxSetting(c *gin.Context) {
	setting, err := h.taxService.GetActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

// UpdateTaxSetting replaces the active tax; earlier rows stay in the history
// @Summary      Update tax setting
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdateTaxSettingRequest  true  "Tax Setting Payload"
// @Success      200      {object}  service.TaxSettingResponse
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/tax-settings [put]
func (h *TaxHandler) UpdateTaxSetting(c *gin.Context) {
	var req service.UpdateTaxSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	setting, err := h.taxService.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

// GetTaxHistory lists every tax setting, newest first
// @Summary      Tax setting history
// @Tags         settings
// @Produce      json
// @Success      200  {array}   service.TaxHistoryResponse
// @Failure      500  {object}  response.Response
// @Router       /api/tax-settings/history [get]
func (h *TaxHandler) GetTaxHistory(c *gin.Context) {
	history, err := h.taxService.History(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// CalculateTax prices a subtotal with the active tax
// @Summary      Calculate tax
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CalculateTaxRequest  true  "Subtotal"
// @Success      200      {object}  service.TaxInfo
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/calculate-tax [post]
func (h *TaxHandler) CalculateTax(c *gin.Context) {
	var req service.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	calc, err := h.taxService.Calculate(c.Request.Context(), *req.Subtotal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, calc.Info())
}
