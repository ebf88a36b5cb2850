package handler

import (
	"net/http"

	"palmcafe/internal/service"
	"palmcafe/pkg/pagination"
	"palmcafe/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/api/invoices")
	{
		invoices.POST("", h.CreateInvoice)
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:invoiceNumber/download", h.DownloadInvoice)
	}
}

// CreateInvoice stores a till order and returns its printable document
// @Summary      Create invoice
// @Description  Prices the order with the active tax, assigns the next invoice number and returns the PDF as base64
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateInvoiceRequest  true  "Create Invoice Payload"
// @Success      201      {object}  service.CreateInvoiceResponse
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req service.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ListInvoices returns stored invoices, newest first
// @Summary      List invoices
// @Description  Retrieves a paginated list of invoices with their items
// @Tags         invoices
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Page[service.InvoiceResponse]
// @Failure      500    {object}  response.Response
// @Router       /api/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	p := pagination.Parse(c)

	invoices, total, err := h.invoiceService.ListInvoices(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewPage(invoices, total, p.Page, p.Limit))
}

// DownloadInvoice re-renders a stored invoice
// @Summary      Download invoice
// @Description  Renders the stored invoice with the currency it was created with
// @Tags         invoices
// @Produce      json
// @Param        invoiceNumber  path      string  true  "Invoice number"
// @Success      200            {object}  service.DownloadInvoiceResponse
// @Failure      404            {object}  response.Response
// @Failure      500            {object}  response.Response
// @Router       /api/invoices/{invoiceNumber}/download [get]
func (h *InvoiceHandler) DownloadInvoice(c *gin.Context) {
	res, err := h.invoiceService.RenderInvoice(c.Request.Context(), c.Param("invoiceNumber"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
