package handler

import (
	"github.com/gin-gonic/gin"
	appinvoicing "github.com/mobilitree/backend/internal/application/invoicing"
	"github.com/mobilitree/backend/internal/domain/invoicing"
)

// InvoiceHandler handles invoice API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *appinvoicing.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *appinvoicing.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	facilities := rg.Group("/facilities")
	{
		facilities.GET("/:facilityId/invoices", h.List)
		facilities.GET("/:facilityId/invoices/:customerId", h.Get)
	}
}

// InvoiceResponse represents a single customer invoice
type InvoiceResponse struct {
	FacilityID string `json:"facility_id"`
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
}

func toInvoiceResponse(inv invoicing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		FacilityID: inv.FacilityID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount.StringFixed(2),
		Currency:   string(inv.Amount.Currency()),
	}
}

// List returns one invoice per customer with sessions at the facility
func (h *InvoiceHandler) List(c *gin.Context) {
	facilityID := c.Param("facilityId")

	invoices, err := h.invoiceService.GetInvoices(c.Request.Context(), facilityID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		responses[i] = toInvoiceResponse(inv)
	}
	h.Success(c, responses)
}

// Get returns the invoice for a single customer at the facility
func (h *InvoiceHandler) Get(c *gin.Context) {
	facilityID := c.Param("facilityId")
	customerID := c.Param("customerId")

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), facilityID, customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toInvoiceResponse(invoice))
}
