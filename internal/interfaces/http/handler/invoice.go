package handler

import (
	"time"

	billingapp "github.com/glassshop/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// InvoiceHandler handles invoice and payment endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *billingapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *billingapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// RegisterRoutes registers invoice routes on the API group
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	invoices.POST("", h.Create)
	invoices.POST("/quote", h.Quote)
	invoices.GET("", h.List)
	invoices.GET("/:id", h.GetByID)
	invoices.POST("/:id/payments", h.ApplyPayment)
	invoices.GET("/:id/payments", h.ListPayments)

	customers := rg.Group("/customers")
	customers.POST("/:id/payments", h.RecordCustomerPayment)
	customers.GET("/:id/payments", h.ListCustomerPayments)
}

// Create issues a new invoice, pricing every line
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req billingapp.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invoice)
}

// Quote prices a single line without persisting anything
func (h *InvoiceHandler) Quote(c *gin.Context) {
	var req billingapp.LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quote, err := h.invoiceService.QuoteLine(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, quote)
}

// List lists invoices for a customer or an issue-date range
func (h *InvoiceHandler) List(c *gin.Context) {
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := uuid.Parse(customerIDStr)
		if err != nil {
			h.BadRequest(c, "Invalid customer_id format")
			return
		}
		invoices, err := h.invoiceService.ListByCustomer(c.Request.Context(), customerID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, invoices)
		return
	}

	startStr, endStr := c.Query("start"), c.Query("end")
	if startStr == "" || endStr == "" {
		h.BadRequest(c, "Either customer_id or a start/end date range is required")
		return
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		h.BadRequest(c, "start must be formatted as YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		h.BadRequest(c, "end must be formatted as YYYY-MM-DD")
		return
	}

	// Make the end date inclusive of the whole day
	invoices, err := h.invoiceService.ListByDateRange(c.Request.Context(), start, end.Add(24*time.Hour-time.Nanosecond))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoices)
}

// GetByID returns an invoice with its lines by ID
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// ApplyPayment records a payment against an invoice
func (h *InvoiceHandler) ApplyPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	var req billingapp.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.ApplyPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// ListPayments lists the payments applied to an invoice
func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	payments, err := h.invoiceService.ListPayments(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payments)
}

// RecordCustomerPayment records a payment from a customer that is not tied
// to a single invoice
func (h *InvoiceHandler) RecordCustomerPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var req billingapp.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.invoiceService.RecordCustomerPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}

// ListCustomerPayments lists every payment recorded for a customer
func (h *InvoiceHandler) ListCustomerPayments(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	payments, err := h.invoiceService.ListCustomerPayments(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payments)
}
