package handler

import (
	billingapp "github.com/glassshop/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
)

// ReconciliationHandler exposes the customer balance audit endpoints
type ReconciliationHandler struct {
	BaseHandler
	reconciliationService *billingapp.ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler
func NewReconciliationHandler(reconciliationService *billingapp.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationService: reconciliationService}
}

// RegisterRoutes registers balance reconciliation routes on the API group
func (h *ReconciliationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.GET("/:id/balance", h.CheckBalance)
	customers.POST("/:id/balance/repair", h.RepairBalance)
}

// CheckBalance audits the cached balance against the customer's invoices.
// It never mutates anything; a drift is reported, not fixed.
func (h *ReconciliationHandler) CheckBalance(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	report, err := h.reconciliationService.CheckBalance(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// RepairBalance recalculates the balance from invoices and overwrites the cache
func (h *ReconciliationHandler) RepairBalance(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	report, err := h.reconciliationService.RepairBalance(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}
