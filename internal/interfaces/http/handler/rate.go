package handler

import (
	catalogapp "github.com/glassshop/backend/internal/application/catalog"
	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RateHandler handles cutting rate table endpoints
type RateHandler struct {
	BaseHandler
	rateService *catalogapp.RateService
}

// NewRateHandler creates a new RateHandler
func NewRateHandler(rateService *catalogapp.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// RegisterRoutes registers rate table routes on the API group
func (h *RateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rates := rg.Group("/shataf-rates")
	rates.POST("", h.Create)
	rates.GET("", h.List)
	rates.GET("/lookup", h.Lookup)
	rates.GET("/:id", h.GetByID)
	rates.PUT("/:id", h.UpdateRate)
	rates.POST("/:id/activate", h.Activate)
	rates.POST("/:id/deactivate", h.Deactivate)
}

// Create adds a new rate row; overlapping bands for the same style are rejected
func (h *RateHandler) Create(c *gin.Context) {
	var req catalogapp.CreateShatafRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rate, err := h.rateService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rate)
}

// List lists rate rows, optionally restricted to a single style
func (h *RateHandler) List(c *gin.Context) {
	if style := c.Query("style"); style != "" {
		rates, err := h.rateService.ListByStyle(c.Request.Context(), style)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, rates)
		return
	}

	rates, err := h.rateService.List(c.Request.Context(), shared.DefaultFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rates)
}

// Lookup resolves the rate row covering a style and thickness
func (h *RateHandler) Lookup(c *gin.Context) {
	style := c.Query("style")
	if style == "" {
		h.BadRequest(c, "style query parameter is required")
		return
	}

	thickness, err := decimal.NewFromString(c.Query("thickness_mm"))
	if err != nil {
		h.BadRequest(c, "thickness_mm must be a decimal number")
		return
	}

	rate, err := h.rateService.Lookup(c.Request.Context(), style, thickness)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rate)
}

// GetByID returns a rate row by ID
func (h *RateHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid rate ID format")
		return
	}

	rate, err := h.rateService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rate)
}

// UpdateRate changes the per-meter rate of a row
func (h *RateHandler) UpdateRate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid rate ID format")
		return
	}

	var req catalogapp.UpdateShatafRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rate, err := h.rateService.UpdateRate(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rate)
}

// Activate re-activates a rate row; fails if its band now overlaps an active row
func (h *RateHandler) Activate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid rate ID format")
		return
	}

	rate, err := h.rateService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rate)
}

// Deactivate deactivates a rate row, freeing its band
func (h *RateHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid rate ID format")
		return
	}

	rate, err := h.rateService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rate)
}
