package handler

import (
	catalogapp "github.com/glassshop/backend/internal/application/catalog"
	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// GlassTypeHandler handles glass type catalog endpoints
type GlassTypeHandler struct {
	BaseHandler
	glassTypeService *catalogapp.GlassTypeService
}

// NewGlassTypeHandler creates a new GlassTypeHandler
func NewGlassTypeHandler(glassTypeService *catalogapp.GlassTypeService) *GlassTypeHandler {
	return &GlassTypeHandler{glassTypeService: glassTypeService}
}

// RegisterRoutes registers glass type routes on the API group
func (h *GlassTypeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	glassTypes := rg.Group("/glass-types")
	glassTypes.POST("", h.Create)
	glassTypes.GET("", h.List)
	glassTypes.GET("/:id", h.GetByID)
	glassTypes.PUT("/:id", h.Update)
	glassTypes.POST("/:id/activate", h.Activate)
	glassTypes.POST("/:id/deactivate", h.Deactivate)
}

// Create creates a new glass type
func (h *GlassTypeHandler) Create(c *gin.Context) {
	var req catalogapp.CreateGlassTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	glassType, err := h.glassTypeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, glassType)
}

// List lists glass types
func (h *GlassTypeHandler) List(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := shared.DefaultFilter()
	if listReq.Page > 0 {
		filter.Page = listReq.Page
	}
	if listReq.PageSize > 0 {
		filter.PageSize = listReq.PageSize
	}
	filter.Search = listReq.Search
	if active := c.Query("active"); active != "" {
		filter.Filters["active"] = active == "true"
	}

	glassTypes, err := h.glassTypeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, glassTypes)
}

// GetByID returns a glass type by ID
func (h *GlassTypeHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid glass type ID format")
		return
	}

	glassType, err := h.glassTypeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, glassType)
}

// Update updates a glass type's name or price
func (h *GlassTypeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid glass type ID format")
		return
	}

	var req catalogapp.UpdateGlassTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	glassType, err := h.glassTypeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, glassType)
}

// Activate re-activates a glass type
func (h *GlassTypeHandler) Activate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid glass type ID format")
		return
	}

	if err := h.glassTypeService.Activate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Deactivate deactivates a glass type
func (h *GlassTypeHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid glass type ID format")
		return
	}

	if err := h.glassTypeService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
