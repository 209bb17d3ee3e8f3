package catalog

import (
	"time"

	"github.com/glassshop/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateGlassTypeRequest represents a request to add a glass type
type CreateGlassTypeRequest struct {
	Name                string          `json:"name" binding:"required,min=1,max=100"`
	Color               string          `json:"color" binding:"max=50"`
	ThicknessMM         decimal.Decimal `json:"thickness_mm" binding:"required"`
	PricePerSquareMeter decimal.Decimal `json:"price_per_square_meter" binding:"required"`
}

// UpdateGlassTypeRequest represents a request to update a glass type
type UpdateGlassTypeRequest struct {
	Name                *string          `json:"name" binding:"omitempty,min=1,max=100"`
	PricePerSquareMeter *decimal.Decimal `json:"price_per_square_meter"`
}

// GlassTypeResponse represents a glass type in API responses
type GlassTypeResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Color               string          `json:"color"`
	ThicknessMM         decimal.Decimal `json:"thickness_mm"`
	PricePerSquareMeter decimal.Decimal `json:"price_per_square_meter"`
	Active              bool            `json:"active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	Version             int             `json:"version"`
}

// ToGlassTypeResponse converts a domain glass type to a response DTO
func ToGlassTypeResponse(gt *catalog.GlassType) GlassTypeResponse {
	return GlassTypeResponse{
		ID:                  gt.ID,
		Name:                gt.Name,
		Color:               gt.Color,
		ThicknessMM:         gt.ThicknessMM,
		PricePerSquareMeter: gt.PricePerSquareMeter,
		Active:              gt.Active,
		CreatedAt:           gt.CreatedAt,
		UpdatedAt:           gt.UpdatedAt,
		Version:             gt.Version,
	}
}

// CreateShatafRateRequest represents a request to add a rate-table row
type CreateShatafRateRequest struct {
	Style        string          `json:"style" binding:"required"`
	MinThickness decimal.Decimal `json:"min_thickness_mm"`
	MaxThickness decimal.Decimal `json:"max_thickness_mm" binding:"required"`
	RatePerMeter decimal.Decimal `json:"rate_per_meter" binding:"required"`
}

// UpdateShatafRateRequest represents a request to change a row's rate
type UpdateShatafRateRequest struct {
	RatePerMeter decimal.Decimal `json:"rate_per_meter" binding:"required"`
}

// ShatafRateResponse represents a rate-table row in API responses
type ShatafRateResponse struct {
	ID           uuid.UUID       `json:"id"`
	Style        string          `json:"style"`
	MinThickness decimal.Decimal `json:"min_thickness_mm"`
	MaxThickness decimal.Decimal `json:"max_thickness_mm"`
	RatePerMeter decimal.Decimal `json:"rate_per_meter"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Version      int             `json:"version"`
}

// ToShatafRateResponse converts a domain rate row to a response DTO
func ToShatafRateResponse(r *catalog.ShatafRate) ShatafRateResponse {
	return ShatafRateResponse{
		ID:           r.ID,
		Style:        string(r.Style),
		MinThickness: r.MinThicknessMM,
		MaxThickness: r.MaxThicknessMM,
		RatePerMeter: r.RatePerMeter,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		Version:      r.Version,
	}
}
