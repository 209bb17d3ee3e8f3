package catalog

import (
	"context"

	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GlassTypeRepository defines the persistence port for glass types
type GlassTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GlassType, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]GlassType, error)
	Save(ctx context.Context, glassType *GlassType) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ShatafRateRepository defines the persistence port for the rate table
type ShatafRateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ShatafRate, error)

	// FindByStyleAndThickness returns the active rates whose band contains
	// the thickness. With the catalog's non-overlap invariant intact the
	// result has at most one element.
	FindByStyleAndThickness(ctx context.Context, style ShatafType, thicknessMM decimal.Decimal) ([]ShatafRate, error)

	// FindByStyle returns every rate row for a style, active or not
	FindByStyle(ctx context.Context, style ShatafType) ([]ShatafRate, error)

	FindAll(ctx context.Context, filter shared.Filter) ([]ShatafRate, error)
	Save(ctx context.Context, rate *ShatafRate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
