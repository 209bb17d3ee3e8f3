package catalog

import (
	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeGlassType  = "GlassType"
	AggregateTypeShatafRate = "ShatafRate"
)

// Event type constants
const (
	EventTypeGlassTypeCreated      = "GlassTypeCreated"
	EventTypeGlassTypeUpdated      = "GlassTypeUpdated"
	EventTypeGlassTypePriceChanged = "GlassTypePriceChanged"
	EventTypeShatafRateChanged     = "ShatafRateChanged"
)

// GlassTypeCreatedEvent is published when a new glass type is created
type GlassTypeCreatedEvent struct {
	shared.BaseDomainEvent
	GlassTypeID uuid.UUID       `json:"glass_type_id"`
	Name        string          `json:"name"`
	ThicknessMM decimal.Decimal `json:"thickness_mm"`
}

// NewGlassTypeCreatedEvent creates a new GlassTypeCreatedEvent
func NewGlassTypeCreatedEvent(gt *GlassType) *GlassTypeCreatedEvent {
	return &GlassTypeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeGlassTypeCreated, AggregateTypeGlassType, gt.ID),
		GlassTypeID:     gt.ID,
		Name:            gt.Name,
		ThicknessMM:     gt.ThicknessMM,
	}
}

// GlassTypeUpdatedEvent is published when a glass type is renamed or its
// active flag changes
type GlassTypeUpdatedEvent struct {
	shared.BaseDomainEvent
	GlassTypeID uuid.UUID `json:"glass_type_id"`
	Name        string    `json:"name"`
	Active      bool      `json:"active"`
}

// NewGlassTypeUpdatedEvent creates a new GlassTypeUpdatedEvent
func NewGlassTypeUpdatedEvent(gt *GlassType) *GlassTypeUpdatedEvent {
	return &GlassTypeUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeGlassTypeUpdated, AggregateTypeGlassType, gt.ID),
		GlassTypeID:     gt.ID,
		Name:            gt.Name,
		Active:          gt.Active,
	}
}

// GlassTypePriceChangedEvent is published when the square-meter price changes
type GlassTypePriceChangedEvent struct {
	shared.BaseDomainEvent
	GlassTypeID uuid.UUID       `json:"glass_type_id"`
	OldPrice    decimal.Decimal `json:"old_price"`
	NewPrice    decimal.Decimal `json:"new_price"`
}

// NewGlassTypePriceChangedEvent creates a new GlassTypePriceChangedEvent
func NewGlassTypePriceChangedEvent(gt *GlassType, oldPrice decimal.Decimal) *GlassTypePriceChangedEvent {
	return &GlassTypePriceChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeGlassTypePriceChanged, AggregateTypeGlassType, gt.ID),
		GlassTypeID:     gt.ID,
		OldPrice:        oldPrice,
		NewPrice:        gt.PricePerSquareMeter,
	}
}

// ShatafRateChangedEvent is published when a rate row is created or its
// per-meter rate changes. Consumers use it to invalidate rate caches.
type ShatafRateChangedEvent struct {
	shared.BaseDomainEvent
	RateID       uuid.UUID       `json:"rate_id"`
	Style        string          `json:"style"`
	RatePerMeter decimal.Decimal `json:"rate_per_meter"`
}

// NewShatafRateChangedEvent creates a new ShatafRateChangedEvent
func NewShatafRateChangedEvent(r *ShatafRate) *ShatafRateChangedEvent {
	return &ShatafRateChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShatafRateChanged, AggregateTypeShatafRate, r.ID),
		RateID:          r.ID,
		Style:           string(r.Style),
		RatePerMeter:    r.RatePerMeter,
	}
}
