package catalog

import (
	"strings"
	"time"

	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// GlassType represents one kind of glass sheet the shop sells: a color and
// thickness with a price per square meter. It is the aggregate root for
// glass catalog operations.
type GlassType struct {
	shared.BaseAggregateRoot
	Name                string          `gorm:"type:varchar(100);not null"`
	Color               string          `gorm:"type:varchar(50)"`
	ThicknessMM         decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	PricePerSquareMeter decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Active              bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (GlassType) TableName() string {
	return "glass_types"
}

// NewGlassType creates a new glass type
func NewGlassType(name, color string, thicknessMM decimal.Decimal, pricePerSquareMeter valueobject.Money) (*GlassType, error) {
	if err := validateGlassTypeName(name); err != nil {
		return nil, err
	}
	if err := validateThickness(thicknessMM); err != nil {
		return nil, err
	}
	if err := validateSquareMeterPrice(pricePerSquareMeter); err != nil {
		return nil, err
	}

	gt := &GlassType{
		BaseAggregateRoot:   shared.NewBaseAggregateRoot(),
		Name:                strings.TrimSpace(name),
		Color:               strings.TrimSpace(color),
		ThicknessMM:         thicknessMM,
		PricePerSquareMeter: pricePerSquareMeter.Amount(),
		Active:              true,
	}

	gt.AddDomainEvent(NewGlassTypeCreatedEvent(gt))

	return gt, nil
}

// UpdateName updates the glass type's display name
func (g *GlassType) UpdateName(name string) error {
	if err := validateGlassTypeName(name); err != nil {
		return err
	}

	g.Name = strings.TrimSpace(name)
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	g.AddDomainEvent(NewGlassTypeUpdatedEvent(g))

	return nil
}

// UpdatePrice updates the price per square meter
func (g *GlassType) UpdatePrice(pricePerSquareMeter valueobject.Money) error {
	if err := validateSquareMeterPrice(pricePerSquareMeter); err != nil {
		return err
	}

	oldPrice := g.PricePerSquareMeter
	g.PricePerSquareMeter = pricePerSquareMeter.Amount()
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	g.AddDomainEvent(NewGlassTypePriceChangedEvent(g, oldPrice))

	return nil
}

// Activate marks the glass type as orderable
func (g *GlassType) Activate() {
	if g.Active {
		return
	}
	g.Active = true
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	g.AddDomainEvent(NewGlassTypeUpdatedEvent(g))
}

// Deactivate removes the glass type from the orderable catalog
func (g *GlassType) Deactivate() {
	if !g.Active {
		return
	}
	g.Active = false
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	g.AddDomainEvent(NewGlassTypeUpdatedEvent(g))
}

// GetPriceMoney returns the price per square meter as Money
func (g *GlassType) GetPriceMoney() valueobject.Money {
	return valueobject.NewMoneyEGP(g.PricePerSquareMeter)
}

// CalculatePrice prices a sheet of the given area:
// pricePerSquareMeter x squareMeters, at the monetary scale.
func (g *GlassType) CalculatePrice(area valueobject.Area) valueobject.Money {
	return g.GetPriceMoney().Multiply(area.SquareMeters())
}

func validateGlassTypeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Glass type name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewValidationError("Glass type name cannot exceed 100 characters")
	}
	return nil
}

func validateThickness(thicknessMM decimal.Decimal) error {
	if thicknessMM.LessThanOrEqual(decimal.Zero) {
		return shared.NewValidationError("Glass thickness must be positive")
	}
	return nil
}

func validateSquareMeterPrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewValidationError("Price per square meter cannot be negative")
	}
	return nil
}
