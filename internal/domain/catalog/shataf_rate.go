package catalog

import (
	"time"

	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ShatafRate is one row of the cutting-style price table: a per-meter rate
// for a style over a thickness band. Bands are half-open, [min, max).
type ShatafRate struct {
	shared.BaseAggregateRoot
	Style          ShatafType      `gorm:"type:varchar(30);not null;index"`
	MinThicknessMM decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	MaxThicknessMM decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	RatePerMeter   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Active         bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ShatafRate) TableName() string {
	return "shataf_rates"
}

// NewShatafRate creates a new rate row
func NewShatafRate(style ShatafType, minThicknessMM, maxThicknessMM decimal.Decimal, ratePerMeter valueobject.Money) (*ShatafRate, error) {
	if !style.IsValid() {
		return nil, shared.NewValidationError("Unknown cutting style: " + string(style))
	}
	if !style.RequiresRate() {
		return nil, shared.NewValidationError("Style " + string(style) + " is operator-priced and takes no rate")
	}
	if err := validateThicknessBand(minThicknessMM, maxThicknessMM); err != nil {
		return nil, err
	}
	if !ratePerMeter.IsPositive() {
		return nil, shared.NewValidationError("Rate per meter must be positive")
	}

	rate := &ShatafRate{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Style:             style,
		MinThicknessMM:    minThicknessMM,
		MaxThicknessMM:    maxThicknessMM,
		RatePerMeter:      ratePerMeter.Amount(),
		Active:            true,
	}

	rate.AddDomainEvent(NewShatafRateChangedEvent(rate))

	return rate, nil
}

// UpdateRate changes the per-meter rate
func (r *ShatafRate) UpdateRate(ratePerMeter valueobject.Money) error {
	if !ratePerMeter.IsPositive() {
		return shared.NewValidationError("Rate per meter must be positive")
	}

	r.RatePerMeter = ratePerMeter.Amount()
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewShatafRateChangedEvent(r))

	return nil
}

// Activate puts the rate row back into lookup scope
func (r *ShatafRate) Activate() {
	if r.Active {
		return
	}
	r.Active = true
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewShatafRateChangedEvent(r))
}

// Deactivate removes the rate row from lookup scope
func (r *ShatafRate) Deactivate() {
	if !r.Active {
		return
	}
	r.Active = false
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewShatafRateChangedEvent(r))
}

// GetRateMoney returns the per-meter rate as Money
func (r *ShatafRate) GetRateMoney() valueobject.Money {
	return valueobject.NewMoneyEGP(r.RatePerMeter)
}

// AppliesToThickness reports whether the band contains the thickness.
// The band is half-open: min <= t < max.
func (r *ShatafRate) AppliesToThickness(thicknessMM decimal.Decimal) bool {
	return thicknessMM.GreaterThanOrEqual(r.MinThicknessMM) &&
		thicknessMM.LessThan(r.MaxThicknessMM)
}

// Overlaps reports whether two bands of the same style intersect.
// Touching bands ([4,6) and [6,8)) do not overlap.
func (r *ShatafRate) Overlaps(other *ShatafRate) bool {
	if r.Style != other.Style {
		return false
	}
	return r.MinThicknessMM.LessThan(other.MaxThicknessMM) &&
		other.MinThicknessMM.LessThan(r.MaxThicknessMM)
}

func validateThicknessBand(minMM, maxMM decimal.Decimal) error {
	if minMM.IsNegative() {
		return shared.NewValidationError("Minimum thickness cannot be negative")
	}
	if maxMM.LessThanOrEqual(minMM) {
		return shared.NewValidationError("Maximum thickness must exceed minimum thickness")
	}
	return nil
}
