package catalog

import (
	"context"
	"fmt"

	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateCatalog is the domain service in front of the rate table. Lookups go
// through FindRate; writes go through AddRate/ChangeRate so the non-overlap
// invariant for active bands of a style is enforced at write time, never
// resolved by tie-breaking at read time.
type RateCatalog struct {
	rates ShatafRateRepository
}

// NewRateCatalog creates a new RateCatalog over the given rate repository
func NewRateCatalog(rates ShatafRateRepository) *RateCatalog {
	return &RateCatalog{rates: rates}
}

// NewRateNotFoundError builds the user-facing lookup failure. It always
// names both the style and the thickness so misconfiguration is actionable.
func NewRateNotFoundError(style ShatafType, thicknessMM decimal.Decimal) *shared.DomainError {
	return shared.NewDomainError(shared.CodeRateNotFound,
		fmt.Sprintf("No cutting rate configured for style %s at thickness %smm", style, thicknessMM.String()))
}

// FindRate returns the unique active rate whose thickness band contains the
// given thickness. A miss is a configuration error surfaced to the caller,
// not a silent default. Two matches mean the write-time invariant was
// bypassed and the catalog data needs repair.
func (c *RateCatalog) FindRate(ctx context.Context, style ShatafType, thicknessMM decimal.Decimal) (*ShatafRate, error) {
	if !style.IsValid() {
		return nil, shared.NewDomainError(shared.CodeUnrecognizedStyle, "Unrecognized cutting style: "+string(style))
	}

	matches, err := c.rates.FindByStyleAndThickness(ctx, style, thicknessMM)
	if err != nil {
		return nil, err
	}

	active := make([]ShatafRate, 0, len(matches))
	for _, m := range matches {
		if m.Active && m.AppliesToThickness(thicknessMM) {
			active = append(active, m)
		}
	}

	switch len(active) {
	case 0:
		return nil, NewRateNotFoundError(style, thicknessMM)
	case 1:
		rate := active[0]
		return &rate, nil
	default:
		return nil, shared.NewDomainError(shared.CodeRateOverlap,
			fmt.Sprintf("Multiple active rates match style %s at thickness %smm", style, thicknessMM.String()))
	}
}

// AddRate creates a rate row after checking that its band does not overlap
// any existing active band of the same style.
func (c *RateCatalog) AddRate(ctx context.Context, style ShatafType, minThicknessMM, maxThicknessMM decimal.Decimal, ratePerMeter valueobject.Money) (*ShatafRate, error) {
	rate, err := NewShatafRate(style, minThicknessMM, maxThicknessMM, ratePerMeter)
	if err != nil {
		return nil, err
	}

	if err := c.ensureNoOverlap(ctx, rate, uuid.Nil); err != nil {
		return nil, err
	}

	if err := c.rates.Save(ctx, rate); err != nil {
		return nil, err
	}
	return rate, nil
}

// ChangeRate updates the per-meter rate of an existing row
func (c *RateCatalog) ChangeRate(ctx context.Context, id uuid.UUID, ratePerMeter valueobject.Money) (*ShatafRate, error) {
	rate, err := c.rates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rate.UpdateRate(ratePerMeter); err != nil {
		return nil, err
	}
	if err := c.rates.Save(ctx, rate); err != nil {
		return nil, err
	}
	return rate, nil
}

// ActivateRate reactivates a rate row, re-checking the overlap invariant
// because the row left lookup scope while inactive.
func (c *RateCatalog) ActivateRate(ctx context.Context, id uuid.UUID) (*ShatafRate, error) {
	rate, err := c.rates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rate.Active {
		if err := c.ensureNoOverlap(ctx, rate, rate.ID); err != nil {
			return nil, err
		}
		rate.Activate()
		if err := c.rates.Save(ctx, rate); err != nil {
			return nil, err
		}
	}
	return rate, nil
}

// DeactivateRate removes a rate row from lookup scope
func (c *RateCatalog) DeactivateRate(ctx context.Context, id uuid.UUID) (*ShatafRate, error) {
	rate, err := c.rates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rate.Active {
		rate.Deactivate()
		if err := c.rates.Save(ctx, rate); err != nil {
			return nil, err
		}
	}
	return rate, nil
}

// ensureNoOverlap rejects a band intersecting any other active band of the
// same style. excludeID skips the row being re-activated.
func (c *RateCatalog) ensureNoOverlap(ctx context.Context, candidate *ShatafRate, excludeID uuid.UUID) error {
	existing, err := c.rates.FindByStyle(ctx, candidate.Style)
	if err != nil {
		return err
	}

	for i := range existing {
		other := &existing[i]
		if !other.Active || other.ID == excludeID {
			continue
		}
		if candidate.Overlaps(other) {
			return shared.NewDomainError(shared.CodeRateOverlap,
				fmt.Sprintf("Thickness band [%s, %s)mm overlaps active band [%s, %s)mm for style %s",
					candidate.MinThicknessMM, candidate.MaxThicknessMM,
					other.MinThicknessMM, other.MaxThicknessMM, candidate.Style))
		}
	}
	return nil
}
