package pricing

import (
	"context"
	"fmt"

	"github.com/glassshop/backend/internal/domain/catalog"
	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// RateFinder is the lookup port the pricing algorithm queries. Satisfied by
// catalog.RateCatalog.
type RateFinder interface {
	FindRate(ctx context.Context, style catalog.ShatafType, thicknessMM decimal.Decimal) (*catalog.ShatafRate, error)
}

// Service prices one invoice line: it normalizes units, computes the area,
// dispatches the cut-geometry formula and combines glass price with cutting
// price according to the style's pricing mode.
type Service struct {
	rates RateFinder
}

// NewService creates a pricing service over the given rate catalog
func NewService(rates RateFinder) *Service {
	return &Service{rates: rates}
}

// LineRequest describes one glass sheet to price. Dimensions may arrive in
// any unit; DiameterM is only read by circular formula families;
// ManualCuttingPrice is only read by manual-input styles.
type LineRequest struct {
	Dimensions         valueobject.Dimensions
	GlassType          *catalog.GlassType
	Style              catalog.ShatafType
	Farma              catalog.FarmaType
	DiameterM          decimal.Decimal
	ManualCuttingPrice *valueobject.Money
}

// CalculateLinePrice prices one line.
//
// Thickness is always read from the glass type, never from the request, so
// a caller cannot spoof a cheaper rate band. The style dispatch below is
// exhaustive over PricingMode: a new style variant must be given a mode, and
// a new mode must be handled here.
func (s *Service) CalculateLinePrice(ctx context.Context, req LineRequest) (*LineCalculation, error) {
	if req.GlassType == nil {
		return nil, shared.NewValidationError("Glass type is required")
	}
	if !req.Farma.IsValid() {
		return nil, shared.NewValidationError("Unknown cut formula: " + string(req.Farma))
	}
	if req.Farma.IsCircular() && req.DiameterM.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Wheel-cut formulas require a positive diameter")
	}

	meters := req.Dimensions.ConvertToMeters()
	area, err := meters.Area()
	if err != nil {
		return nil, err
	}

	glassPrice := req.GlassType.CalculatePrice(area)

	shatafMeters := req.Farma.ShatafMeters(meters.Width(), meters.Height(), req.DiameterM)

	cuttingPrice, err := s.calculateCuttingPrice(ctx, req, area, shatafMeters)
	if err != nil {
		return nil, err
	}

	calc := NewLineCalculation(area, shatafMeters, glassPrice, cuttingPrice)
	return &calc, nil
}

func (s *Service) calculateCuttingPrice(ctx context.Context, req LineRequest, area valueobject.Area, shatafMeters decimal.Decimal) (valueobject.Money, error) {
	switch req.Style.Mode() {
	case catalog.PricingModeManualInput:
		if req.ManualCuttingPrice == nil || !req.ManualCuttingPrice.IsPositive() {
			return valueobject.Money{}, shared.NewDomainError(shared.CodeManualPriceRequired,
				fmt.Sprintf("Manual cutting price required for style %s", req.Style))
		}
		return *req.ManualCuttingPrice, nil

	case catalog.PricingModeAreaBased:
		rate, err := s.rates.FindRate(ctx, req.Style, req.GlassType.ThicknessMM)
		if err != nil {
			return valueobject.Money{}, err
		}
		return rate.GetRateMoney().Multiply(area.SquareMeters()), nil

	case catalog.PricingModeFormulaBased:
		rate, err := s.rates.FindRate(ctx, req.Style, req.GlassType.ThicknessMM)
		if err != nil {
			return valueobject.Money{}, err
		}
		return rate.GetRateMoney().Multiply(shatafMeters), nil

	default:
		return valueobject.Money{}, shared.NewDomainError(shared.CodeUnrecognizedStyle,
			fmt.Sprintf("Unrecognized cutting style: %s", req.Style))
	}
}
