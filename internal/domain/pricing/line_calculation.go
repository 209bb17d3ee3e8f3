package pricing

import (
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// LineCalculation is the immutable result of pricing one invoice line.
// ShatafMeters is zero for lines whose style does not price by cut length.
type LineCalculation struct {
	area         valueobject.Area
	shatafMeters decimal.Decimal
	glassPrice   valueobject.Money
	cuttingPrice valueobject.Money
}

// NewLineCalculation assembles a pricing result
func NewLineCalculation(area valueobject.Area, shatafMeters decimal.Decimal, glassPrice, cuttingPrice valueobject.Money) LineCalculation {
	return LineCalculation{
		area:         area,
		shatafMeters: shatafMeters,
		glassPrice:   glassPrice,
		cuttingPrice: cuttingPrice,
	}
}

// Area returns the sheet area in square meters
func (c LineCalculation) Area() valueobject.Area {
	return c.area
}

// ShatafMeters returns the computed cut length in meters
func (c LineCalculation) ShatafMeters() decimal.Decimal {
	return c.shatafMeters
}

// GlassPrice returns the price of the glass sheet itself
func (c LineCalculation) GlassPrice() valueobject.Money {
	return c.glassPrice
}

// CuttingPrice returns the price of the cutting work
func (c LineCalculation) CuttingPrice() valueobject.Money {
	return c.cuttingPrice
}

// TotalPrice returns glass price plus cutting price
func (c LineCalculation) TotalPrice() valueobject.Money {
	return c.glassPrice.MustAdd(c.cuttingPrice)
}
