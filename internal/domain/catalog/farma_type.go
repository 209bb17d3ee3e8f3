package catalog

import (
	"math"

	"github.com/shopspring/decimal"
)

// farmaMetersScale bounds the precision of computed cut lengths
const farmaMetersScale int32 = 4

// FarmaType is the closed enumeration of cut-geometry formula families.
// Every non-manual variant carries a closed-form function from sheet
// geometry to shataf meters (effective cut length). Rectangle variants use
// width/height and ignore the diameter; wheel-cut variants use the diameter
// and ignore width/height.
type FarmaType string

const (
	FarmaManual          FarmaType = "MANUAL"            // no formula, used with manual-input styles
	FarmaRectangle       FarmaType = "RECTANGLE"         // single-pass perimeter cut
	FarmaRectangleDouble FarmaType = "RECTANGLE_DOUBLE"  // both faces, twice the perimeter
	FarmaHalfRectangle   FarmaType = "HALF_RECTANGLE"    // two adjacent edges only
	FarmaWheelCut        FarmaType = "WHEEL_CUT"         // circular cut, one pass of the circumference
	FarmaWheelCutDouble  FarmaType = "WHEEL_CUT_DOUBLE"  // circular cut, both faces
)

// AllFarmaTypes lists every formula family in display order
func AllFarmaTypes() []FarmaType {
	return []FarmaType{
		FarmaManual,
		FarmaRectangle, FarmaRectangleDouble, FarmaHalfRectangle,
		FarmaWheelCut, FarmaWheelCutDouble,
	}
}

// IsValid checks if the value is a known formula family
func (f FarmaType) IsValid() bool {
	switch f {
	case FarmaManual, FarmaRectangle, FarmaRectangleDouble, FarmaHalfRectangle,
		FarmaWheelCut, FarmaWheelCutDouble:
		return true
	}
	return false
}

// String returns the string representation of the formula family
func (f FarmaType) String() string {
	return string(f)
}

// IsManual returns true for the variant with no geometric formula
func (f FarmaType) IsManual() bool {
	return f == FarmaManual
}

// IsCircular returns true for the wheel-cut family, which prices by
// diameter and ignores width/height
func (f FarmaType) IsCircular() bool {
	return f == FarmaWheelCut || f == FarmaWheelCutDouble
}

// ShatafMeters computes the cut length in meters for meter-scale inputs.
// The manual variant always yields zero. The result is never negative.
func (f FarmaType) ShatafMeters(widthM, heightM, diameterM decimal.Decimal) decimal.Decimal {
	var meters decimal.Decimal

	two := decimal.NewFromInt(2)
	four := decimal.NewFromInt(4)
	pi := decimal.NewFromFloat(math.Pi)

	switch f {
	case FarmaManual:
		return decimal.Zero
	case FarmaRectangle:
		meters = widthM.Add(heightM).Mul(two)
	case FarmaRectangleDouble:
		meters = widthM.Add(heightM).Mul(four)
	case FarmaHalfRectangle:
		meters = widthM.Add(heightM)
	case FarmaWheelCut:
		meters = diameterM.Mul(pi)
	case FarmaWheelCutDouble:
		meters = diameterM.Mul(pi).Mul(two)
	default:
		return decimal.Zero
	}

	if meters.IsNegative() {
		return decimal.Zero
	}
	return meters.Round(farmaMetersScale)
}
