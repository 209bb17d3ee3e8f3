package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// LengthUnit is the unit tag carried by Dimensions
type LengthUnit string

const (
	UnitMillimeter LengthUnit = "MM"
	UnitMeter      LengthUnit = "M"
)

// IsValid checks if the unit is a known length unit
func (u LengthUnit) IsValid() bool {
	return u == UnitMillimeter || u == UnitMeter
}

// ToMetersFactor returns the factor converting this unit to meters
func (u LengthUnit) ToMetersFactor() decimal.Decimal {
	if u == UnitMillimeter {
		return decimal.NewFromFloat(0.001)
	}
	return decimal.NewFromInt(1)
}

// ParseLengthUnit parses a length unit from its string form (case-insensitive)
func ParseLengthUnit(s string) (LengthUnit, error) {
	u := LengthUnit(strings.ToUpper(strings.TrimSpace(s)))
	if !u.IsValid() {
		return "", fmt.Errorf("unknown length unit: %q", s)
	}
	return u, nil
}

// Dimensions is a value object for a rectangular glass sheet: width, height
// and an explicit unit tag. It is immutable - conversions return new instances.
type Dimensions struct {
	width  decimal.Decimal
	height decimal.Decimal
	unit   LengthUnit
}

// NewDimensions creates Dimensions with the given width, height and unit
func NewDimensions(width, height decimal.Decimal, unit LengthUnit) (Dimensions, error) {
	if !unit.IsValid() {
		return Dimensions{}, fmt.Errorf("unknown length unit: %q", unit)
	}
	if width.LessThanOrEqual(decimal.Zero) {
		return Dimensions{}, errors.New("width must be positive")
	}
	if height.LessThanOrEqual(decimal.Zero) {
		return Dimensions{}, errors.New("height must be positive")
	}
	return Dimensions{width: width, height: height, unit: unit}, nil
}

// NewDimensionsFromFloat creates Dimensions from float64 values
func NewDimensionsFromFloat(width, height float64, unit LengthUnit) (Dimensions, error) {
	return NewDimensions(decimal.NewFromFloat(width), decimal.NewFromFloat(height), unit)
}

// MustNewDimensions creates Dimensions and panics on error.
// Use only when you're certain the inputs are valid.
func MustNewDimensions(width, height decimal.Decimal, unit LengthUnit) Dimensions {
	d, err := NewDimensions(width, height, unit)
	if err != nil {
		panic(err)
	}
	return d
}

// Width returns the width in the tagged unit
func (d Dimensions) Width() decimal.Decimal {
	return d.width
}

// Height returns the height in the tagged unit
func (d Dimensions) Height() decimal.Decimal {
	return d.height
}

// Unit returns the unit tag
func (d Dimensions) Unit() LengthUnit {
	return d.unit
}

// ConvertToMeters returns a new Dimensions in meters, scaling both axes by
// the unit's conversion factor. Converting meter Dimensions is the identity.
func (d Dimensions) ConvertToMeters() Dimensions {
	if d.unit == UnitMeter {
		return d
	}
	factor := d.unit.ToMetersFactor()
	return Dimensions{
		width:  d.width.Mul(factor),
		height: d.height.Mul(factor),
		unit:   UnitMeter,
	}
}

// ConvertToMillimeters returns a new Dimensions in millimeters
func (d Dimensions) ConvertToMillimeters() Dimensions {
	if d.unit == UnitMillimeter {
		return d
	}
	m := d.ConvertToMeters()
	factor := UnitMillimeter.ToMetersFactor()
	return Dimensions{
		width:  m.width.Div(factor),
		height: m.height.Div(factor),
		unit:   UnitMillimeter,
	}
}

// Area computes the area in square meters. Only meter-tagged Dimensions can
// produce an Area; millimeter inputs must go through ConvertToMeters first
// so the unit-conversion class of defect cannot reappear.
func (d Dimensions) Area() (Area, error) {
	if d.unit != UnitMeter {
		return Area{}, fmt.Errorf("area requires meter dimensions, got %s", d.unit)
	}
	return Area{value: d.width.Mul(d.height)}, nil
}

// Equals returns true if both Dimensions are equal (same axes and unit)
func (d Dimensions) Equals(other Dimensions) bool {
	return d.unit == other.unit &&
		d.width.Equal(other.width) &&
		d.height.Equal(other.height)
}

// String returns a string representation of the Dimensions
func (d Dimensions) String() string {
	return fmt.Sprintf("%s x %s %s", d.width.String(), d.height.String(), strings.ToLower(string(d.unit)))
}

// MarshalJSON implements json.Marshaler
func (d Dimensions) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Width  string     `json:"width"`
		Height string     `json:"height"`
		Unit   LengthUnit `json:"unit"`
	}{
		Width:  d.width.String(),
		Height: d.height.String(),
		Unit:   d.unit,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Dimensions) UnmarshalJSON(data []byte) error {
	var v struct {
		Width  string     `json:"width"`
		Height string     `json:"height"`
		Unit   LengthUnit `json:"unit"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	width, err := decimal.NewFromString(v.Width)
	if err != nil {
		return fmt.Errorf("invalid width: %w", err)
	}
	height, err := decimal.NewFromString(v.Height)
	if err != nil {
		return fmt.Errorf("invalid height: %w", err)
	}
	parsed, err := NewDimensions(width, height, v.Unit)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Area is a derived value object: square meters, always >= 0.
// Produced only from meter-unit Dimensions via Dimensions.Area.
type Area struct {
	value decimal.Decimal
}

// NewAreaFromSquareMeters creates an Area directly from a square-meter value.
// Intended for persistence scanning and tests; rejects negative values.
func NewAreaFromSquareMeters(value decimal.Decimal) (Area, error) {
	if value.IsNegative() {
		return Area{}, errors.New("area cannot be negative")
	}
	return Area{value: value}, nil
}

// ZeroArea returns a zero Area
func ZeroArea() Area {
	return Area{value: decimal.Zero}
}

// SquareMeters returns the decimal value in square meters
func (a Area) SquareMeters() decimal.Decimal {
	return a.value
}

// IsZero returns true if the area is zero
func (a Area) IsZero() bool {
	return a.value.IsZero()
}

// Float64 returns the area as a float64 (may lose precision)
func (a Area) Float64() float64 {
	f, _ := a.value.Float64()
	return f
}

// Equals returns true if both areas are equal
func (a Area) Equals(other Area) bool {
	return a.value.Equal(other.value)
}

// String returns a string representation of the Area
func (a Area) String() string {
	return a.value.String() + " m2"
}
