package catalog

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFarmaType_IsValid(t *testing.T) {
	for _, f := range AllFarmaTypes() {
		assert.True(t, f.IsValid(), "%s", f)
	}
	assert.False(t, FarmaType("OVAL").IsValid())
	assert.False(t, FarmaType("").IsValid())
}

func TestFarmaType_ShatafMeters(t *testing.T) {
	w := decimal.NewFromFloat(1.0)
	h := decimal.NewFromFloat(0.5)
	d := decimal.NewFromFloat(0.6)

	tests := []struct {
		name  string
		farma FarmaType
		want  float64
	}{
		{"manual yields zero", FarmaManual, 0},
		{"rectangle perimeter", FarmaRectangle, 3.0},
		{"double rectangle", FarmaRectangleDouble, 6.0},
		{"half rectangle", FarmaHalfRectangle, 1.5},
		{"wheel cut circumference", FarmaWheelCut, math.Pi * 0.6},
		{"double wheel cut", FarmaWheelCutDouble, 2 * math.Pi * 0.6},
		{"unknown yields zero", FarmaType("OVAL"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.farma.ShatafMeters(w, h, d)
			want := decimal.NewFromFloat(tt.want).Round(4)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestFarmaType_CircularIgnoresRectangleAxes(t *testing.T) {
	d := decimal.NewFromFloat(0.5)

	a := FarmaWheelCut.ShatafMeters(decimal.NewFromInt(1), decimal.NewFromInt(2), d)
	b := FarmaWheelCut.ShatafMeters(decimal.NewFromInt(9), decimal.NewFromInt(9), d)
	assert.True(t, a.Equal(b))
}

func TestFarmaType_RectangleIgnoresDiameter(t *testing.T) {
	w := decimal.NewFromInt(1)
	h := decimal.NewFromInt(2)

	a := FarmaRectangle.ShatafMeters(w, h, decimal.Zero)
	b := FarmaRectangle.ShatafMeters(w, h, decimal.NewFromInt(7))
	assert.True(t, a.Equal(b))
}

func TestShatafType_Mode(t *testing.T) {
	tests := []struct {
		style ShatafType
		mode  PricingMode
	}{
		{ShatafLaser, PricingModeManualInput},
		{ShatafMotashafat, PricingModeManualInput},
		{ShatafSanding, PricingModeAreaBased},
		{ShatafGharaz, PricingModeAreaBased},
		{ShatafKharazan, PricingModeFormulaBased},
		{ShatafNormal, PricingModeFormulaBased},
		{ShatafDouble, PricingModeFormulaBased},
		{ShatafWheelCut, PricingModeFormulaBased},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			assert.Equal(t, tt.mode, tt.style.Mode())
			assert.True(t, tt.mode.IsValid())
		})
	}

	assert.Equal(t, PricingMode(""), ShatafType("ACID").Mode())
}

func TestShatafType_Capabilities(t *testing.T) {
	assert.True(t, ShatafLaser.RequiresManualPrice())
	assert.False(t, ShatafLaser.RequiresRate())

	assert.True(t, ShatafSanding.RequiresRate())
	assert.False(t, ShatafSanding.RequiresManualPrice())

	assert.True(t, ShatafKharazan.RequiresRate())

	// every declared style carries exactly one capability
	for _, s := range AllShatafTypes() {
		assert.True(t, s.IsValid())
		assert.True(t, s.Mode().IsValid(), "style %s has no pricing mode", s)
	}
}
