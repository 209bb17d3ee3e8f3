package catalog

import (
	"testing"

	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRate(t *testing.T, style ShatafType, minMM, maxMM float64, rate float64) *ShatafRate {
	r, err := NewShatafRate(
		style,
		decimal.NewFromFloat(minMM),
		decimal.NewFromFloat(maxMM),
		valueobject.NewMoneyEGPFromFloat(rate),
	)
	require.NoError(t, err)
	return r
}

func TestNewShatafRate(t *testing.T) {
	tests := []struct {
		name    string
		style   ShatafType
		minMM   float64
		maxMM   float64
		rate    float64
		wantErr bool
	}{
		{"valid band", ShatafSanding, 4, 8, 20.00, false},
		{"band starting at zero", ShatafKharazan, 0, 4, 10.00, false},
		{"max equals min", ShatafSanding, 6, 6, 20.00, true},
		{"max below min", ShatafSanding, 8, 6, 20.00, true},
		{"negative min", ShatafSanding, -1, 6, 20.00, true},
		{"zero rate", ShatafSanding, 4, 8, 0, true},
		{"negative rate", ShatafSanding, 4, 8, -12.5, true},
		{"unknown style", ShatafType("ACID"), 4, 8, 20.00, true},
		{"manual style takes no rate", ShatafLaser, 4, 8, 20.00, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShatafRate(
				tt.style,
				decimal.NewFromFloat(tt.minMM),
				decimal.NewFromFloat(tt.maxMM),
				valueobject.NewMoneyEGPFromFloat(tt.rate),
			)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShatafRate_AppliesToThickness(t *testing.T) {
	r := createTestRate(t, ShatafSanding, 4, 8, 20.00)

	tests := []struct {
		thickness float64
		applies   bool
	}{
		{3.99, false},
		{4, true}, // min inclusive
		{6, true},
		{7.99, true},
		{8, false}, // max exclusive
		{10, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.applies, r.AppliesToThickness(decimal.NewFromFloat(tt.thickness)),
			"thickness %.2f", tt.thickness)
	}
}

func TestShatafRate_Overlaps(t *testing.T) {
	base := createTestRate(t, ShatafSanding, 4, 8, 20.00)

	t.Run("intersecting band overlaps", func(t *testing.T) {
		other := createTestRate(t, ShatafSanding, 6, 10, 25.00)
		assert.True(t, base.Overlaps(other))
		assert.True(t, other.Overlaps(base))
	})

	t.Run("touching bands do not overlap", func(t *testing.T) {
		other := createTestRate(t, ShatafSanding, 8, 12, 25.00)
		assert.False(t, base.Overlaps(other))
	})

	t.Run("containment overlaps", func(t *testing.T) {
		other := createTestRate(t, ShatafSanding, 5, 6, 25.00)
		assert.True(t, base.Overlaps(other))
	})

	t.Run("different styles never overlap", func(t *testing.T) {
		other := createTestRate(t, ShatafKharazan, 4, 8, 25.00)
		assert.False(t, base.Overlaps(other))
	})
}

func TestShatafRate_UpdateRate(t *testing.T) {
	r := createTestRate(t, ShatafKharazan, 6, 10, 12.50)
	version := r.Version

	require.NoError(t, r.UpdateRate(valueobject.NewMoneyEGPFromFloat(15.00)))
	assert.True(t, r.GetRateMoney().Equals(valueobject.NewMoneyEGPFromFloat(15.00)))
	assert.Equal(t, version+1, r.Version)

	assert.Error(t, r.UpdateRate(valueobject.ZeroEGP()))
	assert.True(t, r.GetRateMoney().Equals(valueobject.NewMoneyEGPFromFloat(15.00)))
}
