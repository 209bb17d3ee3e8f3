package pricing

import (
	"context"
	"testing"

	"github.com/glassshop/backend/internal/domain/catalog"
	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRateFinder serves rates from a fixed (style, rate) table
type stubRateFinder struct {
	rates map[catalog.ShatafType]*catalog.ShatafRate
}

func (s *stubRateFinder) FindRate(_ context.Context, style catalog.ShatafType, thicknessMM decimal.Decimal) (*catalog.ShatafRate, error) {
	rate, ok := s.rates[style]
	if !ok || !rate.AppliesToThickness(thicknessMM) {
		return nil, catalog.NewRateNotFoundError(style, thicknessMM)
	}
	return rate, nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	sanding, err := catalog.NewShatafRate(catalog.ShatafSanding,
		decimal.NewFromInt(4), decimal.NewFromInt(8), valueobject.NewMoneyEGPFromFloat(20.00))
	require.NoError(t, err)

	kharazan, err := catalog.NewShatafRate(catalog.ShatafKharazan,
		decimal.NewFromInt(6), decimal.NewFromInt(10), valueobject.NewMoneyEGPFromFloat(12.50))
	require.NoError(t, err)

	return NewService(&stubRateFinder{rates: map[catalog.ShatafType]*catalog.ShatafRate{
		catalog.ShatafSanding:  sanding,
		catalog.ShatafKharazan: kharazan,
	}})
}

func newTestGlassType(t *testing.T, thicknessMM int64, pricePerSqm float64) *catalog.GlassType {
	t.Helper()
	gt, err := catalog.NewGlassType("Clear Float", "clear",
		decimal.NewFromInt(thicknessMM), valueobject.NewMoneyEGPFromFloat(pricePerSqm))
	require.NoError(t, err)
	return gt
}

func mmDimensions(t *testing.T, width, height float64) valueobject.Dimensions {
	t.Helper()
	d, err := valueobject.NewDimensionsFromFloat(width, height, valueobject.UnitMillimeter)
	require.NoError(t, err)
	return d
}

func TestService_CalculateLinePrice_AreaBased(t *testing.T) {
	// 1000mm x 500mm of 6mm glass at 150.00/m2, sanding at 20.00/m2:
	// area 0.5 m2, glass 75.00, cutting 10.00, total 85.00
	svc := newTestService(t)

	calc, err := svc.CalculateLinePrice(context.Background(), LineRequest{
		Dimensions: mmDimensions(t, 1000, 500),
		GlassType:  newTestGlassType(t, 6, 150.00),
		Style:      catalog.ShatafSanding,
		Farma:      catalog.FarmaManual,
	})
	require.NoError(t, err)

	assert.True(t, calc.Area().SquareMeters().Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, calc.ShatafMeters().IsZero())
	assert.True(t, calc.GlassPrice().Equals(valueobject.NewMoneyEGPFromFloat(75.00)), "glass %s", calc.GlassPrice())
	assert.True(t, calc.CuttingPrice().Equals(valueobject.NewMoneyEGPFromFloat(10.00)), "cutting %s", calc.CuttingPrice())
	assert.True(t, calc.TotalPrice().Equals(valueobject.NewMoneyEGPFromFloat(85.00)), "total %s", calc.TotalPrice())
}

func TestService_CalculateLinePrice_FormulaBased(t *testing.T) {
	// 1000mm x 500mm rectangle: perimeter 3.0m at 12.50/m -> 37.50
	svc := newTestService(t)

	calc, err := svc.CalculateLinePrice(context.Background(), LineRequest{
		Dimensions: mmDimensions(t, 1000, 500),
		GlassType:  newTestGlassType(t, 8, 150.00),
		Style:      catalog.ShatafKharazan,
		Farma:      catalog.FarmaRectangle,
	})
	require.NoError(t, err)

	assert.True(t, calc.ShatafMeters().Equal(decimal.NewFromFloat(3.0)))
	assert.True(t, calc.CuttingPrice().Equals(valueobject.NewMoneyEGPFromFloat(37.50)), "cutting %s", calc.CuttingPrice())
}

func TestService_CalculateLinePrice_ManualInput(t *testing.T) {
	svc := newTestService(t)

	base := LineRequest{
		Dimensions: mmDimensions(t, 1000, 500),
		GlassType:  newTestGlassType(t, 6, 150.00),
		Style:      catalog.ShatafLaser,
		Farma:      catalog.FarmaManual,
	}

	t.Run("uses the supplied price", func(t *testing.T) {
		manual := valueobject.NewMoneyEGPFromFloat(40.00)
		req := base
		req.ManualCuttingPrice = &manual

		calc, err := svc.CalculateLinePrice(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, calc.CuttingPrice().Equals(manual))
		assert.True(t, calc.TotalPrice().Equals(valueobject.NewMoneyEGPFromFloat(115.00)))
	})

	t.Run("fails without a manual price", func(t *testing.T) {
		_, err := svc.CalculateLinePrice(context.Background(), base)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeManualPriceRequired, domainErr.Code)
		assert.Contains(t, domainErr.Message, "LASER")
	})

	t.Run("fails with a zero manual price", func(t *testing.T) {
		zero := valueobject.ZeroEGP()
		req := base
		req.ManualCuttingPrice = &zero

		_, err := svc.CalculateLinePrice(context.Background(), req)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeManualPriceRequired, domainErr.Code)
	})
}

func TestService_CalculateLinePrice_UnrecognizedStyle(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CalculateLinePrice(context.Background(), LineRequest{
		Dimensions: mmDimensions(t, 1000, 500),
		GlassType:  newTestGlassType(t, 6, 150.00),
		Style:      catalog.ShatafType("ACID"),
		Farma:      catalog.FarmaManual,
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeUnrecognizedStyle, domainErr.Code)
}

func TestService_CalculateLinePrice_RateNotFound(t *testing.T) {
	svc := newTestService(t)

	// sanding is only configured for [4, 8)mm
	_, err := svc.CalculateLinePrice(context.Background(), LineRequest{
		Dimensions: mmDimensions(t, 1000, 500),
		GlassType:  newTestGlassType(t, 12, 150.00),
		Style:      catalog.ShatafSanding,
		Farma:      catalog.FarmaManual,
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeRateNotFound, domainErr.Code)
	assert.Contains(t, domainErr.Message, "SANDING")
	assert.Contains(t, domainErr.Message, "12")
}

func TestService_CalculateLinePrice_ThicknessComesFromGlassType(t *testing.T) {
	// the caller has no thickness input at all; an 8mm sheet must miss the
	// [4, 8) sanding band regardless of anything else in the request
	svc := newTestService(t)

	_, err := svc.CalculateLinePrice(context.Background(), LineRequest{
		Dimensions: mmDimensions(t, 200, 200),
		GlassType:  newTestGlassType(t, 8, 99.00),
		Style:      catalog.ShatafSanding,
		Farma:      catalog.FarmaManual,
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeRateNotFound, domainErr.Code)
}

func TestService_CalculateLinePrice_WheelCut(t *testing.T) {
	svc := newTestService(t)

	t.Run("requires a positive diameter", func(t *testing.T) {
		_, err := svc.CalculateLinePrice(context.Background(), LineRequest{
			Dimensions: mmDimensions(t, 1000, 500),
			GlassType:  newTestGlassType(t, 8, 150.00),
			Style:      catalog.ShatafKharazan,
			Farma:      catalog.FarmaWheelCut,
		})
		assert.Error(t, err)
	})

	t.Run("prices by circumference", func(t *testing.T) {
		calc, err := svc.CalculateLinePrice(context.Background(), LineRequest{
			Dimensions: mmDimensions(t, 1000, 500),
			GlassType:  newTestGlassType(t, 8, 150.00),
			Style:      catalog.ShatafKharazan,
			Farma:      catalog.FarmaWheelCut,
			DiameterM:  decimal.NewFromFloat(0.6),
		})
		require.NoError(t, err)

		wantMeters := catalog.FarmaWheelCut.ShatafMeters(decimal.Zero, decimal.Zero, decimal.NewFromFloat(0.6))
		assert.True(t, calc.ShatafMeters().Equal(wantMeters))

		wantPrice := valueobject.NewMoneyEGPFromFloat(12.50).Multiply(wantMeters)
		assert.True(t, calc.CuttingPrice().Equals(wantPrice))
	})
}

func TestService_CalculateLinePrice_MissingGlassType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CalculateLinePrice(context.Background(), LineRequest{
		Dimensions: mmDimensions(t, 1000, 500),
		Style:      catalog.ShatafSanding,
		Farma:      catalog.FarmaManual,
	})
	assert.Error(t, err)
}
