package catalog

import (
	"context"
	"testing"

	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRateRepository is an in-memory ShatafRateRepository for tests
type memoryRateRepository struct {
	rates map[uuid.UUID]*ShatafRate
}

func newMemoryRateRepository() *memoryRateRepository {
	return &memoryRateRepository{rates: make(map[uuid.UUID]*ShatafRate)}
}

func (r *memoryRateRepository) FindByID(_ context.Context, id uuid.UUID) (*ShatafRate, error) {
	rate, ok := r.rates[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *rate
	return &copied, nil
}

func (r *memoryRateRepository) FindByStyleAndThickness(_ context.Context, style ShatafType, thicknessMM decimal.Decimal) ([]ShatafRate, error) {
	var result []ShatafRate
	for _, rate := range r.rates {
		if rate.Style == style && rate.AppliesToThickness(thicknessMM) {
			result = append(result, *rate)
		}
	}
	return result, nil
}

func (r *memoryRateRepository) FindByStyle(_ context.Context, style ShatafType) ([]ShatafRate, error) {
	var result []ShatafRate
	for _, rate := range r.rates {
		if rate.Style == style {
			result = append(result, *rate)
		}
	}
	return result, nil
}

func (r *memoryRateRepository) FindAll(_ context.Context, _ shared.Filter) ([]ShatafRate, error) {
	var result []ShatafRate
	for _, rate := range r.rates {
		result = append(result, *rate)
	}
	return result, nil
}

func (r *memoryRateRepository) Save(_ context.Context, rate *ShatafRate) error {
	copied := *rate
	r.rates[rate.ID] = &copied
	return nil
}

func (r *memoryRateRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.rates, id)
	return nil
}

func mustMoney(v float64) valueobject.Money {
	return valueobject.NewMoneyEGPFromFloat(v)
}

func TestRateCatalog_FindRate(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRateRepository()
	catalog := NewRateCatalog(repo)

	_, err := catalog.AddRate(ctx, ShatafSanding, decimal.NewFromInt(4), decimal.NewFromInt(8), mustMoney(20.00))
	require.NoError(t, err)
	_, err = catalog.AddRate(ctx, ShatafSanding, decimal.NewFromInt(8), decimal.NewFromInt(12), mustMoney(28.00))
	require.NoError(t, err)

	t.Run("finds rate inside a band", func(t *testing.T) {
		rate, err := catalog.FindRate(ctx, ShatafSanding, decimal.NewFromInt(6))
		require.NoError(t, err)
		assert.True(t, rate.GetRateMoney().Equals(mustMoney(20.00)))
	})

	t.Run("band boundaries are half open", func(t *testing.T) {
		rate, err := catalog.FindRate(ctx, ShatafSanding, decimal.NewFromInt(8))
		require.NoError(t, err)
		assert.True(t, rate.GetRateMoney().Equals(mustMoney(28.00)))
	})

	t.Run("not found outside all bands names style and thickness", func(t *testing.T) {
		_, err := catalog.FindRate(ctx, ShatafSanding, decimal.NewFromInt(15))
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeRateNotFound, domainErr.Code)
		assert.Contains(t, domainErr.Message, "SANDING")
		assert.Contains(t, domainErr.Message, "15")
	})

	t.Run("not found for style without rates", func(t *testing.T) {
		_, err := catalog.FindRate(ctx, ShatafKharazan, decimal.NewFromInt(6))
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeRateNotFound, domainErr.Code)
	})

	t.Run("rejects unrecognized style", func(t *testing.T) {
		_, err := catalog.FindRate(ctx, ShatafType("ACID"), decimal.NewFromInt(6))
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeUnrecognizedStyle, domainErr.Code)
	})

	t.Run("inactive rates are out of lookup scope", func(t *testing.T) {
		rate, err := catalog.AddRate(ctx, ShatafKharazan, decimal.NewFromInt(4), decimal.NewFromInt(8), mustMoney(12.50))
		require.NoError(t, err)

		_, err = catalog.DeactivateRate(ctx, rate.ID)
		require.NoError(t, err)

		_, err = catalog.FindRate(ctx, ShatafKharazan, decimal.NewFromInt(6))
		assert.Error(t, err)
	})
}

func TestRateCatalog_AddRate_RejectsOverlap(t *testing.T) {
	ctx := context.Background()
	catalog := NewRateCatalog(newMemoryRateRepository())

	_, err := catalog.AddRate(ctx, ShatafSanding, decimal.NewFromInt(4), decimal.NewFromInt(8), mustMoney(20.00))
	require.NoError(t, err)

	t.Run("overlapping band rejected", func(t *testing.T) {
		_, err := catalog.AddRate(ctx, ShatafSanding, decimal.NewFromInt(6), decimal.NewFromInt(10), mustMoney(22.00))
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeRateOverlap, domainErr.Code)
	})

	t.Run("touching band accepted", func(t *testing.T) {
		_, err := catalog.AddRate(ctx, ShatafSanding, decimal.NewFromInt(8), decimal.NewFromInt(12), mustMoney(25.00))
		assert.NoError(t, err)
	})

	t.Run("same band for another style accepted", func(t *testing.T) {
		_, err := catalog.AddRate(ctx, ShatafNormal, decimal.NewFromInt(4), decimal.NewFromInt(8), mustMoney(9.00))
		assert.NoError(t, err)
	})
}

func TestRateCatalog_ActivateRechecksOverlap(t *testing.T) {
	ctx := context.Background()
	catalog := NewRateCatalog(newMemoryRateRepository())

	first, err := catalog.AddRate(ctx, ShatafSanding, decimal.NewFromInt(4), decimal.NewFromInt(8), mustMoney(20.00))
	require.NoError(t, err)

	_, err = catalog.DeactivateRate(ctx, first.ID)
	require.NoError(t, err)

	// A replacement band is added while the first is dormant
	_, err = catalog.AddRate(ctx, ShatafSanding, decimal.NewFromInt(4), decimal.NewFromInt(10), mustMoney(24.00))
	require.NoError(t, err)

	_, err = catalog.ActivateRate(ctx, first.ID)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeRateOverlap, domainErr.Code)
}

func TestRateCatalog_ChangeRate(t *testing.T) {
	ctx := context.Background()
	catalog := NewRateCatalog(newMemoryRateRepository())

	rate, err := catalog.AddRate(ctx, ShatafKharazan, decimal.NewFromInt(6), decimal.NewFromInt(10), mustMoney(12.50))
	require.NoError(t, err)

	updated, err := catalog.ChangeRate(ctx, rate.ID, mustMoney(14.00))
	require.NoError(t, err)
	assert.True(t, updated.GetRateMoney().Equals(mustMoney(14.00)))

	found, err := catalog.FindRate(ctx, ShatafKharazan, decimal.NewFromInt(8))
	require.NoError(t, err)
	assert.True(t, found.GetRateMoney().Equals(mustMoney(14.00)))
}
