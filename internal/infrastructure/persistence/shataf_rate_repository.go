package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/glassshop/backend/internal/domain/catalog"
	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormShatafRateRepository implements ShatafRateRepository using GORM
type GormShatafRateRepository struct {
	db *gorm.DB
}

// NewGormShatafRateRepository creates a new GormShatafRateRepository
func NewGormShatafRateRepository(db *gorm.DB) *GormShatafRateRepository {
	return &GormShatafRateRepository{db: db}
}

// FindByID finds a rate row by its ID
func (r *GormShatafRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ShatafRate, error) {
	var model models.ShatafRateModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStyleAndThickness returns the active rates whose half-open band
// [min, max) contains the thickness.
func (r *GormShatafRateRepository) FindByStyleAndThickness(ctx context.Context, style catalog.ShatafType, thicknessMM decimal.Decimal) ([]catalog.ShatafRate, error) {
	var rateModels []models.ShatafRateModel
	if err := r.db.WithContext(ctx).
		Where("style = ? AND active = ? AND min_thickness_mm <= ? AND max_thickness_mm > ?",
			style, true, thicknessMM, thicknessMM).
		Find(&rateModels).Error; err != nil {
		return nil, err
	}
	return toDomainRates(rateModels), nil
}

// FindByStyle returns every rate row for a style, active or not
func (r *GormShatafRateRepository) FindByStyle(ctx context.Context, style catalog.ShatafType) ([]catalog.ShatafRate, error) {
	var rateModels []models.ShatafRateModel
	if err := r.db.WithContext(ctx).
		Where("style = ?", style).
		Order("min_thickness_mm ASC").
		Find(&rateModels).Error; err != nil {
		return nil, err
	}
	return toDomainRates(rateModels), nil
}

// FindAll finds all rate rows matching the filter
func (r *GormShatafRateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ShatafRate, error) {
	var rateModels []models.ShatafRateModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ShatafRateModel{}), filter)

	if err := query.Find(&rateModels).Error; err != nil {
		return nil, err
	}
	return toDomainRates(rateModels), nil
}

// Save creates or updates a rate row
func (r *GormShatafRateRepository) Save(ctx context.Context, rate *catalog.ShatafRate) error {
	model := models.ShatafRateModelFromDomain(rate)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a rate row
func (r *GormShatafRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ShatafRateModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormShatafRateRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "style":
			query = query.Where("style = ?", value)
		case "active":
			query = query.Where("active = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("style ASC, min_thickness_mm ASC")
	}

	return query
}

func toDomainRates(rateModels []models.ShatafRateModel) []catalog.ShatafRate {
	rates := make([]catalog.ShatafRate, len(rateModels))
	for i, model := range rateModels {
		rates[i] = *model.ToDomain()
	}
	return rates
}

// Ensure GormShatafRateRepository implements ShatafRateRepository
var _ catalog.ShatafRateRepository = (*GormShatafRateRepository)(nil)
