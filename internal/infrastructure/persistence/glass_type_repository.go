package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/glassshop/backend/internal/domain/catalog"
	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormGlassTypeRepository implements GlassTypeRepository using GORM
type GormGlassTypeRepository struct {
	db *gorm.DB
}

// NewGormGlassTypeRepository creates a new GormGlassTypeRepository
func NewGormGlassTypeRepository(db *gorm.DB) *GormGlassTypeRepository {
	return &GormGlassTypeRepository{db: db}
}

// FindByID finds a glass type by its ID
func (r *GormGlassTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.GlassType, error) {
	var model models.GlassTypeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all glass types matching the filter
func (r *GormGlassTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.GlassType, error) {
	var glassTypeModels []models.GlassTypeModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.GlassTypeModel{}), filter)

	if err := query.Find(&glassTypeModels).Error; err != nil {
		return nil, err
	}

	glassTypes := make([]catalog.GlassType, len(glassTypeModels))
	for i, model := range glassTypeModels {
		glassTypes[i] = *model.ToDomain()
	}
	return glassTypes, nil
}

// Save creates or updates a glass type
func (r *GormGlassTypeRepository) Save(ctx context.Context, glassType *catalog.GlassType) error {
	model := models.GlassTypeModelFromDomain(glassType)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a glass type
func (r *GormGlassTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.GlassTypeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts glass types matching the filter
func (r *GormGlassTypeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.GlassTypeModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormGlassTypeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

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
		query = query.Order("thickness_mm ASC, name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormGlassTypeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR color ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "thickness_mm":
			query = query.Where("thickness_mm = ?", value)
		case "color":
			query = query.Where("color = ?", value)
		}
	}

	return query
}

// Ensure GormGlassTypeRepository implements GlassTypeRepository
var _ catalog.GlassTypeRepository = (*GormGlassTypeRepository)(nil)
