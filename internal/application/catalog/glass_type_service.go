package catalog

import (
	"context"

	"github.com/glassshop/backend/internal/domain/catalog"
	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// GlassTypeService handles glass catalog operations
type GlassTypeService struct {
	glassTypeRepo catalog.GlassTypeRepository
}

// NewGlassTypeService creates a new GlassTypeService
func NewGlassTypeService(glassTypeRepo catalog.GlassTypeRepository) *GlassTypeService {
	return &GlassTypeService{
		glassTypeRepo: glassTypeRepo,
	}
}

// Create adds a glass type to the catalog
func (s *GlassTypeService) Create(ctx context.Context, req CreateGlassTypeRequest) (*GlassTypeResponse, error) {
	gt, err := catalog.NewGlassType(req.Name, req.Color, req.ThicknessMM,
		valueobject.NewMoneyEGP(req.PricePerSquareMeter))
	if err != nil {
		return nil, err
	}

	if err := s.glassTypeRepo.Save(ctx, gt); err != nil {
		return nil, err
	}

	response := ToGlassTypeResponse(gt)
	return &response, nil
}

// GetByID retrieves a glass type by ID
func (s *GlassTypeService) GetByID(ctx context.Context, id uuid.UUID) (*GlassTypeResponse, error) {
	gt, err := s.glassTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToGlassTypeResponse(gt)
	return &response, nil
}

// List retrieves all glass types
func (s *GlassTypeService) List(ctx context.Context, filter shared.Filter) ([]GlassTypeResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	types, err := s.glassTypeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]GlassTypeResponse, 0, len(types))
	for idx := range types {
		responses = append(responses, ToGlassTypeResponse(&types[idx]))
	}
	return responses, nil
}

// Update updates a glass type's name or price
func (s *GlassTypeService) Update(ctx context.Context, id uuid.UUID, req UpdateGlassTypeRequest) (*GlassTypeResponse, error) {
	gt, err := s.glassTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := gt.UpdateName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.PricePerSquareMeter != nil {
		if err := gt.UpdatePrice(valueobject.NewMoneyEGP(*req.PricePerSquareMeter)); err != nil {
			return nil, err
		}
	}

	if err := s.glassTypeRepo.Save(ctx, gt); err != nil {
		return nil, err
	}

	response := ToGlassTypeResponse(gt)
	return &response, nil
}

// Deactivate removes a glass type from the orderable catalog
func (s *GlassTypeService) Deactivate(ctx context.Context, id uuid.UUID) error {
	gt, err := s.glassTypeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	gt.Deactivate()
	return s.glassTypeRepo.Save(ctx, gt)
}

// Activate returns a glass type to the orderable catalog
func (s *GlassTypeService) Activate(ctx context.Context, id uuid.UUID) error {
	gt, err := s.glassTypeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	gt.Activate()
	return s.glassTypeRepo.Save(ctx, gt)
}
