package catalog

import (
	"context"

	"github.com/glassshop/backend/internal/domain/catalog"
	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateService manages the cutting-rate table. Writes go through the domain
// RateCatalog so the non-overlap invariant is enforced on every change.
type RateService struct {
	rateCatalog *catalog.RateCatalog
	rateRepo    catalog.ShatafRateRepository
}

// NewRateService creates a new RateService
func NewRateService(rateCatalog *catalog.RateCatalog, rateRepo catalog.ShatafRateRepository) *RateService {
	return &RateService{
		rateCatalog: rateCatalog,
		rateRepo:    rateRepo,
	}
}

// Create adds a rate row for a style and thickness band
func (s *RateService) Create(ctx context.Context, req CreateShatafRateRequest) (*ShatafRateResponse, error) {
	rate, err := s.rateCatalog.AddRate(ctx, catalog.ShatafType(req.Style),
		req.MinThickness, req.MaxThickness, valueobject.NewMoneyEGP(req.RatePerMeter))
	if err != nil {
		return nil, err
	}

	response := ToShatafRateResponse(rate)
	return &response, nil
}

// GetByID retrieves a rate row by ID
func (s *RateService) GetByID(ctx context.Context, id uuid.UUID) (*ShatafRateResponse, error) {
	rate, err := s.rateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToShatafRateResponse(rate)
	return &response, nil
}

// ListByStyle retrieves all rate rows for one cutting style
func (s *RateService) ListByStyle(ctx context.Context, style string) ([]ShatafRateResponse, error) {
	st := catalog.ShatafType(style)
	if !st.IsValid() {
		return nil, shared.NewValidationError("Invalid cutting style: " + style)
	}

	rates, err := s.rateRepo.FindByStyle(ctx, st)
	if err != nil {
		return nil, err
	}

	responses := make([]ShatafRateResponse, 0, len(rates))
	for idx := range rates {
		responses = append(responses, ToShatafRateResponse(&rates[idx]))
	}
	return responses, nil
}

// List retrieves all rate rows
func (s *RateService) List(ctx context.Context, filter shared.Filter) ([]ShatafRateResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	rates, err := s.rateRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ShatafRateResponse, 0, len(rates))
	for idx := range rates {
		responses = append(responses, ToShatafRateResponse(&rates[idx]))
	}
	return responses, nil
}

// Lookup resolves the active rate for a style and exact thickness
func (s *RateService) Lookup(ctx context.Context, style string, thicknessMM decimal.Decimal) (*ShatafRateResponse, error) {
	rate, err := s.rateCatalog.FindRate(ctx, catalog.ShatafType(style), thicknessMM)
	if err != nil {
		return nil, err
	}

	response := ToShatafRateResponse(rate)
	return &response, nil
}

// UpdateRate changes a row's per-meter rate
func (s *RateService) UpdateRate(ctx context.Context, id uuid.UUID, req UpdateShatafRateRequest) (*ShatafRateResponse, error) {
	rate, err := s.rateCatalog.ChangeRate(ctx, id, valueobject.NewMoneyEGP(req.RatePerMeter))
	if err != nil {
		return nil, err
	}

	response := ToShatafRateResponse(rate)
	return &response, nil
}

// Activate re-enables a rate row, re-checking band overlap
func (s *RateService) Activate(ctx context.Context, id uuid.UUID) (*ShatafRateResponse, error) {
	rate, err := s.rateCatalog.ActivateRate(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToShatafRateResponse(rate)
	return &response, nil
}

// Deactivate disables a rate row
func (s *RateService) Deactivate(ctx context.Context, id uuid.UUID) (*ShatafRateResponse, error) {
	rate, err := s.rateCatalog.DeactivateRate(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToShatafRateResponse(rate)
	return &response, nil
}
