package billing

import (
	"context"

	"github.com/glassshop/backend/internal/domain/billing"
	"github.com/glassshop/backend/internal/domain/partner"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReconciliationService audits and repairs cached customer balances using
// the domain reconciliation service. Auditing never mutates; repair is a
// separate, explicit call.
type ReconciliationService struct {
	reconciler   *billing.BalanceReconciliationService
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewReconciliationService creates a new ReconciliationService
func NewReconciliationService(
	reconciler *billing.BalanceReconciliationService,
	customerRepo partner.CustomerRepository,
	logger *zap.Logger,
) *ReconciliationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReconciliationService{
		reconciler:   reconciler,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// CheckBalance compares a customer's cached balance with the invoice-derived
// one and reports the result. The cached value is left untouched.
func (s *ReconciliationService) CheckBalance(ctx context.Context, customerID uuid.UUID) (*BalanceReport, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	cached := customer.GetBalanceMoney()
	consistent, err := s.reconciler.IsBalanceConsistent(ctx, customerID, cached)
	if err != nil {
		return nil, err
	}

	calculated, err := s.reconciler.GetReconciledBalance(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return &BalanceReport{
		CustomerID:        customerID,
		CachedBalance:     cached.Amount(),
		CalculatedBalance: calculated.Amount(),
		Consistent:        consistent,
		Discrepancy:       cached.Amount().Sub(calculated.Amount()),
	}, nil
}

// RepairBalance overwrites a drifted cache with the invoice-derived balance
func (s *ReconciliationService) RepairBalance(ctx context.Context, customerID uuid.UUID) (*BalanceReport, error) {
	report, err := s.CheckBalance(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if report.Consistent {
		return report, nil
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	calculated, err := s.reconciler.GetReconciledBalance(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := customer.SyncBalance(calculated); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer balance repaired",
		zap.String("customer_id", customerID.String()),
		zap.String("old_balance", report.CachedBalance.String()),
		zap.String("new_balance", calculated.String()),
	)

	report.CachedBalance = calculated.Amount()
	report.Consistent = true
	report.Discrepancy = report.CachedBalance.Sub(report.CalculatedBalance)
	return report, nil
}
