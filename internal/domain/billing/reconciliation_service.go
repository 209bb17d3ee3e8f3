package billing

import (
	"context"

	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BalanceReconciliationService audits customer balances. Invoices are the
// single source of truth: a customer's real balance is the sum of remaining
// balances over their invoices. Any cached balance stored on the customer
// row is a projection that this service checks but never fixes silently.
type BalanceReconciliationService struct {
	invoices InvoiceRepository
	logger   *zap.Logger
}

// NewBalanceReconciliationService creates a new balance reconciliation service
func NewBalanceReconciliationService(invoices InvoiceRepository, logger *zap.Logger) *BalanceReconciliationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BalanceReconciliationService{
		invoices: invoices,
		logger:   logger,
	}
}

// CalculateCustomerBalance sums the remaining balance over every invoice
// belonging to the customer. A customer with no invoices owes zero.
func (s *BalanceReconciliationService) CalculateCustomerBalance(ctx context.Context, customerID uuid.UUID) (valueobject.Money, error) {
	invoices, err := s.invoices.FindByCustomerID(ctx, customerID)
	if err != nil {
		return valueobject.Money{}, err
	}

	balance := valueobject.ZeroEGP()
	for idx := range invoices {
		balance, err = balance.Add(invoices[idx].RemainingBalance())
		if err != nil {
			return valueobject.Money{}, err
		}
	}
	return balance, nil
}

// IsBalanceConsistent compares a cached balance against the invoice-derived
// balance by exact equality. A mismatch is reported for operator follow-up
// but does not fail the call; the computed value stays authoritative.
func (s *BalanceReconciliationService) IsBalanceConsistent(ctx context.Context, customerID uuid.UUID, cachedBalance valueobject.Money) (bool, error) {
	calculated, err := s.CalculateCustomerBalance(ctx, customerID)
	if err != nil {
		return false, err
	}

	if !calculated.Equals(cachedBalance) {
		s.logger.Warn("customer balance drift detected",
			zap.String("customer_id", customerID.String()),
			zap.String("cached_balance", cachedBalance.String()),
			zap.String("calculated_balance", calculated.String()),
			zap.String("discrepancy", cachedBalance.MustSubtract(calculated).String()),
		)
		return false, nil
	}
	return true, nil
}

// GetReconciledBalance returns the authoritative balance for a customer,
// recomputed from invoices on every call.
func (s *BalanceReconciliationService) GetReconciledBalance(ctx context.Context, customerID uuid.UUID) (valueobject.Money, error) {
	return s.CalculateCustomerBalance(ctx, customerID)
}
