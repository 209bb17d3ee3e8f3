package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// memoryInvoiceRepository keeps invoices in a slice, preserving insertion order
type memoryInvoiceRepository struct {
	invoices []Invoice
	err      error
}

func (r *memoryInvoiceRepository) FindByID(_ context.Context, id uuid.UUID) (*Invoice, error) {
	for idx := range r.invoices {
		if r.invoices[idx].ID == id {
			return &r.invoices[idx], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryInvoiceRepository) FindByCustomerID(_ context.Context, customerID uuid.UUID) ([]Invoice, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []Invoice
	for idx := range r.invoices {
		if r.invoices[idx].CustomerID == customerID {
			out = append(out, r.invoices[idx])
		}
	}
	return out, nil
}

func (r *memoryInvoiceRepository) FindByDateRange(_ context.Context, start, end time.Time) ([]Invoice, error) {
	var out []Invoice
	for idx := range r.invoices {
		issued := r.invoices[idx].IssueDate
		if !issued.Before(start) && !issued.After(end) {
			out = append(out, r.invoices[idx])
		}
	}
	return out, nil
}

func (r *memoryInvoiceRepository) FindAll(_ context.Context, _ shared.Filter) ([]Invoice, error) {
	return r.invoices, nil
}

func (r *memoryInvoiceRepository) Save(_ context.Context, invoice *Invoice) error {
	for idx := range r.invoices {
		if r.invoices[idx].ID == invoice.ID {
			r.invoices[idx] = *invoice
			return nil
		}
	}
	r.invoices = append(r.invoices, *invoice)
	return nil
}

func (r *memoryInvoiceRepository) Delete(_ context.Context, id uuid.UUID) error {
	for idx := range r.invoices {
		if r.invoices[idx].ID == id {
			r.invoices = append(r.invoices[:idx], r.invoices[idx+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

func (r *memoryInvoiceRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	for idx := range r.invoices {
		if r.invoices[idx].ID == id {
			return true, nil
		}
	}
	return false, nil
}

func seedInvoice(t *testing.T, repo *memoryInvoiceRepository, customerID uuid.UUID, total, paid float64) {
	t.Helper()
	inv, err := NewInvoice(customerID, time.Now(), "")
	require.NoError(t, err)
	require.NoError(t, inv.AddLine(testLineCalculation(t, total, 0), testLineMetadata(t)))
	if paid > 0 {
		require.NoError(t, inv.ApplyPayment(valueobject.NewMoneyEGPFromFloat(paid), time.Now()))
	}
	require.NoError(t, repo.Save(context.Background(), inv))
}

func TestBalanceReconciliationService_CalculateCustomerBalance(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	otherID := uuid.New()

	repo := &memoryInvoiceRepository{}
	seedInvoice(t, repo, customerID, 500.00, 200.00) // owes 300
	seedInvoice(t, repo, customerID, 150.00, 0)      // owes 150
	seedInvoice(t, repo, customerID, 80.00, 80.00)   // settled
	seedInvoice(t, repo, otherID, 999.00, 0)         // someone else's debt

	svc := NewBalanceReconciliationService(repo, zap.NewNop())

	balance, err := svc.CalculateCustomerBalance(ctx, customerID)
	require.NoError(t, err)
	assert.True(t, balance.Equals(valueobject.NewMoneyEGPFromFloat(450.00)), "balance %s", balance)

	t.Run("no invoices means zero", func(t *testing.T) {
		balance, err := svc.CalculateCustomerBalance(ctx, uuid.New())
		require.NoError(t, err)
		assert.True(t, balance.IsZero())
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		failing := &memoryInvoiceRepository{err: errors.New("connection reset")}
		_, err := NewBalanceReconciliationService(failing, zap.NewNop()).CalculateCustomerBalance(ctx, customerID)
		assert.Error(t, err)
	})
}

func TestBalanceReconciliationService_IsBalanceConsistent(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	repo := &memoryInvoiceRepository{}
	seedInvoice(t, repo, customerID, 500.00, 200.00)

	core, logs := observer.New(zap.WarnLevel)
	svc := NewBalanceReconciliationService(repo, zap.New(core))

	t.Run("matching cache", func(t *testing.T) {
		ok, err := svc.IsBalanceConsistent(ctx, customerID, valueobject.NewMoneyEGPFromFloat(300.00))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Zero(t, logs.Len())
	})

	t.Run("drifted cache warns, does not fail", func(t *testing.T) {
		ok, err := svc.IsBalanceConsistent(ctx, customerID, valueobject.NewMoneyEGPFromFloat(275.00))
		require.NoError(t, err)
		assert.False(t, ok)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "customer balance drift detected", entry.Message)
		fields := entry.ContextMap()
		assert.Equal(t, "275.00 EGP", fields["cached_balance"])
		assert.Equal(t, "300.00 EGP", fields["calculated_balance"])
	})
}

func TestBalanceReconciliationService_GetReconciledBalance(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	repo := &memoryInvoiceRepository{}
	seedInvoice(t, repo, customerID, 120.00, 20.00)

	svc := NewBalanceReconciliationService(repo, nil)

	balance, err := svc.GetReconciledBalance(ctx, customerID)
	require.NoError(t, err)
	assert.True(t, balance.Equals(valueobject.NewMoneyEGPFromFloat(100.00)))
}
