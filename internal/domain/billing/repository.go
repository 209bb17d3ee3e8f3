package billing

import (
	"context"
	"time"

	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRepository is the persistence port for invoices
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]Invoice, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]Invoice, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)
	Save(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// PaymentRepository is the persistence port for payment transactions
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]Payment, error)
	FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error)
	Save(ctx context.Context, payment *Payment) error
}
