package billing

import (
	"strings"
	"time"

	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how the customer handed over the money
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodWallet       PaymentMethod = "WALLET"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodWallet, MethodBankTransfer:
		return true
	}
	return false
}

// ParsePaymentMethod parses a payment method from its string form
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", shared.NewValidationError("Invalid payment method: " + s)
	}
	return m, nil
}

// Payment records one money transfer from a customer. A nil InvoiceID means
// a general payment on the customer's account rather than a settlement of a
// specific invoice. Payments are immutable after creation; corrections are
// made with a compensating entry, never by editing the row.
type Payment struct {
	shared.BaseAggregateRoot
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	InvoiceID  *uuid.UUID      `gorm:"type:uuid;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Method     PaymentMethod   `gorm:"type:varchar(20);not null"`
	PaidAt     time.Time       `gorm:"not null"`
	Notes      string          `gorm:"type:text"`
	CreatedBy  string          `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment records a payment transaction
func NewPayment(customerID uuid.UUID, invoiceID *uuid.UUID, amount valueobject.Money, method PaymentMethod, paidAt time.Time, notes, createdBy string) (*Payment, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("Customer ID cannot be empty")
	}
	if invoiceID != nil && *invoiceID == uuid.Nil {
		return nil, shared.NewValidationError("Invoice ID cannot be empty when set")
	}
	if !amount.IsPositive() {
		return nil, shared.NewValidationError("Payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewValidationError("Invalid payment method: " + string(method))
	}
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	p := &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		InvoiceID:         invoiceID,
		Amount:            amount.Amount(),
		Method:            method,
		PaidAt:            paidAt,
		Notes:             strings.TrimSpace(notes),
		CreatedBy:         strings.TrimSpace(createdBy),
	}

	p.AddDomainEvent(NewPaymentRecordedEvent(p))

	return p, nil
}

// GetAmountMoney returns the payment amount as Money
func (p *Payment) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyEGP(p.Amount)
}

// IsGeneralPayment reports whether the payment is tied to the customer's
// account as a whole instead of one invoice
func (p *Payment) IsGeneralPayment() bool {
	return p.InvoiceID == nil
}
