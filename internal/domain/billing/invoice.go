package billing

import (
	"strings"
	"time"

	"github.com/glassshop/backend/internal/domain/catalog"
	"github.com/glassshop/backend/internal/domain/pricing"
	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/glassshop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks how much of an invoice has been settled
type InvoiceStatus string

const (
	StatusUnpaid        InvoiceStatus = "UNPAID"
	StatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	StatusPaid          InvoiceStatus = "PAID"
)

// IsValid checks if the invoice status is valid
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusUnpaid, StatusPartiallyPaid, StatusPaid:
		return true
	}
	return false
}

// InvoiceLine is one priced sheet on an invoice. Lines exist only inside
// their invoice and carry the full pricing breakdown so the invoice can be
// reprinted without re-running the calculation.
type InvoiceLine struct {
	shared.BaseEntity
	InvoiceID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	GlassTypeID  uuid.UUID           `gorm:"type:uuid;not null"`
	Description  string              `gorm:"type:varchar(255)"`
	Style        catalog.ShatafType  `gorm:"type:varchar(30);not null"`
	Farma        catalog.FarmaType   `gorm:"type:varchar(30);not null"`
	WidthMM      decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	HeightMM     decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	AreaSqm      decimal.Decimal     `gorm:"type:decimal(12,4);not null"`
	ShatafMeters decimal.Decimal     `gorm:"type:decimal(12,4);not null;default:0"`
	GlassPrice   decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	CuttingPrice decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	LineTotal    decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (InvoiceLine) TableName() string {
	return "invoice_lines"
}

// GetLineTotalMoney returns the line total as Money
func (l *InvoiceLine) GetLineTotalMoney() valueobject.Money {
	return valueobject.NewMoneyEGP(l.LineTotal)
}

// LineMetadata carries the descriptive attributes of a priced line that the
// calculation itself does not know about.
type LineMetadata struct {
	GlassTypeID uuid.UUID
	Description string
	Style       catalog.ShatafType
	Farma       catalog.FarmaType
	Dimensions  valueobject.Dimensions
}

// Invoice is the billing aggregate root. It owns its lines, sums them into
// a total, and tracks how much of that total the customer has paid.
// Remaining balance never goes negative: payments that would exceed it are
// rejected before any state changes.
type Invoice struct {
	shared.BaseAggregateRoot
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Lines       []InvoiceLine   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	AmountPaid  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Notes       string          `gorm:"type:text"`
	IssueDate   time.Time       `gorm:"not null"`
	PaymentDate *time.Time      `gorm:""`
	Status      InvoiceStatus   `gorm:"type:varchar(20);not null;default:'UNPAID'"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates an empty invoice for a customer
func NewInvoice(customerID uuid.UUID, issueDate time.Time, notes string) (*Invoice, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("Customer ID cannot be empty")
	}
	if issueDate.IsZero() {
		issueDate = time.Now()
	}

	inv := &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Lines:             []InvoiceLine{},
		TotalPrice:        decimal.Zero,
		AmountPaid:        decimal.Zero,
		Notes:             strings.TrimSpace(notes),
		IssueDate:         issueDate,
		Status:            StatusUnpaid,
	}

	inv.AddDomainEvent(NewInvoiceCreatedEvent(inv))

	return inv, nil
}

// AddLine appends a priced line and recomputes the invoice total.
// Line order is insertion order.
func (i *Invoice) AddLine(calc *pricing.LineCalculation, meta LineMetadata) error {
	if calc == nil {
		return shared.NewValidationError("Line calculation cannot be nil")
	}
	if meta.GlassTypeID == uuid.Nil {
		return shared.NewValidationError("Line glass type ID cannot be empty")
	}

	mm := meta.Dimensions.ConvertToMillimeters()

	line := InvoiceLine{
		BaseEntity:   shared.NewBaseEntity(),
		InvoiceID:    i.ID,
		GlassTypeID:  meta.GlassTypeID,
		Description:  strings.TrimSpace(meta.Description),
		Style:        meta.Style,
		Farma:        meta.Farma,
		WidthMM:      mm.Width(),
		HeightMM:     mm.Height(),
		AreaSqm:      calc.Area().SquareMeters(),
		ShatafMeters: calc.ShatafMeters(),
		GlassPrice:   calc.GlassPrice().Amount(),
		CuttingPrice: calc.CuttingPrice().Amount(),
		LineTotal:    calc.TotalPrice().Amount(),
	}

	i.Lines = append(i.Lines, line)
	i.recalculateTotal()
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewInvoiceLineAddedEvent(i, &line))

	return nil
}

// recalculateTotal sums the line totals. Status is refreshed because a new
// line can move a fully paid invoice back to partially paid.
func (i *Invoice) recalculateTotal() {
	total := decimal.Zero
	for _, line := range i.Lines {
		total = total.Add(line.LineTotal)
	}
	i.TotalPrice = total
	i.Status = statusFor(i.AmountPaid, i.TotalPrice)
}

// GetTotalMoney returns the invoice total as Money
func (i *Invoice) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyEGP(i.TotalPrice)
}

// GetAmountPaidMoney returns the paid amount as Money
func (i *Invoice) GetAmountPaidMoney() valueobject.Money {
	return valueobject.NewMoneyEGP(i.AmountPaid)
}

// RemainingBalance returns what the customer still owes on this invoice
func (i *Invoice) RemainingBalance() valueobject.Money {
	return valueobject.NewMoneyEGP(i.TotalPrice.Sub(i.AmountPaid))
}

// IsPaid checks if the invoice is fully settled
func (i *Invoice) IsPaid() bool {
	return i.Status == StatusPaid
}

// ApplyPayment records a payment against the invoice. The amount must be
// positive and must not exceed the remaining balance; on failure the
// invoice is left untouched.
func (i *Invoice) ApplyPayment(amount valueobject.Money, paidAt time.Time) error {
	if !amount.IsPositive() {
		return shared.NewValidationError("Payment amount must be positive")
	}

	remaining := i.RemainingBalance()
	exceeds, err := amount.GreaterThan(remaining)
	if err != nil {
		return err
	}
	if exceeds {
		return shared.NewDomainError(shared.CodeOverpayment,
			"Payment amount "+amount.String()+" exceeds remaining balance "+remaining.String())
	}

	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	i.AmountPaid = i.AmountPaid.Add(amount.Amount())
	i.Status = statusFor(i.AmountPaid, i.TotalPrice)
	if i.PaymentDate == nil {
		i.PaymentDate = &paidAt
	}
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewInvoicePaymentAppliedEvent(i, amount.Amount()))
	if i.Status == StatusPaid {
		i.AddDomainEvent(NewInvoicePaidEvent(i))
	}

	return nil
}

// UpdateNotes replaces the free-text notes
func (i *Invoice) UpdateNotes(notes string) {
	i.Notes = strings.TrimSpace(notes)
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// statusFor derives the invoice status from the paid amount alone
func statusFor(amountPaid, totalPrice decimal.Decimal) InvoiceStatus {
	switch {
	case amountPaid.LessThanOrEqual(decimal.Zero):
		return StatusUnpaid
	case amountPaid.GreaterThanOrEqual(totalPrice):
		return StatusPaid
	default:
		return StatusPartiallyPaid
	}
}
