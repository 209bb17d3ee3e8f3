package billing

import (
	"github.com/glassshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeInvoice = "Invoice"
	AggregateTypePayment = "Payment"
)

// Event type constants
const (
	EventTypeInvoiceCreated        = "InvoiceCreated"
	EventTypeInvoiceLineAdded      = "InvoiceLineAdded"
	EventTypeInvoicePaymentApplied = "InvoicePaymentApplied"
	EventTypeInvoicePaid           = "InvoicePaid"
	EventTypePaymentRecorded       = "PaymentRecorded"
)

// InvoiceCreatedEvent is published when a new invoice is opened
type InvoiceCreatedEvent struct {
	shared.BaseDomainEvent
	InvoiceID  uuid.UUID `json:"invoice_id"`
	CustomerID uuid.UUID `json:"customer_id"`
}

// NewInvoiceCreatedEvent creates a new InvoiceCreatedEvent
func NewInvoiceCreatedEvent(inv *Invoice) *InvoiceCreatedEvent {
	return &InvoiceCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceCreated, AggregateTypeInvoice, inv.ID),
		InvoiceID:       inv.ID,
		CustomerID:      inv.CustomerID,
	}
}

// InvoiceLineAddedEvent is published when a priced line is appended
type InvoiceLineAddedEvent struct {
	shared.BaseDomainEvent
	InvoiceID  uuid.UUID       `json:"invoice_id"`
	LineID     uuid.UUID       `json:"line_id"`
	LineTotal  decimal.Decimal `json:"line_total"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// NewInvoiceLineAddedEvent creates a new InvoiceLineAddedEvent
func NewInvoiceLineAddedEvent(inv *Invoice, line *InvoiceLine) *InvoiceLineAddedEvent {
	return &InvoiceLineAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceLineAdded, AggregateTypeInvoice, inv.ID),
		InvoiceID:       inv.ID,
		LineID:          line.ID,
		LineTotal:       line.LineTotal,
		TotalPrice:      inv.TotalPrice,
	}
}

// InvoicePaymentAppliedEvent is published for every accepted payment
type InvoicePaymentAppliedEvent struct {
	shared.BaseDomainEvent
	InvoiceID  uuid.UUID       `json:"invoice_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	Status     InvoiceStatus   `json:"status"`
}

// NewInvoicePaymentAppliedEvent creates a new InvoicePaymentAppliedEvent
func NewInvoicePaymentAppliedEvent(inv *Invoice, amount decimal.Decimal) *InvoicePaymentAppliedEvent {
	return &InvoicePaymentAppliedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoicePaymentApplied, AggregateTypeInvoice, inv.ID),
		InvoiceID:       inv.ID,
		CustomerID:      inv.CustomerID,
		Amount:          amount,
		AmountPaid:      inv.AmountPaid,
		Status:          inv.Status,
	}
}

// InvoicePaidEvent is published when an invoice becomes fully settled
type InvoicePaidEvent struct {
	shared.BaseDomainEvent
	InvoiceID  uuid.UUID       `json:"invoice_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// NewInvoicePaidEvent creates a new InvoicePaidEvent
func NewInvoicePaidEvent(inv *Invoice) *InvoicePaidEvent {
	return &InvoicePaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoicePaid, AggregateTypeInvoice, inv.ID),
		InvoiceID:       inv.ID,
		CustomerID:      inv.CustomerID,
		TotalPrice:      inv.TotalPrice,
	}
}

// PaymentRecordedEvent is published when a payment transaction is created
type PaymentRecordedEvent struct {
	shared.BaseDomainEvent
	PaymentID  uuid.UUID       `json:"payment_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	InvoiceID  *uuid.UUID      `json:"invoice_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Method     PaymentMethod   `json:"method"`
}

// NewPaymentRecordedEvent creates a new PaymentRecordedEvent
func NewPaymentRecordedEvent(p *Payment) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRecorded, AggregateTypePayment, p.ID),
		PaymentID:       p.ID,
		CustomerID:      p.CustomerID,
		InvoiceID:       p.InvoiceID,
		Amount:          p.Amount,
		Method:          p.Method,
	}
}
