package billing

import (
	"time"

	"github.com/glassshop/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineRequest describes one sheet to price: its size, glass type, cutting
// style and cut-geometry formula. Width and height are interpreted in the
// given unit; diameter is always meters and only used by circular formulas.
type LineRequest struct {
	GlassTypeID        uuid.UUID        `json:"glass_type_id" binding:"required"`
	Width              decimal.Decimal  `json:"width" binding:"required"`
	Height             decimal.Decimal  `json:"height" binding:"required"`
	Unit               string           `json:"unit" binding:"required,oneof=MM M"`
	Style              string           `json:"style" binding:"required"`
	Farma              string           `json:"farma" binding:"required"`
	DiameterM          decimal.Decimal  `json:"diameter_m"`
	ManualCuttingPrice *decimal.Decimal `json:"manual_cutting_price"`
	Description        string           `json:"description" binding:"max=255"`
}

// CreateInvoiceRequest represents a request to issue an invoice
type CreateInvoiceRequest struct {
	CustomerID     uuid.UUID        `json:"customer_id" binding:"required"`
	Lines          []LineRequest    `json:"lines" binding:"required,min=1,dive"`
	Notes          string           `json:"notes"`
	InitialPayment *decimal.Decimal `json:"initial_payment"`
	PaymentMethod  string           `json:"payment_method" binding:"omitempty,oneof=cash wallet bank_transfer CASH WALLET BANK_TRANSFER"`
	CreatedBy      string           `json:"-"`
}

// ApplyPaymentRequest represents a payment against an existing invoice
type ApplyPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    string          `json:"method" binding:"required,oneof=cash wallet bank_transfer CASH WALLET BANK_TRANSFER"`
	Notes     string          `json:"notes"`
	CreatedBy string          `json:"-"`
}

// LineResponse represents a priced invoice line
type LineResponse struct {
	ID           uuid.UUID       `json:"id"`
	GlassTypeID  uuid.UUID       `json:"glass_type_id"`
	Description  string          `json:"description"`
	Style        string          `json:"style"`
	Farma        string          `json:"farma"`
	WidthMM      decimal.Decimal `json:"width_mm"`
	HeightMM     decimal.Decimal `json:"height_mm"`
	AreaSqm      decimal.Decimal `json:"area_sqm"`
	ShatafMeters decimal.Decimal `json:"shataf_meters"`
	GlassPrice   decimal.Decimal `json:"glass_price"`
	CuttingPrice decimal.Decimal `json:"cutting_price"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// QuoteResponse is the result of pricing a line without creating an invoice
type QuoteResponse struct {
	AreaSqm      decimal.Decimal `json:"area_sqm"`
	ShatafMeters decimal.Decimal `json:"shataf_meters"`
	GlassPrice   decimal.Decimal `json:"glass_price"`
	CuttingPrice decimal.Decimal `json:"cutting_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID               uuid.UUID       `json:"id"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	Lines            []LineResponse  `json:"lines"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes"`
	IssueDate        time.Time       `json:"issue_date"`
	PaymentDate      *time.Time      `json:"payment_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	Version          int             `json:"version"`
}

// PaymentResponse represents a payment transaction in API responses
type PaymentResponse struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	InvoiceID  *uuid.UUID      `json:"invoice_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	PaidAt     time.Time       `json:"paid_at"`
	Notes      string          `json:"notes"`
	CreatedBy  string          `json:"created_by"`
}

// BalanceReport is the result of auditing a customer's cached balance
type BalanceReport struct {
	CustomerID        uuid.UUID       `json:"customer_id"`
	CachedBalance     decimal.Decimal `json:"cached_balance"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	Consistent        bool            `json:"consistent"`
	Discrepancy       decimal.Decimal `json:"discrepancy"`
}

// ToLineResponse converts a domain invoice line to a response DTO
func ToLineResponse(l *billing.InvoiceLine) LineResponse {
	return LineResponse{
		ID:           l.ID,
		GlassTypeID:  l.GlassTypeID,
		Description:  l.Description,
		Style:        string(l.Style),
		Farma:        string(l.Farma),
		WidthMM:      l.WidthMM,
		HeightMM:     l.HeightMM,
		AreaSqm:      l.AreaSqm,
		ShatafMeters: l.ShatafMeters,
		GlassPrice:   l.GlassPrice,
		CuttingPrice: l.CuttingPrice,
		LineTotal:    l.LineTotal,
	}
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	lines := make([]LineResponse, 0, len(inv.Lines))
	for idx := range inv.Lines {
		lines = append(lines, ToLineResponse(&inv.Lines[idx]))
	}

	return InvoiceResponse{
		ID:               inv.ID,
		CustomerID:       inv.CustomerID,
		Lines:            lines,
		TotalPrice:       inv.TotalPrice,
		AmountPaid:       inv.AmountPaid,
		RemainingBalance: inv.RemainingBalance().Amount(),
		Status:           string(inv.Status),
		Notes:            inv.Notes,
		IssueDate:        inv.IssueDate,
		PaymentDate:      inv.PaymentDate,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
		Version:          inv.Version,
	}
}

// ToPaymentResponse converts a domain payment to a response DTO
func ToPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		InvoiceID:  p.InvoiceID,
		Amount:     p.Amount,
		Method:     string(p.Method),
		PaidAt:     p.PaidAt,
		Notes:      p.Notes,
		CreatedBy:  p.CreatedBy,
	}
}
