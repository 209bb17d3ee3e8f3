package models

import (
	"time"

	"github.com/glassshop/backend/internal/domain/billing"
	"github.com/glassshop/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceLineModel is the persistence model for a priced invoice line.
type InvoiceLineModel struct {
	BaseModel
	InvoiceID    uuid.UUID          `gorm:"type:uuid;not null;index"`
	GlassTypeID  uuid.UUID          `gorm:"type:uuid;not null"`
	Description  string             `gorm:"type:varchar(255)"`
	Style        catalog.ShatafType `gorm:"type:varchar(30);not null"`
	Farma        catalog.FarmaType  `gorm:"type:varchar(30);not null"`
	WidthMM      decimal.Decimal    `gorm:"type:decimal(12,2);not null"`
	HeightMM     decimal.Decimal    `gorm:"type:decimal(12,2);not null"`
	AreaSqm      decimal.Decimal    `gorm:"type:decimal(12,4);not null"`
	ShatafMeters decimal.Decimal    `gorm:"type:decimal(12,4);not null;default:0"`
	GlassPrice   decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	CuttingPrice decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	LineTotal    decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (InvoiceLineModel) TableName() string {
	return "invoice_lines"
}

// ToDomain converts the persistence model to a domain InvoiceLine.
func (m *InvoiceLineModel) ToDomain() billing.InvoiceLine {
	return billing.InvoiceLine{
		BaseEntity:   m.BaseModel.ToDomain(),
		InvoiceID:    m.InvoiceID,
		GlassTypeID:  m.GlassTypeID,
		Description:  m.Description,
		Style:        m.Style,
		Farma:        m.Farma,
		WidthMM:      m.WidthMM,
		HeightMM:     m.HeightMM,
		AreaSqm:      m.AreaSqm,
		ShatafMeters: m.ShatafMeters,
		GlassPrice:   m.GlassPrice,
		CuttingPrice: m.CuttingPrice,
		LineTotal:    m.LineTotal,
	}
}

// FromDomain populates the persistence model from a domain InvoiceLine.
func (m *InvoiceLineModel) FromDomain(l billing.InvoiceLine) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.InvoiceID = l.InvoiceID
	m.GlassTypeID = l.GlassTypeID
	m.Description = l.Description
	m.Style = l.Style
	m.Farma = l.Farma
	m.WidthMM = l.WidthMM
	m.HeightMM = l.HeightMM
	m.AreaSqm = l.AreaSqm
	m.ShatafMeters = l.ShatafMeters
	m.GlassPrice = l.GlassPrice
	m.CuttingPrice = l.CuttingPrice
	m.LineTotal = l.LineTotal
}

// InvoiceModel is the persistence model for the Invoice aggregate.
// Lines are owned rows and are replaced together with the invoice.
type InvoiceModel struct {
	AggregateModel
	CustomerID  uuid.UUID          `gorm:"type:uuid;not null;index"`
	Lines       []InvoiceLineModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	TotalPrice  decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0"`
	AmountPaid  decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0"`
	Notes       string             `gorm:"type:text"`
	IssueDate   time.Time          `gorm:"not null;index"`
	PaymentDate *time.Time
	Status      billing.InvoiceStatus `gorm:"type:varchar(20);not null;default:'UNPAID';index"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	inv := &billing.Invoice{
		CustomerID:  m.CustomerID,
		TotalPrice:  m.TotalPrice,
		AmountPaid:  m.AmountPaid,
		Notes:       m.Notes,
		IssueDate:   m.IssueDate,
		PaymentDate: m.PaymentDate,
		Status:      m.Status,
	}
	m.PopulateAggregateRoot(&inv.BaseAggregateRoot)
	inv.Lines = make([]billing.InvoiceLine, len(m.Lines))
	for i, line := range m.Lines {
		inv.Lines[i] = line.ToDomain()
	}
	return inv
}

// FromDomain populates the persistence model from a domain Invoice.
func (m *InvoiceModel) FromDomain(inv *billing.Invoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.CustomerID = inv.CustomerID
	m.TotalPrice = inv.TotalPrice
	m.AmountPaid = inv.AmountPaid
	m.Notes = inv.Notes
	m.IssueDate = inv.IssueDate
	m.PaymentDate = inv.PaymentDate
	m.Status = inv.Status
	m.Lines = make([]InvoiceLineModel, len(inv.Lines))
	for i, line := range inv.Lines {
		m.Lines[i].FromDomain(line)
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice.
func InvoiceModelFromDomain(inv *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// PaymentModel is the persistence model for the Payment aggregate.
type PaymentModel struct {
	AggregateModel
	CustomerID uuid.UUID             `gorm:"type:uuid;not null;index"`
	InvoiceID  *uuid.UUID            `gorm:"type:uuid;index"`
	Amount     decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
	Method     billing.PaymentMethod `gorm:"type:varchar(20);not null"`
	PaidAt     time.Time             `gorm:"not null;index"`
	Notes      string                `gorm:"type:text"`
	CreatedBy  string                `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment.
func (m *PaymentModel) ToDomain() *billing.Payment {
	p := &billing.Payment{
		CustomerID: m.CustomerID,
		InvoiceID:  m.InvoiceID,
		Amount:     m.Amount,
		Method:     m.Method,
		PaidAt:     m.PaidAt,
		Notes:      m.Notes,
		CreatedBy:  m.CreatedBy,
	}
	m.PopulateAggregateRoot(&p.BaseAggregateRoot)
	return p
}

// FromDomain populates the persistence model from a domain Payment.
func (m *PaymentModel) FromDomain(p *billing.Payment) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.CustomerID = p.CustomerID
	m.InvoiceID = p.InvoiceID
	m.Amount = p.Amount
	m.Method = p.Method
	m.PaidAt = p.PaidAt
	m.Notes = p.Notes
	m.CreatedBy = p.CreatedBy
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment.
func PaymentModelFromDomain(p *billing.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
