package models

import (
	"github.com/glassshop/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for the Customer aggregate.
type CustomerModel struct {
	AggregateModel
	Name    string               `gorm:"type:varchar(200);not null"`
	Phone   string               `gorm:"type:varchar(50);index"`
	Type    partner.CustomerType `gorm:"type:varchar(20);not null;default:'cash'"`
	Balance decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	Notes   string               `gorm:"type:text"`
	Active  bool                 `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer.
func (m *CustomerModel) ToDomain() *partner.Customer {
	c := &partner.Customer{
		Name:    m.Name,
		Phone:   m.Phone,
		Type:    m.Type,
		Balance: m.Balance,
		Notes:   m.Notes,
		Active:  m.Active,
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain Customer.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Phone = c.Phone
	m.Type = c.Type
	m.Balance = c.Balance
	m.Notes = c.Notes
	m.Active = c.Active
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
