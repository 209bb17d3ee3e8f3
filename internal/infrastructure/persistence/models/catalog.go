package models

import (
	"github.com/glassshop/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// GlassTypeModel is the persistence model for the GlassType aggregate.
type GlassTypeModel struct {
	AggregateModel
	Name                string          `gorm:"type:varchar(100);not null"`
	Color               string          `gorm:"type:varchar(50)"`
	ThicknessMM         decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	PricePerSquareMeter decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Active              bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (GlassTypeModel) TableName() string {
	return "glass_types"
}

// ToDomain converts the persistence model to a domain GlassType.
func (m *GlassTypeModel) ToDomain() *catalog.GlassType {
	gt := &catalog.GlassType{
		Name:                m.Name,
		Color:               m.Color,
		ThicknessMM:         m.ThicknessMM,
		PricePerSquareMeter: m.PricePerSquareMeter,
		Active:              m.Active,
	}
	m.PopulateAggregateRoot(&gt.BaseAggregateRoot)
	return gt
}

// FromDomain populates the persistence model from a domain GlassType.
func (m *GlassTypeModel) FromDomain(gt *catalog.GlassType) {
	m.FromDomainAggregateRoot(gt.BaseAggregateRoot)
	m.Name = gt.Name
	m.Color = gt.Color
	m.ThicknessMM = gt.ThicknessMM
	m.PricePerSquareMeter = gt.PricePerSquareMeter
	m.Active = gt.Active
}

// GlassTypeModelFromDomain creates a new persistence model from a domain GlassType.
func GlassTypeModelFromDomain(gt *catalog.GlassType) *GlassTypeModel {
	m := &GlassTypeModel{}
	m.FromDomain(gt)
	return m
}

// ShatafRateModel is the persistence model for a row of the cutting rate table.
type ShatafRateModel struct {
	AggregateModel
	Style          catalog.ShatafType `gorm:"type:varchar(30);not null;index"`
	MinThicknessMM decimal.Decimal    `gorm:"type:decimal(8,2);not null"`
	MaxThicknessMM decimal.Decimal    `gorm:"type:decimal(8,2);not null"`
	RatePerMeter   decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	Active         bool               `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ShatafRateModel) TableName() string {
	return "shataf_rates"
}

// ToDomain converts the persistence model to a domain ShatafRate.
func (m *ShatafRateModel) ToDomain() *catalog.ShatafRate {
	rate := &catalog.ShatafRate{
		Style:          m.Style,
		MinThicknessMM: m.MinThicknessMM,
		MaxThicknessMM: m.MaxThicknessMM,
		RatePerMeter:   m.RatePerMeter,
		Active:         m.Active,
	}
	m.PopulateAggregateRoot(&rate.BaseAggregateRoot)
	return rate
}

// FromDomain populates the persistence model from a domain ShatafRate.
func (m *ShatafRateModel) FromDomain(rate *catalog.ShatafRate) {
	m.FromDomainAggregateRoot(rate.BaseAggregateRoot)
	m.Style = rate.Style
	m.MinThicknessMM = rate.MinThicknessMM
	m.MaxThicknessMM = rate.MaxThicknessMM
	m.RatePerMeter = rate.RatePerMeter
	m.Active = rate.Active
}

// ShatafRateModelFromDomain creates a new persistence model from a domain ShatafRate.
func ShatafRateModelFromDomain(rate *catalog.ShatafRate) *ShatafRateModel {
	m := &ShatafRateModel{}
	m.FromDomain(rate)
	return m
}
