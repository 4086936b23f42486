package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeAllocation credits a part of an income transaction to one envelope.
//
// Allocations only ever exist as children of an income transaction and are
// created and deleted with it. For a given income transaction the amounts
// of its allocations add up to the transaction amount exactly.
type IncomeAllocation struct {
	DefaultModel
	TransactionID uuid.UUID       `json:"transactionId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`
	Transaction   Transaction     `json:"-"`
	EnvelopeID    uuid.UUID       `json:"envelopeId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`
	Envelope      Envelope        `json:"-"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"50.00"` // Always positive
}

// BeforeSave validates the allocation amount.
func (a *IncomeAllocation) BeforeSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(a.Amount) {
		return ErrAllocationAmountNegative
	}

	return nil
}
