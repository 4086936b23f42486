package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// swagger:enum TransactionType
type TransactionType string

const (
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
	TypeIncome   TransactionType = "income"
)

// Transaction is a single movement of money.
//
// Which envelope references are set depends on the type:
//
//   - expense: Envelope is the envelope the money is spent from
//   - transfer: SourceEnvelope and TargetEnvelope, which must differ
//   - income: no direct reference, the money is credited through the
//     owned IncomeAllocation children
type Transaction struct {
	DefaultModel
	Date   time.Time       `json:"date" example:"2023-09-12T00:00:00Z"`                                                           // Date of the transaction. Time is only used for sorting
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03" minimum:"0.00000001" multipleOf:"0.00000001"` // Always stored positive, the type decides the sign
	Type   TransactionType `json:"type" example:"expense"`
	Note   string          `json:"note" example:"Lunch"`

	EnvelopeID *uuid.UUID `json:"envelopeId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // Envelope debited by an expense
	Envelope   *Envelope  `json:"-"`

	SourceEnvelopeID *uuid.UUID `json:"sourceEnvelopeId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // Envelope debited by a transfer
	SourceEnvelope   *Envelope  `json:"-"`

	TargetEnvelopeID *uuid.UUID `json:"targetEnvelopeId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // Envelope credited by a transfer
	TargetEnvelope   *Envelope  `json:"-"`

	Allocations []IncomeAllocation `json:"allocations,omitempty" gorm:"constraint:OnDelete:CASCADE"` // Owned by income transactions
}

// BeforeSave normalizes and validates the transaction.
//
// The amount must be positive and exactly the references for the type must
// be set. Balances are never checked here, an envelope may go negative,
// overspending is surfaced by the display layer and is not an error.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Note = strings.TrimSpace(t.Note)

	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrTransactionAmountNotPositive
	}

	switch t.Type {
	case TypeExpense:
		if t.EnvelopeID == nil || t.SourceEnvelopeID != nil || t.TargetEnvelopeID != nil {
			return ErrTransactionReferencesInvalid
		}
	case TypeTransfer:
		if t.EnvelopeID != nil || t.SourceEnvelopeID == nil || t.TargetEnvelopeID == nil {
			return ErrTransactionReferencesInvalid
		}

		if *t.SourceEnvelopeID == *t.TargetEnvelopeID {
			return ErrSourceEqualsTarget
		}
	case TypeIncome:
		if t.EnvelopeID != nil || t.SourceEnvelopeID != nil || t.TargetEnvelopeID != nil {
			return ErrTransactionReferencesInvalid
		}
	default:
		return ErrTransactionTypeInvalid
	}

	return nil
}

// BeforeCreate verifies that all referenced envelopes exist.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	for _, id := range []*uuid.UUID{t.EnvelopeID, t.SourceEnvelopeID, t.TargetEnvelopeID} {
		if id == nil {
			continue
		}

		err := tx.First(&Envelope{}, *id).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// BeforeDelete removes the owned income allocations together with the
// transaction. Envelopes are only referenced and stay untouched.
func (t *Transaction) BeforeDelete(tx *gorm.DB) error {
	return tx.Where("transaction_id = ?", t.ID).Delete(&IncomeAllocation{}).Error
}

// AfterFind updates the timestamps to use UTC as timezone.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	_ = t.DefaultModel.AfterFind(tx)

	t.Date = t.Date.In(time.UTC)
	return nil
}
