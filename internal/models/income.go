package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AllocationInput is one entry of a planned income distribution.
type AllocationInput struct {
	EnvelopeID uuid.UUID       `json:"envelopeId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // Envelope the amount is credited to
	Amount     decimal.Decimal `json:"amount" example:"33.34"`                                    // Amount for the envelope, must not be negative
}

// DistributeEvenly splits an income amount over the envelopes.
//
// Every envelope but the last gets the income divided by the number of
// envelopes, rounded to cents with banker's rounding (round half to even).
// The last envelope in the passed order gets whatever remains, so the
// returned amounts always add up to the total exactly, no cent is lost to
// rounding. Callers pass the envelopes in display order, which makes the
// result reproducible.
func DistributeEvenly(total decimal.Decimal, envelopes []Envelope) ([]AllocationInput, error) {
	if !total.IsPositive() {
		return nil, ErrIncomeNotPositive
	}

	if len(envelopes) == 0 {
		return nil, ErrNoEnvelopes
	}

	share := total.Div(decimal.NewFromInt(int64(len(envelopes)))).RoundBank(2)

	inputs := make([]AllocationInput, 0, len(envelopes))
	allocated := decimal.Zero
	for i, envelope := range envelopes {
		amount := share
		if i == len(envelopes)-1 {
			amount = total.Sub(allocated)
		}

		inputs = append(inputs, AllocationInput{EnvelopeID: envelope.ID, Amount: amount})
		allocated = allocated.Add(amount)
	}

	return inputs, nil
}

// ValidateAllocations is the save gate for manually entered distributions:
// all amounts must be non-negative and add up to the income amount exactly.
// Nothing is auto-corrected, a mismatch rejects the commit.
func ValidateAllocations(inputs []AllocationInput, total decimal.Decimal) error {
	sum := decimal.Zero
	for _, input := range inputs {
		if input.Amount.IsNegative() {
			return ErrAllocationAmountNegative
		}

		sum = sum.Add(input.Amount)
	}

	if !sum.Equal(total) {
		return ErrAllocationSumMismatch
	}

	return nil
}

// RecordIncome creates an income transaction and one allocation per
// non-zero input as a single unit of work. Either the transaction and all
// its allocations are committed or nothing is.
func RecordIncome(db *gorm.DB, amount decimal.Decimal, date time.Time, note string, inputs []AllocationInput) (Transaction, error) {
	err := ValidateAllocations(inputs, amount)
	if err != nil {
		return Transaction{}, err
	}

	transaction := Transaction{
		Date:   date,
		Amount: amount,
		Type:   TypeIncome,
		Note:   note,
	}

	for _, input := range inputs {
		if input.Amount.IsZero() {
			continue
		}

		transaction.Allocations = append(transaction.Allocations, IncomeAllocation{
			EnvelopeID: input.EnvelopeID,
			Amount:     input.Amount,
		})
	}

	err = db.Create(&transaction).Error
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// RecordExpense debits an envelope. The balance is not checked, an
// envelope may go negative.
func RecordExpense(db *gorm.DB, envelopeID uuid.UUID, amount decimal.Decimal, date time.Time, note string) (Transaction, error) {
	transaction := Transaction{
		Date:       date,
		Amount:     amount,
		Type:       TypeExpense,
		Note:       note,
		EnvelopeID: &envelopeID,
	}

	err := db.Create(&transaction).Error
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// RecordTransfer moves money between two different envelopes. The source
// balance is not checked.
func RecordTransfer(db *gorm.DB, sourceID, targetID uuid.UUID, amount decimal.Decimal, date time.Time, note string) (Transaction, error) {
	transaction := Transaction{
		Date:             date,
		Amount:           amount,
		Type:             TypeTransfer,
		Note:             note,
		SourceEnvelopeID: &sourceID,
		TargetEnvelopeID: &targetID,
	}

	err := db.Create(&transaction).Error
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}
