package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Envelope errors
var (
	ErrEnvelopeHasTransactions = errors.New("the envelope cannot be deleted because transactions still reference it")
	ErrEnvelopeOrderIncomplete = errors.New("the new envelope order must contain every envelope exactly once")
)

// Transaction errors
var (
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be positive")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be one of 'expense', 'transfer', 'income'")
	ErrTransactionReferencesInvalid = errors.New("the envelope references on the transaction do not match its type")
	ErrSourceEqualsTarget           = errors.New("the source and target envelope of a transfer must be different")
)

// Income allocation errors
var (
	ErrAllocationAmountNegative = errors.New("income allocation amounts must not be negative")
	ErrAllocationSumMismatch    = errors.New("the income allocations must add up to the exact income amount")
	ErrNoEnvelopes              = errors.New("income cannot be distributed without envelopes")
	ErrIncomeNotPositive        = errors.New("the income amount must be positive")
)
