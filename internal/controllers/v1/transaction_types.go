package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/greenenvelopes/backend/internal/models"
	ge_uuid "github.com/greenenvelopes/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters of a transaction.
//
// Which fields are used depends on the type: an expense debits envelopeId,
// a transfer moves from sourceEnvelopeId to targetEnvelopeId, and income
// is credited through allocations. For income exactly one of allocations,
// envelopeId (single envelope shortcut) or distributeEvenly must be set.
type TransactionEditable struct {
	Date   time.Time              `json:"date" example:"2023-09-12T18:43:00.271152Z"`                            // Date of the transaction, defaults to the current time
	Amount decimal.Decimal        `json:"amount" example:"14.03" minimum:"0.00000001" multipleOf:"0.00000001"`   // The amount, always positive
	Type   models.TransactionType `json:"type" example:"expense"`                                                // expense, transfer or income
	Note   string                 `json:"note" example:"Lunch" default:""`                                       // A note

	EnvelopeID       *uuid.UUID `json:"envelopeId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`       // Envelope debited by an expense, or income shortcut target
	SourceEnvelopeID *uuid.UUID `json:"sourceEnvelopeId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // Envelope debited by a transfer
	TargetEnvelopeID *uuid.UUID `json:"targetEnvelopeId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // Envelope credited by a transfer

	Allocations      []models.AllocationInput `json:"allocations,omitempty"`                          // Manual income distribution, must add up to the amount exactly
	DistributeEvenly bool                     `json:"distributeEvenly" example:"true" default:"false"` // Distribute the income evenly over all envelopes
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	models.DefaultModel
	Date        time.Time                 `json:"date" example:"2023-09-12T18:43:00.271152Z"`
	Amount      decimal.Decimal           `json:"amount" example:"14.03"`
	Type        models.TransactionType    `json:"type" example:"expense"`
	Note        string                    `json:"note" example:"Lunch"`
	EnvelopeID       *uuid.UUID           `json:"envelopeId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`
	SourceEnvelopeID *uuid.UUID           `json:"sourceEnvelopeId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	TargetEnvelopeID *uuid.UUID           `json:"targetEnvelopeId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`
	Allocations      []models.IncomeAllocation `json:"allocations,omitempty"` // Allocations of an income transaction
	Links            TransactionLinks          `json:"links"`
}

// newTransaction returns the API representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.ContextURL))

	return Transaction{
		DefaultModel:     model.DefaultModel,
		Date:             model.Date,
		Amount:           model.Amount,
		Type:             model.Type,
		Note:             model.Note,
		EnvelopeID:       model.EnvelopeID,
		SourceEnvelopeID: model.SourceEnvelopeID,
		TargetEnvelopeID: model.TargetEnvelopeID,
		Allocations:      model.Allocations,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if the request was successful
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionQueryFilter struct {
	Date       time.Time              `form:"date" filterField:"false"`      // Exact date. Time is ignored.
	FromDate   time.Time              `form:"fromDate" filterField:"false"`  // Transactions at and after this date. Time is ignored.
	UntilDate  time.Time              `form:"untilDate" filterField:"false"` // Transactions before and at this date. Time is ignored.
	Amount     decimal.Decimal        `form:"amount"`                        // Exact amount
	Type       models.TransactionType `form:"type"`                          // Type of the transaction
	Note       string                 `form:"note" filterField:"false"`      // Note contains this string
	EnvelopeID ge_uuid.UUID           `form:"envelope" filterField:"false"`  // Transactions referencing the envelope as expense, source or target
	Offset     uint                   `form:"offset" filterField:"false"`    // The offset of the first Transaction returned. Defaults to 0.
	Limit      int                    `form:"limit" filterField:"false"`     // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Amount: f.Amount,
		Type:   f.Type,
	}
}
