package v1

import (
	"errors"
	"net/http"

	"github.com/greenenvelopes/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for an engine error.
//
// Validation failures reject the request before anything is written, they
// map to 400. A write that the store could not commit maps to 500, the
// caller must assume the mutation did not happen.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errInvalidUUID              = errors.New("the specified resource ID is not a valid UUID")
	errHistoryFilterInvalid     = errors.New("the filter must be one of 'all', 'income', 'expenses'")
	errTransactionTypeRequired  = errors.New("the transaction type must be set")
	errIncomeTargetRequired     = errors.New("income needs allocations, an envelopeId or distributeEvenly set")
	errIncomeTargetsConflicting = errors.New("allocations, envelopeId and distributeEvenly are mutually exclusive")
)
