package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/greenenvelopes/backend/internal/httputil"
	"github.com/greenenvelopes/backend/internal/models"
	ge_uuid "github.com/greenenvelopes/backend/internal/uuid"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Transaction{}, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Record transaction
// @Description	Records an expense, transfer or income transaction. Income with its allocations is committed as one atomic unit.
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		v1.TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	var transaction models.Transaction
	switch editable.Type {
	case models.TypeExpense:
		if editable.EnvelopeID == nil {
			e := models.ErrTransactionReferencesInvalid.Error()
			c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
			return
		}

		transaction, err = models.RecordExpense(models.DB, *editable.EnvelopeID, editable.Amount, editable.Date, editable.Note)

	case models.TypeTransfer:
		if editable.SourceEnvelopeID == nil || editable.TargetEnvelopeID == nil {
			e := models.ErrTransactionReferencesInvalid.Error()
			c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
			return
		}

		transaction, err = models.RecordTransfer(models.DB, *editable.SourceEnvelopeID, *editable.TargetEnvelopeID, editable.Amount, editable.Date, editable.Note)

	case models.TypeIncome:
		var inputs []models.AllocationInput
		inputs, err = incomeAllocations(editable)
		if err == nil {
			transaction, err = models.RecordIncome(models.DB, editable.Amount, editable.Date, editable.Note, inputs)
		}

	case "":
		err = errTransactionTypeRequired

	default:
		err = models.ErrTransactionTypeInvalid
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// incomeAllocations resolves the three ways income can be distributed:
// an explicit allocation list, the single envelope shortcut, or even
// distribution over all envelopes in display order.
func incomeAllocations(editable TransactionEditable) ([]models.AllocationInput, error) {
	set := 0
	for _, b := range []bool{len(editable.Allocations) > 0, editable.EnvelopeID != nil, editable.DistributeEvenly} {
		if b {
			set++
		}
	}

	if set == 0 {
		return nil, errIncomeTargetRequired
	}

	if set > 1 {
		return nil, errIncomeTargetsConflicting
	}

	if len(editable.Allocations) > 0 {
		return editable.Allocations, nil
	}

	if editable.EnvelopeID != nil {
		return []models.AllocationInput{{EnvelopeID: *editable.EnvelopeID, Amount: editable.Amount}}, nil
	}

	envelopes, err := models.Envelopes(models.DB)
	if err != nil {
		return nil, err
	}

	return models.DistributeEvenly(editable.Amount, envelopes)
}

// @Summary		Get transactions
// @Description	Returns a list of transactions, most recent first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			date		query	string	false	"Date of the transaction. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			fromDate	query	string	false	"Transactions at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate	query	string	false	"Transactions before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			amount		query	string	false	"Filter by amount"
// @Param			type		query	string	false	"Filter by transaction type"
// @Param			note		query	string	false	"Filter by note"
// @Param			envelope	query	string	false	"Filter by ID of a referenced envelope, regardless of the role of the reference"
// @Param			offset		query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()

	q := models.DB.
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Where(&model, queryFields...)

	// Filter for the transaction being at the same date
	if !filter.Date.IsZero() {
		date := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where("transactions.date >= date(?)", date).Where("transactions.date < date(?)", date.AddDate(0, 0, 1))
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("transactions.date >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("transactions.date < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	if filter.EnvelopeID != ge_uuid.Nil {
		q = q.Where("envelope_id = ? OR source_envelope_id = ? OR target_envelope_id = ?",
			filter.EnvelopeID.UUID, filter.EnvelopeID.UUID, filter.EnvelopeID.UUID)
	}

	if slices.Contains(setFields, "Note") {
		if filter.Note == "" {
			q = q.Where("note = ''")
		} else {
			q = q.Where("note LIKE ?", "%"+filter.Note+"%")
		}
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 transactions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var transactions []models.Transaction
	err := q.Preload("Allocations").Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	var transaction models.Transaction
	err = models.DB.Preload("Allocations").First(&transaction, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction. For income transactions the allocations are deleted with it.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
