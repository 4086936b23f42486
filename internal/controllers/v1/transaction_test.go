package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	v1 "github.com/greenenvelopes/backend/internal/controllers/v1"
	"github.com/greenenvelopes/backend/internal/models"
	"github.com/greenenvelopes/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsTransactions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions",
		fmt.Sprintf(`{ "type": "expense", "amount": "14.03", "note": "Lunch", "envelopeId": %q }`, envelope.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(models.TypeExpense, response.Data.Type)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromFloat(14.03)))
	suite.Assert().Equal("Lunch", response.Data.Note)

	// Overspending is allowed, the balance goes negative
	suite.Assert().True(envelope.Balance(models.DB).Equal(decimal.NewFromFloat(-14.03)))
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"missing type", fmt.Sprintf(`{ "amount": "10", "envelopeId": %q }`, envelope.ID), http.StatusBadRequest},
		{"unknown type", fmt.Sprintf(`{ "type": "withdrawal", "amount": "10", "envelopeId": %q }`, envelope.ID), http.StatusBadRequest},
		{"missing envelope", `{ "type": "expense", "amount": "10" }`, http.StatusBadRequest},
		{"zero amount", fmt.Sprintf(`{ "type": "expense", "amount": "0", "envelopeId": %q }`, envelope.ID), http.StatusBadRequest},
		{"negative amount", fmt.Sprintf(`{ "type": "expense", "amount": "-10", "envelopeId": %q }`, envelope.ID), http.StatusBadRequest},
		{"unknown envelope", fmt.Sprintf(`{ "type": "expense", "amount": "10", "envelopeId": %q }`, uuid.New()), http.StatusNotFound},
		{"no body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", tt.body)
		test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
	}
}

func (suite *TestSuiteStandard) TestCreateTransfer() {
	source := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	target := suite.createTestEnvelope(models.Envelope{Name: "Holiday"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions",
		fmt.Sprintf(`{ "type": "transfer", "amount": "10", "sourceEnvelopeId": %q, "targetEnvelopeId": %q }`, source.ID, target.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	suite.Assert().True(source.Balance(models.DB).Equal(decimal.NewFromInt(-10)))
	suite.Assert().True(target.Balance(models.DB).Equal(decimal.NewFromInt(10)))
}

func (suite *TestSuiteStandard) TestCreateTransferSameEnvelope() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions",
		fmt.Sprintf(`{ "type": "transfer", "amount": "10", "sourceEnvelopeId": %q, "targetEnvelopeId": %q }`, envelope.ID, envelope.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateIncomeWithAllocations() {
	groceries := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	fun := suite.createTestEnvelope(models.Envelope{Name: "Fun"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions",
		fmt.Sprintf(`{ "type": "income", "amount": "100", "allocations": [ { "envelopeId": %q, "amount": "60" }, { "envelopeId": %q, "amount": "40" } ] }`, groceries.ID, fun.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data.Allocations, 2)

	suite.Assert().True(groceries.Balance(models.DB).Equal(decimal.NewFromInt(60)))
	suite.Assert().True(fun.Balance(models.DB).Equal(decimal.NewFromInt(40)))
}

func (suite *TestSuiteStandard) TestCreateIncomeSumMismatch() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions",
		fmt.Sprintf(`{ "type": "income", "amount": "100", "allocations": [ { "envelopeId": %q, "amount": "99.99" } ] }`, envelope.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateIncomeSingleEnvelope() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions",
		fmt.Sprintf(`{ "type": "income", "amount": "100", "envelopeId": %q }`, envelope.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	suite.Assert().True(envelope.Balance(models.DB).Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestCreateIncomeDistributeEvenly() {
	groceries := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	fun := suite.createTestEnvelope(models.Envelope{Name: "Fun"})
	rent := suite.createTestEnvelope(models.Envelope{Name: "Rent"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions",
		`{ "type": "income", "amount": "100.01", "distributeEvenly": true }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	// 100.01 / 3 rounds to 33.34, the last envelope in display order
	// gets the remainder
	suite.Assert().True(groceries.Balance(models.DB).Equal(decimal.NewFromFloat(33.34)))
	suite.Assert().True(fun.Balance(models.DB).Equal(decimal.NewFromFloat(33.34)))
	suite.Assert().True(rent.Balance(models.DB).Equal(decimal.NewFromFloat(33.33)))
}

func (suite *TestSuiteStandard) TestCreateIncomeTargetRequired() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", `{ "type": "income", "amount": "100" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateIncomeConflictingTargets() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions",
		fmt.Sprintf(`{ "type": "income", "amount": "100", "envelopeId": %q, "distributeEvenly": true }`, envelope.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransactions() {
	groceries := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	fun := suite.createTestEnvelope(models.Envelope{Name: "Fun"})

	date := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
	suite.createTestExpense(groceries, 30, date, "Weekly shop")
	suite.createTestTransfer(groceries, fun, 10, date.AddDate(0, 0, 1), "")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(models.TypeTransfer, response.Data[0].Type, "transactions must be sorted most recent first")
	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestGetTransactionsFilters() {
	groceries := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	fun := suite.createTestEnvelope(models.Envelope{Name: "Fun"})

	date := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
	suite.createTestExpense(groceries, 30, date, "Weekly shop")
	suite.createTestExpense(fun, 20, date, "Cinema")
	suite.createTestTransfer(groceries, fun, 10, date, "")

	tests := []struct {
		query string
		count int
	}{
		{"type=expense", 2},
		{"type=transfer", 1},
		{fmt.Sprintf("envelope=%s", groceries.ID), 2},
		{fmt.Sprintf("envelope=%s", fun.ID), 2},
		{"note=shop", 1},
		{"amount=20", 1},
		{"limit=2", 2},
		{"offset=2", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions?%s", tt.query), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.TransactionListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Len(response.Data, tt.count, "wrong number of transactions for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	transaction := suite.createTestExpense(envelope, 10, time.Now(), "Lunch")

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(transaction.ID, response.Data.ID)
	suite.Assert().Equal("Lunch", response.Data.Note)
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	transaction := suite.createTestIncome(100, time.Now(), "Paycheck", []models.AllocationInput{
		{EnvelopeID: envelope.ID, Amount: decimal.NewFromInt(100)},
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The allocations are deleted with the income transaction
	var count int64
	suite.Require().NoError(models.DB.Model(&models.IncomeAllocation{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)

	suite.Assert().True(envelope.Balance(models.DB).IsZero())
}

func (suite *TestSuiteStandard) TestDeleteTransactionNotFound() {
	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
