package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/greenenvelopes/backend/internal/controllers/v1"
	"github.com/greenenvelopes/backend/internal/models"
	"github.com/greenenvelopes/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) historySetup() (models.Envelope, models.Envelope) {
	groceries := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	holiday := suite.createTestEnvelope(models.Envelope{Name: "Holiday"})

	date := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)

	suite.createTestIncome(100, date, "Paycheck", []models.AllocationInput{
		{EnvelopeID: groceries.ID, Amount: decimal.NewFromInt(100)},
	})
	suite.createTestExpense(groceries, 30, date.AddDate(0, 0, 1), "Weekly shop")
	suite.createTestTransfer(groceries, holiday, 10, date.AddDate(0, 0, 2), "Vacation fund")

	return groceries, holiday
}

func (suite *TestSuiteStandard) TestOptionsHistory() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/history", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetHistory() {
	suite.historySetup()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/history", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.HistoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(models.HistoryItemTransfer, response.Data[0].Type)
	suite.Assert().Equal(models.HistoryItemExpense, response.Data[1].Type)
	suite.Assert().Equal(models.HistoryItemIncome, response.Data[2].Type)
}

func (suite *TestSuiteStandard) TestGetHistoryFilter() {
	suite.historySetup()

	tests := []struct {
		filter string
		count  int
	}{
		{"all", 3},
		{"income", 1},
		{"expenses", 2},
		{"", 3},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/history?filter=%s", tt.filter), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.HistoryListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Len(response.Data, tt.count, "wrong number of items for filter %q", tt.filter)
	}
}

func (suite *TestSuiteStandard) TestGetHistoryFilterInvalid() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/history?filter=everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetHistoryEnvelope() {
	_, holiday := suite.historySetup()

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/history?envelope=%s", holiday.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.HistoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(models.HistoryItemTransfer, response.Data[0].Type)
}

func (suite *TestSuiteStandard) TestGetHistoryEnvelopeInvalid() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/history?envelope=notAnID", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetHistorySearch() {
	suite.historySetup()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/history?search=HOLIDAY", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.HistoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(models.HistoryItemTransfer, response.Data[0].Type)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/history?search=zz-no-match", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}
