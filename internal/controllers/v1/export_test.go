package v1_test

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	v1 "github.com/greenenvelopes/backend/internal/controllers/v1"
	"github.com/greenenvelopes/backend/internal/models"
	"github.com/greenenvelopes/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsExport() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetExport() {
	groceries := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	holiday := suite.createTestEnvelope(models.Envelope{Name: "Holiday"})

	date := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
	suite.createTestIncome(100, date, "Paycheck", []models.AllocationInput{
		{EnvelopeID: groceries.ID, Amount: decimal.NewFromInt(100)},
	})
	suite.createTestExpense(groceries, 30, date.AddDate(0, 0, 1), "Weekly shop")
	suite.createTestTransfer(groceries, holiday, 10, date.AddDate(0, 0, 2), "")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExportListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(models.TypeIncome, response.Data[0].Type, "export must be ascending by date")
	suite.Assert().Equal(models.TypeTransfer, response.Data[2].Type)
}

func (suite *TestSuiteStandard) TestGetExportInterval() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	date := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		suite.createTestExpense(envelope, 1, date.AddDate(0, 0, i), "")
	}

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/export?fromDate=%s&untilDate=%s",
		url.QueryEscape(date.AddDate(0, 0, 1).Format(time.RFC3339)),
		url.QueryEscape(date.AddDate(0, 0, 3).Format(time.RFC3339))), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExportListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 3)
}

func (suite *TestSuiteStandard) TestGetExportEnvelopePattern() {
	groceries := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	holiday := suite.createTestEnvelope(models.Envelope{Name: "Holiday"})

	suite.createTestExpense(groceries, 10, time.Now(), "")
	suite.createTestExpense(holiday, 20, time.Now(), "")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/export?envelope=Groc*", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExportListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Groceries", response.Data[0].Envelope)
}

func (suite *TestSuiteStandard) TestGetExportInvalidDate() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/export?fromDate=september", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
