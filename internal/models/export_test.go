package models_test

import (
	"time"

	"github.com/greenenvelopes/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExportRows() {
	groceries := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	holiday := suite.createTestEnvelope(models.Envelope{Name: "Holiday", Order: 1})

	date := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)

	suite.createTestIncome(100, date, "Paycheck", []models.AllocationInput{
		{EnvelopeID: groceries.ID, Amount: decimal.NewFromInt(60)},
		{EnvelopeID: holiday.ID, Amount: decimal.NewFromInt(40)},
	})
	suite.createTestExpense(groceries, 30, date.AddDate(0, 0, 1), "Weekly shop")
	suite.createTestTransfer(groceries, holiday, 10, date.AddDate(0, 0, 2), "")

	rows, err := models.ExportRows(models.DB, time.Time{}, time.Time{}, "")
	suite.Require().NoError(err)

	// One row per allocation, one per expense, one per transfer
	suite.Require().Len(rows, 4)

	// Ascending by date
	suite.Assert().Equal(models.TypeIncome, rows[0].Type)
	suite.Assert().Equal(models.TypeIncome, rows[1].Type)
	suite.Assert().True(rows[0].Amount.Equal(decimal.NewFromInt(60)))
	suite.Assert().True(rows[1].Amount.Equal(decimal.NewFromInt(40)))

	suite.Assert().Equal(models.TypeExpense, rows[2].Type)
	suite.Assert().True(rows[2].Amount.Equal(decimal.NewFromInt(-30)), "expenses must be exported negative, is %s", rows[2].Amount)

	suite.Assert().Equal(models.TypeTransfer, rows[3].Type)
	suite.Assert().True(rows[3].Amount.Equal(decimal.NewFromInt(-10)), "transfers must be exported negative, is %s", rows[3].Amount)
	suite.Assert().Equal("Groceries", rows[3].Envelope, "transfers must name the source envelope")
}

func (suite *TestSuiteStandard) TestExportRowsInterval() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	date := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		suite.createTestExpense(envelope, 1, date.AddDate(0, 0, i), "")
	}

	// Income is dated by its parent transaction and filtered the same way
	suite.createTestIncome(100, date.AddDate(0, 0, 10), "Late paycheck", []models.AllocationInput{
		{EnvelopeID: envelope.ID, Amount: decimal.NewFromInt(100)},
	})

	rows, err := models.ExportRows(models.DB, date.AddDate(0, 0, 1), date.AddDate(0, 0, 3), "")
	suite.Require().NoError(err)

	// The interval is inclusive on both ends
	suite.Require().Len(rows, 3)
	suite.Assert().True(rows[0].Date.Equal(date.AddDate(0, 0, 1)))
	suite.Assert().True(rows[2].Date.Equal(date.AddDate(0, 0, 3)))
}

func (suite *TestSuiteStandard) TestExportRowsEnvelopePattern() {
	groceries := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	holiday := suite.createTestEnvelope(models.Envelope{Name: "Holiday", Order: 1})

	suite.createTestExpense(groceries, 10, time.Now(), "")
	suite.createTestExpense(holiday, 20, time.Now(), "")

	rows, err := models.ExportRows(models.DB, time.Time{}, time.Time{}, "Groc*")
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Assert().Equal("Groceries", rows[0].Envelope)

	rows, err = models.ExportRows(models.DB, time.Time{}, time.Time{}, "*o*")
	suite.Require().NoError(err)
	suite.Assert().Len(rows, 2)
}

func (suite *TestSuiteStandard) TestExportRowsEmpty() {
	rows, err := models.ExportRows(models.DB, time.Time{}, time.Time{}, "")
	suite.Require().NoError(err)
	suite.Assert().Empty(rows)
}

func (suite *TestSuiteStandard) TestExportRowsDatabaseError() {
	suite.CloseDB()

	_, err := models.ExportRows(models.DB, time.Time{}, time.Time{}, "")
	suite.Assert().Error(err, "exports must fail loudly, a silently incomplete export is worse than none")
}
