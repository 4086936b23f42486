package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/greenenvelopes/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionAmountMustBePositive() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	for _, amount := range []float64{0, -14.03} {
		_, err := models.RecordExpense(models.DB, envelope.ID, decimal.NewFromFloat(amount), time.Now(), "")
		suite.Assert().ErrorIs(err, models.ErrTransactionAmountNotPositive, "amount %f must be rejected", amount)
	}
}

func (suite *TestSuiteStandard) TestTransactionTypeReferences() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{
			"expense without envelope",
			models.Transaction{Type: models.TypeExpense, Amount: decimal.NewFromInt(1)},
			models.ErrTransactionReferencesInvalid,
		},
		{
			"expense with transfer references",
			models.Transaction{Type: models.TypeExpense, Amount: decimal.NewFromInt(1), EnvelopeID: &envelope.ID, SourceEnvelopeID: &envelope.ID},
			models.ErrTransactionReferencesInvalid,
		},
		{
			"transfer without target",
			models.Transaction{Type: models.TypeTransfer, Amount: decimal.NewFromInt(1), SourceEnvelopeID: &envelope.ID},
			models.ErrTransactionReferencesInvalid,
		},
		{
			"income with envelope reference",
			models.Transaction{Type: models.TypeIncome, Amount: decimal.NewFromInt(1), EnvelopeID: &envelope.ID},
			models.ErrTransactionReferencesInvalid,
		},
		{
			"unknown type",
			models.Transaction{Type: "withdrawal", Amount: decimal.NewFromInt(1)},
			models.ErrTransactionTypeInvalid,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.transaction).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransferSourceEqualsTarget() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	_, err := models.RecordTransfer(models.DB, envelope.ID, envelope.ID, decimal.NewFromInt(10), time.Now(), "")
	suite.Assert().ErrorIs(err, models.ErrSourceEqualsTarget)
}

func (suite *TestSuiteStandard) TestTransactionEnvelopeMustExist() {
	_, err := models.RecordExpense(models.DB, uuid.New(), decimal.NewFromInt(10), time.Now(), "")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToNow() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	transaction := suite.createTestExpense(envelope, 10, time.Time{}, "")
	suite.Assert().False(transaction.Date.IsZero(), "a zero date must be replaced with the current time")
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionDateNormalizedToUTC() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	berlin, err := time.LoadLocation("Europe/Berlin")
	suite.Require().NoError(err)

	transaction := suite.createTestExpense(envelope, 10, time.Date(2023, 9, 12, 18, 43, 0, 0, berlin), "")
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionNoteTrimmed() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	transaction := suite.createTestExpense(envelope, 10, time.Now(), "  Lunch ")
	suite.Assert().Equal("Lunch", transaction.Note)
}

func (suite *TestSuiteStandard) TestDeleteTransactionCascadesAllocations() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	transaction := suite.createTestIncome(100, time.Now(), "Paycheck", []models.AllocationInput{
		{EnvelopeID: envelope.ID, Amount: decimal.NewFromInt(100)},
	})

	suite.Require().NoError(models.DB.Delete(&transaction).Error)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.IncomeAllocation{}).Where("transaction_id = ?", transaction.ID).Count(&count).Error)
	suite.Assert().Equal(int64(0), count, "allocations must be deleted with their income transaction")

	// The envelope itself stays untouched
	suite.Assert().NoError(models.DB.First(&models.Envelope{}, envelope.ID).Error)
}
