package models_test

import (
	"github.com/google/uuid"
	"github.com/greenenvelopes/backend/internal/models"
)

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	err := models.DB.First(&models.Envelope{}, uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no envelope matching your query", err.Error())

	err = models.DB.First(&models.Transaction{}, uuid.New()).Error
	suite.Assert().Equal("there is no transaction matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDatabase() {
	suite.CloseDB()

	err := models.DB.First(&models.Envelope{}, uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral, "database errors must be hidden behind a general message")
}
