package models_test

import (
	"github.com/envelope-zero/insights/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestDefaultCategoriesSeeded() {
	var count int64
	err := models.DB.Model(&models.Category{}).Where(&models.Category{IsDefault: true}).Count(&count).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(7), count)
}

func (suite *TestSuiteStandard) TestNotFoundError() {
	err := models.DB.First(&models.Category{}, "id = ?", uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no category matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestClosedDatabase() {
	suite.CloseDB()

	err := models.DB.First(&models.Category{}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
