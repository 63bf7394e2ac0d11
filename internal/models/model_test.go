package models_test

import (
	"testing"
	"time"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/envelope-zero/insights/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryNameUniquePerFamily() {
	suite.createTestCategory(models.Category{Name: "Pets", FamilyID: &family})

	err := models.DB.Create(&models.Category{Name: " Pets ", FamilyID: &family}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	other := uuid.New()
	suite.createTestCategory(models.Category{Name: "Pets", FamilyID: &other})

	// Categories without a family share one namespace
	suite.createTestCategory(models.Category{Name: "Pets"})
	err = models.DB.Create(&models.Category{Name: "Pets"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	err = models.DB.Create(&models.Category{Name: "Groceries"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestExpenseValidation() {
	category := suite.createTestCategory(models.Category{Name: "Pets"})

	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{"Zero amount", models.Expense{CategoryID: category.ID, Amount: decimal.Zero}, models.ErrAmountNotPositive},
		{"Negative amount", models.Expense{CategoryID: category.ID, Amount: decimal.NewFromInt(-5)}, models.ErrAmountNotPositive},
		{"Unknown category", models.Expense{CategoryID: uuid.New(), Amount: decimal.NewFromInt(5)}, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.expense).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseSubcategoryMustMatchCategory() {
	pets := suite.createTestCategory(models.Category{Name: "Pets", Subcategories: []models.Subcategory{{Name: "Food"}}})
	garden := suite.createTestCategory(models.Category{Name: "Garden"})

	err := models.DB.Create(&models.Expense{
		CategoryID:    garden.ID,
		SubcategoryID: &pets.Subcategories[0].ID,
		Amount:        decimal.NewFromInt(10),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	expense := suite.createTestExpense(models.Expense{
		CategoryID:    pets.ID,
		SubcategoryID: &pets.Subcategories[0].ID,
		Amount:        decimal.NewFromInt(10),
	})
	suite.Assert().Equal(pets.Subcategories[0].ID, *expense.SubcategoryID)
}

func (suite *TestSuiteStandard) TestExpenseDefaults() {
	category := suite.createTestCategory(models.Category{Name: "Pets"})
	empty := uuid.Nil

	expense := suite.createTestExpense(models.Expense{
		Owned:      models.Owned{UserID: alice, FamilyID: &empty},
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(10),
		Note:       "  vet  ",
	})

	suite.Assert().Nil(expense.FamilyID)
	suite.Assert().Equal("vet", expense.Note)
	suite.Assert().WithinDuration(time.Now(), expense.Date, time.Minute)
	suite.Assert().Equal(time.UTC, expense.Date.Location())
}

func (suite *TestSuiteStandard) TestIncomeValidation() {
	err := models.DB.Create(&models.Income{Type: "lottery", Amount: decimal.NewFromInt(10)}).Error
	suite.Assert().ErrorIs(err, models.ErrIncomeTypeInvalid)

	err = models.DB.Create(&models.Income{Type: analytics.IncomeSalary, Amount: decimal.Zero}).Error
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)

	suite.createTestIncome(models.Income{Type: analytics.IncomeSalary, Amount: decimal.NewFromInt(10)})
}

func (suite *TestSuiteStandard) TestBudgetValidation() {
	pets := suite.createTestCategory(models.Category{Name: "Pets"})
	garden := suite.createTestCategory(models.Category{Name: "Garden"})

	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{
			"Limit not positive",
			models.Budget{TotalLimit: decimal.Zero, StartDate: date(2024, 3, 1), EndDate: date(2024, 3, 31)},
			models.ErrBudgetLimitNotPositive,
		},
		{
			"End before start",
			models.Budget{TotalLimit: decimal.NewFromInt(100), StartDate: date(2024, 3, 31), EndDate: date(2024, 3, 1)},
			models.ErrBudgetDates,
		},
		{
			"End on start",
			models.Budget{TotalLimit: decimal.NewFromInt(100), StartDate: date(2024, 3, 1), EndDate: date(2024, 3, 1)},
			models.ErrBudgetDates,
		},
		{
			"Category limit not positive",
			models.Budget{TotalLimit: decimal.NewFromInt(100), StartDate: date(2024, 3, 1), EndDate: date(2024, 3, 31), Categories: []models.CategoryBudget{
				{CategoryID: pets.ID, Limit: decimal.Zero},
			}},
			models.ErrBudgetLimitNotPositive,
		},
		{
			"Category limits exceed total",
			models.Budget{TotalLimit: decimal.NewFromInt(100), StartDate: date(2024, 3, 1), EndDate: date(2024, 3, 31), Categories: []models.CategoryBudget{
				{CategoryID: pets.ID, Limit: decimal.NewFromInt(60)},
				{CategoryID: garden.ID, Limit: decimal.NewFromInt(41)},
			}},
			models.ErrCategoryLimitsExceedTotal,
		},
		{
			"Category limited twice",
			models.Budget{TotalLimit: decimal.NewFromInt(100), StartDate: date(2024, 3, 1), EndDate: date(2024, 3, 31), Categories: []models.CategoryBudget{
				{CategoryID: pets.ID, Limit: decimal.NewFromInt(10)},
				{CategoryID: pets.ID, Limit: decimal.NewFromInt(10)},
			}},
			models.ErrCategoryBudgetNotUnique,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.budget).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetDatesTruncated() {
	budget := suite.createTestBudget(models.Budget{
		Name:       " March ",
		TotalLimit: decimal.NewFromInt(100),
		StartDate:  time.Date(2024, 3, 1, 17, 30, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC),
	})

	suite.Assert().Equal("March", budget.Name)
	suite.Assert().Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), budget.StartDate)
	suite.Assert().Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), budget.EndDate)
}
