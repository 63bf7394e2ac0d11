package models_test

import (
	"context"
	"time"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/envelope-zero/insights/internal/models"
	"github.com/envelope-zero/insights/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var march2024 = types.NewMonth(2024, time.March).Range()

func (suite *TestSuiteStandard) ledger() (models.Category, models.Category) {
	groceries := suite.createTestCategory(models.Category{Name: "Groceries ", Icon: "🛒", Color: "#4caf50", FamilyID: &family})
	dining := suite.createTestCategory(models.Category{Name: "Dining ", Icon: "🍽", Color: "#ff9800", FamilyID: &family})

	for _, e := range []models.Expense{
		{Owned: models.Owned{UserID: alice}, CategoryID: groceries.ID, Amount: decimal.RequireFromString("42.17"), Date: date(2024, 3, 1)},
		{Owned: models.Owned{UserID: alice}, CategoryID: groceries.ID, Amount: decimal.RequireFromString("10"), Date: date(2024, 3, 31)},
		{Owned: models.Owned{UserID: alice}, CategoryID: dining.ID, Amount: decimal.RequireFromString("25.50"), Date: date(2024, 3, 14)},
		{Owned: models.Owned{UserID: alice}, CategoryID: dining.ID, Amount: decimal.RequireFromString("99"), Date: date(2024, 4, 1)},
		{Owned: models.Owned{UserID: bob, FamilyID: &family}, CategoryID: groceries.ID, Amount: decimal.RequireFromString("7.83"), Date: date(2024, 3, 2)},
	} {
		suite.createTestExpense(e)
	}

	return groceries, dining
}

func (suite *TestSuiteStandard) TestGatewaySumExpensesByCategory() {
	groceries, dining := suite.ledger()
	gateway := models.NewGateway(models.DB)

	totals, err := gateway.SumExpensesByCategory(context.Background(), march2024, analytics.Owner{UserID: alice})
	suite.Require().Nil(err)
	suite.Require().Len(totals, 2)

	suite.Assert().Equal(groceries.ID, totals[0].CategoryID)
	suite.Assert().Equal("Groceries", totals[0].CategoryName)
	suite.Assert().Equal("🛒", totals[0].Icon)
	suite.assertDecimal("52.17", totals[0].Total)
	suite.Assert().Equal(2, totals[0].Count)

	suite.Assert().Equal(dining.ID, totals[1].CategoryID)
	suite.assertDecimal("25.5", totals[1].Total)
	suite.Assert().Equal(1, totals[1].Count)
}

func (suite *TestSuiteStandard) TestGatewayOwnerScoping() {
	suite.ledger()
	gateway := models.NewGateway(models.DB)
	ctx := context.Background()

	// The family takes precedence over the user
	total, err := gateway.TotalForPeriod(ctx, analytics.LedgerExpenses, march2024, analytics.Owner{UserID: alice, FamilyID: family})
	suite.Require().Nil(err)
	suite.assertDecimal("7.83", total)

	total, err = gateway.TotalForPeriod(ctx, analytics.LedgerExpenses, march2024, analytics.Owner{UserID: bob})
	suite.Require().Nil(err)
	suite.assertDecimal("7.83", total)

	total, err = gateway.TotalForPeriod(ctx, analytics.LedgerExpenses, march2024, analytics.Owner{})
	suite.Require().Nil(err)
	suite.assertDecimal("85.5", total)
}

func (suite *TestSuiteStandard) TestGatewayTotalForPeriodEmpty() {
	gateway := models.NewGateway(models.DB)

	total, err := gateway.TotalForPeriod(context.Background(), analytics.LedgerIncomes, march2024, analytics.Owner{UserID: alice})
	suite.Require().Nil(err)
	suite.Assert().True(total.IsZero())

	_, err = gateway.TotalForPeriod(context.Background(), "savings", march2024, analytics.Owner{})
	suite.Assert().NotNil(err)
}

func (suite *TestSuiteStandard) TestGatewaySumIncomeByType() {
	for _, i := range []models.Income{
		{Owned: models.Owned{UserID: alice}, Type: analytics.IncomeSalary, Amount: decimal.NewFromInt(3000), Date: date(2024, 3, 1)},
		{Owned: models.Owned{UserID: alice}, Type: analytics.IncomeFreelance, Amount: decimal.NewFromInt(400), Date: date(2024, 3, 10)},
		{Owned: models.Owned{UserID: alice}, Type: analytics.IncomeFreelance, Amount: decimal.NewFromInt(250), Date: date(2024, 3, 20)},
		{Owned: models.Owned{UserID: alice}, Type: analytics.IncomeSalary, Amount: decimal.NewFromInt(3000), Date: date(2024, 2, 1)},
	} {
		suite.createTestIncome(i)
	}

	gateway := models.NewGateway(models.DB)
	totals, err := gateway.SumIncomeByType(context.Background(), march2024, analytics.Owner{UserID: alice})
	suite.Require().Nil(err)
	suite.Require().Len(totals, 2)

	suite.Assert().Equal(analytics.IncomeSalary, totals[0].Type)
	suite.assertDecimal("3000", totals[0].Total)
	suite.Assert().Equal(analytics.IncomeFreelance, totals[1].Type)
	suite.assertDecimal("650", totals[1].Total)
	suite.Assert().Equal(2, totals[1].Count)

	total, err := gateway.TotalForPeriod(context.Background(), analytics.LedgerIncomes, march2024, analytics.Owner{UserID: alice})
	suite.Require().Nil(err)
	suite.assertDecimal("3650", total)
}

func (suite *TestSuiteStandard) TestGatewayBudgets() {
	groceries, _ := suite.ledger()
	gateway := models.NewGateway(models.DB)
	ctx := context.Background()

	february := suite.createTestBudget(models.Budget{
		Owned:      models.Owned{UserID: alice},
		Name:       "February",
		TotalLimit: decimal.NewFromInt(1000),
		StartDate:  date(2024, 2, 1),
		EndDate:    date(2024, 2, 29),
	})
	march := suite.createTestBudget(models.Budget{
		Owned:      models.Owned{UserID: alice},
		Name:       "March",
		TotalLimit: decimal.NewFromInt(1000),
		StartDate:  date(2024, 3, 1),
		EndDate:    date(2024, 3, 31),
		Categories: []models.CategoryBudget{{CategoryID: groceries.ID, Limit: decimal.NewFromInt(400)}},
	})

	// The last day of February overlaps with a range starting on it
	budgets, err := gateway.ActiveBudgets(ctx, analytics.Owner{UserID: alice}, types.Day(date(2024, 2, 29)))
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 1)
	suite.Assert().Equal(february.ID, budgets[0].ID)

	budgets, err = gateway.ActiveBudgets(ctx, analytics.Owner{UserID: alice}, types.DateRange{From: date(2024, 2, 15), Until: date(2024, 3, 15)})
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 2)
	suite.Assert().Equal(march.ID, budgets[0].ID, "latest start must come first")

	budgets, err = gateway.ActiveBudgets(ctx, analytics.Owner{UserID: bob}, march2024)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 0)

	budget, err := gateway.Budget(ctx, march.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("March", budget.Name)
	suite.Assert().Equal(alice, budget.Owner.UserID)
	suite.Require().Len(budget.Categories, 1)
	suite.Assert().Equal("Groceries", budget.Categories[0].CategoryName)
	suite.assertDecimal("400", budget.Categories[0].Limit)
	suite.Assert().True(budget.Range().Contains(time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)))

	_, err = gateway.Budget(ctx, uuid.New())
	suite.Assert().ErrorIs(err, analytics.ErrBudgetNotFound)
	suite.Assert().ErrorIs(err, analytics.ErrNotFound)
}

func (suite *TestSuiteStandard) TestGatewayStoreSpent() {
	groceries, _ := suite.ledger()
	gateway := models.NewGateway(models.DB)
	ctx := context.Background()

	budget := suite.createTestBudget(models.Budget{
		TotalLimit: decimal.NewFromInt(1000),
		StartDate:  date(2024, 3, 1),
		EndDate:    date(2024, 3, 31),
		Categories: []models.CategoryBudget{{CategoryID: groceries.ID, Limit: decimal.NewFromInt(400)}},
	})

	err := gateway.StoreSpent(ctx, budget.Categories[0].ID, decimal.RequireFromString("123.45"))
	suite.Require().Nil(err)

	stored, err := gateway.Budget(ctx, budget.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("123.45", stored.Categories[0].Spent)

	err = gateway.StoreSpent(ctx, uuid.New(), decimal.NewFromInt(1))
	suite.Assert().ErrorIs(err, analytics.ErrBudgetNotFound)
}

func (suite *TestSuiteStandard) TestGatewayRecurringIncomePatterns() {
	for _, month := range []time.Month{time.October, time.November, time.December} {
		suite.createTestIncome(models.Income{Owned: models.Owned{UserID: alice}, Type: analytics.IncomeSalary, Amount: decimal.NewFromInt(3000), Date: date(2023, month, 1)})
	}
	suite.createTestIncome(models.Income{Owned: models.Owned{UserID: alice}, Type: analytics.IncomeSalary, Amount: decimal.NewFromInt(3300), Date: date(2024, 1, 1)})
	suite.createTestIncome(models.Income{Owned: models.Owned{UserID: alice}, Type: analytics.IncomeInvestment, Amount: decimal.NewFromInt(60), Date: date(2024, 1, 15)})

	// Outside of the window
	suite.createTestIncome(models.Income{Owned: models.Owned{UserID: alice}, Type: analytics.IncomeSalary, Amount: decimal.NewFromInt(2000), Date: date(2023, 6, 1)})

	gateway := models.NewGateway(models.DB)
	patterns, err := gateway.RecurringIncomePatterns(context.Background(), analytics.Owner{UserID: alice}, date(2024, 3, 14))
	suite.Require().Nil(err)
	suite.Require().Len(patterns, 2)

	salary := patterns[0]
	suite.Assert().Equal(analytics.IncomeSalary, salary.Type)
	suite.assertDecimal("3075", salary.AverageAmount)
	suite.assertDecimal("3300", salary.LastAmount)
	suite.Assert().Equal(date(2024, 1, 1), salary.LastDate)
	suite.Assert().InDelta(4.0/6, salary.Frequency, 0.0001)

	suite.Assert().Equal(analytics.IncomeInvestment, patterns[1].Type)
	suite.Assert().InDelta(1.0/6, patterns[1].Frequency, 0.0001)
}

func (suite *TestSuiteStandard) TestGatewayCategoryAndExpenses() {
	groceries, _ := suite.ledger()
	gateway := models.NewGateway(models.DB)
	ctx := context.Background()

	category, err := gateway.Category(ctx, groceries.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Groceries", category.Name)
	suite.Assert().Equal("#4caf50", category.Color)

	_, err = gateway.Category(ctx, uuid.New())
	suite.Assert().ErrorIs(err, analytics.ErrCategoryNotFound)

	expenses, err := gateway.Expenses(ctx, march2024, analytics.Owner{UserID: alice}, groceries.ID)
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 2)
	suite.Assert().Equal(date(2024, 3, 1), expenses[0].Date)
	suite.Assert().Equal(date(2024, 3, 31), expenses[1].Date)
	suite.assertDecimal("42.17", expenses[0].Amount)
}

func (suite *TestSuiteStandard) TestGatewayClosedDatabase() {
	gateway := models.NewGateway(models.DB)
	suite.CloseDB()

	_, err := gateway.SumExpensesByCategory(context.Background(), march2024, analytics.Owner{})
	suite.Assert().NotNil(err)

	_, err = gateway.Category(context.Background(), uuid.New())
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
