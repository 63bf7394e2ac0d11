package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/envelope-zero/insights/internal/controllers/v1"
	"github.com/envelope-zero/insights/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) postIncome(amount string) {
	r := suite.request(http.MethodPost, "/v1/incomes", map[string]any{
		"userId": alice,
		"type":   "salary",
		"amount": amount,
		"date":   "2024-03-01T00:00:00Z",
	})
	suite.assertHTTPStatus(r, http.StatusCreated)
}

// setupMarch creates a budget with a single category, one expense of 50
// and an income of 1000 in March 2024.
func (suite *TestSuiteStandard) setupMarch() uuid.UUID {
	pets := suite.createTestCategory("Pets")
	suite.createTestBudget(map[uuid.UUID]string{pets.ID: "100"})
	suite.assertHTTPStatus(suite.postExpense(pets.ID, "50"), http.StatusCreated)
	suite.postIncome("1000")

	return pets.ID
}

func (suite *TestSuiteStandard) TestMonthlyReport() {
	suite.setupMarch()

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/reports/monthly/2024-03?user=%s", alice), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var response v1.MonthlyReportResponse
	suite.decodeResponse(r, &response)
	report := response.Data

	suite.Assert().Equal(types.NewMonth(2024, 3), report.Month)
	suite.Assert().True(decimal.NewFromInt(1000).Equal(report.TotalIncome), report.TotalIncome.String())
	suite.Assert().True(decimal.NewFromInt(50).Equal(report.TotalExpenses), report.TotalExpenses.String())
	suite.Assert().True(decimal.NewFromInt(950).Equal(report.NetAmount), report.NetAmount.String())
	suite.Assert().Equal(95.0, report.SavingsRate)

	suite.Require().Len(report.CategoryBreakdown, 1)
	suite.Assert().Equal("Pets", report.CategoryBreakdown[0].CategoryName)
	suite.Assert().Equal(100.0, report.CategoryBreakdown[0].Percentage)

	suite.Require().Len(report.IncomeBreakdown, 1)
	suite.Assert().Equal("salary", string(report.IncomeBreakdown[0].Type))

	suite.Require().NotNil(report.BudgetComparison)
	suite.Assert().Equal("March", report.BudgetComparison.BudgetName)
	suite.Assert().False(report.BudgetComparison.IsOverBudget)
	suite.Assert().Equal(10.0, report.BudgetComparison.PercentageUsed)

	suite.Assert().Equal(100.0, report.Comparison.ExpenseChange)
	suite.Assert().NotEmpty(report.Recommendations)
}

func (suite *TestSuiteStandard) TestMonthlyReportOtherOwner() {
	suite.setupMarch()

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/reports/monthly/2024-03?user=%s", uuid.New()), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var response v1.MonthlyReportResponse
	suite.decodeResponse(r, &response)

	suite.Assert().True(response.Data.TotalExpenses.IsZero())
	suite.Assert().Nil(response.Data.BudgetComparison)
	suite.Assert().Empty(response.Data.CategoryBreakdown)
}

func (suite *TestSuiteStandard) TestYearlyReport() {
	suite.setupMarch()

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/reports/yearly/2024?user=%s", alice), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var response v1.YearlyReportResponse
	suite.decodeResponse(r, &response)
	report := response.Data

	suite.Assert().Equal(2024, report.Year)
	suite.Assert().True(decimal.NewFromInt(50).Equal(report.TotalExpenses), report.TotalExpenses.String())
	suite.Assert().True(decimal.NewFromInt(950).Equal(report.TotalSavings), report.TotalSavings.String())
	suite.Require().Len(report.CategoryBreakdown, 1)
}

func (suite *TestSuiteStandard) TestReportErrors() {
	pets := suite.createTestCategory("Pets")

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Month out of range", "/v1/reports/monthly/2024-13", http.StatusBadRequest},
		{"Month in wrong format", "/v1/reports/monthly/March", http.StatusBadRequest},
		{"Year not a number", "/v1/reports/yearly/last", http.StatusBadRequest},
		{"Year zero", "/v1/reports/yearly/0", http.StatusBadRequest},
		{"Invalid owner", "/v1/reports/monthly/2024-03?user=nobody", http.StatusBadRequest},
		{"Category not a UUID", "/v1/reports/categories/pets", http.StatusBadRequest},
		{"Category does not exist", fmt.Sprintf("/v1/reports/categories/%s", uuid.New()), http.StatusNotFound},
		{"Date in wrong format", fmt.Sprintf("/v1/reports/categories/%s?from=03/01/2024", pets.ID), http.StatusBadRequest},
		{"Until before from", fmt.Sprintf("/v1/reports/categories/%s?from=2024-03-12&until=2024-03-10", pets.ID), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, tt.url, nil)
			suite.assertHTTPStatus(r, tt.status)

			var response v1.CategoryReportResponse
			suite.decodeResponse(r, &response)
			suite.Assert().NotEmpty(response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryReport() {
	pets := suite.setupMarch()

	// Without a range, the report covers the current month up to today
	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/reports/categories/%s?user=%s", pets, alice), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var response v1.CategoryReportResponse
	suite.decodeResponse(r, &response)
	report := response.Data

	suite.Assert().Equal("Pets", report.Category.Name)
	suite.Assert().Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), report.Period.From.UTC())
	suite.Assert().Equal(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), report.Period.Until.UTC())
	suite.Assert().Equal(1, report.TransactionCount)
	suite.Assert().True(decimal.NewFromInt(50).Equal(report.TotalSpent), report.TotalSpent.String())
	suite.Assert().Len(report.Weekdays, 7)
	suite.Assert().Equal("Sunday", report.Weekdays[0].Weekday)
	suite.Assert().Equal(1, report.Weekdays[0].Count)

	// The until date is inclusive
	r = suite.request(http.MethodGet, fmt.Sprintf("/v1/reports/categories/%s?user=%s&from=2024-03-10&until=2024-03-10", pets, alice), nil)
	suite.assertHTTPStatus(r, http.StatusOK)
	suite.decodeResponse(r, &response)
	suite.Assert().Equal(1, response.Data.TransactionCount)

	r = suite.request(http.MethodGet, fmt.Sprintf("/v1/reports/categories/%s?user=%s&from=2024-03-11", pets, alice), nil)
	suite.assertHTTPStatus(r, http.StatusOK)
	suite.decodeResponse(r, &response)
	suite.Assert().Equal(0, response.Data.TransactionCount)
	suite.Assert().True(response.Data.TotalSpent.IsZero())
}
