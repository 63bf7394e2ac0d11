package v1_test

import (
	"fmt"
	"net/http"

	"github.com/envelope-zero/insights/internal/analytics"
	v1 "github.com/envelope-zero/insights/internal/controllers/v1"
	"github.com/envelope-zero/insights/internal/models"
	"github.com/envelope-zero/insights/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateBudget() {
	pets := suite.createTestCategory("Pets")
	budget := suite.createTestBudget(map[uuid.UUID]string{pets.ID: "100"})

	suite.Assert().Equal("March", budget.Name)
	suite.Assert().Equal(alice, budget.UserID)
	suite.Require().Len(budget.Categories, 1)
	suite.Assert().True(decimal.NewFromInt(100).Equal(budget.Categories[0].Limit))

	// A second budget is appended, it does not replace the first one
	suite.createTestBudget(nil)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Count(&count).Error)
	suite.Assert().Equal(int64(2), count)
}

func (suite *TestSuiteStandard) TestCreateBudgetErrors() {
	pets := suite.createTestCategory("Pets")
	garden := suite.createTestCategory("Garden")

	tests := []struct {
		name   string
		body   any
		status int
		error  string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Name missing", `{ "totalLimit": "100", "startDate": "2024-03-01T00:00:00Z", "endDate": "2024-03-31T00:00:00Z" }`, http.StatusBadRequest, "Name is required"},
		{"Dates inverted", `{ "name": "x", "totalLimit": "100", "startDate": "2024-03-31T00:00:00Z", "endDate": "2024-03-01T00:00:00Z" }`, http.StatusBadRequest, models.ErrBudgetDates.Error()},
		{
			"Category limits exceed total",
			fmt.Sprintf(`{ "name": "x", "totalLimit": "100", "startDate": "2024-03-01T00:00:00Z", "endDate": "2024-03-31T00:00:00Z", "categories": [{ "categoryId": "%s", "limit": "60" }, { "categoryId": "%s", "limit": "50" }] }`, pets.ID, garden.ID),
			http.StatusBadRequest,
			models.ErrCategoryLimitsExceedTotal.Error(),
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "/v1/budgets", tt.body)
			suite.assertHTTPStatus(r, tt.status)
			suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), tt.error)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseFlow() {
	pets := suite.createTestCategory("Pets")
	suite.createTestBudget(map[uuid.UUID]string{pets.ID: "100"})

	// Well below the limit
	r := suite.postExpense(pets.ID, "50")
	suite.assertHTTPStatus(r, http.StatusCreated)

	var created v1.ExpenseResponse
	suite.decodeResponse(r, &created)
	suite.Require().NotNil(created.Data)
	suite.Assert().True(created.Validation.Allowed)
	suite.Assert().Empty(created.Validation.Warning)

	// Near the limit
	r = suite.postExpense(pets.ID, "45")
	suite.assertHTTPStatus(r, http.StatusCreated)
	suite.decodeResponse(r, &created)
	suite.Assert().Equal("Pets will be at 95.0% of its limit", created.Validation.Warning)

	// More than 10% over the limit is only checked
	r = suite.request(http.MethodPost, "/v1/expense-checks", map[string]any{"userId": alice, "categoryId": pets.ID, "amount": "20"})
	suite.assertHTTPStatus(r, http.StatusOK)

	var check v1.ExpenseValidationResponse
	suite.decodeResponse(r, &check)
	suite.Assert().False(check.Data.Allowed)
	suite.Require().NotNil(check.Data.Budget)
	suite.Assert().InDelta(115, check.Data.Budget.NewPercentage, 0.001)

	// and blocked on creation
	r = suite.postExpense(pets.ID, "20")
	suite.assertHTTPStatus(r, http.StatusUnprocessableEntity)

	var blocked v1.ExpenseResponse
	suite.decodeResponse(r, &blocked)
	suite.Assert().Nil(blocked.Data)
	suite.Assert().False(blocked.Validation.Allowed)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Expense{}).Count(&count).Error)
	suite.Assert().Equal(int64(2), count, "blocked expenses must not be stored")
}

func (suite *TestSuiteStandard) TestCreateExpenseErrors() {
	pets := suite.createTestCategory("Pets")

	r := suite.postExpense(pets.ID, "0")
	suite.assertHTTPStatus(r, http.StatusBadRequest)
	suite.Assert().Equal(analytics.ErrInvalidAmount.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.postExpense(uuid.New(), "10")
	suite.assertHTTPStatus(r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetAnalysisPerformanceAdjustments() {
	pets := suite.createTestCategory("Pets")
	budget := suite.createTestBudget(map[uuid.UUID]string{pets.ID: "100"})
	suite.postExpense(pets.ID, "95")

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/budgets/%s/analysis", budget.ID), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var summary v1.BudgetSummaryResponse
	suite.decodeResponse(r, &summary)
	suite.Assert().True(decimal.NewFromInt(95).Equal(summary.Data.TotalSpent))
	suite.Require().Len(summary.Data.Categories, 1)
	suite.Assert().True(summary.Data.Categories[0].IsNearLimit)

	r = suite.request(http.MethodGet, fmt.Sprintf("/v1/budgets/%s/performance", budget.ID), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var performance v1.BudgetPerformanceResponse
	suite.decodeResponse(r, &performance)
	suite.Assert().Equal(30, performance.Data.Categories[0].Score)

	r = suite.request(http.MethodGet, fmt.Sprintf("/v1/budgets/%s/adjustments", budget.ID), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var adjustments v1.BudgetAdjustmentListResponse
	suite.decodeResponse(r, &adjustments)
	suite.Require().Len(adjustments.Data, 1)
	suite.Assert().Equal(analytics.PriorityMedium, adjustments.Data[0].Priority)
	suite.Assert().True(decimal.NewFromInt(110).Equal(adjustments.Data[0].SuggestedLimit))
}

func (suite *TestSuiteStandard) TestBudgetDetailErrors() {
	for _, path := range []string{"analysis", "performance", "adjustments"} {
		r := suite.request(http.MethodGet, fmt.Sprintf("/v1/budgets/%s/%s", uuid.New(), path), nil)
		suite.assertHTTPStatus(r, http.StatusNotFound)
		suite.Assert().Equal(analytics.ErrBudgetNotFound.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

		r = suite.request(http.MethodGet, fmt.Sprintf("/v1/budgets/not-a-uuid/%s", path), nil)
		suite.assertHTTPStatus(r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestAlerts() {
	pets := suite.createTestCategory("Pets")
	suite.createTestBudget(map[uuid.UUID]string{pets.ID: "100"})

	// Bypass the expense check to go far over the limit
	suite.Require().Nil(models.DB.Create(&models.Expense{
		Owned:      models.Owned{UserID: alice},
		CategoryID: pets.ID,
		Amount:     decimal.NewFromInt(165),
		Date:       now,
	}).Error)

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/alerts?user=%s", alice), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var alerts v1.AlertListResponse
	suite.decodeResponse(r, &alerts)
	suite.Require().Len(alerts.Data, 1)
	suite.Assert().Equal(analytics.AlertDanger, alerts.Data[0].Type)
	suite.Assert().Equal("Pets", alerts.Data[0].CategoryName)

	r = suite.request(http.MethodGet, fmt.Sprintf("/v1/alerts?user=%s", uuid.New()), nil)
	suite.assertHTTPStatus(r, http.StatusOK)
	suite.decodeResponse(r, &alerts)
	suite.Assert().Len(alerts.Data, 0)

	r = suite.request(http.MethodGet, "/v1/alerts?user=not-a-uuid", nil)
	suite.assertHTTPStatus(r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetRecommendations() {
	pets := suite.createTestCategory("Pets")

	for _, date := range []string{"2023-12-10T12:00:00Z", "2024-01-10T12:00:00Z", "2024-02-10T12:00:00Z"} {
		r := suite.request(http.MethodPost, "/v1/expenses", map[string]any{"userId": alice, "categoryId": pets.ID, "amount": "100", "date": date})
		suite.assertHTTPStatus(r, http.StatusCreated)
	}

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/budget-recommendations?user=%s", alice), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var recommendations v1.BudgetRecommendationsResponse
	suite.decodeResponse(r, &recommendations)
	suite.Require().Len(recommendations.Data.Categories, 1)
	suite.Assert().True(decimal.NewFromInt(110).Equal(recommendations.Data.Categories[0].RecommendedLimit))
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/budgets/%s/analysis", uuid.New()), nil)
	suite.assertHTTPStatus(r, http.StatusInternalServerError)
}
