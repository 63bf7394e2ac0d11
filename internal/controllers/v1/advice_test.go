package v1_test

import (
	"fmt"
	"net/http"

	"github.com/envelope-zero/insights/internal/analytics"
	v1 "github.com/envelope-zero/insights/internal/controllers/v1"
	"github.com/envelope-zero/insights/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDailyAdvice() {
	suite.setupMarch()

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/advice/daily?user=%s", alice), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var response v1.DailyAdviceResponse
	suite.decodeResponse(r, &response)

	titles := []string{}
	kinds := []analytics.AdviceType{}
	for _, a := range response.Data {
		titles = append(titles, a.Title)
		kinds = append(kinds, a.Type)
	}

	// The only expense is from last Sunday
	suite.Assert().Contains(titles, "No spending today")
	suite.Assert().Contains(kinds, analytics.AdviceTip)
}

func (suite *TestSuiteStandard) TestWeeklyAdvice() {
	suite.setupMarch()

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/advice/weekly?user=%s", alice), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var response v1.WeeklyAdviceResponse
	suite.decodeResponse(r, &response)
	advice := response.Data

	suite.Assert().True(advice.Week.Contains(now))
	suite.Assert().True(advice.Spent.IsZero(), advice.Spent.String())
	suite.Assert().Equal(-100.0, advice.ChangeFromLastWeek)
	suite.Assert().Contains(advice.Highlights, "You spent 100.0% less than last week.")
	suite.Assert().NotNil(advice.BudgetUsage)
}

func (suite *TestSuiteStandard) TestMonthlyAdvice() {
	suite.setupMarch()

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/advice/monthly?user=%s", alice), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var response v1.MonthlyAdviceResponse
	suite.decodeResponse(r, &response)
	advice := response.Data

	suite.Assert().Equal(types.NewMonth(2024, 3), advice.Month)
	suite.Assert().Equal(95.0, advice.SavingsRate)
	suite.Assert().Contains(advice.Achievements, "You saved 95.0% of your income.")
	suite.Assert().Contains(advice.Achievements, "You stayed within the budget March.")
	suite.Assert().GreaterOrEqual(advice.Score, 0)
	suite.Assert().LessOrEqual(advice.Score, 100)
}

func (suite *TestSuiteStandard) TestCategoryAdvice() {
	pets := suite.setupMarch()

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/advice/categories/%s?user=%s", pets, alice), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var response v1.CategoryAdviceResponse
	suite.decodeResponse(r, &response)

	suite.Assert().Equal("Pets", response.Data.Category.Name)
	suite.Assert().Equal(1, response.Data.TransactionCount)
	suite.Assert().True(decimal.NewFromInt(50).Equal(response.Data.TotalSpent), response.Data.TotalSpent.String())
	suite.Assert().NotNil(response.Data.Advice)
}

func (suite *TestSuiteStandard) TestCategoryAdviceNotFound() {
	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/advice/categories/%s", uuid.New()), nil)
	suite.assertHTTPStatus(r, http.StatusNotFound)

	var response v1.CategoryAdviceResponse
	suite.decodeResponse(r, &response)
	suite.Assert().Equal("there is no category matching your query", response.Error)
}
