package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/envelope-zero/insights/internal/controllers/v1"
)

func (suite *TestSuiteStandard) TestForecast() {
	suite.setupMarch()

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/forecasts?user=%s", alice), nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var response v1.ForecastResponse
	suite.decodeResponse(r, &response)

	// Three months are forecast if nothing else is requested
	suite.Assert().Equal(3, response.Data.Months)
	suite.Assert().Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), response.Data.Period.From.UTC())
	suite.Assert().Equal(now, response.Data.GeneratedAt.UTC())

	r = suite.request(http.MethodGet, fmt.Sprintf("/v1/forecasts?user=%s&months=12", alice), nil)
	suite.assertHTTPStatus(r, http.StatusOK)
	suite.decodeResponse(r, &response)
	suite.Assert().Equal(12, response.Data.Months)
}

func (suite *TestSuiteStandard) TestForecastErrors() {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"No months", "months=0", http.StatusBadRequest},
		{"Too many months", "months=25", http.StatusBadRequest},
		{"Months not a number", "months=many", http.StatusBadRequest},
		{"Invalid family", "family=all", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, "/v1/forecasts?"+tt.query, nil)
			suite.assertHTTPStatus(r, tt.status)

			var response v1.ForecastResponse
			suite.decodeResponse(r, &response)
			suite.Assert().Nil(response.Data)
			suite.Assert().NotEmpty(response.Error)
		})
	}
}
