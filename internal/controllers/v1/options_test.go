package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestOptions() {
	id := uuid.New()

	tests := []struct {
		url   string
		allow string
	}{
		{"/v1/alerts", "OPTIONS, GET"},
		{"/v1/budgets", "OPTIONS, POST"},
		{"/v1/categories", "OPTIONS, GET, POST"},
		{"/v1/expenses", "OPTIONS, POST"},
		{"/v1/incomes", "OPTIONS, POST"},
		{"/v1/reports/monthly/2024-03", "OPTIONS, GET"},
		{"/v1/reports/yearly/2024", "OPTIONS, GET"},
		{fmt.Sprintf("/v1/reports/categories/%s", id), "OPTIONS, GET"},
		{"/v1/forecasts", "OPTIONS, GET"},
		{"/v1/advice/daily", "OPTIONS, GET"},
		{fmt.Sprintf("/v1/advice/categories/%s", id), "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.Run(tt.url, func() {
			r := suite.request(http.MethodOptions, tt.url, nil)
			suite.assertHTTPStatus(r, http.StatusNoContent)
			suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
		})
	}
}
