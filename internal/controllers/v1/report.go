package v1

import (
	"net/http"
	"strconv"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/envelope-zero/insights/internal/httputil"
	"github.com/envelope-zero/insights/internal/types"
	"github.com/gin-gonic/gin"
)

type MonthlyReportResponse struct {
	Data  *analytics.MonthlyReportData `json:"data"`            // Report for the month
	Error string                       `json:"error,omitempty"` // The error, if any occurred
}

type YearlyReportResponse struct {
	Data  *analytics.YearlyReportData `json:"data"`            // Report for the year
	Error string                      `json:"error,omitempty"` // The error, if any occurred
}

type CategoryReportResponse struct {
	Data  *analytics.CategoryReport `json:"data"`            // Report for the category
	Error string                    `json:"error,omitempty"` // The error, if any occurred
}

type CategoryReportQuery struct {
	OwnerQuery
	From  string `form:"from" example:"2024-01-01"`  // First day of the report, defaults to the start of the current month
	Until string `form:"until" example:"2024-03-31"` // Last day of the report, inclusive. Defaults to today
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly/:month", co.OptionsReport)
	r.GET("/monthly/:month", co.GetMonthlyReport)
	r.OPTIONS("/yearly/:year", co.OptionsReport)
	r.GET("/yearly/:year", co.GetYearlyReport)
	r.OPTIONS("/categories/:id", co.OptionsReport)
	r.GET("/categories/:id", co.GetCategoryReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/monthly/{month} [options]
// @Router			/v1/reports/yearly/{year} [options]
// @Router			/v1/reports/categories/{id} [options]
func (co Controller) OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly report
// @Description	Returns income, expenses, breakdowns, budget comparison and recommendations for a month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	MonthlyReportResponse
// @Failure		400		{object}	MonthlyReportResponse
// @Failure		500		{object}	MonthlyReportResponse
// @Param			month	path		string	true	"Month in YYYY-MM format"
// @Param			user	query		string	false	"Filter by user ID"
// @Param			family	query		string	false	"Filter by family ID"
// @Router			/v1/reports/monthly/{month} [get]
func (co Controller) GetMonthlyReport(c *gin.Context) {
	month, err := types.ParseMonth(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, MonthlyReportResponse{Error: errMonthFormat.Error()})
		return
	}

	owner, err := bindOwner(c)
	if err != nil {
		c.JSON(status(err), MonthlyReportResponse{Error: err.Error()})
		return
	}

	report, err := co.Engine.Reports.MonthlyReport(requestContext(c), owner, month)
	if err != nil {
		c.JSON(status(err), MonthlyReportResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MonthlyReportResponse{Data: &report})
}

// @Summary		Yearly report
// @Description	Returns the monthly totals, best and worst month and the category breakdown for a year
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	YearlyReportResponse
// @Failure		400		{object}	YearlyReportResponse
// @Failure		500		{object}	YearlyReportResponse
// @Param			year	path		int		true	"Year"
// @Param			user	query		string	false	"Filter by user ID"
// @Param			family	query		string	false	"Filter by family ID"
// @Router			/v1/reports/yearly/{year} [get]
func (co Controller) GetYearlyReport(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 || year > 9999 {
		c.JSON(http.StatusBadRequest, YearlyReportResponse{Error: errYearFormat.Error()})
		return
	}

	owner, err := bindOwner(c)
	if err != nil {
		c.JSON(status(err), YearlyReportResponse{Error: err.Error()})
		return
	}

	report, err := co.Engine.Reports.YearlyReport(requestContext(c), owner, year)
	if err != nil {
		c.JSON(status(err), YearlyReportResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, YearlyReportResponse{Data: &report})
}

// @Summary		Category report
// @Description	Returns the spending of one category over a date range
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	CategoryReportResponse
// @Failure		400		{object}	CategoryReportResponse
// @Failure		404		{object}	CategoryReportResponse
// @Failure		500		{object}	CategoryReportResponse
// @Param			id		path		string	true	"ID formatted as string"
// @Param			from	query		string	false	"First day in YYYY-MM-DD format"
// @Param			until	query		string	false	"Last day in YYYY-MM-DD format, inclusive"
// @Param			user	query		string	false	"Filter by user ID"
// @Param			family	query		string	false	"Filter by family ID"
// @Router			/v1/reports/categories/{id} [get]
func (co Controller) GetCategoryReport(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), CategoryReportResponse{Error: err.Error()})
		return
	}

	var query CategoryReportQuery
	err = c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(status(err), CategoryReportResponse{Error: err.Error()})
		return
	}

	now := co.Engine.Clock.Now()
	rng := types.DateRange{
		From:  types.MonthOf(now).Time(),
		Until: types.Day(now).Until,
	}

	if query.From != "" {
		rng.From, err = parseDate(query.From)
		if err != nil {
			c.JSON(http.StatusBadRequest, CategoryReportResponse{Error: err.Error()})
			return
		}
	}

	if query.Until != "" {
		until, err := parseDate(query.Until)
		if err != nil {
			c.JSON(http.StatusBadRequest, CategoryReportResponse{Error: err.Error()})
			return
		}
		rng.Until = until.AddDate(0, 0, 1)
	}

	report, err := co.Engine.Reports.CategoryReport(requestContext(c), query.owner(), id.UUID, rng)
	if err != nil {
		c.JSON(status(err), CategoryReportResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CategoryReportResponse{Data: &report})
}
