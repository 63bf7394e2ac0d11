package v1

import (
	"net/http"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/envelope-zero/insights/internal/httputil"
	"github.com/gin-gonic/gin"
)

type DailyAdviceResponse struct {
	Data  []analytics.DailyAdvice `json:"data"`            // Advice for today
	Error string                  `json:"error,omitempty"` // The error, if any occurred
}

type WeeklyAdviceResponse struct {
	Data  *analytics.WeeklyAdvice `json:"data"`            // Summary of the current week
	Error string                  `json:"error,omitempty"` // The error, if any occurred
}

type MonthlyAdviceResponse struct {
	Data  *analytics.MonthlyAdvice `json:"data"`            // Review of the current month
	Error string                   `json:"error,omitempty"` // The error, if any occurred
}

type CategoryAdviceResponse struct {
	Data  *analytics.CategoryAdvice `json:"data"`            // Advice for the category
	Error string                    `json:"error,omitempty"` // The error, if any occurred
}

// RegisterAdviceRoutes registers the routes for advice with
// the RouterGroup that is passed.
func (co Controller) RegisterAdviceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/daily", co.OptionsAdvice)
	r.GET("/daily", co.GetDailyAdvice)
	r.OPTIONS("/weekly", co.OptionsAdvice)
	r.GET("/weekly", co.GetWeeklyAdvice)
	r.OPTIONS("/monthly", co.OptionsAdvice)
	r.GET("/monthly", co.GetMonthlyAdvice)
	r.OPTIONS("/categories/:id", co.OptionsAdvice)
	r.GET("/categories/:id", co.GetCategoryAdvice)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Advice
// @Success		204
// @Router			/v1/advice/daily [options]
// @Router			/v1/advice/weekly [options]
// @Router			/v1/advice/monthly [options]
// @Router			/v1/advice/categories/{id} [options]
func (co Controller) OptionsAdvice(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Daily advice
// @Description	Returns tips, warnings and reminders for today, most important first
// @Tags			Advice
// @Produce		json
// @Success		200		{object}	DailyAdviceResponse
// @Failure		400		{object}	DailyAdviceResponse
// @Param			user	query		string	false	"Filter by user ID"
// @Param			family	query		string	false	"Filter by family ID"
// @Router			/v1/advice/daily [get]
func (co Controller) GetDailyAdvice(c *gin.Context) {
	owner, err := bindOwner(c)
	if err != nil {
		c.JSON(status(err), DailyAdviceResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, DailyAdviceResponse{Data: co.Engine.Advice.Daily(requestContext(c), owner)})
}

// @Summary		Weekly advice
// @Description	Summarizes the current week and compares it with the previous one
// @Tags			Advice
// @Produce		json
// @Success		200		{object}	WeeklyAdviceResponse
// @Failure		400		{object}	WeeklyAdviceResponse
// @Failure		500		{object}	WeeklyAdviceResponse
// @Param			user	query		string	false	"Filter by user ID"
// @Param			family	query		string	false	"Filter by family ID"
// @Router			/v1/advice/weekly [get]
func (co Controller) GetWeeklyAdvice(c *gin.Context) {
	owner, err := bindOwner(c)
	if err != nil {
		c.JSON(status(err), WeeklyAdviceResponse{Error: err.Error()})
		return
	}

	advice, err := co.Engine.Advice.Weekly(requestContext(c), owner)
	if err != nil {
		c.JSON(status(err), WeeklyAdviceResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, WeeklyAdviceResponse{Data: &advice})
}

// @Summary		Monthly advice
// @Description	Scores the current month and lists achievements, improvements and goals
// @Tags			Advice
// @Produce		json
// @Success		200		{object}	MonthlyAdviceResponse
// @Failure		400		{object}	MonthlyAdviceResponse
// @Failure		500		{object}	MonthlyAdviceResponse
// @Param			user	query		string	false	"Filter by user ID"
// @Param			family	query		string	false	"Filter by family ID"
// @Router			/v1/advice/monthly [get]
func (co Controller) GetMonthlyAdvice(c *gin.Context) {
	owner, err := bindOwner(c)
	if err != nil {
		c.JSON(status(err), MonthlyAdviceResponse{Error: err.Error()})
		return
	}

	advice, err := co.Engine.Advice.Monthly(requestContext(c), owner)
	if err != nil {
		c.JSON(status(err), MonthlyAdviceResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MonthlyAdviceResponse{Data: &advice})
}

// @Summary		Category advice
// @Description	Comments on the spending in one category in the current month
// @Tags			Advice
// @Produce		json
// @Success		200		{object}	CategoryAdviceResponse
// @Failure		400		{object}	CategoryAdviceResponse
// @Failure		404		{object}	CategoryAdviceResponse
// @Failure		500		{object}	CategoryAdviceResponse
// @Param			id		path		string	true	"ID formatted as string"
// @Param			user	query		string	false	"Filter by user ID"
// @Param			family	query		string	false	"Filter by family ID"
// @Router			/v1/advice/categories/{id} [get]
func (co Controller) GetCategoryAdvice(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), CategoryAdviceResponse{Error: err.Error()})
		return
	}

	owner, err := bindOwner(c)
	if err != nil {
		c.JSON(status(err), CategoryAdviceResponse{Error: err.Error()})
		return
	}

	advice, err := co.Engine.Advice.CategoryAdvice(requestContext(c), owner, id.UUID)
	if err != nil {
		c.JSON(status(err), CategoryAdviceResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CategoryAdviceResponse{Data: &advice})
}
