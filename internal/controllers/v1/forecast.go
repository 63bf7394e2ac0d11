package v1

import (
	"net/http"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/envelope-zero/insights/internal/httputil"
	"github.com/gin-gonic/gin"
)

type ForecastQuery struct {
	OwnerQuery
	Months int `form:"months" example:"6"` // Number of months to forecast, 1 to 24. Defaults to 3
}

type ForecastResponse struct {
	Data  *analytics.ForecastData `json:"data"`            // The forecast
	Error string                  `json:"error,omitempty"` // The error, if any occurred
}

// RegisterForecastRoutes registers the routes for forecasts with
// the RouterGroup that is passed.
func (co Controller) RegisterForecastRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsForecast)
	r.GET("", co.GetForecast)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Forecasts
// @Success		204
// @Router			/v1/forecasts [options]
func (co Controller) OptionsForecast(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Forecast
// @Description	Projects income, expenses and savings for the next months and lists the risks
// @Tags			Forecasts
// @Produce		json
// @Success		200		{object}	ForecastResponse
// @Failure		400		{object}	ForecastResponse
// @Failure		500		{object}	ForecastResponse
// @Param			months	query		int		false	"Number of months, 1 to 24"
// @Param			user	query		string	false	"Filter by user ID"
// @Param			family	query		string	false	"Filter by family ID"
// @Router			/v1/forecasts [get]
func (co Controller) GetForecast(c *gin.Context) {
	query := ForecastQuery{Months: 3}
	err := c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(status(err), ForecastResponse{Error: err.Error()})
		return
	}

	forecast, err := co.Engine.Forecasts.Generate(requestContext(c), query.owner(), query.Months)
	if err != nil {
		c.JSON(status(err), ForecastResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ForecastResponse{Data: &forecast})
}
