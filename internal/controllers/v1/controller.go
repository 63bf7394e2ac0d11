// Package v1 exposes the analytics engine and the write paths that feed it
// over HTTP.
package v1

import (
	"context"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/envelope-zero/insights/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	DB     *gorm.DB
	Engine *analytics.Engine
}

// New creates a controller whose engine reads from the database.
func New(db *gorm.DB, opts ...analytics.Option) Controller {
	return Controller{
		DB:     db,
		Engine: analytics.New(models.NewGateway(db), opts...),
	}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterAlertRoutes(r.Group("/alerts"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterBudgetRecommendationRoutes(r.Group("/budget-recommendations"))
	co.RegisterExpenseCheckRoutes(r.Group("/expense-checks"))
	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterIncomeRoutes(r.Group("/incomes"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterReportRoutes(r.Group("/reports"))
	co.RegisterForecastRoutes(r.Group("/forecasts"))
	co.RegisterAdviceRoutes(r.Group("/advice"))
}

// requestContext returns the request context with a logger that carries
// the request id.
func requestContext(c *gin.Context) context.Context {
	logger := log.Logger.With().Str("request-id", requestid.Get(c)).Logger()
	return logger.WithContext(c.Request.Context())
}
