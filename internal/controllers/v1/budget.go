package v1

import (
	"net/http"
	"time"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/envelope-zero/insights/internal/httputil"
	"github.com/envelope-zero/insights/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Name       string                   `json:"name" binding:"required" example:"March household"`                 // Name of the budget
	UserID     uuid.UUID                `json:"userId" example:"3a6e1f04-7f13-4b6c-9a68-2f7b0f2a5cc1"`            // ID of the user who owns the budget
	FamilyID   *uuid.UUID               `json:"familyId" example:"1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"`          // ID of the family the budget is shared with
	TotalLimit decimal.Decimal          `json:"totalLimit" example:"2500"`                                         // Limit for all expenses in the period
	StartDate  time.Time                `json:"startDate" binding:"required" example:"2024-03-01T00:00:00Z"`       // First day of the budget
	EndDate    time.Time                `json:"endDate" binding:"required" example:"2024-03-31T00:00:00Z"`         // Last day of the budget, inclusive
	Categories []CategoryBudgetEditable `json:"categories"`                                                        // Limits for single categories
}

type CategoryBudgetEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"` // ID of the category
	Limit      decimal.Decimal `json:"limit" example:"400"`                                       // Limit for the category
}

func (e BudgetEditable) model() models.Budget {
	categories := make([]models.CategoryBudget, 0, len(e.Categories))
	for _, c := range e.Categories {
		categories = append(categories, models.CategoryBudget{
			CategoryID: c.CategoryID,
			Limit:      c.Limit,
		})
	}

	return models.Budget{
		Owned:      models.Owned{UserID: e.UserID, FamilyID: e.FamilyID},
		Name:       e.Name,
		TotalLimit: e.TotalLimit,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		Categories: categories,
	}
}

type BudgetResponse struct {
	Data  *models.Budget `json:"data"`            // Data for the budget
	Error string         `json:"error,omitempty"` // The error, if any occurred
}

type BudgetSummaryResponse struct {
	Data  *analytics.BudgetSummary `json:"data"`            // Analysis of the budget
	Error string                   `json:"error,omitempty"` // The error, if any occurred
}

type BudgetPerformanceResponse struct {
	Data  *analytics.BudgetPerformance `json:"data"`            // Performance of the budget
	Error string                       `json:"error,omitempty"` // The error, if any occurred
}

type BudgetAdjustmentListResponse struct {
	Data  []analytics.BudgetAdjustment `json:"data"`            // Suggested adjustments
	Error string                       `json:"error,omitempty"` // The error, if any occurred
}

type BudgetRecommendationsResponse struct {
	Data  *analytics.BudgetRecommendations `json:"data"`            // Recommended category limits
	Error string                           `json:"error,omitempty"` // The error, if any occurred
}

type AlertListResponse struct {
	Data  []analytics.BudgetAlert `json:"data"`            // Alerts for categories that are over their limit
	Error string                  `json:"error,omitempty"` // The error, if any occurred
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.POST("", co.CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id/analysis", co.OptionsBudgetDetail)
		r.GET("/:id/analysis", co.GetBudgetAnalysis)
		r.OPTIONS("/:id/performance", co.OptionsBudgetDetail)
		r.GET("/:id/performance", co.GetBudgetPerformance)
		r.OPTIONS("/:id/adjustments", co.OptionsBudgetDetail)
		r.GET("/:id/adjustments", co.GetBudgetAdjustments)
	}
}

// RegisterAlertRoutes registers the routes for budget alerts with
// the RouterGroup that is passed.
func (co Controller) RegisterAlertRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsAlerts)
	r.GET("", co.GetAlerts)
}

// RegisterBudgetRecommendationRoutes registers the routes for budget
// recommendations with the RouterGroup that is passed.
func (co Controller) RegisterBudgetRecommendationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsBudgetRecommendations)
	r.GET("", co.GetBudgetRecommendations)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id}/analysis [options]
// @Router			/v1/budgets/{id}/performance [options]
// @Router			/v1/budgets/{id}/adjustments [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	_, err := bindID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create budget
// @Description	Creates a new budget with its category limits
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), BudgetResponse{Error: err.Error()})
		return
	}

	budget := editable.model()
	err = co.DB.WithContext(requestContext(c)).Create(&budget).Error
	if err != nil {
		c.JSON(status(err), BudgetResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: &budget})
}

// @Summary		Budget analysis
// @Description	Refreshes the spent amounts of a budget and returns its summary
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetSummaryResponse
// @Failure		400	{object}	BudgetSummaryResponse
// @Failure		404	{object}	BudgetSummaryResponse
// @Failure		500	{object}	BudgetSummaryResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id}/analysis [get]
func (co Controller) GetBudgetAnalysis(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), BudgetSummaryResponse{Error: err.Error()})
		return
	}

	summary, err := co.Engine.Budgets.GetBudgetAnalysis(requestContext(c), id.UUID)
	if err != nil {
		c.JSON(status(err), BudgetSummaryResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, BudgetSummaryResponse{Data: &summary})
}

// @Summary		Budget performance
// @Description	Scores the budget and its categories
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetPerformanceResponse
// @Failure		400	{object}	BudgetPerformanceResponse
// @Failure		404	{object}	BudgetPerformanceResponse
// @Failure		500	{object}	BudgetPerformanceResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id}/performance [get]
func (co Controller) GetBudgetPerformance(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), BudgetPerformanceResponse{Error: err.Error()})
		return
	}

	performance, err := co.Engine.Budgets.GetBudgetPerformance(requestContext(c), id.UUID)
	if err != nil {
		c.JSON(status(err), BudgetPerformanceResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, BudgetPerformanceResponse{Data: &performance})
}

// @Summary		Budget adjustments
// @Description	Suggests new limits for categories that are over, near or far below their limit
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetAdjustmentListResponse
// @Failure		400	{object}	BudgetAdjustmentListResponse
// @Failure		404	{object}	BudgetAdjustmentListResponse
// @Failure		500	{object}	BudgetAdjustmentListResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id}/adjustments [get]
func (co Controller) GetBudgetAdjustments(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), BudgetAdjustmentListResponse{Error: err.Error()})
		return
	}

	adjustments, err := co.Engine.Budgets.SuggestBudgetAdjustments(requestContext(c), id.UUID)
	if err != nil {
		c.JSON(status(err), BudgetAdjustmentListResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, BudgetAdjustmentListResponse{Data: adjustments})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/alerts [options]
func (co Controller) OptionsAlerts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Budget alerts
// @Description	Returns all categories of active budgets that are more than 10% over their limit
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	AlertListResponse
// @Failure		400		{object}	AlertListResponse
// @Param			user	query		string	false	"Filter by user ID"
// @Param			family	query		string	false	"Filter by family ID"
// @Router			/v1/alerts [get]
func (co Controller) GetAlerts(c *gin.Context) {
	owner, err := bindOwner(c)
	if err != nil {
		c.JSON(status(err), AlertListResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AlertListResponse{Data: co.Engine.Budgets.CheckBudgetAlerts(requestContext(c), owner)})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budget-recommendations [options]
func (co Controller) OptionsBudgetRecommendations(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Budget recommendations
// @Description	Proposes category limits from the spending of the last three months
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetRecommendationsResponse
// @Failure		400		{object}	BudgetRecommendationsResponse
// @Failure		500		{object}	BudgetRecommendationsResponse
// @Param			user	query		string	false	"Filter by user ID"
// @Param			family	query		string	false	"Filter by family ID"
// @Router			/v1/budget-recommendations [get]
func (co Controller) GetBudgetRecommendations(c *gin.Context) {
	owner, err := bindOwner(c)
	if err != nil {
		c.JSON(status(err), BudgetRecommendationsResponse{Error: err.Error()})
		return
	}

	recommendations, err := co.Engine.Budgets.GetBudgetRecommendations(requestContext(c), owner)
	if err != nil {
		c.JSON(status(err), BudgetRecommendationsResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, BudgetRecommendationsResponse{Data: &recommendations})
}
