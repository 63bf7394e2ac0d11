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

type ExpenseEditable struct {
	UserID        uuid.UUID       `json:"userId" example:"3a6e1f04-7f13-4b6c-9a68-2f7b0f2a5cc1"`     // ID of the user who owns the expense
	FamilyID      *uuid.UUID      `json:"familyId" example:"1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"`   // ID of the family the expense is shared with
	CategoryID    uuid.UUID       `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"` // ID of the category
	SubcategoryID *uuid.UUID      `json:"subcategoryId" example:"null"`                              // ID of the subcategory
	Amount        decimal.Decimal `json:"amount" example:"42.17"`                                    // Amount of the expense
	Date          time.Time       `json:"date" example:"2024-03-14T12:00:00Z"`                       // Date of the expense, defaults to now
	Note          string          `json:"note" example:"Weekly shopping"`                            // A note for the expense
}

func (e ExpenseEditable) model() models.Expense {
	return models.Expense{
		Owned:         models.Owned{UserID: e.UserID, FamilyID: e.FamilyID},
		CategoryID:    e.CategoryID,
		SubcategoryID: e.SubcategoryID,
		Amount:        e.Amount,
		Date:          e.Date,
		Note:          e.Note,
	}
}

func (e ExpenseEditable) check() analytics.ExpenseCheck {
	owner := analytics.Owner{UserID: e.UserID}
	if e.FamilyID != nil {
		owner.FamilyID = *e.FamilyID
	}

	return analytics.ExpenseCheck{
		Amount:     e.Amount,
		CategoryID: e.CategoryID,
		Owner:      owner,
	}
}

type ExpenseResponse struct {
	Data       *models.Expense              `json:"data"`                 // Data for the expense
	Validation *analytics.ExpenseValidation `json:"validation,omitempty"` // Result of the budget check for the expense
	Error      string                       `json:"error,omitempty"`      // The error, if any occurred
}

type ExpenseValidationResponse struct {
	Data  *analytics.ExpenseValidation `json:"data"`            // Result of the budget check
	Error string                       `json:"error,omitempty"` // The error, if any occurred
}

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsExpenses)
	r.POST("", co.CreateExpense)
}

// RegisterExpenseCheckRoutes registers the routes for expense checks with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseCheckRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsExpenses)
	r.POST("", co.CheckExpense)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
// @Router			/v1/expense-checks [options]
func (co Controller) OptionsExpenses(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Check expense
// @Description	Checks a prospective expense against the budget that is active in the current month. Nothing is stored.
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseValidationResponse
// @Failure		400		{object}	ExpenseValidationResponse
// @Failure		500		{object}	ExpenseValidationResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expense-checks [post]
func (co Controller) CheckExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), ExpenseValidationResponse{Error: err.Error()})
		return
	}

	validation, err := co.Engine.Budgets.ValidateExpenseAgainstBudget(requestContext(c), editable.check())
	if err != nil {
		c.JSON(status(err), ExpenseValidationResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ExpenseValidationResponse{Data: &validation})
}

// @Summary		Create expense
// @Description	Checks the expense against the active budget and stores it.
// @Description	Expenses that bring their category more than 10% over its limit are rejected with 422.
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		422		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), ExpenseResponse{Error: err.Error()})
		return
	}

	ctx := requestContext(c)
	validation, err := co.Engine.Budgets.ValidateExpenseAgainstBudget(ctx, editable.check())
	if err != nil {
		c.JSON(status(err), ExpenseResponse{Error: err.Error()})
		return
	}

	if !validation.Allowed {
		c.JSON(http.StatusUnprocessableEntity, ExpenseResponse{
			Validation: &validation,
			Error:      errExpenseBlocked.Error(),
		})
		return
	}

	expense := editable.model()
	err = co.DB.WithContext(ctx).Create(&expense).Error
	if err != nil {
		c.JSON(status(err), ExpenseResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense, Validation: &validation})
}
