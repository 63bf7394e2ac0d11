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

type IncomeEditable struct {
	UserID   uuid.UUID            `json:"userId" example:"3a6e1f04-7f13-4b6c-9a68-2f7b0f2a5cc1"`                                      // ID of the user who owns the income
	FamilyID *uuid.UUID           `json:"familyId" example:"1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"`                                    // ID of the family the income is shared with
	Type     analytics.IncomeType `json:"type" binding:"required,oneof=salary freelance investment other" example:"salary"` // Type of the income
	Amount   decimal.Decimal      `json:"amount" example:"3200"`                                                                      // Amount of the income
	Date     time.Time            `json:"date" example:"2024-03-01T00:00:00Z"`                                                        // Date the income was received, defaults to now
	Note     string               `json:"note" example:"March salary"`                                                                // A note for the income
}

func (e IncomeEditable) model() models.Income {
	return models.Income{
		Owned:  models.Owned{UserID: e.UserID, FamilyID: e.FamilyID},
		Type:   e.Type,
		Amount: e.Amount,
		Date:   e.Date,
		Note:   e.Note,
	}
}

type IncomeResponse struct {
	Data  *models.Income `json:"data"`            // Data for the income
	Error string         `json:"error,omitempty"` // The error, if any occurred
}

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsIncomes)
	r.POST("", co.CreateIncome)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func (co Controller) OptionsIncomes(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create income
// @Description	Stores a new income
// @Tags			Incomes
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes [post]
func (co Controller) CreateIncome(c *gin.Context) {
	var editable IncomeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), IncomeResponse{Error: err.Error()})
		return
	}

	income := editable.model()
	err = co.DB.WithContext(requestContext(c)).Create(&income).Error
	if err != nil {
		c.JSON(status(err), IncomeResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{Data: &income})
}
