package v1

import (
	"net/http"

	"github.com/envelope-zero/insights/internal/httputil"
	"github.com/envelope-zero/insights/internal/models"
	ez_uuid "github.com/envelope-zero/insights/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

type CategoryEditable struct {
	Name          string     `json:"name" binding:"required" example:"Pets"`                  // Name of the category
	Icon          string     `json:"icon" example:"🐾"`                                        // Icon shown for the category
	Color         string     `json:"color" example:"#795548"`                                 // Color used for the category in charts
	FamilyID      *uuid.UUID `json:"familyId" example:"1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"` // ID of the family the category is restricted to
	Subcategories []string   `json:"subcategories" example:"Food,Vet"`                        // Names of the subcategories
}

func (e CategoryEditable) model() models.Category {
	subcategories := make([]models.Subcategory, 0, len(e.Subcategories))
	for _, name := range e.Subcategories {
		subcategories = append(subcategories, models.Subcategory{Name: name})
	}

	return models.Category{
		Name:          e.Name,
		Icon:          e.Icon,
		Color:         e.Color,
		FamilyID:      e.FamilyID,
		Subcategories: subcategories,
	}
}

type CategoryQueryFilter struct {
	Name   string       `form:"name" example:"Groc*"`                                            // Glob pattern the name must match
	Family ez_uuid.UUID `form:"family" example:"1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"` // Only return default categories and those of this family
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`            // Data for the category
	Error string           `json:"error,omitempty"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`            // List of categories
	Error string            `json:"error,omitempty"` // The error, if any occurred
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCategoryList)
	r.GET("", co.GetCategories)
	r.POST("", co.CreateCategory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create category
// @Description	Creates a new category with its subcategories
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: err.Error()})
		return
	}

	category := editable.model()
	err = co.DB.WithContext(requestContext(c)).Create(&category).Error
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		Get categories
// @Description	Returns a list of categories, sorted by name
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Param			name	query		string	false	"Glob pattern for the name, e.g. Groc*"
// @Param			family	query		string	false	"Family ID"
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(status(err), CategoryListResponse{Error: err.Error()})
		return
	}

	q := co.DB.WithContext(requestContext(c)).Preload("Subcategories").Order("name ASC")
	if filter.Family != ez_uuid.Nil {
		q = q.Where("family_id IS NULL OR family_id = ?", filter.Family.UUID)
	}

	var categories []models.Category
	err = q.Find(&categories).Error
	if err != nil {
		c.JSON(status(err), CategoryListResponse{Error: err.Error()})
		return
	}

	data := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		if filter.Name != "" && !glob.Glob(filter.Name, category.Name) {
			continue
		}
		data = append(data, category)
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}
