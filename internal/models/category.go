package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups expenses.
type Category struct {
	DefaultModel
	Name          string        `json:"name" gorm:"uniqueIndex:category_family_name" example:"Groceries"`                                            // Name of the category
	Icon          string        `json:"icon" example:"🛒"`                                                                                            // Icon shown for the category
	Color         string        `json:"color" example:"#4caf50"`                                                                                     // Color used for the category in charts
	IsDefault     bool          `json:"isDefault" example:"false"`                                                                                   // Is the category one of the built-in defaults?
	FamilyID      *uuid.UUID    `json:"familyId" gorm:"uniqueIndex:category_family_name" example:"1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"` // ID of the family the category is restricted to
	Subcategories []Subcategory `json:"subcategories"`                                                                                               // Subcategories of the category
}

// Subcategory refines a category.
type Subcategory struct {
	DefaultModel
	CategoryID uuid.UUID `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"` // ID of the category
	Name       string    `json:"name" example:"Organic"`                                    // Name of the subcategory
}

// BeforeSave trims whitespace and enforces unique names for categories
// without a family. SQLite does not consider NULL values equal in the
// unique index, so these are checked here.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Icon = strings.TrimSpace(c.Icon)
	c.Color = strings.TrimSpace(c.Color)

	if c.FamilyID != nil && *c.FamilyID == uuid.Nil {
		c.FamilyID = nil
	}

	if c.FamilyID != nil {
		return nil
	}

	var count int64
	err := tx.Model(&Category{}).Where("name = ? AND family_id IS NULL AND id <> ?", c.Name, c.ID).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrCategoryNameNotUnique
	}

	return nil
}

func (s *Subcategory) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	return nil
}

var defaultCategories = []Category{
	{Name: "Groceries", Icon: "🛒", Color: "#4caf50"},
	{Name: "Housing", Icon: "🏠", Color: "#3f51b5"},
	{Name: "Transport", Icon: "🚌", Color: "#009688"},
	{Name: "Dining", Icon: "🍽", Color: "#ff9800"},
	{Name: "Health", Icon: "💊", Color: "#e91e63"},
	{Name: "Entertainment", Icon: "🎬", Color: "#9c27b0"},
	{Name: "Other", Icon: "📦", Color: "#607d8b"},
}

// seedDefaultCategories creates the built-in categories when there are no
// default categories yet.
func seedDefaultCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Where(&Category{IsDefault: true}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	categories := make([]Category, len(defaultCategories))
	for i, c := range defaultCategories {
		c.IsDefault = true
		categories[i] = c
	}

	return db.Create(&categories).Error
}
