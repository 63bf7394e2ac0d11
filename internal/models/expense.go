package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is money spent in a category.
type Expense struct {
	DefaultModel
	Owned
	CategoryID    uuid.UUID       `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"`    // ID of the category
	Category      Category        `json:"-"`                                                            // The category of the expense
	SubcategoryID *uuid.UUID      `json:"subcategoryId" example:"null"`                                 // ID of the subcategory
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"42.17"`             // Amount of the expense, always positive
	Date          time.Time       `json:"date" example:"2024-03-14T12:00:00Z"`                          // Date of the expense
	Note          string          `json:"note" example:"Weekly shopping"`                               // A note for the expense
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	err := tx.First(&Category{}, "id = ?", e.CategoryID).Error
	if err != nil {
		return err
	}

	if e.SubcategoryID != nil {
		err = tx.First(&Subcategory{}, "id = ? AND category_id = ?", e.SubcategoryID, e.CategoryID).Error
		if err != nil {
			return fmt.Errorf("the subcategory does not belong to the category: %w", err)
		}
	}

	return nil
}

// BeforeSave
//   - trims whitespace from string fields
//   - sets the timezone for the Date to UTC
//   - verifies that the amount is positive
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Note = strings.TrimSpace(e.Note)
	e.Owned.normalize()

	if e.SubcategoryID != nil && *e.SubcategoryID == uuid.Nil {
		e.SubcategoryID = nil
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// AfterFind enforces dates to be in UTC.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}
