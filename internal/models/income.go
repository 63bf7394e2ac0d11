package models

import (
	"strings"
	"time"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is money received.
type Income struct {
	DefaultModel
	Owned
	Type   analytics.IncomeType `json:"type" example:"salary"`                            // Type of the income
	Amount decimal.Decimal      `json:"amount" gorm:"type:DECIMAL(20,8)" example:"3200"` // Amount of the income, always positive
	Date   time.Time            `json:"date" example:"2024-03-01T00:00:00Z"`             // Date the income was received
	Note   string               `json:"note" example:"March salary"`                     // A note for the income
}

// BeforeSave
//   - trims whitespace from string fields
//   - sets the timezone for the Date to UTC
//   - verifies the type and that the amount is positive
func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Note = strings.TrimSpace(i.Note)
	i.Owned.normalize()

	if i.Date.IsZero() {
		i.Date = time.Now().In(time.UTC)
	} else {
		i.Date = i.Date.In(time.UTC)
	}

	if !i.Type.Valid() {
		return ErrIncomeTypeInvalid
	}

	if !i.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// AfterFind enforces dates to be in UTC.
func (i *Income) AfterFind(tx *gorm.DB) error {
	err := i.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	i.Date = i.Date.In(time.UTC)
	return nil
}
