package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all models.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Timestamps
}

// Timestamps only contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time       `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`                                             // Time the resource was created
	UpdatedAt time.Time       `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"`                                             // Last time the resource was updated
	DeletedAt *gorm.DeletedAt `json:"deletedAt" gorm:"index" example:"2022-04-22T21:01:05.058161Z" swaggertype:"primitive,string"` // Time the resource was marked as deleted
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	if m.DeletedAt != nil {
		m.DeletedAt.Time = m.DeletedAt.Time.In(time.UTC)
	}

	return nil
}

// BeforeCreate is set to generate a UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID = uuid.New()
	return nil
}

// Owned is embedded by all resources that belong to a user and
// optionally to a family.
type Owned struct {
	UserID   uuid.UUID  `json:"userId" gorm:"index" example:"3a6e1f04-7f13-4b6c-9a68-2f7b0f2a5cc1"`   // ID of the user who owns the resource
	FamilyID *uuid.UUID `json:"familyId" gorm:"index" example:"1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"` // ID of the family the resource is shared with
}

// normalize ensures that FamilyID is nil and not a pointer to a nil UUID.
func (o *Owned) normalize() {
	if o.FamilyID != nil && *o.FamilyID == uuid.Nil {
		o.FamilyID = nil
	}
}
