package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact is a message left by a visitor through the contact form.
type Contact struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null;check:name <> ''" json:"name"`
	Email   string `gorm:"size:200;not null;check:email <> ''" json:"email"`
	Subject string `gorm:"size:500" json:"subject"`
	Message string `gorm:"type:text;not null;check:message <> ''" json:"message"`
	// CreatedAt is assigned by the API layer when the visitor omits it.
	CreatedAt *time.Time `gorm:"column:created_at;index;autoCreateTime:false" json:"createdAt"`
	Read      bool       `gorm:"column:read;not null;default:false" json:"read"`
}

// TableName specifies the table name for GORM.
func (Contact) TableName() string {
	return "contact"
}

// BeforeSave stores createdAt in UTC. SQLite keeps timestamps as text, so
// rows written under different offsets would not order chronologically.
func (c *Contact) BeforeSave(_ *gorm.DB) error {
	if c.CreatedAt != nil {
		utc := c.CreatedAt.UTC()
		c.CreatedAt = &utc
	}
	return nil
}
