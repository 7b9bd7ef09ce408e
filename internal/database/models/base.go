package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// DayFormat is the wire and storage format for calendar days. Days carry no
// time or timezone component anywhere in the system, so they are stored as
// plain YYYY-MM-DD strings; ISO ordering makes range queries lexicographic.
const DayFormat = "2006-01-02"

// IsValidDay reports whether s is a well-formed YYYY-MM-DD calendar day
func IsValidDay(s string) bool {
	_, err := time.Parse(DayFormat, s)
	return err == nil
}
