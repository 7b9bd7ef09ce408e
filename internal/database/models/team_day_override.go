package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// UUIDSlice stores a list of UUIDs as a JSON array column
type UUIDSlice []uuid.UUID

// Value implements driver.Valuer
func (s UUIDSlice) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (s *UUIDSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into UUIDSlice", value)
	}
}

// TeamDayOverride is a date-scoped replacement of team composition,
// recorded when a flagged conflict is reconciled. Only the slots it sets
// override the team's permanent membership, and only for its single date;
// the permanent leader/driver/guard assignment is never rewritten.
// At most one override exists per (team, date); repeated reconciliations
// of the same day update the same row.
type TeamDayOverride struct {
	BaseModel
	TeamID   uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_day_overrides_team_date" validate:"required"`
	Date     string     `json:"date" gorm:"size:10;not null;uniqueIndex:idx_team_day_overrides_team_date" validate:"required"`
	LeaderID *uuid.UUID `json:"leader_id,omitempty" gorm:"type:uuid"`
	DriverID *uuid.UUID `json:"driver_id,omitempty" gorm:"type:uuid"`
	GuardIDs UUIDSlice  `json:"guard_ids,omitempty" gorm:"type:jsonb"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamDayOverride
func (TeamDayOverride) TableName() string {
	return "team_day_overrides"
}
