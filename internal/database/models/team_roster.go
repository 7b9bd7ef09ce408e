package models

import (
	"github.com/google/uuid"
)

// TeamRoster is a team-level shift assignment for one calendar day. It is
// the logical parent of the member-level roster entries created when the
// assignment was expanded; the link is the entries' source=team tag plus
// team id, not a foreign key. At most one row exists per (team, date).
type TeamRoster struct {
	BaseModel
	TeamID    uuid.UUID        `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_rosters_team_date" validate:"required"`
	Date      string           `json:"date" gorm:"size:10;not null;index;uniqueIndex:idx_team_rosters_team_date" validate:"required"`
	ShiftType ShiftType        `json:"shift_type" gorm:"type:varchar(50);not null" validate:"required"`
	Status    TeamRosterStatus `json:"status" gorm:"type:varchar(50);not null;default:'scheduled'"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamRoster
func (TeamRoster) TableName() string {
	return "team_rosters"
}
