package models

import (
	"github.com/google/uuid"
)

// RosterEntry is a single crew member's schedule record for one calendar
// day: either a shift assignment or a leave record, never both. At most one
// entry exists per (member, date); the composite unique index backs the
// in-process checks so a shared database enforces the same invariant.
type RosterEntry struct {
	BaseModel
	MemberID  uuid.UUID   `json:"member_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_roster_entries_member_date" validate:"required"`
	Date      string      `json:"date" gorm:"size:10;not null;index;uniqueIndex:idx_roster_entries_member_date" validate:"required"`
	ShiftType ShiftType   `json:"shift_type,omitempty" gorm:"type:varchar(50)"`
	LeaveType LeaveType   `json:"leave_type,omitempty" gorm:"type:varchar(50)"`
	Source    EntrySource `json:"source" gorm:"type:varchar(50);not null" validate:"required"`
	// TeamID records provenance when the entry was expanded from a team
	// assignment. It is a weak link, not a strong pointer: the entry can
	// outlive or be edited independently of the team roster row.
	TeamID *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Member CrewMember `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RosterEntry
func (RosterEntry) TableName() string {
	return "roster_entries"
}

// IsLeave reports whether the entry is a leave record
func (e *RosterEntry) IsLeave() bool {
	return e.Source == EntrySourceLeave && e.LeaveType != ""
}
