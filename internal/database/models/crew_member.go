package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CrewRole represents the position a crew member can fill on a team
type CrewRole string

const (
	CrewRoleSeniorCrewLeader CrewRole = "senior_crew_leader"
	CrewRoleLeader           CrewRole = "leader"
	CrewRoleDriver           CrewRole = "driver"
	CrewRoleGuard            CrewRole = "guard"
)

// CrewStatus represents the lifecycle status of a crew member
type CrewStatus string

const (
	CrewStatusActive   CrewStatus = "active"
	CrewStatusOnLeave  CrewStatus = "on_leave"
	CrewStatusInactive CrewStatus = "inactive"
)

// IsValid checks if the CrewRole is valid
func (r CrewRole) IsValid() bool {
	switch r {
	case CrewRoleSeniorCrewLeader, CrewRoleLeader, CrewRoleDriver, CrewRoleGuard:
		return true
	}
	return false
}

// CanLead reports whether the role qualifies for the leader slot of a team
func (r CrewRole) CanLead() bool {
	return r == CrewRoleLeader || r == CrewRoleSeniorCrewLeader
}

// IsValid checks if the CrewStatus is valid
func (s CrewStatus) IsValid() bool {
	switch s {
	case CrewStatusActive, CrewStatusOnLeave, CrewStatusInactive:
		return true
	}
	return false
}

// CrewMember represents a rosterable member of the vehicle crew fleet
type CrewMember struct {
	BaseModel
	StaffID          string          `json:"staff_id" gorm:"not null;size:20;uniqueIndex" validate:"required,max=20"`
	FullName         string          `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Role             CrewRole        `json:"role" gorm:"type:varchar(50);not null;default:'guard'" validate:"required"`
	Status           CrewStatus      `json:"status" gorm:"type:varchar(50);not null;default:'active'"`
	Phone            string          `json:"phone" gorm:"size:20"`
	Email            string          `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	JoinedDate       string          `json:"joined_date" gorm:"size:10"`
	ArmoredCertified bool            `json:"armored_certified" gorm:"default:false"`
	Skills           json.RawMessage `json:"skills,omitempty" gorm:"type:jsonb"`

	// Relationships
	Documents     []CrewDocument `json:"documents,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	RosterEntries []RosterEntry  `json:"roster_entries,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CrewMember
func (CrewMember) TableName() string {
	return "crew_members"
}

// CrewDocument represents a license or certificate held by a crew member
type CrewDocument struct {
	BaseModel
	MemberID   uuid.UUID `json:"member_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type       string    `json:"type" gorm:"not null;size:50" validate:"required,max=50"`
	Number     string    `json:"number" gorm:"not null;size:50" validate:"required,max=50"`
	ExpiryDate string    `json:"expiry_date" gorm:"size:10"`
}

// TableName returns the table name for CrewDocument
func (CrewDocument) TableName() string {
	return "crew_documents"
}
