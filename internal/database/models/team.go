package models

import (
	"github.com/google/uuid"
)

// TeamStatus represents the lifecycle status of a team
type TeamStatus string

const (
	TeamStatusActive   TeamStatus = "active"
	TeamStatusInactive TeamStatus = "inactive"
)

// IsValid checks if the TeamStatus is valid
func (s TeamStatus) IsValid() bool {
	switch s {
	case TeamStatusActive, TeamStatusInactive:
		return true
	}
	return false
}

// Team represents a truck crew: an optional leader, a driver (required while
// the team is active) and zero or more guards. The member slots are weak
// references; the team does not own member lifecycle.
type Team struct {
	BaseModel
	Name           string     `json:"name" gorm:"not null;size:100;uniqueIndex" validate:"required,max=100"`
	LeaderID       *uuid.UUID `json:"leader_id,omitempty" gorm:"type:uuid;index"`
	DriverID       *uuid.UUID `json:"driver_id,omitempty" gorm:"type:uuid;index"`
	DefaultTruckID string     `json:"default_truck_id,omitempty" gorm:"size:20"`
	Status         TeamStatus `json:"status" gorm:"type:varchar(50);not null;default:'active'"`

	// Relationships
	Leader *CrewMember  `json:"leader,omitempty" gorm:"foreignKey:LeaderID;constraint:OnDelete:SET NULL"`
	Driver *CrewMember  `json:"driver,omitempty" gorm:"foreignKey:DriverID;constraint:OnDelete:SET NULL"`
	Guards []CrewMember `json:"guards,omitempty" gorm:"many2many:team_guards"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// MemberIDs returns the ids of every member currently filling a slot on the
// team: leader (if set), driver (if set) and all guards, unique by id.
func (t *Team) MemberIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	add := func(id uuid.UUID) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if t.LeaderID != nil {
		add(*t.LeaderID)
	}
	if t.DriverID != nil {
		add(*t.DriverID)
	}
	for _, g := range t.Guards {
		add(g.ID)
	}
	return ids
}
