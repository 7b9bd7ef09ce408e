package models

// ShiftType defines the shift blocks a team or member can be rostered to
type ShiftType string

const (
	ShiftTypeEarly  ShiftType = "early"
	ShiftTypeNormal ShiftType = "normal"
	ShiftTypeNight  ShiftType = "night"
)

// LeaveType defines the leave categories a crew member can record
type LeaveType string

const (
	LeaveTypeAnnual       LeaveType = "annual_leave"
	LeaveTypeCompensation LeaveType = "compensation_leave"
)

// EntrySource records how a roster entry was created: expanded from a team
// assignment, assigned directly to the member, or a leave record
type EntrySource string

const (
	EntrySourceTeam       EntrySource = "team"
	EntrySourceIndividual EntrySource = "individual"
	EntrySourceLeave      EntrySource = "leave"
)

// TeamRosterStatus defines the lifecycle of a team-level shift assignment
type TeamRosterStatus string

const (
	TeamRosterStatusScheduled TeamRosterStatus = "scheduled"
	TeamRosterStatusCompleted TeamRosterStatus = "completed"
	TeamRosterStatusCancelled TeamRosterStatus = "cancelled"
)

// IsValid checks if the ShiftType is valid
func (s ShiftType) IsValid() bool {
	switch s {
	case ShiftTypeEarly, ShiftTypeNormal, ShiftTypeNight:
		return true
	}
	return false
}

// IsValid checks if the LeaveType is valid
func (l LeaveType) IsValid() bool {
	switch l {
	case LeaveTypeAnnual, LeaveTypeCompensation:
		return true
	}
	return false
}

// IsValid checks if the EntrySource is valid
func (s EntrySource) IsValid() bool {
	switch s {
	case EntrySourceTeam, EntrySourceIndividual, EntrySourceLeave:
		return true
	}
	return false
}

// IsValid checks if the TeamRosterStatus is valid
func (s TeamRosterStatus) IsValid() bool {
	switch s {
	case TeamRosterStatusScheduled, TeamRosterStatusCompleted, TeamRosterStatusCancelled:
		return true
	}
	return false
}
