package testutils

import (
	"time"

	"fleetops-backend/internal/database/models"

	"github.com/google/uuid"
)

// CrewMemberFactory provides methods to create test CrewMember data
type CrewMemberFactory struct{}

// NewCrewMemberFactory creates a new CrewMemberFactory
func NewCrewMemberFactory() *CrewMemberFactory {
	return &CrewMemberFactory{}
}

// Create creates a test CrewMember with default values
func (f *CrewMemberFactory) Create() *models.CrewMember {
	id := uuid.New()
	// Unique staff id derived from the UUID to avoid collisions between tests
	staffID := "S" + id.String()[:8]

	return &models.CrewMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		StaffID:          staffID,
		FullName:         "Chan Tai Man",
		Role:             models.CrewRoleGuard,
		Status:           models.CrewStatusActive,
		Phone:            "+852-9123-4567",
		Email:            staffID + "@fleetops.test",
		JoinedDate:       "2023-01-16",
		ArmoredCertified: false,
	}
}

// WithRole sets a custom role for the crew member
func (f *CrewMemberFactory) WithRole(role models.CrewRole) *models.CrewMember {
	m := f.Create()
	m.Role = role
	return m
}

// WithStatus sets a custom status for the crew member
func (f *CrewMemberFactory) WithStatus(status models.CrewStatus) *models.CrewMember {
	m := f.Create()
	m.Status = status
	return m
}

// WithName sets a custom full name for the crew member
func (f *CrewMemberFactory) WithName(name string) *models.CrewMember {
	m := f.Create()
	m.FullName = name
	return m
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values. The member slots are
// empty; use WithCrew or assign ids directly.
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:           "Team " + id.String()[:8],
		DefaultTruckID: "GT-01",
		Status:         models.TeamStatusActive,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	t := f.Create()
	t.Name = name
	return t
}

// WithCrew sets the leader and driver slots for the team
func (f *TeamFactory) WithCrew(leaderID, driverID uuid.UUID) *models.Team {
	t := f.Create()
	t.LeaderID = &leaderID
	t.DriverID = &driverID
	return t
}

// RosterEntryFactory provides methods to create test RosterEntry data
type RosterEntryFactory struct{}

// NewRosterEntryFactory creates a new RosterEntryFactory
func NewRosterEntryFactory() *RosterEntryFactory {
	return &RosterEntryFactory{}
}

// Shift creates an individual shift entry for a member on a date
func (f *RosterEntryFactory) Shift(memberID uuid.UUID, date string, shift models.ShiftType) *models.RosterEntry {
	return &models.RosterEntry{
		MemberID:  memberID,
		Date:      date,
		ShiftType: shift,
		Source:    models.EntrySourceIndividual,
	}
}

// TeamShift creates a shift entry expanded from a team assignment
func (f *RosterEntryFactory) TeamShift(memberID, teamID uuid.UUID, date string, shift models.ShiftType) *models.RosterEntry {
	return &models.RosterEntry{
		MemberID:  memberID,
		Date:      date,
		ShiftType: shift,
		Source:    models.EntrySourceTeam,
		TeamID:    &teamID,
	}
}

// Leave creates a leave entry for a member on a date
func (f *RosterEntryFactory) Leave(memberID uuid.UUID, date string, leave models.LeaveType) *models.RosterEntry {
	return &models.RosterEntry{
		MemberID:  memberID,
		Date:      date,
		LeaveType: leave,
		Source:    models.EntrySourceLeave,
	}
}

// TeamRosterFactory provides methods to create test TeamRoster data
type TeamRosterFactory struct{}

// NewTeamRosterFactory creates a new TeamRosterFactory
func NewTeamRosterFactory() *TeamRosterFactory {
	return &TeamRosterFactory{}
}

// Create creates a scheduled team roster row for a team on a date
func (f *TeamRosterFactory) Create(teamID uuid.UUID, date string, shift models.ShiftType) *models.TeamRoster {
	return &models.TeamRoster{
		TeamID:    teamID,
		Date:      date,
		ShiftType: shift,
		Status:    models.TeamRosterStatusScheduled,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	CrewMember  *CrewMemberFactory
	Team        *TeamFactory
	RosterEntry *RosterEntryFactory
	TeamRoster  *TeamRosterFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		CrewMember:  NewCrewMemberFactory(),
		Team:        NewTeamFactory(),
		RosterEntry: NewRosterEntryFactory(),
		TeamRoster:  NewTeamRosterFactory(),
	}
}

// CreateFullTeam builds a leader, a driver, two guards and a team wired to
// all four. Nothing is persisted; callers save the members first, then the
// team, then attach the guards association.
func (fs *FactorySet) CreateFullTeam() (*models.Team, *models.CrewMember, *models.CrewMember, []*models.CrewMember) {
	leader := fs.CrewMember.WithRole(models.CrewRoleLeader)
	driver := fs.CrewMember.WithRole(models.CrewRoleDriver)
	guards := []*models.CrewMember{
		fs.CrewMember.WithRole(models.CrewRoleGuard),
		fs.CrewMember.WithRole(models.CrewRoleGuard),
	}

	team := fs.Team.WithCrew(leader.ID, driver.ID)
	for _, g := range guards {
		team.Guards = append(team.Guards, *g)
	}
	return team, leader, driver, guards
}
