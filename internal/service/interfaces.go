package service

import (
	"fleetops-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CrewMemberServiceInterface defines the interface for crew member service
type CrewMemberServiceInterface interface {
	CreateCrewMember(req *CreateCrewMemberRequest) (*CrewMemberResponse, error)
	GetCrewMemberByID(id uuid.UUID) (*CrewMemberResponse, error)
	ListCrewMembers(status models.CrewStatus, page, pageSize int) (*CrewMemberListResponse, error)
	UpdateCrewMember(id uuid.UUID, req *UpdateCrewMemberRequest) (*CrewMemberResponse, error)
	DeleteCrewMember(id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(req *CreateTeamRequest) (*TeamResponse, error)
	GetTeamByID(id uuid.UUID) (*TeamResponse, error)
	ListTeams(page, pageSize int) (*TeamListResponse, error)
	UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(id uuid.UUID) error
	UpdateTeamForDay(teamID uuid.UUID, date string, req *UpdateTeamDayRequest) (*DayCompositionResponse, error)
	GetDayComposition(teamID uuid.UUID, date string) (*DayCompositionResponse, error)
}

// RosterServiceInterface defines the interface for the assignment engine
type RosterServiceInterface interface {
	AssignTeamShift(teamID uuid.UUID, req *AssignTeamShiftRequest) (*BulkAssignResponse, error)
	RemoveTeamShift(teamRosterID uuid.UUID) error
	AddIndividualLeave(memberID uuid.UUID, req *AddLeaveRequest) (*RosterEntryResponse, error)
	AssignMemberShift(memberID uuid.UUID, req *AddShiftRequest) (*RosterEntryResponse, error)
	RemoveLeave(entryID uuid.UUID) error
	RemoveRosterEntry(entryID uuid.UUID) error
	GetMemberRoster(memberID uuid.UUID, from, to string) ([]RosterEntryResponse, error)
	GetTeamRoster(teamID uuid.UUID, from, to string) ([]TeamRosterResponse, error)
	SetTeamRosterStatus(teamRosterID uuid.UUID, status models.TeamRosterStatus) (*TeamRosterResponse, error)
}

// ConflictServiceInterface defines the interface for conflict detection
type ConflictServiceInterface interface {
	GetConflicts(teamID uuid.UUID, from, to string) ([]ConflictResponse, error)
}
