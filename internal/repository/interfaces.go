package repository

import (
	"fleetops-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RosterEntryRepositoryInterface defines the interface for the individual
// roster entry store
type RosterEntryRepositoryInterface interface {
	Create(entry *models.RosterEntry) error
	GetByID(id uuid.UUID) (*models.RosterEntry, error)
	ExistsForMemberAndDate(memberID uuid.UUID, date string) (bool, error)
	FindByMemberAndDate(memberID uuid.UUID, date string) (*models.RosterEntry, error)
	FindByMemberDateRange(memberID uuid.UUID, from, to string) ([]models.RosterEntry, error)
	FindLeaves(memberIDs []uuid.UUID, from, to string) ([]models.RosterEntry, error)
	Delete(id uuid.UUID) error
	DeleteTeamSourced(teamID uuid.UUID, date string) error
	CountForMemberAndDate(memberID uuid.UUID, date string) (int64, error)
}

// TeamRosterRepositoryInterface defines the interface for the team roster store
type TeamRosterRepositoryInterface interface {
	Create(roster *models.TeamRoster) error
	GetByID(id uuid.UUID) (*models.TeamRoster, error)
	ExistsForTeamAndDate(teamID uuid.UUID, date string) (bool, error)
	FindByTeamAndDate(teamID uuid.UUID, date string) (*models.TeamRoster, error)
	FindByTeamDateRange(teamID uuid.UUID, from, to string) ([]models.TeamRoster, error)
	Update(roster *models.TeamRoster) error
	Delete(id uuid.UUID) error
	CountForTeamAndDate(teamID uuid.UUID, date string) (int64, error)
}

// CrewMemberRepositoryInterface defines the interface for crew member
// catalog operations
type CrewMemberRepositoryInterface interface {
	Create(member *models.CrewMember) error
	GetByID(id uuid.UUID) (*models.CrewMember, error)
	GetByStaffID(staffID string) (*models.CrewMember, error)
	GetByIDs(ids []uuid.UUID) ([]models.CrewMember, error)
	GetAll(status models.CrewStatus, limit, offset int) ([]models.CrewMember, int64, error)
	Update(member *models.CrewMember) error
	Delete(id uuid.UUID) error
	ReplaceDocuments(memberID uuid.UUID, docs []models.CrewDocument) error
}

// TeamRepositoryInterface defines the interface for team catalog operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	ReplaceGuards(team *models.Team, guards []models.CrewMember) error
	Delete(id uuid.UUID) error
}

// TeamDayOverrideRepositoryInterface defines the interface for date-scoped
// team composition overrides
type TeamDayOverrideRepositoryInterface interface {
	FindByTeamAndDate(teamID uuid.UUID, date string) (*models.TeamDayOverride, error)
	FindByTeamDateRange(teamID uuid.UUID, from, to string) ([]models.TeamDayOverride, error)
	Save(override *models.TeamDayOverride) error
	Delete(id uuid.UUID) error
}
