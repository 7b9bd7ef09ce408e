package service

import (
	"errors"
	"fmt"

	"fleetops-backend/internal/database/models"
	apperrors "fleetops-backend/internal/errors"
	"fleetops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles the team catalog and the reconciliation engine
type TeamService struct {
	teamRepo     repository.TeamRepositoryInterface
	memberRepo   repository.CrewMemberRepositoryInterface
	overrideRepo repository.TeamDayOverrideRepositoryInterface
	membership   membershipResolver
	validator    *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	teamRepo repository.TeamRepositoryInterface,
	memberRepo repository.CrewMemberRepositoryInterface,
	overrideRepo repository.TeamDayOverrideRepositoryInterface,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		teamRepo:     teamRepo,
		memberRepo:   memberRepo,
		overrideRepo: overrideRepo,
		membership:   membershipResolver{memberRepo: memberRepo, overrideRepo: overrideRepo},
		validator:    validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name           string            `json:"name" validate:"required,max=100"`
	LeaderID       *uuid.UUID        `json:"leader_id,omitempty"`
	DriverID       *uuid.UUID        `json:"driver_id,omitempty"`
	GuardIDs       []uuid.UUID       `json:"guard_ids,omitempty"`
	DefaultTruckID string            `json:"default_truck_id,omitempty" validate:"max=20"`
	Status         models.TeamStatus `json:"status,omitempty"`
}

// UpdateTeamRequest represents the request to update a team's permanent
// composition and attributes
type UpdateTeamRequest struct {
	Name           *string            `json:"name,omitempty" validate:"omitempty,max=100"`
	LeaderID       *uuid.UUID         `json:"leader_id,omitempty"`
	DriverID       *uuid.UUID         `json:"driver_id,omitempty"`
	GuardIDs       []uuid.UUID        `json:"guard_ids,omitempty"`
	DefaultTruckID *string            `json:"default_truck_id,omitempty" validate:"omitempty,max=20"`
	Status         *models.TeamStatus `json:"status,omitempty"`
}

// UpdateTeamDayRequest represents a reconciliation: a day-scoped
// composition change addressing a flagged conflict
type UpdateTeamDayRequest struct {
	LeaderID *uuid.UUID  `json:"leader_id,omitempty"`
	DriverID *uuid.UUID  `json:"driver_id,omitempty"`
	GuardIDs []uuid.UUID `json:"guard_ids,omitempty"`
}

// TeamMemberSummary is a member reference inside a team response
type TeamMemberSummary struct {
	ID       uuid.UUID         `json:"id"`
	StaffID  string            `json:"staff_id"`
	FullName string            `json:"full_name"`
	Role     models.CrewRole   `json:"role"`
	Status   models.CrewStatus `json:"status"`
}

// TeamResponse represents a team at the API boundary
type TeamResponse struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Leader         *TeamMemberSummary  `json:"leader,omitempty"`
	Driver         *TeamMemberSummary  `json:"driver,omitempty"`
	Guards         []TeamMemberSummary `json:"guards"`
	DefaultTruckID string              `json:"default_truck_id,omitempty"`
	Status         models.TeamStatus   `json:"status"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// DayCompositionResponse is the member set on duty for one (team, date)
// after applying any day override
type DayCompositionResponse struct {
	TeamID     uuid.UUID           `json:"team_id"`
	Date       string              `json:"date"`
	Members    []TeamMemberSummary `json:"members"`
	Overridden bool                `json:"overridden"`
}

// CreateTeam creates a new team. Slot members must exist and their roles
// must fit the slot; an active team requires a driver.
func (s *TeamService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.TeamStatusActive
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if status == models.TeamStatusActive && req.DriverID == nil {
		return nil, apperrors.NewValidationError("driver_id", "an active team requires a driver")
	}

	if _, err := s.teamRepo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrTeamExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}

	if err := s.validateSlots(req.LeaderID, req.DriverID, req.GuardIDs); err != nil {
		return nil, err
	}

	guards, err := s.memberRepo.GetByIDs(req.GuardIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load guards: %w", err)
	}

	team := &models.Team{
		Name:           req.Name,
		LeaderID:       req.LeaderID,
		DriverID:       req.DriverID,
		DefaultTruckID: req.DefaultTruckID,
		Status:         status,
		Guards:         guards,
	}
	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	created, err := s.teamRepo.GetByID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload team: %w", err)
	}
	return toTeamResponse(created), nil
}

// GetTeamByID retrieves a team by ID
func (s *TeamService) GetTeamByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.teamRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return toTeamResponse(team), nil
}

// ListTeams retrieves teams with pagination
func (s *TeamService) ListTeams(page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	teams, total, err := s.teamRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}
	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateTeam updates the team's permanent composition and attributes
func (s *TeamService) UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teamRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.validateSlots(req.LeaderID, req.DriverID, req.GuardIDs); err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.LeaderID != nil {
		team.LeaderID = req.LeaderID
	}
	if req.DriverID != nil {
		team.DriverID = req.DriverID
	}
	if req.DefaultTruckID != nil {
		team.DefaultTruckID = *req.DefaultTruckID
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		team.Status = *req.Status
	}
	if team.Status == models.TeamStatusActive && team.DriverID == nil {
		return nil, apperrors.NewValidationError("driver_id", "an active team requires a driver")
	}

	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	if req.GuardIDs != nil {
		guards, err := s.memberRepo.GetByIDs(req.GuardIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load guards: %w", err)
		}
		if err := s.teamRepo.ReplaceGuards(team, guards); err != nil {
			return nil, fmt.Errorf("failed to replace guards: %w", err)
		}
	}

	updated, err := s.teamRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload team: %w", err)
	}
	return toTeamResponse(updated), nil
}

// DeleteTeam deletes a team
func (s *TeamService) DeleteTeam(id uuid.UUID) error {
	if _, err := s.teamRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}
	if err := s.teamRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// UpdateTeamForDay records a date-scoped composition override for the team.
// The permanent leader/driver/guard assignment is left untouched: the
// change applies to the single date only, which is what the reconciliation
// flow promises when it offers to fix one day's conflict. Conflict
// detection for that date evaluates the overridden membership, so a
// replaced member no longer appears. Repeated updates for the same day
// merge into one override row.
func (s *TeamService) UpdateTeamForDay(teamID uuid.UUID, date string, req *UpdateTeamDayRequest) (*DayCompositionResponse, error) {
	if !models.IsValidDay(date) {
		return nil, apperrors.ErrInvalidDay
	}
	if req.LeaderID == nil && req.DriverID == nil && req.GuardIDs == nil {
		return nil, apperrors.ErrEmptyDayUpdate
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.validateSlots(req.LeaderID, req.DriverID, req.GuardIDs); err != nil {
		return nil, err
	}

	override, err := s.overrideRepo.FindByTeamAndDate(teamID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load day override: %w", err)
	}
	if override == nil {
		override = &models.TeamDayOverride{TeamID: teamID, Date: date}
	}
	if req.LeaderID != nil {
		override.LeaderID = req.LeaderID
	}
	if req.DriverID != nil {
		override.DriverID = req.DriverID
	}
	if req.GuardIDs != nil {
		override.GuardIDs = models.UUIDSlice(req.GuardIDs)
	}
	if err := s.overrideRepo.Save(override); err != nil {
		return nil, fmt.Errorf("failed to save day override: %w", err)
	}

	return s.dayComposition(team, date)
}

// GetDayComposition returns the member set on duty for the team on one
// date, with any day override applied
func (s *TeamService) GetDayComposition(teamID uuid.UUID, date string) (*DayCompositionResponse, error) {
	if !models.IsValidDay(date) {
		return nil, apperrors.ErrInvalidDay
	}
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.dayComposition(team, date)
}

func (s *TeamService) dayComposition(team *models.Team, date string) (*DayCompositionResponse, error) {
	override, err := s.overrideRepo.FindByTeamAndDate(team.ID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load day override: %w", err)
	}
	members, err := s.membership.resolveWithOverride(team, override)
	if err != nil {
		return nil, err
	}

	summaries := make([]TeamMemberSummary, len(members))
	for i := range members {
		summaries[i] = toMemberSummary(&members[i])
	}
	return &DayCompositionResponse{
		TeamID:     team.ID,
		Date:       date,
		Members:    summaries,
		Overridden: override != nil,
	}, nil
}

// validateSlots checks that referenced members exist and their roles fit
// the slots they are placed into
func (s *TeamService) validateSlots(leaderID, driverID *uuid.UUID, guardIDs []uuid.UUID) error {
	if leaderID != nil {
		member, err := s.loadMember(*leaderID)
		if err != nil {
			return err
		}
		if !member.Role.CanLead() {
			return apperrors.ErrInvalidRole
		}
	}
	if driverID != nil {
		member, err := s.loadMember(*driverID)
		if err != nil {
			return err
		}
		if member.Role != models.CrewRoleDriver {
			return apperrors.ErrInvalidRole
		}
	}
	for _, guardID := range guardIDs {
		member, err := s.loadMember(guardID)
		if err != nil {
			return err
		}
		if member.Role != models.CrewRoleGuard {
			return apperrors.ErrInvalidRole
		}
	}
	return nil
}

func (s *TeamService) loadMember(id uuid.UUID) (*models.CrewMember, error) {
	member, err := s.memberRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify member: %w", err)
	}
	return member, nil
}

func toMemberSummary(member *models.CrewMember) TeamMemberSummary {
	return TeamMemberSummary{
		ID:       member.ID,
		StaffID:  member.StaffID,
		FullName: member.FullName,
		Role:     member.Role,
		Status:   member.Status,
	}
}

func toTeamResponse(team *models.Team) *TeamResponse {
	resp := &TeamResponse{
		ID:             team.ID,
		Name:           team.Name,
		DefaultTruckID: team.DefaultTruckID,
		Status:         team.Status,
		Guards:         []TeamMemberSummary{},
	}
	if team.Leader != nil {
		summary := toMemberSummary(team.Leader)
		resp.Leader = &summary
	}
	if team.Driver != nil {
		summary := toMemberSummary(team.Driver)
		resp.Driver = &summary
	}
	for i := range team.Guards {
		resp.Guards = append(resp.Guards, toMemberSummary(&team.Guards[i]))
	}
	return resp
}
