package service

import (
	"errors"
	"fmt"

	"fleetops-backend/internal/database/models"
	apperrors "fleetops-backend/internal/errors"
	"fleetops-backend/internal/logger"
	"fleetops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterService is the assignment engine: it translates a single user
// intent into a consistent set of mutations across the roster entry store
// and the team roster store.
type RosterService struct {
	rosterRepo     repository.RosterEntryRepositoryInterface
	teamRosterRepo repository.TeamRosterRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	memberRepo     repository.CrewMemberRepositoryInterface
	overrideRepo   repository.TeamDayOverrideRepositoryInterface
	membership     membershipResolver
	validator      *validator.Validate
}

// NewRosterService creates a new roster service
func NewRosterService(
	rosterRepo repository.RosterEntryRepositoryInterface,
	teamRosterRepo repository.TeamRosterRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	memberRepo repository.CrewMemberRepositoryInterface,
	overrideRepo repository.TeamDayOverrideRepositoryInterface,
	validator *validator.Validate,
) *RosterService {
	return &RosterService{
		rosterRepo:     rosterRepo,
		teamRosterRepo: teamRosterRepo,
		teamRepo:       teamRepo,
		memberRepo:     memberRepo,
		overrideRepo:   overrideRepo,
		membership:     membershipResolver{memberRepo: memberRepo, overrideRepo: overrideRepo},
		validator:      validator,
	}
}

// AssignTeamShiftRequest represents a bulk team shift assignment
type AssignTeamShiftRequest struct {
	Dates []string         `json:"dates" validate:"required,min=1,dive,required"`
	Shift models.ShiftType `json:"shift" validate:"required"`
}

// BulkAssignResponse reports which of the requested dates were actually
// applied; occupied dates are skipped, not overwritten
type BulkAssignResponse struct {
	TeamID    uuid.UUID `json:"team_id"`
	Requested int       `json:"requested"`
	Applied   int       `json:"applied"`
	Dates     []string  `json:"dates"`
	Skipped   []string  `json:"skipped,omitempty"`
}

// RosterEntryResponse represents a roster entry at the API boundary
type RosterEntryResponse struct {
	ID        uuid.UUID          `json:"id"`
	MemberID  uuid.UUID          `json:"member_id"`
	Date      string             `json:"date"`
	ShiftType models.ShiftType   `json:"shift_type,omitempty"`
	LeaveType models.LeaveType   `json:"leave_type,omitempty"`
	Source    models.EntrySource `json:"source"`
	TeamID    *uuid.UUID         `json:"team_id,omitempty"`
}

// TeamRosterResponse represents a team roster row at the API boundary
type TeamRosterResponse struct {
	ID        uuid.UUID               `json:"id"`
	TeamID    uuid.UUID               `json:"team_id"`
	Date      string                  `json:"date"`
	ShiftType models.ShiftType        `json:"shift_type"`
	Status    models.TeamRosterStatus `json:"status"`
}

// AssignTeamShift applies a shift block to the team for each requested date.
// Dates that already carry a team roster row are skipped rather than
// overwritten; the caller learns which dates were applied. For each applied
// date the assignment expands to member-level entries for the team's
// current leader, driver and guards, except members who already hold any
// entry that day: an existing individual entry or leave is never replaced
// by a team expansion (last writer does not win over existing).
func (s *RosterService) AssignTeamShift(teamID uuid.UUID, req *AssignTeamShiftRequest) (*BulkAssignResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Shift.IsValid() {
		return nil, apperrors.ErrInvalidShiftType
	}
	for _, d := range req.Dates {
		if !models.IsValidDay(d) {
			return nil, apperrors.ErrInvalidDay
		}
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	resp := &BulkAssignResponse{TeamID: teamID, Requested: 0, Dates: []string{}}
	seen := make(map[string]bool)

	for _, date := range req.Dates {
		if seen[date] {
			continue
		}
		seen[date] = true
		resp.Requested++

		occupied, err := s.teamRosterRepo.ExistsForTeamAndDate(teamID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to check team roster: %w", err)
		}
		if occupied {
			resp.Skipped = append(resp.Skipped, date)
			continue
		}

		roster := &models.TeamRoster{
			TeamID:    teamID,
			Date:      date,
			ShiftType: req.Shift,
			Status:    models.TeamRosterStatusScheduled,
		}
		if err := s.teamRosterRepo.Create(roster); err != nil {
			return nil, fmt.Errorf("failed to create team roster: %w", err)
		}

		members, err := s.membership.resolveDay(team, date)
		if err != nil {
			return nil, err
		}
		for _, member := range members {
			if err := s.expandMemberEntry(member.ID, teamID, date, req.Shift); err != nil {
				return nil, err
			}
		}

		resp.Applied++
		resp.Dates = append(resp.Dates, date)
	}

	logger.New().WithFields(map[string]interface{}{
		"team_id": teamID,
		"shift":   req.Shift,
		"applied": resp.Applied,
		"skipped": len(resp.Skipped),
	}).Info("team shift block applied")

	return resp, nil
}

// expandMemberEntry creates the team-sourced entry for one member and date,
// leaving any existing entry for that day untouched
func (s *RosterService) expandMemberEntry(memberID, teamID uuid.UUID, date string, shift models.ShiftType) error {
	occupied, err := s.rosterRepo.ExistsForMemberAndDate(memberID, date)
	if err != nil {
		return fmt.Errorf("failed to check roster entry: %w", err)
	}
	if occupied {
		return nil
	}

	entry := &models.RosterEntry{
		MemberID:  memberID,
		Date:      date,
		ShiftType: shift,
		Source:    models.EntrySourceTeam,
		TeamID:    &teamID,
	}
	if err := s.rosterRepo.Create(entry); err != nil {
		return fmt.Errorf("failed to create roster entry: %w", err)
	}
	return nil
}

// RemoveTeamShift deletes a team roster row and cascades to the member
// entries it produced. Only entries matching the exact (team id, date,
// source=team) key are removed; individually-assigned or leave entries on
// the same date are never touched. Removing an already-removed row is a
// no-op.
func (s *RosterService) RemoveTeamShift(teamRosterID uuid.UUID) error {
	roster, err := s.teamRosterRepo.GetByID(teamRosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load team roster: %w", err)
	}

	if err := s.teamRosterRepo.Delete(roster.ID); err != nil {
		return fmt.Errorf("failed to delete team roster: %w", err)
	}
	if err := s.rosterRepo.DeleteTeamSourced(roster.TeamID, roster.Date); err != nil {
		return fmt.Errorf("failed to cascade roster entries: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"team_id": roster.TeamID,
		"date":    roster.Date,
	}).Info("team shift removed with its member entries")

	return nil
}

// AddLeaveRequest represents a request to record leave for a member
type AddLeaveRequest struct {
	Date      string           `json:"date" validate:"required"`
	LeaveType models.LeaveType `json:"leave_type" validate:"required"`
}

// AddIndividualLeave records a leave entry for the member. Leave cannot be
// layered onto an existing shift or another leave: if the member already
// holds any entry on the date the request is rejected with an occupied-date
// error even though the UI should have pre-filtered.
func (s *RosterService) AddIndividualLeave(memberID uuid.UUID, req *AddLeaveRequest) (*RosterEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.LeaveType.IsValid() {
		return nil, apperrors.ErrInvalidLeaveType
	}
	if !models.IsValidDay(req.Date) {
		return nil, apperrors.ErrInvalidDay
	}

	if _, err := s.memberRepo.GetByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify member: %w", err)
	}

	occupied, err := s.rosterRepo.ExistsForMemberAndDate(memberID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check roster entry: %w", err)
	}
	if occupied {
		return nil, apperrors.NewOccupiedDateError(memberID.String(), req.Date)
	}

	entry := &models.RosterEntry{
		MemberID:  memberID,
		Date:      req.Date,
		LeaveType: req.LeaveType,
		Source:    models.EntrySourceLeave,
	}
	if err := s.rosterRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create leave entry: %w", err)
	}

	return toRosterEntryResponse(entry), nil
}

// AddShiftRequest represents a request to assign a shift directly to a member
type AddShiftRequest struct {
	Date  string           `json:"date" validate:"required"`
	Shift models.ShiftType `json:"shift" validate:"required"`
}

// AssignMemberShift assigns a shift directly to one member for one date,
// independent of any team. The date must be free; nothing is overwritten.
func (s *RosterService) AssignMemberShift(memberID uuid.UUID, req *AddShiftRequest) (*RosterEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Shift.IsValid() {
		return nil, apperrors.ErrInvalidShiftType
	}
	if !models.IsValidDay(req.Date) {
		return nil, apperrors.ErrInvalidDay
	}

	if _, err := s.memberRepo.GetByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify member: %w", err)
	}

	occupied, err := s.rosterRepo.ExistsForMemberAndDate(memberID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check roster entry: %w", err)
	}
	if occupied {
		return nil, apperrors.NewConflictError("roster entry",
			fmt.Sprintf("member %s on %s", memberID, req.Date))
	}

	entry := &models.RosterEntry{
		MemberID:  memberID,
		Date:      req.Date,
		ShiftType: req.Shift,
		Source:    models.EntrySourceIndividual,
	}
	if err := s.rosterRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create roster entry: %w", err)
	}

	return toRosterEntryResponse(entry), nil
}

// RemoveLeave deletes a leave entry. Missing ids and entries that are not
// actually leave records are silently ignored, mirroring the UI's filter of
// leaveType and source before allowing deletion.
func (s *RosterService) RemoveLeave(entryID uuid.UUID) error {
	entry, err := s.rosterRepo.GetByID(entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load roster entry: %w", err)
	}
	if !entry.IsLeave() {
		return nil
	}
	if err := s.rosterRepo.Delete(entry.ID); err != nil {
		return fmt.Errorf("failed to delete leave entry: %w", err)
	}
	return nil
}

// RemoveRosterEntry deletes any roster entry by id; missing ids are a no-op
func (s *RosterService) RemoveRosterEntry(entryID uuid.UUID) error {
	if err := s.rosterRepo.Delete(entryID); err != nil {
		return fmt.Errorf("failed to delete roster entry: %w", err)
	}
	return nil
}

// GetMemberRoster returns the member's entries for an inclusive date range
func (s *RosterService) GetMemberRoster(memberID uuid.UUID, from, to string) ([]RosterEntryResponse, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if _, err := s.memberRepo.GetByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify member: %w", err)
	}

	entries, err := s.rosterRepo.FindByMemberDateRange(memberID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get member roster: %w", err)
	}

	responses := make([]RosterEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *toRosterEntryResponse(&entries[i])
	}
	return responses, nil
}

// GetTeamRoster returns the team's roster rows for an inclusive date range
func (s *RosterService) GetTeamRoster(teamID uuid.UUID, from, to string) ([]TeamRosterResponse, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	rosters, err := s.teamRosterRepo.FindByTeamDateRange(teamID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get team roster: %w", err)
	}

	responses := make([]TeamRosterResponse, len(rosters))
	for i, roster := range rosters {
		responses[i] = TeamRosterResponse{
			ID:        roster.ID,
			TeamID:    roster.TeamID,
			Date:      roster.Date,
			ShiftType: roster.ShiftType,
			Status:    roster.Status,
		}
	}
	return responses, nil
}

// SetTeamRosterStatus updates the status field of a team roster row.
// Transition authority is external; the engine only stores the field.
func (s *RosterService) SetTeamRosterStatus(teamRosterID uuid.UUID, status models.TeamRosterStatus) (*TeamRosterResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	roster, err := s.teamRosterRepo.GetByID(teamRosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamRosterNotFound
		}
		return nil, fmt.Errorf("failed to load team roster: %w", err)
	}

	roster.Status = status
	if err := s.teamRosterRepo.Update(roster); err != nil {
		return nil, fmt.Errorf("failed to update team roster: %w", err)
	}

	return &TeamRosterResponse{
		ID:        roster.ID,
		TeamID:    roster.TeamID,
		Date:      roster.Date,
		ShiftType: roster.ShiftType,
		Status:    roster.Status,
	}, nil
}

func toRosterEntryResponse(entry *models.RosterEntry) *RosterEntryResponse {
	return &RosterEntryResponse{
		ID:        entry.ID,
		MemberID:  entry.MemberID,
		Date:      entry.Date,
		ShiftType: entry.ShiftType,
		LeaveType: entry.LeaveType,
		Source:    entry.Source,
		TeamID:    entry.TeamID,
	}
}

func validateRange(from, to string) error {
	if !models.IsValidDay(from) || !models.IsValidDay(to) {
		return apperrors.ErrInvalidDay
	}
	if from > to {
		return apperrors.ErrInvalidDateRange
	}
	return nil
}
