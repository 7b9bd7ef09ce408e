package service

import (
	"errors"
	"fmt"

	"fleetops-backend/internal/database/models"
	apperrors "fleetops-backend/internal/errors"
	"fleetops-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConflictService detects days where a team is scheduled to work but one of
// its current members has recorded leave. Detection is a pure read: every
// call recomputes the set from the two stores and the team's live
// composition, and no resolved/acknowledged state is persisted here. Once a
// conflict has been acted on, acknowledgment is a display concern owned by
// the caller.
type ConflictService struct {
	rosterRepo     repository.RosterEntryRepositoryInterface
	teamRosterRepo repository.TeamRosterRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	memberRepo     repository.CrewMemberRepositoryInterface
	overrideRepo   repository.TeamDayOverrideRepositoryInterface
	membership     membershipResolver
}

// NewConflictService creates a new conflict service
func NewConflictService(
	rosterRepo repository.RosterEntryRepositoryInterface,
	teamRosterRepo repository.TeamRosterRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	memberRepo repository.CrewMemberRepositoryInterface,
	overrideRepo repository.TeamDayOverrideRepositoryInterface,
) *ConflictService {
	return &ConflictService{
		rosterRepo:     rosterRepo,
		teamRosterRepo: teamRosterRepo,
		teamRepo:       teamRepo,
		memberRepo:     memberRepo,
		overrideRepo:   overrideRepo,
		membership:     membershipResolver{memberRepo: memberRepo, overrideRepo: overrideRepo},
	}
}

// ConflictResponse is one (date, member) pair: the team is scheduled to
// work on the date but this member, currently on the team, is on leave
type ConflictResponse struct {
	Date      string           `json:"date"`
	MemberID  uuid.UUID        `json:"member_id"`
	StaffID   string           `json:"staff_id"`
	FullName  string           `json:"full_name"`
	LeaveType models.LeaveType `json:"leave_type"`
}

// GetConflicts computes the conflicts for a team over an inclusive date
// range. An empty result means no conflict.
func (s *ConflictService) GetConflicts(teamID uuid.UUID, from, to string) ([]ConflictResponse, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	rosters, err := s.teamRosterRepo.FindByTeamDateRange(teamID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load team roster: %w", err)
	}
	if len(rosters) == 0 {
		return []ConflictResponse{}, nil
	}

	overrides, err := s.overrideRepo.FindByTeamDateRange(teamID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load day overrides: %w", err)
	}
	overrideByDate := make(map[string]*models.TeamDayOverride, len(overrides))
	for i := range overrides {
		overrideByDate[overrides[i].Date] = &overrides[i]
	}

	// Resolve membership per scheduled day, then match against leave
	// entries fetched in one query for the union of involved members.
	type dayMembers struct {
		date    string
		members []models.CrewMember
	}
	var days []dayMembers
	involved := make(map[uuid.UUID]bool)
	for _, roster := range rosters {
		members, err := s.membership.resolveWithOverride(team, overrideByDate[roster.Date])
		if err != nil {
			return nil, err
		}
		days = append(days, dayMembers{date: roster.Date, members: members})
		for _, m := range members {
			involved[m.ID] = true
		}
	}

	memberIDs := make([]uuid.UUID, 0, len(involved))
	for id := range involved {
		memberIDs = append(memberIDs, id)
	}
	leaves, err := s.rosterRepo.FindLeaves(memberIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave entries: %w", err)
	}

	leaveByKey := make(map[string]models.LeaveType, len(leaves))
	for _, leave := range leaves {
		if !leave.IsLeave() {
			continue
		}
		leaveByKey[leave.Date+"/"+leave.MemberID.String()] = leave.LeaveType
	}

	conflicts := []ConflictResponse{}
	for _, day := range days {
		for _, member := range day.members {
			leaveType, ok := leaveByKey[day.date+"/"+member.ID.String()]
			if !ok {
				continue
			}
			conflicts = append(conflicts, ConflictResponse{
				Date:      day.date,
				MemberID:  member.ID,
				StaffID:   member.StaffID,
				FullName:  member.FullName,
				LeaveType: leaveType,
			})
		}
	}
	return conflicts, nil
}
