package service

import (
	"fmt"

	"fleetops-backend/internal/database/models"
	"fleetops-backend/internal/repository"

	"github.com/google/uuid"
)

// membershipResolver computes the member set filling a team's slots on a
// given day. Membership is always resolved at call time against the team's
// current composition plus any day override; it is never snapshotted when a
// shift is assigned, so later team edits are reflected on past and future
// roster days alike.
type membershipResolver struct {
	memberRepo   repository.CrewMemberRepositoryInterface
	overrideRepo repository.TeamDayOverrideRepositoryInterface
}

// resolveDay returns the unique members on duty for the team on the date:
// leader (if any), driver (if any) and all guards, with slots replaced by
// the day's override where one is recorded.
func (r *membershipResolver) resolveDay(team *models.Team, date string) ([]models.CrewMember, error) {
	override, err := r.overrideRepo.FindByTeamAndDate(team.ID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load day override: %w", err)
	}
	return r.resolveWithOverride(team, override)
}

func (r *membershipResolver) resolveWithOverride(team *models.Team, override *models.TeamDayOverride) ([]models.CrewMember, error) {
	leaderID := team.LeaderID
	driverID := team.DriverID
	guardIDs := make([]uuid.UUID, 0, len(team.Guards))
	for _, g := range team.Guards {
		guardIDs = append(guardIDs, g.ID)
	}

	if override != nil {
		if override.LeaderID != nil {
			leaderID = override.LeaderID
		}
		if override.DriverID != nil {
			driverID = override.DriverID
		}
		if override.GuardIDs != nil {
			guardIDs = override.GuardIDs
		}
	}

	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	add := func(id uuid.UUID) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if leaderID != nil {
		add(*leaderID)
	}
	if driverID != nil {
		add(*driverID)
	}
	for _, id := range guardIDs {
		add(id)
	}

	members, err := r.memberRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}
	return members, nil
}
