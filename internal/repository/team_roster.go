package repository

import (
	"fleetops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRosterRepository is the store for team-level shift assignments,
// keyed by (team, date)
type TeamRosterRepository struct {
	db *gorm.DB
}

// NewTeamRosterRepository creates a new team roster repository
func NewTeamRosterRepository(db *gorm.DB) *TeamRosterRepository {
	return &TeamRosterRepository{db: db}
}

// Create inserts a new team roster row
func (r *TeamRosterRepository) Create(roster *models.TeamRoster) error {
	return r.db.Create(roster).Error
}

// GetByID retrieves a team roster row by ID
func (r *TeamRosterRepository) GetByID(id uuid.UUID) (*models.TeamRoster, error) {
	var roster models.TeamRoster
	err := r.db.First(&roster, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &roster, nil
}

// ExistsForTeamAndDate reports whether the team already has a roster row on
// the given date
func (r *TeamRosterRepository) ExistsForTeamAndDate(teamID uuid.UUID, date string) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamRoster{}).
		Where("team_id = ? AND date = ?", teamID, date).
		Count(&count).Error
	return count > 0, err
}

// FindByTeamAndDate retrieves the team's roster row for one date
func (r *TeamRosterRepository) FindByTeamAndDate(teamID uuid.UUID, date string) (*models.TeamRoster, error) {
	var roster models.TeamRoster
	err := r.db.First(&roster, "team_id = ? AND date = ?", teamID, date).Error
	if err != nil {
		return nil, err
	}
	return &roster, nil
}

// FindByTeamDateRange retrieves all of the team's roster rows with from <= date <= to
func (r *TeamRosterRepository) FindByTeamDateRange(teamID uuid.UUID, from, to string) ([]models.TeamRoster, error) {
	var rosters []models.TeamRoster
	err := r.db.Where("team_id = ? AND date >= ? AND date <= ?", teamID, from, to).
		Order("date ASC").
		Find(&rosters).Error
	return rosters, err
}

// Update persists changes to a team roster row
func (r *TeamRosterRepository) Update(roster *models.TeamRoster) error {
	return r.db.Save(roster).Error
}

// Delete removes a team roster row by id. Deleting a non-existent id is a
// no-op, not an error.
func (r *TeamRosterRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamRoster{}, "id = ?", id).Error
}

// CountForTeamAndDate returns the number of roster rows the team holds on
// the date. Under the uniqueness invariant this is always 0 or 1.
func (r *TeamRosterRepository) CountForTeamAndDate(teamID uuid.UUID, date string) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamRoster{}).
		Where("team_id = ? AND date = ?", teamID, date).
		Count(&count).Error
	return count, err
}
