package repository

import (
	"errors"

	"fleetops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamDayOverrideRepository handles database operations for date-scoped
// team composition overrides
type TeamDayOverrideRepository struct {
	db *gorm.DB
}

// NewTeamDayOverrideRepository creates a new team day override repository
func NewTeamDayOverrideRepository(db *gorm.DB) *TeamDayOverrideRepository {
	return &TeamDayOverrideRepository{db: db}
}

// FindByTeamAndDate retrieves the override for one (team, date), or nil
// when the day has none
func (r *TeamDayOverrideRepository) FindByTeamAndDate(teamID uuid.UUID, date string) (*models.TeamDayOverride, error) {
	var override models.TeamDayOverride
	err := r.db.First(&override, "team_id = ? AND date = ?", teamID, date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &override, nil
}

// FindByTeamDateRange retrieves the team's overrides with from <= date <= to
func (r *TeamDayOverrideRepository) FindByTeamDateRange(teamID uuid.UUID, from, to string) ([]models.TeamDayOverride, error) {
	var overrides []models.TeamDayOverride
	err := r.db.Where("team_id = ? AND date >= ? AND date <= ?", teamID, from, to).
		Order("date ASC").
		Find(&overrides).Error
	return overrides, err
}

// Save creates or updates an override row
func (r *TeamDayOverrideRepository) Save(override *models.TeamDayOverride) error {
	return r.db.Save(override).Error
}

// Delete removes an override by id; missing ids are a no-op
func (r *TeamDayOverrideRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamDayOverride{}, "id = ?", id).Error
}
