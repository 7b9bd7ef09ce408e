package repository

import (
	"fleetops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team with its guard associations
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team with its member slots resolved
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Leader").Preload("Driver").Preload("Guards").
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves teams with pagination
func (r *TeamRepository) GetAll(limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	if err := r.db.Model(&models.Team{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Leader").Preload("Driver").Preload("Guards").
		Order("name ASC").Limit(limit).Offset(offset).Find(&teams).Error
	return teams, total, err
}

// Update updates a team's scalar fields
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// ReplaceGuards swaps the team's guard set
func (r *TeamRepository) ReplaceGuards(team *models.Team, guards []models.CrewMember) error {
	return r.db.Model(team).Association("Guards").Replace(guards)
}

// Delete deletes a team and its guard associations
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Select("Guards").Delete(&models.Team{BaseModel: models.BaseModel{ID: id}}).Error
}
