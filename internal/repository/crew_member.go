package repository

import (
	"fleetops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrewMemberRepository handles database operations for crew members
type CrewMemberRepository struct {
	db *gorm.DB
}

// NewCrewMemberRepository creates a new crew member repository
func NewCrewMemberRepository(db *gorm.DB) *CrewMemberRepository {
	return &CrewMemberRepository{db: db}
}

// Create creates a new crew member
func (r *CrewMemberRepository) Create(member *models.CrewMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a crew member by ID
func (r *CrewMemberRepository) GetByID(id uuid.UUID) (*models.CrewMember, error) {
	var member models.CrewMember
	err := r.db.Preload("Documents").First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByStaffID retrieves a crew member by staff ID
func (r *CrewMemberRepository) GetByStaffID(staffID string) (*models.CrewMember, error) {
	var member models.CrewMember
	err := r.db.First(&member, "staff_id = ?", staffID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByIDs retrieves the crew members with the given ids
func (r *CrewMemberRepository) GetByIDs(ids []uuid.UUID) ([]models.CrewMember, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var members []models.CrewMember
	err := r.db.Where("id IN ?", ids).Find(&members).Error
	return members, err
}

// GetAll retrieves crew members with optional status filter and pagination
func (r *CrewMemberRepository) GetAll(status models.CrewStatus, limit, offset int) ([]models.CrewMember, int64, error) {
	var members []models.CrewMember
	var total int64

	query := r.db.Model(&models.CrewMember{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("staff_id ASC").Limit(limit).Offset(offset).Find(&members).Error
	return members, total, err
}

// Update updates a crew member
func (r *CrewMemberRepository) Update(member *models.CrewMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a crew member
func (r *CrewMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CrewMember{}, "id = ?", id).Error
}

// ReplaceDocuments swaps the member's document set
func (r *CrewMemberRepository) ReplaceDocuments(memberID uuid.UUID, docs []models.CrewDocument) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CrewDocument{}, "member_id = ?", memberID).Error; err != nil {
			return err
		}
		for i := range docs {
			docs[i].MemberID = memberID
			if err := tx.Create(&docs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
