package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"fleetops-backend/internal/database/models"
	apperrors "fleetops-backend/internal/errors"
	"fleetops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrewMemberService handles business logic for the crew member catalog
type CrewMemberService struct {
	memberRepo repository.CrewMemberRepositoryInterface
	validator  *validator.Validate
}

// NewCrewMemberService creates a new crew member service
func NewCrewMemberService(memberRepo repository.CrewMemberRepositoryInterface, validator *validator.Validate) *CrewMemberService {
	return &CrewMemberService{
		memberRepo: memberRepo,
		validator:  validator,
	}
}

// CrewDocumentRequest represents a license or certificate in a request
type CrewDocumentRequest struct {
	Type       string `json:"type" validate:"required,max=50"`
	Number     string `json:"number" validate:"required,max=50"`
	ExpiryDate string `json:"expiry_date,omitempty"`
}

// CreateCrewMemberRequest represents the request to create a crew member
type CreateCrewMemberRequest struct {
	StaffID          string                `json:"staff_id" validate:"required,max=20"`
	FullName         string                `json:"full_name" validate:"required,max=200"`
	Role             models.CrewRole       `json:"role" validate:"required"`
	Status           models.CrewStatus     `json:"status,omitempty"`
	Phone            string                `json:"phone,omitempty" validate:"max=20"`
	Email            string                `json:"email,omitempty" validate:"omitempty,email,max=255"`
	JoinedDate       string                `json:"joined_date,omitempty"`
	ArmoredCertified bool                  `json:"armored_certified,omitempty"`
	Skills           []string              `json:"skills,omitempty"`
	Documents        []CrewDocumentRequest `json:"documents,omitempty"`
}

// UpdateCrewMemberRequest represents the request to update a crew member
type UpdateCrewMemberRequest struct {
	FullName         *string               `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Role             *models.CrewRole      `json:"role,omitempty"`
	Status           *models.CrewStatus    `json:"status,omitempty"`
	Phone            *string               `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email            *string               `json:"email,omitempty" validate:"omitempty,email,max=255"`
	ArmoredCertified *bool                 `json:"armored_certified,omitempty"`
	Skills           []string              `json:"skills,omitempty"`
	Documents        []CrewDocumentRequest `json:"documents,omitempty"`
}

// CrewDocumentResponse represents a document at the API boundary
type CrewDocumentResponse struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Number     string    `json:"number"`
	ExpiryDate string    `json:"expiry_date,omitempty"`
}

// CrewMemberResponse represents a crew member at the API boundary
type CrewMemberResponse struct {
	ID               uuid.UUID              `json:"id"`
	StaffID          string                 `json:"staff_id"`
	FullName         string                 `json:"full_name"`
	Role             models.CrewRole        `json:"role"`
	Status           models.CrewStatus      `json:"status"`
	Phone            string                 `json:"phone,omitempty"`
	Email            string                 `json:"email,omitempty"`
	JoinedDate       string                 `json:"joined_date,omitempty"`
	ArmoredCertified bool                   `json:"armored_certified"`
	Skills           []string               `json:"skills,omitempty"`
	Documents        []CrewDocumentResponse `json:"documents,omitempty"`
}

// CrewMemberListResponse represents a paginated list of crew members
type CrewMemberListResponse struct {
	CrewMembers []CrewMemberResponse `json:"crew_members"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// CreateCrewMember creates a new crew member
func (s *CrewMemberService) CreateCrewMember(req *CreateCrewMemberRequest) (*CrewMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	status := req.Status
	if status == "" {
		status = models.CrewStatusActive
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if req.JoinedDate != "" && !models.IsValidDay(req.JoinedDate) {
		return nil, apperrors.ErrInvalidDay
	}

	if _, err := s.memberRepo.GetByStaffID(req.StaffID); err == nil {
		return nil, apperrors.ErrCrewMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check staff id: %w", err)
	}

	member := &models.CrewMember{
		StaffID:          req.StaffID,
		FullName:         req.FullName,
		Role:             req.Role,
		Status:           status,
		Phone:            req.Phone,
		Email:            req.Email,
		JoinedDate:       req.JoinedDate,
		ArmoredCertified: req.ArmoredCertified,
	}
	if len(req.Skills) > 0 {
		skills, err := json.Marshal(req.Skills)
		if err != nil {
			return nil, fmt.Errorf("failed to encode skills: %w", err)
		}
		member.Skills = skills
	}
	for _, doc := range req.Documents {
		member.Documents = append(member.Documents, models.CrewDocument{
			Type:       doc.Type,
			Number:     doc.Number,
			ExpiryDate: doc.ExpiryDate,
		})
	}

	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create crew member: %w", err)
	}
	return toCrewMemberResponse(member), nil
}

// GetCrewMemberByID retrieves a crew member by ID
func (s *CrewMemberService) GetCrewMemberByID(id uuid.UUID) (*CrewMemberResponse, error) {
	member, err := s.memberRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to get crew member: %w", err)
	}
	return toCrewMemberResponse(member), nil
}

// ListCrewMembers retrieves crew members with optional status filter
func (s *CrewMemberService) ListCrewMembers(status models.CrewStatus, page, pageSize int) (*CrewMemberListResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	members, total, err := s.memberRepo.GetAll(status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew members: %w", err)
	}

	responses := make([]CrewMemberResponse, len(members))
	for i := range members {
		responses[i] = *toCrewMemberResponse(&members[i])
	}
	return &CrewMemberListResponse{
		CrewMembers: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// UpdateCrewMember updates a crew member
func (s *CrewMemberService) UpdateCrewMember(id uuid.UUID, req *UpdateCrewMemberRequest) (*CrewMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	member, err := s.memberRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to get crew member: %w", err)
	}

	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, apperrors.ErrInvalidRole
		}
		member.Role = *req.Role
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		member.Status = *req.Status
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.ArmoredCertified != nil {
		member.ArmoredCertified = *req.ArmoredCertified
	}
	if req.Skills != nil {
		skills, err := json.Marshal(req.Skills)
		if err != nil {
			return nil, fmt.Errorf("failed to encode skills: %w", err)
		}
		member.Skills = skills
	}

	if err := s.memberRepo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update crew member: %w", err)
	}

	if req.Documents != nil {
		docs := make([]models.CrewDocument, len(req.Documents))
		for i, doc := range req.Documents {
			docs[i] = models.CrewDocument{
				Type:       doc.Type,
				Number:     doc.Number,
				ExpiryDate: doc.ExpiryDate,
			}
		}
		if err := s.memberRepo.ReplaceDocuments(id, docs); err != nil {
			return nil, fmt.Errorf("failed to replace documents: %w", err)
		}
	}

	updated, err := s.memberRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload crew member: %w", err)
	}
	return toCrewMemberResponse(updated), nil
}

// DeleteCrewMember deletes a crew member
func (s *CrewMemberService) DeleteCrewMember(id uuid.UUID) error {
	if _, err := s.memberRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCrewMemberNotFound
		}
		return fmt.Errorf("failed to get crew member: %w", err)
	}
	if err := s.memberRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete crew member: %w", err)
	}
	return nil
}

func toCrewMemberResponse(member *models.CrewMember) *CrewMemberResponse {
	resp := &CrewMemberResponse{
		ID:               member.ID,
		StaffID:          member.StaffID,
		FullName:         member.FullName,
		Role:             member.Role,
		Status:           member.Status,
		Phone:            member.Phone,
		Email:            member.Email,
		JoinedDate:       member.JoinedDate,
		ArmoredCertified: member.ArmoredCertified,
	}
	if len(member.Skills) > 0 {
		_ = json.Unmarshal(member.Skills, &resp.Skills)
	}
	for _, doc := range member.Documents {
		resp.Documents = append(resp.Documents, CrewDocumentResponse{
			ID:         doc.ID,
			Type:       doc.Type,
			Number:     doc.Number,
			ExpiryDate: doc.ExpiryDate,
		})
	}
	return resp
}
