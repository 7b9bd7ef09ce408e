package service_test

import (
	"testing"

	"fleetops-backend/internal/database/models"
	apperrors "fleetops-backend/internal/errors"
	"fleetops-backend/internal/mocks"
	"fleetops-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CrewMemberServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockMemberRepo *mocks.MockCrewMemberRepositoryInterface
	memberService  *service.CrewMemberService
}

func (suite *CrewMemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberRepo = mocks.NewMockCrewMemberRepositoryInterface(suite.ctrl)
	suite.memberService = service.NewCrewMemberService(suite.mockMemberRepo, validator.New())
}

func (suite *CrewMemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CrewMemberServiceTestSuite) TestCreateCrewMember_Success() {
	req := &service.CreateCrewMemberRequest{
		StaffID:          "S1001",
		FullName:         "Chan Tai Man",
		Role:             models.CrewRoleGuard,
		JoinedDate:       "2023-01-16",
		ArmoredCertified: true,
		Skills:           []string{"first_aid"},
		Documents: []service.CrewDocumentRequest{
			{Type: "guard_license", Number: "GL-4431", ExpiryDate: "2027-03-01"},
		},
	}

	suite.mockMemberRepo.EXPECT().GetByStaffID("S1001").Return(nil, gorm.ErrRecordNotFound)
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(member *models.CrewMember) error {
		assert.Equal(suite.T(), models.CrewStatusActive, member.Status)
		assert.Len(suite.T(), member.Documents, 1)
		member.ID = uuid.New()
		return nil
	})

	resp, err := suite.memberService.CreateCrewMember(req)

	suite.NoError(err)
	suite.Equal("S1001", resp.StaffID)
	suite.Equal([]string{"first_aid"}, resp.Skills)
	suite.Require().Len(resp.Documents, 1)
	suite.Equal("GL-4431", resp.Documents[0].Number)
}

func (suite *CrewMemberServiceTestSuite) TestCreateCrewMember_DuplicateStaffID() {
	existing := &models.CrewMember{BaseModel: models.BaseModel{ID: uuid.New()}, StaffID: "S1001"}
	suite.mockMemberRepo.EXPECT().GetByStaffID("S1001").Return(existing, nil)

	_, err := suite.memberService.CreateCrewMember(&service.CreateCrewMemberRequest{
		StaffID:  "S1001",
		FullName: "Chan Tai Man",
		Role:     models.CrewRoleGuard,
	})

	suite.ErrorIs(err, apperrors.ErrCrewMemberExists)
}

func (suite *CrewMemberServiceTestSuite) TestCreateCrewMember_InvalidRole() {
	_, err := suite.memberService.CreateCrewMember(&service.CreateCrewMemberRequest{
		StaffID:  "S1001",
		FullName: "Chan Tai Man",
		Role:     "pilot",
	})

	suite.ErrorIs(err, apperrors.ErrInvalidRole)
}

func (suite *CrewMemberServiceTestSuite) TestCreateCrewMember_InvalidJoinedDate() {
	_, err := suite.memberService.CreateCrewMember(&service.CreateCrewMemberRequest{
		StaffID:    "S1001",
		FullName:   "Chan Tai Man",
		Role:       models.CrewRoleGuard,
		JoinedDate: "16/01/2023",
	})

	suite.ErrorIs(err, apperrors.ErrInvalidDay)
}

func (suite *CrewMemberServiceTestSuite) TestGetCrewMemberByID_NotFound() {
	missing := uuid.New()
	suite.mockMemberRepo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.memberService.GetCrewMemberByID(missing)

	suite.ErrorIs(err, apperrors.ErrCrewMemberNotFound)
}

func (suite *CrewMemberServiceTestSuite) TestListCrewMembers_NormalizesPagination() {
	members := []models.CrewMember{
		{BaseModel: models.BaseModel{ID: uuid.New()}, StaffID: "S1001", FullName: "Chan Tai Man", Role: models.CrewRoleGuard, Status: models.CrewStatusActive},
	}
	suite.mockMemberRepo.EXPECT().GetAll(models.CrewStatus(""), 20, 0).Return(members, int64(1), nil)

	resp, err := suite.memberService.ListCrewMembers("", 0, 500)

	suite.NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.Equal(int64(1), resp.Total)
	suite.Len(resp.CrewMembers, 1)
}

func (suite *CrewMemberServiceTestSuite) TestListCrewMembers_InvalidStatus() {
	_, err := suite.memberService.ListCrewMembers("retired", 1, 20)

	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (suite *CrewMemberServiceTestSuite) TestUpdateCrewMember_Success() {
	member := &models.CrewMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		StaffID:   "S1001", FullName: "Chan Tai Man", Role: models.CrewRoleGuard, Status: models.CrewStatusActive,
	}
	newName := "Chan Tai Man Jr"
	newStatus := models.CrewStatusOnLeave

	suite.mockMemberRepo.EXPECT().GetByID(member.ID).Return(member, nil)
	suite.mockMemberRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.CrewMember) error {
		assert.Equal(suite.T(), newName, updated.FullName)
		assert.Equal(suite.T(), newStatus, updated.Status)
		return nil
	})
	suite.mockMemberRepo.EXPECT().GetByID(member.ID).Return(member, nil)

	resp, err := suite.memberService.UpdateCrewMember(member.ID, &service.UpdateCrewMemberRequest{
		FullName: &newName,
		Status:   &newStatus,
	})

	suite.NoError(err)
	suite.Equal(newName, resp.FullName)
}

func (suite *CrewMemberServiceTestSuite) TestUpdateCrewMember_ReplacesDocuments() {
	member := &models.CrewMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		StaffID:   "S1001", FullName: "Chan Tai Man", Role: models.CrewRoleDriver, Status: models.CrewStatusActive,
	}

	suite.mockMemberRepo.EXPECT().GetByID(member.ID).Return(member, nil)
	suite.mockMemberRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockMemberRepo.EXPECT().ReplaceDocuments(member.ID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, docs []models.CrewDocument) error {
			assert.Len(suite.T(), docs, 1)
			assert.Equal(suite.T(), "driving_license", docs[0].Type)
			return nil
		})
	suite.mockMemberRepo.EXPECT().GetByID(member.ID).Return(member, nil)

	_, err := suite.memberService.UpdateCrewMember(member.ID, &service.UpdateCrewMemberRequest{
		Documents: []service.CrewDocumentRequest{
			{Type: "driving_license", Number: "DL-9920"},
		},
	})

	suite.NoError(err)
}

func (suite *CrewMemberServiceTestSuite) TestUpdateCrewMember_NotFound() {
	missing := uuid.New()
	suite.mockMemberRepo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.memberService.UpdateCrewMember(missing, &service.UpdateCrewMemberRequest{})

	suite.ErrorIs(err, apperrors.ErrCrewMemberNotFound)
}

func (suite *CrewMemberServiceTestSuite) TestDeleteCrewMember_Success() {
	member := &models.CrewMember{BaseModel: models.BaseModel{ID: uuid.New()}, StaffID: "S1001"}
	suite.mockMemberRepo.EXPECT().GetByID(member.ID).Return(member, nil)
	suite.mockMemberRepo.EXPECT().Delete(member.ID).Return(nil)

	suite.NoError(suite.memberService.DeleteCrewMember(member.ID))
}

func (suite *CrewMemberServiceTestSuite) TestDeleteCrewMember_NotFound() {
	missing := uuid.New()
	suite.mockMemberRepo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.memberService.DeleteCrewMember(missing), apperrors.ErrCrewMemberNotFound)
}

func TestCrewMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CrewMemberServiceTestSuite))
}
