package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleetops-backend/internal/api/handlers"
	"fleetops-backend/internal/database/models"
	apperrors "fleetops-backend/internal/errors"
	"fleetops-backend/internal/mocks"
	"fleetops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTeamSvc     *mocks.MockTeamServiceInterface
	mockConflictSvc *mocks.MockConflictServiceInterface
	handler         *handlers.TeamHandler
	router          *gin.Engine
}

func (suite *TeamHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamSvc = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.mockConflictSvc = mocks.NewMockConflictServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockTeamSvc, suite.mockConflictSvc)

	suite.router = gin.New()
	suite.router.GET("/teams", suite.handler.ListTeams)
	suite.router.POST("/teams", suite.handler.CreateTeam)
	suite.router.GET("/teams/:id", suite.handler.GetTeam)
	suite.router.PUT("/teams/:id", suite.handler.UpdateTeam)
	suite.router.DELETE("/teams/:id", suite.handler.DeleteTeam)
	suite.router.GET("/teams/:id/conflicts", suite.handler.GetConflicts)
	suite.router.GET("/teams/:id/days/:date", suite.handler.GetDayComposition)
	suite.router.PUT("/teams/:id/days/:date", suite.handler.UpdateTeamForDay)
}

func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_Success() {
	driverID := uuid.New()
	created := &service.TeamResponse{
		ID:     uuid.New(),
		Name:   "Alpha",
		Status: models.TeamStatusActive,
		Guards: []service.TeamMemberSummary{},
	}
	suite.mockTeamSvc.EXPECT().CreateTeam(gomock.Any()).
		DoAndReturn(func(req *service.CreateTeamRequest) (*service.TeamResponse, error) {
			assert.Equal(suite.T(), "Alpha", req.Name)
			assert.Equal(suite.T(), driverID, *req.DriverID)
			return created, nil
		})

	body, _ := json.Marshal(gin.H{"name": "Alpha", "driver_id": driverID.String()})
	req := httptest.NewRequest(http.MethodPost, "/teams", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_DuplicateName() {
	suite.mockTeamSvc.EXPECT().CreateTeam(gomock.Any()).Return(nil, apperrors.ErrTeamExists)

	body, _ := json.Marshal(gin.H{"name": "Alpha"})
	req := httptest.NewRequest(http.MethodPost, "/teams", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *TeamHandlerTestSuite) TestGetTeam_NotFound() {
	id := uuid.New()
	suite.mockTeamSvc.EXPECT().GetTeamByID(id).Return(nil, apperrors.ErrTeamNotFound)

	req := httptest.NewRequest(http.MethodGet, "/teams/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TeamHandlerTestSuite) TestListTeams_PassesPagination() {
	suite.mockTeamSvc.EXPECT().ListTeams(3, 5).Return(&service.TeamListResponse{
		Teams: []service.TeamResponse{}, Total: 0, Page: 3, PageSize: 5,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/teams?page=3&page_size=5", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TeamHandlerTestSuite) TestUpdateTeam_ValidationError() {
	id := uuid.New()
	suite.mockTeamSvc.EXPECT().UpdateTeam(id, gomock.Any()).
		Return(nil, apperrors.NewValidationError("driver_id", "an active team requires a driver"))

	body, _ := json.Marshal(gin.H{"status": "active"})
	req := httptest.NewRequest(http.MethodPut, "/teams/"+id.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam_Success() {
	id := uuid.New()
	suite.mockTeamSvc.EXPECT().DeleteTeam(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/teams/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *TeamHandlerTestSuite) TestGetConflicts_Success() {
	id := uuid.New()
	memberID := uuid.New()
	suite.mockConflictSvc.EXPECT().GetConflicts(id, "2024-06-01", "2024-06-30").
		Return([]service.ConflictResponse{
			{
				Date:      "2024-06-10",
				MemberID:  memberID,
				StaffID:   "S1001",
				FullName:  "Chan Tai Man",
				LeaveType: models.LeaveTypeAnnual,
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/teams/"+id.String()+"/conflicts?from=2024-06-01&to=2024-06-30", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got struct {
		Conflicts []service.ConflictResponse `json:"conflicts"`
		Total     int                        `json:"total"`
	}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 1, got.Total)
	assert.Equal(suite.T(), "2024-06-10", got.Conflicts[0].Date)
	assert.Equal(suite.T(), "S1001", got.Conflicts[0].StaffID)
}

func (suite *TeamHandlerTestSuite) TestGetConflicts_MissingRange() {
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/teams/"+id.String()+"/conflicts?from=2024-06-01", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TeamHandlerTestSuite) TestGetDayComposition_Success() {
	id := uuid.New()
	suite.mockTeamSvc.EXPECT().GetDayComposition(id, "2024-06-10").
		Return(&service.DayCompositionResponse{
			TeamID:     id,
			Date:       "2024-06-10",
			Members:    []service.TeamMemberSummary{},
			Overridden: false,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/teams/"+id.String()+"/days/2024-06-10", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TeamHandlerTestSuite) TestUpdateTeamForDay_Success() {
	id := uuid.New()
	substituteID := uuid.New()
	suite.mockTeamSvc.EXPECT().UpdateTeamForDay(id, "2024-06-10", gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ string, req *service.UpdateTeamDayRequest) (*service.DayCompositionResponse, error) {
			assert.Equal(suite.T(), []uuid.UUID{substituteID}, req.GuardIDs)
			return &service.DayCompositionResponse{
				TeamID:     id,
				Date:       "2024-06-10",
				Members:    []service.TeamMemberSummary{},
				Overridden: true,
			}, nil
		})

	body, _ := json.Marshal(gin.H{"guard_ids": []string{substituteID.String()}})
	req := httptest.NewRequest(http.MethodPut, "/teams/"+id.String()+"/days/2024-06-10", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.DayCompositionResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got.Overridden)
}

func (suite *TeamHandlerTestSuite) TestUpdateTeamForDay_EmptyUpdate() {
	id := uuid.New()
	suite.mockTeamSvc.EXPECT().UpdateTeamForDay(id, "2024-06-10", gomock.Any()).
		Return(nil, apperrors.ErrEmptyDayUpdate)

	body, _ := json.Marshal(gin.H{})
	req := httptest.NewRequest(http.MethodPut, "/teams/"+id.String()+"/days/2024-06-10", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
