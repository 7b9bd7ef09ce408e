package repository

import (
	"testing"

	"fleetops-backend/internal/database/models"
	"fleetops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TeamDayOverrideRepositoryTestSuite tests the TeamDayOverrideRepository
type TeamDayOverrideRepositoryTestSuite struct {
	suite.Suite
	base      *testutils.BaseTestSuite
	repo      *TeamDayOverrideRepository
	factories *testutils.FactorySet

	team *models.Team
}

func (suite *TeamDayOverrideRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamDayOverrideRepository(suite.base.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TeamDayOverrideRepositoryTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

func (suite *TeamDayOverrideRepositoryTestSuite) SetupTest() {
	suite.base.SetupTest()

	suite.team = suite.factories.Team.Create()
	suite.Require().NoError(suite.base.DB.Create(suite.team).Error)
}

func (suite *TeamDayOverrideRepositoryTestSuite) TearDownTest() {
	suite.base.TearDownTest()
}

func (suite *TeamDayOverrideRepositoryTestSuite) TestFindByTeamAndDateMissing() {
	override, err := suite.repo.FindByTeamAndDate(suite.team.ID, "2024-06-10")

	// Absence is not an error, just nil
	suite.NoError(err)
	suite.Nil(override)
}

func (suite *TeamDayOverrideRepositoryTestSuite) TestSaveAndFind() {
	driverID := uuid.New()
	override := &models.TeamDayOverride{
		TeamID:   suite.team.ID,
		Date:     "2024-06-10",
		DriverID: &driverID,
	}
	suite.Require().NoError(suite.repo.Save(override))

	found, err := suite.repo.FindByTeamAndDate(suite.team.ID, "2024-06-10")
	suite.NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(driverID, *found.DriverID)
	suite.Nil(found.LeaderID)
}

func (suite *TeamDayOverrideRepositoryTestSuite) TestSaveMergesIntoOneRow() {
	driverID := uuid.New()
	override := &models.TeamDayOverride{
		TeamID:   suite.team.ID,
		Date:     "2024-06-10",
		DriverID: &driverID,
	}
	suite.Require().NoError(suite.repo.Save(override))

	leaderID := uuid.New()
	override.LeaderID = &leaderID
	suite.Require().NoError(suite.repo.Save(override))

	var count int64
	suite.base.DB.Model(&models.TeamDayOverride{}).
		Where("team_id = ? AND date = ?", suite.team.ID, "2024-06-10").
		Count(&count)
	suite.Equal(int64(1), count)

	found, err := suite.repo.FindByTeamAndDate(suite.team.ID, "2024-06-10")
	suite.NoError(err)
	suite.Equal(leaderID, *found.LeaderID)
	suite.Equal(driverID, *found.DriverID)
}

func (suite *TeamDayOverrideRepositoryTestSuite) TestGuardIDsRoundTrip() {
	guardIDs := models.UUIDSlice{uuid.New(), uuid.New()}
	override := &models.TeamDayOverride{
		TeamID:   suite.team.ID,
		Date:     "2024-06-10",
		GuardIDs: guardIDs,
	}
	suite.Require().NoError(suite.repo.Save(override))

	found, err := suite.repo.FindByTeamAndDate(suite.team.ID, "2024-06-10")
	suite.NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(guardIDs, found.GuardIDs)
}

func (suite *TeamDayOverrideRepositoryTestSuite) TestFindByTeamDateRange() {
	for _, date := range []string{"2024-06-09", "2024-06-11", "2024-06-20"} {
		id := uuid.New()
		suite.Require().NoError(suite.repo.Save(&models.TeamDayOverride{
			TeamID:   suite.team.ID,
			Date:     date,
			LeaderID: &id,
		}))
	}

	overrides, err := suite.repo.FindByTeamDateRange(suite.team.ID, "2024-06-10", "2024-06-30")

	suite.NoError(err)
	suite.Len(overrides, 2)
	suite.Equal("2024-06-11", overrides[0].Date)
	suite.Equal("2024-06-20", overrides[1].Date)
}

func (suite *TeamDayOverrideRepositoryTestSuite) TestDeleteIdempotent() {
	id := uuid.New()
	override := &models.TeamDayOverride{TeamID: suite.team.ID, Date: "2024-06-10", LeaderID: &id}
	suite.Require().NoError(suite.repo.Save(override))

	suite.NoError(suite.repo.Delete(override.ID))

	found, err := suite.repo.FindByTeamAndDate(suite.team.ID, "2024-06-10")
	suite.NoError(err)
	suite.Nil(found)

	suite.NoError(suite.repo.Delete(override.ID))
}

func TestTeamDayOverrideRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamDayOverrideRepositoryTestSuite))
}
