package repository

import (
	"testing"

	"fleetops-backend/internal/database/models"
	"fleetops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRosterRepositoryTestSuite tests the TeamRosterRepository
type TeamRosterRepositoryTestSuite struct {
	suite.Suite
	base      *testutils.BaseTestSuite
	repo      *TeamRosterRepository
	factories *testutils.FactorySet

	team *models.Team
}

func (suite *TeamRosterRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRosterRepository(suite.base.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TeamRosterRepositoryTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

func (suite *TeamRosterRepositoryTestSuite) SetupTest() {
	suite.base.SetupTest()

	suite.team = suite.factories.Team.Create()
	suite.Require().NoError(suite.base.DB.Create(suite.team).Error)
}

func (suite *TeamRosterRepositoryTestSuite) TearDownTest() {
	suite.base.TearDownTest()
}

func (suite *TeamRosterRepositoryTestSuite) TestCreate() {
	roster := suite.factories.TeamRoster.Create(suite.team.ID, "2024-06-10", models.ShiftTypeEarly)

	err := suite.repo.Create(roster)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, roster.ID)
	suite.Equal(models.TeamRosterStatusScheduled, roster.Status)
}

func (suite *TeamRosterRepositoryTestSuite) TestCreateDuplicateTeamDate() {
	suite.Require().NoError(suite.repo.Create(
		suite.factories.TeamRoster.Create(suite.team.ID, "2024-06-10", models.ShiftTypeEarly)))

	err := suite.repo.Create(suite.factories.TeamRoster.Create(suite.team.ID, "2024-06-10", models.ShiftTypeNight))

	suite.Error(err)

	count, err := suite.repo.CountForTeamAndDate(suite.team.ID, "2024-06-10")
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *TeamRosterRepositoryTestSuite) TestSameDateDifferentTeams() {
	other := suite.factories.Team.Create()
	suite.Require().NoError(suite.base.DB.Create(other).Error)

	suite.NoError(suite.repo.Create(suite.factories.TeamRoster.Create(suite.team.ID, "2024-06-10", models.ShiftTypeEarly)))
	suite.NoError(suite.repo.Create(suite.factories.TeamRoster.Create(other.ID, "2024-06-10", models.ShiftTypeEarly)))
}

func (suite *TeamRosterRepositoryTestSuite) TestExistsForTeamAndDate() {
	exists, err := suite.repo.ExistsForTeamAndDate(suite.team.ID, "2024-06-10")
	suite.NoError(err)
	suite.False(exists)

	suite.Require().NoError(suite.repo.Create(
		suite.factories.TeamRoster.Create(suite.team.ID, "2024-06-10", models.ShiftTypeNormal)))

	exists, err = suite.repo.ExistsForTeamAndDate(suite.team.ID, "2024-06-10")
	suite.NoError(err)
	suite.True(exists)
}

func (suite *TeamRosterRepositoryTestSuite) TestFindByTeamAndDate() {
	created := suite.factories.TeamRoster.Create(suite.team.ID, "2024-06-10", models.ShiftTypeNight)
	suite.Require().NoError(suite.repo.Create(created))

	found, err := suite.repo.FindByTeamAndDate(suite.team.ID, "2024-06-10")
	suite.NoError(err)
	suite.Equal(created.ID, found.ID)
	suite.Equal(models.ShiftTypeNight, found.ShiftType)

	_, err = suite.repo.FindByTeamAndDate(suite.team.ID, "2024-06-11")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRosterRepositoryTestSuite) TestFindByTeamDateRange() {
	for _, date := range []string{"2024-06-09", "2024-06-10", "2024-06-15", "2024-07-02"} {
		suite.Require().NoError(suite.repo.Create(
			suite.factories.TeamRoster.Create(suite.team.ID, date, models.ShiftTypeNormal)))
	}

	rosters, err := suite.repo.FindByTeamDateRange(suite.team.ID, "2024-06-10", "2024-06-30")

	suite.NoError(err)
	suite.Len(rosters, 2)
	suite.Equal("2024-06-10", rosters[0].Date)
	suite.Equal("2024-06-15", rosters[1].Date)
}

func (suite *TeamRosterRepositoryTestSuite) TestUpdate() {
	roster := suite.factories.TeamRoster.Create(suite.team.ID, "2024-06-10", models.ShiftTypeNormal)
	suite.Require().NoError(suite.repo.Create(roster))

	roster.Status = models.TeamRosterStatusCompleted
	suite.NoError(suite.repo.Update(roster))

	reloaded, err := suite.repo.GetByID(roster.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRosterStatusCompleted, reloaded.Status)
}

func (suite *TeamRosterRepositoryTestSuite) TestDeleteIdempotent() {
	roster := suite.factories.TeamRoster.Create(suite.team.ID, "2024-06-10", models.ShiftTypeNormal)
	suite.Require().NoError(suite.repo.Create(roster))

	suite.NoError(suite.repo.Delete(roster.ID))

	_, err := suite.repo.GetByID(roster.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.NoError(suite.repo.Delete(roster.ID))
	suite.NoError(suite.repo.Delete(uuid.New()))
}

func TestTeamRosterRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRosterRepositoryTestSuite))
}
