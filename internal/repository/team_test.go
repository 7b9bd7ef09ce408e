package repository

import (
	"testing"

	"fleetops-backend/internal/database/models"
	"fleetops-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	base       *testutils.BaseTestSuite
	repo       *TeamRepository
	memberRepo *CrewMemberRepository
	factories  *testutils.FactorySet
}

func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.base.DB)
	suite.memberRepo = NewCrewMemberRepository(suite.base.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.base.SetupTest()
}

func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.base.TearDownTest()
}

// createFullTeam persists a leader, driver, guards and the wired team
func (suite *TeamRepositoryTestSuite) createFullTeam() *models.Team {
	team, leader, driver, guards := suite.factories.CreateFullTeam()
	suite.Require().NoError(suite.memberRepo.Create(leader))
	suite.Require().NoError(suite.memberRepo.Create(driver))
	for _, g := range guards {
		suite.Require().NoError(suite.memberRepo.Create(g))
	}
	suite.Require().NoError(suite.repo.Create(team))
	return team
}

func (suite *TeamRepositoryTestSuite) TestCreateAndGetByID() {
	team := suite.createFullTeam()

	loaded, err := suite.repo.GetByID(team.ID)

	suite.NoError(err)
	suite.Equal(team.Name, loaded.Name)
	suite.NotNil(loaded.Leader)
	suite.Equal(models.CrewRoleLeader, loaded.Leader.Role)
	suite.NotNil(loaded.Driver)
	suite.Equal(models.CrewRoleDriver, loaded.Driver.Role)
	suite.Len(loaded.Guards, 2)
}

func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	team := suite.factories.Team.WithName("Alpha")
	suite.Require().NoError(suite.repo.Create(team))

	dup := suite.factories.Team.WithName("Alpha")
	err := suite.repo.Create(dup)

	suite.Error(err)
}

func (suite *TeamRepositoryTestSuite) TestGetByName() {
	team := suite.factories.Team.WithName("Bravo")
	suite.Require().NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByName("Bravo")
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = suite.repo.GetByName("Zulu")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestGetAll() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Team.WithName("Alpha")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Team.WithName("Bravo")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Team.WithName("Charlie")))

	teams, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(teams, 2)
	suite.Equal("Alpha", teams[0].Name)
	suite.Equal("Bravo", teams[1].Name)
}

func (suite *TeamRepositoryTestSuite) TestReplaceGuards() {
	team := suite.createFullTeam()

	newGuard := suite.factories.CrewMember.WithRole(models.CrewRoleGuard)
	suite.Require().NoError(suite.memberRepo.Create(newGuard))

	err := suite.repo.ReplaceGuards(team, []models.CrewMember{*newGuard})
	suite.NoError(err)

	loaded, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Len(loaded.Guards, 1)
	suite.Equal(newGuard.ID, loaded.Guards[0].ID)
}

func (suite *TeamRepositoryTestSuite) TestMemberIDs() {
	team := suite.createFullTeam()
	loaded, err := suite.repo.GetByID(team.ID)
	suite.Require().NoError(err)

	ids := loaded.MemberIDs()

	suite.Len(ids, 4)
	suite.Contains(ids, *loaded.LeaderID)
	suite.Contains(ids, *loaded.DriverID)
}

func (suite *TeamRepositoryTestSuite) TestUpdate() {
	team := suite.factories.Team.WithName("Alpha")
	suite.Require().NoError(suite.repo.Create(team))

	team.Status = models.TeamStatusInactive
	team.DefaultTruckID = "GT-07"
	suite.NoError(suite.repo.Update(team))

	loaded, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal(models.TeamStatusInactive, loaded.Status)
	suite.Equal("GT-07", loaded.DefaultTruckID)
}

func (suite *TeamRepositoryTestSuite) TestDelete() {
	team := suite.createFullTeam()
	guardID := team.Guards[0].ID

	suite.NoError(suite.repo.Delete(team.ID))

	_, err := suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Guard members survive; only the association rows go
	_, err = suite.memberRepo.GetByID(guardID)
	suite.NoError(err)
}

func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
