package repository

import (
	"testing"

	"fleetops-backend/internal/database/models"
	"fleetops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RosterEntryRepositoryTestSuite tests the RosterEntryRepository
type RosterEntryRepositoryTestSuite struct {
	suite.Suite
	base      *testutils.BaseTestSuite
	repo      *RosterEntryRepository
	factories *testutils.FactorySet

	member *models.CrewMember
	team   *models.Team
}

// SetupSuite runs before all tests in the suite
func (suite *RosterEntryRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRosterEntryRepository(suite.base.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RosterEntryRepositoryTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

// SetupTest seeds one member and one team for entries to reference
func (suite *RosterEntryRepositoryTestSuite) SetupTest() {
	suite.base.SetupTest()

	suite.member = suite.factories.CrewMember.Create()
	suite.Require().NoError(suite.base.DB.Create(suite.member).Error)

	suite.team = suite.factories.Team.Create()
	suite.Require().NoError(suite.base.DB.Create(suite.team).Error)
}

func (suite *RosterEntryRepositoryTestSuite) TearDownTest() {
	suite.base.TearDownTest()
}

func (suite *RosterEntryRepositoryTestSuite) TestCreate() {
	entry := suite.factories.RosterEntry.Shift(suite.member.ID, "2024-06-10", models.ShiftTypeNormal)

	err := suite.repo.Create(entry)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, entry.ID)
	suite.NotZero(entry.CreatedAt)
}

func (suite *RosterEntryRepositoryTestSuite) TestCreateDuplicateMemberDate() {
	first := suite.factories.RosterEntry.Shift(suite.member.ID, "2024-06-10", models.ShiftTypeNormal)
	suite.Require().NoError(suite.repo.Create(first))

	// Same member and date, different content: the unique index rejects it
	second := suite.factories.RosterEntry.Leave(suite.member.ID, "2024-06-10", models.LeaveTypeAnnual)
	err := suite.repo.Create(second)

	suite.Error(err)

	count, err := suite.repo.CountForMemberAndDate(suite.member.ID, "2024-06-10")
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *RosterEntryRepositoryTestSuite) TestSameDateDifferentMembers() {
	other := suite.factories.CrewMember.Create()
	suite.Require().NoError(suite.base.DB.Create(other).Error)

	suite.NoError(suite.repo.Create(suite.factories.RosterEntry.Shift(suite.member.ID, "2024-06-10", models.ShiftTypeEarly)))
	suite.NoError(suite.repo.Create(suite.factories.RosterEntry.Shift(other.ID, "2024-06-10", models.ShiftTypeEarly)))
}

func (suite *RosterEntryRepositoryTestSuite) TestExistsForMemberAndDate() {
	exists, err := suite.repo.ExistsForMemberAndDate(suite.member.ID, "2024-06-10")
	suite.NoError(err)
	suite.False(exists)

	suite.Require().NoError(suite.repo.Create(suite.factories.RosterEntry.Shift(suite.member.ID, "2024-06-10", models.ShiftTypeNight)))

	exists, err = suite.repo.ExistsForMemberAndDate(suite.member.ID, "2024-06-10")
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.ExistsForMemberAndDate(suite.member.ID, "2024-06-11")
	suite.NoError(err)
	suite.False(exists)
}

func (suite *RosterEntryRepositoryTestSuite) TestFindByMemberDateRange() {
	for _, date := range []string{"2024-06-09", "2024-06-10", "2024-06-12", "2024-07-01"} {
		suite.Require().NoError(suite.repo.Create(suite.factories.RosterEntry.Shift(suite.member.ID, date, models.ShiftTypeNormal)))
	}

	entries, err := suite.repo.FindByMemberDateRange(suite.member.ID, "2024-06-10", "2024-06-30")

	suite.NoError(err)
	suite.Len(entries, 2)
	// Both bounds inclusive, ascending by date
	suite.Equal("2024-06-10", entries[0].Date)
	suite.Equal("2024-06-12", entries[1].Date)
}

func (suite *RosterEntryRepositoryTestSuite) TestFindLeaves() {
	other := suite.factories.CrewMember.Create()
	suite.Require().NoError(suite.base.DB.Create(other).Error)

	suite.Require().NoError(suite.repo.Create(suite.factories.RosterEntry.Shift(suite.member.ID, "2024-06-10", models.ShiftTypeNormal)))
	suite.Require().NoError(suite.repo.Create(suite.factories.RosterEntry.Leave(suite.member.ID, "2024-06-11", models.LeaveTypeAnnual)))
	suite.Require().NoError(suite.repo.Create(suite.factories.RosterEntry.Leave(other.ID, "2024-06-12", models.LeaveTypeCompensation)))

	leaves, err := suite.repo.FindLeaves([]uuid.UUID{suite.member.ID, other.ID}, "2024-06-01", "2024-06-30")

	suite.NoError(err)
	suite.Len(leaves, 2)
	suite.Equal("2024-06-11", leaves[0].Date)
	suite.Equal(models.LeaveTypeAnnual, leaves[0].LeaveType)
	suite.Equal("2024-06-12", leaves[1].Date)
	suite.Equal(models.LeaveTypeCompensation, leaves[1].LeaveType)
}

func (suite *RosterEntryRepositoryTestSuite) TestFindLeavesNoMembers() {
	leaves, err := suite.repo.FindLeaves(nil, "2024-06-01", "2024-06-30")
	suite.NoError(err)
	suite.Empty(leaves)
}

func (suite *RosterEntryRepositoryTestSuite) TestDeleteIdempotent() {
	entry := suite.factories.RosterEntry.Shift(suite.member.ID, "2024-06-10", models.ShiftTypeNormal)
	suite.Require().NoError(suite.repo.Create(entry))

	suite.NoError(suite.repo.Delete(entry.ID))

	_, err := suite.repo.GetByID(entry.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Deleting again is a no-op
	suite.NoError(suite.repo.Delete(entry.ID))
	suite.NoError(suite.repo.Delete(uuid.New()))
}

func (suite *RosterEntryRepositoryTestSuite) TestDeleteTeamSourced() {
	other := suite.factories.CrewMember.Create()
	suite.Require().NoError(suite.base.DB.Create(other).Error)
	third := suite.factories.CrewMember.Create()
	suite.Require().NoError(suite.base.DB.Create(third).Error)
	otherTeam := suite.factories.Team.Create()
	suite.Require().NoError(suite.base.DB.Create(otherTeam).Error)

	date := "2024-06-10"
	teamEntry := suite.factories.RosterEntry.TeamShift(suite.member.ID, suite.team.ID, date, models.ShiftTypeNormal)
	leaveEntry := suite.factories.RosterEntry.Leave(other.ID, date, models.LeaveTypeAnnual)
	otherTeamEntry := suite.factories.RosterEntry.TeamShift(third.ID, otherTeam.ID, date, models.ShiftTypeNormal)
	suite.Require().NoError(suite.repo.Create(teamEntry))
	suite.Require().NoError(suite.repo.Create(leaveEntry))
	suite.Require().NoError(suite.repo.Create(otherTeamEntry))

	err := suite.repo.DeleteTeamSourced(suite.team.ID, date)
	suite.NoError(err)

	// Only the exact (team, date, source=team) key is removed
	_, err = suite.repo.GetByID(teamEntry.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	kept, err := suite.repo.GetByID(leaveEntry.ID)
	suite.NoError(err)
	suite.Equal(models.EntrySourceLeave, kept.Source)

	keptOther, err := suite.repo.GetByID(otherTeamEntry.ID)
	suite.NoError(err)
	suite.Equal(otherTeam.ID, *keptOther.TeamID)
}

func (suite *RosterEntryRepositoryTestSuite) TestDeleteTeamSourcedKeepsOtherDates() {
	suite.Require().NoError(suite.repo.Create(
		suite.factories.RosterEntry.TeamShift(suite.member.ID, suite.team.ID, "2024-06-10", models.ShiftTypeNormal)))
	kept := suite.factories.RosterEntry.TeamShift(suite.member.ID, suite.team.ID, "2024-06-11", models.ShiftTypeNormal)
	suite.Require().NoError(suite.repo.Create(kept))

	suite.NoError(suite.repo.DeleteTeamSourced(suite.team.ID, "2024-06-10"))

	_, err := suite.repo.GetByID(kept.ID)
	suite.NoError(err)
}

func TestRosterEntryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RosterEntryRepositoryTestSuite))
}
