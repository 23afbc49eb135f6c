//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"studio-manager-backend/internal/database/models"
	"studio-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AssignmentRepositoryTestSuite tests the AssignmentRepository
type AssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssignmentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAssignmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createEventFixture persists a firm, client, staff member and event so
// assignment rows have all their foreign keys in place.
func (suite *AssignmentRepositoryTestSuite) createEventFixture() (*models.Event, *models.Staff) {
	firm, client := suite.factories.CreateFirmWithClient()
	suite.NoError(NewFirmRepository(suite.baseTestSuite.DB).Create(firm))
	suite.NoError(NewClientRepository(suite.baseTestSuite.DB).Create(client))

	staff := suite.factories.Staff.WithFirm(firm.ID)
	suite.NoError(NewStaffRepository(suite.baseTestSuite.DB).Create(staff))

	event := suite.factories.Event.WithFirmAndClient(firm.ID, client.ID)
	suite.NoError(NewEventRepository(suite.baseTestSuite.DB).Create(event))

	return event, staff
}

// TestReplaceForEvent tests replacing the full assignment set of an event
func (suite *AssignmentRepositoryTestSuite) TestReplaceForEvent() {
	event, staff := suite.createEventFixture()

	first := []models.StaffAssignment{
		*suite.factories.Assignment.ForStaff(event, staff.ID, models.RolePhotographer, 1),
		*suite.factories.Assignment.ForStaff(event, staff.ID, models.RolePhotographer, 2),
	}
	err := suite.repo.ReplaceForEvent(event.ID, first)
	suite.NoError(err)

	stored, err := suite.repo.GetByEventID(event.ID)
	suite.NoError(err)
	suite.Len(stored, 2)

	// Replacing again drops the old rows entirely
	second := []models.StaffAssignment{
		*suite.factories.Assignment.ForStaff(event, staff.ID, models.RoleCinematographer, 1),
	}
	err = suite.repo.ReplaceForEvent(event.ID, second)
	suite.NoError(err)

	stored, err = suite.repo.GetByEventID(event.ID)
	suite.NoError(err)
	suite.Len(stored, 1)
	suite.Equal(models.RoleCinematographer, stored[0].Role)
}

// TestReplaceForEventEmpty tests clearing all assignments for an event
func (suite *AssignmentRepositoryTestSuite) TestReplaceForEventEmpty() {
	event, staff := suite.createEventFixture()

	rows := []models.StaffAssignment{
		*suite.factories.Assignment.ForStaff(event, staff.ID, models.RolePhotographer, 1),
	}
	suite.NoError(suite.repo.ReplaceForEvent(event.ID, rows))

	suite.NoError(suite.repo.ReplaceForEvent(event.ID, nil))

	stored, err := suite.repo.GetByEventID(event.ID)
	suite.NoError(err)
	suite.Empty(stored)
}

// TestGetByEventIDOrdering tests the day-then-insertion retrieval order
func (suite *AssignmentRepositoryTestSuite) TestGetByEventIDOrdering() {
	event, staff := suite.createEventFixture()

	rows := []models.StaffAssignment{}
	// Insert out of day order on purpose
	for _, day := range []int{2, 1, 2, 1} {
		a := suite.factories.Assignment.ForStaff(event, staff.ID, models.RolePhotographer, day)
		rows = append(rows, *a)
	}
	suite.NoError(suite.repo.ReplaceForEvent(event.ID, rows))

	stored, err := suite.repo.GetByEventID(event.ID)
	suite.NoError(err)
	suite.Len(stored, 4)
	for i := 1; i < len(stored); i++ {
		suite.LessOrEqual(stored[i-1].DayNumber, stored[i].DayNumber)
	}
}

// TestGetAllForFirmExcludesEvent tests the conflict-scan query
func (suite *AssignmentRepositoryTestSuite) TestGetAllForFirmExcludesEvent() {
	event, staff := suite.createEventFixture()

	other := suite.factories.Event.WithFirmAndClient(event.FirmID, event.ClientID)
	suite.NoError(NewEventRepository(suite.baseTestSuite.DB).Create(other))

	suite.NoError(suite.repo.ReplaceForEvent(event.ID, []models.StaffAssignment{
		*suite.factories.Assignment.ForStaff(event, staff.ID, models.RolePhotographer, 1),
	}))
	suite.NoError(suite.repo.ReplaceForEvent(other.ID, []models.StaffAssignment{
		*suite.factories.Assignment.ForStaff(other, staff.ID, models.RolePhotographer, 1),
	}))

	all, err := suite.repo.GetAllForFirm(event.FirmID, nil)
	suite.NoError(err)
	suite.Len(all, 2)

	filtered, err := suite.repo.GetAllForFirm(event.FirmID, &event.ID)
	suite.NoError(err)
	suite.Len(filtered, 1)
	suite.Equal(other.ID, filtered[0].EventID)
	// Event is preloaded for conflict descriptions
	suite.Equal(other.Title, filtered[0].Event.Title)
}

// TestGetByPerson tests listing one person's assignments across the firm
func (suite *AssignmentRepositoryTestSuite) TestGetByPerson() {
	event, staff := suite.createEventFixture()

	freelancer := suite.factories.Freelancer.WithFirm(event.FirmID)
	suite.NoError(NewFreelancerRepository(suite.baseTestSuite.DB).Create(freelancer))

	suite.NoError(suite.repo.ReplaceForEvent(event.ID, []models.StaffAssignment{
		*suite.factories.Assignment.ForStaff(event, staff.ID, models.RolePhotographer, 1),
		*suite.factories.Assignment.ForFreelancer(event, freelancer.ID, models.RoleCinematographer, 1),
	}))

	ours, err := suite.repo.GetByPerson(event.FirmID, models.PersonKindFreelancer, freelancer.ID)
	suite.NoError(err)
	suite.Len(ours, 1)
	suite.Equal(freelancer.ID, ours[0].PersonID())

	none, err := suite.repo.GetByPerson(event.FirmID, models.PersonKindStaff, uuid.New())
	suite.NoError(err)
	suite.Empty(none)
}

// TestDeleteByEventID tests bulk deletion when an event is removed
func (suite *AssignmentRepositoryTestSuite) TestDeleteByEventID() {
	event, staff := suite.createEventFixture()

	suite.NoError(suite.repo.ReplaceForEvent(event.ID, []models.StaffAssignment{
		*suite.factories.Assignment.ForStaff(event, staff.ID, models.RolePhotographer, 1),
		*suite.factories.Assignment.ForStaff(event, staff.ID, models.RolePhotographer, 2),
	}))

	suite.NoError(suite.repo.DeleteByEventID(event.ID))

	stored, err := suite.repo.GetByEventID(event.ID)
	suite.NoError(err)
	suite.Empty(stored)
}

// TestDayDateMatchesEventCalendar sanity-checks the persisted day dates
func (suite *AssignmentRepositoryTestSuite) TestDayDateMatchesEventCalendar() {
	event, staff := suite.createEventFixture()

	suite.NoError(suite.repo.ReplaceForEvent(event.ID, []models.StaffAssignment{
		*suite.factories.Assignment.ForStaff(event, staff.ID, models.RolePhotographer, 2),
	}))

	stored, err := suite.repo.GetByEventID(event.ID)
	suite.NoError(err)
	suite.Len(stored, 1)
	suite.True(stored[0].DayDate.Truncate(24 * time.Hour).Equal(event.DayDate(2).Truncate(24 * time.Hour)))
}

// TestAssignmentRepositoryTestSuite runs the test suite
func TestAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryTestSuite))
}
