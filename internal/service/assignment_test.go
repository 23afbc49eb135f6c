package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio-manager-backend/internal/crewplan"
	"studio-manager-backend/internal/database/models"
	apperrors "studio-manager-backend/internal/errors"
	"studio-manager-backend/internal/mocks"
	"studio-manager-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// recordingDispatcher captures dispatched diffs for assertions
type recordingDispatcher struct {
	calls   int
	added   []models.StaffAssignment
	removed []models.StaffAssignment
	err     error
}

func (d *recordingDispatcher) DispatchAssignmentDiff(ctx context.Context, event *models.Event, added, removed []models.StaffAssignment) error {
	d.calls++
	d.added = added
	d.removed = removed
	return d.err
}

type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	mockEventRepo      *mocks.MockEventRepositoryInterface
	mockQuotationRepo  *mocks.MockQuotationRepositoryInterface
	mockStaffRepo      *mocks.MockStaffRepositoryInterface
	mockFreelancerRepo *mocks.MockFreelancerRepositoryInterface
	dispatcher         *recordingDispatcher
	assignmentService  *service.AssignmentService

	firmID     uuid.UUID
	staffID    uuid.UUID
	freelancer uuid.UUID
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockEventRepo = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.mockQuotationRepo = mocks.NewMockQuotationRepositoryInterface(suite.ctrl)
	suite.mockStaffRepo = mocks.NewMockStaffRepositoryInterface(suite.ctrl)
	suite.mockFreelancerRepo = mocks.NewMockFreelancerRepositoryInterface(suite.ctrl)
	suite.dispatcher = &recordingDispatcher{}

	people := service.NewPersonService(suite.mockStaffRepo, suite.mockFreelancerRepo)
	suite.assignmentService = service.NewAssignmentService(
		suite.mockAssignmentRepo,
		suite.mockEventRepo,
		suite.mockQuotationRepo,
		people,
		suite.dispatcher,
		validator.New(),
	)

	suite.firmID = uuid.New()
	suite.staffID = uuid.New()
	suite.freelancer = uuid.New()
}

func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentServiceTestSuite) event(totalDays int, details *models.QuotationDetails) *models.Event {
	return &models.Event{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		FirmID:           suite.firmID,
		ClientID:         uuid.New(),
		Title:            "Verma Wedding",
		EventType:        models.EventTypeWedding,
		EventDate:        time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		TotalDays:        totalDays,
		QuotationDetails: details,
	}
}

func (suite *AssignmentServiceTestSuite) expectDirectory() {
	suite.mockStaffRepo.EXPECT().ListByFirmID(suite.firmID).Return([]models.Staff{
		{BaseModel: models.BaseModel{ID: suite.staffID}, FirmID: suite.firmID, FullName: "Ravi Kumar", Role: "Photographer", Phone: "+91-9000000003"},
	}, nil)
	suite.mockFreelancerRepo.EXPECT().ListByFirmID(suite.firmID).Return([]models.Freelancer{
		{BaseModel: models.BaseModel{ID: suite.freelancer}, FirmID: suite.firmID, FullName: "Meera Joshi", Role: "Cinematographer", Phone: "+91-9000000004"},
	}, nil)
}

func (suite *AssignmentServiceTestSuite) TestGetDaySlots_QuotationGoverned() {
	details := &models.QuotationDetails{
		Days: []models.DayCrewConfig{
			{Photographers: 2, Cinematographers: 1},
			{Photographers: 1},
		},
	}
	event := suite.event(2, details)

	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.mockAssignmentRepo.EXPECT().GetByEventID(event.ID).Return(nil, nil)

	resp, err := suite.assignmentService.GetDaySlots(event.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.QuotationGoverned)
	assert.Equal(suite.T(), 2, resp.TotalDays)
	assert.Len(suite.T(), resp.Days, 2)
	assert.Len(suite.T(), resp.Days[0].PhotographerIDs, 2)
	assert.Len(suite.T(), resp.Days[0].CinematographerIDs, 1)
	assert.Len(suite.T(), resp.Days[1].PhotographerIDs, 1)
}

func (suite *AssignmentServiceTestSuite) TestGetDaySlots_FallsBackToQuotationSource() {
	quotationID := uuid.New()
	event := suite.event(1, nil)
	event.QuotationSourceID = &quotationID

	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.mockAssignmentRepo.EXPECT().GetByEventID(event.ID).Return(nil, nil)
	suite.mockQuotationRepo.EXPECT().GetByID(quotationID).Return(&models.Quotation{
		BaseModel: models.BaseModel{ID: quotationID},
		Details: &models.QuotationDetails{
			Days: []models.DayCrewConfig{{Photographers: 3}},
		},
	}, nil)

	resp, err := suite.assignmentService.GetDaySlots(event.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.QuotationGoverned)
	assert.Len(suite.T(), resp.Days[0].PhotographerIDs, 3)
}

func (suite *AssignmentServiceTestSuite) TestGetDaySlots_EventNotFound() {
	eventID := uuid.New()
	suite.mockEventRepo.EXPECT().GetByID(eventID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.assignmentService.GetDaySlots(eventID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEventNotFound)
}

func (suite *AssignmentServiceTestSuite) TestSaveForEvent_DiffAndDispatch() {
	event := suite.event(2, nil)
	existingDate := event.DayDate(1)

	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.expectDirectory()

	// Day 1 already has the staff photographer; the save keeps them and adds
	// the freelancer cinematographer on day 2.
	staffID := suite.staffID
	before := []models.StaffAssignment{
		{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			FirmID:     suite.firmID,
			EventID:    event.ID,
			StaffID:    &staffID,
			PersonKind: models.PersonKindStaff,
			Role:       models.RolePhotographer,
			DayNumber:  1,
			DayDate:    existingDate,
		},
	}
	suite.mockAssignmentRepo.EXPECT().GetByEventID(event.ID).Return(before, nil)

	var replaced []models.StaffAssignment
	suite.mockAssignmentRepo.EXPECT().ReplaceForEvent(event.ID, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, rows []models.StaffAssignment) error {
			replaced = rows
			return nil
		})

	req := &service.SaveAssignmentsRequest{
		Days: []crewplan.DaySlots{
			{Day: 1, PhotographerIDs: []string{suite.staffID.String()}},
			{Day: 2, CinematographerIDs: []string{suite.freelancer.String()}},
		},
	}
	resp, err := suite.assignmentService.SaveForEvent(context.Background(), event.ID, req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), replaced, 2)
	assert.Len(suite.T(), resp.Added, 1)
	assert.Empty(suite.T(), resp.Removed)
	assert.Equal(suite.T(), suite.freelancer, resp.Added[0].PersonID)
	assert.Equal(suite.T(), models.PersonKindFreelancer, resp.Added[0].PersonKind)
	assert.Equal(suite.T(), "Meera Joshi", resp.Added[0].PersonName)
	assert.Equal(suite.T(), 2, resp.Added[0].DayNumber)
	assert.Equal(suite.T(), 1, suite.dispatcher.calls)
	assert.Len(suite.T(), suite.dispatcher.added, 1)
}

func (suite *AssignmentServiceTestSuite) TestSaveForEvent_SkipsEmptyAndUnknownIDs() {
	event := suite.event(1, nil)

	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.expectDirectory()
	suite.mockAssignmentRepo.EXPECT().GetByEventID(event.ID).Return(nil, nil)

	var replaced []models.StaffAssignment
	suite.mockAssignmentRepo.EXPECT().ReplaceForEvent(event.ID, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, rows []models.StaffAssignment) error {
			replaced = rows
			return nil
		})

	req := &service.SaveAssignmentsRequest{
		Days: []crewplan.DaySlots{
			{Day: 1, PhotographerIDs: []string{"", uuid.New().String(), suite.staffID.String()}},
		},
	}
	resp, err := suite.assignmentService.SaveForEvent(context.Background(), event.ID, req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), replaced, 1)
	assert.Equal(suite.T(), suite.staffID, resp.Added[0].PersonID)
}

func (suite *AssignmentServiceTestSuite) TestSaveForEvent_DuplicatePersonSameRoleSameDay() {
	event := suite.event(1, nil)

	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.expectDirectory()

	req := &service.SaveAssignmentsRequest{
		Days: []crewplan.DaySlots{
			{Day: 1, PhotographerIDs: []string{suite.staffID.String(), suite.staffID.String()}},
		},
	}
	_, err := suite.assignmentService.SaveForEvent(context.Background(), event.ID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicateAssignment)
	assert.Zero(suite.T(), suite.dispatcher.calls)
}

func (suite *AssignmentServiceTestSuite) TestSaveForEvent_SamePersonTwoRolesAllowed() {
	event := suite.event(1, nil)

	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.expectDirectory()
	suite.mockAssignmentRepo.EXPECT().GetByEventID(event.ID).Return(nil, nil)
	suite.mockAssignmentRepo.EXPECT().ReplaceForEvent(event.ID, gomock.Any()).Return(nil)

	req := &service.SaveAssignmentsRequest{
		Days: []crewplan.DaySlots{
			{
				Day:             1,
				PhotographerIDs: []string{suite.staffID.String()},
				DronePilotIDs:   []string{suite.staffID.String()},
			},
		},
	}
	resp, err := suite.assignmentService.SaveForEvent(context.Background(), event.ID, req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Added, 2)
}

func (suite *AssignmentServiceTestSuite) TestSaveForEvent_SnapshotBackfill() {
	quotationID := uuid.New()
	event := suite.event(1, nil)
	event.QuotationSourceID = &quotationID
	details := &models.QuotationDetails{Days: []models.DayCrewConfig{{Photographers: 1}}}

	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.expectDirectory()
	suite.mockQuotationRepo.EXPECT().GetByID(quotationID).Return(&models.Quotation{
		BaseModel: models.BaseModel{ID: quotationID},
		Details:   details,
	}, nil)
	suite.mockEventRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(e *models.Event) error {
		assert.NotNil(suite.T(), e.QuotationDetails)
		return nil
	})
	suite.mockAssignmentRepo.EXPECT().GetByEventID(event.ID).Return(nil, nil)
	suite.mockAssignmentRepo.EXPECT().ReplaceForEvent(event.ID, gomock.Any()).Return(nil)

	req := &service.SaveAssignmentsRequest{
		Days: []crewplan.DaySlots{{Day: 1, PhotographerIDs: []string{suite.staffID.String()}}},
	}
	_, err := suite.assignmentService.SaveForEvent(context.Background(), event.ID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), event.QuotationDetails)
}

func (suite *AssignmentServiceTestSuite) TestSaveForEvent_ReplaceFails_NoDispatch() {
	event := suite.event(1, nil)

	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.expectDirectory()
	suite.mockAssignmentRepo.EXPECT().GetByEventID(event.ID).Return(nil, nil)
	suite.mockAssignmentRepo.EXPECT().ReplaceForEvent(event.ID, gomock.Any()).Return(errors.New("db down"))

	req := &service.SaveAssignmentsRequest{
		Days: []crewplan.DaySlots{{Day: 1, PhotographerIDs: []string{suite.staffID.String()}}},
	}
	_, err := suite.assignmentService.SaveForEvent(context.Background(), event.ID, req)

	assert.Error(suite.T(), err)
	assert.Zero(suite.T(), suite.dispatcher.calls)
}

func (suite *AssignmentServiceTestSuite) TestSaveForEvent_DispatchFailureIsSwallowed() {
	event := suite.event(1, nil)
	suite.dispatcher.err = errors.New("redis unavailable")

	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.expectDirectory()
	suite.mockAssignmentRepo.EXPECT().GetByEventID(event.ID).Return(nil, nil)
	suite.mockAssignmentRepo.EXPECT().ReplaceForEvent(event.ID, gomock.Any()).Return(nil)

	req := &service.SaveAssignmentsRequest{
		Days: []crewplan.DaySlots{{Day: 1, PhotographerIDs: []string{suite.staffID.String()}}},
	}
	resp, err := suite.assignmentService.SaveForEvent(context.Background(), event.ID, req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Added, 1)
	assert.Equal(suite.T(), 1, suite.dispatcher.calls)
}

func (suite *AssignmentServiceTestSuite) TestSaveForEvent_EmptyDaysRejected() {
	req := &service.SaveAssignmentsRequest{}
	_, err := suite.assignmentService.SaveForEvent(context.Background(), uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *AssignmentServiceTestSuite) TestCheckConflicts_OverlapOnOtherEvent() {
	event := suite.event(1, nil)
	date := time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)

	staffID := suite.staffID
	other := models.StaffAssignment{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		FirmID:     suite.firmID,
		EventID:    uuid.New(),
		StaffID:    &staffID,
		PersonKind: models.PersonKindStaff,
		Role:       models.RolePhotographer,
		DayNumber:  1,
		DayDate:    date,
		Event:      models.Event{Title: "Mehta Reception"},
	}

	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.mockAssignmentRepo.EXPECT().GetAllForFirm(suite.firmID, &event.ID).Return([]models.StaffAssignment{other}, nil)

	resp, err := suite.assignmentService.CheckConflicts(event.ID, suite.staffID.String(), date, 1)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.HasConflicts)
	assert.Len(suite.T(), resp.Conflicts, 1)
}

func (suite *AssignmentServiceTestSuite) TestCheckConflicts_EmptyPersonShortCircuits() {
	resp, err := suite.assignmentService.CheckConflicts(uuid.New(), "", time.Now(), 1)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.HasConflicts)
	assert.Empty(suite.T(), resp.Conflicts)
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
