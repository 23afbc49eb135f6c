package service_test

import (
	"testing"
	"time"

	"studio-manager-backend/internal/database/models"
	apperrors "studio-manager-backend/internal/errors"
	"studio-manager-backend/internal/mocks"
	"studio-manager-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockEventRepo      *mocks.MockEventRepositoryInterface
	mockQuotationRepo  *mocks.MockQuotationRepositoryInterface
	mockClientRepo     *mocks.MockClientRepositoryInterface
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	eventService       *service.EventService

	firmID uuid.UUID
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEventRepo = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.mockQuotationRepo = mocks.NewMockQuotationRepositoryInterface(suite.ctrl)
	suite.mockClientRepo = mocks.NewMockClientRepositoryInterface(suite.ctrl)
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.eventService = service.NewEventService(
		suite.mockEventRepo,
		suite.mockQuotationRepo,
		suite.mockClientRepo,
		suite.mockAssignmentRepo,
		validator.New(),
	)
	suite.firmID = uuid.New()
}

func (suite *EventServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EventServiceTestSuite) acceptedQuotation(clientID uuid.UUID) *models.Quotation {
	return &models.Quotation{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FirmID:    suite.firmID,
		ClientID:  clientID,
		Title:     "Wedding Package",
		EventType: models.EventTypeWedding,
		EventDate: time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		TotalDays: 2,
		Amount:    150000,
		Status:    models.QuotationStatusAccepted,
		Details: &models.QuotationDetails{
			Days: []models.DayCrewConfig{{Photographers: 2}, {Photographers: 1}},
		},
	}
}

func (suite *EventServiceTestSuite) expectOwnedClient(clientID uuid.UUID) {
	suite.mockClientRepo.EXPECT().GetByID(clientID).Return(&models.Client{
		BaseModel: models.BaseModel{ID: clientID},
		FirmID:    suite.firmID,
		Name:      "Asha Verma",
	}, nil)
}

func (suite *EventServiceTestSuite) TestCreateEvent_FromAcceptedQuotation() {
	clientID := uuid.New()
	quotation := suite.acceptedQuotation(clientID)

	suite.mockQuotationRepo.EXPECT().GetByID(quotation.ID).Return(quotation, nil)
	suite.expectOwnedClient(clientID)

	var created *models.Event
	suite.mockEventRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.Event) error {
		created = e
		return nil
	})

	// Everything defaults from the quotation
	resp, err := suite.eventService.CreateEvent(suite.firmID, &service.CreateEventRequest{
		QuotationID: &quotation.ID,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Wedding Package", resp.Title)
	assert.Equal(suite.T(), clientID, resp.ClientID)
	assert.Equal(suite.T(), 2, resp.TotalDays)
	assert.Equal(suite.T(), "2026-11-20", resp.EventDate)
	assert.Equal(suite.T(), &quotation.ID, resp.QuotationSourceID)
	// crew details are snapshotted onto the event
	assert.NotNil(suite.T(), created.QuotationDetails)
	assert.Len(suite.T(), created.QuotationDetails.Days, 2)
}

func (suite *EventServiceTestSuite) TestCreateEvent_QuotationNotAccepted() {
	clientID := uuid.New()
	quotation := suite.acceptedQuotation(clientID)
	quotation.Status = models.QuotationStatusSent

	suite.mockQuotationRepo.EXPECT().GetByID(quotation.ID).Return(quotation, nil)

	_, err := suite.eventService.CreateEvent(suite.firmID, &service.CreateEventRequest{
		QuotationID: &quotation.ID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrQuotationNotAccepted)
}

func (suite *EventServiceTestSuite) TestCreateEvent_QuotationFromAnotherFirm() {
	quotation := suite.acceptedQuotation(uuid.New())
	quotation.FirmID = uuid.New()

	suite.mockQuotationRepo.EXPECT().GetByID(quotation.ID).Return(quotation, nil)

	_, err := suite.eventService.CreateEvent(suite.firmID, &service.CreateEventRequest{
		QuotationID: &quotation.ID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrQuotationFirmMismatch)
}

func (suite *EventServiceTestSuite) TestCreateEvent_Standalone() {
	clientID := uuid.New()
	suite.expectOwnedClient(clientID)
	suite.mockEventRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.eventService.CreateEvent(suite.firmID, &service.CreateEventRequest{
		ClientID:  &clientID,
		Title:     "Maternity Shoot",
		EventType: models.EventTypeMaternity,
		EventDate: "2026-12-05",
		TotalDays: 1,
	})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.QuotationSourceID)
	assert.Equal(suite.T(), "Maternity Shoot", resp.Title)
}

func (suite *EventServiceTestSuite) TestCreateEvent_MissingDate() {
	_, err := suite.eventService.CreateEvent(suite.firmID, &service.CreateEventRequest{
		ClientID:  func() *uuid.UUID { id := uuid.New(); return &id }(),
		Title:     "Maternity Shoot",
		EventType: models.EventTypeMaternity,
		TotalDays: 1,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrEventDateRequired)
}

func (suite *EventServiceTestSuite) TestCreateEvent_MissingTotalDays() {
	_, err := suite.eventService.CreateEvent(suite.firmID, &service.CreateEventRequest{
		ClientID:  func() *uuid.UUID { id := uuid.New(); return &id }(),
		Title:     "Maternity Shoot",
		EventType: models.EventTypeMaternity,
		EventDate: "2026-12-05",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTotalDaysOutOfRange)
}

func (suite *EventServiceTestSuite) TestDeleteEvent_RemovesAssignmentsFirst() {
	event := &models.Event{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FirmID:    suite.firmID,
		ClientID:  uuid.New(),
		Title:     "Verma Wedding",
		EventType: models.EventTypeWedding,
		EventDate: time.Now(),
		TotalDays: 1,
	}
	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)

	gomock.InOrder(
		suite.mockAssignmentRepo.EXPECT().DeleteByEventID(event.ID).Return(nil),
		suite.mockEventRepo.EXPECT().Delete(event.ID).Return(nil),
	)

	err := suite.eventService.DeleteEvent(suite.firmID, event.ID)

	assert.NoError(suite.T(), err)
}

func (suite *EventServiceTestSuite) TestDeleteEvent_FirmMismatch() {
	event := &models.Event{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FirmID:    uuid.New(),
	}
	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)

	err := suite.eventService.DeleteEvent(suite.firmID, event.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrFirmMismatch)
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
