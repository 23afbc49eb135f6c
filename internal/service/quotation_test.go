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
	"gorm.io/gorm"
)

type QuotationServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockQuotationRepo *mocks.MockQuotationRepositoryInterface
	mockClientRepo    *mocks.MockClientRepositoryInterface
	quotationService  *service.QuotationService

	firmID uuid.UUID
}

func (suite *QuotationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockQuotationRepo = mocks.NewMockQuotationRepositoryInterface(suite.ctrl)
	suite.mockClientRepo = mocks.NewMockClientRepositoryInterface(suite.ctrl)
	suite.quotationService = service.NewQuotationService(suite.mockQuotationRepo, suite.mockClientRepo, validator.New())
	suite.firmID = uuid.New()
}

func (suite *QuotationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *QuotationServiceTestSuite) quotation(status models.QuotationStatus) *models.Quotation {
	return &models.Quotation{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FirmID:    suite.firmID,
		ClientID:  uuid.New(),
		Title:     "Wedding Package",
		EventType: models.EventTypeWedding,
		EventDate: time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		TotalDays: 2,
		Amount:    150000,
		Status:    status,
	}
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_Success() {
	clientID := uuid.New()
	suite.mockClientRepo.EXPECT().GetByID(clientID).Return(&models.Client{
		BaseModel: models.BaseModel{ID: clientID},
		FirmID:    suite.firmID,
		Name:      "Asha Verma",
	}, nil)
	suite.mockQuotationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(q *models.Quotation) error {
		assert.Equal(suite.T(), models.QuotationStatusDraft, q.Status)
		assert.Equal(suite.T(), suite.firmID, q.FirmID)
		return nil
	})

	resp, err := suite.quotationService.CreateQuotation(suite.firmID, &service.CreateQuotationRequest{
		ClientID:  clientID,
		Title:     "Wedding Package",
		EventType: models.EventTypeWedding,
		EventDate: "2026-11-20",
		TotalDays: 2,
		Amount:    150000,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.QuotationStatusDraft, resp.Status)
	assert.Equal(suite.T(), "2026-11-20", resp.EventDate)
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_ClientFromAnotherFirm() {
	clientID := uuid.New()
	suite.mockClientRepo.EXPECT().GetByID(clientID).Return(&models.Client{
		BaseModel: models.BaseModel{ID: clientID},
		FirmID:    uuid.New(),
	}, nil)

	_, err := suite.quotationService.CreateQuotation(suite.firmID, &service.CreateQuotationRequest{
		ClientID:  clientID,
		Title:     "Wedding Package",
		EventType: models.EventTypeWedding,
		EventDate: "2026-11-20",
		TotalDays: 2,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrFirmMismatch)
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_BadDate() {
	_, err := suite.quotationService.CreateQuotation(suite.firmID, &service.CreateQuotationRequest{
		ClientID:  uuid.New(),
		Title:     "Wedding Package",
		EventType: models.EventTypeWedding,
		EventDate: "20/11/2026",
		TotalDays: 2,
	})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *QuotationServiceTestSuite) TestUpdateStatus_DraftToSent() {
	q := suite.quotation(models.QuotationStatusDraft)
	suite.mockQuotationRepo.EXPECT().GetByID(q.ID).Return(q, nil)
	suite.mockQuotationRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.quotationService.UpdateStatus(suite.firmID, q.ID, &service.UpdateQuotationStatusRequest{
		Status: models.QuotationStatusSent,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.QuotationStatusSent, resp.Status)
}

func (suite *QuotationServiceTestSuite) TestUpdateStatus_DraftToAcceptedRejected() {
	q := suite.quotation(models.QuotationStatusDraft)
	suite.mockQuotationRepo.EXPECT().GetByID(q.ID).Return(q, nil)

	_, err := suite.quotationService.UpdateStatus(suite.firmID, q.ID, &service.UpdateQuotationStatusRequest{
		Status: models.QuotationStatusAccepted,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *QuotationServiceTestSuite) TestUpdateStatus_RejectedCanBeResent() {
	q := suite.quotation(models.QuotationStatusRejected)
	suite.mockQuotationRepo.EXPECT().GetByID(q.ID).Return(q, nil)
	suite.mockQuotationRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.quotationService.UpdateStatus(suite.firmID, q.ID, &service.UpdateQuotationStatusRequest{
		Status: models.QuotationStatusSent,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.QuotationStatusSent, resp.Status)
}

func (suite *QuotationServiceTestSuite) TestUpdateStatus_AcceptedIsTerminal() {
	q := suite.quotation(models.QuotationStatusAccepted)
	suite.mockQuotationRepo.EXPECT().GetByID(q.ID).Return(q, nil)

	_, err := suite.quotationService.UpdateStatus(suite.firmID, q.ID, &service.UpdateQuotationStatusRequest{
		Status: models.QuotationStatusSent,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *QuotationServiceTestSuite) TestUpdateQuotation_AcceptedIsFrozen() {
	q := suite.quotation(models.QuotationStatusAccepted)
	suite.mockQuotationRepo.EXPECT().GetByID(q.ID).Return(q, nil)

	title := "New Title"
	_, err := suite.quotationService.UpdateQuotation(suite.firmID, q.ID, &service.UpdateQuotationRequest{
		Title: &title,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *QuotationServiceTestSuite) TestUpdateQuotation_PartialFields() {
	q := suite.quotation(models.QuotationStatusDraft)
	suite.mockQuotationRepo.EXPECT().GetByID(q.ID).Return(q, nil)
	suite.mockQuotationRepo.EXPECT().Update(gomock.Any()).Return(nil)

	amount := 175000.0
	resp, err := suite.quotationService.UpdateQuotation(suite.firmID, q.ID, &service.UpdateQuotationRequest{
		Amount: &amount,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 175000.0, resp.Amount)
	// untouched fields keep their values
	assert.Equal(suite.T(), "Wedding Package", resp.Title)
}

func (suite *QuotationServiceTestSuite) TestDeleteQuotation_AcceptedBlocked() {
	q := suite.quotation(models.QuotationStatusAccepted)
	suite.mockQuotationRepo.EXPECT().GetByID(q.ID).Return(q, nil)

	err := suite.quotationService.DeleteQuotation(suite.firmID, q.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *QuotationServiceTestSuite) TestDeleteQuotation_Draft() {
	q := suite.quotation(models.QuotationStatusDraft)
	suite.mockQuotationRepo.EXPECT().GetByID(q.ID).Return(q, nil)
	suite.mockQuotationRepo.EXPECT().Delete(q.ID).Return(nil)

	err := suite.quotationService.DeleteQuotation(suite.firmID, q.ID)

	assert.NoError(suite.T(), err)
}

func (suite *QuotationServiceTestSuite) TestListQuotations_InvalidStatusFilter() {
	_, err := suite.quotationService.ListQuotations(suite.firmID, models.QuotationStatus("archived"), 1, 20)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *QuotationServiceTestSuite) TestGetQuotationByID_NotFound() {
	id := uuid.New()
	suite.mockQuotationRepo.EXPECT().GetWithClient(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.quotationService.GetQuotationByID(suite.firmID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrQuotationNotFound)
}

func TestQuotationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuotationServiceTestSuite))
}
