package service

import (
	"errors"
	"fmt"

	"studio-manager-backend/internal/database/models"
	apperrors "studio-manager-backend/internal/errors"
	"studio-manager-backend/internal/logger"
	"studio-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService provides payment-related business logic. Every recorded
// payment also posts an income row to the firm's ledger.
type PaymentService struct {
	repo           repository.PaymentRepositoryInterface
	eventRepo      repository.EventRepositoryInterface
	accountingRepo repository.AccountingEntryRepositoryInterface
	validator      *validator.Validate
}

// Ensure PaymentService implements PaymentServiceInterface
var _ PaymentServiceInterface = (*PaymentService)(nil)

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	repo repository.PaymentRepositoryInterface,
	eventRepo repository.EventRepositoryInterface,
	accountingRepo repository.AccountingEntryRepositoryInterface,
	validator *validator.Validate,
) *PaymentService {
	return &PaymentService{
		repo:           repo,
		eventRepo:      eventRepo,
		accountingRepo: accountingRepo,
		validator:      validator,
	}
}

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	EventID uuid.UUID            `json:"event_id" validate:"required"`
	Amount  float64              `json:"amount" validate:"required,gt=0"`
	Method  models.PaymentMethod `json:"method" validate:"required"`
	PaidAt  string               `json:"paid_at" validate:"required"`
	Note    string               `json:"note"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID      uuid.UUID            `json:"id"`
	FirmID  uuid.UUID            `json:"firm_id"`
	EventID uuid.UUID            `json:"event_id"`
	Amount  float64              `json:"amount"`
	Method  models.PaymentMethod `json:"method"`
	PaidAt  string               `json:"paid_at"`
	Note    string               `json:"note,omitempty"`
}

// PaymentListResponse represents a paginated list of payments
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// CreatePayment records a payment against an event and posts the matching
// income entry to the ledger. Ledger posting is best-effort; a failure is
// logged and the payment stands.
func (s *PaymentService) CreatePayment(firmID uuid.UUID, req *CreatePaymentRequest) (*PaymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Method.IsValid() {
		return nil, apperrors.NewValidationError("method", "unknown payment method")
	}

	paidAt, err := parseDate(req.PaidAt)
	if err != nil {
		return nil, apperrors.NewValidationError("paid_at", "must be YYYY-MM-DD")
	}

	event, err := s.eventRepo.GetByID(req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event.FirmID != firmID {
		return nil, apperrors.ErrFirmMismatch
	}

	payment := &models.Payment{
		FirmID:  firmID,
		EventID: req.EventID,
		Amount:  req.Amount,
		Method:  req.Method,
		PaidAt:  paidAt,
		Note:    req.Note,
	}
	if err := s.repo.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	entry := &models.AccountingEntry{
		FirmID:    firmID,
		EventID:   &payment.EventID,
		Kind:      models.EntryKindIncome,
		Category:  "event payment",
		Amount:    payment.Amount,
		EntryDate: payment.PaidAt,
		Note:      fmt.Sprintf("payment for %s", event.Title),
	}
	if err := s.accountingRepo.Create(entry); err != nil {
		logger.New().WithField("payment_id", payment.ID).Warnf("failed to post ledger entry: %v", err)
	}

	response := s.toResponse(payment)
	return &response, nil
}

// ListPayments retrieves payments for a firm, optionally narrowed to one event
func (s *PaymentService) ListPayments(firmID uuid.UUID, eventID *uuid.UUID, page, pageSize int) (*PaymentListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	var (
		payments []models.Payment
		total    int64
		err      error
	)
	if eventID != nil {
		payments, total, err = s.repo.GetByEventID(*eventID, pageSize, offset)
	} else {
		payments, total, err = s.repo.GetByFirmID(firmID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		if payments[i].FirmID != firmID {
			continue
		}
		responses = append(responses, s.toResponse(&payments[i]))
	}

	return &PaymentListResponse{
		Payments: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// DeletePayment removes a payment record
func (s *PaymentService) DeletePayment(firmID, id uuid.UUID) error {
	payment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to get payment: %w", err)
	}
	if payment.FirmID != firmID {
		return apperrors.ErrFirmMismatch
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}

// toResponse converts a Payment model to API response
func (s *PaymentService) toResponse(payment *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:      payment.ID,
		FirmID:  payment.FirmID,
		EventID: payment.EventID,
		Amount:  payment.Amount,
		Method:  payment.Method,
		PaidAt:  payment.PaidAt.Format("2006-01-02"),
		Note:    payment.Note,
	}
}
