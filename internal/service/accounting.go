package service

import (
	"errors"
	"fmt"
	"time"

	"studio-manager-backend/internal/database/models"
	apperrors "studio-manager-backend/internal/errors"
	"studio-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountingService provides ledger-related business logic
type AccountingService struct {
	repo      repository.AccountingEntryRepositoryInterface
	validator *validator.Validate
}

// Ensure AccountingService implements AccountingServiceInterface
var _ AccountingServiceInterface = (*AccountingService)(nil)

// NewAccountingService creates a new AccountingService
func NewAccountingService(repo repository.AccountingEntryRepositoryInterface, validator *validator.Validate) *AccountingService {
	return &AccountingService{
		repo:      repo,
		validator: validator,
	}
}

// CreateEntryRequest represents the request to record a ledger entry
type CreateEntryRequest struct {
	EventID   *uuid.UUID       `json:"event_id"`
	Kind      models.EntryKind `json:"kind" validate:"required"`
	Category  string           `json:"category" validate:"required,max=50"`
	Amount    float64          `json:"amount" validate:"required,gt=0"`
	EntryDate string           `json:"entry_date" validate:"required"`
	Note      string           `json:"note"`
}

// EntryResponse represents a ledger entry in API responses
type EntryResponse struct {
	ID        uuid.UUID        `json:"id"`
	FirmID    uuid.UUID        `json:"firm_id"`
	EventID   *uuid.UUID       `json:"event_id,omitempty"`
	Kind      models.EntryKind `json:"kind"`
	Category  string           `json:"category"`
	Amount    float64          `json:"amount"`
	EntryDate string           `json:"entry_date"`
	Note      string           `json:"note,omitempty"`
}

// EntryListResponse represents a paginated list of ledger entries
type EntryListResponse struct {
	Entries  []EntryResponse `json:"entries"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// LedgerSummaryResponse aggregates a period's income and expenses
type LedgerSummaryResponse struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// CreateEntry records a ledger entry for the firm
func (s *AccountingService) CreateEntry(firmID uuid.UUID, req *CreateEntryRequest) (*EntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Kind.IsValid() {
		return nil, apperrors.NewValidationError("kind", "must be income or expense")
	}

	entryDate, err := parseDate(req.EntryDate)
	if err != nil {
		return nil, apperrors.NewValidationError("entry_date", "must be YYYY-MM-DD")
	}

	entry := &models.AccountingEntry{
		FirmID:    firmID,
		EventID:   req.EventID,
		Kind:      req.Kind,
		Category:  req.Category,
		Amount:    req.Amount,
		EntryDate: entryDate,
		Note:      req.Note,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	response := s.toResponse(entry)
	return &response, nil
}

// ListEntries retrieves ledger entries, optionally filtered by kind
func (s *AccountingService) ListEntries(firmID uuid.UUID, kind models.EntryKind, page, pageSize int) (*EntryListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	var (
		entries []models.AccountingEntry
		total   int64
		err     error
	)
	if kind != "" {
		if !kind.IsValid() {
			return nil, apperrors.NewValidationError("kind", "must be income or expense")
		}
		entries, total, err = s.repo.GetByKind(firmID, kind, pageSize, offset)
	} else {
		entries, total, err = s.repo.GetByFirmID(firmID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	responses := make([]EntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = s.toResponse(&e)
	}

	return &EntryListResponse{
		Entries:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Summarize aggregates income and expenses between two dates inclusive
func (s *AccountingService) Summarize(firmID uuid.UUID, from, to time.Time) (*LedgerSummaryResponse, error) {
	if to.Before(from) {
		return nil, apperrors.NewValidationError("to", "end of period precedes start")
	}

	// Page through the period; summaries cover months, not unbounded history.
	const chunk = 500
	summary := &LedgerSummaryResponse{
		From: from.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
	}
	for offset := 0; ; offset += chunk {
		entries, total, err := s.repo.GetByPeriod(firmID, from, to, chunk, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize ledger: %w", err)
		}
		for i := range entries {
			if entries[i].Kind == models.EntryKindIncome {
				summary.Income += entries[i].Amount
			} else {
				summary.Expenses += entries[i].Amount
			}
		}
		if int64(offset+len(entries)) >= total || len(entries) == 0 {
			break
		}
	}
	summary.Net = summary.Income - summary.Expenses
	return summary, nil
}

// DeleteEntry removes a ledger entry
func (s *AccountingService) DeleteEntry(firmID, id uuid.UUID) error {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccountingEntryNotFound
		}
		return fmt.Errorf("failed to get ledger entry: %w", err)
	}
	if entry.FirmID != firmID {
		return apperrors.ErrFirmMismatch
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	return nil
}

// toResponse converts an AccountingEntry model to API response
func (s *AccountingService) toResponse(entry *models.AccountingEntry) EntryResponse {
	return EntryResponse{
		ID:        entry.ID,
		FirmID:    entry.FirmID,
		EventID:   entry.EventID,
		Kind:      entry.Kind,
		Category:  entry.Category,
		Amount:    entry.Amount,
		EntryDate: entry.EntryDate.Format("2006-01-02"),
		Note:      entry.Note,
	}
}
