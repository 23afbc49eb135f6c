package repository

import (
	"time"

	"studio-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// FirmRepositoryInterface defines the interface for firm repository operations
type FirmRepositoryInterface interface {
	Create(firm *models.Firm) error
	GetByID(id uuid.UUID) (*models.Firm, error)
	GetByName(name string) (*models.Firm, error)
	GetAll(limit, offset int) ([]models.Firm, int64, error)
	Update(firm *models.Firm) error
	Delete(id uuid.UUID) error
}

// ClientRepositoryInterface defines the interface for client repository operations
type ClientRepositoryInterface interface {
	Create(client *models.Client) error
	GetByID(id uuid.UUID) (*models.Client, error)
	GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Client, int64, error)
	Search(firmID uuid.UUID, query string, limit, offset int) ([]models.Client, int64, error)
	Update(client *models.Client) error
	Delete(id uuid.UUID) error
}

// StaffRepositoryInterface defines the interface for staff repository operations
type StaffRepositoryInterface interface {
	Create(staff *models.Staff) error
	GetByID(id uuid.UUID) (*models.Staff, error)
	GetByEmail(email string) (*models.Staff, error)
	GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Staff, int64, error)
	ListByFirmID(firmID uuid.UUID) ([]models.Staff, error)
	GetActiveByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Staff, int64, error)
	Update(staff *models.Staff) error
	Delete(id uuid.UUID) error
}

// FreelancerRepositoryInterface defines the interface for freelancer repository operations
type FreelancerRepositoryInterface interface {
	Create(freelancer *models.Freelancer) error
	GetByID(id uuid.UUID) (*models.Freelancer, error)
	GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Freelancer, int64, error)
	ListByFirmID(firmID uuid.UUID) ([]models.Freelancer, error)
	Update(freelancer *models.Freelancer) error
	Delete(id uuid.UUID) error
}

// QuotationRepositoryInterface defines the interface for quotation repository operations
type QuotationRepositoryInterface interface {
	Create(quotation *models.Quotation) error
	GetByID(id uuid.UUID) (*models.Quotation, error)
	GetWithClient(id uuid.UUID) (*models.Quotation, error)
	GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Quotation, int64, error)
	GetByStatus(firmID uuid.UUID, status models.QuotationStatus, limit, offset int) ([]models.Quotation, int64, error)
	Update(quotation *models.Quotation) error
	Delete(id uuid.UUID) error
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	GetWithClient(id uuid.UUID) (*models.Event, error)
	GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Event, int64, error)
	GetUpcoming(firmID uuid.UUID, days int, limit, offset int) ([]models.Event, int64, error)
	Update(event *models.Event) error
	Delete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for staff assignment repository operations
type AssignmentRepositoryInterface interface {
	GetByEventID(eventID uuid.UUID) ([]models.StaffAssignment, error)
	GetAllForFirm(firmID uuid.UUID, excludeEventID *uuid.UUID) ([]models.StaffAssignment, error)
	GetByPerson(firmID uuid.UUID, kind models.PersonKind, personID uuid.UUID) ([]models.StaffAssignment, error)
	ReplaceForEvent(eventID uuid.UUID, rows []models.StaffAssignment) error
	DeleteByEventID(eventID uuid.UUID) error
}

// PaymentRepositoryInterface defines the interface for payment repository operations
type PaymentRepositoryInterface interface {
	Create(payment *models.Payment) error
	GetByID(id uuid.UUID) (*models.Payment, error)
	GetByEventID(eventID uuid.UUID, limit, offset int) ([]models.Payment, int64, error)
	GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Payment, int64, error)
	Update(payment *models.Payment) error
	Delete(id uuid.UUID) error
}

// AccountingEntryRepositoryInterface defines the interface for accounting entry repository operations
type AccountingEntryRepositoryInterface interface {
	Create(entry *models.AccountingEntry) error
	GetByID(id uuid.UUID) (*models.AccountingEntry, error)
	GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.AccountingEntry, int64, error)
	GetByPeriod(firmID uuid.UUID, from, to time.Time, limit, offset int) ([]models.AccountingEntry, int64, error)
	GetByKind(firmID uuid.UUID, kind models.EntryKind, limit, offset int) ([]models.AccountingEntry, int64, error)
	Update(entry *models.AccountingEntry) error
	Delete(id uuid.UUID) error
}
