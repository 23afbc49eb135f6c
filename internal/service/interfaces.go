package service

import (
	"context"
	"time"

	"studio-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// FirmServiceInterface defines the interface for firm service
type FirmServiceInterface interface {
	CreateFirm(req *CreateFirmRequest) (*FirmResponse, error)
	GetFirmByID(id uuid.UUID) (*FirmResponse, error)
	UpdateFirm(id uuid.UUID, req *UpdateFirmRequest) (*FirmResponse, error)
}

// ClientServiceInterface defines the interface for client service
type ClientServiceInterface interface {
	CreateClient(firmID uuid.UUID, req *CreateClientRequest) (*ClientResponse, error)
	GetClientByID(firmID, id uuid.UUID) (*ClientResponse, error)
	ListClients(firmID uuid.UUID, query string, page, pageSize int) (*ClientListResponse, error)
	UpdateClient(firmID, id uuid.UUID, req *UpdateClientRequest) (*ClientResponse, error)
	DeleteClient(firmID, id uuid.UUID) error
}

// StaffServiceInterface defines the interface for staff service
type StaffServiceInterface interface {
	CreateStaff(firmID uuid.UUID, req *CreateStaffRequest) (*StaffResponse, error)
	GetStaffByID(firmID, id uuid.UUID) (*StaffResponse, error)
	ListStaff(firmID uuid.UUID, activeOnly bool, page, pageSize int) (*StaffListResponse, error)
	UpdateStaff(firmID, id uuid.UUID, req *UpdateStaffRequest) (*StaffResponse, error)
	DeleteStaff(firmID, id uuid.UUID) error
}

// FreelancerServiceInterface defines the interface for freelancer service
type FreelancerServiceInterface interface {
	CreateFreelancer(firmID uuid.UUID, req *CreateFreelancerRequest) (*FreelancerResponse, error)
	GetFreelancerByID(firmID, id uuid.UUID) (*FreelancerResponse, error)
	ListFreelancers(firmID uuid.UUID, page, pageSize int) (*FreelancerListResponse, error)
	UpdateFreelancer(firmID, id uuid.UUID, req *UpdateFreelancerRequest) (*FreelancerResponse, error)
	DeleteFreelancer(firmID, id uuid.UUID) error
}

// QuotationServiceInterface defines the interface for quotation service
type QuotationServiceInterface interface {
	CreateQuotation(firmID uuid.UUID, req *CreateQuotationRequest) (*QuotationResponse, error)
	GetQuotationByID(firmID, id uuid.UUID) (*QuotationResponse, error)
	ListQuotations(firmID uuid.UUID, status models.QuotationStatus, page, pageSize int) (*QuotationListResponse, error)
	UpdateQuotation(firmID, id uuid.UUID, req *UpdateQuotationRequest) (*QuotationResponse, error)
	UpdateStatus(firmID, id uuid.UUID, req *UpdateQuotationStatusRequest) (*QuotationResponse, error)
	DeleteQuotation(firmID, id uuid.UUID) error
}

// EventServiceInterface defines the interface for event service
type EventServiceInterface interface {
	CreateEvent(firmID uuid.UUID, req *CreateEventRequest) (*EventResponse, error)
	GetEventByID(firmID, id uuid.UUID) (*EventResponse, error)
	ListEvents(firmID uuid.UUID, upcomingDays, page, pageSize int) (*EventListResponse, error)
	UpdateEvent(firmID, id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error)
	DeleteEvent(firmID, id uuid.UUID) error
}

// AssignmentServiceInterface defines the interface for assignment service
type AssignmentServiceInterface interface {
	GetDaySlots(eventID uuid.UUID) (*DaySlotsResponse, error)
	CheckConflicts(eventID uuid.UUID, personID string, date time.Time, windowDays int) (*ConflictCheckResponse, error)
	SaveForEvent(ctx context.Context, eventID uuid.UUID, req *SaveAssignmentsRequest) (*AssignmentDiffResponse, error)
}

// PaymentServiceInterface defines the interface for payment service
type PaymentServiceInterface interface {
	CreatePayment(firmID uuid.UUID, req *CreatePaymentRequest) (*PaymentResponse, error)
	ListPayments(firmID uuid.UUID, eventID *uuid.UUID, page, pageSize int) (*PaymentListResponse, error)
	DeletePayment(firmID, id uuid.UUID) error
}

// AccountingServiceInterface defines the interface for accounting service
type AccountingServiceInterface interface {
	CreateEntry(firmID uuid.UUID, req *CreateEntryRequest) (*EntryResponse, error)
	ListEntries(firmID uuid.UUID, kind models.EntryKind, page, pageSize int) (*EntryListResponse, error)
	Summarize(firmID uuid.UUID, from, to time.Time) (*LedgerSummaryResponse, error)
	DeleteEntry(firmID, id uuid.UUID) error
}

// PersonServiceInterface defines the interface for the merged person directory
type PersonServiceInterface interface {
	Directory(firmID uuid.UUID) (PersonDirectory, error)
	ListPeople(firmID uuid.UUID) ([]Person, error)
}
