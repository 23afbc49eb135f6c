package testutils

import (
	"time"

	"studio-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

// FirmFactory provides methods to create test Firm data
type FirmFactory struct{}

// NewFirmFactory creates a new FirmFactory
func NewFirmFactory() *FirmFactory {
	return &FirmFactory{}
}

// Create creates a test Firm with default values
func (f *FirmFactory) Create() *models.Firm {
	id := uuid.New()
	return &models.Firm{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// unique suffix so suites can create several firms
		Name:    "Test Studio " + id.String()[:8],
		Tagline: "Capturing moments",
		Phone:   "+91-9000000001",
		Email:   "hello@teststudio.com",
		Address: "12 Gallery Lane",
	}
}

// WithName sets a custom name for the firm
func (f *FirmFactory) WithName(name string) *models.Firm {
	firm := f.Create()
	firm.Name = name
	return firm
}

// ClientFactory provides methods to create test Client data
type ClientFactory struct{}

// NewClientFactory creates a new ClientFactory
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// Create creates a test Client with default values
func (f *ClientFactory) Create() *models.Client {
	return &models.Client{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirmID:  uuid.New(),
		Name:    "Asha Verma",
		Phone:   "+91-9000000002",
		Email:   "asha@example.com",
		Address: "4 Lake View Road",
	}
}

// WithFirm sets the firm ID for the client
func (f *ClientFactory) WithFirm(firmID uuid.UUID) *models.Client {
	client := f.Create()
	client.FirmID = firmID
	return client
}

// StaffFactory provides methods to create test Staff data
type StaffFactory struct{}

// NewStaffFactory creates a new StaffFactory
func NewStaffFactory() *StaffFactory {
	return &StaffFactory{}
}

// Create creates a test Staff member with default values
func (f *StaffFactory) Create() *models.Staff {
	id := uuid.New()
	return &models.Staff{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirmID:   uuid.New(),
		FullName: "Ravi Kumar",
		Role:     "Photographer",
		Phone:    "+91-9000000003",
		// unique email, staff carries a uniqueIndex on it
		Email:    "ravi." + id.String()[:8] + "@teststudio.com",
		IsActive: true,
	}
}

// WithFirm sets the firm ID for the staff member
func (f *StaffFactory) WithFirm(firmID uuid.UUID) *models.Staff {
	staff := f.Create()
	staff.FirmID = firmID
	return staff
}

// WithEmail sets a custom email for the staff member
func (f *StaffFactory) WithEmail(email string) *models.Staff {
	staff := f.Create()
	staff.Email = email
	return staff
}

// FreelancerFactory provides methods to create test Freelancer data
type FreelancerFactory struct{}

// NewFreelancerFactory creates a new FreelancerFactory
func NewFreelancerFactory() *FreelancerFactory {
	return &FreelancerFactory{}
}

// Create creates a test Freelancer with default values
func (f *FreelancerFactory) Create() *models.Freelancer {
	return &models.Freelancer{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirmID:    uuid.New(),
		FullName:  "Meera Joshi",
		Role:      "Cinematographer",
		Phone:     "+91-9000000004",
		Email:     "meera@example.com",
		DailyRate: 8000,
	}
}

// WithFirm sets the firm ID for the freelancer
func (f *FreelancerFactory) WithFirm(firmID uuid.UUID) *models.Freelancer {
	fl := f.Create()
	fl.FirmID = firmID
	return fl
}

// QuotationFactory provides methods to create test Quotation data
type QuotationFactory struct{}

// NewQuotationFactory creates a new QuotationFactory
func NewQuotationFactory() *QuotationFactory {
	return &QuotationFactory{}
}

// Create creates a test Quotation with default values
func (f *QuotationFactory) Create() *models.Quotation {
	return &models.Quotation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirmID:    uuid.New(),
		ClientID:  uuid.New(),
		Title:     "Wedding Package",
		EventType: models.EventTypeWedding,
		EventDate: time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		TotalDays: 2,
		Amount:    150000,
		Status:    models.QuotationStatusDraft,
		Details: &models.QuotationDetails{
			Days: []models.DayCrewConfig{
				{Photographers: 2, Cinematographers: 1, Drone: 1},
				{Photographers: 1, Cinematographers: 1},
			},
			SameDayEditing: true,
		},
	}
}

// WithFirmAndClient sets the owning firm and client for the quotation
func (f *QuotationFactory) WithFirmAndClient(firmID, clientID uuid.UUID) *models.Quotation {
	q := f.Create()
	q.FirmID = firmID
	q.ClientID = clientID
	return q
}

// WithStatus sets the quotation status
func (f *QuotationFactory) WithStatus(status models.QuotationStatus) *models.Quotation {
	q := f.Create()
	q.Status = status
	return q
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates a test Event with default values
func (f *EventFactory) Create() *models.Event {
	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirmID:    uuid.New(),
		ClientID:  uuid.New(),
		Title:     "Verma Wedding",
		EventType: models.EventTypeWedding,
		EventDate: time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		TotalDays: 2,
		Venue:     "Grand Palace Lawns",
	}
}

// WithFirmAndClient sets the owning firm and client for the event
func (f *EventFactory) WithFirmAndClient(firmID, clientID uuid.UUID) *models.Event {
	e := f.Create()
	e.FirmID = firmID
	e.ClientID = clientID
	return e
}

// WithTotalDays sets the number of event days
func (f *EventFactory) WithTotalDays(days int) *models.Event {
	e := f.Create()
	e.TotalDays = days
	return e
}

// AssignmentFactory provides methods to create test StaffAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// ForStaff creates an assignment row backed by a staff member
func (f *AssignmentFactory) ForStaff(event *models.Event, staffID uuid.UUID, role models.AssignmentRole, dayNumber int) *models.StaffAssignment {
	return &models.StaffAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirmID:     event.FirmID,
		EventID:    event.ID,
		StaffID:    &staffID,
		PersonKind: models.PersonKindStaff,
		Role:       role,
		DayNumber:  dayNumber,
		DayDate:    event.DayDate(dayNumber),
	}
}

// ForFreelancer creates an assignment row backed by a freelancer
func (f *AssignmentFactory) ForFreelancer(event *models.Event, freelancerID uuid.UUID, role models.AssignmentRole, dayNumber int) *models.StaffAssignment {
	return &models.StaffAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirmID:       event.FirmID,
		EventID:      event.ID,
		FreelancerID: &freelancerID,
		PersonKind:   models.PersonKindFreelancer,
		Role:         role,
		DayNumber:    dayNumber,
		DayDate:      event.DayDate(dayNumber),
	}
}

// PaymentFactory provides methods to create test Payment data
type PaymentFactory struct{}

// NewPaymentFactory creates a new PaymentFactory
func NewPaymentFactory() *PaymentFactory {
	return &PaymentFactory{}
}

// Create creates a test Payment with default values
func (f *PaymentFactory) Create() *models.Payment {
	return &models.Payment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirmID:  uuid.New(),
		EventID: uuid.New(),
		Amount:  25000,
		Method:  models.PaymentMethodUPI,
		PaidAt:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Note:    "advance",
	}
}

// ForEvent sets the owning firm and event for the payment
func (f *PaymentFactory) ForEvent(event *models.Event) *models.Payment {
	p := f.Create()
	p.FirmID = event.FirmID
	p.EventID = event.ID
	return p
}

// AccountingEntryFactory provides methods to create test AccountingEntry data
type AccountingEntryFactory struct{}

// NewAccountingEntryFactory creates a new AccountingEntryFactory
func NewAccountingEntryFactory() *AccountingEntryFactory {
	return &AccountingEntryFactory{}
}

// Create creates a test AccountingEntry with default values
func (f *AccountingEntryFactory) Create() *models.AccountingEntry {
	return &models.AccountingEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirmID:    uuid.New(),
		Kind:      models.EntryKindExpense,
		Category:  "equipment rental",
		Amount:    5000,
		EntryDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithFirm sets the firm ID for the entry
func (f *AccountingEntryFactory) WithFirm(firmID uuid.UUID) *models.AccountingEntry {
	e := f.Create()
	e.FirmID = firmID
	return e
}

// WithKind sets the entry direction
func (f *AccountingEntryFactory) WithKind(kind models.EntryKind) *models.AccountingEntry {
	e := f.Create()
	e.Kind = kind
	return e
}

// FactorySet provides access to all factories
type FactorySet struct {
	Firm            *FirmFactory
	Client          *ClientFactory
	Staff           *StaffFactory
	Freelancer      *FreelancerFactory
	Quotation       *QuotationFactory
	Event           *EventFactory
	Assignment      *AssignmentFactory
	Payment         *PaymentFactory
	AccountingEntry *AccountingEntryFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Firm:            NewFirmFactory(),
		Client:          NewClientFactory(),
		Staff:           NewStaffFactory(),
		Freelancer:      NewFreelancerFactory(),
		Quotation:       NewQuotationFactory(),
		Event:           NewEventFactory(),
		Assignment:      NewAssignmentFactory(),
		Payment:         NewPaymentFactory(),
		AccountingEntry: NewAccountingEntryFactory(),
	}
}

// CreateFirmWithClient persists nothing; it wires a firm and a client that
// belongs to it so suites can hand them to repositories in order.
func (fs *FactorySet) CreateFirmWithClient() (*models.Firm, *models.Client) {
	firm := fs.Firm.Create()
	client := fs.Client.WithFirm(firm.ID)
	return firm, client
}
