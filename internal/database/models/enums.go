package models

// AssignmentRole defines the crew roles that can be assigned to an event day
type AssignmentRole string

const (
	RolePhotographer   AssignmentRole = "Photographer"
	RoleCinematographer AssignmentRole = "Cinematographer"
	RoleDronePilot     AssignmentRole = "Drone Pilot"
	RoleSameDayEditor  AssignmentRole = "Same Day Editor"
	RoleOther          AssignmentRole = "Other"
)

// AllAssignmentRoles lists every crew role in display order
var AllAssignmentRoles = []AssignmentRole{
	RolePhotographer,
	RoleCinematographer,
	RoleDronePilot,
	RoleSameDayEditor,
	RoleOther,
}

// IsValid checks if the AssignmentRole is valid
func (r AssignmentRole) IsValid() bool {
	switch r {
	case RolePhotographer, RoleCinematographer, RoleDronePilot, RoleSameDayEditor, RoleOther:
		return true
	}
	return false
}

// PersonKind tags which backing table an assignable person comes from
type PersonKind string

const (
	PersonKindStaff      PersonKind = "staff"
	PersonKindFreelancer PersonKind = "freelancer"
)

// IsValid checks if the PersonKind is valid
func (k PersonKind) IsValid() bool {
	return k == PersonKindStaff || k == PersonKindFreelancer
}

// EventType defines the types of shoots the studio covers
type EventType string

const (
	EventTypeWedding    EventType = "wedding"
	EventTypePreWedding EventType = "pre_wedding"
	EventTypeRing       EventType = "ring_ceremony"
	EventTypeMaternity  EventType = "maternity"
	EventTypeCorporate  EventType = "corporate"
	EventTypeOthers     EventType = "others"
)

// IsValid checks if the EventType is valid
func (e EventType) IsValid() bool {
	switch e {
	case EventTypeWedding, EventTypePreWedding, EventTypeRing, EventTypeMaternity, EventTypeCorporate, EventTypeOthers:
		return true
	}
	return false
}

// QuotationStatus defines the lifecycle states of a quotation
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
)

// IsValid checks if the QuotationStatus is valid
func (s QuotationStatus) IsValid() bool {
	switch s {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted, QuotationStatusRejected:
		return true
	}
	return false
}

// PaymentMethod defines how a payment was collected
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodBank PaymentMethod = "bank_transfer"
	PaymentMethodCard PaymentMethod = "card"
)

// IsValid checks if the PaymentMethod is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodBank, PaymentMethodCard:
		return true
	}
	return false
}

// EntryKind defines the direction of an accounting entry
type EntryKind string

const (
	EntryKindIncome  EntryKind = "income"
	EntryKindExpense EntryKind = "expense"
)

// IsValid checks if the EntryKind is valid
func (k EntryKind) IsValid() bool {
	return k == EntryKindIncome || k == EntryKindExpense
}
