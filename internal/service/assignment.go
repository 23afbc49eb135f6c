package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studio-manager-backend/internal/crewplan"
	"studio-manager-backend/internal/database/models"
	apperrors "studio-manager-backend/internal/errors"
	"studio-manager-backend/internal/logger"
	"studio-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService owns the crew assignment pipeline: reconciling slots for
// the editor, checking conflicts, and persisting edited slots as a diffed
// replace-all save.
type AssignmentService struct {
	assignmentRepo repository.AssignmentRepositoryInterface
	eventRepo      repository.EventRepositoryInterface
	quotationRepo  repository.QuotationRepositoryInterface
	people         *PersonService
	dispatcher     NotificationDispatcher
	validator      *validator.Validate
}

// Ensure AssignmentService implements AssignmentServiceInterface
var _ AssignmentServiceInterface = (*AssignmentService)(nil)

// NewAssignmentService creates a new assignment service. dispatcher may be
// nil, in which case diffs are returned but nobody is notified.
func NewAssignmentService(
	assignmentRepo repository.AssignmentRepositoryInterface,
	eventRepo repository.EventRepositoryInterface,
	quotationRepo repository.QuotationRepositoryInterface,
	people *PersonService,
	dispatcher NotificationDispatcher,
	validator *validator.Validate,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		eventRepo:      eventRepo,
		quotationRepo:  quotationRepo,
		people:         people,
		dispatcher:     dispatcher,
		validator:      validator,
	}
}

// DaySlotsResponse is the editable slot state for the whole event
type DaySlotsResponse struct {
	EventID           uuid.UUID           `json:"event_id"`
	TotalDays         int                 `json:"total_days"`
	QuotationGoverned bool                `json:"quotation_governed"`
	Days              []crewplan.DaySlots `json:"days"`
}

// SaveAssignmentsRequest carries the edited slot state back from the editor
type SaveAssignmentsRequest struct {
	Days []crewplan.DaySlots `json:"days" validate:"required,min=1"`
}

// AssignmentRow is one concrete booking in API responses
type AssignmentRow struct {
	PersonID   uuid.UUID             `json:"person_id"`
	PersonKind models.PersonKind     `json:"person_kind"`
	PersonName string                `json:"person_name"`
	Role       models.AssignmentRole `json:"role"`
	DayNumber  int                   `json:"day_number"`
	DayDate    string                `json:"day_date"`
}

// AssignmentDiffResponse reports what a save changed, for notifications
type AssignmentDiffResponse struct {
	EventID uuid.UUID       `json:"event_id"`
	Added   []AssignmentRow `json:"added"`
	Removed []AssignmentRow `json:"removed"`
}

// ConflictCheckResponse reports overlapping bookings for a candidate person.
// A non-empty list is a warning for the user to confirm, never a rejection.
type ConflictCheckResponse struct {
	HasConflicts bool                `json:"has_conflicts"`
	Conflicts    []crewplan.Conflict `json:"conflicts"`
}

// GetDaySlots returns the reconciled, editable slot state for an event
func (s *AssignmentService) GetDaySlots(eventID uuid.UUID) (*DaySlotsResponse, error) {
	event, err := s.getEvent(eventID)
	if err != nil {
		return nil, err
	}

	existing, err := s.assignmentRepo.GetByEventID(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	details := s.snapshotDetails(event)
	return &DaySlotsResponse{
		EventID:           event.ID,
		TotalDays:         event.TotalDays,
		QuotationGoverned: details != nil,
		Days:              crewplan.Reconcile(existing, event.TotalDays, details),
	}, nil
}

// CheckConflicts reports the candidate person's overlapping bookings on
// other events. Degenerate inputs (no person, no date) short-circuit to an
// empty result so the caller can proceed without prompting.
func (s *AssignmentService) CheckConflicts(eventID uuid.UUID, personID string, date time.Time, windowDays int) (*ConflictCheckResponse, error) {
	if personID == "" || date.IsZero() {
		return &ConflictCheckResponse{HasConflicts: false, Conflicts: []crewplan.Conflict{}}, nil
	}

	event, err := s.getEvent(eventID)
	if err != nil {
		return nil, err
	}

	others, err := s.assignmentRepo.GetAllForFirm(event.FirmID, &event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to scan assignments: %w", err)
	}

	conflicts := crewplan.FindConflicts(personID, date, windowDays, others)
	if conflicts == nil {
		conflicts = []crewplan.Conflict{}
	}
	return &ConflictCheckResponse{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
	}, nil
}

// SaveForEvent persists the edited slot state as the event's complete
// assignment set and returns what changed.
//
// The desired set replaces the persisted one wholesale (single transaction,
// so a failure leaves the prior set intact). The returned diff is accurate
// relative to the store state at the moment of save; notification dispatch
// happens after the commit and its failure is logged, never propagated.
func (s *AssignmentService) SaveForEvent(ctx context.Context, eventID uuid.UUID, req *SaveAssignmentsRequest) (*AssignmentDiffResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	event, err := s.getEvent(eventID)
	if err != nil {
		return nil, err
	}

	directory, err := s.people.Directory(event.FirmID)
	if err != nil {
		return nil, err
	}

	details := s.snapshotDetails(event)
	if details != nil && event.QuotationDetails == nil {
		// Backfill the snapshot onto the event so requirements stay pinned
		// even if the quotation is edited later.
		event.QuotationDetails = details
		if err := s.eventRepo.Update(event); err != nil {
			return nil, fmt.Errorf("failed to snapshot quotation details: %w", err)
		}
	}

	after, err := s.flatten(event, req.Days, directory)
	if err != nil {
		return nil, err
	}

	before, err := s.assignmentRepo.GetByEventID(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	added, removed := crewplan.Diff(before, after)

	if err := s.assignmentRepo.ReplaceForEvent(eventID, after); err != nil {
		return nil, fmt.Errorf("failed to replace assignments: %w", err)
	}

	if s.dispatcher != nil && (len(added) > 0 || len(removed) > 0) {
		if err := s.dispatcher.DispatchAssignmentDiff(ctx, event, added, removed); err != nil {
			logger.New().WithField("event_id", eventID).Warnf("notification dispatch failed: %v", err)
		}
	}

	return &AssignmentDiffResponse{
		EventID: event.ID,
		Added:   s.toRows(added, directory),
		Removed: s.toRows(removed, directory),
	}, nil
}

// flatten turns edited day slots into concrete assignment rows. Empty slots
// are skipped; ids that resolve to neither staff nor freelancer are dropped
// silently so stale UI state can't block an otherwise-valid save. A person
// appearing twice in the same role on the same day is a validation error,
// caught before anything is written.
func (s *AssignmentService) flatten(event *models.Event, days []crewplan.DaySlots, directory PersonDirectory) ([]models.StaffAssignment, error) {
	var rows []models.StaffAssignment
	seen := make(map[string]struct{})

	for i, slots := range days {
		dayNumber := slots.Day
		if dayNumber == 0 {
			dayNumber = i + 1
		}
		dayDate := event.DayDate(dayNumber)

		for _, role := range models.AllAssignmentRoles {
			for _, id := range slots.IDsFor(role) {
				if id == "" {
					continue
				}
				person, ok := directory.Resolve(id)
				if !ok {
					continue
				}

				dupKey := fmt.Sprintf("%s-%s-%d", id, role, dayNumber)
				if _, dup := seen[dupKey]; dup {
					return nil, fmt.Errorf("%w: %s as %s on day %d",
						apperrors.ErrDuplicateAssignment, person.FullName, role, dayNumber)
				}
				seen[dupKey] = struct{}{}

				row := models.StaffAssignment{
					FirmID:     event.FirmID,
					EventID:    event.ID,
					PersonKind: person.Kind,
					Role:       role,
					DayNumber:  dayNumber,
					DayDate:    dayDate,
				}
				personID := person.ID
				if person.Kind == models.PersonKindFreelancer {
					row.FreelancerID = &personID
				} else {
					row.StaffID = &personID
				}
				rows = append(rows, row)
			}
		}
	}
	return rows, nil
}

func (s *AssignmentService) toRows(assignments []models.StaffAssignment, directory PersonDirectory) []AssignmentRow {
	rows := make([]AssignmentRow, 0, len(assignments))
	for i := range assignments {
		a := &assignments[i]
		name := ""
		if person, ok := directory.Resolve(a.PersonID().String()); ok {
			name = person.FullName
		}
		rows = append(rows, AssignmentRow{
			PersonID:   a.PersonID(),
			PersonKind: a.PersonKind,
			PersonName: name,
			Role:       a.Role,
			DayNumber:  a.DayNumber,
			DayDate:    a.DayDate.Format("2006-01-02"),
		})
	}
	return rows
}

// snapshotDetails resolves the day configuration governing the event: the
// snapshot if one was captured, otherwise the source quotation's current
// details (which the caller then pins onto the event).
func (s *AssignmentService) snapshotDetails(event *models.Event) *models.QuotationDetails {
	if event.QuotationDetails != nil {
		return event.QuotationDetails
	}
	if event.QuotationSourceID == nil {
		return nil
	}
	quotation, err := s.quotationRepo.GetByID(*event.QuotationSourceID)
	if err != nil {
		return nil
	}
	return quotation.Details
}

func (s *AssignmentService) getEvent(eventID uuid.UUID) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}
