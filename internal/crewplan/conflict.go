package crewplan

import (
	"time"

	"github.com/google/uuid"

	"studio-manager-backend/internal/database/models"
)

// Conflict describes one booking that overlaps the dates being checked
type Conflict struct {
	EventID    uuid.UUID              `json:"event_id"`
	EventTitle string                 `json:"event_title"`
	Role       models.AssignmentRole  `json:"role"`
	DayDate    time.Time              `json:"day_date"`
}

// FindConflicts scans assignments belonging to other events for bookings of
// the given person whose day_date falls inside [start, start+windowDays-1].
//
// An empty person id or zero start date short-circuits to no conflicts;
// checking requires both a candidate and a concrete date. Callers surface a
// non-empty result as a confirmation prompt, never a hard rejection —
// studios double-book on purpose sometimes.
func FindConflicts(personID string, start time.Time, windowDays int, others []models.StaffAssignment) []Conflict {
	if personID == "" || start.IsZero() {
		return nil
	}
	if windowDays < 1 {
		windowDays = 1
	}

	from := truncateToDay(start)
	to := from.AddDate(0, 0, windowDays-1)

	var conflicts []Conflict
	for i := range others {
		a := &others[i]
		if a.PersonID().String() != personID {
			continue
		}
		day := truncateToDay(a.DayDate)
		if day.Before(from) || day.After(to) {
			continue
		}
		conflicts = append(conflicts, Conflict{
			EventID:    a.EventID,
			EventTitle: a.Event.Title,
			Role:       a.Role,
			DayDate:    day,
		})
	}
	return conflicts
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
