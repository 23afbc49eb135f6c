package crewplan

import (
	"fmt"

	"studio-manager-backend/internal/database/models"
)

// Key returns the composite identity of an assignment row. Two rows with the
// same key represent "the same" booking across a diff; moving a person to a
// different day therefore counts as one removal plus one addition.
func Key(a *models.StaffAssignment) string {
	return fmt.Sprintf("%s-%s-%d", a.PersonID(), a.Role, a.DayNumber)
}

// Diff computes the set-symmetric difference between the persisted
// assignment set and the desired one, keyed by composite identity.
// added = after \ before, removed = before \ after.
func Diff(before, after []models.StaffAssignment) (added, removed []models.StaffAssignment) {
	beforeKeys := make(map[string]struct{}, len(before))
	for i := range before {
		beforeKeys[Key(&before[i])] = struct{}{}
	}
	afterKeys := make(map[string]struct{}, len(after))
	for i := range after {
		afterKeys[Key(&after[i])] = struct{}{}
	}

	for i := range after {
		if _, ok := beforeKeys[Key(&after[i])]; !ok {
			added = append(added, after[i])
		}
	}
	for i := range before {
		if _, ok := afterKeys[Key(&before[i])]; !ok {
			removed = append(removed, before[i])
		}
	}
	return added, removed
}
