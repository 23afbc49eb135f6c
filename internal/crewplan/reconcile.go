package crewplan

import "studio-manager-backend/internal/database/models"

// Reconcile builds the editable slot state for every event day from the
// persisted assignments and the quotation snapshot.
//
// For each day and role:
//   - required > 0: the array has exactly `required` slots, filled from the
//     existing assignments in retrieval order and padded with empty strings.
//     Existing ids beyond the required count are dropped; the requirement is
//     authoritative and the overflow is not surfaced.
//   - required == 0 with existing ids: the ids are kept as-is. Manually
//     assigned crew survives even when the quotation doesn't call for the
//     role.
//   - required == 0, no ids, no quotation at all: Photographer and
//     Cinematographer are seeded with one empty slot each so a manual event
//     always starts with something to fill. Drone, Same Day Editor and Other
//     stay empty (opt-in roles).
//
// Reconcile is pure and idempotent: feeding its output back as the existing
// set reproduces the same slots.
func Reconcile(existing []models.StaffAssignment, totalDays int, details *models.QuotationDetails) []DaySlots {
	if totalDays < 1 {
		totalDays = 1
	}

	days := make([]DaySlots, 0, totalDays)
	for day := 1; day <= totalDays; day++ {
		slots := DaySlots{Day: day}

		for _, role := range models.AllAssignmentRoles {
			assigned := assignedIDs(existing, day, role)
			required := RequiredCount(role, day-1, details)

			switch {
			case required > 0:
				ids := make([]string, required)
				for i := 0; i < required && i < len(assigned); i++ {
					ids[i] = assigned[i]
				}
				slots.SetIDs(role, ids)
			case len(assigned) > 0:
				slots.SetIDs(role, assigned)
			case details == nil && (role == models.RolePhotographer || role == models.RoleCinematographer):
				slots.SetIDs(role, []string{""})
			default:
				slots.SetIDs(role, []string{})
			}
		}

		days = append(days, slots)
	}
	return days
}

// assignedIDs collects the person ids already persisted for a day and role,
// preserving retrieval order
func assignedIDs(existing []models.StaffAssignment, day int, role models.AssignmentRole) []string {
	var ids []string
	for i := range existing {
		a := &existing[i]
		if a.DayNumber != day || a.Role != role {
			continue
		}
		ids = append(ids, a.PersonID().String())
	}
	return ids
}
