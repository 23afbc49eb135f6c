package crewplan

import "studio-manager-backend/internal/database/models"

// RequiredCount returns how many slots of a role the quotation snapshot
// calls for on the given 0-based day index.
//
// Without a snapshot, or for a day beyond the captured configuration, every
// role resolves to 0 and the caller falls back to free-form slots. Same Day
// Editor has a two-level fallback: older quotations carry only the
// quotation-level sameDayEditing flag instead of a per-day count, and the
// flag means one editor per day.
func RequiredCount(role models.AssignmentRole, dayIndex int, details *models.QuotationDetails) int {
	if details == nil {
		return 0
	}
	if dayIndex < 0 || dayIndex >= len(details.Days) {
		return 0
	}
	day := details.Days[dayIndex]

	switch role {
	case models.RolePhotographer:
		return nonNegative(day.Photographers)
	case models.RoleCinematographer:
		return nonNegative(day.Cinematographers)
	case models.RoleDronePilot:
		return nonNegative(day.Drone)
	case models.RoleSameDayEditor:
		if day.SameDayEditors > 0 {
			return day.SameDayEditors
		}
		if details.SameDayEditing {
			return 1
		}
		return 0
	case models.RoleOther:
		return nonNegative(day.OtherCrew)
	}
	return 0
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
