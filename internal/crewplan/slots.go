// Package crewplan derives per-day crew requirements from a quotation
// snapshot, reconciles them against persisted assignments into editable
// slots, detects double-booking conflicts and diffs assignment sets by
// composite identity. Everything here is pure; persistence stays in the
// repository and service layers.
package crewplan

import "studio-manager-backend/internal/database/models"

// DaySlots is the editable slot state for one event day. Day is 1-based.
// Each array holds person ids in slot order; an empty string marks an
// unfilled slot. For a quotation-governed day the array length equals the
// required count for that role.
//
// Slot identity is array position. Reordering two filled slots during an
// edit is indistinguishable from a reassignment; slot counts are small and
// bounded, so this is accepted.
type DaySlots struct {
	Day                int      `json:"day"`
	PhotographerIDs    []string `json:"photographer_ids"`
	CinematographerIDs []string `json:"cinematographer_ids"`
	DronePilotIDs      []string `json:"drone_pilot_ids"`
	SameDayEditorIDs   []string `json:"same_day_editor_ids"`
	OtherCrewIDs       []string `json:"other_crew_ids"`
}

// IDsFor returns the slot array for the given role
func (d *DaySlots) IDsFor(role models.AssignmentRole) []string {
	switch role {
	case models.RolePhotographer:
		return d.PhotographerIDs
	case models.RoleCinematographer:
		return d.CinematographerIDs
	case models.RoleDronePilot:
		return d.DronePilotIDs
	case models.RoleSameDayEditor:
		return d.SameDayEditorIDs
	case models.RoleOther:
		return d.OtherCrewIDs
	}
	return nil
}

// SetIDs replaces the slot array for the given role
func (d *DaySlots) SetIDs(role models.AssignmentRole, ids []string) {
	switch role {
	case models.RolePhotographer:
		d.PhotographerIDs = ids
	case models.RoleCinematographer:
		d.CinematographerIDs = ids
	case models.RoleDronePilot:
		d.DronePilotIDs = ids
	case models.RoleSameDayEditor:
		d.SameDayEditorIDs = ids
	case models.RoleOther:
		d.OtherCrewIDs = ids
	}
}
