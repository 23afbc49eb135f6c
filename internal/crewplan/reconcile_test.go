package crewplan_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-manager-backend/internal/crewplan"
	"studio-manager-backend/internal/database/models"
)

func staffAssignment(personID uuid.UUID, role models.AssignmentRole, day int) models.StaffAssignment {
	id := personID
	return models.StaffAssignment{
		StaffID:    &id,
		PersonKind: models.PersonKindStaff,
		Role:       role,
		DayNumber:  day,
	}
}

func TestReconcile_EmptyQuotationGovernedDay(t *testing.T) {
	details := &models.QuotationDetails{
		Days: []models.DayCrewConfig{{Photographers: 2, Cinematographers: 1, Drone: 0}},
	}

	days := crewplan.Reconcile(nil, 1, details)
	require.Len(t, days, 1)

	assert.Equal(t, []string{"", ""}, days[0].PhotographerIDs)
	assert.Equal(t, []string{""}, days[0].CinematographerIDs)
	assert.Empty(t, days[0].DronePilotIDs)
	assert.Empty(t, days[0].SameDayEditorIDs)
	assert.Empty(t, days[0].OtherCrewIDs)
}

func TestReconcile_PreservesFilledSlotsAndPads(t *testing.T) {
	personA := uuid.New()
	details := &models.QuotationDetails{
		Days: []models.DayCrewConfig{{Photographers: 3}},
	}
	existing := []models.StaffAssignment{
		staffAssignment(personA, models.RolePhotographer, 1),
	}

	days := crewplan.Reconcile(existing, 1, details)
	require.Len(t, days, 1)
	assert.Equal(t, []string{personA.String(), "", ""}, days[0].PhotographerIDs)
}

func TestReconcile_TruncatesBeyondRequirement(t *testing.T) {
	personA := uuid.New()
	personB := uuid.New()
	details := &models.QuotationDetails{
		Days: []models.DayCrewConfig{{Photographers: 1}},
	}
	existing := []models.StaffAssignment{
		staffAssignment(personA, models.RolePhotographer, 1),
		staffAssignment(personB, models.RolePhotographer, 1),
	}

	days := crewplan.Reconcile(existing, 1, details)
	require.Len(t, days, 1)

	// The requirement is authoritative: the overflow assignee is dropped
	// from the editable state without warning.
	assert.Equal(t, []string{personA.String()}, days[0].PhotographerIDs)
}

func TestReconcile_KeepsLegacyIDsWhenRequirementIsZero(t *testing.T) {
	personA := uuid.New()
	details := &models.QuotationDetails{
		Days: []models.DayCrewConfig{{Photographers: 1, Drone: 0}},
	}
	existing := []models.StaffAssignment{
		staffAssignment(personA, models.RoleDronePilot, 1),
	}

	days := crewplan.Reconcile(existing, 1, details)
	require.Len(t, days, 1)
	assert.Equal(t, []string{personA.String()}, days[0].DronePilotIDs)
}

func TestReconcile_ManualEventSeedsDefaultSlots(t *testing.T) {
	// totalDays grew from 1 to 2 on an event with no quotation: day 2
	// starts with one photographer and one cinematographer slot, opt-in
	// roles stay empty.
	personA := uuid.New()
	existing := []models.StaffAssignment{
		staffAssignment(personA, models.RolePhotographer, 1),
	}

	days := crewplan.Reconcile(existing, 2, nil)
	require.Len(t, days, 2)

	assert.Equal(t, []string{personA.String()}, days[0].PhotographerIDs)
	assert.Equal(t, []string{""}, days[0].CinematographerIDs)

	assert.Equal(t, 2, days[1].Day)
	assert.Equal(t, []string{""}, days[1].PhotographerIDs)
	assert.Equal(t, []string{""}, days[1].CinematographerIDs)
	assert.Empty(t, days[1].DronePilotIDs)
	assert.Empty(t, days[1].SameDayEditorIDs)
	assert.Empty(t, days[1].OtherCrewIDs)
}

func TestReconcile_MultiDayUsesPerDayConfiguration(t *testing.T) {
	details := &models.QuotationDetails{
		Days: []models.DayCrewConfig{
			{Photographers: 2, Cinematographers: 2},
			{Photographers: 1, SameDayEditors: 1},
		},
	}

	days := crewplan.Reconcile(nil, 2, details)
	require.Len(t, days, 2)

	assert.Len(t, days[0].PhotographerIDs, 2)
	assert.Len(t, days[0].CinematographerIDs, 2)
	assert.Empty(t, days[0].SameDayEditorIDs)

	assert.Len(t, days[1].PhotographerIDs, 1)
	assert.Empty(t, days[1].CinematographerIDs)
	assert.Len(t, days[1].SameDayEditorIDs, 1)
}

func TestReconcile_RequirementFidelity(t *testing.T) {
	details := &models.QuotationDetails{
		Days: []models.DayCrewConfig{
			{Photographers: 3, Cinematographers: 2, Drone: 1, SameDayEditors: 1, OtherCrew: 2},
			{Photographers: 1},
		},
		SameDayEditing: true,
	}

	days := crewplan.Reconcile(nil, 2, details)
	require.Len(t, days, 2)

	for dayIdx, slots := range days {
		for _, role := range models.AllAssignmentRoles {
			required := crewplan.RequiredCount(role, dayIdx, details)
			assert.Len(t, slots.IDsFor(role), required, "day %d role %s", dayIdx+1, role)
		}
	}
}

// feeding Reconcile's own output back as the existing set must reproduce it
func TestReconcile_Idempotence(t *testing.T) {
	personA := uuid.New()
	personB := uuid.New()
	details := &models.QuotationDetails{
		Days: []models.DayCrewConfig{
			{Photographers: 2, Cinematographers: 1},
			{Photographers: 1, Drone: 1},
		},
		SameDayEditing: true,
	}
	existing := []models.StaffAssignment{
		staffAssignment(personA, models.RolePhotographer, 1),
		staffAssignment(personB, models.RoleDronePilot, 2),
	}

	first := crewplan.Reconcile(existing, 2, details)

	var refed []models.StaffAssignment
	for _, slots := range first {
		for _, role := range models.AllAssignmentRoles {
			for _, id := range slots.IDsFor(role) {
				if id == "" {
					continue
				}
				refed = append(refed, staffAssignment(uuid.MustParse(id), role, slots.Day))
			}
		}
	}

	second := crewplan.Reconcile(refed, 2, details)
	assert.Equal(t, first, second)
}
