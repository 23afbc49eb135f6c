package crewplan_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-manager-backend/internal/crewplan"
	"studio-manager-backend/internal/database/models"
)

func TestDiff_NoChange(t *testing.T) {
	personA := uuid.New()
	before := []models.StaffAssignment{
		staffAssignment(personA, models.RolePhotographer, 1),
	}
	after := []models.StaffAssignment{
		staffAssignment(personA, models.RolePhotographer, 1),
	}

	added, removed := crewplan.Diff(before, after)
	assert.Empty(t, added)
	assert.Empty(t, removed)
}

func TestDiff_SwapPerson(t *testing.T) {
	personA := uuid.New()
	personB := uuid.New()
	before := []models.StaffAssignment{
		staffAssignment(personA, models.RolePhotographer, 1),
	}
	after := []models.StaffAssignment{
		staffAssignment(personB, models.RolePhotographer, 1),
	}

	added, removed := crewplan.Diff(before, after)
	require.Len(t, added, 1)
	require.Len(t, removed, 1)
	assert.Equal(t, personB, added[0].PersonID())
	assert.Equal(t, personA, removed[0].PersonID())
}

func TestDiff_MovingDaysIsRemovalPlusAddition(t *testing.T) {
	personA := uuid.New()
	before := []models.StaffAssignment{
		staffAssignment(personA, models.RolePhotographer, 1),
	}
	after := []models.StaffAssignment{
		staffAssignment(personA, models.RolePhotographer, 2),
	}

	added, removed := crewplan.Diff(before, after)
	require.Len(t, added, 1)
	require.Len(t, removed, 1)
	assert.Equal(t, 2, added[0].DayNumber)
	assert.Equal(t, 1, removed[0].DayNumber)
}

func TestDiff_RoleChangeIsRemovalPlusAddition(t *testing.T) {
	personA := uuid.New()
	before := []models.StaffAssignment{
		staffAssignment(personA, models.RolePhotographer, 1),
	}
	after := []models.StaffAssignment{
		staffAssignment(personA, models.RoleDronePilot, 1),
	}

	added, removed := crewplan.Diff(before, after)
	assert.Len(t, added, 1)
	assert.Len(t, removed, 1)
}

// (before ∪ added) \ removed must reconstruct the after set
func TestDiff_Reconstruction(t *testing.T) {
	personA := uuid.New()
	personB := uuid.New()
	personC := uuid.New()

	before := []models.StaffAssignment{
		staffAssignment(personA, models.RolePhotographer, 1),
		staffAssignment(personB, models.RoleCinematographer, 1),
	}
	after := []models.StaffAssignment{
		staffAssignment(personA, models.RolePhotographer, 1),
		staffAssignment(personC, models.RoleCinematographer, 2),
	}

	added, removed := crewplan.Diff(before, after)

	reconstructed := make(map[string]struct{})
	for i := range before {
		reconstructed[crewplan.Key(&before[i])] = struct{}{}
	}
	for i := range added {
		reconstructed[crewplan.Key(&added[i])] = struct{}{}
	}
	for i := range removed {
		delete(reconstructed, crewplan.Key(&removed[i]))
	}

	expect := make(map[string]struct{})
	for i := range after {
		expect[crewplan.Key(&after[i])] = struct{}{}
	}
	assert.Equal(t, expect, reconstructed)
}

func TestKey_DistinguishesPersonRoleAndDay(t *testing.T) {
	personA := uuid.New()
	a := staffAssignment(personA, models.RolePhotographer, 1)
	b := staffAssignment(personA, models.RolePhotographer, 2)
	c := staffAssignment(personA, models.RoleOther, 1)

	assert.NotEqual(t, crewplan.Key(&a), crewplan.Key(&b))
	assert.NotEqual(t, crewplan.Key(&a), crewplan.Key(&c))

	dup := staffAssignment(personA, models.RolePhotographer, 1)
	assert.Equal(t, crewplan.Key(&a), crewplan.Key(&dup))
}
