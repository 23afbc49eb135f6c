package crewplan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studio-manager-backend/internal/crewplan"
	"studio-manager-backend/internal/database/models"
)

func TestRequiredCount_NoDetails(t *testing.T) {
	for _, role := range models.AllAssignmentRoles {
		assert.Equal(t, 0, crewplan.RequiredCount(role, 0, nil), "role %s", role)
	}
}

func TestRequiredCount_DayBeyondConfiguration(t *testing.T) {
	details := &models.QuotationDetails{
		Days: []models.DayCrewConfig{{Photographers: 3}},
	}

	assert.Equal(t, 3, crewplan.RequiredCount(models.RolePhotographer, 0, details))
	assert.Equal(t, 0, crewplan.RequiredCount(models.RolePhotographer, 1, details))
	assert.Equal(t, 0, crewplan.RequiredCount(models.RolePhotographer, -1, details))
}

func TestRequiredCount_DirectFields(t *testing.T) {
	details := &models.QuotationDetails{
		Days: []models.DayCrewConfig{
			{Photographers: 2, Cinematographers: 1, Drone: 1, OtherCrew: 4},
		},
	}

	testCases := []struct {
		role     models.AssignmentRole
		expected int
	}{
		{models.RolePhotographer, 2},
		{models.RoleCinematographer, 1},
		{models.RoleDronePilot, 1},
		{models.RoleSameDayEditor, 0},
		{models.RoleOther, 4},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role), func(t *testing.T) {
			assert.Equal(t, tc.expected, crewplan.RequiredCount(tc.role, 0, details))
		})
	}
}

func TestRequiredCount_SameDayEditorFallback(t *testing.T) {
	testCases := []struct {
		name     string
		details  *models.QuotationDetails
		expected int
	}{
		{
			name: "per-day count wins",
			details: &models.QuotationDetails{
				Days:           []models.DayCrewConfig{{SameDayEditors: 2}},
				SameDayEditing: false,
			},
			expected: 2,
		},
		{
			name: "legacy flag falls back to one",
			details: &models.QuotationDetails{
				Days:           []models.DayCrewConfig{{}},
				SameDayEditing: true,
			},
			expected: 1,
		},
		{
			name: "neither resolves to zero",
			details: &models.QuotationDetails{
				Days: []models.DayCrewConfig{{}},
			},
			expected: 0,
		},
		{
			name: "per-day count beats the flag",
			details: &models.QuotationDetails{
				Days:           []models.DayCrewConfig{{SameDayEditors: 3}},
				SameDayEditing: true,
			},
			expected: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, crewplan.RequiredCount(models.RoleSameDayEditor, 0, tc.details))
		})
	}
}

func TestRequiredCount_NegativeCountsClampToZero(t *testing.T) {
	details := &models.QuotationDetails{
		Days: []models.DayCrewConfig{{Photographers: -2, Drone: -1}},
	}

	assert.Equal(t, 0, crewplan.RequiredCount(models.RolePhotographer, 0, details))
	assert.Equal(t, 0, crewplan.RequiredCount(models.RoleDronePilot, 0, details))
}
