package service

import (
	"context"

	"studio-manager-backend/internal/database/models"
)

// NotificationDispatcher receives the assignment diff after a successful
// save and is responsible for contacting newly-assigned and newly-unassigned
// people. Dispatch failures must never roll back the committed save; the
// caller logs and moves on.
type NotificationDispatcher interface {
	DispatchAssignmentDiff(ctx context.Context, event *models.Event, added, removed []models.StaffAssignment) error
}
