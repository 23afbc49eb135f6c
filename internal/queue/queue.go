package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studio-manager-backend/internal/database/models"
	"studio-manager-backend/internal/logger"
	"studio-manager-backend/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// QueueNotifications is the Redis list key for crew notification jobs.
	QueueNotifications = "worker:notifications"
	// QueueDLQ is the dead-letter queue for jobs that exhausted retries.
	QueueDLQ = "worker:dlq"
	// MaxRetries is the number of times to retry a job before moving to DLQ.
	MaxRetries = 3
	// RetryBackoff is the delay between retries.
	RetryBackoff = 10 * time.Second
)

// NotificationPayload is one crew member's assignment change, resolved down
// to a deliverable phone number and message at enqueue time so the worker
// needs no database access.
type NotificationPayload struct {
	EventID uuid.UUID `json:"event_id"`
	Phone   string    `json:"phone"`
	Message string    `json:"message"`
}

// Job is a generic job envelope.
type Job struct {
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	Attempt   int             `json:"attempt"`
	CreatedAt time.Time       `json:"created_at"`
}

// Outbox enqueues crew notifications to Redis for async delivery. It is the
// NotificationDispatcher used after assignment saves.
type Outbox struct {
	client *redis.Client
	people *service.PersonService
	log    *logger.Logger
}

// Ensure Outbox implements the dispatcher contract
var _ service.NotificationDispatcher = (*Outbox)(nil)

// NewOutbox creates a Redis-backed notification outbox
func NewOutbox(client *redis.Client, people *service.PersonService) *Outbox {
	return &Outbox{
		client: client,
		people: people,
		log:    logger.New(),
	}
}

// DispatchAssignmentDiff enqueues one notification per changed assignment.
// People without a phone number are skipped. A redis failure is returned to
// the caller, who logs it; the assignment save has already committed.
func (o *Outbox) DispatchAssignmentDiff(ctx context.Context, event *models.Event, added, removed []models.StaffAssignment) error {
	directory, err := o.people.Directory(event.FirmID)
	if err != nil {
		return fmt.Errorf("failed to resolve recipients: %w", err)
	}

	enqueue := func(a *models.StaffAssignment, isAdded bool) error {
		person, ok := directory.Resolve(a.PersonID().String())
		if !ok || person.Phone == "" {
			return nil
		}
		return o.enqueue(ctx, NotificationPayload{
			EventID: event.ID,
			Phone:   person.Phone,
			Message: service.AssignmentMessage(event, a, isAdded),
		})
	}

	for i := range added {
		if err := enqueue(&added[i], true); err != nil {
			return err
		}
	}
	for i := range removed {
		if err := enqueue(&removed[i], false); err != nil {
			return err
		}
	}
	return nil
}

func (o *Outbox) enqueue(ctx context.Context, payload NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	job := Job{
		ID:        uuid.New().String(),
		Payload:   body,
		Attempt:   0,
		CreatedAt: time.Now(),
	}
	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}
	if err := o.client.RPush(ctx, QueueNotifications, raw).Err(); err != nil {
		return fmt.Errorf("rpush: %w", err)
	}
	o.log.WithField("job_id", job.ID).Debug("enqueued crew notification")
	return nil
}

// Dequeue blocks until a job is available or ctx is done
func (o *Outbox) Dequeue(ctx context.Context) (*Job, error) {
	result, err := o.client.BLPop(ctx, 0, QueueNotifications).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	if len(result) < 2 {
		return nil, nil
	}
	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		o.log.WithField("raw", result[1]).Warnf("invalid job payload: %v", err)
		return nil, nil
	}
	return &job, nil
}

// Retry re-enqueues a job with incremented attempt. After MaxRetries the job
// moves to the DLQ instead.
func (o *Outbox) Retry(ctx context.Context, job *Job) error {
	job.Attempt++
	raw, err := json.Marshal(job)
	if err != nil {
		return err
	}
	if job.Attempt >= MaxRetries {
		if err := o.client.RPush(ctx, QueueDLQ, raw).Err(); err != nil {
			o.log.WithField("job_id", job.ID).Errorf("dlq push failed: %v", err)
			return err
		}
		o.log.WithFields(map[string]interface{}{"job_id": job.ID, "attempt": job.Attempt}).Warn("job moved to DLQ")
		return nil
	}
	if err := o.client.RPush(ctx, QueueNotifications, raw).Err(); err != nil {
		return err
	}
	o.log.WithFields(map[string]interface{}{"job_id": job.ID, "attempt": job.Attempt}).Info("job retried")
	return nil
}
