package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studio-manager-backend/internal/logger"
	"studio-manager-backend/internal/service"
)

// NotificationWorker drains the outbox and delivers crew notifications
// through WhatsApp.
type NotificationWorker struct {
	outbox   *Outbox
	whatsapp *service.WhatsAppService
	log      *logger.Logger
}

// NewNotificationWorker creates a notification delivery worker
func NewNotificationWorker(outbox *Outbox, whatsapp *service.WhatsAppService) *NotificationWorker {
	return &NotificationWorker{
		outbox:   outbox,
		whatsapp: whatsapp,
		log:      logger.New(),
	}
}

// Process executes one notification job
func (w *NotificationWorker) Process(ctx context.Context, job *Job) error {
	var payload NotificationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := w.whatsapp.SendMessage(ctx, payload.Phone, payload.Message); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// Run starts the worker loop: dequeue, deliver, retry on error. It returns
// when ctx is cancelled.
func (w *NotificationWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.log.Info("notification worker stopping")
			return
		default:
		}

		job, err := w.outbox.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				w.log.Info("notification worker stopping")
				return
			}
			w.log.Warnf("dequeue error: %v", err)
			time.Sleep(RetryBackoff)
			continue
		}
		if job == nil {
			continue
		}

		w.log.WithField("job_id", job.ID).Debug("processing notification job")
		if err := w.Process(ctx, job); err != nil {
			w.log.WithField("job_id", job.ID).Errorf("job failed: %v", err)
			if reErr := w.outbox.Retry(ctx, job); reErr != nil {
				w.log.Errorf("retry enqueue failed: %v", reErr)
			}
			time.Sleep(RetryBackoff)
		}
	}
}
