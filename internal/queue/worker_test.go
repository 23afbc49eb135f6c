package queue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio-manager-backend/internal/config"
	"studio-manager-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeJob(t *testing.T, payload NotificationPayload) *Job {
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return &Job{
		ID:        uuid.New().String(),
		Payload:   body,
		CreatedAt: time.Now(),
	}
}

func TestWorkerProcess(t *testing.T) {
	var delivered map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&delivered))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	whatsapp := service.NewWhatsAppService(&config.Config{WhatsAppAPIURL: server.URL})
	worker := NewNotificationWorker(nil, whatsapp)

	job := makeJob(t, NotificationPayload{
		EventID: uuid.New(),
		Phone:   "+919000000001",
		Message: "You have been assigned",
	})
	err := worker.Process(context.Background(), job)

	assert.NoError(t, err)
	assert.Equal(t, "+919000000001", delivered["to"])
}

func TestWorkerProcess_GatewayFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	whatsapp := service.NewWhatsAppService(&config.Config{WhatsAppAPIURL: server.URL})
	worker := NewNotificationWorker(nil, whatsapp)

	job := makeJob(t, NotificationPayload{Phone: "+919000000001", Message: "hi"})
	err := worker.Process(context.Background(), job)

	assert.Error(t, err)
}

func TestWorkerProcess_MalformedPayload(t *testing.T) {
	whatsapp := service.NewWhatsAppService(&config.Config{})
	worker := NewNotificationWorker(nil, whatsapp)

	job := &Job{ID: uuid.New().String(), Payload: json.RawMessage(`{broken`)}
	err := worker.Process(context.Background(), job)

	assert.Error(t, err)
}

func TestJobEnvelopeRoundtrip(t *testing.T) {
	job := makeJob(t, NotificationPayload{
		EventID: uuid.New(),
		Phone:   "+919000000001",
		Message: "hello",
	})
	raw, err := json.Marshal(job)
	require.NoError(t, err)

	var decoded Job
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, job.ID, decoded.ID)

	var payload NotificationPayload
	require.NoError(t, json.Unmarshal(decoded.Payload, &payload))
	assert.Equal(t, "+919000000001", payload.Phone)
}
