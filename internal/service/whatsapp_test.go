package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio-manager-backend/internal/config"
	"studio-manager-backend/internal/database/models"
	"studio-manager-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppSendMessage(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := service.NewWhatsAppService(&config.Config{
		WhatsAppAPIURL:   server.URL,
		WhatsAppAPIToken: "secret-token",
	})

	err := svc.SendMessage(context.Background(), "+919000000001", "hello")

	assert.NoError(t, err)
	assert.Equal(t, "/messages", gotPath)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "+919000000001", gotBody["to"])
	assert.Equal(t, "text", gotBody["type"])
	text := gotBody["text"].(map[string]interface{})
	assert.Equal(t, "hello", text["body"])
}

func TestWhatsAppSendMessage_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid recipient", http.StatusBadRequest)
	}))
	defer server.Close()

	svc := service.NewWhatsAppService(&config.Config{WhatsAppAPIURL: server.URL})

	err := svc.SendMessage(context.Background(), "+919000000001", "hello")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status=400")
}

func TestWhatsAppSendMessage_DisabledIsNoop(t *testing.T) {
	svc := service.NewWhatsAppService(&config.Config{})

	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.SendMessage(context.Background(), "+919000000001", "hello"))
}

func TestWhatsAppSendMessage_EmptyPhone(t *testing.T) {
	svc := service.NewWhatsAppService(&config.Config{WhatsAppAPIURL: "http://gateway.local"})

	err := svc.SendMessage(context.Background(), "", "hello")

	assert.Error(t, err)
}

func TestAssignmentMessage(t *testing.T) {
	staffID := uuid.New()
	event := &models.Event{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     "Verma Wedding",
		EventDate: time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		TotalDays: 2,
	}
	a := &models.StaffAssignment{
		EventID:    event.ID,
		StaffID:    &staffID,
		PersonKind: models.PersonKindStaff,
		Role:       models.RolePhotographer,
		DayNumber:  2,
		DayDate:    event.DayDate(2),
	}

	added := service.AssignmentMessage(event, a, true)
	assert.Contains(t, added, "assigned as Photographer")
	assert.Contains(t, added, `"Verma Wedding"`)
	assert.Contains(t, added, "day 2 of 2")

	removed := service.AssignmentMessage(event, a, false)
	assert.Contains(t, removed, "has been removed")
	assert.Contains(t, removed, "day 2")
}
