package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"studio-manager-backend/internal/config"
	"studio-manager-backend/internal/database/models"
)

// WhatsAppService sends crew notifications through a WhatsApp Business API
// gateway. An empty API URL disables sending; messages are then dropped with
// a nil error so the rest of the pipeline is unaffected.
type WhatsAppService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewWhatsAppService creates a new WhatsApp service
func NewWhatsAppService(cfg *config.Config) *WhatsAppService {
	return &WhatsAppService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// whatsAppMessage is the gateway's send-message payload
type whatsAppMessage struct {
	To   string `json:"to"`
	Type string `json:"type"`
	Text struct {
		Body string `json:"body"`
	} `json:"text"`
}

// Enabled reports whether a gateway is configured
func (s *WhatsAppService) Enabled() bool {
	return s.cfg.WhatsAppAPIURL != ""
}

// SendMessage delivers one text message to a phone number
func (s *WhatsAppService) SendMessage(ctx context.Context, phone, text string) error {
	if !s.Enabled() {
		return nil
	}
	if phone == "" {
		return fmt.Errorf("recipient phone number is empty")
	}

	msg := whatsAppMessage{To: phone, Type: "text"}
	msg.Text.Body = text
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	url := strings.TrimRight(s.cfg.WhatsAppAPIURL, "/") + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.WhatsAppAPIToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.WhatsAppAPIToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp send failed: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}

// AssignmentMessage renders the notification text for one person's change
// on an event day
func AssignmentMessage(event *models.Event, a *models.StaffAssignment, added bool) string {
	date := a.DayDate.Format("Mon, 02 Jan 2006")
	if added {
		return fmt.Sprintf("You have been assigned as %s for %q on %s (day %d of %d).",
			a.Role, event.Title, date, a.DayNumber, event.TotalDays)
	}
	return fmt.Sprintf("Your %s assignment for %q on %s (day %d) has been removed.",
		a.Role, event.Title, date, a.DayNumber)
}
