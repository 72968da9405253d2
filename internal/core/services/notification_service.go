package services

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dbt-setu/internal/adapters/persistence/models"
	"dbt-setu/internal/core/domain"
)

// NotificationService pushes operational alerts to a configured webhook.
// Notifications are best-effort: they run in the background and never
// block or fail the business operation that triggered them.
type NotificationService struct {
	webhookURL string
	client     *http.Client
}

// NewNotificationService creates a new notification service.
// An empty webhook URL disables delivery; every Notify call becomes a no-op.
func NewNotificationService(webhookURL string) *NotificationService {
	return &NotificationService{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NotifyNewApplication alerts reviewers that a new application entered the queue
func (s *NotificationService) NotifyNewApplication(ticket *models.Ticket) {
	s.send(fmt.Sprintf("📥 New verification application %s from %s awaits institute review",
		ticket.TrackingNo, ticket.UserName))
}

// NotifyDecision alerts on a review decision
func (s *NotificationService) NotifyDecision(ticket *models.Ticket, newStatus domain.TicketStatus) {
	var msg string
	switch newStatus {
	case domain.StatusPendingAdmin:
		msg = fmt.Sprintf("➡️ Application %s forwarded to admin review", ticket.TrackingNo)
	case domain.StatusVerified:
		msg = fmt.Sprintf("✅ Application %s verified - DBT linking complete for %s",
			ticket.TrackingNo, ticket.UserName)
	case domain.StatusRejected:
		msg = fmt.Sprintf("❌ Application %s rejected", ticket.TrackingNo)
	default:
		msg = fmt.Sprintf("ℹ️ Application %s moved to %s", ticket.TrackingNo, newStatus)
	}
	s.send(msg)
}

// NotifyCertificateIssued alerts on a volunteer certificate issuance
func (s *NotificationService) NotifyCertificateIssued(volunteer *models.Volunteer) {
	s.send(fmt.Sprintf("🎓 Internship certificate issued to %s (%d months)",
		volunteer.FullName, volunteer.DurationMonths))
}

// send posts the message asynchronously; failures are logged and dropped
func (s *NotificationService) send(message string) {
	if s.webhookURL == "" {
		return
	}

	go func() {
		form := url.Values{}
		form.Set("message", message)

		req, err := http.NewRequest(http.MethodPost, s.webhookURL, strings.NewReader(form.Encode()))
		if err != nil {
			log.Printf("⚠️ Notification request build failed: %v", err)
			return
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := s.client.Do(req)
		if err != nil {
			log.Printf("⚠️ Notification delivery failed: %v", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			log.Printf("⚠️ Notification webhook returned status %d", resp.StatusCode)
		}
	}()
}
