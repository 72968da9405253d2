package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"dbt-setu/internal/adapters/persistence/models"
	"dbt-setu/internal/adapters/persistence/repositories"
	"dbt-setu/internal/core/domain"
	"dbt-setu/internal/pkg/crypto"
	"dbt-setu/internal/pkg/risk"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Verification errors
var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrMismatchedAccount = errors.New("bank account and confirmation do not match")
	ErrDuplicateActive   = errors.New("an application is already under review for this student")
	ErrNotTicketOwner    = errors.New("ticket does not belong to this student")
	ErrRoleNotAllowed    = errors.New("role is not authorized for this action")
)

// VerificationService owns the bank-linking application lifecycle: the
// student submission, the two-stage review queue and the status transition
// table. Every transition is applied with a conditional update so a lost
// race is reported as an invalid transition instead of a silent overwrite.
type VerificationService struct {
	ticketRepo repositories.TicketRepository
	encryptor  *crypto.Encryptor
	notify     *NotificationService
}

// NewVerificationService creates a new verification service
func NewVerificationService(
	ticketRepo repositories.TicketRepository,
	encryptor *crypto.Encryptor,
	notify *NotificationService,
) *VerificationService {
	return &VerificationService{
		ticketRepo: ticketRepo,
		encryptor:  encryptor,
		notify:     notify,
	}
}

// SubmitInput represents a student's bank detail submission
type SubmitInput struct {
	BankAccount        string `json:"bank_account" validate:"required,min=1,max=20"`
	ConfirmBankAccount string `json:"confirm_bank_account" validate:"required"`
	IfscCode           string `json:"ifsc_code" validate:"required,max=11"`
}

// QueueItem is one reviewable application with its risk snapshot
type QueueItem struct {
	Ticket *models.Ticket `json:"ticket"`
	Risk   *risk.Result   `json:"risk,omitempty"`
}

// RevealedDetails are decrypted bank details for an authorized reviewer
type RevealedDetails struct {
	BankAccount string `json:"bank_account"`
	IfscCode    string `json:"ifsc_code"`
}

// activeStatuses are the non-terminal statuses that block a new submission.
// The legacy "open" spelling is included so pre-migration rows still count.
var activeStatuses = []string{
	string(domain.StatusPendingInstitute),
	"open",
	string(domain.StatusPendingAdmin),
}

// Submit validates and files a new verification application. The
// confirmation value is compared and discarded - it is never persisted.
// IFSC format is advisory at this stage: a malformed code is accepted but
// flagged by the risk snapshot for the reviewer.
func (s *VerificationService) Submit(ctx context.Context, studentID uint, fullName string, input *SubmitInput) (*models.Ticket, error) {
	// 1. Two-field confirmation check
	if input.BankAccount != input.ConfirmBankAccount {
		return nil, ErrMismatchedAccount
	}

	account := strings.TrimSpace(input.BankAccount)
	ifsc := strings.ToUpper(strings.TrimSpace(input.IfscCode))

	// 2. Single-active-application guard
	active, err := s.ticketRepo.CountActiveByProfile(ctx, studentID, activeStatuses)
	if err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, ErrDuplicateActive
	}

	// 3. Risk snapshot for the reviewer surface
	riskResult := risk.Analyze(account, ifsc)

	// 4. Encrypt bank details at rest
	bankEncrypted, err := s.encryptor.Encrypt(account)
	if err != nil {
		return nil, err
	}
	ifscEncrypted, err := s.encryptor.Encrypt(ifsc)
	if err != nil {
		return nil, err
	}

	// 5. Build the structured payload
	payload := &models.TicketPayload{
		Version:       models.TicketPayloadVersion,
		BankEncrypted: bankEncrypted,
		IfscEncrypted: ifscEncrypted,
		RiskScore:     riskResult.Score,
		RiskLevel:     string(riskResult.Level),
		RiskFlags:     riskResult.Flags,
	}
	description, err := payload.Encode()
	if err != nil {
		return nil, err
	}

	// 6. Create the ticket in the institute review queue
	ticket := &models.Ticket{
		TrackingNo:  uuid.NewString(),
		ProfileID:   studentID,
		UserName:    fullName,
		Type:        "verification",
		Description: description,
		Status:      string(domain.StatusPendingInstitute),
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.notify.NotifyNewApplication(ticket)

	log.Printf("✅ Verification ticket %s created (student: %d, risk: %s)",
		ticket.TrackingNo, studentID, riskResult.Level)
	return ticket, nil
}

// ListQueue returns the worklist for a reviewer role: the institute sees
// applications awaiting first-stage review, the admin sees applications the
// institute already forwarded. Ordered newest first; side-effect free.
func (s *VerificationService) ListQueue(ctx context.Context, role domain.Role) ([]*QueueItem, error) {
	var statuses []string
	switch role {
	case domain.RoleInstitution:
		statuses = []string{string(domain.StatusPendingInstitute), "open"}
	case domain.RoleAdmin:
		statuses = []string{string(domain.StatusPendingAdmin)}
	default:
		return nil, ErrRoleNotAllowed
	}

	tickets, err := s.ticketRepo.ListByStatuses(ctx, statuses)
	if err != nil {
		return nil, err
	}

	items := make([]*QueueItem, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, &QueueItem{
			Ticket: t,
			Risk:   s.riskFor(t),
		})
	}
	return items, nil
}

// riskFor resolves the risk result for a ticket: the stored snapshot when
// present, otherwise recomputed from the decrypted payload. Legacy
// plain-text tickets have no structured payload and return nil.
func (s *VerificationService) riskFor(t *models.Ticket) *risk.Result {
	payload, ok := models.ParseTicketPayload(t.Description)
	if !ok {
		return nil
	}
	if payload.RiskLevel != "" {
		return &risk.Result{
			Score: payload.RiskScore,
			Level: risk.Level(payload.RiskLevel),
			Flags: payload.RiskFlags,
		}
	}
	result := risk.Analyze(
		s.encryptor.Decrypt(payload.BankEncrypted),
		s.encryptor.Decrypt(payload.IfscEncrypted),
	)
	return &result
}

// Decide applies a reviewer's verdict. The role determines the only source
// status it may act on; the conditional update guarantees the transition
// fires at most once even under concurrent duplicate calls.
func (s *VerificationService) Decide(ctx context.Context, ticketID uint, actorID uint, role domain.Role, outcome domain.DecisionOutcome) (domain.TicketStatus, error) {
	// 1. Resolve the source status this role is authorized to decide from
	source, ok := domain.DecidableStatus(role)
	if !ok {
		return "", ErrRoleNotAllowed
	}

	// 2. Load the ticket
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrTicketNotFound
		}
		return "", err
	}

	// 3. Check the current state against the transition table
	current := domain.NormalizeStatus(ticket.Status)
	if current != source {
		return "", domain.ErrInvalidTransition
	}
	next, ok := domain.NextStatus(source, outcome)
	if !ok {
		return "", domain.ErrInvalidTransition
	}

	// 4. Conditional update keyed on the expected source status
	expected := []string{string(source)}
	if source == domain.StatusPendingInstitute {
		expected = append(expected, "open")
	}
	rows, err := s.ticketRepo.UpdateStatusIf(ctx, ticketID, expected, string(next))
	if err != nil {
		return "", err
	}
	if rows == 0 {
		// Another decision moved the ticket first; the record is unchanged.
		return "", domain.ErrInvalidTransition
	}

	ticket.Status = string(next)
	s.notify.NotifyDecision(ticket, next)

	log.Printf("✅ Ticket %s: %s → %s (reviewer: %d, role: %s)",
		ticket.TrackingNo, current, next, actorID, role)
	return next, nil
}

// Reapply resets a rejected application so the student can submit afresh.
// The rejected ticket is soft-deleted, which removes it from every queue
// and from future Decide lookups.
func (s *VerificationService) Reapply(ctx context.Context, ticketID uint, studentID uint) error {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return err
	}

	if ticket.ProfileID != studentID {
		return ErrNotTicketOwner
	}
	if domain.NormalizeStatus(ticket.Status) != domain.StatusRejected {
		return domain.ErrInvalidTransition
	}

	if err := s.ticketRepo.SoftDelete(ctx, ticketID); err != nil {
		return err
	}

	log.Printf("✅ Ticket %s superseded for re-application (student: %d)", ticket.TrackingNo, studentID)
	return nil
}

// GetMyLatest returns a student's most recent application. Callers map
// ErrTicketNotFound to the virtual not_submitted state.
func (s *VerificationService) GetMyLatest(ctx context.Context, studentID uint) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.GetLatestByProfile(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	// Normalize the legacy spelling before it reaches any surface
	ticket.Status = string(domain.NormalizeStatus(ticket.Status))
	return ticket, nil
}

// Track returns an application by its public tracking number
func (s *VerificationService) Track(ctx context.Context, trackingNo string) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.GetByTrackingNo(ctx, trackingNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	ticket.Status = string(domain.NormalizeStatus(ticket.Status))
	return ticket, nil
}

// Reveal decrypts the bank details of a ticket for an authorized reviewer.
// Decryption failures surface as sentinel strings, never as errors.
func (s *VerificationService) Reveal(ctx context.Context, ticketID uint, role domain.Role) (*RevealedDetails, error) {
	if !role.IsReviewer() {
		return nil, ErrRoleNotAllowed
	}

	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	payload, ok := models.ParseTicketPayload(ticket.Description)
	if !ok {
		// Legacy plain-text payload - show it as the account field verbatim
		return &RevealedDetails{BankAccount: ticket.Description}, nil
	}

	return &RevealedDetails{
		BankAccount: s.encryptor.Decrypt(payload.BankEncrypted),
		IfscCode:    s.encryptor.Decrypt(payload.IfscEncrypted),
	}, nil
}
