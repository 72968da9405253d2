package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"dbt-setu/internal/adapters/persistence/models"
	"dbt-setu/internal/core/domain"
	"dbt-setu/internal/pkg/crypto"

	"gorm.io/gorm"
)

// fakeTicketRepo is an in-memory TicketRepository for service tests
type fakeTicketRepo struct {
	tickets map[uint]*models.Ticket
	nextID  uint
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[uint]*models.Ticket), nextID: 1}
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *models.Ticket) error {
	ticket.ID = f.nextID
	ticket.CreatedAt = time.Now()
	f.nextID++
	f.tickets[ticket.ID] = ticket
	return nil
}

func (f *fakeTicketRepo) GetByID(_ context.Context, id uint) (*models.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTicketRepo) GetByTrackingNo(_ context.Context, trackingNo string) (*models.Ticket, error) {
	for _, t := range f.tickets {
		if t.TrackingNo == trackingNo {
			copied := *t
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTicketRepo) GetLatestByProfile(_ context.Context, profileID uint) (*models.Ticket, error) {
	var latest *models.Ticket
	for _, t := range f.tickets {
		if t.ProfileID != profileID {
			continue
		}
		if latest == nil || t.ID > latest.ID {
			latest = t
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeTicketRepo) ListByStatuses(_ context.Context, statuses []string) ([]*models.Ticket, error) {
	var out []*models.Ticket
	for _, t := range f.tickets {
		for _, s := range statuses {
			if t.Status == s {
				copied := *t
				out = append(out, &copied)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) CountActiveByProfile(_ context.Context, profileID uint, activeStatuses []string) (int64, error) {
	var count int64
	for _, t := range f.tickets {
		if t.ProfileID != profileID {
			continue
		}
		for _, s := range activeStatuses {
			if t.Status == s {
				count++
				break
			}
		}
	}
	return count, nil
}

func (f *fakeTicketRepo) UpdateStatusIf(_ context.Context, id uint, expected []string, newStatus string) (int64, error) {
	t, ok := f.tickets[id]
	if !ok {
		return 0, nil
	}
	for _, s := range expected {
		if t.Status == s {
			t.Status = newStatus
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeTicketRepo) SoftDelete(_ context.Context, id uint) error {
	if _, ok := f.tickets[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.tickets, id)
	return nil
}

func (f *fakeTicketRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var count int64
	for _, t := range f.tickets {
		if t.Status == status {
			count++
		}
	}
	return count, nil
}

func newTestVerificationService(t *testing.T) (*VerificationService, *fakeTicketRepo) {
	t.Helper()
	repo := newFakeTicketRepo()
	enc, err := crypto.New("test-encryption-secret")
	if err != nil {
		t.Fatalf("crypto.New: %v", err)
	}
	return NewVerificationService(repo, enc, NewNotificationService("")), repo
}

func TestSubmitMismatchedConfirmation(t *testing.T) {
	svc, repo := newTestVerificationService(t)

	_, err := svc.Submit(context.Background(), 1, "Asha Kumari", &SubmitInput{
		BankAccount:        "12345678",
		ConfirmBankAccount: "12345679",
		IfscCode:           "SBIN0001234",
	})
	if !errors.Is(err, ErrMismatchedAccount) {
		t.Fatalf("expected ErrMismatchedAccount, got %v", err)
	}
	if len(repo.tickets) != 0 {
		t.Fatalf("expected no ticket to be created, found %d", len(repo.tickets))
	}
}

func TestSubmitEncryptsAndSnapshotsRisk(t *testing.T) {
	svc, repo := newTestVerificationService(t)

	ticket, err := svc.Submit(context.Background(), 1, "Asha Kumari", &SubmitInput{
		BankAccount:        "12345678",
		ConfirmBankAccount: "12345678",
		IfscCode:           "sbin0001234", // lowercase gets normalized
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if ticket.Status != string(domain.StatusPendingInstitute) {
		t.Fatalf("expected status pending_institute, got %s", ticket.Status)
	}
	if ticket.TrackingNo == "" {
		t.Fatal("expected a tracking number")
	}

	payload, ok := models.ParseTicketPayload(ticket.Description)
	if !ok {
		t.Fatal("expected a structured payload in the ticket description")
	}
	if payload.BankEncrypted == "12345678" {
		t.Fatal("bank account stored in plaintext")
	}
	if payload.RiskScore != 10 || payload.RiskLevel != "LOW" {
		t.Fatalf("unexpected risk snapshot: score=%d level=%s", payload.RiskScore, payload.RiskLevel)
	}

	details, err := svc.Reveal(context.Background(), ticket.ID, domain.RoleInstitution)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if details.BankAccount != "12345678" || details.IfscCode != "SBIN0001234" {
		t.Fatalf("decrypted details wrong: %+v", details)
	}
	_ = repo
}

func TestSubmitDuplicateActiveBlocked(t *testing.T) {
	svc, _ := newTestVerificationService(t)
	ctx := context.Background()

	input := &SubmitInput{
		BankAccount:        "12345678",
		ConfirmBankAccount: "12345678",
		IfscCode:           "SBIN0001234",
	}
	if _, err := svc.Submit(ctx, 1, "Asha Kumari", input); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if _, err := svc.Submit(ctx, 1, "Asha Kumari", input); !errors.Is(err, ErrDuplicateActive) {
		t.Fatalf("expected ErrDuplicateActive, got %v", err)
	}
	// A different student is unaffected
	if _, err := svc.Submit(ctx, 2, "Ravi Kumar", input); err != nil {
		t.Fatalf("other student's Submit: %v", err)
	}
}

func TestFullApprovalFlow(t *testing.T) {
	svc, _ := newTestVerificationService(t)
	ctx := context.Background()

	ticket, err := svc.Submit(ctx, 1, "Asha Kumari", &SubmitInput{
		BankAccount:        "12345678",
		ConfirmBankAccount: "12345678",
		IfscCode:           "SBIN0001234",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Institute queue contains the ticket; admin queue does not
	items, err := svc.ListQueue(ctx, domain.RoleInstitution)
	if err != nil || len(items) != 1 {
		t.Fatalf("institute queue: items=%d err=%v", len(items), err)
	}
	if items[0].Risk == nil || items[0].Risk.Level != "LOW" {
		t.Fatalf("expected LOW risk on queue item, got %+v", items[0].Risk)
	}
	if admin, _ := svc.ListQueue(ctx, domain.RoleAdmin); len(admin) != 0 {
		t.Fatalf("admin queue should be empty, got %d", len(admin))
	}

	// Institute verifies → pending_admin
	next, err := svc.Decide(ctx, ticket.ID, 10, domain.RoleInstitution, domain.OutcomeVerify)
	if err != nil || next != domain.StatusPendingAdmin {
		t.Fatalf("institute verify: next=%s err=%v", next, err)
	}

	// Institute can no longer act on it
	if _, err := svc.Decide(ctx, ticket.ID, 10, domain.RoleInstitution, domain.OutcomeVerify); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on duplicate institute decide, got %v", err)
	}

	// Admin verifies → verified
	next, err = svc.Decide(ctx, ticket.ID, 20, domain.RoleAdmin, domain.OutcomeVerify)
	if err != nil || next != domain.StatusVerified {
		t.Fatalf("admin verify: next=%s err=%v", next, err)
	}

	// Terminal: no further decisions
	if _, err := svc.Decide(ctx, ticket.ID, 20, domain.RoleAdmin, domain.OutcomeReject); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition after terminal state, got %v", err)
	}

	latest, err := svc.GetMyLatest(ctx, 1)
	if err != nil || latest.Status != string(domain.StatusVerified) {
		t.Fatalf("GetMyLatest: status=%s err=%v", latest.Status, err)
	}
}

func TestRejectReapplyResubmit(t *testing.T) {
	svc, _ := newTestVerificationService(t)
	ctx := context.Background()

	input := &SubmitInput{
		BankAccount:        "12345678",
		ConfirmBankAccount: "12345678",
		IfscCode:           "SBIN0001234",
	}
	ticket, err := svc.Submit(ctx, 1, "Asha Kumari", input)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Institute rejects at first stage
	next, err := svc.Decide(ctx, ticket.ID, 10, domain.RoleInstitution, domain.OutcomeReject)
	if err != nil || next != domain.StatusRejected {
		t.Fatalf("reject: next=%s err=%v", next, err)
	}

	// Rejected still blocks nothing - but it is not active, so resubmission
	// without reapply is also allowed only after the old ticket is cleared
	if _, err := svc.Decide(ctx, ticket.ID, 20, domain.RoleAdmin, domain.OutcomeVerify); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on rejected ticket, got %v", err)
	}

	// Only the owner may reapply
	if err := svc.Reapply(ctx, ticket.ID, 99); !errors.Is(err, ErrNotTicketOwner) {
		t.Fatalf("expected ErrNotTicketOwner, got %v", err)
	}
	if err := svc.Reapply(ctx, ticket.ID, 1); err != nil {
		t.Fatalf("Reapply: %v", err)
	}

	// Fresh submission goes back to the institute queue
	fresh, err := svc.Submit(ctx, 1, "Asha Kumari", input)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if fresh.Status != string(domain.StatusPendingInstitute) {
		t.Fatalf("expected pending_institute, got %s", fresh.Status)
	}
	if fresh.TrackingNo == ticket.TrackingNo {
		t.Fatal("resubmission must get a new tracking number")
	}
}

func TestReapplyRequiresRejectedStatus(t *testing.T) {
	svc, _ := newTestVerificationService(t)
	ctx := context.Background()

	ticket, err := svc.Submit(ctx, 1, "Asha Kumari", &SubmitInput{
		BankAccount:        "12345678",
		ConfirmBankAccount: "12345678",
		IfscCode:           "SBIN0001234",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := svc.Reapply(ctx, ticket.ID, 1); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on pending ticket, got %v", err)
	}
}

func TestDecideRoleGating(t *testing.T) {
	svc, _ := newTestVerificationService(t)
	ctx := context.Background()

	ticket, err := svc.Submit(ctx, 1, "Asha Kumari", &SubmitInput{
		BankAccount:        "12345678",
		ConfirmBankAccount: "12345678",
		IfscCode:           "SBIN0001234",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Students and panchayats cannot decide at all
	if _, err := svc.Decide(ctx, ticket.ID, 1, domain.RoleStudent, domain.OutcomeVerify); !errors.Is(err, ErrRoleNotAllowed) {
		t.Fatalf("expected ErrRoleNotAllowed for student, got %v", err)
	}
	if _, err := svc.Decide(ctx, ticket.ID, 1, domain.RolePanchayat, domain.OutcomeVerify); !errors.Is(err, ErrRoleNotAllowed) {
		t.Fatalf("expected ErrRoleNotAllowed for panchayat, got %v", err)
	}

	// Admin cannot skip the institute stage
	if _, err := svc.Decide(ctx, ticket.ID, 20, domain.RoleAdmin, domain.OutcomeVerify); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for admin at first stage, got %v", err)
	}
}

func TestDecideMissingTicket(t *testing.T) {
	svc, _ := newTestVerificationService(t)

	if _, err := svc.Decide(context.Background(), 404, 10, domain.RoleInstitution, domain.OutcomeVerify); !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
}

func TestLegacyOpenStatusDecidable(t *testing.T) {
	svc, repo := newTestVerificationService(t)
	ctx := context.Background()

	// Simulate a pre-migration row with the old status spelling
	legacy := &models.Ticket{
		TrackingNo: "legacy-row",
		ProfileID:  1,
		UserName:   "Asha Kumari",
		Status:     "open",
	}
	if err := repo.Create(ctx, legacy); err != nil {
		t.Fatalf("seed legacy ticket: %v", err)
	}

	// It shows up in the institute queue
	items, err := svc.ListQueue(ctx, domain.RoleInstitution)
	if err != nil || len(items) != 1 {
		t.Fatalf("institute queue: items=%d err=%v", len(items), err)
	}

	// And the institute can decide it
	next, err := svc.Decide(ctx, legacy.ID, 10, domain.RoleInstitution, domain.OutcomeVerify)
	if err != nil || next != domain.StatusPendingAdmin {
		t.Fatalf("decide legacy: next=%s err=%v", next, err)
	}
	// The canonical spelling is written back
	if repo.tickets[legacy.ID].Status != string(domain.StatusPendingAdmin) {
		t.Fatalf("stored status = %s", repo.tickets[legacy.ID].Status)
	}
}

func TestGetMyLatestNotSubmitted(t *testing.T) {
	svc, _ := newTestVerificationService(t)

	if _, err := svc.GetMyLatest(context.Background(), 1); !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound for student with no history, got %v", err)
	}
}

func TestListQueueRejectsNonReviewer(t *testing.T) {
	svc, _ := newTestVerificationService(t)

	if _, err := svc.ListQueue(context.Background(), domain.RoleStudent); !errors.Is(err, ErrRoleNotAllowed) {
		t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
	}
}
