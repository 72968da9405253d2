package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"dbt-setu/internal/adapters/persistence/models"
	"dbt-setu/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Volunteer errors
var (
	ErrVolunteerNotFound = errors.New("volunteer not found")
	ErrVolunteerExists   = errors.New("a volunteer application already exists for this email")
	ErrAlreadyCertified  = errors.New("certificate has already been issued")
	ErrInternshipOngoing = errors.New("internship duration has not been completed yet")
)

// VolunteerService handles the DBT Sahayak internship programme:
// applications, progress tracking and certificate issuance.
type VolunteerService struct {
	volunteerRepo repositories.VolunteerRepository
	notify        *NotificationService
}

// NewVolunteerService creates a new volunteer service
func NewVolunteerService(volunteerRepo repositories.VolunteerRepository, notify *NotificationService) *VolunteerService {
	return &VolunteerService{
		volunteerRepo: volunteerRepo,
		notify:        notify,
	}
}

// ApplyInput represents a volunteer internship application
type ApplyInput struct {
	FullName       string `json:"full_name" validate:"required,min=2,max=100"`
	Age            int    `json:"age" validate:"required,gte=20,max=80"`
	Mobile         string `json:"mobile" validate:"required,len=10,numeric"`
	Email          string `json:"email" validate:"required,email,max=100"`
	State          string `json:"state" validate:"omitempty,max=50"`
	District       string `json:"district" validate:"omitempty,max=50"`
	DurationMonths int    `json:"duration_months" validate:"required,oneof=1 2 3 6"`
}

// Progress reports how far along an internship is
type Progress struct {
	PercentComplete int  `json:"percent_complete"`
	DaysServed      int  `json:"days_served"`
	DaysLeft        int  `json:"days_left"`
	IsComplete      bool `json:"is_complete"`
}

// Apply registers a new volunteer. One application per email; the
// internship clock starts on the application date.
func (s *VolunteerService) Apply(ctx context.Context, input *ApplyInput) (*models.Volunteer, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.volunteerRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrVolunteerExists
	}

	volunteer := &models.Volunteer{
		FullName:       input.FullName,
		Age:            input.Age,
		Mobile:         input.Mobile,
		Email:          email,
		State:          input.State,
		District:       input.District,
		DurationMonths: input.DurationMonths,
		Status:         "active",
		StartDate:      time.Now(),
	}

	if err := s.volunteerRepo.Create(ctx, volunteer); err != nil {
		return nil, err
	}

	log.Printf("✅ Volunteer enrolled: %s (%d months)", volunteer.Email, volunteer.DurationMonths)
	return volunteer, nil
}

// List returns all volunteers, newest first
func (s *VolunteerService) List(ctx context.Context) ([]*models.Volunteer, error) {
	return s.volunteerRepo.List(ctx)
}

// GetProgress computes internship progress for a volunteer
func (s *VolunteerService) GetProgress(ctx context.Context, volunteerID uint) (*models.Volunteer, *Progress, error) {
	volunteer, err := s.volunteerRepo.GetByID(ctx, volunteerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrVolunteerNotFound
		}
		return nil, nil, err
	}

	return volunteer, ComputeProgress(volunteer, time.Now()), nil
}

// ComputeProgress derives progress from the start date and committed
// duration. A month counts as 30 days; percent is capped at 100.
func ComputeProgress(v *models.Volunteer, now time.Time) *Progress {
	totalDays := v.DurationMonths * 30
	served := int(now.Sub(v.StartDate).Hours() / 24)
	if served < 0 {
		served = 0
	}

	percent := 0
	if totalDays > 0 {
		percent = served * 100 / totalDays
	}
	if percent > 100 {
		percent = 100
	}

	left := totalDays - served
	if left < 0 {
		left = 0
	}

	return &Progress{
		PercentComplete: percent,
		DaysServed:      served,
		DaysLeft:        left,
		IsComplete:      served >= totalDays,
	}
}

// IssueCertificate marks a completed internship as certified. Admin only
// (enforced at the route); refuses when the duration is not yet served or a
// certificate was already issued.
func (s *VolunteerService) IssueCertificate(ctx context.Context, volunteerID uint) (*models.Volunteer, error) {
	volunteer, err := s.volunteerRepo.GetByID(ctx, volunteerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVolunteerNotFound
		}
		return nil, err
	}

	if volunteer.CertificateIssuedAt != nil {
		return nil, ErrAlreadyCertified
	}

	now := time.Now()
	if !ComputeProgress(volunteer, now).IsComplete {
		return nil, ErrInternshipOngoing
	}

	if err := s.volunteerRepo.MarkCertified(ctx, volunteerID, now); err != nil {
		return nil, err
	}

	volunteer.Status = "certified"
	volunteer.CertificateIssuedAt = &now
	s.notify.NotifyCertificateIssued(volunteer)

	log.Printf("🎓 Certificate issued: %s", volunteer.Email)
	return volunteer, nil
}
