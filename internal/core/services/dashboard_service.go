package services

import (
	"context"

	"dbt-setu/internal/adapters/persistence/repositories"
	"dbt-setu/internal/core/domain"
)

// DashboardStats are the portal-wide counters shown on the admin dashboard
type DashboardStats struct {
	Students         int64 `json:"students"`
	Institutions     int64 `json:"institutions"`
	Panchayats       int64 `json:"panchayats"`
	PendingInstitute int64 `json:"pending_institute"`
	PendingAdmin     int64 `json:"pending_admin"`
	Verified         int64 `json:"verified"`
	Rejected         int64 `json:"rejected"`
	Events           int64 `json:"events"`
	Volunteers       int64 `json:"volunteers"`
}

// DashboardService aggregates counters for the admin overview
type DashboardService struct {
	profileRepo   repositories.ProfileRepository
	ticketRepo    repositories.TicketRepository
	eventRepo     repositories.EventRepository
	volunteerRepo repositories.VolunteerRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	profileRepo repositories.ProfileRepository,
	ticketRepo repositories.TicketRepository,
	eventRepo repositories.EventRepository,
	volunteerRepo repositories.VolunteerRepository,
) *DashboardService {
	return &DashboardService{
		profileRepo:   profileRepo,
		ticketRepo:    ticketRepo,
		eventRepo:     eventRepo,
		volunteerRepo: volunteerRepo,
	}
}

// ReviewerSummary is the queue snapshot shown on reviewer dashboards
type ReviewerSummary struct {
	QueueSize int64 `json:"queue_size"`
	Verified  int64 `json:"verified"`
	Rejected  int64 `json:"rejected"`
}

// GetReviewerSummary returns the queue counters for a reviewer role: the
// institute sees its first-stage backlog, the admin the forwarded one.
func (s *DashboardService) GetReviewerSummary(ctx context.Context, role domain.Role) (*ReviewerSummary, error) {
	summary := &ReviewerSummary{}

	switch role {
	case domain.RoleInstitution:
		pending, err := s.ticketRepo.CountByStatus(ctx, string(domain.StatusPendingInstitute))
		if err != nil {
			return nil, err
		}
		legacy, err := s.ticketRepo.CountByStatus(ctx, "open")
		if err != nil {
			return nil, err
		}
		summary.QueueSize = pending + legacy
	case domain.RoleAdmin:
		pending, err := s.ticketRepo.CountByStatus(ctx, string(domain.StatusPendingAdmin))
		if err != nil {
			return nil, err
		}
		summary.QueueSize = pending
	default:
		return nil, ErrRoleNotAllowed
	}

	var err error
	if summary.Verified, err = s.ticketRepo.CountByStatus(ctx, string(domain.StatusVerified)); err != nil {
		return nil, err
	}
	if summary.Rejected, err = s.ticketRepo.CountByStatus(ctx, string(domain.StatusRejected)); err != nil {
		return nil, err
	}
	return summary, nil
}

// GetStats collects all dashboard counters. The legacy "open" spelling is
// folded into the pending_institute count.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.Students, err = s.profileRepo.CountByRole(ctx, string(domain.RoleStudent)); err != nil {
		return nil, err
	}
	if stats.Institutions, err = s.profileRepo.CountByRole(ctx, string(domain.RoleInstitution)); err != nil {
		return nil, err
	}
	if stats.Panchayats, err = s.profileRepo.CountByRole(ctx, string(domain.RolePanchayat)); err != nil {
		return nil, err
	}

	pending, err := s.ticketRepo.CountByStatus(ctx, string(domain.StatusPendingInstitute))
	if err != nil {
		return nil, err
	}
	legacy, err := s.ticketRepo.CountByStatus(ctx, "open")
	if err != nil {
		return nil, err
	}
	stats.PendingInstitute = pending + legacy

	if stats.PendingAdmin, err = s.ticketRepo.CountByStatus(ctx, string(domain.StatusPendingAdmin)); err != nil {
		return nil, err
	}
	if stats.Verified, err = s.ticketRepo.CountByStatus(ctx, string(domain.StatusVerified)); err != nil {
		return nil, err
	}
	if stats.Rejected, err = s.ticketRepo.CountByStatus(ctx, string(domain.StatusRejected)); err != nil {
		return nil, err
	}

	if stats.Events, err = s.eventRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Volunteers, err = s.volunteerRepo.Count(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}
