package services

import (
	"context"
	"errors"
	"log"

	"dbt-setu/internal/adapters/persistence/models"
	"dbt-setu/internal/adapters/persistence/repositories"
	"dbt-setu/internal/core/domain"
	"dbt-setu/internal/pkg/pagination"

	"gorm.io/gorm"
)

var ErrAlreadyApproved = errors.New("account is already approved")

// UserService handles profile administration: directory listing and the
// admin approval workflow for institution and panchayat registrations.
type UserService struct {
	profileRepo repositories.ProfileRepository
	tokenRepo   repositories.RefreshTokenRepository
}

// NewUserService creates a new user service
func NewUserService(
	profileRepo repositories.ProfileRepository,
	tokenRepo repositories.RefreshTokenRepository,
) *UserService {
	return &UserService{
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
	}
}

// List returns profiles filtered by role and search term, paginated
func (s *UserService) List(ctx context.Context, role, search string, params *pagination.Params) ([]*models.ProfileResponse, *pagination.Meta, error) {
	profiles, total, err := s.profileRepo.List(ctx, role, search, params.Offset, params.Limit)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*models.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, p.ToResponse())
	}

	return responses, pagination.GetMeta(params, total), nil
}

// ListPendingApproval returns institution/panchayat accounts awaiting approval
func (s *UserService) ListPendingApproval(ctx context.Context) ([]*models.ProfileResponse, error) {
	profiles, err := s.profileRepo.ListPendingApproval(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, p.ToResponse())
	}
	return responses, nil
}

// Approve activates a pending institution/panchayat account
func (s *UserService) Approve(ctx context.Context, profileID uint) (*models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if profile.IsApproved {
		return nil, ErrAlreadyApproved
	}

	if err := s.profileRepo.Approve(ctx, profileID); err != nil {
		return nil, err
	}

	profile.IsApproved = true
	log.Printf("✅ Account approved: %s (role: %s)", profile.Email, profile.Role)
	return profile.ToResponse(), nil
}

// RejectRegistration removes a pending account. Rejection deletes the
// registration outright so the applicant can register again cleanly.
func (s *UserService) RejectRegistration(ctx context.Context, profileID uint) error {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	if profile.IsApproved {
		return ErrAlreadyApproved
	}
	if profile.Role == string(domain.RoleAdmin) {
		return domain.ErrForbidden
	}

	// Revoke any sessions before removing the account
	if err := s.tokenRepo.RevokeAllByProfileID(ctx, profileID); err != nil {
		return err
	}
	if err := s.profileRepo.Delete(ctx, profileID); err != nil {
		return err
	}

	log.Printf("❌ Registration rejected and removed: %s (role: %s)", profile.Email, profile.Role)
	return nil
}

// Get returns a single profile
func (s *UserService) Get(ctx context.Context, profileID uint) (*models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile.ToResponse(), nil
}
