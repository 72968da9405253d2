package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"dbt-setu/internal/adapters/persistence/models"
	"dbt-setu/internal/adapters/persistence/repositories"
	"dbt-setu/internal/config"
	"dbt-setu/internal/core/domain"
	"dbt-setu/internal/pkg/jwt"
	"dbt-setu/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auth errors
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrMobileTaken        = errors.New("mobile number is already registered")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrWeakPassword       = errors.New("password does not meet minimum requirements")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAccountNotApproved = errors.New("account is awaiting admin approval")
	ErrRefreshTokenReused = errors.New("refresh token has been revoked or reused")
)

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	profileRepo repositories.ProfileRepository
	tokenRepo   repositories.RefreshTokenRepository
	cfg         *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	profileRepo repositories.ProfileRepository,
	tokenRepo repositories.RefreshTokenRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		cfg:         cfg,
	}
}

// RegisterInput represents registration data for any portal role
type RegisterInput struct {
	FullName      string `json:"full_name" validate:"required,min=2,max=100"`
	Mobile        string `json:"mobile" validate:"required,len=10,numeric"`
	Email         string `json:"email" validate:"required,email,max=100"`
	Password      string `json:"password" validate:"required,min=8,max=72"`
	Role          string `json:"role" validate:"required,oneof=student institution panchayat"`
	Aadhaar       string `json:"aadhaar" validate:"omitempty,len=12,numeric"`
	State         string `json:"state" validate:"omitempty,max=50"`
	District      string `json:"district" validate:"omitempty,max=50"`
	InstituteName string `json:"institute_name" validate:"omitempty,max=150"`
}

// LoginInput represents login credentials
type LoginInput struct {
	Mobile   string `json:"mobile" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the login/refresh payload
type AuthResponse struct {
	Profile      *models.ProfileResponse `json:"profile"`
	AccessToken  string                  `json:"access_token"`
	RefreshToken string                  `json:"refresh_token"`
}

// Register creates a new profile. Students are active immediately;
// institution and panchayat accounts start unapproved and cannot log in
// until an admin approves them.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.ProfileResponse, error) {
	role := domain.Role(input.Role)
	if !role.Valid() || role == domain.RoleAdmin {
		return nil, ErrInvalidRole
	}
	if !password.Validate(input.Password) {
		return nil, ErrWeakPassword
	}

	// Uniqueness checks
	if taken, err := s.profileRepo.ExistsByMobile(ctx, input.Mobile); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrMobileTaken
	}
	if taken, err := s.profileRepo.ExistsByEmail(ctx, strings.ToLower(input.Email)); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		FullName:      input.FullName,
		Mobile:        input.Mobile,
		Email:         strings.ToLower(input.Email),
		Password:      hashed,
		Role:          string(role),
		Aadhaar:       input.Aadhaar,
		State:         input.State,
		District:      input.District,
		InstituteName: input.InstituteName,
		IsApproved:    !role.RequiresApproval(),
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	log.Printf("✅ Profile registered: %s (role: %s, approved: %t)",
		profile.Mobile, profile.Role, profile.IsApproved)
	return profile.ToResponse(), nil
}

// Login authenticates a profile and issues a token pair. Unapproved
// institution/panchayat accounts are refused with ErrAccountNotApproved.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	profile, err := s.profileRepo.GetByMobile(ctx, input.Mobile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, profile.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !profile.IsApproved {
		return nil, ErrAccountNotApproved
	}

	return s.issueTokenPair(ctx, profile)
}

// Refresh rotates a refresh token: the presented token is revoked and a
// fresh pair is issued. A token that was already revoked means reuse - all
// of the profile's sessions are revoked as a precaution.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	tokenHash := password.HashToken(refreshToken)
	stored, err := s.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}

	if stored.IsRevoked() {
		// Token reuse - revoke everything for this profile
		if err := s.tokenRepo.RevokeAllByProfileID(ctx, claims.ProfileID); err != nil {
			log.Printf("⚠️ Failed to revoke sessions after token reuse (profile: %d): %v", claims.ProfileID, err)
		}
		log.Printf("🛑 Refresh token reuse detected (profile: %d)", claims.ProfileID)
		return nil, ErrRefreshTokenReused
	}
	if stored.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	profile, err := s.profileRepo.GetByID(ctx, claims.ProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if !profile.IsApproved {
		return nil, ErrAccountNotApproved
	}

	if err := s.tokenRepo.Revoke(ctx, stored.ID); err != nil {
		return nil, err
	}

	return s.issueTokenPair(ctx, profile)
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := password.HashToken(refreshToken)
	return s.tokenRepo.RevokeByTokenHash(ctx, tokenHash)
}

// LogoutAll revokes every active session for a profile
func (s *AuthService) LogoutAll(ctx context.Context, profileID uint) error {
	return s.tokenRepo.RevokeAllByProfileID(ctx, profileID)
}

// Me returns the authenticated profile
func (s *AuthService) Me(ctx context.Context, profileID uint) (*models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile.ToResponse(), nil
}

// issueTokenPair generates and persists a new access/refresh token pair
func (s *AuthService) issueTokenPair(ctx context.Context, profile *models.Profile) (*AuthResponse, error) {
	accessToken, err := jwt.GenerateAccessToken(
		profile.ID, profile.FullName, profile.Mobile, profile.Role,
		s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.NewString()
	refreshToken, err := jwt.GenerateRefreshToken(
		profile.ID, tokenID,
		s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	record := &models.RefreshToken{
		ProfileID: profile.ID,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &AuthResponse{
		Profile:      profile.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
