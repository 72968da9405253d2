package repositories

import (
	"context"
	"time"

	"dbt-setu/internal/adapters/persistence/models"
)

// ProfileRepository defines profile repository interface
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	GetByMobile(ctx context.Context, mobile string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	Approve(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, role string, search string, offset, limit int) ([]*models.Profile, int64, error)
	ListPendingApproval(ctx context.Context) ([]*models.Profile, error)
	ExistsByMobile(ctx context.Context, mobile string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByProfileID(ctx context.Context, profileID uint) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// TicketRepository defines verification ticket repository interface
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	GetByID(ctx context.Context, id uint) (*models.Ticket, error)
	GetByTrackingNo(ctx context.Context, trackingNo string) (*models.Ticket, error)
	GetLatestByProfile(ctx context.Context, profileID uint) (*models.Ticket, error)
	ListByStatuses(ctx context.Context, statuses []string) ([]*models.Ticket, error)
	CountActiveByProfile(ctx context.Context, profileID uint, activeStatuses []string) (int64, error)
	// UpdateStatusIf applies newStatus only when the row's current status is
	// one of expected; returns the number of rows changed so callers can
	// distinguish a lost race from success without a second read.
	UpdateStatusIf(ctx context.Context, id uint, expected []string, newStatus string) (int64, error)
	SoftDelete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// EventRepository defines event/notice repository interface
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	List(ctx context.Context) ([]*models.Event, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*models.Event, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// VolunteerRepository defines volunteer repository interface
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *models.Volunteer) error
	GetByID(ctx context.Context, id uint) (*models.Volunteer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*models.Volunteer, error)
	MarkCertified(ctx context.Context, id uint, issuedAt time.Time) error
	Count(ctx context.Context) (int64, error)
}
