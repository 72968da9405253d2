package repositories

import (
	"context"
	"time"

	"dbt-setu/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// volunteerRepository implements VolunteerRepository interface
type volunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository creates a new volunteer repository
func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{db: db}
}

// Create creates a new volunteer
func (r *volunteerRepository) Create(ctx context.Context, volunteer *models.Volunteer) error {
	return r.db.WithContext(ctx).Create(volunteer).Error
}

// GetByID gets a volunteer by ID
func (r *volunteerRepository) GetByID(ctx context.Context, id uint) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&volunteer).Error
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// ExistsByEmail checks if an email already has a volunteer application
func (r *volunteerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Volunteer{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

// List returns all volunteers, newest first
func (r *volunteerRepository) List(ctx context.Context) ([]*models.Volunteer, error) {
	var volunteers []*models.Volunteer
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&volunteers).Error
	if err != nil {
		return nil, err
	}
	return volunteers, nil
}

// MarkCertified records certificate issuance for a volunteer
func (r *volunteerRepository) MarkCertified(ctx context.Context, id uint, issuedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Volunteer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":                "certified",
			"certificate_issued_at": issuedAt,
		}).Error
}

// Count counts all volunteers
func (r *volunteerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Volunteer{}).Count(&count).Error
	return count, err
}
