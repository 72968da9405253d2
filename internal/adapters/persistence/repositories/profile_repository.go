package repositories

import (
	"context"

	"dbt-setu/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// profileRepository implements ProfileRepository interface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create creates a new profile
func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetByID gets a profile by ID
func (r *profileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByMobile gets a profile by mobile number
func (r *profileRepository) GetByMobile(ctx context.Context, mobile string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("mobile = ?", mobile).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByEmail gets a profile by email
func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update updates a profile
func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Approve marks a profile as approved
func (r *profileRepository) Approve(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Update("is_approved", true).Error
}

// Delete soft-deletes a profile
func (r *profileRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Profile{}, id).Error
}

// List returns profiles filtered by role and/or a name search, newest first
func (r *profileRepository) List(ctx context.Context, role string, search string, offset, limit int) ([]*models.Profile, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Profile{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if search != "" {
		query = query.Where("full_name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []*models.Profile
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// ListPendingApproval returns unapproved institution/panchayat registrations
func (r *profileRepository) ListPendingApproval(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.db.WithContext(ctx).
		Where("role IN ?", []string{"institution", "panchayat"}).
		Where("is_approved = ?", false).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// ExistsByMobile checks if a mobile number is already registered
func (r *profileRepository) ExistsByMobile(ctx context.Context, mobile string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("mobile = ?", mobile).
		Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks if an email is already registered
func (r *profileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

// CountByRole counts profiles with the given role
func (r *profileRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("role = ?", role).
		Count(&count).Error
	return count, err
}
