package repositories

import (
	"context"

	"dbt-setu/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ticketRepository implements TicketRepository interface
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

// Create creates a new verification ticket
func (r *ticketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

// GetByID gets a ticket by ID
func (r *ticketRepository) GetByID(ctx context.Context, id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetByTrackingNo gets a ticket by its public tracking number
func (r *ticketRepository) GetByTrackingNo(ctx context.Context, trackingNo string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).Where("tracking_no = ?", trackingNo).First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetLatestByProfile gets a student's most recent ticket
func (r *ticketRepository) GetLatestByProfile(ctx context.Context, profileID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ListByStatuses returns tickets in any of the given statuses, newest first
func (r *ticketRepository) ListByStatuses(ctx context.Context, statuses []string) ([]*models.Ticket, error) {
	var tickets []*models.Ticket
	err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// CountActiveByProfile counts a student's tickets in non-terminal statuses
func (r *ticketRepository) CountActiveByProfile(ctx context.Context, profileID uint, activeStatuses []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where("profile_id = ?", profileID).
		Where("status IN ?", activeStatuses).
		Count(&count).Error
	return count, err
}

// UpdateStatusIf is a conditional status update: the new status is applied
// only when the row still holds one of the expected source statuses. A
// duplicate decide racing against an earlier one matches zero rows, so the
// transition happens exactly once.
func (r *ticketRepository) UpdateStatusIf(ctx context.Context, id uint, expected []string, newStatus string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where("id = ?", id).
		Where("status IN ?", expected).
		Update("status", newStatus)
	return res.RowsAffected, res.Error
}

// SoftDelete removes a ticket from all queries (reapply path)
func (r *ticketRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Ticket{}, id).Error
}

// CountByStatus counts tickets in a given status
func (r *ticketRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
