package services

import (
	"context"
	"errors"
	"log"
	"time"

	"dbt-setu/internal/adapters/persistence/models"
	"dbt-setu/internal/adapters/persistence/repositories"
	"dbt-setu/internal/core/domain"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

// EventService handles awareness camps and notices posted by institutions
// and panchayats.
type EventService struct {
	eventRepo repositories.EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo repositories.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// CreateEventInput represents a new event/notice posting
type CreateEventInput struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	EventDate   string `json:"event_date" validate:"required,datetime=2006-01-02"`
	Venue       string `json:"venue" validate:"omitempty,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// Create posts a new event. Only institution and panchayat accounts may
// post; the caller's role is checked here, not just at the route.
func (s *EventService) Create(ctx context.Context, ownerID uint, ownerName string, role domain.Role, input *CreateEventInput) (*models.Event, error) {
	if role != domain.RoleInstitution && role != domain.RolePanchayat && role != domain.RoleAdmin {
		return nil, ErrRoleNotAllowed
	}

	eventDate, err := time.Parse("2006-01-02", input.EventDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	event := &models.Event{
		Title:       input.Title,
		EventDate:   eventDate,
		Venue:       input.Venue,
		Status:      "scheduled",
		Description: input.Description,
		PostedBy:    ownerName,
		OwnerID:     ownerID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	log.Printf("✅ Event posted: %q by %s", event.Title, ownerName)
	return event, nil
}

// List returns all events, newest first
func (s *EventService) List(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.List(ctx)
}

// ListMine returns events posted by the given owner
func (s *EventService) ListMine(ctx context.Context, ownerID uint) ([]*models.Event, error) {
	return s.eventRepo.ListByOwner(ctx, ownerID)
}

// Delete removes an event. Owners can delete their own postings; admins can
// delete any.
func (s *EventService) Delete(ctx context.Context, eventID uint, actorID uint, role domain.Role) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	if event.OwnerID != actorID && role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	return s.eventRepo.Delete(ctx, eventID)
}
