package repositories

import (
	"errors"
	"fmt"

	"snaparoo-backend/internal/models"

	"gorm.io/gorm"
)

type eventRepo struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

// CreateEvent inserts a new event. Both tokens must already be set; the
// unique indexes reject any collision.
func (r *eventRepo) CreateEvent(event *models.Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}
	if event.OrganizerToken == "" || event.CameraToken == "" {
		return errors.New("event tokens cannot be empty")
	}

	return r.db.Create(event).Error
}

// GetEventByID retrieves an event by its ID
func (r *eventRepo) GetEventByID(id string) (*models.Event, error) {
	if id == "" {
		return nil, errors.New("event ID cannot be empty")
	}

	var event models.Event
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

// GetEventByOrganizerToken retrieves an event by its private organizer token
func (r *eventRepo) GetEventByOrganizerToken(token string) (*models.Event, error) {
	if token == "" {
		return nil, errors.New("organizer token cannot be empty")
	}

	var event models.Event
	if err := r.db.Where("organizer_token = ?", token).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

// GetEventByCameraToken retrieves an event by its public camera token
func (r *eventRepo) GetEventByCameraToken(token string) (*models.Event, error) {
	if token == "" {
		return nil, errors.New("camera token cannot be empty")
	}

	var event models.Event
	if err := r.db.Where("camera_token = ?", token).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

// UpdateEvent saves a full event record. Tokens are immutable, so the stored
// values are compared first and any attempt to change them is rejected.
func (r *eventRepo) UpdateEvent(event *models.Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}

	var existing models.Event
	if err := r.db.Where("id = ?", event.ID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to check event existence: %w", err)
	}

	if event.OrganizerToken != existing.OrganizerToken || event.CameraToken != existing.CameraToken {
		return errors.New("event tokens are immutable")
	}

	return r.db.Save(event).Error
}

// UpdateEventFields applies a sparse column update. Only the keys present in
// fields are written; everything else keeps its stored value.
func (r *eventRepo) UpdateEventFields(id string, fields map[string]interface{}) error {
	if id == "" {
		return errors.New("event ID cannot be empty")
	}
	if len(fields) == 0 {
		return nil
	}

	result := r.db.Model(&models.Event{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return fmt.Errorf("failed to update event: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}
