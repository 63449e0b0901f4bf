package repositories

import (
	"snaparoo-backend/internal/models"

	"gorm.io/gorm"
)

type Repository struct {
	DB         *gorm.DB
	EventRepo  EventRepository
	UploadRepo UploadRepository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:         db,
		EventRepo:  NewEventRepository(db),
		UploadRepo: NewUploadRepository(db),
	}
}

func AutoMigrate(db *gorm.DB) error {
	// Enable UUID extension
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return err
	}

	// Migrate models
	return db.AutoMigrate(
		&models.Event{},
		&models.Upload{},
	)
}

// Interface definitions
type EventRepository interface {
	CreateEvent(event *models.Event) error
	GetEventByID(id string) (*models.Event, error)
	GetEventByOrganizerToken(token string) (*models.Event, error)
	GetEventByCameraToken(token string) (*models.Event, error)
	UpdateEvent(event *models.Event) error
	UpdateEventFields(id string, fields map[string]interface{}) error
}

type UploadRepository interface {
	CreateUpload(upload *models.Upload) error
	CountUploadsByEvent(eventID string) (int64, error)
	CountUploadsByEventAndParticipant(eventID, participantID string) (int64, error)
	CountDistinctParticipants(eventID string) (int64, error)
	ListUploadsByEvent(eventID string, offset, limit int) ([]models.Upload, int64, error)
	Transaction(txFunc func(*gorm.DB) error) error
}
