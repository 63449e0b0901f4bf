package repositories

import (
	"errors"

	"snaparoo-backend/internal/models"

	"gorm.io/gorm"
)

// ErrEventNotFound is returned by every token or ID lookup that matches no
// stored event.
var ErrEventNotFound = errors.New("event not found")

type uploadRepo struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepo{db: db}
}

func (r *uploadRepo) CreateUpload(upload *models.Upload) error {
	if upload == nil {
		return errors.New("upload cannot be nil")
	}
	return r.db.Create(upload).Error
}

func (r *uploadRepo) CountUploadsByEvent(eventID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Upload{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

func (r *uploadRepo) CountUploadsByEventAndParticipant(eventID, participantID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Upload{}).
		Where("event_id = ? AND participant_id = ?", eventID, participantID).
		Count(&count).Error
	return count, err
}

// CountDistinctParticipants returns how many different participant identifiers
// have recorded at least one upload for the event.
func (r *uploadRepo) CountDistinctParticipants(eventID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Upload{}).
		Where("event_id = ?", eventID).
		Distinct("participant_id").
		Count(&count).Error
	return count, err
}

func (r *uploadRepo) ListUploadsByEvent(eventID string, offset, limit int) ([]models.Upload, int64, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var uploads []models.Upload
	var total int64

	query := r.db.Model(&models.Upload{}).Where("event_id = ?", eventID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&uploads).Error; err != nil {
		return nil, 0, err
	}

	return uploads, total, nil
}

func (r *uploadRepo) Transaction(txFunc func(*gorm.DB) error) error {
	return r.db.Transaction(txFunc)
}
