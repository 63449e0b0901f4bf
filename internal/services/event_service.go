package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"snaparoo-backend/internal/config"
	"snaparoo-backend/internal/models"
	"snaparoo-backend/internal/repositories"
	"snaparoo-backend/internal/utils"
	"snaparoo-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrMissingFields is returned when a creation request omits any required
// field. Nothing is persisted in that case.
var ErrMissingFields = errors.New("missing required fields")

// ErrInvalidField wraps rejections of values outside the closed enums
// (plan, gallery viewing policy, filter preset).
var ErrInvalidField = errors.New("invalid field value")

type EventService struct {
	repo *repositories.Repository
	cfg  *config.Config
}

func NewEventService(repo *repositories.Repository, cfg *config.Config) *EventService {
	return &EventService{repo: repo, cfg: cfg}
}

type CreateEventRequest struct {
	Name               string
	Email              string
	Date               time.Time
	EndDate            *time.Time
	Plan               models.Plan
	GuestLimit         int
	MediaLimitPerGuest int
	GalleryViewing     models.GalleryViewing
	Filters            models.FilterPreset
	AllowGuestGallery  bool
	BackgroundPoster   string
}

type CreateEventResponse struct {
	Event       *models.Event
	RedirectURL string
}

// CreateEvent inserts one event with freshly generated tokens. The organizer
// token is a full UUID; the camera token is intentionally shorter since it is
// shared publicly via QR code and carries lower privilege.
func (s *EventService) CreateEvent(req CreateEventRequest) (*CreateEventResponse, error) {
	if req.Name == "" || req.Email == "" || req.Date.IsZero() || req.Plan == "" {
		return nil, ErrMissingFields
	}

	if !req.Plan.Valid() {
		return nil, fmt.Errorf("%w: unknown plan %q", ErrInvalidField, req.Plan)
	}

	if req.GuestLimit <= 0 {
		req.GuestLimit = 10
	}
	if req.MediaLimitPerGuest <= 0 {
		req.MediaLimitPerGuest = 25
	}
	if req.GalleryViewing == "" {
		req.GalleryViewing = models.GalleryDuring
	} else if !req.GalleryViewing.Valid() {
		return nil, fmt.Errorf("%w: unknown gallery viewing policy %q", ErrInvalidField, req.GalleryViewing)
	}
	if req.Filters == "" {
		req.Filters = models.FilterNone
	} else if !req.Filters.Valid() {
		return nil, fmt.Errorf("%w: unknown filter preset %q", ErrInvalidField, req.Filters)
	}

	organizerToken := uuid.New().String()
	cameraToken := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]

	event := &models.Event{
		ID:                 uuid.New(),
		OrganizerToken:     organizerToken,
		CameraToken:        cameraToken,
		Name:               req.Name,
		Email:              req.Email,
		Date:               req.Date,
		EndDate:            req.EndDate,
		Plan:               req.Plan,
		PaymentStatus:      "PAID", // payment gateway is mocked
		MaxUploads:         req.Plan.MaxUploads(),
		GuestLimit:         req.GuestLimit,
		MediaLimitPerGuest: req.MediaLimitPerGuest,
		Branding:           models.DefaultBranding(req.Name),
		Filters:            req.Filters,
		GalleryViewing:     req.GalleryViewing,
		AllowGuestGallery:  req.AllowGuestGallery,
		BackgroundPoster:   req.BackgroundPoster,
	}

	if err := s.repo.EventRepo.CreateEvent(event); err != nil {
		return nil, err
	}

	// Generate the QR code image that guests scan to reach the camera page.
	cameraURL := fmt.Sprintf("%s/camera/%s", s.cfg.BaseURL, cameraToken)
	filename, err := utils.GenerateQRCodeImage(cameraURL, s.cfg.QRDir)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to generate camera QR code")
	} else {
		event.QRPath = fmt.Sprintf("/qrcodes/%s", filename)
		if err := s.repo.EventRepo.UpdateEvent(event); err != nil {
			return nil, err
		}
	}

	// Email delivery is an external collaborator; log the dashboard link only.
	logger.Log.WithFields(logrus.Fields{
		"email":     req.Email,
		"dashboard": fmt.Sprintf("/dashboard/%s", organizerToken),
	}).Info("Dashboard link ready for organizer")

	return &CreateEventResponse{
		Event:       event,
		RedirectURL: fmt.Sprintf("/dashboard/%s", organizerToken),
	}, nil
}
