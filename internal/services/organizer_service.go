package services

import (
	"fmt"

	"snaparoo-backend/internal/config"
	"snaparoo-backend/internal/models"
	"snaparoo-backend/internal/repositories"
)

type OrganizerService struct {
	repo *repositories.Repository
	cfg  *config.Config
}

func NewOrganizerService(repo *repositories.Repository, cfg *config.Config) *OrganizerService {
	return &OrganizerService{repo: repo, cfg: cfg}
}

// OrganizerEvent is the full event state returned to the dashboard, with the
// live upload count attached.
type OrganizerEvent struct {
	models.Event
	UploadCount int64 `json:"uploadCount"`
}

// GetEvent resolves an organizer token to the full event record.
func (s *OrganizerService) GetEvent(organizerToken string) (*OrganizerEvent, error) {
	event, err := s.repo.EventRepo.GetEventByOrganizerToken(organizerToken)
	if err != nil {
		return nil, err
	}

	uploadCount, err := s.repo.UploadRepo.CountUploadsByEvent(event.ID.String())
	if err != nil {
		return nil, err
	}

	return &OrganizerEvent{Event: *event, UploadCount: uploadCount}, nil
}

// ListUploads returns a page of the event's recorded uploads for the
// dashboard activity view, newest first.
func (s *OrganizerService) ListUploads(organizerToken string, page, pageSize int) ([]models.Upload, int64, int, error) {
	event, err := s.repo.EventRepo.GetEventByOrganizerToken(organizerToken)
	if err != nil {
		return nil, 0, 0, err
	}

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	uploads, total, err := s.repo.UploadRepo.ListUploadsByEvent(event.ID.String(), offset, pageSize)
	if err != nil {
		return nil, 0, 0, err
	}

	totalPages := (int(total) + pageSize - 1) / pageSize
	return uploads, total, totalPages, nil
}

// UpdateEventParams carries a sparse update: nil pointers mean "leave the
// stored value untouched". Branding sub-fields are overlaid onto the stored
// branding object rather than replacing it wholesale.
type UpdateEventParams struct {
	GalleryViewing     *models.GalleryViewing
	AllowGuestGallery  *bool
	Filters            *models.FilterPreset
	MediaLimitPerGuest *int
	BackgroundPoster   *string

	// Branding sub-fields
	Title        *string
	Subtitle     *string
	PrimaryColor *string
	Font         *string
	ShowVintage  *bool
}

func (p UpdateEventParams) hasBranding() bool {
	return p.Title != nil || p.Subtitle != nil || p.PrimaryColor != nil ||
		p.Font != nil || p.ShowVintage != nil
}

// UpdateEvent applies a partial update addressed by organizer token. Only the
// fields present in params are written; tokens and counters are never
// touchable through this path.
func (s *OrganizerService) UpdateEvent(organizerToken string, params UpdateEventParams) (*OrganizerEvent, error) {
	event, err := s.repo.EventRepo.GetEventByOrganizerToken(organizerToken)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})

	if params.GalleryViewing != nil {
		if !params.GalleryViewing.Valid() {
			return nil, fmt.Errorf("%w: unknown gallery viewing policy %q", ErrInvalidField, *params.GalleryViewing)
		}
		fields["gallery_viewing"] = *params.GalleryViewing
	}
	if params.AllowGuestGallery != nil {
		fields["allow_guest_gallery"] = *params.AllowGuestGallery
	}
	if params.Filters != nil {
		if !params.Filters.Valid() {
			return nil, fmt.Errorf("%w: unknown filter preset %q", ErrInvalidField, *params.Filters)
		}
		fields["filters"] = *params.Filters
	}
	if params.MediaLimitPerGuest != nil && *params.MediaLimitPerGuest > 0 {
		fields["media_limit_per_guest"] = *params.MediaLimitPerGuest
	}
	if params.BackgroundPoster != nil {
		fields["background_poster"] = *params.BackgroundPoster
	}

	if params.hasBranding() {
		branding := event.Branding
		if params.Title != nil {
			branding.Title = *params.Title
		}
		if params.Subtitle != nil {
			branding.Subtitle = *params.Subtitle
		}
		if params.PrimaryColor != nil {
			branding.PrimaryColor = *params.PrimaryColor
		}
		if params.Font != nil {
			branding.Font = *params.Font
		}
		if params.ShowVintage != nil {
			branding.ShowVintage = *params.ShowVintage
		}
		fields["branding"] = branding
	}

	if len(fields) > 0 {
		if err := s.repo.EventRepo.UpdateEventFields(event.ID.String(), fields); err != nil {
			return nil, err
		}
	}

	return s.GetEvent(organizerToken)
}
