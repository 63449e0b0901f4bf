package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"snaparoo-backend/internal/models"
	"snaparoo-backend/internal/repositories"
	"snaparoo-backend/internal/services"
	"snaparoo-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// GetOrganizerEvent returns the full event state for the dashboard
// @Summary Get event by organizer token
// @Tags Organizer
// @Produce json
// @Param organizerToken path string true "Organizer token"
// @Success 200 {object} services.OrganizerEvent
// @Failure 404 {object} utils.Response
// @Router /organizer-event/{organizerToken} [get]
func (h *Handler) GetOrganizerEvent(c *fiber.Ctx) error {
	organizerToken := c.Params("organizerToken")

	event, err := h.organizerSvc.GetEvent(organizerToken)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return utils.Error(c, "Not found", fiber.StatusNotFound)
		}
		return utils.Error(c, "Failed to fetch event", fiber.StatusInternalServerError)
	}

	return c.JSON(event)
}

// UpdateOrganizerEvent applies a sparse form-encoded update. Fields absent
// from the request body keep their stored values; numeric fields that fail to
// parse are treated as absent.
// @Summary Partially update an event
// @Tags Organizer
// @Accept x-www-form-urlencoded
// @Produce json
// @Param organizerToken path string true "Organizer token"
// @Success 200 {object} services.OrganizerEvent
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /organizer-event/{organizerToken} [patch]
func (h *Handler) UpdateOrganizerEvent(c *fiber.Ctx) error {
	organizerToken := c.Params("organizerToken")

	var params services.UpdateEventParams

	if value, ok := formField(c, "galleryViewing"); ok {
		gv := models.GalleryViewing(value)
		params.GalleryViewing = &gv
	}
	if value, ok := formField(c, "allowGuestGallery"); ok {
		allowed := value == "true" || value == "on"
		params.AllowGuestGallery = &allowed
	}
	if value, ok := formField(c, "filters"); ok {
		preset := models.FilterPreset(value)
		params.Filters = &preset
	}
	if value, ok := formField(c, "mediaLimitPerGuest"); ok {
		if limit, err := strconv.Atoi(value); err == nil {
			params.MediaLimitPerGuest = &limit
		}
	}
	if value, ok := formField(c, "backgroundPoster"); ok {
		params.BackgroundPoster = &value
	}
	if value, ok := formField(c, "title"); ok {
		params.Title = &value
	}
	if value, ok := formField(c, "subtitle"); ok {
		params.Subtitle = &value
	}
	if value, ok := formField(c, "primaryColor"); ok {
		params.PrimaryColor = &value
	}
	if value, ok := formField(c, "font"); ok {
		params.Font = &value
	}
	if value, ok := formField(c, "showVintage"); ok {
		show := value == "true" || value == "on"
		params.ShowVintage = &show
	}

	event, err := h.organizerSvc.UpdateEvent(organizerToken, params)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrEventNotFound):
			return utils.Error(c, "Not found", fiber.StatusNotFound)
		case errors.Is(err, services.ErrInvalidField):
			return utils.Error(c, err.Error(), fiber.StatusBadRequest)
		default:
			return utils.Error(c, "Update failed", fiber.StatusInternalServerError)
		}
	}

	return c.JSON(event)
}

// ListUploads returns a page of the event's recorded uploads
// @Summary List uploads for the dashboard
// @Tags Organizer
// @Produce json
// @Param organizerToken path string true "Organizer token"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /organizer-event/{organizerToken}/uploads [get]
func (h *Handler) ListUploads(c *fiber.Ctx) error {
	organizerToken := c.Params("organizerToken")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))

	uploads, total, totalPages, err := h.organizerSvc.ListUploads(organizerToken, page, pageSize)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return utils.Error(c, "Not found", fiber.StatusNotFound)
		}
		return utils.Error(c, "Failed to fetch uploads", fiber.StatusInternalServerError)
	}

	meta := &utils.Meta{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPages,
	}

	return utils.SuccessWithMeta(c, uploads, meta, "Uploads retrieved successfully")
}

// UploadPoster stores a background poster image and points the event at it
// @Summary Upload a background poster
// @Tags Organizer
// @Accept multipart/form-data
// @Produce json
// @Param organizerToken path string true "Organizer token"
// @Param poster formData file true "Poster image"
// @Success 200 {object} services.OrganizerEvent
// @Failure 400 {object} utils.Response
// @Router /organizer-event/{organizerToken}/poster [post]
func (h *Handler) UploadPoster(c *fiber.Ctx) error {
	organizerToken := c.Params("organizerToken")

	file, err := c.FormFile("poster")
	if err != nil || file == nil {
		return utils.Error(c, "Poster file is required", fiber.StatusBadRequest)
	}

	if err := utils.ValidateImageFile(file); err != nil {
		return utils.Error(c, err.Error(), fiber.StatusBadRequest)
	}

	filename := utils.GenerateUniqueFilename(file.Filename)
	if err := utils.SaveUploadedFile(file, h.cfg.PosterDir, filename); err != nil {
		return utils.Error(c, "Failed to save poster", fiber.StatusInternalServerError)
	}

	posterPath := fmt.Sprintf("/posters/%s", filename)
	event, err := h.organizerSvc.UpdateEvent(organizerToken, services.UpdateEventParams{
		BackgroundPoster: &posterPath,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return utils.Error(c, "Not found", fiber.StatusNotFound)
		}
		return utils.Error(c, "Update failed", fiber.StatusInternalServerError)
	}

	return c.JSON(event)
}

// formField reports whether a form key was present in the request body at
// all, so an empty value can still be an intentional overwrite.
func formField(c *fiber.Ctx, key string) (string, bool) {
	args := c.Request().PostArgs()
	if !args.Has(key) {
		return "", false
	}
	return string(args.Peek(key)), true
}
