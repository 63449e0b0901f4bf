package handlers

import (
	"errors"
	"strconv"
	"time"

	"snaparoo-backend/internal/middleware"
	"snaparoo-backend/internal/models"
	"snaparoo-backend/internal/services"
	"snaparoo-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateEventRequest struct {
	Name               string `form:"name"`
	Email              string `form:"email"`
	Date               string `form:"date"`
	EndDate            string `form:"endDate"`
	Plan               string `form:"plan"`
	GuestLimit         string `form:"guestLimit"`
	MediaLimitPerGuest string `form:"mediaLimitPerGuest"`
	GalleryViewing     string `form:"galleryViewing"`
	Filters            string `form:"filters"`
	AllowGuestGallery  string `form:"allowGuestGallery"`
	BackgroundPoster   string `form:"backgroundPoster"`
}

type CreateEventResponse struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirectUrl"`
	Message     string `json:"message"`
}

// CreateEvent creates a new event from the organizer signup form
// @Summary Create event
// @Tags Events
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 201 {object} CreateEventResponse
// @Failure 400 {object} utils.Response
// @Router /events [post]
func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	if req.Name == "" || req.Email == "" || req.Date == "" || req.Plan == "" {
		return utils.Error(c, "Missing required fields", fiber.StatusBadRequest)
	}

	if !middleware.IsValidEmail(req.Email) {
		return utils.Error(c, "Invalid email format", fiber.StatusBadRequest)
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		return utils.Error(c, "Invalid date format", fiber.StatusBadRequest)
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := parseEventDate(req.EndDate)
		if err != nil {
			return utils.Error(c, "Invalid endDate format", fiber.StatusBadRequest)
		}
		endDate = &parsed
	}

	guestLimit, _ := strconv.Atoi(req.GuestLimit)
	mediaLimit, _ := strconv.Atoi(req.MediaLimitPerGuest)

	resp, err := h.eventSvc.CreateEvent(services.CreateEventRequest{
		Name:               req.Name,
		Email:              req.Email,
		Date:               date,
		EndDate:            endDate,
		Plan:               models.Plan(req.Plan),
		GuestLimit:         guestLimit,
		MediaLimitPerGuest: mediaLimit,
		GalleryViewing:     models.GalleryViewing(req.GalleryViewing),
		Filters:            models.FilterPreset(req.Filters),
		AllowGuestGallery:  req.AllowGuestGallery == "true",
		BackgroundPoster:   req.BackgroundPoster,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return utils.Error(c, "Missing required fields", fiber.StatusBadRequest)
		case errors.Is(err, services.ErrInvalidField):
			return utils.Error(c, err.Error(), fiber.StatusBadRequest)
		default:
			return utils.Error(c, "Failed to create event", fiber.StatusInternalServerError)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(CreateEventResponse{
		Success:     true,
		RedirectURL: resp.RedirectURL,
		Message:     "Event created successfully!",
	})
}

func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
