package handlers

import (
	"snaparoo-backend/internal/config"
	"snaparoo-backend/internal/services"
	"snaparoo-backend/internal/utils"
	"snaparoo-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	eventSvc     *services.EventService
	cameraSvc    *services.CameraService
	organizerSvc *services.OrganizerService
	cfg          *config.Config
}

func NewHandler(
	eventSvc *services.EventService,
	cameraSvc *services.CameraService,
	organizerSvc *services.OrganizerService,
	cfg *config.Config,
) *Handler {
	return &Handler{
		eventSvc:     eventSvc,
		cameraSvc:    cameraSvc,
		organizerSvc: organizerSvc,
		cfg:          cfg,
	}
}

func (h *Handler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", func(c *fiber.Ctx) error {
		return utils.Success(c, nil, "ok")
	})

	// Event creation (organizer signup flow)
	router.Post("/events", h.CreateEvent)

	// Guest-facing routes, addressed by camera token
	camera := router.Group("/camera-config")
	{
		camera.Get("/:cameraToken", h.GetCameraConfig)
	}
	router.Post("/camera-upload/:cameraToken", h.RecordUpload)

	// Organizer routes, addressed by organizer token
	organizer := router.Group("/organizer-event")
	{
		organizer.Get("/:organizerToken", h.GetOrganizerEvent)
		organizer.Patch("/:organizerToken", h.UpdateOrganizerEvent)
		organizer.Get("/:organizerToken/uploads", h.ListUploads)
		organizer.Post("/:organizerToken/poster", h.UploadPoster)
	}
}

// ErrorHandler handles global errors
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		logger.Log.WithError(err).Error("Unhandled request error")
	}

	return utils.Error(c, message, code)
}
