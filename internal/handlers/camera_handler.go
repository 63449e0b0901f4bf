package handlers

import (
	"errors"

	"snaparoo-backend/internal/middleware"
	"snaparoo-backend/internal/repositories"
	"snaparoo-backend/internal/services"
	"snaparoo-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type RecordUploadRequest struct {
	ParticipantID string `json:"participantId" validate:"required"`
}

type RecordUploadResponse struct {
	Success     bool `json:"success"`
	UploadsLeft int  `json:"uploadsLeft"`
}

// GetCameraConfig returns the guest-facing event configuration
// @Summary Get camera config by camera token
// @Tags Camera
// @Produce json
// @Param cameraToken path string true "Camera token"
// @Success 200 {object} services.CameraConfig
// @Failure 404 {object} utils.Response
// @Router /camera-config/{cameraToken} [get]
func (h *Handler) GetCameraConfig(c *fiber.Ctx) error {
	cameraToken := c.Params("cameraToken")

	cfg, err := h.cameraSvc.GetConfig(cameraToken)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return utils.Error(c, "Not found", fiber.StatusNotFound)
		}
		return utils.Error(c, "Failed to fetch event", fiber.StatusInternalServerError)
	}

	return c.JSON(cfg)
}

// RecordUpload registers one guest capture against the per-guest media limit
// @Summary Record a guest upload
// @Tags Camera
// @Accept json
// @Produce json
// @Param cameraToken path string true "Camera token"
// @Param request body RecordUploadRequest true "Participant identifier"
// @Success 200 {object} RecordUploadResponse
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /camera-upload/{cameraToken} [post]
func (h *Handler) RecordUpload(c *fiber.Ctx) error {
	cameraToken := c.Params("cameraToken")

	var req RecordUploadRequest
	if err := middleware.ValidateBody(c, &req); err != nil {
		return err
	}

	uploadsLeft, err := h.cameraSvc.RecordUpload(cameraToken, req.ParticipantID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrEventNotFound):
			return utils.Error(c, "Event not found", fiber.StatusNotFound)
		case errors.Is(err, services.ErrMediaLimitReached):
			return utils.Error(c, "Media limit reached", fiber.StatusForbidden)
		default:
			return utils.Error(c, "Failed to record upload", fiber.StatusInternalServerError)
		}
	}

	return c.JSON(RecordUploadResponse{
		Success:     true,
		UploadsLeft: uploadsLeft,
	})
}
