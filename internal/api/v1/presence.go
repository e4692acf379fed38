package v1

import (
	"github.com/NahoooMac/wedhabesha-sub007/internal/constants"
	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) SetOnline(c *fiber.Ctx) error {
	userID, ok := h.paramID(c, "userId")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	var request SetOnlineRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse set online body", zap.Error(err))
		return h.badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	cmd := service.SetOnlineCommand{
		UserID:   userID,
		UserType: request.UserType,
		SocketID: request.SocketID,
	}

	resp, err := h.presence.SetOnline(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) SetOffline(c *fiber.Ctx) error {
	userID, ok := h.paramID(c, "userId")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	resp, err := h.presence.SetOffline(c.UserContext(), service.SetOfflineCommand{UserID: userID})
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) GetPresence(c *fiber.Ctx) error {
	userID, ok := h.paramID(c, "userId")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	resp, err := h.presence.GetPresence(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
