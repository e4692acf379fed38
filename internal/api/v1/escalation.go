package v1

import (
	"github.com/NahoooMac/wedhabesha-sub007/internal/constants"
	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListEscalations(c *fiber.Ctx) error {
	query := service.ListEscalationsQuery{
		Status: c.Query("status"),
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}

	resp, err := h.escalations.ListEscalations(c.UserContext(), query)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) RetryEscalation(c *fiber.Ctx) error {
	messageID, ok := h.paramID(c, "messageId")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	if err := h.escalations.RetryEscalation(c.UserContext(), service.RetryEscalationCommand{MessageID: messageID}); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
