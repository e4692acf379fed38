package v1

import (
	"github.com/NahoooMac/wedhabesha-sub007/internal/constants"
	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) OpenThread(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request OpenThreadRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse open thread body", zap.Error(err))
		return h.badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	cmd := service.OpenThreadCommand{
		CoupleID:    request.CoupleID,
		VendorID:    request.VendorID,
		LeadID:      request.LeadID,
		ServiceType: request.ServiceType,
	}

	resp, err := h.threads.OpenThread(ctx, cmd)
	if err != nil {
		return err
	}

	status := fiber.StatusOK
	if resp.Created {
		status = fiber.StatusCreated
	}

	return c.Status(status).JSON(resp)
}

func (h *Handler) GetThread(c *fiber.Ctx) error {
	threadID, ok := h.paramID(c, "id")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	resp, err := h.threads.GetThread(c.UserContext(), threadID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) ListThreads(c *fiber.Ctx) error {
	query := service.ListThreadsQuery{
		UserID:   queryInt64(c, "user_id"),
		UserType: c.Query("user_type"),
		Limit:    c.QueryInt("limit"),
		Offset:   c.QueryInt("offset"),
	}

	if query.UserID <= 0 {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	resp, err := h.threads.ListThreads(c.UserContext(), query)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) DeactivateThread(c *fiber.Ctx) error {
	threadID, ok := h.paramID(c, "id")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	if err := h.threads.DeactivateThread(c.UserContext(), threadID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) MarkThreadRead(c *fiber.Ctx) error {
	threadID, ok := h.paramID(c, "id")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	var request MarkThreadReadRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse mark read body", zap.Error(err))
		return h.badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	if request.UserID <= 0 {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	cmd := service.MarkThreadReadCommand{
		ThreadID:   threadID,
		ReaderID:   request.UserID,
		ReaderType: request.UserType,
	}

	resp, err := h.delivery.MarkThreadRead(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
