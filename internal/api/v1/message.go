package v1

import (
	"github.com/NahoooMac/wedhabesha-sub007/internal/constants"
	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) AppendMessage(c *fiber.Ctx) error {
	threadID, ok := h.paramID(c, "id")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	var request AppendMessageRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse append message body", zap.Error(err))
		return h.badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	cmd := service.AppendMessageCommand{
		ThreadID:    threadID,
		SenderID:    request.SenderID,
		SenderType:  request.SenderType,
		Content:     request.Content,
		MessageType: request.MessageType,
	}

	resp, err := h.messages.AppendMessage(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *Handler) ListMessages(c *fiber.Ctx) error {
	threadID, ok := h.paramID(c, "id")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	query := service.ListMessagesQuery{
		ThreadID: threadID,
		BeforeID: queryInt64(c, "before_id"),
		Limit:    c.QueryInt("limit"),
	}

	resp, err := h.messages.ListMessages(c.UserContext(), query)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) GetMessage(c *fiber.Ctx) error {
	messageID, ok := h.paramID(c, "id")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	resp, err := h.messages.GetMessage(c.UserContext(), messageID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) DeleteMessage(c *fiber.Ctx) error {
	messageID, ok := h.paramID(c, "id")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	requesterID := queryInt64(c, "user_id")
	if requesterID <= 0 {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	cmd := service.DeleteMessageCommand{
		MessageID:     messageID,
		RequesterID:   requesterID,
		RequesterType: c.Query("user_type"),
	}

	if err := h.messages.DeleteMessage(c.UserContext(), cmd); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ListReceipts(c *fiber.Ctx) error {
	messageID, ok := h.paramID(c, "id")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	receipts, err := h.delivery.ListReceipts(c.UserContext(), messageID)
	if err != nil {
		return err
	}

	return c.JSON(ReceiptsResponse{Receipts: receipts})
}

func (h *Handler) AttachFile(c *fiber.Ctx) error {
	messageID, ok := h.paramID(c, "id")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	var request AttachFileRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse attach file body", zap.Error(err))
		return h.badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	cmd := service.AttachFileCommand{
		MessageID:    messageID,
		FileName:     request.FileName,
		FileType:     request.FileType,
		FileSize:     request.FileSize,
		FileURL:      request.FileURL,
		ThumbnailURL: request.ThumbnailURL,
	}

	resp, err := h.attachments.AttachFile(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *Handler) ListAttachments(c *fiber.Ctx) error {
	messageID, ok := h.paramID(c, "id")
	if !ok {
		return h.badRequest(c, constants.ErrCodeValidationFailed)
	}

	attachments, err := h.attachments.ListAttachments(c.UserContext(), messageID)
	if err != nil {
		return err
	}

	return c.JSON(AttachmentsResponse{Attachments: attachments})
}
