package v1

import (
	"strconv"

	"github.com/NahoooMac/wedhabesha-sub007/internal/constants"
	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger      *zap.Logger
	threads     service.ThreadService
	messages    service.MessageService
	delivery    service.DeliveryService
	attachments service.AttachmentService
	presence    service.PresenceService
	escalations service.EscalationService
}

func NewHandler(logger *zap.Logger, threads service.ThreadService, messages service.MessageService,
	delivery service.DeliveryService, attachments service.AttachmentService,
	presence service.PresenceService, escalations service.EscalationService) *Handler {
	return &Handler{
		logger:      logger,
		threads:     threads,
		messages:    messages,
		delivery:    delivery,
		attachments: attachments,
		presence:    presence,
		escalations: escalations,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) badRequest(c *fiber.Ctx, code string) error {
	return c.Status(constants.GetHTTPStatus(code)).JSON(fiber.Map{
		"code":    code,
		"message": constants.GetErrorMessage(code),
	})
}

func (h *Handler) paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func queryInt64(c *fiber.Ctx, name string) int64 {
	value, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		return 0
	}

	return value
}
