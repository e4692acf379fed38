package api

import (
	v1 "github.com/NahoooMac/wedhabesha-sub007/internal/api/v1"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)

	threads := app.Group("/v1/threads")
	threads.Post("/", handler.OpenThread)
	threads.Get("/", handler.ListThreads)
	threads.Get("/:id", handler.GetThread)
	threads.Delete("/:id", handler.DeactivateThread)
	threads.Post("/:id/messages", handler.AppendMessage)
	threads.Get("/:id/messages", handler.ListMessages)
	threads.Patch("/:id/read", handler.MarkThreadRead)

	messages := app.Group("/v1/messages")
	messages.Get("/:id", handler.GetMessage)
	messages.Delete("/:id", handler.DeleteMessage)
	messages.Get("/:id/receipts", handler.ListReceipts)
	messages.Post("/:id/attachments", handler.AttachFile)
	messages.Get("/:id/attachments", handler.ListAttachments)

	presence := app.Group("/v1/presence")
	presence.Put("/:userId/online", handler.SetOnline)
	presence.Put("/:userId/offline", handler.SetOffline)
	presence.Get("/:userId", handler.GetPresence)

	escalations := app.Group("/v1/escalations")
	escalations.Get("/", handler.ListEscalations)
	escalations.Post("/:messageId/retry", handler.RetryEscalation)
}
