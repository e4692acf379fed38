package main

import (
	"context"

	"github.com/NahoooMac/wedhabesha-sub007/internal/api"
	"github.com/NahoooMac/wedhabesha-sub007/internal/api/middleware"
	v1 "github.com/NahoooMac/wedhabesha-sub007/internal/api/v1"
	"github.com/NahoooMac/wedhabesha-sub007/internal/config"
	"github.com/NahoooMac/wedhabesha-sub007/internal/database"
	"github.com/NahoooMac/wedhabesha-sub007/internal/publishers"
	"github.com/NahoooMac/wedhabesha-sub007/internal/repository"
	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/directory"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/httpclient"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/mq"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/smsprovider"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,

			NewConnectionDB,
			NewMQConnection,
			NewMQPublisher,

			repository.NewThreadRepository,
			repository.NewMessageRepository,
			repository.NewReadReceiptRepository,
			repository.NewPresenceRepository,
			repository.NewAttachmentRepository,
			repository.NewSMSNotificationRepository,
			repository.NewTransactionManager,

			publishers.NewEventPublisher,
			NewSMSProvider,
			NewDirectoryClient,

			service.NewProviderService,
			service.NewThreadService,
			service.NewMessageService,
			service.NewDeliveryService,
			service.NewAttachmentService,
			service.NewPresenceService,
			service.NewEscalationService,

			NewFiberApp,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, rabbit *mq.RabbitMQ,
	logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.EventsQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}

			return rabbit.Close()
		},
	})
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

// NewConnectionDB owns schema migration; the workers assume the API ran first.
func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()

	db, err := database.NewConnection(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func NewSMSProvider(cfg *config.Config) smsprovider.Provider {
	client := httpclient.NewHTTPClient(cfg.SMS.Timeout)
	return smsprovider.NewSMSProvider(cfg.SMS, client)
}

func NewDirectoryClient(cfg *config.Config) directory.Client {
	client := httpclient.NewHTTPClient(cfg.Directory.Timeout)
	return directory.NewClient(cfg.Directory, client)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}
