package main

import (
	"context"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/config"
	"github.com/NahoooMac/wedhabesha-sub007/internal/database"
	"github.com/NahoooMac/wedhabesha-sub007/internal/publishers"
	"github.com/NahoooMac/wedhabesha-sub007/internal/repository"
	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/directory"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/httpclient"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/mq"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/smsprovider"
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

			repository.NewMessageRepository,
			repository.NewPresenceRepository,
			repository.NewSMSNotificationRepository,

			publishers.NewEventPublisher,
			NewSMSProvider,
			NewDirectoryClient,

			service.NewProviderService,
			service.NewPresenceService,
			service.NewEscalationService,
		),
		fx.Invoke(runEscalationWorker),
	).Run()
}

func runEscalationWorker(cfg *config.Config, escalations service.EscalationService, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.EventsQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go func() {
				ticker := time.NewTicker(cfg.Escalation.Interval)
				defer ticker.Stop()

				for {
					select {
					case <-ticker.C:
						stats, err := escalations.ProcessDueEscalations(appCtx)
						if err != nil {
							logger.Error("escalation cycle failed", zap.Error(err))
						}

						logger.Info("escalation cycle finished",
							zap.Int("scanned", stats.Scanned),
							zap.Int("skipped", stats.Skipped),
							zap.Int("claimed", stats.Claimed),
							zap.Int("sent", stats.Sent),
							zap.Int("failed", stats.Failed),
							zap.Int("recovered", stats.Recovered))
					case <-appCtx.Done():
						logger.Info("worker context cancelled")
						return
					}
				}
			}()

			logger.Info("escalation worker started",
				zap.Duration("interval", cfg.Escalation.Interval),
				zap.Duration("unreadThreshold", cfg.Escalation.UnreadThreshold))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping escalation worker")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return database.NewConnection(ctx, cfg, logger)
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
