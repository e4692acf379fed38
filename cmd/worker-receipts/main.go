package main

import (
	"context"

	"github.com/NahoooMac/wedhabesha-sub007/internal/config"
	"github.com/NahoooMac/wedhabesha-sub007/internal/consumers"
	"github.com/NahoooMac/wedhabesha-sub007/internal/database"
	"github.com/NahoooMac/wedhabesha-sub007/internal/publishers"
	"github.com/NahoooMac/wedhabesha-sub007/internal/repository"
	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/mq"
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
			NewMQConsumer,
			NewMQPublisher,

			repository.NewThreadRepository,
			repository.NewMessageRepository,
			repository.NewReadReceiptRepository,
			repository.NewTransactionManager,

			publishers.NewEventPublisher,
			service.NewDeliveryService,

			NewReceiptsConsumer,
		),
		fx.Invoke(runReceiptsConsumer),
	).Run()
}

func runReceiptsConsumer(receiptsConsumer consumers.ReceiptsConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			queues := []string{consumers.ReceiptsQueue, publishers.EventsQueue}
			if err := rabbit.DeclareTopology(queues); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", consumers.ReceiptsQueue))

			go func() {
				if err := receiptsConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("receipts consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping receipts consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return database.NewConnection(ctx, cfg, logger)
}

func NewReceiptsConsumer(delivery service.DeliveryService, consumer mq.Consumer, cfg *config.Config,
	logger *zap.Logger) consumers.ReceiptsConsumer {
	return consumers.NewReceiptsConsumer(delivery, consumer, cfg.Consumer.Prefetch, logger)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}
