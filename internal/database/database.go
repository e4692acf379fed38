package database

import (
	"context"

	"github.com/NahoooMac/wedhabesha-sub007/internal/config"
	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

// Migrate keeps the schema in step with the models. Safe to run from every
// binary on startup; AutoMigrate only adds what is missing.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.MessageThread{},
		&model.Message{},
		&model.Attachment{},
		&model.ReadReceipt{},
		&model.ConnectionStatus{},
		&model.SMSNotification{},
	)
}
