package config

import (
	"fmt"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/pkg/directory"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/mq"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/mysql"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/smsprovider"
	"github.com/spf13/viper"
)

type Config struct {
	API        API                `mapstructure:"api"`
	Database   mysql.Config       `mapstructure:"database"`
	RabbitMQ   mq.Config          `mapstructure:"rabbitmq"`
	SMS        smsprovider.Config `mapstructure:"sms"`
	Directory  directory.Config   `mapstructure:"directory"`
	Escalation Escalation         `mapstructure:"escalation"`
	Consumer   Consumer           `mapstructure:"consumer"`
}

type API struct {
	Port string `mapstructure:"port"`
}

// Escalation holds the policy knobs for the SMS escalation worker.
type Escalation struct {
	Interval        time.Duration `mapstructure:"interval"`
	UnreadThreshold time.Duration `mapstructure:"unread_threshold"`
	BatchSize       int           `mapstructure:"batch_size"`
	SkipOnline      bool          `mapstructure:"skip_online"`
	PendingRecovery time.Duration `mapstructure:"pending_recovery"`
}

type Consumer struct {
	Prefetch int `mapstructure:"prefetch"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
