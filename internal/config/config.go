package config

import (
	"fmt"

	"github.com/Netflix/go-env"
)

type Config struct {
	DatabaseDSN string `env:"DATABASE_DSN,required=true"`
	RabbitMQURL string `env:"RABBITMQ_URL,required=true"`
	RedisURL    string `env:"REDIS_URL,required=true"`

	AuthSvcURL             string `env:"AUTH_SVC_URL,required=true"`
	AccountSvcAuthURL      string `env:"ACCOUNT_SVC_AUTH_URL,required=true"`
	AccountSvcClientID     string `env:"ACCOUNT_SVC_CLIENT_ID,required=true"`
	AccountSvcClientSecret string `env:"ACCOUNT_SVC_CLIENT_SECRET,required=true"`
	ReportSvcURL           string `env:"REPORT_SVC_URL,required=true"`

	// SecondNoticeDelay is the escalation delay window in business days
	// between the first email notice and the follow-up letter.
	SecondNoticeDelay int `env:"SECOND_NOTICE_DELAY,default=5"`

	BCMailSFTPHost             string `env:"BCMAIL_SFTP_HOST"`
	BCMailSFTPPort             int    `env:"BCMAIL_SFTP_PORT,default=22"`
	BCMailSFTPUsername         string `env:"BCMAIL_SFTP_USERNAME"`
	BCMailSFTPPassword         string `env:"BCMAIL_SFTP_PASSWORD"`
	BCMailSFTPPrivateKey       string `env:"BCMAIL_SFTP_PRIVATE_KEY"`
	BCMailSFTPStorageDirectory string `env:"BCMAIL_SFTP_STORAGE_DIRECTORY,default=/upload"`
	DisableBCMailSFTP          bool   `env:"DISABLE_BCMAIL_SFTP,default=true"`

	AuthRateLimitPerSec int    `env:"AUTH_RATE_LIMIT_PER_SEC,default=20"`
	MetricsPort         int    `env:"METRICS_PORT,default=9090"`
	LogLevel            string `env:"LOG_LEVEL,default=info"`
}

func Load() (*Config, error) {
	var cfg Config
	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
