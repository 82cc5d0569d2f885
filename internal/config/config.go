package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Admin    AdminConfig    `yaml:"admin"    validate:"required"`
	Locale   LocaleConfig   `yaml:"locale"   validate:"required"`
	Booking  BookingConfig  `yaml:"booking"  validate:"required"`
	Session  SessionConfig  `yaml:"session"  validate:"required"`
	Sweeper  SweeperConfig  `yaml:"sweeper"  validate:"required"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// AdminConfig holds the single back-office credential pair. The
// defaults match the demo pair; this is a placeholder gate, not real
// authentication.
type AdminConfig struct {
	Username string `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin" validate:"required"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD" env-default:"admin" validate:"required"`
}

type LocaleConfig struct {
	Default string `yaml:"default" env:"LOCALE_DEFAULT" env-default:"zh" validate:"required,oneof=zh en"`
}

type BookingConfig struct {
	// ConfirmationDisplay is how long a submitted booking stays in the
	// confirmation state before the flow returns to idle.
	ConfirmationDisplay time.Duration `yaml:"confirmation_display" env:"BOOKING_CONFIRMATION_DISPLAY" env-default:"2s"  validate:"gt=0"`
	// FlowTTL is the idle time after which an abandoned flow is purged.
	FlowTTL time.Duration `yaml:"flow_ttl" env:"BOOKING_FLOW_TTL" env-default:"30m" validate:"gt=0"`
}

type SessionConfig struct {
	TTL        time.Duration `yaml:"ttl"         env:"SESSION_TTL"         env-default:"30m"   validate:"gt=0"`
	LoginDelay time.Duration `yaml:"login_delay" env:"SESSION_LOGIN_DELAY" env-default:"800ms" validate:"gte=0"`
}

type SweeperConfig struct {
	Interval time.Duration `yaml:"interval" env:"SWEEPER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
