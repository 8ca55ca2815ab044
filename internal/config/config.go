package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"

	defaultHealthPort = 8080
)

// Config holds all configuration for the application
type Config struct {
	Discord  DiscordConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Logging  LoggingConfig
	Cache    CacheConfig
	Tracing  TracingConfig

	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"`
	HealthPort  int    `env:"HEALTH_PORT"`
	// Port is the platform-provided port, used when HEALTH_PORT is unset
	Port int `env:"PORT"`
	// RollSeed makes rolls repeatable when non-zero
	RollSeed int64 `env:"ROLL_SEED"`
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token       string `env:"DISCORD_TOKEN"`
	AppID       string `env:"DISCORD_APP_ID"`
	AdminServer string `env:"ADMIN_SERVER"`
	GuildID     string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
	OwnerID     string `env:"OWNER_ID"`
	MaxGuilds   int    `env:"MAX_GUILDS" envDefault:"100"`
}

// DatabaseConfig picks the character store
type DatabaseConfig struct {
	URL  string `env:"DATABASE_URL"`
	Path string `env:"DATABASE_PATH" envDefault:"herald.db"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// CacheConfig sizes the character cache
type CacheConfig struct {
	MaxSize int           `env:"CACHE_MAX_SIZE" envDefault:"100"`
	TTL     time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// TracingConfig enables OTLP span export when an endpoint is set
type TracingConfig struct {
	Endpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Enabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	// Missing .env is fine outside local development
	_ = godotenv.Load()

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse reads the environment without validating it
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, herr.Wrap(err, "parse env")
	}

	if cfg.HealthPort == 0 {
		cfg.HealthPort = defaultHealthPort
		if cfg.Port != 0 {
			cfg.HealthPort = cfg.Port
		}
	}

	return cfg, nil
}

// Validate collects every configuration problem into one error
func (c *Config) Validate() error {
	vb := herr.NewValidationBuilder()

	if c.Discord.Token == "" {
		vb.RequiredField("DISCORD_TOKEN")
	}

	herr.ValidateEnum("ENVIRONMENT", c.Environment,
		[]string{EnvironmentDevelopment, EnvironmentProduction}, vb)
	if c.IsProduction() && c.Database.URL == "" {
		vb.Field("DATABASE_URL", "is required in production")
	}

	herr.ValidateEnum("LOG_LEVEL", c.Logging.Level, []string{"debug", "info", "warn", "error"}, vb)
	herr.ValidateEnum("LOG_FORMAT", c.Logging.Format, []string{"json", "console"}, vb)

	if c.Cache.MaxSize <= 0 {
		vb.Field("CACHE_MAX_SIZE", "must be greater than 0")
	}
	if c.HealthPort <= 0 || c.HealthPort > 65535 {
		vb.Field("HEALTH_PORT", "must be a valid port")
	}

	return vb.Build()
}

// IsProduction reports whether the bot runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// CommandGuildID is the guild slash commands register to, empty for global.
// ADMIN_SERVER wins over DISCORD_GUILD_ID.
func (c *Config) CommandGuildID() string {
	if c.Discord.AdminServer != "" {
		return c.Discord.AdminServer
	}
	return c.Discord.GuildID
}
