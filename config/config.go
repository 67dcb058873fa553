package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Redis    Redis
	RabbitMQ RabbitMQ
	Log      Log
	Seed     bool
}

type Server struct {
	Port         string
	Mode         string
	AllowOrigins []string
}

type Database struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string `json:"-"`
	Name     string
	SSLMode  string
	DSN      string `json:"-"`
}

// Redis is optional. An empty Addr keeps attempt locking in-process.
type Redis struct {
	Addr     string
	Password string `json:"-"`
	DB       int
	LockTTL  time.Duration
}

// RabbitMQ is optional. An empty URI disables event publishing.
type RabbitMQ struct {
	URI      string `json:"-"`
	Exchange string
}

type Log struct {
	Level  string
	Format string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LOCK_TTL", "10s")
	viper.SetDefault("RABBITMQ_EXCHANGE", "quizwhiz.events")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")
	viper.SetDefault("SEED_DEMO_DATA", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("GIN_MODE")
	config.Server.AllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.DSN = viper.GetString("DATABASE_DSN")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.LockTTL = viper.GetDuration("LOCK_TTL")

	config.RabbitMQ.URI = viper.GetString("RABBITMQ_URI")
	config.RabbitMQ.Exchange = viper.GetString("RABBITMQ_EXCHANGE")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Format = viper.GetString("LOG_FORMAT")

	config.Seed = viper.GetBool("SEED_DEMO_DATA")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
