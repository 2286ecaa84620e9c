package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/KehindeA533/openai-backend/core/logger"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type (
	Config struct {
		Server    ServerConfig
		APIKeys   []string
		OpenAI    OpenAIConfig
		Weather   WeatherConfig
		AWS       AWSConfig
		Google    GoogleConfig
		RateLimit RateLimitConfig
		Redis     RedisConfig
		Postgres  PostgresConfig
		Archive   ArchiveConfig
	}

	ServerConfig struct {
		Port           string
		Env            string
		AllowedOrigins []string
	}

	OpenAIConfig struct {
		APIKey  string
		BaseURL string
		Model   string
		Voice   string
	}

	WeatherConfig struct {
		APIKey  string
		BaseURL string
	}

	AWSConfig struct {
		Region          string
		AccessKeyID     string
		SecretAccessKey string
		Bucket          string
	}

	// GoogleConfig carries OAuth material for the calendar provider. JSON
	// blobs from the environment win over the file paths, mirroring how the
	// service is deployed (env vars in production, files locally).
	GoogleConfig struct {
		CredentialsJSON string
		TokenJSON       string
		CredentialsPath string
		TokenPath       string
	}

	RateLimitConfig struct {
		PerMinute int
		Burst     int
	}

	RedisConfig struct {
		Addr     string
		Password string
		DB       int
	}

	PostgresConfig struct {
		Host     string
		Port     int
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	ArchiveConfig struct {
		Prefix string
	}
)

// Enabled reports whether a Postgres-backed event store was configured.
func (p PostgresConfig) Enabled() bool {
	return p.Host != ""
}

var instance *Config

// Load reads .env (when present), binds environment variables and validates
// required keys. The process must not start without them.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, relying on process environment")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3001")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("OPENAI_REALTIME_MODEL", "gpt-4o-realtime-preview-2024-12-17")
	v.SetDefault("OPENAI_REALTIME_VOICE", "ash")
	v.SetDefault("WEATHER_BASE_URL", "http://api.weatherapi.com/v1")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("RATE_LIMIT_MAX", 5)
	v.SetDefault("RATE_LIMIT_BURST", 5)
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("GOOGLE_CREDENTIALS_PATH", "credentials.json")
	v.SetDefault("GOOGLE_TOKEN_PATH", "token.json")
	v.SetDefault("ARCHIVE_PREFIX", "transcripts/")

	required := []string{"API_KEYS", "OPENAI_API_KEY"}
	var missing []string
	for _, key := range required {
		if v.GetString(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			Env:            v.GetString("APP_ENV"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		APIKeys: splitList(v.GetString("API_KEYS")),
		OpenAI: OpenAIConfig{
			APIKey:  v.GetString("OPENAI_API_KEY"),
			BaseURL: v.GetString("OPENAI_BASE_URL"),
			Model:   v.GetString("OPENAI_REALTIME_MODEL"),
			Voice:   v.GetString("OPENAI_REALTIME_VOICE"),
		},
		Weather: WeatherConfig{
			APIKey:  v.GetString("WEATHER_API_KEY"),
			BaseURL: v.GetString("WEATHER_BASE_URL"),
		},
		AWS: AWSConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Bucket:          v.GetString("AWS_S3_BUCKET"),
		},
		Google: GoogleConfig{
			CredentialsJSON: v.GetString("GOOGLE_CREDENTIALS"),
			TokenJSON:       v.GetString("GOOGLE_TOKEN"),
			CredentialsPath: v.GetString("GOOGLE_CREDENTIALS_PATH"),
			TokenPath:       v.GetString("GOOGLE_TOKEN_PATH"),
		},
		RateLimit: RateLimitConfig{
			PerMinute: v.GetInt("RATE_LIMIT_MAX"),
			Burst:     v.GetInt("RATE_LIMIT_BURST"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Postgres: PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USERNAME"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
		},
		Archive: ArchiveConfig{
			Prefix: v.GetString("ARCHIVE_PREFIX"),
		},
	}

	instance = cfg
	return cfg, nil
}

func Get() *Config {
	return instance
}

func GetSafe() (*Config, bool) {
	if instance == nil {
		return nil, false
	}
	return instance, true
}

// IsProduction reports whether the server runs in production mode. Stack
// traces in error responses are suppressed when it does.
func (c *Config) IsProduction() bool {
	return c.Server.Env == EnvProduction
}

func (c *Config) IsTest() bool {
	return c.Server.Env == EnvTest
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
