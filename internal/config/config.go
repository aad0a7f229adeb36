package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env"` // current application environment (local, dev, production)
	TelegramAPIToken string    `mapstructure:"-"`   // Telegram API token loaded from environment
	DB               DB        `mapstructure:"database"`
	Redis            Redis     `mapstructure:"redis"`
	Providers        Providers `mapstructure:"providers"`
	HTTP             HTTP      `mapstructure:"http"`
	Alerts           Alerts    `mapstructure:"alerts"`
	Player           Player    `mapstructure:"player"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
	Migrate         bool          `mapstructure:"migrate"`           // apply embedded migrations on startup
}

// Redis configures the provider response cache.
type Redis struct {
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"-"`
	DB        int           `mapstructure:"db"`
	PrayerTTL time.Duration `mapstructure:"prayer_ttl"`
	QuranTTL  time.Duration `mapstructure:"quran_ttl"`
}

// Providers lists the external REST APIs and the audio stream templates.
type Providers struct {
	PrayerBaseURL string        `mapstructure:"prayer_base_url"`
	QuranBaseURL  string        `mapstructure:"quran_base_url"`
	HadithBaseURL string        `mapstructure:"hadith_base_url"`
	SurahAudio    string        `mapstructure:"surah_audio"` // {chapter} placeholder
	AyahAudio     string        `mapstructure:"ayah_audio"`  // {ayah} placeholder
	Timeout       time.Duration `mapstructure:"timeout"`
}

// HTTP configures the JSON API for the web client.
type HTTP struct {
	Addr         string   `mapstructure:"addr"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Alerts configures prayer-time notifications.
type Alerts struct {
	Schedule      string `mapstructure:"schedule"` // cron spec
	BatchSize     int    `mapstructure:"batch_size"`
	MaxConcurrent int    `mapstructure:"max_concurrent"`
}

// Player bounds the web playback sessions.
type Player struct {
	MaxSessions   int           `mapstructure:"max_sessions"`
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`   // sessions unused this long are closed
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Pick up a local .env file if there is one; real environment wins.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("redis_password", "REDIS_PASSWORD")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.Redis.Password = v.GetString("redis_password")

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")

	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("database.migrate", true)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prayer_ttl", "6h")
	v.SetDefault("redis.quran_ttl", "168h")

	v.SetDefault("providers.prayer_base_url", "https://api.aladhan.com/v1")
	v.SetDefault("providers.quran_base_url", "https://api.alquran.cloud/v1")
	v.SetDefault("providers.hadith_base_url", "https://cdn.jsdelivr.net/gh/fawazahmed0/hadith-api@1/editions")
	v.SetDefault("providers.surah_audio", "https://cdn.islamic.network/quran/audio-surah/128/ar.alafasy/{chapter}.mp3")
	v.SetDefault("providers.ayah_audio", "https://cdn.islamic.network/quran/audio/128/ar.alafasy/{ayah}.mp3")
	v.SetDefault("providers.timeout", "10s")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.allow_origins", []string{"*"})

	v.SetDefault("alerts.schedule", "* * * * *")
	v.SetDefault("alerts.batch_size", 100)
	v.SetDefault("alerts.max_concurrent", 10)

	v.SetDefault("player.max_sessions", 10000)
	v.SetDefault("player.idle_timeout", "30m")
	v.SetDefault("player.sweep_interval", "1m")
}
