package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"weather-dashboard/providers/openweathermap"
)

// Weekday grouping modes
const (
	WeekdaysLocal = "local"
	WeekdaysCity  = "city"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Provider  ProviderConfig
	Dashboard DashboardConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// ProviderConfig holds OpenWeatherMap settings
type ProviderConfig struct {
	APIKey          string
	BaseURL         string
	Timeout         time.Duration
	IconURLTemplate string
}

// DashboardConfig holds dashboard behaviour settings
type DashboardConfig struct {
	DefaultCity     string
	Weekdays        string // local or city
	RefreshInterval time.Duration
}

// Load reads configuration from a .env file, an optional YAML config file and
// the environment. An empty configFile searches the default locations.
func Load(configFile string) (*Config, error) {
	// .env is optional; variables already set in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.weather-dashboard")
	}

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("provider.baseURL", openweathermap.DefaultBaseURL)
	v.SetDefault("provider.timeout", 10*time.Second)
	v.SetDefault("provider.iconURLTemplate", openweathermap.DefaultIconURLTemplate)
	v.SetDefault("dashboard.defaultCity", "Mumbai")
	v.SetDefault("dashboard.weekdays", WeekdaysLocal)
	v.SetDefault("dashboard.refreshInterval", time.Duration(0))

	// Read from environment variables, e.g. WEATHER_DASHBOARD_SERVER_PORT
	v.SetEnvPrefix("WEATHER_DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("provider.apiKey", "WEATHER_DASHBOARD_PROVIDER_APIKEY", "OPENWEATHERMAP_API_KEY", "WEATHER_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key: %w", err)
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required settings
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Provider.APIKey) == "" {
		errs = append(errs, errors.New("provider API key is required (set OPENWEATHERMAP_API_KEY)"))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid server port %d", c.Server.Port))
	}
	switch c.Dashboard.Weekdays {
	case WeekdaysLocal, WeekdaysCity:
	default:
		errs = append(errs, fmt.Errorf("dashboard.weekdays must be %q or %q, got %q", WeekdaysLocal, WeekdaysCity, c.Dashboard.Weekdays))
	}
	if strings.TrimSpace(c.Dashboard.DefaultCity) == "" {
		errs = append(errs, errors.New("dashboard.defaultCity must not be empty"))
	}
	return errors.Join(errs...)
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates the root zerolog logger
func (c *Config) NewLogger() zerolog.Logger {
	return c.newLogger(os.Stdout)
}

func (c *Config) newLogger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if strings.ToLower(c.Log.Format) != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
