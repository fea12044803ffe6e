package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/geoquery-cli/internal/geo"
)

// Config holds the full application configuration.
type Config struct {
	API  APIConfig  `yaml:"api" mapstructure:"api"`
	Map  MapConfig  `yaml:"map" mapstructure:"map"`
	Mock MockConfig `yaml:"mock" mapstructure:"mock"`
	Log  LogConfig  `yaml:"log" mapstructure:"log"`
}

// APIConfig configures the query service client.
type APIConfig struct {
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RatePerSec  float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
}

// Timeout returns the request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// MapConfig configures the default map viewport.
type MapConfig struct {
	CenterLat float64 `yaml:"center_lat" mapstructure:"center_lat"`
	CenterLng float64 `yaml:"center_lng" mapstructure:"center_lng"`
	Zoom      int     `yaml:"zoom" mapstructure:"zoom"`
}

// Center returns the default map center.
func (c MapConfig) Center() geo.LatLng {
	return geo.LatLng{Lat: c.CenterLat, Lng: c.CenterLng}
}

// MockConfig configures the local stub server.
type MockConfig struct {
	Port     int    `yaml:"port" mapstructure:"port"`
	Fixtures string `yaml:"fixtures" mapstructure:"fixtures"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GEOQUERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout_secs", 30)
	v.SetDefault("api.rate_per_sec", 0)
	v.SetDefault("map.center_lat", 32.0853)
	v.SetDefault("map.center_lng", 34.7818)
	v.SetDefault("map.zoom", 12)
	v.SetDefault("mock.port", 8000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
