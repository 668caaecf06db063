// Package config - runtime configuration of the archive server
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	jsonhandler "github.com/apex/log/handlers/json"
	texthandler "github.com/apex/log/handlers/text"
	gormlogger "gorm.io/gorm/logger"
)

// Config runtime configuration of the archive server. All values come from
// environment variables with sensible defaults.
type Config struct {
	// Port TCP port the HTTP server listens on
	Port int

	// DBFile path of the SQLite database file
	DBFile string
	// SQLLogLevel GORM SQL log level
	SQLLogLevel gormlogger.LogLevel

	// LogLevel application log level
	LogLevel log.Level
	// LogFormat application log format, "json" or "text"
	LogFormat string

	// SeedSampleData populate a fresh archive with sample paperwork on startup
	SeedSampleData bool

	// HTTPReadTimeout maximum duration for reading an entire request
	HTTPReadTimeout time.Duration
	// HTTPWriteTimeout maximum duration before timing out response writes
	HTTPWriteTimeout time.Duration
	// HTTPIdleTimeout maximum time to wait for the next request on a kept-alive connection
	HTTPIdleTimeout time.Duration
	// ShutdownTimeout grace period for in-flight requests on shutdown
	ShutdownTimeout time.Duration
}

/*
Load read the server configuration from the environment

	@returns the parsed configuration
*/
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnvInt("LARDER_PORT", 8080),
		DBFile:           getEnvDefault("LARDER_DB_FILE", "/var/lib/larder/archive.db"),
		LogFormat:        getEnvDefault("LARDER_LOG_FORMAT", "json"),
		SeedSampleData:   getEnvBool("LARDER_SEED_SAMPLE_DATA", false),
		HTTPReadTimeout:  getEnvDuration("LARDER_HTTP_READ_TIMEOUT", 30*time.Second),
		HTTPWriteTimeout: getEnvDuration("LARDER_HTTP_WRITE_TIMEOUT", 60*time.Second),
		HTTPIdleTimeout:  getEnvDuration("LARDER_HTTP_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout:  getEnvDuration("LARDER_SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	logLevel, err := parseLogLevel(getEnvDefault("LARDER_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = logLevel

	sqlLogLevel, err := parseSQLLogLevel(getEnvDefault("LARDER_SQL_LOG_LEVEL", "error"))
	if err != nil {
		return Config{}, err
	}
	cfg.SQLLogLevel = sqlLogLevel

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return Config{}, fmt.Errorf("unsupported log format '%s'", cfg.LogFormat)
	}

	return cfg, nil
}

// SetupLogger apply the configured log level and format to the process logger
func (c Config) SetupLogger() {
	log.SetLevel(c.LogLevel)
	switch c.LogFormat {
	case "text":
		log.SetHandler(texthandler.New(os.Stderr))
	default:
		log.SetHandler(jsonhandler.New(os.Stderr))
	}
}

func parseLogLevel(raw string) (log.Level, error) {
	level, err := log.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("unsupported log level '%s' [%w]", raw, err)
	}
	return level, nil
}

func parseSQLLogLevel(raw string) (gormlogger.LogLevel, error) {
	switch strings.ToLower(raw) {
	case "silent":
		return gormlogger.Silent, nil
	case "error":
		return gormlogger.Error, nil
	case "warn":
		return gormlogger.Warn, nil
	case "info":
		return gormlogger.Info, nil
	default:
		return gormlogger.Error, fmt.Errorf("unsupported SQL log level '%s'", raw)
	}
}

func getEnvDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.WithField("var", key).Warn("Ignoring unparsable integer environment variable")
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
		log.WithField("var", key).Warn("Ignoring unparsable boolean environment variable")
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
		log.WithField("var", key).Warn("Ignoring unparsable duration environment variable")
	}
	return fallback
}
