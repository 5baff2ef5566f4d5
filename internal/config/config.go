package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// CasualtyRings is the concentric ring count for casualty integration.
	CasualtyRings int

	// Catalog file overrides; empty means the embedded defaults.
	WeaponsFile string
	CitiesFile  string

	// Result publishing configuration.
	KafkaBrokers     []string
	KafkaResultTopic string
	PublishEnabled   bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	rings, err := parsePositiveInt("CASUALTY_RINGS", 20)
	if err != nil {
		return nil, err
	}

	publishEnabled := os.Getenv("PUBLISH_ENABLED") == "true"

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		CasualtyRings:   rings,

		WeaponsFile: os.Getenv("WEAPONS_FILE"),
		CitiesFile:  os.Getenv("CITIES_FILE"),

		KafkaBrokers:     parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaResultTopic: envOrDefault("KAFKA_RESULTS_TOPIC", "detonation-effects"),
		PublishEnabled:   publishEnabled,
	}

	if cfg.PublishEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("PUBLISH_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.PublishEnabled && cfg.KafkaResultTopic == "" {
		return nil, errors.New("PUBLISH_ENABLED is true but KAFKA_RESULTS_TOPIC is empty")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}

func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
