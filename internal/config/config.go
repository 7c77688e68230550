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

	// EngineWorkers bounds per-analysis cell parallelism; zero means one
	// worker per CPU.
	EngineWorkers int

	// Kafka renderer sink configuration.
	KafkaBrokers    []string
	RendererTopic   string
	RendererEnabled bool

	// External dimension provider configuration.
	ContextAPIURL       string
	ContextAPITimeout   time.Duration
	ContextAPICacheSize int
	ContextAPIEnabled   bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	apiTimeout, err := parseDuration("CONTEXT_API_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	workers, err := parseNonNegativeInt("ENGINE_WORKERS", 0)
	if err != nil {
		return nil, err
	}

	cacheSize, err := parsePositiveInt("CONTEXT_API_CACHE_SIZE", 1000)
	if err != nil {
		return nil, err
	}

	brokers := parseBrokers(os.Getenv("KAFKA_BROKERS"))
	rendererEnabled := len(brokers) > 0
	if v := os.Getenv("RENDERER_ENABLED"); v != "" {
		rendererEnabled = v == "true"
	}

	apiURL := os.Getenv("CONTEXT_API_URL")
	apiEnabled := apiURL != ""
	if v := os.Getenv("CONTEXT_API_ENABLED"); v != "" {
		apiEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		EngineWorkers:   workers,

		KafkaBrokers:    brokers,
		RendererTopic:   envOrDefault("RENDERER_TOPIC", "grid-analyses"),
		RendererEnabled: rendererEnabled,

		ContextAPIURL:       apiURL,
		ContextAPITimeout:   apiTimeout,
		ContextAPICacheSize: cacheSize,
		ContextAPIEnabled:   apiEnabled,
	}

	if cfg.RendererEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("RENDERER_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.RendererEnabled && cfg.RendererTopic == "" {
		return nil, errors.New("RENDERER_TOPIC is required when the renderer is enabled")
	}
	if cfg.ContextAPIEnabled && cfg.ContextAPIURL == "" {
		return nil, errors.New("CONTEXT_API_ENABLED is true but CONTEXT_API_URL is not set")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
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

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseNonNegativeInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}
