package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Zero(t, cfg.EngineWorkers)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "grid-analyses", cfg.RendererTopic)
	assert.False(t, cfg.RendererEnabled)
	assert.Empty(t, cfg.ContextAPIURL)
	assert.Equal(t, 5*time.Second, cfg.ContextAPITimeout)
	assert.Equal(t, 1000, cfg.ContextAPICacheSize)
	assert.False(t, cfg.ContextAPIEnabled)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("ENGINE_WORKERS", "8")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("RENDERER_TOPIC", "custom-analyses")
	t.Setenv("CONTEXT_API_URL", "http://provider.internal:7000")
	t.Setenv("CONTEXT_API_TIMEOUT", "10s")
	t.Setenv("CONTEXT_API_CACHE_SIZE", "500")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 8, cfg.EngineWorkers)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-analyses", cfg.RendererTopic)
	assert.True(t, cfg.RendererEnabled)
	assert.Equal(t, "http://provider.internal:7000", cfg.ContextAPIURL)
	assert.Equal(t, 10*time.Second, cfg.ContextAPITimeout)
	assert.Equal(t, 500, cfg.ContextAPICacheSize)
	assert.True(t, cfg.ContextAPIEnabled)
}

func TestLoad_BrokersImplyRenderer(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.RendererEnabled)
}

func TestLoad_RendererExplicitlyDisabled(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("RENDERER_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.RendererEnabled)
}

func TestLoad_RendererEnabledWithoutBrokers(t *testing.T) {
	t.Setenv("RENDERER_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}

func TestLoad_ContextAPIEnabledWithoutURL(t *testing.T) {
	t.Setenv("CONTEXT_API_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONTEXT_API_URL")
}

func TestLoad_ContextAPIExplicitlyDisabled(t *testing.T) {
	t.Setenv("CONTEXT_API_URL", "http://provider.internal:7000")
	t.Setenv("CONTEXT_API_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.ContextAPIEnabled)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidEngineWorkers(t *testing.T) {
	t.Setenv("ENGINE_WORKERS", "-2")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENGINE_WORKERS")
}

func TestLoad_InvalidCacheSize(t *testing.T) {
	t.Setenv("CONTEXT_API_CACHE_SIZE", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONTEXT_API_CACHE_SIZE")
}

func TestLoad_BrokerWhitespaceTrimmed(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", " broker1:9092 , broker2:9092 ")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
}
