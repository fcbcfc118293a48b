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

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, SourceFixtures, cfg.DatasetSource)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	scale, err := cfg.WanScale()
	require.NoError(t, err)
	assert.Equal(t, "10000", scale.String())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("DATASET_SOURCE", "http")
	t.Setenv("DATASET_URL", "http://mockapi:8080")
	t.Setenv("TREND_WAN_SCALE", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, SourceHTTP, cfg.DatasetSource)
	assert.Equal(t, "http://mockapi:8080", cfg.DatasetURL)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"malformed int":      {"PAGE_SIZE": "ten"},
		"zero page size":     {"PAGE_SIZE": "0"},
		"unknown source":     {"DATASET_SOURCE": "s3"},
		"bad scale":          {"TREND_WAN_SCALE": "lots"},
		"non-positive scale": {"TREND_WAN_SCALE": "-5"},
	}

	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetCORSAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " http://localhost:5173 , ,https://console.example.com"}
	assert.Equal(t, []string{"http://localhost:5173", "https://console.example.com"}, cfg.GetCORSAllowedOrigins())

	assert.Nil(t, (&Config{}).GetCORSAllowedOrigins())
}
