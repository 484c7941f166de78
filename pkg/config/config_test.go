package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	App    App    `mapstructure:"app"`
	Logger Logger `mapstructure:"logger"`
	API    API    `mapstructure:"api"`
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  name: stock-predictor
  time_zone: America/New_York
logger:
  level: debug
  encoding: console
api:
  port: 8080
`), 0o600))

	t.Setenv("API_PORT", "9090")

	var cfg testConfig
	require.NoError(t, Load(path, &cfg))
	assert.Equal(t, "stock-predictor", cfg.App.Name)
	assert.Equal(t, "America/New_York", cfg.App.TimeZone)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 9090, cfg.API.Port)
}
