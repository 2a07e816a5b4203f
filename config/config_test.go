package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolatedProvider(t *testing.T, yamlBody string) *FileConfigProvider {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if yamlBody != "" {
		require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o600))
	}
	return NewFileConfigProvider(path).WithEnvFile(filepath.Join(dir, ".env"))
}

func TestNewConfig(t *testing.T) {
	// Test with default values (without config file)
	config, err := NewConfigWithProvider(isolatedProvider(t, ""))
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "weather-dashboard", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10, config.Server.ReadTimeout)
	assert.Equal(t, 10, config.Server.WriteTimeout)
	assert.Equal(t, 120, config.Server.IdleTimeout)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "api.weatherstack.com", config.Weatherstack.Host)
	assert.Equal(t, "http", config.Weatherstack.Scheme)
	assert.Equal(t, 5, config.Weatherstack.ForecastDays)
	assert.Equal(t, 10000, config.Sessions.Max)
	assert.Equal(t, 120, config.Sessions.IdleTTL)
	assert.False(t, config.HasAccessKey())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WEATHERSTACK_ACCESS_KEY", "secret")
	t.Setenv("WEATHERSTACK_SCHEME", "https")

	config, err := NewConfigWithProvider(isolatedProvider(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "2.0.0", config.App.Version)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "secret", config.Weatherstack.AccessKey)
	assert.Equal(t, "https", config.Weatherstack.Scheme)
	assert.True(t, config.HasAccessKey())
	assert.True(t, config.IsProduction())
}

func TestConfigIgnoresUnprefixedEnvironment(t *testing.T) {
	// Names a container or CI runner commonly sets for unrelated reasons.
	t.Setenv("HOST", "localhost")
	t.Setenv("NAME", "some-container")
	t.Setenv("ACCESS_KEY", "unrelated-key")
	t.Setenv("ENV", "prod")
	t.Setenv("PORT", "1")
	t.Setenv("LEVEL", "bogus")
	t.Setenv("MAX", "-1")

	config, err := NewConfigWithProvider(isolatedProvider(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "api.weatherstack.com", config.Weatherstack.Host)
	assert.Equal(t, "weather-dashboard", config.App.Name)
	assert.Empty(t, config.Weatherstack.AccessKey)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, 10000, config.Sessions.Max)
}

func TestConfigSessionsFromEnvironment(t *testing.T) {
	t.Setenv("SESSIONS_MAX", "50")
	t.Setenv("SESSIONS_IDLE_TTL", "15")
	t.Setenv("WEATHERSTACK_FORECAST_DAYS", "7")

	config, err := NewConfigWithProvider(isolatedProvider(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 50, config.Sessions.Max)
	assert.Equal(t, 15, config.Sessions.IdleTTL)
	assert.Equal(t, 7, config.Weatherstack.ForecastDays)
}

func TestConfigFileThenEnvironment(t *testing.T) {
	provider := isolatedProvider(t, `
weatherstack:
  host: weatherstack.internal
  forecast_days: 3
log:
  level: warn
`)
	t.Setenv("LOG_LEVEL", "error")

	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "weatherstack.internal", config.Weatherstack.Host)
	assert.Equal(t, 3, config.Weatherstack.ForecastDays)
	// defaults survive for keys the file leaves out
	assert.Equal(t, "http", config.Weatherstack.Scheme)
	assert.Equal(t, "error", config.Log.Level)
}

func TestConfigDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("WEATHERSTACK_ACCESS_KEY=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("WEATHERSTACK_ACCESS_KEY") })

	provider := NewFileConfigProvider(filepath.Join(dir, "missing.yaml")).WithEnvFile(envPath)
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", config.Weatherstack.AccessKey)
}

func TestConfigBrokenYAML(t *testing.T) {
	_, err := NewConfigWithProvider(isolatedProvider(t, "app: [unterminated"))
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider(DefaultConfigPath)

	config := defaultConfig()
	assert.NoError(t, provider.Validate(config))

	invalid := defaultConfig()
	invalid.App.Name = ""
	err := provider.Validate(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.name is required")

	invalid = defaultConfig()
	invalid.Weatherstack.Scheme = "ftp"
	err = provider.Validate(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weatherstack.scheme must be one of [http https]")

	invalid = defaultConfig()
	invalid.Weatherstack.ForecastDays = 0
	err = provider.Validate(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weatherstack.forecast_days")
}

func TestConfigHelperMethods(t *testing.T) {
	config := &Config{App: AppConfig{Env: "development"}}

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())
	assert.False(t, config.HasAccessKey())

	config.Weatherstack.AccessKey = "  "
	assert.False(t, config.HasAccessKey())
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// Test loading from non-existent file (should not error)
	err := provider.loadFromFile(config)
	assert.NoError(t, err)
}

func TestNewConfigWithProvider(t *testing.T) {
	mockProvider := &MockConfigProvider{config: defaultConfig()}
	mockProvider.config.App.Name = "test-app"

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "test-app", config.App.Name)

	_, err = NewConfigWithProvider(&MockConfigProvider{err: errors.New("boom")})
	assert.EqualError(t, err, "boom")
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config *Config
	err    error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(config *Config) error {
	return nil
}
