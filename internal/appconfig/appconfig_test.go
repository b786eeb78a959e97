package appconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/EO-DataHub/eodhp-directory-services/internal/listing"
	"github.com/EO-DataHub/eodhp-directory-services/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_RendersEnvironment(t *testing.T) {
	t.Setenv("PULSAR_URL", "pulsar://broker:6650")

	path := writeConfig(t, `
host: localhost:8080
basePath: /v1
remote:
  url: http://remote.test/users
  timeout: 2s
pulsar:
  url: {{ .PULSAR_URL }}
  topicProducer: directory-changes
  topicConsumer: directory-edits
profile:
  name: Grace Hopper
  age: "85"
  phone: "555"
  email: grace@example.com
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/v1", cfg.BasePath)
	assert.Equal(t, "http://remote.test/users", cfg.Remote.URL)
	assert.Equal(t, 2*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, "pulsar://broker:6650", cfg.Pulsar.URL)
	assert.True(t, cfg.Pulsar.Enabled())
	assert.Equal(t, "directory-services", cfg.Pulsar.Subscription)
	assert.Equal(t, "Grace Hopper", cfg.Profile.Initial().Name)
	assert.Equal(t, profile.DefaultPhoto, cfg.Profile.DefaultPhoto)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfig_UnsetVariableDisablesPulsar(t *testing.T) {
	t.Setenv("PULSAR_URL", "")
	require.NoError(t, os.Unsetenv("PULSAR_URL"))

	path := writeConfig(t, `
host: {{ .HOST_UNSET_FOR_TEST }}
pulsar:
  url: {{ .PULSAR_URL }}
  topicProducer: directory-changes
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Empty(t, cfg.Pulsar.URL)
	assert.False(t, cfg.Pulsar.Enabled())
	assert.Empty(t, cfg.Host)
}

func TestLoadConfig_MissingPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "remote: [unterminated"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "/api", cfg.BasePath)
	assert.Equal(t, listing.DefaultURL, cfg.Remote.URL)
	assert.False(t, cfg.Pulsar.Enabled())
	assert.Equal(t, profile.DefaultProfile(), cfg.Profile.Initial())
}
