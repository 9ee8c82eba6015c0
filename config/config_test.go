package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"petfeeder/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
env:
  serviceName: feeder
feeder:
  registrationMode: open
  offlineThreshold: 5m
pushover:
  appToken: from-file
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yaml), 0o600))
	t.Chdir(dir)
	t.Setenv("FEEDER_OFFLINETHRESHOLD", "90s")
	t.Setenv("PUSHOVER_APPTOKEN", "from-env")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "feeder", cfg.Env.ServiceName)
	assert.Equal(t, 90*time.Second, cfg.Feeder.OfflineThreshold)
	assert.Equal(t, "from-env", cfg.Pushover.AppToken)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent", "config")

	assert.ErrorContains(t, err, "absent.yaml not found")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.applyDefaults()

		return cfg
	}

	require.NoError(t, valid().validate())

	t.Run("unknown registration mode", func(t *testing.T) {
		cfg := valid()
		cfg.Feeder.RegistrationMode = "closed"

		assert.ErrorContains(t, cfg.validate(), "registrationMode")
	})

	t.Run("unknown timezone", func(t *testing.T) {
		cfg := valid()
		cfg.Feeder.DefaultTimezone = "Mars/Olympus"

		assert.ErrorContains(t, cfg.validate(), "defaultTimezone")
	})

	t.Run("production needs secrets", func(t *testing.T) {
		cfg := valid()
		cfg.Env.Env = constants.EnvProduction
		assert.Error(t, cfg.validate())

		cfg.SecretKey.Access = "a"
		cfg.SecretKey.Device = "d"
		assert.NoError(t, cfg.validate())
	})
}

func TestReplicasFromEnv(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		"POSTGRES_REPLICAS_3_HOST":     "skipped",
		"POSTGRES_REPLICAS_3_PORT":     "5434",
	}

	replicas := replicasFromEnv(func(k string) string { return env[k] })

	require.Len(t, replicas, 2)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "5433", replicas[1].Port)
}
