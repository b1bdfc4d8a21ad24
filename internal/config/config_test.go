package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnParse_ShouldApplyDefaults(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, s.Storage().Backend())
	assert.Equal(t, "data/expenses.json", s.Storage().JSONPath())
	assert.Equal(t, "₹", s.App().CurrencySymbol())
	assert.Equal(t, time.UTC, s.App().Location())
	assert.False(t, s.Kafka().Enabled())
	assert.False(t, s.Memcached().Enabled())
	assert.False(t, s.Jaeger().Enabled())
	assert.Equal(t, "ledger", s.Memcached().Prefix())
}

func Test_OnParse_ShouldReadSections(t *testing.T) {
	raw := []byte(`
app:
  currency-symbol: "$"
  timezone: Europe/Moscow
storage:
  backend: postgres
postgres:
  host: localhost
  db: ledger
  username: app
  password: secret
kafka:
  brokers: ["localhost:9092"]
  consumer-group: reporter
  reports-topic: report-requests
memcached:
  hosts: ["localhost:11211"]
metrics:
  addr: ":9100"
`)
	s, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "$", s.App().CurrencySymbol())
	assert.Equal(t, "Europe/Moscow", s.App().Location().String())
	assert.Equal(t, BackendPostgres, s.Storage().Backend())
	assert.Equal(t, "ledger", s.Postgres().Database())
	assert.Equal(t, "disable", s.Postgres().SSLMode())
	assert.True(t, s.Kafka().Enabled())
	assert.Equal(t, "reporter", s.Kafka().ConsumerGroup())
	assert.Equal(t, []string{"localhost:11211"}, s.Memcached().Hosts())
	assert.Equal(t, ":9100", s.Metrics().Addr())
}

func Test_OnParse_ShouldRejectInvalidConfig(t *testing.T) {
	_, err := Parse([]byte("storage:\n  backend: redis\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("storage:\n  backend: postgres\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("app:\n  timezone: Mars/Olympus\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("storage: [broken"))
	assert.Error(t, err)
}

func Test_OnNew_ShouldReadFileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: memory\n"), 0o600))
	t.Setenv(configPathEnvKey, path)

	s, err := New()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, s.Storage().Backend())
}

func Test_OnNew_ShouldFallBackToDefaultsWithoutFile(t *testing.T) {
	t.Setenv(configPathEnvKey, filepath.Join(t.TempDir(), "missing.yaml"))

	s, err := New()
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, s.Storage().Backend())
}
