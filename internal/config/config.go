package config

import (
	"os"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnvKey  = "LEDGER_CONFIG"
	defaultConfigFile = "data/config.yaml"
)

const (
	BackendMemory   = "memory"
	BackendJSON     = "json"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

var backends = []string{BackendMemory, BackendJSON, BackendPostgres, BackendSQLite}

type config struct {
	App       AppConfig       `yaml:"app"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type Service struct {
	config config
}

// New reads the file named by LEDGER_CONFIG, or data/config.yaml. A missing
// file yields the defaults.
func New() (*Service, error) {
	path := os.Getenv(configPathEnvKey)
	if path == "" {
		path = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		rawYAML = nil
	} else if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{config: defaults()}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if err = s.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			Currency: "₹",
			TimeZone: "UTC",
		},
		Storage: StorageConfig{
			BackendName: BackendJSON,
			JSON:        "data/expenses.json",
			SQLite:      "data/expenses.db",
		},
		Postgres: PostgresConfig{
			SSL: "disable",
		},
		Jaeger: JaegerConfig{
			Service: "expense-ledger",
			Param:   1,
		},
	}
}

func (s *Service) Validate() error {
	var err error

	st := s.config.Storage
	if !slices.Contains(backends, st.BackendName) {
		err = multierr.Append(err, errors.Errorf("unknown storage backend %q, must be one of %v", st.BackendName, backends))
	}
	if st.BackendName == BackendJSON && st.JSON == "" {
		err = multierr.Append(err, errors.New("storage.json-path is required for the json backend"))
	}
	if st.BackendName == BackendSQLite && st.SQLite == "" {
		err = multierr.Append(err, errors.New("storage.sqlite-path is required for the sqlite backend"))
	}
	if st.BackendName == BackendPostgres {
		if s.config.Postgres.Hostname == "" || s.config.Postgres.Db == "" {
			err = multierr.Append(err, errors.New("postgres.host and postgres.db are required for the postgres backend"))
		}
	}

	if _, locErr := s.config.App.location(); locErr != nil {
		err = multierr.Append(err, locErr)
	}
	return err
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}
