package config

type StorageConfig struct {
	BackendName string `yaml:"backend"`
	JSON        string `yaml:"json-path"`
	SQLite      string `yaml:"sqlite-path"`
}

func (s *StorageConfig) Backend() string {
	return s.BackendName
}

func (s *StorageConfig) JSONPath() string {
	return s.JSON
}

func (s *StorageConfig) SQLitePath() string {
	return s.SQLite
}
