package config

type MetricsConfig struct {
	Address string `yaml:"addr"`
}

// Addr is where /metrics is served; empty disables the endpoint.
func (s *MetricsConfig) Addr() string {
	return s.Address
}
