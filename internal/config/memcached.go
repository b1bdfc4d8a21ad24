package config

type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts"`
	KeyPrefix string   `yaml:"key-prefix"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

func (s *MemcachedConfig) Prefix() string {
	if s.KeyPrefix == "" {
		return "ledger"
	}
	return s.KeyPrefix
}

func (s *MemcachedConfig) Enabled() bool {
	return len(s.NodeHosts) > 0
}
