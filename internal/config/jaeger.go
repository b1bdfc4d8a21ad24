package config

type JaegerConfig struct {
	Service string  `yaml:"service-name"`
	Agent   string  `yaml:"agent-host-port"`
	Param   float64 `yaml:"sampler-param"`
}

func (s *JaegerConfig) ServiceName() string {
	return s.Service
}

func (s *JaegerConfig) AgentHostPort() string {
	return s.Agent
}

func (s *JaegerConfig) SamplerParam() float64 {
	return s.Param
}

func (s *JaegerConfig) Enabled() bool {
	return s.Agent != ""
}
