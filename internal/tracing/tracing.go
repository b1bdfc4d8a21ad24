package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/logger"
)

type config interface {
	Enabled() bool
	ServiceName() string
	AgentHostPort() string
	SamplerParam() float64
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs the global tracer. With tracing disabled the default no-op
// tracer stays in place.
func Init(cfg config) (io.Closer, error) {
	if !cfg.Enabled() {
		logger.Info("tracing disabled")
		return nopCloser{}, nil
	}

	jcfg := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: cfg.SamplerParam(),
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.AgentHostPort(),
		},
	}

	tracer, closer, err := jcfg.NewTracer(jaegercfg.Logger(jaeger.NullLogger))
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)
	logger.Info("tracing enabled", zap.String("agent", cfg.AgentHostPort()))
	return closer, nil
}
