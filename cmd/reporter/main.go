package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/expense-ledger/internal/clients/cache"
	"max.ks1230/expense-ledger/internal/clients/kafka"
	"max.ks1230/expense-ledger/internal/clients/tg"
	"max.ks1230/expense-ledger/internal/config"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/metrics"
	"max.ks1230/expense-ledger/internal/model/reports"
	"max.ks1230/expense-ledger/internal/model/storage"
	"max.ks1230/expense-ledger/internal/tracing"
)

type reportCache interface {
	GetReport(kind string) (string, error)
	CacheReport(kind string, report string) error
}

func main() {
	defer logger.Sync()
	logger.Info("Reporter init - start")

	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}
	if !conf.Kafka().Enabled() {
		logger.Fatal("kafka.brokers and kafka.reports-topic are required for the reporter")
	}

	closer, err := tracing.Init(conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	store, closeStore, err := storage.New(conf.Storage(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage", zap.Error(err))
	}
	defer closeStore()

	var rc reportCache
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Fatal("failed to init memcached", zap.Error(err))
		}
		rc = mc
	}
	generator := reports.NewGenerator(conf.App(), store, rc)

	sender, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init telegram client", zap.Error(err))
	}

	consumer, err := kafka.NewConsumer(conf.Kafka(), generator, sender)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return metrics.Serve(ctx, conf.Metrics().Addr())
	})
	g.Go(func() error {
		return consumer.StartConsuming(ctx)
	})

	if err = g.Wait(); err != nil {
		logger.Error("reporter stopped with error", zap.Error(err))
	}
}
