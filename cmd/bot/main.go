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
	"max.ks1230/expense-ledger/internal/model/ledger"
	"max.ks1230/expense-ledger/internal/model/messages"
	"max.ks1230/expense-ledger/internal/model/reports"
	"max.ks1230/expense-ledger/internal/model/storage"
	"max.ks1230/expense-ledger/internal/tracing"
)

type reportCache interface {
	GetReport(kind string) (string, error)
	CacheReport(kind string, report string) error
	InvalidateCache(kinds []string) error
}

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

	// .env is optional outside local development
	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
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

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init telegram client", zap.Error(err))
	}

	ledgerService := ledger.NewService(conf.App(), store, rc)
	generator := reports.NewGenerator(conf.App(), store, rc)

	var handler *messages.HandlerService
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer", zap.Error(err))
		}
		defer producer.Close()
		handler = messages.NewHandler(ledgerService, generator, producer)
	} else {
		handler = messages.NewHandler(ledgerService, generator, nil)
	}
	msgService := messages.NewService(client, handler)

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return metrics.Serve(ctx, conf.Metrics().Addr())
	})
	g.Go(func() error {
		client.ListenUpdates(ctx, msgService)
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error("bot stopped with error", zap.Error(err))
	}
}
