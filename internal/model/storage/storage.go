package storage

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/config"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/logger"
)

// Store persists the whole expense collection.
type Store interface {
	Load(ctx context.Context) ([]expense.Expense, error)
	Save(ctx context.Context, exps []expense.Expense) error
}

type backendConfig interface {
	Backend() string
	JSONPath() string
	SQLitePath() string
}

func nopClose() error { return nil }

// New opens the configured backend. The returned func releases it.
func New(cfg backendConfig, pg postgresConfig) (Store, func() error, error) {
	logger.Info("opening storage", zap.String("backend", cfg.Backend()))

	switch cfg.Backend() {
	case config.BackendMemory:
		return NewInMemStorage(), nopClose, nil
	case config.BackendJSON:
		return NewJSONStorage(cfg.JSONPath()), nopClose, nil
	case config.BackendSQLite:
		s, err := NewSQLiteStorage(cfg.SQLitePath())
		if err != nil {
			return nil, nil, errors.Wrap(err, "open sqlite storage")
		}
		return s, s.Close, nil
	case config.BackendPostgres:
		s, err := NewPostgresStorage(pg)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open postgres storage")
		}
		return s, s.Close, nil
	}
	return nil, nil, errors.Errorf("unknown storage backend %q", cfg.Backend())
}
