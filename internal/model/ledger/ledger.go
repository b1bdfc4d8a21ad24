package ledger

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/now"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/reports"
)

var ErrNotFound = errors.New("expense not found")

type store interface {
	Load(ctx context.Context) ([]expense.Expense, error)
	Save(ctx context.Context, exps []expense.Expense) error
}

type reportCache interface {
	InvalidateCache(kinds []string) error
}

type config interface {
	Location() *time.Location
}

// Service owns the record lifecycle. Every mutation is a full
// load-modify-save cycle serialized by mu.
type Service struct {
	mu    sync.Mutex
	store store
	cache reportCache
	loc   *time.Location
	clock func() time.Time
}

// NewService builds the service; cache may be nil.
func NewService(config config, store store, cache reportCache) *Service {
	return &Service{
		store: store,
		cache: cache,
		loc:   config.Location(),
		clock: time.Now,
	}
}

// NewExpense is the input of Add. A zero Date means today.
type NewExpense struct {
	Amount   decimal.Decimal
	Date     expense.Date
	Category string
	Note     string
}

// Changes is the input of Update; nil fields are left as they are.
type Changes struct {
	Amount   *decimal.Decimal
	Date     *expense.Date
	Category *string
	Note     *string
}

func (c Changes) IsEmpty() bool {
	return c.Amount == nil && c.Date == nil && c.Category == nil && c.Note == nil
}

// Today is the current calendar date in the configured timezone.
func (s *Service) Today() expense.Date {
	return expense.DateOf(now.New(s.clock().In(s.loc)).BeginningOfDay())
}

// Expenses returns the whole collection in stored order. An unreadable store
// reads as an empty ledger.
func (s *Service) Expenses(ctx context.Context) []expense.Expense {
	exps, err := s.store.Load(ctx)
	if err != nil {
		logger.Error("cannot load expenses, treating ledger as empty", zap.Error(err))
		return []expense.Expense{}
	}
	return exps
}

// List returns the records ordered by date then id, with their total.
func (s *Service) List(ctx context.Context) ([]expense.Expense, decimal.Decimal) {
	exps := reports.SortedByDate(s.Expenses(ctx))
	return exps, expense.Total(exps)
}

func (s *Service) Get(ctx context.Context, id int64) (expense.Expense, error) {
	for _, e := range s.Expenses(ctx) {
		if e.ID == id {
			return e, nil
		}
	}
	return expense.Expense{}, errors.Wrapf(ErrNotFound, "id %d", id)
}

func (s *Service) Add(ctx context.Context, in NewExpense) (res expense.Expense, err error) {
	logger.Info("Add - start")
	defer logger.Info("Add - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "addExpense")
	defer span.Finish()
	defer markFailed(span, &err)

	date := in.Date
	if date.IsZero() {
		date = s.Today()
	}
	rec := expense.Expense{
		Amount:   in.Amount,
		Date:     date,
		Category: expense.NormalizeCategory(in.Category),
		Note:     in.Note,
	}
	if err = expense.ValidateAmount(rec.Amount); err != nil {
		return expense.Expense{}, errors.Wrap(err, "add expense")
	}

	err = s.mutate(ctx, func(exps []expense.Expense) ([]expense.Expense, error) {
		rec.ID = expense.NextID(exps)
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		return append(exps, rec), nil
	})
	if err != nil {
		return expense.Expense{}, errors.Wrap(err, "add expense")
	}
	logger.Info("expense added", zap.Int64("id", rec.ID), zap.String("category", rec.Category))
	return rec, nil
}

func (s *Service) Update(ctx context.Context, id int64, ch Changes) (res expense.Expense, err error) {
	logger.Info("Update - start", zap.Int64("id", id))
	defer logger.Info("Update - end", zap.Int64("id", id))

	span, ctx := opentracing.StartSpanFromContext(ctx, "updateExpense")
	defer span.Finish()
	defer markFailed(span, &err)

	err = s.mutate(ctx, func(exps []expense.Expense) ([]expense.Expense, error) {
		i := indexOf(exps, id)
		if i < 0 {
			return nil, errors.Wrapf(ErrNotFound, "id %d", id)
		}
		updated := apply(exps[i], ch)
		if err := updated.Validate(); err != nil {
			return nil, err
		}
		exps[i] = updated
		res = updated
		return exps, nil
	})
	if err != nil {
		return expense.Expense{}, errors.Wrap(err, "update expense")
	}
	return res, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (res expense.Expense, err error) {
	logger.Info("Delete - start", zap.Int64("id", id))
	defer logger.Info("Delete - end", zap.Int64("id", id))

	span, ctx := opentracing.StartSpanFromContext(ctx, "deleteExpense")
	defer span.Finish()
	defer markFailed(span, &err)

	err = s.mutate(ctx, func(exps []expense.Expense) ([]expense.Expense, error) {
		i := indexOf(exps, id)
		if i < 0 {
			return nil, errors.Wrapf(ErrNotFound, "id %d", id)
		}
		res = exps[i]
		return append(exps[:i], exps[i+1:]...), nil
	})
	if err != nil {
		return expense.Expense{}, errors.Wrap(err, "delete expense")
	}
	return res, nil
}

// mutate refuses to save when the store cannot be read, so a broken store
// is never overwritten with a partial collection.
func (s *Service) mutate(ctx context.Context, change func([]expense.Expense) ([]expense.Expense, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exps, err := s.store.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "load expenses")
	}
	exps, err = change(exps)
	if err != nil {
		return err
	}
	if err = s.store.Save(ctx, exps); err != nil {
		return errors.Wrap(err, "save expenses")
	}
	s.invalidate()
	return nil
}

func (s *Service) invalidate() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCache(reports.ReportKinds()); err != nil {
		logger.Error("failed to invalidate report cache", zap.Error(err))
	}
}

func apply(e expense.Expense, ch Changes) expense.Expense {
	if ch.Amount != nil {
		e.Amount = *ch.Amount
	}
	if ch.Date != nil {
		e.Date = *ch.Date
	}
	if ch.Category != nil && strings.TrimSpace(*ch.Category) != "" {
		e.Category = strings.TrimSpace(*ch.Category)
	}
	if ch.Note != nil {
		e.Note = *ch.Note
	}
	return e
}

func indexOf(exps []expense.Expense, id int64) int {
	for i, e := range exps {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func markFailed(span opentracing.Span, err *error) {
	if *err != nil {
		ext.Error.Set(span, true)
	}
}
