package reports

import (
	"context"
	"fmt"
	"sort"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/logger"
)

const (
	KindSummary    = "summary"
	KindList       = "list"
	KindCategories = "categories"
	KindMonths     = "months"
	KindYears      = "years"
)

var reportRenderers = map[string]func(f Formatter, exps []expense.Expense) string{
	KindSummary: func(f Formatter, exps []expense.Expense) string {
		return f.Overview(Summarize(exps))
	},
	KindList: func(f Formatter, exps []expense.Expense) string {
		return f.Expenses(SortedByDate(exps))
	},
	KindCategories: func(f Formatter, exps []expense.Expense) string {
		return f.Categories(Categories(exps))
	},
	KindMonths: func(f Formatter, exps []expense.Expense) string {
		return f.Months(AllMonthsSummary(exps))
	},
	KindYears: func(f Formatter, exps []expense.Expense) string {
		return f.Years(CompareYears(exps))
	},
}

type expensesStorage interface {
	Load(ctx context.Context) ([]expense.Expense, error)
}

type reportCache interface {
	GetReport(kind string) (string, error)
	CacheReport(kind string, report string) error
}

type config interface {
	CurrencySymbol() string
}

type Generator struct {
	storage   expensesStorage
	cache     reportCache
	formatter Formatter
}

// NewGenerator builds a generator; cache may be nil.
func NewGenerator(config config, storage expensesStorage, cache reportCache) *Generator {
	return &Generator{
		storage:   storage,
		cache:     cache,
		formatter: NewFormatter(config.CurrencySymbol()),
	}
}

func (g *Generator) Formatter() Formatter {
	return g.formatter
}

// GenerateReport renders one of the named whole-ledger reports. An
// unreadable store is reported on as an empty ledger and never cached.
func (g *Generator) GenerateReport(ctx context.Context, kind string) (report string, err error) {
	logger.Info("GenerateReport - start", zap.String("kind", kind))
	defer logger.Info("GenerateReport - end", zap.String("kind", kind))

	span, ctx := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()
	span.SetTag("kind", kind)

	render, ok := reportRenderers[kind]
	if !ok {
		ext.Error.Set(span, true)
		return "", errors.Wrap(fmt.Errorf("report kind %q is not supported", kind), "generate report")
	}

	if cached, hit := g.fromCache(kind); hit {
		observeReport(kind, true)
		return cached, nil
	}

	exps, loadErr := g.storage.Load(ctx)
	if loadErr != nil {
		ext.Error.Set(span, true)
		logger.Error("cannot load expenses, reporting on empty ledger", zap.Error(loadErr))
		exps = nil
	}

	report = render(g.formatter, exps)
	observeReport(kind, false)
	if loadErr == nil {
		g.toCache(kind, report)
	}
	return report, nil
}

func (g *Generator) fromCache(kind string) (string, bool) {
	if g.cache == nil {
		return "", false
	}
	report, err := g.cache.GetReport(kind)
	if err != nil {
		return "", false
	}
	return report, true
}

func (g *Generator) toCache(kind, report string) {
	if g.cache == nil {
		return
	}
	if err := g.cache.CacheReport(kind, report); err != nil {
		logger.Error("failed to cache report", zap.String("kind", kind), zap.Error(err))
	}
}

// ReportKinds lists the cacheable report names in a stable order.
func ReportKinds() []string {
	res := make([]string, 0, len(reportRenderers))
	for k := range reportRenderers {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// SortedByDate returns a copy ordered by date, then id.
func SortedByDate(exps []expense.Expense) []expense.Expense {
	res := make([]expense.Expense, len(exps))
	copy(res, exps)
	sort.SliceStable(res, func(i, j int) bool {
		if c := res[i].Date.Compare(res[j].Date); c != 0 {
			return c < 0
		}
		return res[i].ID < res[j].ID
	})
	return res
}
