package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/logger"
)

const (
	expensesTable = "expenses"
	// keeps a single INSERT well under the bind-parameter limits of both drivers
	insertBatchSize = 500
)

var expenseColumns = []string{"id", "amount", "spent_on", "category", "note"}

// SQLStorage stores the collection in an "expenses" table. Save replaces
// the table contents inside one transaction.
type SQLStorage struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

func newSQLStorage(db *sql.DB, placeholders sq.PlaceholderFormat) *SQLStorage {
	return &SQLStorage{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholders),
	}
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}

func (s *SQLStorage) Load(ctx context.Context) ([]expense.Expense, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "sqlLoad")
	defer span.Finish()

	query := s.builder.Select(expenseColumns...).
		From(expensesTable).
		OrderBy("id")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, "get expenses")
	}
	defer func() {
		if rowErr := rows.Close(); rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	exps := make([]expense.Expense, 0)
	for rows.Next() {
		var e expense.Expense
		if err = rows.Scan(&e.ID, &e.Amount, &e.Date, &e.Category, &e.Note); err != nil {
			return nil, errors.Wrap(err, "get expenses")
		}
		exps = append(exps, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}
	return exps, nil
}

func (s *SQLStorage) Save(ctx context.Context, exps []expense.Expense) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "sqlSave")
	defer span.Finish()
	span.SetTag("expenses", len(exps))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "save expenses")
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	if _, err = s.builder.Delete(expensesTable).RunWith(tx).ExecContext(ctx); err != nil {
		ext.Error.Set(span, true)
		return errors.Wrap(err, "clear expenses")
	}

	for start := 0; start < len(exps); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(exps) {
			end = len(exps)
		}
		insert := s.builder.Insert(expensesTable).Columns(expenseColumns...)
		for _, e := range exps[start:end] {
			insert = insert.Values(e.ID, e.Amount, e.Date, e.Category, e.Note)
		}
		if _, err = insert.RunWith(tx).ExecContext(ctx); err != nil {
			ext.Error.Set(span, true)
			return errors.Wrap(err, "insert expenses")
		}
	}

	return errors.Wrap(tx.Commit(), "save expenses")
}
