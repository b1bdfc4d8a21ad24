package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

func fixture() []expense.Expense {
	return []expense.Expense{
		{ID: 1, Amount: decimal.RequireFromString("100"), Date: expense.NewDate(2024, 1, 5), Category: "Food", Note: "groceries"},
		{ID: 2, Amount: decimal.RequireFromString("49.99"), Date: expense.NewDate(2024, 1, 20), Category: "Food"},
		{ID: 3, Amount: decimal.RequireFromString("200"), Date: expense.NewDate(2024, 2, 1), Category: "Rent", Note: "february"},
	}
}

func assertSameExpenses(t *testing.T, want, got []expense.Expense) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Truef(t, want[i].Amount.Equal(got[i].Amount), "amount %s != %s", want[i].Amount, got[i].Amount)
		assert.Equal(t, want[i].Date, got[i].Date)
		assert.Equal(t, want[i].Category, got[i].Category)
		assert.Equal(t, want[i].Note, got[i].Note)
	}
}

func Test_OnInMemStorage_ShouldIsolateCallers(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage(fixture()...)

	exps, err := s.Load(ctx)
	require.NoError(t, err)
	exps[0].Category = "Changed"

	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Food", again[0].Category)

	require.NoError(t, s.Save(ctx, exps[:1]))
	again, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 1)
}

func Test_OnJSONStorage_ShouldRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "expenses.json")
	s := NewJSONStorage(path)

	require.NoError(t, s.Save(ctx, fixture()))
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assertSameExpenses(t, fixture(), loaded)
}

func Test_OnJSONStorage_ShouldLoadEmptyWithoutFile(t *testing.T) {
	s := NewJSONStorage(filepath.Join(t.TempDir(), "missing.json"))
	exps, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, exps)
	assert.Empty(t, exps)
}

func Test_OnJSONStorage_ShouldAcceptBareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	raw := `[{"id": 1, "amount": 12.5, "date": "2024-03-01", "note": "", "category": "General"}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	exps, err := NewJSONStorage(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.True(t, exps[0].Amount.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "2024-03-01", exps[0].Date.String())
}

func Test_OnJSONStorage_ShouldFailOnCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"expenses": [{"date": "2024-02-31"}]}`), 0o600))

	_, err := NewJSONStorage(path).Load(context.Background())
	assert.Error(t, err)
}

func Test_OnSQLiteStorage_ShouldReplaceCollection(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer s.Close()

	exps, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, exps)

	require.NoError(t, s.Save(ctx, fixture()))
	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assertSameExpenses(t, fixture(), loaded)

	require.NoError(t, s.Save(ctx, fixture()[1:]))
	loaded, err = s.Load(ctx)
	require.NoError(t, err)
	assertSameExpenses(t, fixture()[1:], loaded)
}

type backend struct {
	name, json, sqlite string
}

func (b backend) Backend() string    { return b.name }
func (b backend) JSONPath() string   { return b.json }
func (b backend) SQLitePath() string { return b.sqlite }

func Test_OnNew_ShouldOpenConfiguredBackend(t *testing.T) {
	dir := t.TempDir()

	st, closeFn, err := New(backend{name: "json", json: filepath.Join(dir, "e.json")}, nil)
	require.NoError(t, err)
	assert.IsType(t, &JSONStorage{}, st)
	assert.NoError(t, closeFn())

	st, closeFn, err = New(backend{name: "sqlite", sqlite: filepath.Join(dir, "e.db")}, nil)
	require.NoError(t, err)
	assert.IsType(t, &SQLStorage{}, st)
	assert.NoError(t, closeFn())

	_, _, err = New(backend{name: "csv"}, nil)
	assert.Error(t, err)
}
