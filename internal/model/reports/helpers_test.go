package reports

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

func rec(t *testing.T, id int64, amount, date, category string) expense.Expense {
	t.Helper()
	d, err := expense.ParseDate(date)
	require.NoError(t, err)
	return expense.Expense{
		ID:       id,
		Amount:   decimal.RequireFromString(amount),
		Date:     d,
		Category: category,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ids(exps []expense.Expense) []int64 {
	res := make([]int64, 0, len(exps))
	for _, e := range exps {
		res = append(res, e.ID)
	}
	return res
}

// sample is the three-record ledger used throughout the package tests.
func sample(t *testing.T) []expense.Expense {
	return []expense.Expense{
		rec(t, 1, "100", "2024-01-05", "Food"),
		rec(t, 2, "50", "2024-01-20", "Food"),
		rec(t, 3, "200", "2024-02-01", "Rent"),
	}
}
