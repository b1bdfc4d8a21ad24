package reports

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func Test_OnFilterByDateRange_ShouldKeepInclusiveRange(t *testing.T) {
	exps := sample(t)
	assert.Equal(t, []int64{1, 2}, ids(FilterByDateRange(exps, mustRange(t, "2024-01-01", "2024-01-31"))))
	assert.Equal(t, []int64{1}, ids(FilterByDateRange(exps, mustRange(t, "2024-01-05", "2024-01-05"))))
}

func Test_OnFilterByDateRange_ShouldReturnEmptyNotError(t *testing.T) {
	res := FilterByDateRange(sample(t), mustRange(t, "2024-03-01", "2024-03-31"))
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func Test_OnFilterByDateRange_ShouldBeIdempotent(t *testing.T) {
	r := mustRange(t, "2024-01-10", "2024-02-01")
	once := FilterByDateRange(sample(t), r)
	assert.Equal(t, once, FilterByDateRange(once, r))
}

func Test_OnParseDateRange_ShouldRejectEitherBadBound(t *testing.T) {
	_, err := ParseDateRange("2024-01-01", "2024-02-30")
	assert.True(t, errors.Is(err, expense.ErrInvalidDate))
	_, err = ParseDateRange("yesterday", "2024-02-01")
	assert.True(t, errors.Is(err, expense.ErrInvalidDate))
}

func Test_OnCategories_ShouldDeduplicateAndSort(t *testing.T) {
	exps := append(sample(t),
		rec(t, 4, "1", "2024-01-01", "food"),
		rec(t, 5, "1", "2024-01-01", "Books"),
	)
	assert.Equal(t, []string{"Books", "Food", "Rent"}, Categories(exps))
	assert.Empty(t, Categories(nil))
}

func Test_OnCategories_ShouldKeepFirstSpellingSeen(t *testing.T) {
	exps := []expense.Expense{
		rec(t, 1, "5", "2024-01-01", "food"),
		rec(t, 2, "5", "2024-01-02", "Food"),
		rec(t, 3, "5", "2024-01-03", "FOOD"),
	}
	assert.Equal(t, []string{"food"}, Categories(exps))
}

func Test_OnFilterByCategory_ShouldMatchIgnoringCase(t *testing.T) {
	res, category, err := FilterByCategory(sample(t), "food")
	require.NoError(t, err)
	assert.Equal(t, "food", category)
	assert.Equal(t, []int64{1, 2}, ids(res))
}

func Test_OnFilterByCategory_ShouldSelectByIndex(t *testing.T) {
	res, category, err := FilterByCategory(sample(t), "2")
	require.NoError(t, err)
	assert.Equal(t, "Rent", category)
	assert.Equal(t, []int64{3}, ids(res))
}

func Test_OnFilterByCategory_ShouldRejectIndexOutOfRange(t *testing.T) {
	for _, sel := range []string{"0", "3", "99"} {
		_, _, err := FilterByCategory(sample(t), sel)
		assert.Truef(t, errors.Is(err, ErrCategoryIndexOutOfRange), "selector %s", sel)
	}
}

func Test_OnFilterByCategory_ShouldReturnEmptyForUnknownName(t *testing.T) {
	res, _, err := FilterByCategory(sample(t), "Travel")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func Test_OnFilter_ShouldCombineDateAndCategory(t *testing.T) {
	r := mustRange(t, "2024-01-01", "2024-12-31")
	res, ok, err := Filter(sample(t), Criteria{Range: &r, Category: "FOOD"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2}, ids(res.Expenses))
	assert.True(t, res.Stats.Total.Equal(dec("150")))
	require.Len(t, res.Breakdown, 1)
	assert.InDelta(t, 100.0, res.Breakdown[0].Percentage, 0.0001)
}

func Test_OnFilter_ShouldShortCircuitOnEmptyDateRange(t *testing.T) {
	r := mustRange(t, "2025-01-01", "2025-12-31")
	// the index would be out of range if it were resolved
	res, ok, err := Filter(sample(t), Criteria{Range: &r, Category: "42"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, res.Expenses)
}

func Test_OnFilter_ShouldResolveIndexAgainstDateFilteredSet(t *testing.T) {
	r := mustRange(t, "2024-02-01", "2024-02-29")
	res, ok, err := Filter(sample(t), Criteria{Range: &r, Category: "1"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Rent", res.Category)
	assert.Nil(t, res.Breakdown)
}

func Test_OnFilter_ShouldSortBreakdownByName(t *testing.T) {
	res, ok, err := Filter(sample(t), Criteria{})
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, res.Breakdown, 2)
	assert.Equal(t, "Food", res.Breakdown[0].Category)
	assert.Equal(t, "Rent", res.Breakdown[1].Category)
}
