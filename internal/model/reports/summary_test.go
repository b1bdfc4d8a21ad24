package reports

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

func Test_OnAllMonthsSummary_ShouldPickTopMonth(t *testing.T) {
	res, ok := AllMonthsSummary(sample(t))
	require.True(t, ok)
	require.Len(t, res.Months, 2)
	assert.Equal(t, "2024-01", res.Months[0].Month.String())
	assert.Equal(t, 2, res.Months[0].Count)
	assert.True(t, res.Months[0].Average.Equal(dec("75")))
	assert.Equal(t, "2024-02", res.TopMonth.String())
	assert.True(t, res.TopAmount.Equal(dec("200")))
	assert.True(t, res.Total.Total.Equal(dec("350")))
	assert.Equal(t, 3, res.Total.Count)
}

func Test_OnAllMonthsSummary_ShouldBreakTiesByEarliestMonth(t *testing.T) {
	exps := []expense.Expense{
		rec(t, 1, "40", "2024-05-01", "A"),
		rec(t, 2, "40", "2024-03-01", "A"),
		rec(t, 3, "10", "2024-04-01", "A"),
	}
	res, ok := AllMonthsSummary(exps)
	require.True(t, ok)
	assert.Equal(t, "2024-03", res.TopMonth.String())
}

func Test_OnAllMonthsSummary_ShouldMatchSumOfInputs(t *testing.T) {
	exps := []expense.Expense{
		rec(t, 1, "0.10", "2022-12-31", "A"),
		rec(t, 2, "0.20", "2023-01-01", "B"),
		rec(t, 3, "19.99", "2023-01-31", "C"),
		rec(t, 4, "5", "2021-07-14", "A"),
	}
	res, ok := AllMonthsSummary(exps)
	require.True(t, ok)
	sum := dec("0")
	for _, m := range res.Months {
		sum = sum.Add(m.Total)
	}
	assert.True(t, sum.Equal(res.Total.Total))
	assert.True(t, res.Total.Total.Equal(expense.Total(exps)))
}

func Test_OnAllMonthsSummary_ShouldReportNoData(t *testing.T) {
	_, ok := AllMonthsSummary(nil)
	assert.False(t, ok)
}

func Test_OnMonthSummary_ShouldDetailMonth(t *testing.T) {
	exps := append(sample(t),
		rec(t, 4, "30", "2024-01-20", "Books"),
		rec(t, 5, "100", "2024-01-31", "Books"),
	)
	d, ok, err := MonthSummary(exps, 2024, 1)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "2024-01-01", d.FirstDay.String())
	assert.Equal(t, "2024-01-31", d.LastDay.String())
	assert.True(t, d.Total.Equal(dec("280")))
	assert.Equal(t, 4, d.Count)
	assert.True(t, d.Average.Equal(dec("70")))

	require.Len(t, d.Categories, 2)
	assert.Equal(t, "Food", d.Categories[0].Category)
	assert.Equal(t, "Books", d.Categories[1].Category)

	require.Len(t, d.Days, 3)
	assert.Equal(t, "2024-01-05", d.Days[0].Date.String())
	assert.Equal(t, time.Friday, d.Days[0].Weekday)

	// 2024-01-05 and 2024-01-31 both total 100, 2024-01-20 totals 80
	assert.Equal(t, "2024-01-05", d.TopDay.String())
	assert.True(t, d.TopAmount.Equal(dec("100")))
}

func Test_OnMonthSummary_ShouldKeepFirstCategoryOnTie(t *testing.T) {
	exps := []expense.Expense{
		rec(t, 1, "10", "2024-06-01", "Zoo"),
		rec(t, 2, "10", "2024-06-02", "Art"),
	}
	d, ok, err := MonthSummary(exps, 2024, 6)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Zoo", d.Categories[0].Category)
}

func Test_OnMonthSummary_ShouldReportNoDataForMonth(t *testing.T) {
	_, ok, err := MonthSummary(sample(t), 2024, 3)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func Test_OnMonthSummary_ShouldRejectInvalidMonth(t *testing.T) {
	for _, m := range []int{0, 13, -1} {
		_, _, err := MonthSummary(sample(t), 2024, m)
		assert.True(t, errors.Is(err, ErrInvalidMonth))
	}
}

func Test_OnCategoryBreakdown_ShouldSumToHundredPercent(t *testing.T) {
	exps := []expense.Expense{
		rec(t, 1, "33.33", "2024-01-01", "A"),
		rec(t, 2, "33.33", "2024-01-02", "B"),
		rec(t, 3, "33.34", "2024-01-03", "C"),
		rec(t, 4, "0.07", "2024-01-04", "d"),
		rec(t, 5, "12", "2024-01-05", "a"),
	}
	entries := CategoryBreakdown(exps)
	require.Len(t, entries, 4)
	total := 0.0
	for _, e := range entries {
		total += e.Percentage
	}
	assert.InDelta(t, 100.0, total, 0.01)
	assert.Equal(t, "A", entries[0].Category)
	assert.True(t, entries[0].Total.Equal(dec("45.33")))
}

func Test_OnSummarize_ShouldKeepFirstAppearanceOrder(t *testing.T) {
	res, ok := Summarize(sample(t))
	require.True(t, ok)
	assert.True(t, res.Total.Equal(dec("350")))
	require.Len(t, res.Categories, 2)
	assert.Equal(t, "Food", res.Categories[0].Category)

	_, ok = Summarize(nil)
	assert.False(t, ok)
}

func Test_OnCompareYears_ShouldRequireTwoYears(t *testing.T) {
	_, ok := CompareYears(sample(t))
	assert.False(t, ok)
	_, ok = CompareYears(nil)
	assert.False(t, ok)
}

func Test_OnCompareYears_ShouldBuildGridAndGrowth(t *testing.T) {
	exps := []expense.Expense{
		rec(t, 1, "100", "2022-01-10", "A"),
		rec(t, 2, "100", "2023-01-10", "A"),
		rec(t, 3, "50", "2023-03-10", "A"),
		rec(t, 4, "120", "2024-01-10", "A"),
		rec(t, 5, "60", "2024-02-10", "A"),
	}
	res, ok := CompareYears(exps)
	require.True(t, ok)
	assert.Equal(t, []int{2022, 2023, 2024}, res.Years)
	require.Len(t, res.Rows, 12)

	jan := res.Rows[0]
	assert.Equal(t, time.January, jan.Month)
	require.Len(t, jan.Cells, 3)
	assert.True(t, jan.Cells[2].Valid)
	assert.True(t, jan.Cells[2].Total.Equal(dec("120")))

	feb := res.Rows[1]
	assert.False(t, feb.Cells[0].Valid)
	assert.False(t, feb.Cells[1].Valid)
	assert.True(t, feb.Cells[2].Valid)

	assert.True(t, res.Totals[1].Equal(dec("150")))
	assert.True(t, res.Totals[2].Equal(dec("180")))

	require.NotNil(t, res.Growth)
	assert.Equal(t, 2023, res.Growth.Previous)
	assert.Equal(t, 2024, res.Growth.Current)
	assert.InDelta(t, 20.0, res.Growth.Percent, 1e-9)
	assert.Equal(t, TrendUp, res.Growth.Trend)
}

func Test_OnCompareYears_ShouldClassifyTrend(t *testing.T) {
	down := []expense.Expense{rec(t, 1, "100", "2023-01-10", "A"), rec(t, 2, "75", "2024-01-10", "A")}
	res, ok := CompareYears(down)
	require.True(t, ok)
	assert.Equal(t, TrendDown, res.Growth.Trend)
	assert.InDelta(t, -25.0, res.Growth.Percent, 1e-9)

	flat := []expense.Expense{rec(t, 1, "100", "2023-01-10", "A"), rec(t, 2, "100", "2024-06-10", "A")}
	res, ok = CompareYears(flat)
	require.True(t, ok)
	assert.Equal(t, TrendFlat, res.Growth.Trend)
	assert.Equal(t, 0.0, res.Growth.Percent)
}

func Test_OnTopMonths_ShouldOrderByTotal(t *testing.T) {
	exps := append(sample(t), rec(t, 4, "200", "2023-11-01", "A"))
	top := TopMonths(exps, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "2023-11", top[0].Month.String())
	assert.Equal(t, "2024-02", top[1].Month.String())
	assert.Nil(t, TopMonths(exps, 0))
}

func Test_OnTopDays_ShouldOrderByTotal(t *testing.T) {
	top := TopDays(sample(t), 5)
	require.Len(t, top, 3)
	assert.Equal(t, "2024-02-01", top[0].Date.String())
	assert.Equal(t, time.Thursday, top[0].Weekday)
	assert.Equal(t, "2024-01-05", top[1].Date.String())
	assert.Equal(t, "2024-01-20", top[2].Date.String())
}
