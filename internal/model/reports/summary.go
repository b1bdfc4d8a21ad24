package reports

import (
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

var hundred = decimal.NewFromInt(100)

// withPercentages fills Percentage against one grand total shared by all
// entries.
func withPercentages(entries []CategoryTotal, grand decimal.Decimal) []CategoryTotal {
	if !grand.IsPositive() {
		return entries
	}
	for i := range entries {
		entries[i].Percentage = entries[i].Total.Div(grand).Mul(hundred).InexactFloat64()
	}
	return entries
}

// CategoryBreakdown returns per-category totals and shares of the set total,
// largest first. Equal totals keep the order of first appearance.
func CategoryBreakdown(exps []expense.Expense) []CategoryTotal {
	entries := withPercentages(sumByCategory(exps).entries, expense.Total(exps))
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total.GreaterThan(entries[j].Total)
	})
	return entries
}

type Overview struct {
	Stats
	// Categories are in order of first appearance.
	Categories []CategoryTotal
}

// Summarize is the overall report: grand total plus spend per category.
func Summarize(exps []expense.Expense) (Overview, bool) {
	if len(exps) == 0 {
		return Overview{}, false
	}
	stats := Aggregate(exps)
	return Overview{
		Stats:      stats,
		Categories: withPercentages(sumByCategory(exps).entries, stats.Total),
	}, true
}

type MonthStats struct {
	Month expense.MonthKey
	Stats
}

type MonthsOverview struct {
	Months    []MonthStats
	Total     Stats
	TopMonth  expense.MonthKey
	TopAmount decimal.Decimal
}

// AllMonthsSummary aggregates every month in chronological order. The top
// month is the first month, in that order, holding the largest total.
func AllMonthsSummary(exps []expense.Expense) (MonthsOverview, bool) {
	groups := GroupByMonth(exps)
	if len(groups) == 0 {
		return MonthsOverview{}, false
	}

	res := MonthsOverview{Months: make([]MonthStats, 0, len(groups))}
	grand := decimal.Zero
	count := 0
	for i, key := range groups.Keys() {
		st := Aggregate(groups[key])
		res.Months = append(res.Months, MonthStats{Month: key, Stats: st})
		grand = grand.Add(st.Total)
		count += st.Count
		if i == 0 || st.Total.GreaterThan(res.TopAmount) {
			res.TopMonth, res.TopAmount = key, st.Total
		}
	}
	res.Total = newStats(grand, count)
	return res, true
}

type DayStats struct {
	DayTotal
	Weekday time.Weekday
}

type MonthDetail struct {
	Month    expense.MonthKey
	FirstDay expense.Date
	LastDay  expense.Date
	Stats
	// Categories are sorted by total descending.
	Categories []CategoryTotal
	// Days are in ascending date order.
	Days       []DayStats
	TopDay     expense.Date
	TopWeekday time.Weekday
	TopAmount  decimal.Decimal
}

// MonthSummary details one calendar month. ok is false when the month holds
// no records.
func MonthSummary(exps []expense.Expense, year, month int) (MonthDetail, bool, error) {
	if month < 1 || month > 12 {
		return MonthDetail{}, false, errors.Wrapf(ErrInvalidMonth, "got %d", month)
	}
	key := expense.MonthKey{Year: year, Month: time.Month(month)}

	first := key.FirstDay().Time()
	bounds := now.With(first)
	detail := MonthDetail{
		Month:    key,
		FirstDay: expense.DateOf(bounds.BeginningOfMonth()),
		LastDay:  expense.DateOf(bounds.EndOfMonth()),
	}

	inMonth := FilterByDateRange(exps, DateRange{Start: detail.FirstDay, End: detail.LastDay})
	if len(inMonth) == 0 {
		return detail, false, nil
	}

	detail.Stats = Aggregate(inMonth)
	detail.Categories = CategoryBreakdown(inMonth)
	for i, day := range GroupByDay(inMonth) {
		detail.Days = append(detail.Days, DayStats{DayTotal: day, Weekday: day.Date.Weekday()})
		if i == 0 || day.Total.GreaterThan(detail.TopAmount) {
			detail.TopDay, detail.TopAmount = day.Date, day.Total
		}
	}
	detail.TopWeekday = detail.TopDay.Weekday()
	return detail, true, nil
}

type Trend string

const (
	TrendUp   Trend = "UP"
	TrendDown Trend = "DOWN"
	TrendFlat Trend = "FLAT"
)

// Cell is one month of one year in the comparison grid. Valid is false when
// the year has no records in that month, which is distinct from zero spend.
type Cell struct {
	Total decimal.Decimal
	Valid bool
}

type MonthRow struct {
	Month time.Month
	Cells []Cell
}

type Growth struct {
	Previous      int
	Current       int
	PreviousTotal decimal.Decimal
	CurrentTotal  decimal.Decimal
	Percent       float64
	Trend         Trend
}

type YearComparison struct {
	Years  []int
	Rows   []MonthRow
	Totals []decimal.Decimal
	// Growth compares the two most recent years, nil when the earlier one
	// has no spend.
	Growth *Growth
}

// CompareYears builds a month x year grid. ok is false with fewer than two
// distinct years.
func CompareYears(exps []expense.Expense) (YearComparison, bool) {
	groups := GroupByYearMonth(exps)
	if len(groups) < 2 {
		return YearComparison{}, false
	}

	years := groups.Years()
	res := YearComparison{
		Years:  years,
		Rows:   make([]MonthRow, 0, 12),
		Totals: make([]decimal.Decimal, 0, len(years)),
	}
	for m := time.January; m <= time.December; m++ {
		row := MonthRow{Month: m, Cells: make([]Cell, 0, len(years))}
		for _, y := range years {
			recs, ok := groups[y][MonthOfYear(m)]
			if !ok {
				row.Cells = append(row.Cells, Cell{})
				continue
			}
			row.Cells = append(row.Cells, Cell{Total: expense.Total(recs), Valid: true})
		}
		res.Rows = append(res.Rows, row)
	}
	for _, y := range years {
		res.Totals = append(res.Totals, groups.YearTotal(y))
	}

	prev, cur := len(years)-2, len(years)-1
	res.Growth = yearGrowth(years[prev], years[cur], res.Totals[prev], res.Totals[cur])
	return res, true
}

func yearGrowth(prevYear, curYear int, prev, cur decimal.Decimal) *Growth {
	if !prev.IsPositive() {
		return nil
	}
	pct := cur.Sub(prev).Div(prev).Mul(hundred)
	g := &Growth{
		Previous:      prevYear,
		Current:       curYear,
		PreviousTotal: prev,
		CurrentTotal:  cur,
		Percent:       pct.InexactFloat64(),
		Trend:         TrendFlat,
	}
	switch pct.Sign() {
	case 1:
		g.Trend = TrendUp
	case -1:
		g.Trend = TrendDown
	}
	return g
}

// TopMonths returns up to n months with the highest totals, largest first.
// Equal totals are ordered chronologically.
func TopMonths(exps []expense.Expense, n int) []MonthStats {
	overview, ok := AllMonthsSummary(exps)
	if !ok || n <= 0 {
		return nil
	}
	months := overview.Months
	sort.SliceStable(months, func(i, j int) bool {
		return months[i].Total.GreaterThan(months[j].Total)
	})
	if len(months) > n {
		months = months[:n]
	}
	return months
}

// TopDays returns up to n days with the highest totals, largest first.
// Equal totals are ordered chronologically.
func TopDays(exps []expense.Expense, n int) []DayStats {
	if n <= 0 {
		return nil
	}
	days := GroupByDay(exps)
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Total.GreaterThan(days[j].Total)
	})
	if len(days) > n {
		days = days[:n]
	}
	res := make([]DayStats, 0, len(days))
	for _, d := range days {
		res = append(res, DayStats{DayTotal: d, Weekday: d.Date.Weekday()})
	}
	return res
}
